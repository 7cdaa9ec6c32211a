// Package analytics derives every downstream statistic from a normalized
// record set: period filtering, daily trend, per-vehicle breakdown,
// location ranking, journey inference and the travel behavior summary. All
// reducers are stateless pure functions over immutable inputs; degenerate
// inputs yield well-defined empty results, never errors.
package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/tollscope/tollscope/internal/toll"
)

// PeriodKind names the supported analysis windows.
type PeriodKind string

const (
	PeriodAll     PeriodKind = "all"
	PeriodMonth   PeriodKind = "month"
	PeriodQuarter PeriodKind = "quarter"
	PeriodYear    PeriodKind = "year"
	PeriodCustom  PeriodKind = "custom"
)

// PeriodSpec selects the calendar window for an analysis. It is constructed
// fresh from user input on every filter invocation and carries no state.
type PeriodSpec struct {
	Kind PeriodKind

	// Anchor picks the calendar month/quarter/year containing it. Zero
	// means "now".
	Anchor time.Time

	// Start and End bound a custom window (whole days, inclusive). A
	// custom spec missing either bound degrades to the unbounded result,
	// never to an unfiltered set.
	Start *time.Time
	End   *time.Time
}

// anchorDateLayout is how CLI flags and query parameters spell dates.
const anchorDateLayout = "2006-01-02"

// ParsePeriod validates raw user input into a PeriodSpec. kind defaults to
// "all" when empty; anchor/start/end are YYYY-MM-DD and optional.
func ParsePeriod(kind, anchor, start, end string) (PeriodSpec, error) {
	spec := PeriodSpec{Kind: PeriodAll}
	if kind != "" {
		spec.Kind = PeriodKind(strings.ToLower(strings.TrimSpace(kind)))
	}
	switch spec.Kind {
	case PeriodAll, PeriodMonth, PeriodQuarter, PeriodYear, PeriodCustom:
	default:
		return spec, fmt.Errorf("unknown period %q (want all, month, quarter, year or custom)", kind)
	}

	if anchor != "" {
		t, err := time.Parse(anchorDateLayout, anchor)
		if err != nil {
			return spec, fmt.Errorf("invalid anchor date %q: %w", anchor, err)
		}
		spec.Anchor = t
	}
	if start != "" {
		t, err := time.Parse(anchorDateLayout, start)
		if err != nil {
			return spec, fmt.Errorf("invalid start date %q: %w", start, err)
		}
		spec.Start = &t
	}
	if end != "" {
		t, err := time.Parse(anchorDateLayout, end)
		if err != nil {
			return spec, fmt.Errorf("invalid end date %q: %w", end, err)
		}
		spec.End = &t
	}
	if spec.Start != nil && spec.End != nil && spec.End.Before(*spec.Start) {
		return spec, fmt.Errorf("custom range ends (%s) before it starts (%s)", end, start)
	}
	return spec, nil
}

// Bounds resolves the spec into an inclusive [start, end] window. ok is
// false for "all" and for a custom spec missing either bound; now supplies
// the anchor when none was given.
func (p PeriodSpec) Bounds(now time.Time) (start, end time.Time, ok bool) {
	anchor := p.Anchor
	if anchor.IsZero() {
		anchor = now
	}
	switch p.Kind {
	case PeriodMonth:
		start = time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		end = endOfDay(start.AddDate(0, 1, -1))
		return start, end, true
	case PeriodQuarter:
		qm := time.Month((int(anchor.Month())-1)/3*3 + 1)
		start = time.Date(anchor.Year(), qm, 1, 0, 0, 0, 0, anchor.Location())
		end = endOfDay(start.AddDate(0, 3, -1))
		return start, end, true
	case PeriodYear:
		start = time.Date(anchor.Year(), time.January, 1, 0, 0, 0, 0, anchor.Location())
		end = endOfDay(time.Date(anchor.Year(), time.December, 31, 0, 0, 0, 0, anchor.Location()))
		return start, end, true
	case PeriodCustom:
		if p.Start == nil || p.End == nil {
			return time.Time{}, time.Time{}, false
		}
		return startOfDay(*p.Start), endOfDay(*p.End), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, t.Location()).Add(-time.Nanosecond)
}

// TagQuery is an optional vehicle-tag filter: lowercase substring tokens,
// any of which may match (OR across tokens).
type TagQuery []string

// ParseTags splits a whitespace/comma-separated query into tokens. An empty
// query matches everything.
func ParseTags(query string) TagQuery {
	fields := strings.FieldsFunc(query, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	tags := make(TagQuery, 0, len(fields))
	for _, f := range fields {
		tags = append(tags, strings.ToLower(f))
	}
	return tags
}

// Match reports whether a transponder id satisfies the query:
// case-insensitive substring, any token sufficient.
func (q TagQuery) Match(transponder string) bool {
	if len(q) == 0 {
		return true
	}
	id := strings.ToLower(transponder)
	for _, tag := range q {
		if strings.Contains(id, tag) {
			return true
		}
	}
	return false
}

// Filter returns the records inside the requested window whose transponder
// matches the tag query. Refund/credit rows (amount <= 0) are always
// dropped first. Records without a date are kept only under an unbounded
// window ("all" or a custom spec missing its range); any anchored calendar
// period excludes them.
func Filter(records []toll.Record, period PeriodSpec, tags TagQuery) []toll.Record {
	start, end, bounded := period.Bounds(time.Now())

	out := make([]toll.Record, 0, len(records))
	for _, r := range records {
		if r.Amount <= 0 {
			continue
		}
		if bounded {
			if r.Date == nil || r.Date.Before(start) || r.Date.After(end) {
				continue
			}
		}
		if !tags.Match(r.Transponder) {
			continue
		}
		out = append(out, r)
	}
	return out
}
