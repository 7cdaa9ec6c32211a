package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tollscope/tollscope/internal/toll"
)

// rec builds a test record; ts is "2006-01-02 15:04" or "" for a dateless
// record.
func rec(ts string, amount toll.Amount, transponder, location string) toll.Record {
	r := toll.Record{
		Amount:          amount,
		Transponder:     transponder,
		ExitInterchange: location,
	}
	if r.ExitInterchange == "" {
		r.ExitInterchange = toll.MissingLocation
	}
	if ts != "" {
		t, err := time.Parse("2006-01-02 15:04", ts)
		if err != nil {
			panic(err)
		}
		r.Date = &t
	}
	return r
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		anchor  string
		start   string
		end     string
		want    PeriodKind
		wantErr bool
	}{
		{name: "empty kind defaults to all", want: PeriodAll},
		{name: "month", kind: "month", anchor: "2024-01-15", want: PeriodMonth},
		{name: "kind is case insensitive", kind: "Quarter", want: PeriodQuarter},
		{name: "custom with range", kind: "custom", start: "2024-01-01", end: "2024-01-31", want: PeriodCustom},
		{name: "unknown kind", kind: "fortnight", wantErr: true},
		{name: "bad anchor", kind: "month", anchor: "Jan 15", wantErr: true},
		{name: "bad start", kind: "custom", start: "01/01/2024", wantErr: true},
		{name: "inverted range", kind: "custom", start: "2024-02-01", end: "2024-01-01", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParsePeriod(tt.kind, tt.anchor, tt.start, tt.end)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, spec.Kind)
		})
	}
}

func TestPeriodSpecBounds(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	t.Run("all is unbounded", func(t *testing.T) {
		_, _, ok := PeriodSpec{Kind: PeriodAll}.Bounds(now)
		assert.False(t, ok)
	})

	t.Run("month from anchor", func(t *testing.T) {
		start, end, ok := PeriodSpec{Kind: PeriodMonth, Anchor: day("2024-02-14")}.Bounds(now)
		require.True(t, ok)
		assert.Equal(t, day("2024-02-01"), start)
		assert.Equal(t, 29, end.Day(), "leap February runs through the 29th")
		assert.Equal(t, time.February, end.Month())
	})

	t.Run("quarter from anchor", func(t *testing.T) {
		start, end, ok := PeriodSpec{Kind: PeriodQuarter, Anchor: day("2024-05-10")}.Bounds(now)
		require.True(t, ok)
		assert.Equal(t, day("2024-04-01"), start)
		assert.Equal(t, time.June, end.Month())
		assert.Equal(t, 30, end.Day())
	})

	t.Run("year without anchor uses now", func(t *testing.T) {
		start, end, ok := PeriodSpec{Kind: PeriodYear}.Bounds(now)
		require.True(t, ok)
		assert.Equal(t, day("2024-01-01"), start)
		assert.Equal(t, time.December, end.Month())
	})

	t.Run("custom whole days inclusive", func(t *testing.T) {
		s, e := day("2024-01-01"), day("2024-01-02")
		start, end, ok := PeriodSpec{Kind: PeriodCustom, Start: &s, End: &e}.Bounds(now)
		require.True(t, ok)
		assert.Equal(t, day("2024-01-01"), start)
		assert.True(t, end.After(day("2024-01-02").Add(23*time.Hour)))
		assert.True(t, end.Before(day("2024-01-03")))
	})

	t.Run("custom missing a bound is unbounded", func(t *testing.T) {
		s := day("2024-01-01")
		_, _, ok := PeriodSpec{Kind: PeriodCustom, Start: &s}.Bounds(now)
		assert.False(t, ok)
	})
}

func TestFilter(t *testing.T) {
	records := []toll.Record{
		rec("2024-01-01 09:00", 200, "TAG-1", "A"),
		rec("2024-01-01 10:30", 300, "TAG-2", "B"),
		rec("2024-02-15 09:00", 400, "TAG-1", "A"),
		rec("", 500, "TAG-3", "C"),                  // dateless
		rec("2024-01-02 09:00", -150, "TAG-1", "A"), // credit
		rec("2024-01-02 10:00", 0, "TAG-1", "A"),    // zero amount
	}

	t.Run("all keeps dateless, drops non-positive", func(t *testing.T) {
		got := Filter(records, PeriodSpec{Kind: PeriodAll}, nil)
		require.Len(t, got, 4)
	})

	t.Run("month excludes dateless and other months", func(t *testing.T) {
		got := Filter(records, PeriodSpec{Kind: PeriodMonth, Anchor: day("2024-01-15")}, nil)
		require.Len(t, got, 2)
		for _, r := range got {
			assert.Equal(t, time.January, r.Date.Month())
		}
	})

	t.Run("custom single day", func(t *testing.T) {
		s := day("2024-01-01")
		got := Filter(records, PeriodSpec{Kind: PeriodCustom, Start: &s, End: &s}, nil)
		require.Len(t, got, 2)
	})

	t.Run("custom without range falls back to unbounded", func(t *testing.T) {
		got := Filter(records, PeriodSpec{Kind: PeriodCustom}, nil)
		require.Len(t, got, 4)
	})

	t.Run("tag query is ANDed after the date filter", func(t *testing.T) {
		got := Filter(records, PeriodSpec{Kind: PeriodMonth, Anchor: day("2024-01-15")}, ParseTags("tag-2"))
		require.Len(t, got, 1)
		assert.Equal(t, "TAG-2", got[0].Transponder)
	})

	t.Run("any token may match", func(t *testing.T) {
		got := Filter(records, PeriodSpec{Kind: PeriodAll}, ParseTags("tag-2, tag-3"))
		require.Len(t, got, 2)
	})

	t.Run("empty set in, empty set out", func(t *testing.T) {
		assert.Empty(t, Filter(nil, PeriodSpec{Kind: PeriodAll}, nil))
	})
}

func TestTagQueryMatch(t *testing.T) {
	assert.True(t, TagQuery(nil).Match("anything"))
	assert.True(t, ParseTags("  ").Match("anything"))
	assert.True(t, ParseTags("1541").Match("TAG-1541"))
	assert.True(t, ParseTags("tag").Match("TAG-1541"))
	assert.False(t, ParseTags("2677").Match("TAG-1541"))
	assert.False(t, ParseTags("x").Match(""))
}
