package analytics

import (
	"time"

	"github.com/tollscope/tollscope/internal/toll"
)

// minWeeks floors every derived span so short ranges cannot blow up the
// weekly average.
const minWeeks = 0.5

// topLocationCount is how many locations the travel summary quotes.
const topLocationCount = 5

// Summary describes travel behavior over a filtered record set.
type Summary struct {
	TotalTrips     int     `json:"total_trips"`
	WeeksInPeriod  float64 `json:"weeks_in_period"`
	AvgWeeklyTrips float64 `json:"avg_weekly_trips"`

	// TopLocations holds raw exit codes (top 5 by spend); display names
	// are applied at render time only.
	TopLocations []string `json:"top_locations"`

	// WeekdayCounts tallies dated trips by weekday name (Sun..Sat). Nil
	// when no record carries a date.
	WeekdayCounts map[string]int `json:"weekday_counts,omitempty"`
}

// TravelSummary derives the weekly travel rate for a filtered record set.
// For anchored and custom periods the week count comes from the requested
// calendar span, not from the span the data happens to cover; for the
// unbounded case it falls back to the span between the earliest and latest
// dated trip, or exactly one week when fewer than two trips are dated.
func TravelSummary(records []toll.Record, period PeriodSpec) Summary {
	weeks := weeksInPeriod(records, period, time.Now())

	s := Summary{
		TotalTrips:     len(records),
		WeeksInPeriod:  weeks,
		AvgWeeklyTrips: float64(len(records)) / weeks,
		TopLocations:   make([]string, 0, topLocationCount),
	}
	for _, row := range TopLocations(records, topLocationCount) {
		s.TopLocations = append(s.TopLocations, row.Location)
	}

	for _, r := range records {
		if r.Date == nil {
			continue
		}
		if s.WeekdayCounts == nil {
			s.WeekdayCounts = make(map[string]int, 7)
		}
		s.WeekdayCounts[r.Date.Weekday().String()[:3]]++
	}
	return s
}

func weeksInPeriod(records []toll.Record, period PeriodSpec, now time.Time) float64 {
	if start, end, ok := period.Bounds(now); ok {
		return flooredWeeks(end.Sub(start))
	}

	var earliest, latest time.Time
	dated := 0
	for _, r := range records {
		if r.Date == nil {
			continue
		}
		if dated == 0 || r.Date.Before(earliest) {
			earliest = *r.Date
		}
		if dated == 0 || r.Date.After(latest) {
			latest = *r.Date
		}
		dated++
	}
	if dated < 2 {
		return 1
	}
	return flooredWeeks(latest.Sub(earliest))
}

func flooredWeeks(span time.Duration) float64 {
	weeks := span.Hours() / (24 * 7)
	if weeks < minWeeks {
		return minWeeks
	}
	return weeks
}
