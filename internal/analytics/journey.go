package analytics

import (
	"sort"
	"time"

	"github.com/tollscope/tollscope/internal/toll"
)

// journeyGap is the maximum gap between consecutive toll passes that still
// counts as the same drive. A gap at or above it starts a new journey.
const journeyGap = 2 * time.Hour

// JourneySummary relates raw toll passes to inferred continuous drives.
type JourneySummary struct {
	TotalTransactions int `json:"total_transactions"`
	TotalJourneys     int `json:"total_journeys"`
}

// InferJourneys groups timestamped passes into journeys: records are
// ordered by time, and a record joins the previous journey only when it
// falls on the same calendar day and under two hours after the previous
// pass. A single greedy left-to-right pass; once a boundary is drawn it is
// never revisited. Records without a timestamp cannot be merged and each
// count as their own journey.
func InferJourneys(records []toll.Record) JourneySummary {
	times := make([]time.Time, 0, len(records))
	for _, r := range records {
		if r.Date != nil {
			times = append(times, *r.Date)
		}
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	journeys := 0
	var prev time.Time
	for i, t := range times {
		if i == 0 || !sameDay(prev, t) || t.Sub(prev) >= journeyGap {
			journeys++
		}
		prev = t
	}
	journeys += len(records) - len(times)

	return JourneySummary{
		TotalTransactions: len(records),
		TotalJourneys:     journeys,
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
