package analytics

import (
	"sort"
	"time"

	"github.com/tollscope/tollscope/internal/toll"
)

// LocationRow is one exit interchange's visit count and total spend.
// Location is the raw code; records without one collapse into the
// toll.MissingLocation sentinel group.
type LocationRow struct {
	Location string      `json:"location"`
	Count    int         `json:"count"`
	Total    toll.Amount `json:"total"`
}

// TopLocations ranks exit interchanges by total spend, descending, ties in
// encounter order, truncated to limit (limit <= 0 returns every group).
// This is the single ranking algorithm for the whole module: the full-set
// top list and the single-day breakdown are the same reducer run over
// different subsets.
func TopLocations(records []toll.Record, limit int) []LocationRow {
	byLocation := make(map[string]*LocationRow)
	var order []string

	for i := range records {
		r := &records[i]
		loc := r.ExitInterchange
		if loc == "" {
			loc = toll.MissingLocation
		}
		row, ok := byLocation[loc]
		if !ok {
			row = &LocationRow{Location: loc}
			byLocation[loc] = row
			order = append(order, loc)
		}
		row.Count++
		row.Total += r.Amount
	}

	rows := make([]LocationRow, 0, len(order))
	for _, loc := range order {
		rows = append(rows, *byLocation[loc])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total > rows[j].Total
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// RecordsForDay narrows a record set to one calendar day, for the
// single-day location breakdown. Dateless records never match.
func RecordsForDay(records []toll.Record, day time.Time) []toll.Record {
	y, m, d := day.Date()
	out := make([]toll.Record, 0, len(records))
	for _, r := range records {
		if r.Date == nil {
			continue
		}
		ry, rm, rd := r.Date.Date()
		if ry == y && rm == m && rd == d {
			out = append(out, r)
		}
	}
	return out
}
