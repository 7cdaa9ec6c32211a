package analytics

import (
	"fmt"
	"sort"

	"github.com/tollscope/tollscope/internal/toll"
)

// UnassignedLabel is the display label for the empty-transponder group.
const UnassignedLabel = "Unassigned"

// VehicleRow is one vehicle's share of the filtered spend. Transponder is
// the raw tag id; the empty string is the unassigned group.
type VehicleRow struct {
	Transponder string      `json:"transponder"`
	Total       toll.Amount `json:"total"`
	Count       int         `json:"count"`
	Percent     float64     `json:"percent"`
}

// ByVehicle groups records by trimmed transponder id, sorted descending by
// total spend with ties kept in encounter order. Percent is each group's
// share of the grand total, or 0 for every row when the grand total is 0.
func ByVehicle(records []toll.Record) []VehicleRow {
	byID := make(map[string]*VehicleRow)
	var order []string
	var grand toll.Amount

	for i := range records {
		r := &records[i]
		id := r.Transponder
		row, ok := byID[id]
		if !ok {
			row = &VehicleRow{Transponder: id}
			byID[id] = row
			order = append(order, id)
		}
		row.Total += r.Amount
		row.Count++
		grand += r.Amount
	}

	rows := make([]VehicleRow, 0, len(order))
	for _, id := range order {
		rows = append(rows, *byID[id])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total > rows[j].Total
	})
	if grand > 0 {
		for i := range rows {
			rows[i].Percent = float64(rows[i].Total) / float64(grand) * 100
		}
	}
	return rows
}

// VehicleLabels assigns display labels in breakdown order: the unassigned
// group is always "Unassigned", every other group is "Vehicle N" where N is
// its 1-based rank by spend. Labels are a presentation artifact of the
// current view — they are recomputed whenever the input set changes and are
// not stable identifiers; the raw transponder id is the true key.
func VehicleLabels(rows []VehicleRow) map[string]string {
	labels := make(map[string]string, len(rows))
	for i, row := range rows {
		if row.Transponder == "" {
			labels[""] = UnassignedLabel
			continue
		}
		labels[row.Transponder] = fmt.Sprintf("Vehicle %d", i+1)
	}
	return labels
}
