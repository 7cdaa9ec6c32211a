// Package report assembles the core's aggregates into one serializable
// snapshot for the presentation layer. This is the render boundary: display
// labels and plaza names are applied here, never inside aggregation.
package report

import (
	"time"

	"github.com/tollscope/tollscope/internal/analytics"
	"github.com/tollscope/tollscope/internal/plaza"
	"github.com/tollscope/tollscope/internal/toll"
)

// DefaultTopLimit bounds the location ranking when the caller does not ask
// for a specific size.
const DefaultTopLimit = 10

// Options selects what a report covers.
type Options struct {
	Period   analytics.PeriodSpec
	Tags     analytics.TagQuery
	TopLimit int

	// Fuel enables the user-supplied fuel cost estimate. No distance is
	// ever derived from toll data.
	Fuel *FuelInputs
}

// VehicleEntry is a breakdown row with its display label attached.
type VehicleEntry struct {
	Label       string      `json:"label"`
	Transponder string      `json:"transponder"`
	Total       toll.Amount `json:"total"`
	Count       int         `json:"count"`
	Percent     float64     `json:"percent"`
}

// LocationEntry is a ranking row with its display name attached.
type LocationEntry struct {
	Location string      `json:"location"`
	Name     string      `json:"name"`
	Count    int         `json:"count"`
	Total    toll.Amount `json:"total"`
}

// Report is a complete analysis snapshot. Plain values throughout, so the
// consumer can render charts and tables repeatedly from the same snapshot.
type Report struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Period      analytics.PeriodKind `json:"period"`

	RecordCount   int         `json:"record_count"`
	FilteredCount int         `json:"filtered_count"`
	TotalSpend    toll.Amount `json:"total_spend"`

	Trend     []analytics.TrendPoint   `json:"trend"`
	Vehicles  []VehicleEntry           `json:"vehicles"`
	Locations []LocationEntry          `json:"locations"`
	Journeys  analytics.JourneySummary `json:"journeys"`
	Travel    analytics.Summary        `json:"travel"`

	Fuel *FuelEstimate `json:"fuel,omitempty"`
}

// Build runs the filter and every aggregator over one normalized record set
// and decorates the results for display.
func Build(records []toll.Record, opts Options, plazas *plaza.Directory) *Report {
	if plazas == nil {
		plazas = plaza.Default()
	}
	limit := opts.TopLimit
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	filtered := analytics.Filter(records, opts.Period, opts.Tags)

	var total toll.Amount
	for _, r := range filtered {
		total += r.Amount
	}

	vehicles := analytics.ByVehicle(filtered)
	labels := analytics.VehicleLabels(vehicles)

	rep := &Report{
		GeneratedAt:   time.Now(),
		Period:        opts.Period.Kind,
		RecordCount:   len(records),
		FilteredCount: len(filtered),
		TotalSpend:    total,
		Trend:         analytics.DailyTrend(filtered),
		Journeys:      analytics.InferJourneys(filtered),
		Travel:        analytics.TravelSummary(filtered, opts.Period),
	}

	rep.Vehicles = make([]VehicleEntry, 0, len(vehicles))
	for _, v := range vehicles {
		rep.Vehicles = append(rep.Vehicles, VehicleEntry{
			Label:       labels[v.Transponder],
			Transponder: v.Transponder,
			Total:       v.Total,
			Count:       v.Count,
			Percent:     v.Percent,
		})
	}

	locations := analytics.TopLocations(filtered, limit)
	rep.Locations = make([]LocationEntry, 0, len(locations))
	for _, l := range locations {
		rep.Locations = append(rep.Locations, LocationEntry{
			Location: l.Location,
			Name:     plazas.DisplayName(l.Location),
			Count:    l.Count,
			Total:    l.Total,
		})
	}

	if opts.Fuel != nil {
		est := EstimateFuel(rep.Travel, *opts.Fuel)
		rep.Fuel = &est
	}
	return rep
}

// DayBreakdown runs the location ranking over a single calendar day of the
// filtered set — the same reducer as the top list, at day granularity.
func DayBreakdown(records []toll.Record, opts Options, day time.Time, plazas *plaza.Directory) []LocationEntry {
	if plazas == nil {
		plazas = plaza.Default()
	}
	filtered := analytics.Filter(records, opts.Period, opts.Tags)
	rows := analytics.TopLocations(analytics.RecordsForDay(filtered, day), 0)

	entries := make([]LocationEntry, 0, len(rows))
	for _, l := range rows {
		entries = append(entries, LocationEntry{
			Location: l.Location,
			Name:     plazas.DisplayName(l.Location),
			Count:    l.Count,
			Total:    l.Total,
		})
	}
	return entries
}
