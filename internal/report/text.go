package report

import (
	"fmt"
	"io"
)

// WriteText renders the report for terminal output.
func (r *Report) WriteText(w io.Writer) error {
	p := func(format string, args ...any) {
		fmt.Fprintf(w, format, args...)
	}

	p("=== Toll Statement Report ===\n")
	p("Period:          %s\n", r.Period)
	p("Records parsed:  %d\n", r.RecordCount)
	p("Records in view: %d\n", r.FilteredCount)
	p("Total spend:     %s\n", r.TotalSpend)

	if len(r.Trend) > 0 {
		p("\nDaily trend:\n")
		for _, t := range r.Trend {
			p("  %s  %8s  (%d transactions)\n", t.Day, t.Total, t.Count)
		}
	}

	if len(r.Vehicles) > 0 {
		p("\nBy vehicle:\n")
		for _, v := range r.Vehicles {
			id := v.Transponder
			if id == "" {
				id = "(no transponder)"
			}
			p("  %-12s %-20s %8s  %5.1f%%  (%d transactions)\n", v.Label, id, v.Total, v.Percent, v.Count)
		}
	}

	if len(r.Locations) > 0 {
		p("\nTop locations:\n")
		for i, l := range r.Locations {
			p("  %2d. %-45s %8s  (%d visits)\n", i+1, l.Name, l.Total, l.Count)
		}
	}

	p("\nJourneys: %d toll transactions in %d inferred journeys\n",
		r.Journeys.TotalTransactions, r.Journeys.TotalJourneys)
	p("Travel rate: ~%.1f weeks in period, %.1f trips/week on average\n",
		r.Travel.WeeksInPeriod, r.Travel.AvgWeeklyTrips)

	if len(r.Travel.WeekdayCounts) > 0 {
		p("By weekday:")
		for _, day := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
			if n, ok := r.Travel.WeekdayCounts[day]; ok {
				p(" %s=%d", day, n)
			}
		}
		p("\n")
	}

	if r.Fuel != nil {
		p("\nFuel estimate (user-supplied figures):\n")
		p("  ~%.0f miles, ~%.1f gallons, ~$%.2f total (~$%.2f/week)\n",
			r.Fuel.TotalMiles, r.Fuel.Gallons, r.Fuel.Cost, r.Fuel.WeeklyCost)
	}
	return nil
}
