package report

import "github.com/tollscope/tollscope/internal/analytics"

// FuelInputs are entirely user-supplied; toll data carries no distances.
type FuelInputs struct {
	AvgMilesPerTrip float64 `json:"avg_miles_per_trip"`
	MPG             float64 `json:"mpg"`
	GasPricePerGal  float64 `json:"gas_price_per_gallon"`
}

// FuelEstimate is the rough fuel cost companion to a travel summary.
type FuelEstimate struct {
	TotalMiles float64 `json:"total_miles"`
	Gallons    float64 `json:"gallons"`
	Cost       float64 `json:"cost"`
	WeeklyCost float64 `json:"weekly_cost"`
}

// EstimateFuel scales the trip count by the user's own per-trip mileage and
// fuel figures. Zero or missing MPG yields zero gallons rather than a
// division blow-up.
func EstimateFuel(s analytics.Summary, in FuelInputs) FuelEstimate {
	est := FuelEstimate{
		TotalMiles: in.AvgMilesPerTrip * float64(s.TotalTrips),
	}
	if in.MPG > 0 {
		est.Gallons = est.TotalMiles / in.MPG
	}
	est.Cost = est.Gallons * in.GasPricePerGal
	if s.WeeksInPeriod > 0 {
		est.WeeklyCost = est.Cost / s.WeeksInPeriod
	}
	return est
}
