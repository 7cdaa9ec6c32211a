package analytics

import (
	"sort"

	"github.com/tollscope/tollscope/internal/toll"
)

// dayKeyLayout keys trend points; YYYY-MM-DD sorts chronologically as text.
const dayKeyLayout = "2006-01-02"

// TrendPoint is one calendar day's spend and transaction count.
type TrendPoint struct {
	Day   string      `json:"day"`
	Total toll.Amount `json:"total"`
	Count int         `json:"count"`
}

// DailyTrend sums spend and counts transactions per calendar day, ordered
// ascending. Records without a date cannot be placed on a day axis and are
// silently excluded.
func DailyTrend(records []toll.Record) []TrendPoint {
	byDay := make(map[string]*TrendPoint)
	for i := range records {
		r := &records[i]
		if r.Date == nil {
			continue
		}
		key := r.Date.Format(dayKeyLayout)
		p, ok := byDay[key]
		if !ok {
			p = &TrendPoint{Day: key}
			byDay[key] = p
		}
		p.Total += r.Amount
		p.Count++
	}

	points := make([]TrendPoint, 0, len(byDay))
	for _, p := range byDay {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Day < points[j].Day
	})
	return points
}
