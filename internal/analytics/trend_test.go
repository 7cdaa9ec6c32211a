package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tollscope/tollscope/internal/toll"
)

func TestDailyTrend(t *testing.T) {
	records := []toll.Record{
		rec("2024-01-03 09:00", 200, "TAG-1", "A"),
		rec("2024-01-01 09:00", 200, "TAG-1", "A"),
		rec("2024-01-01 10:30", 300, "TAG-2", "B"),
		rec("", 500, "TAG-3", "C"), // dateless, excluded from the day axis
	}

	trend := DailyTrend(records)
	require.Len(t, trend, 2)

	assert.Equal(t, TrendPoint{Day: "2024-01-01", Total: 500, Count: 2}, trend[0])
	assert.Equal(t, TrendPoint{Day: "2024-01-03", Total: 200, Count: 1}, trend[1])
}

func TestDailyTrendProperties(t *testing.T) {
	records := []toll.Record{
		rec("2024-03-05 08:00", 125, "", "A"),
		rec("2024-03-05 18:00", 75, "", "A"),
		rec("2024-03-06 08:00", 300, "", "B"),
		rec("2024-03-09 08:00", 50, "", "A"),
	}
	trend := DailyTrend(records)

	// Days strictly increasing and unique.
	for i := 1; i < len(trend); i++ {
		assert.Less(t, trend[i-1].Day, trend[i].Day)
	}

	// Trend totals account for every dated record.
	var trendTotal, recordTotal toll.Amount
	for _, p := range trend {
		trendTotal += p.Total
	}
	for _, r := range records {
		recordTotal += r.Amount
	}
	assert.Equal(t, recordTotal, trendTotal)
}

func TestDailyTrendEmpty(t *testing.T) {
	assert.Empty(t, DailyTrend(nil))
	assert.Empty(t, DailyTrend([]toll.Record{rec("", 100, "", "")}))
}
