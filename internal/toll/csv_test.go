package toll

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Posting Date,Exit Date,Amount,Transaction,Transponder,Exit Interchange,Class,License State,License Plate
01/02/2024,01/01/2024 09:00 AM,$2.00,TOLL,TAG-1541,T331 E,2,PA,ABC1234
01/03/2024,,$3.50,TOLL, TAG-2677 ,,2,PA,XYZ999
,,abc,,,  ,,,
`

func TestParseCSV(t *testing.T) {
	records, err := ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, Amount(200), first.Amount)
	require.NotNil(t, first.ExitDate)
	require.NotNil(t, first.PostingDate)
	// Exit timestamp wins over posting date.
	assert.True(t, first.Date.Equal(*first.ExitDate))
	assert.True(t, first.Date.Equal(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, "TAG-1541", first.Transponder)
	assert.Equal(t, "T331 E", first.ExitInterchange)
	assert.Equal(t, "2", first.VehicleClass)
	assert.Equal(t, "PA", first.LicenseState)
	assert.Equal(t, "ABC1234", first.LicensePlate)
	assert.Equal(t, sampleCSVRow(1), first.Raw)

	second := records[1]
	assert.Equal(t, Amount(350), second.Amount)
	assert.Nil(t, second.ExitDate)
	// No exit timestamp: posting date becomes the authoritative date.
	require.NotNil(t, second.Date)
	assert.True(t, second.Date.Equal(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "TAG-2677", second.Transponder, "transponder must be trimmed")
	assert.Equal(t, MissingLocation, second.ExitInterchange)

	// Per-cell failures degrade; the row is still present.
	third := records[2]
	assert.Equal(t, Amount(0), third.Amount)
	assert.Nil(t, third.Date)
	assert.Equal(t, "", third.Transponder)
	assert.Equal(t, MissingLocation, third.ExitInterchange)
}

func sampleCSVRow(n int) []string {
	lines := strings.Split(strings.TrimSpace(sampleCSV), "\n")
	fields := strings.Split(lines[n], ",")
	// encoding/csv trims leading space per reader configuration.
	for i, f := range fields {
		fields[i] = strings.TrimLeft(f, " ")
	}
	return fields
}

func TestParseCSVHeaderDrift(t *testing.T) {
	in := "Toll Amount,Exit Date/Time,Transponder #\n$1.72,01/01/2024 08:00 AM,TAG-9\n"
	records, err := ParseCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, Amount(172), records[0].Amount)
	require.NotNil(t, records[0].Date)
	assert.Equal(t, "TAG-9", records[0].Transponder)
}

func TestParseCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty input", "", "no header row"},
		{"blank lines only", "\n\n  \n", "no header row"},
		{"no amount column", "Posting Date,Exit Date\n01/01/2024,01/01/2024\n", "Amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tt.in))
			require.Error(t, err)
			var formatErr *FormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Contains(t, formatErr.Error(), tt.want)
		})
	}
}
