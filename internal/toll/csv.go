package toll

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"
)

// ParseCSV reads delimited text and returns the normalized record sequence.
// The first non-blank row is the header row; rows after it are transactions.
// Returns a FormatError when the input is empty, has no header row, or has
// no recognizable amount column.
func ParseCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	// Real-world exports have ragged rows and sloppy quoting; accept both
	// rather than failing the upload.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &FormatError{Reason: "malformed delimited text", Err: err}
	}
	rows = dropBlankRows(rows)
	if len(rows) == 0 {
		return nil, &FormatError{Reason: "statement has no header row"}
	}

	cols, err := mapColumns(cleanHeaders(rows[0]))
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, parseRow(row, cols))
	}
	return records, nil
}

// parseRow normalizes one data row. Per-cell parse failures degrade to zero
// values; the row is always kept.
func parseRow(row []string, cols columnMap) Record {
	exitDate := ParseDate(cell(row, cols.exitDate))
	postingDate := ParseDate(cell(row, cols.postingDate))

	// Exit time is when travel actually happened; posting time is only a
	// fallback.
	date := exitDate
	if date == nil {
		date = postingDate
	}

	location := strings.TrimSpace(cell(row, cols.exitInterchange))
	if location == "" {
		location = MissingLocation
	}

	return Record{
		Amount:          ParseAmount(cell(row, cols.amount)),
		Date:            date,
		PostingDate:     postingDate,
		ExitDate:        exitDate,
		TransactionType: strings.TrimSpace(cell(row, cols.transaction)),
		Transponder:     strings.TrimSpace(cell(row, cols.transponder)),
		ExitInterchange: location,
		VehicleClass:    strings.TrimSpace(cell(row, cols.vehicleClass)),
		LicenseState:    strings.TrimSpace(cell(row, cols.licenseState)),
		LicensePlate:    strings.TrimSpace(cell(row, cols.licensePlate)),
		Raw:             row,
	}
}

// cell fetches a column value, tolerating unmapped columns and short rows.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	for i, h := range headers {
		cleaned[i] = strings.TrimSpace(h)
	}
	return cleaned
}

func dropBlankRows(rows [][]string) [][]string {
	kept := rows[:0]
	for _, row := range rows {
		blank := true
		for _, v := range row {
			if strings.TrimSpace(v) != "" {
				blank = false
				break
			}
		}
		if !blank {
			kept = append(kept, row)
		}
	}
	return kept
}
