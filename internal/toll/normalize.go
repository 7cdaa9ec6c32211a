package toll

import "bytes"

// xlsxMagic is the zip local-file-header signature; .xlsx workbooks are zip
// containers.
var xlsxMagic = []byte("PK\x03\x04")

// Format identifies the detected input encoding of an uploaded statement.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// DetectFormat sniffs the statement bytes. Anything that is not a zip
// container is treated as delimited text; ParseCSV rejects it properly if
// it is not.
func DetectFormat(data []byte) Format {
	if bytes.HasPrefix(data, xlsxMagic) {
		return FormatXLSX
	}
	return FormatCSV
}

// Normalize is the single entry point for uploaded statement bytes: it
// sniffs the format and returns the canonical record sequence. A
// FormatError means the upload is unusable and no records are returned.
func Normalize(data []byte) ([]Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &FormatError{Reason: "statement is empty"}
	}
	if DetectFormat(data) == FormatXLSX {
		return ParseXLSX(data)
	}
	return ParseCSV(bytes.NewReader(data))
}
