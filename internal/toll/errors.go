package toll

import "fmt"

// FormatError reports input that cannot be normalized at all: unrecognized
// file type, empty input, a workbook without sheets, or a table without an
// amount column. It is fatal for the upload; no partial record set is
// returned alongside it.
//
// Per-cell problems (bad date, bad amount) are not FormatErrors — they
// degrade to zero values so one malformed field never discards an
// otherwise-usable row.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
