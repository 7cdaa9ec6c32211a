// Package toll turns raw toll-operator statement exports (delimited text or
// spreadsheets) into canonical transaction records. It is the only package
// that touches file bytes; everything downstream works on []Record.
package toll

import (
	"fmt"
	"time"
)

// MissingLocation is the sentinel used when a row carries no exit
// interchange. A non-empty sentinel keeps map keys and display simple.
const MissingLocation = "—"

// Amount is a monetary value in cents. Statements carry dollar strings like
// "$1.72"; keeping cents as an integer avoids floating drift in totals.
// Refund/credit rows parse to negative values and are dropped at filter
// time, not here.
type Amount int64

// Dollars returns the amount as a floating dollar value for display math.
func (a Amount) Dollars() float64 {
	return float64(a) / 100
}

// String formats the amount as a dollar string, e.g. "$12.34".
func (a Amount) String() string {
	v := int64(a)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%d.%02d", sign, v/100, v%100)
}

// Record is one normalized toll transaction. Records are immutable once
// produced; aggregations never modify them.
type Record struct {
	// Amount of the transaction in cents.
	Amount Amount

	// Date is the authoritative timestamp for all time-based logic: the
	// exit timestamp when present, otherwise the posting timestamp. Nil
	// when neither parses; such records still count toward vehicle and
	// amount totals but are excluded from date-keyed aggregations.
	Date *time.Time

	// PostingDate and ExitDate are the independently parsed source
	// timestamps. Either may be nil.
	PostingDate *time.Time
	ExitDate    *time.Time

	// TransactionType is the operator's transaction descriptor (e.g.
	// "TOLL"), when the export carries one.
	TransactionType string

	// Transponder is the trimmed vehicle tag identifier. Empty means
	// "unassigned", which is a first-class group, not missing data.
	Transponder string

	// ExitInterchange is the raw toll location code, or MissingLocation
	// when the export has none. Aggregation keys by this raw code;
	// human-readable names are a render-time concern.
	ExitInterchange string

	VehicleClass string
	LicenseState string
	LicensePlate string

	// Raw is the original row, retained for traceability only. No
	// aggregation logic consults it.
	Raw []string
}

// HasDate reports whether the record can be placed on a time axis.
func (r *Record) HasDate() bool {
	return r.Date != nil
}
