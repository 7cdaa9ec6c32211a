package toll

import (
	"math"
	"strconv"
	"strings"
)

var amountCleaner = strings.NewReplacer("$", "", ",", "")

// ParseAmount converts a statement cell like "$1.72", "1,234.50" or "7"
// into cents. Absent or unparsable values yield 0 — a malformed amount must
// not abort the whole file.
func ParseAmount(value string) Amount {
	s := strings.TrimSpace(amountCleaner.Replace(value))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return Amount(math.Round(f * 100))
}
