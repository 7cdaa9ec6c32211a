package toll

import "strings"

// Toll operators vary column names across exports ("Exit Date" vs
// "Exit Date/Time", "Transponder #" vs "Transponder Number"), so header
// matching is deliberately tolerant: case-insensitive, whitespace-collapsed,
// "#" treated as the word "number", and a candidate matches a header when
// either normalized form is a substring of the other. Every field lookup
// goes through one alias table and one matching rule; there are no
// per-operator configurations.

// fieldAliases lists the acceptable header names per logical field, in
// priority order.
var fieldAliases = map[string][]string{
	"amount":           {"Amount"},
	"posting date":     {"Posting Date"},
	"exit date":        {"Exit Date"},
	"transaction":      {"Transaction"},
	"transponder":      {"Transponder"},
	"exit interchange": {"Exit Interchange"},
	"vehicle class":    {"Class"},
	"license state":    {"License State"},
	"license plate":    {"License Plate", "License"},
}

// normalizeHeader canonicalizes a header for comparison: trim, lowercase,
// collapse runs of whitespace, and spell out "#" as " number".
func normalizeHeader(h string) string {
	h = strings.ReplaceAll(h, "#", " number")
	h = strings.ToLower(h)
	return strings.Join(strings.Fields(h), " ")
}

// headerMatches reports whether a header satisfies an alias under the
// bidirectional substring rule. Exact-match-only would break on real
// exports that add qualifier words ("Toll Amount", "Exit Date/Time").
func headerMatches(header, alias string) bool {
	h := normalizeHeader(header)
	a := normalizeHeader(alias)
	if h == "" || a == "" {
		return false
	}
	return h == a || strings.Contains(h, a) || strings.Contains(a, h)
}

// findColumn returns the index of the first header satisfying any alias,
// trying aliases in priority order, or -1 when nothing matches.
func findColumn(headers []string, aliases ...string) int {
	for _, alias := range aliases {
		for i, h := range headers {
			if headerMatches(h, alias) {
				return i
			}
		}
	}
	return -1
}

// columnMap holds the resolved column index per logical field; -1 means the
// export does not carry that field.
type columnMap struct {
	amount          int
	postingDate     int
	exitDate        int
	transaction     int
	transponder     int
	exitInterchange int
	vehicleClass    int
	licenseState    int
	licensePlate    int
}

// mapColumns resolves the header row into a columnMap. Only the amount
// column is mandatory; everything else degrades to absent.
func mapColumns(headers []string) (columnMap, error) {
	m := columnMap{
		amount:          findColumn(headers, fieldAliases["amount"]...),
		postingDate:     findColumn(headers, fieldAliases["posting date"]...),
		exitDate:        findColumn(headers, fieldAliases["exit date"]...),
		transaction:     findColumn(headers, fieldAliases["transaction"]...),
		transponder:     findColumn(headers, fieldAliases["transponder"]...),
		exitInterchange: findColumn(headers, fieldAliases["exit interchange"]...),
		vehicleClass:    findColumn(headers, fieldAliases["vehicle class"]...),
		licenseState:    findColumn(headers, fieldAliases["license state"]...),
		licensePlate:    findColumn(headers, fieldAliases["license plate"]...),
	}
	if m.amount < 0 {
		return m, &FormatError{Reason: `statement has no recognizable "Amount" column`}
	}
	return m, nil
}
