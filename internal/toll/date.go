package toll

import (
	"strings"
	"time"
)

// statementLayouts is the primary cascade seen in turnpike exports:
// 12-hour timestamp, 24-hour timestamp, then date-only. Non-padded layouts
// also accept zero-padded components.
var statementLayouts = []string{
	"1/2/2006 3:04 PM",
	"1/2/2006 15:04",
	"1/2/2006",
}

// fallbackLayouts is the generic last resort for exports that use an
// ISO-ish or long-form date.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate parses a statement timestamp, trying the statement layouts in
// order and then the generic fallbacks; the first layout yielding a valid
// calendar date wins. Returns nil when nothing parses — an unparseable date
// is not an error, the row is still usable.
func ParseDate(value string) *time.Time {
	s := strings.TrimSpace(value)
	if s == "" {
		return nil
	}
	// Some exports write a lowercase meridiem ("9:30 am").
	if n := len(s); n >= 2 {
		switch s[n-2:] {
		case "am", "pm", "Am", "Pm", "aM", "pM":
			s = s[:n-2] + strings.ToUpper(s[n-2:])
		}
	}
	for _, layout := range statementLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
