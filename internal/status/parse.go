package status

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// "2ot", "1.5 OT"
	overtimeRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*ot`)
	// "8hr", "10 hrs"
	hoursRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*hrs?`)
)

// Hours holds the regular and overtime hours parsed from a status.
type Hours struct {
	Regular  decimal.Decimal `json:"regular"`
	Overtime decimal.Decimal `json:"overtime"`
}

// Add returns the component-wise sum of h and o.
func (h Hours) Add(o Hours) Hours {
	return Hours{
		Regular:  h.Regular.Add(o.Regular),
		Overtime: h.Overtime.Add(o.Overtime),
	}
}

// IsZero reports whether both components are zero.
func (h Hours) IsZero() bool {
	return h.Regular.IsZero() && h.Overtime.IsZero()
}

// Equal compares by value, so 8 and 8.0 are equal.
func (h Hours) Equal(o Hours) bool {
	return h.Regular.Equal(o.Regular) && h.Overtime.Equal(o.Overtime)
}

// ParseHours extracts regular and overtime hours from free-text status.
// Matching is case-insensitive and only the first occurrence of each pattern
// counts. When both an hours and an overtime quantity are present, the hours
// quantity is the day's total and regular = total - overtime, which can go
// negative for inconsistent input ("2hrs 5ot"). Unmatched text yields zero.
func ParseHours(text string) Hours {
	lower := strings.ToLower(text)

	var h Hours
	otMatch := overtimeRe.FindStringSubmatch(lower)
	if otMatch != nil {
		h.Overtime = mustDecimal(otMatch[1])
	}

	hrsMatch := hoursRe.FindStringSubmatch(lower)
	switch {
	case hrsMatch != nil && otMatch == nil:
		h.Regular = mustDecimal(hrsMatch[1])
	case hrsMatch != nil:
		h.Regular = mustDecimal(hrsMatch[1]).Sub(h.Overtime)
	}

	return h
}

// mustDecimal converts a regex-validated number. The patterns only capture
// digits with an optional fraction, so the error path is unreachable.
func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
