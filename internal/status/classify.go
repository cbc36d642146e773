package status

import "strings"

// Class is the marker category of a status, used for colouring.
type Class string

const (
	ClassRegular  Class = "regular"
	ClassOvertime Class = "overtime"
	ClassOff      Class = "off"
	ClassCanal    Class = "canal"
)

// Classify buckets a status by keyword. Checks run in priority order, so
// "off, 2ot" is overtime.
func Classify(text string) Class {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "ot"):
		return ClassOvertime
	case strings.Contains(lower, "off"):
		return ClassOff
	case strings.Contains(lower, "canal"):
		return ClassCanal
	default:
		return ClassRegular
	}
}
