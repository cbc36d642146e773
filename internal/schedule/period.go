package schedule

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

const (
	// PeriodLength is the number of calendar days in one pay period.
	PeriodLength = 14
	// PaydayOffset is the number of days between a period's end and its payday.
	PaydayOffset = 5
)

// PayPeriod is a 14-day pay period. Both Start and End are inclusive UTC
// midnights, End = Start + 13 days.
type PayPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewPayPeriod returns the period that starts on the calendar day of start.
func NewPayPeriod(start time.Time) PayPeriod {
	s := truncateToDay(start)
	return PayPeriod{Start: s, End: s.AddDate(0, 0, PeriodLength-1)}
}

// Payday returns the period's payday.
func (p PayPeriod) Payday() time.Time {
	return Payday(p)
}

// Contains reports whether the calendar day of t falls within the period.
func (p PayPeriod) Contains(t time.Time) bool {
	d := truncateToDay(t)
	return !d.Before(p.Start) && !d.After(p.End)
}

// Days returns every calendar day from Start to End inclusive.
func (p PayPeriod) Days() []time.Time {
	var days []time.Time
	for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// String returns the period as "YYYY-MM-DD..YYYY-MM-DD".
func (p PayPeriod) String() string {
	return DayKey(p.Start) + ".." + DayKey(p.End)
}

// Payday returns the disbursement date for p: five days after its end.
func Payday(p PayPeriod) time.Time {
	return p.End.AddDate(0, 0, PaydayOffset)
}

// GeneratePeriods returns the biweekly pay periods of the anchor's year,
// starting at the anchor. Generation stops once a start would fall after
// December 31, so the last period may end in the following year.
func GeneratePeriods(anchor time.Time) ([]PayPeriod, error) {
	if anchor.IsZero() {
		return nil, fmt.Errorf("%w: zero date", ErrInvalidAnchor)
	}

	start := truncateToDay(anchor)
	yearEnd := time.Date(start.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:     rrule.WEEKLY,
		Interval: 2,
		Dtstart:  start,
		Until:    yearEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAnchor, err)
	}

	starts := r.All()
	periods := make([]PayPeriod, 0, len(starts))
	for _, s := range starts {
		periods = append(periods, NewPayPeriod(s.UTC()))
	}
	return periods, nil
}

// AnchorForYear moves anchor along its biweekly chain to the first period
// start on or after January 1 of year. The chain is unbounded in both
// directions, so any year can be served from a single configured anchor.
func AnchorForYear(anchor time.Time, year int) time.Time {
	a := truncateToDay(anchor)
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	days := daysBetween(a, jan1)
	k := days / PeriodLength
	if days > 0 && days%PeriodLength != 0 {
		k++
	}
	return a.AddDate(0, 0, k*PeriodLength)
}

// PeriodContaining returns the period of anchor's chain that contains t.
func PeriodContaining(anchor, t time.Time) PayPeriod {
	a := truncateToDay(anchor)
	d := truncateToDay(t)

	days := daysBetween(a, d)
	k := days / PeriodLength
	if days < 0 && days%PeriodLength != 0 {
		k--
	}
	return NewPayPeriod(a.AddDate(0, 0, k*PeriodLength))
}

// daysBetween counts whole days from a to b, both UTC midnights. It avoids
// time.Duration, which saturates at about 292 years.
func daysBetween(a, b time.Time) int {
	return int((b.Unix() - a.Unix()) / 86400)
}
