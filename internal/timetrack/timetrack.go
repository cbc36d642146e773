package timetrack

import (
	"context"
	"time"

	"github.com/Flyrell/paycal/internal/schedule"
	"github.com/Flyrell/paycal/internal/status"
	"github.com/Flyrell/paycal/internal/store"
	"github.com/shopspring/decimal"
)

// PeriodAggregate is one pay period with its payday and hour totals.
type PeriodAggregate struct {
	Period        schedule.PayPeriod `json:"period"`
	Payday        time.Time          `json:"payday"`
	TotalRegular  decimal.Decimal    `json:"total_regular"`
	TotalOvertime decimal.Decimal    `json:"total_overtime"`
}

// Hours returns the totals as a status.Hours value.
func (a PeriodAggregate) Hours() status.Hours {
	return status.Hours{Regular: a.TotalRegular, Overtime: a.TotalOvertime}
}

// AggregatePeriod sums the parsed hours of every day in p that has a status.
// Days without a status contribute nothing. A lookup failure is returned as
// is and no partial total is reported.
func AggregatePeriod(ctx context.Context, p schedule.PayPeriod, lookup store.Lookup) (status.Hours, error) {
	var total status.Hours
	err := eachStatus(ctx, p, lookup, func(_ time.Time, text string) {
		total = total.Add(status.ParseHours(text))
	})
	if err != nil {
		return status.Hours{}, err
	}
	return total, nil
}

// eachStatus calls fn for every day of p with a non-empty status, in day
// order. It stops at the first lookup error.
func eachStatus(ctx context.Context, p schedule.PayPeriod, lookup store.Lookup, fn func(d time.Time, text string)) error {
	for _, d := range p.Days() {
		text, ok, err := lookup.Get(ctx, schedule.DayKey(d))
		if err != nil {
			return err
		}
		if !ok || text == "" {
			continue
		}
		fn(d, text)
	}
	return nil
}

// BuildSchedule derives every pay period of the anchor's year together with
// its payday and hour totals, in ascending start order. The result depends
// only on anchor and the statuses lookup returns; nothing is kept between
// calls, so callers rebuild after each edit.
func BuildSchedule(ctx context.Context, anchor time.Time, lookup store.Lookup) ([]PeriodAggregate, error) {
	periods, err := schedule.GeneratePeriods(anchor)
	if err != nil {
		return nil, err
	}

	out := make([]PeriodAggregate, 0, len(periods))
	for _, p := range periods {
		h, err := AggregatePeriod(ctx, p, lookup)
		if err != nil {
			return nil, err
		}
		out = append(out, PeriodAggregate{
			Period:        p,
			Payday:        schedule.Payday(p),
			TotalRegular:  h.Regular,
			TotalOvertime: h.Overtime,
		})
	}
	return out, nil
}

// Totals sums the hours of all aggregates.
func Totals(aggs []PeriodAggregate) status.Hours {
	var total status.Hours
	for _, a := range aggs {
		total = total.Add(a.Hours())
	}
	return total
}
