package timetrack

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Flyrell/paycal/internal/schedule"
	"github.com/Flyrell/paycal/internal/status"
	"github.com/Flyrell/paycal/internal/store"
)

// EventKind identifies what a calendar marker represents.
type EventKind string

const (
	KindStartPay EventKind = "start-pay"
	KindEndPay   EventKind = "end-pay"
	KindStatus   EventKind = "status"
	KindPayday   EventKind = "payday"
)

// Event is a single calendar marker for the rendering layer.
type Event struct {
	Date  time.Time    `json:"date"`
	Kind  EventKind    `json:"kind"`
	Title string       `json:"title"`
	Class status.Class `json:"class,omitempty"`
}

// BuildEvents returns the markers of periods: period start and end, one per
// day with a status, and the payday with the period's totals. Markers outside
// [from, to] are dropped; a zero bound is open. The result is ordered by
// date, keeping period order within a day.
func BuildEvents(ctx context.Context, periods []schedule.PayPeriod, lookup store.Lookup, from, to time.Time) ([]Event, error) {
	var events []Event
	for _, p := range periods {
		events = append(events,
			Event{Date: p.Start, Kind: KindStartPay, Title: "START PAY"},
			Event{Date: p.End, Kind: KindEndPay, Title: "END PAY"},
		)

		var total status.Hours
		err := eachStatus(ctx, p, lookup, func(d time.Time, text string) {
			total = total.Add(status.ParseHours(text))
			events = append(events, Event{
				Date:  d,
				Kind:  KindStatus,
				Title: text,
				Class: status.Classify(text),
			})
		})
		if err != nil {
			return nil, err
		}

		events = append(events, Event{
			Date:  schedule.Payday(p),
			Kind:  KindPayday,
			Title: PaydayTitle(p, total),
		})
	}

	filtered := events[:0]
	for _, e := range events {
		if !from.IsZero() && e.Date.Before(from) {
			continue
		}
		if !to.IsZero() && e.Date.After(to) {
			continue
		}
		filtered = append(filtered, e)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.Before(filtered[j].Date)
	})
	return filtered, nil
}

// PaydayTitle renders the payday marker text, e.g.
// "PAYDAY\n08/10-08/23\nREG: 16 OT: 2".
func PaydayTitle(p schedule.PayPeriod, h status.Hours) string {
	return fmt.Sprintf("PAYDAY\n%s-%s\nREG: %s OT: %s",
		p.Start.Format("01/02"), p.End.Format("01/02"),
		h.Regular.String(), h.Overtime.String())
}

// PeriodsBetween returns the periods of anchor's chain that have a marker
// (start, end or payday) inside [from, to], in start order.
func PeriodsBetween(anchor, from, to time.Time) []schedule.PayPeriod {
	lead := schedule.PeriodLength - 1 + schedule.PaydayOffset
	p := schedule.PeriodContaining(anchor, from.AddDate(0, 0, -lead))

	var out []schedule.PayPeriod
	for !p.Start.After(to) {
		if !schedule.Payday(p).Before(from) {
			out = append(out, p)
		}
		p = schedule.NewPayPeriod(p.Start.AddDate(0, 0, schedule.PeriodLength))
	}
	return out
}
