package api

import (
	"encoding/json"

	"github.com/Flyrell/paycal/internal/schedule"
	"github.com/Flyrell/paycal/internal/status"
	"github.com/Flyrell/paycal/internal/timetrack"
	"github.com/shopspring/decimal"
)

// PeriodDTO is a pay period with its payday.
type PeriodDTO struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Payday string `json:"payday"`
}

// AggregateDTO is one row of the schedule.
type AggregateDTO struct {
	PeriodDTO
	Regular  json.Number `json:"regular"`
	Overtime json.Number `json:"overtime"`
}

// ScheduleDTO is the response of GET /api/schedule.
type ScheduleDTO struct {
	Anchor        string         `json:"anchor"`
	Periods       []AggregateDTO `json:"periods"`
	TotalRegular  json.Number    `json:"total_regular"`
	TotalOvertime json.Number    `json:"total_overtime"`
}

// EventDTO is a calendar marker.
type EventDTO struct {
	Date  string `json:"date"`
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Class string `json:"class,omitempty"`
}

// StatusDTO is a stored day status with its parsed hours.
type StatusDTO struct {
	Day      string      `json:"day"`
	Status   string      `json:"status"`
	Class    string      `json:"class"`
	Regular  json.Number `json:"regular"`
	Overtime json.Number `json:"overtime"`
}

// StatusRequest is the body of PUT /api/status/{day}.
type StatusRequest struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func toPeriodDTO(p schedule.PayPeriod) PeriodDTO {
	return PeriodDTO{
		Start:  schedule.DayKey(p.Start),
		End:    schedule.DayKey(p.End),
		Payday: schedule.DayKey(schedule.Payday(p)),
	}
}

func toAggregateDTO(a timetrack.PeriodAggregate) AggregateDTO {
	return AggregateDTO{
		PeriodDTO: toPeriodDTO(a.Period),
		Regular:   number(a.TotalRegular),
		Overtime:  number(a.TotalOvertime),
	}
}

func toEventDTO(e timetrack.Event) EventDTO {
	return EventDTO{
		Date:  schedule.DayKey(e.Date),
		Kind:  string(e.Kind),
		Title: e.Title,
		Class: string(e.Class),
	}
}

func toStatusDTO(day, text string) StatusDTO {
	h := status.ParseHours(text)
	return StatusDTO{
		Day:      day,
		Status:   text,
		Class:    string(status.Classify(text)),
		Regular:  number(h.Regular),
		Overtime: number(h.Overtime),
	}
}
