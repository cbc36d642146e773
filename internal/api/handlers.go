package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Flyrell/paycal/internal/schedule"
	"github.com/Flyrell/paycal/internal/store"
	"github.com/Flyrell/paycal/internal/timetrack"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the schedule and the status store over HTTP. It keeps no
// derived state: every schedule request is a fresh build.
type Handler struct {
	Store  store.Store
	Anchor time.Time
	Logger *zap.Logger
	Now    func() time.Time
}

// NewHandler creates a handler for the given store and anchor.
func NewHandler(s store.Store, anchor time.Time, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Store: s, Anchor: anchor, Logger: logger, Now: time.Now}
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListPeriods returns the periods of ?year= (default: the anchor's year).
func (h *Handler) ListPeriods(w http.ResponseWriter, r *http.Request) {
	anchor, err := h.anchorFor(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}

	periods, err := schedule.GeneratePeriods(anchor)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid anchor", err)
		return
	}

	dtos := make([]PeriodDTO, len(periods))
	for i, p := range periods {
		dtos[i] = toPeriodDTO(p)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetSchedule returns periods, paydays and hour totals of ?year=.
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	anchor, err := h.anchorFor(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}

	aggs, err := timetrack.BuildSchedule(r.Context(), anchor, h.Store)
	if err != nil {
		h.Logger.Error("build schedule", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to build schedule", err)
		return
	}

	resp := ScheduleDTO{
		Anchor:  schedule.DayKey(anchor),
		Periods: make([]AggregateDTO, len(aggs)),
	}
	for i, a := range aggs {
		resp.Periods[i] = toAggregateDTO(a)
	}
	total := timetrack.Totals(aggs)
	resp.TotalRegular = number(total.Regular)
	resp.TotalOvertime = number(total.Overtime)

	writeJSON(w, http.StatusOK, resp)
}

// maxEventSpanMonths bounds the ?from=..?to= window of ListEvents.
const maxEventSpanMonths = 12

// ListEvents returns calendar markers between ?from= and ?to= (default: the
// current month). The window may span at most a year.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	now := h.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	var err error
	if v := r.URL.Query().Get("from"); v != "" {
		if from, err = schedule.ParseDayKey(v); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid from", err)
			return
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if to, err = schedule.ParseDayKey(v); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid to", err)
			return
		}
	}
	if to.Before(from) {
		writeError(w, http.StatusBadRequest, "Invalid range", errors.New("to is before from"))
		return
	}
	if to.After(from.AddDate(0, maxEventSpanMonths, 0)) {
		writeError(w, http.StatusBadRequest, "Invalid range",
			fmt.Errorf("range exceeds %d months", maxEventSpanMonths))
		return
	}

	periods := timetrack.PeriodsBetween(h.Anchor, from, to)
	events, err := timetrack.BuildEvents(r.Context(), periods, h.Store, from, to)
	if err != nil {
		h.Logger.Error("build events", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to build events", err)
		return
	}

	dtos := make([]EventDTO, len(events))
	for i, e := range events {
		dtos[i] = toEventDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// ListStatuses returns every stored status.
func (h *Handler) ListStatuses(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list statuses", err)
		return
	}

	dtos := make([]StatusDTO, len(records))
	for i, rec := range records {
		dtos[i] = toStatusDTO(rec.Day, rec.Status)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetStatus returns the status of a single day.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(w, r)
	if !ok {
		return
	}

	text, found, err := h.Store.Get(r.Context(), day)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to read status", err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "No status for "+day, nil)
		return
	}
	writeJSON(w, http.StatusOK, toStatusDTO(day, text))
}

// PutStatus stores the status of a day. A blank status deletes it.
func (h *Handler) PutStatus(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(w, r)
	if !ok {
		return
	}

	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := store.Save(r.Context(), h.Store, day, req.Status); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save status", err)
		return
	}
	h.Logger.Debug("status saved", zap.String("day", day), zap.String("status", req.Status))

	writeJSON(w, http.StatusOK, toStatusDTO(day, req.Status))
}

// DeleteStatus removes the status of a day.
func (h *Handler) DeleteStatus(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(w, r)
	if !ok {
		return
	}

	if err := h.Store.Delete(r.Context(), day); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete status", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// anchorFor resolves ?year= onto the anchor's biweekly chain.
func (h *Handler) anchorFor(r *http.Request) (time.Time, error) {
	v := r.URL.Query().Get("year")
	if v == "" {
		return h.Anchor, nil
	}
	year, err := strconv.Atoi(v)
	if err != nil || year < 1 || year > 9999 {
		return time.Time{}, errors.New("year must be a number between 1 and 9999")
	}
	return schedule.AnchorForYear(h.Anchor, year), nil
}

func dayParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	day := chi.URLParam(r, "day")
	if _, err := schedule.ParseDayKey(day); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid day", err)
		return "", false
	}
	return day, true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
