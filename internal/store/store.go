package store

import (
	"context"
	"strings"

	"github.com/Flyrell/paycal/internal/schedule"
)

// Record is a single day status.
type Record struct {
	Day    string `json:"day"` // YYYY-MM-DD
	Status string `json:"status"`
}

// Lookup is the read capability the schedule engine needs. A missing key is
// reported with ok == false and a nil error; err is reserved for failures of
// the store itself.
type Lookup interface {
	Get(ctx context.Context, day string) (status string, ok bool, err error)
}

// LookupFunc adapts a plain function to Lookup.
type LookupFunc func(ctx context.Context, day string) (string, bool, error)

func (f LookupFunc) Get(ctx context.Context, day string) (string, bool, error) {
	return f(ctx, day)
}

// Store is a read-write status store.
type Store interface {
	Lookup
	Set(ctx context.Context, day, status string) error
	Delete(ctx context.Context, day string) error
	// List returns all records sorted by day.
	List(ctx context.Context) ([]Record, error)
	Close() error
}

// Save stores status for day, or deletes the day when status is blank.
// The day key is validated before the store is touched.
func Save(ctx context.Context, s Store, day, status string) error {
	if _, err := schedule.ParseDayKey(day); err != nil {
		return err
	}
	if strings.TrimSpace(status) == "" {
		return s.Delete(ctx, day)
	}
	return s.Set(ctx, day, status)
}

// ListRange returns the records whose day falls within [from, to] inclusive.
// Day keys sort lexically in date order, so the comparison is on strings.
func ListRange(ctx context.Context, s Store, from, to string) ([]Record, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var out []Record
	for _, r := range all {
		if r.Day >= from && r.Day <= to {
			out = append(out, r)
		}
	}
	return out, nil
}
