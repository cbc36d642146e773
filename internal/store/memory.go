package store

import (
	"context"
	"sort"
	"sync"
)

// Memory is an in-memory Store, used by tests and by the "memory" store kind.
type Memory struct {
	mu       sync.RWMutex
	statuses map[string]string
}

// NewMemory returns a Memory store seeded with a copy of initial.
func NewMemory(initial map[string]string) *Memory {
	m := &Memory{statuses: make(map[string]string, len(initial))}
	for k, v := range initial {
		m.statuses[k] = v
	}
	return m
}

func (m *Memory) Get(_ context.Context, day string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.statuses[day]
	return s, ok, nil
}

func (m *Memory) Set(_ context.Context, day, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statuses[day] = status
	return nil
}

func (m *Memory) Delete(_ context.Context, day string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.statuses, day)
	return nil
}

func (m *Memory) List(_ context.Context) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedRecords(m.statuses), nil
}

func (m *Memory) Close() error { return nil }

func sortedRecords(statuses map[string]string) []Record {
	records := make([]Record, 0, len(statuses))
	for day, s := range statuses {
		records = append(records, Record{Day: day, Status: s})
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Day < records[j].Day
	})
	return records
}
