package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Flyrell/paycal/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(map[string]string{"2025-08-10": "8 hrs"})

	s, ok, err := m.Get(ctx, "2025-08-10")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "8 hrs", s)

	_, ok, err = m.Get(ctx, "2025-08-11")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "2025-08-11", "off"))
	require.NoError(t, m.Delete(ctx, "2025-08-10"))

	records, err := m.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Record{{Day: "2025-08-11", Status: "off"}}, records)
}

func TestNewMemoryCopiesSeed(t *testing.T) {
	seed := map[string]string{"2025-08-10": "8 hrs"}
	m := NewMemory(seed)

	seed["2025-08-10"] = "changed"

	s, _, _ := m.Get(context.Background(), "2025-08-10")
	assert.Equal(t, "8 hrs", s)
}

func TestFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "statuses.json")

	f, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Set(ctx, "2025-08-15", "10hrs 2ot"))
	require.NoError(t, f.Set(ctx, "2025-08-10", "8 hrs"))

	reopened, err := OpenFile(path)
	require.NoError(t, err)

	records, err := reopened.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Record{
		{Day: "2025-08-10", Status: "8 hrs"},
		{Day: "2025-08-15", Status: "10hrs 2ot"},
	}, records)
}

func TestFileDelete(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "statuses.json")

	f, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Set(ctx, "2025-08-10", "8 hrs"))
	require.NoError(t, f.Delete(ctx, "2025-08-10"))
	require.NoError(t, f.Delete(ctx, "2025-08-11"))

	reopened, err := OpenFile(path)
	require.NoError(t, err)
	_, ok, err := reopened.Get(ctx, "2025-08-10")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpenFileMissingIsEmpty(t *testing.T) {
	f, err := OpenFile(filepath.Join(t.TempDir(), "none.json"))

	require.NoError(t, err)
	records, err := f.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestOpenFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statuses.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := OpenFile(path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing status file")
}

func TestSaveBlankDeletes(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(map[string]string{"2025-08-10": "8 hrs"})

	require.NoError(t, Save(ctx, m, "2025-08-10", "   "))

	_, ok, _ := m.Get(ctx, "2025-08-10")
	assert.False(t, ok)
}

func TestSaveRejectsBadKey(t *testing.T) {
	m := NewMemory(nil)

	err := Save(context.Background(), m, "08/10/2025", "8 hrs")

	assert.ErrorIs(t, err, schedule.ErrInvalidDayKey)
}

func TestListRange(t *testing.T) {
	m := NewMemory(map[string]string{
		"2025-08-09": "a",
		"2025-08-10": "b",
		"2025-08-23": "c",
		"2025-08-24": "d",
	})

	records, err := ListRange(context.Background(), m, "2025-08-10", "2025-08-23")

	require.NoError(t, err)
	assert.Equal(t, []Record{{Day: "2025-08-10", Status: "b"}, {Day: "2025-08-23", Status: "c"}}, records)
}

func TestLookupFunc(t *testing.T) {
	boom := errors.New("boom")
	var l Lookup = LookupFunc(func(_ context.Context, day string) (string, bool, error) {
		return "", false, boom
	})

	_, _, err := l.Get(context.Background(), "2025-08-10")
	assert.ErrorIs(t, err, boom)
}
