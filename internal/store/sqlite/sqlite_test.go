package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Flyrell/paycal/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "paycal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSetGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Set(ctx, "2025-08-10", "8 hrs"))

	status, ok, err := s.Get(ctx, "2025-08-10")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "8 hrs", status)
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)

	status, ok, err := s.Get(context.Background(), "2025-08-10")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, status)
}

func TestSetOverwrites(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Set(ctx, "2025-08-10", "8 hrs"))
	require.NoError(t, s.Set(ctx, "2025-08-10", "off"))

	status, _, err := s.Get(ctx, "2025-08-10")
	require.NoError(t, err)
	assert.Equal(t, "off", status)
}

func TestDeleteAndList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Set(ctx, "2025-08-15", "10hrs 2ot"))
	require.NoError(t, s.Set(ctx, "2025-08-10", "8 hrs"))
	require.NoError(t, s.Set(ctx, "2025-08-12", "off"))
	require.NoError(t, s.Delete(ctx, "2025-08-12"))
	require.NoError(t, s.Delete(ctx, "2025-01-01"))

	records, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []store.Record{
		{Day: "2025-08-10", Status: "8 hrs"},
		{Day: "2025-08-15", Status: "10hrs 2ot"},
	}, records)
}

func TestPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "paycal.db")

	s, err := New(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "2025-08-10", "8 hrs"))
	require.NoError(t, s.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	status, ok, err := reopened.Get(ctx, "2025-08-10")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "8 hrs", status)
}

func TestInMemory(t *testing.T) {
	ctx := context.Background()
	s, err := New(":memory:")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(ctx, "2025-08-10", "8 hrs"))
	records, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestGetAfterCloseFails(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "paycal.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, _, err = s.Get(context.Background(), "2025-08-10")

	assert.Error(t, err)
}
