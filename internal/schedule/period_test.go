package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGeneratePeriodsFirstPeriod(t *testing.T) {
	periods, err := GeneratePeriods(day(2025, 8, 10))

	require.NoError(t, err)
	require.NotEmpty(t, periods)
	assert.Equal(t, day(2025, 8, 10), periods[0].Start)
	assert.Equal(t, day(2025, 8, 23), periods[0].End)
	assert.Equal(t, day(2025, 8, 28), periods[0].Payday())
}

func TestGeneratePeriodsTilesYear(t *testing.T) {
	anchor := day(2025, 8, 10)
	periods, err := GeneratePeriods(anchor)
	require.NoError(t, err)

	// 08-10, 08-24, 09-07, ..., 12-28
	require.Len(t, periods, 11)

	for i, p := range periods {
		assert.Equal(t, p.Start.AddDate(0, 0, 13), p.End, "period %d", i)
		if i > 0 {
			assert.Equal(t, periods[i-1].Start.AddDate(0, 0, 14), p.Start, "period %d", i)
			assert.Equal(t, periods[i-1].End.AddDate(0, 0, 1), p.Start, "no gap before period %d", i)
		}
	}

	last := periods[len(periods)-1]
	assert.Equal(t, day(2025, 12, 28), last.Start)
	assert.Equal(t, day(2026, 1, 10), last.End)
}

func TestGeneratePeriodsFromJanuary(t *testing.T) {
	periods, err := GeneratePeriods(day(2025, 1, 5))
	require.NoError(t, err)

	// 365 days / 14 -> starts on 01-05 .. 12-21, 27th would be 01-04-2026
	assert.Len(t, periods, 26)
	assert.Equal(t, day(2025, 12, 21), periods[25].Start)
}

func TestGeneratePeriodsYearBoundary(t *testing.T) {
	periods, err := GeneratePeriods(day(2025, 12, 20))

	require.NoError(t, err)
	require.Len(t, periods, 1)
	assert.Equal(t, day(2025, 12, 20), periods[0].Start)
	assert.Equal(t, day(2026, 1, 2), periods[0].End)
}

func TestGeneratePeriodsStartOnDecember31(t *testing.T) {
	periods, err := GeneratePeriods(day(2025, 12, 17))

	require.NoError(t, err)
	require.Len(t, periods, 2)
	assert.Equal(t, day(2025, 12, 31), periods[1].Start)
	assert.Equal(t, day(2026, 1, 13), periods[1].End)
}

func TestGeneratePeriodsIsRestartable(t *testing.T) {
	anchor := day(2025, 8, 10)

	first, err := GeneratePeriods(anchor)
	require.NoError(t, err)
	second, err := GeneratePeriods(anchor)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGeneratePeriodsNormalizesTimeOfDay(t *testing.T) {
	periods, err := GeneratePeriods(time.Date(2025, 8, 10, 17, 45, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, day(2025, 8, 10), periods[0].Start)
}

func TestGeneratePeriodsZeroAnchor(t *testing.T) {
	periods, err := GeneratePeriods(time.Time{})

	assert.ErrorIs(t, err, ErrInvalidAnchor)
	assert.Nil(t, periods)
}

func TestPayday(t *testing.T) {
	p := NewPayPeriod(day(2025, 12, 28))

	assert.Equal(t, day(2026, 1, 10), p.End)
	assert.Equal(t, day(2026, 1, 15), Payday(p))
}

func TestPayPeriodDays(t *testing.T) {
	p := NewPayPeriod(day(2025, 8, 10))
	days := p.Days()

	require.Len(t, days, 14)
	assert.Equal(t, p.Start, days[0])
	assert.Equal(t, p.End, days[13])
}

func TestPayPeriodContains(t *testing.T) {
	p := NewPayPeriod(day(2025, 8, 10))

	assert.True(t, p.Contains(day(2025, 8, 10)))
	assert.True(t, p.Contains(time.Date(2025, 8, 23, 23, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(day(2025, 8, 24)))
	assert.False(t, p.Contains(day(2025, 8, 9)))
	assert.Equal(t, "2025-08-10..2025-08-23", p.String())
}

func TestAnchorForYear(t *testing.T) {
	anchor := day(2025, 8, 10)

	tests := []struct {
		year int
		want time.Time
	}{
		{2025, day(2025, 1, 12)},
		{2026, day(2026, 1, 11)},
		{2024, day(2024, 1, 14)},
		{1, day(1, 1, 7)},
		{1500, day(1500, 1, 7)},
		{2400, day(2400, 1, 9)},
		{9999, day(9999, 1, 3)},
	}

	for _, tt := range tests {
		got := AnchorForYear(anchor, tt.year)
		assert.Equal(t, tt.want, got, "year %d", tt.year)
		assert.Equal(t, tt.year, got.Year())
		assert.Zero(t, daysBetween(anchor, got)%14, "stays on the chain")
	}
}

func TestAnchorForYearOnJanuaryFirst(t *testing.T) {
	anchor := day(2026, 1, 1)

	assert.Equal(t, anchor, AnchorForYear(anchor, 2026))
}

func TestPeriodContaining(t *testing.T) {
	anchor := day(2025, 8, 10)

	assert.Equal(t, NewPayPeriod(day(2025, 8, 10)), PeriodContaining(anchor, day(2025, 8, 15)))
	assert.Equal(t, NewPayPeriod(day(2025, 8, 24)), PeriodContaining(anchor, day(2025, 8, 24)))
	assert.Equal(t, NewPayPeriod(day(2025, 7, 27)), PeriodContaining(anchor, day(2025, 8, 9)))
	assert.Equal(t, NewPayPeriod(day(2025, 7, 27)), PeriodContaining(anchor, day(2025, 7, 27)))
	assert.Equal(t, NewPayPeriod(day(1500, 2, 18)), PeriodContaining(anchor, day(1500, 3, 1)))
	assert.Equal(t, NewPayPeriod(day(2400, 5, 28)), PeriodContaining(anchor, day(2400, 6, 1)))
}

func TestDaysBetweenBeyondDurationRange(t *testing.T) {
	assert.Equal(t, 146097, daysBetween(day(2000, 1, 1), day(2400, 1, 1)))
	assert.Equal(t, -146097, daysBetween(day(2400, 1, 1), day(2000, 1, 1)))
}
