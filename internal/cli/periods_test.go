package cli

import (
	"strings"
	"testing"

	"github.com/Flyrell/paycal/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodsDefaultAnchor(t *testing.T) {
	homeDir := setupHome(t, nil)
	cmd, stdout := newTestCmd()

	err := runPeriods(cmd, homeDir, "", fixedNow)

	require.NoError(t, err)
	out := stdout.String()
	assert.Contains(t, out, "Pay periods from 2025-08-10")
	assert.Contains(t, out, " 1. 2025-08-10 → 2025-08-23   payday 2025-08-28")
	assert.Contains(t, out, "11. 2025-12-28 → 2026-01-10   payday 2026-01-15")
	assert.NotContains(t, out, "12. ")
}

func TestPeriodsMarksCurrent(t *testing.T) {
	homeDir := setupHome(t, nil)
	cmd, stdout := newTestCmd()

	require.NoError(t, runPeriods(cmd, homeDir, "", fixedNow))

	for _, line := range strings.Split(stdout.String(), "\n") {
		if strings.Contains(line, "(current)") {
			assert.Contains(t, line, "2025-09-07 → 2025-09-20")
			return
		}
	}
	t.Fatal("no current period marked")
}

func TestPeriodsYear(t *testing.T) {
	homeDir := setupHome(t, nil)
	cmd, stdout := newTestCmd()

	err := runPeriods(cmd, homeDir, "2026", fixedNow)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Pay periods from 2026-01-11")
	assert.Contains(t, stdout.String(), " 1. 2026-01-11 → 2026-01-24   payday 2026-01-29")
}

func TestPeriodsInvalidYear(t *testing.T) {
	homeDir := setupHome(t, nil)
	cmd, _ := newTestCmd()

	err := runPeriods(cmd, homeDir, "twenty", fixedNow)

	assert.Error(t, err)
}

func TestPeriodsInvalidAnchorConfig(t *testing.T) {
	homeDir := setupHome(t, nil)
	t.Setenv("PAYCAL_ANCHOR", "soon")
	cmd, _ := newTestCmd()

	err := runPeriods(cmd, homeDir, "", fixedNow)

	assert.Error(t, err)
	_, loadErr := config.Load(homeDir)
	assert.Error(t, loadErr)
}
