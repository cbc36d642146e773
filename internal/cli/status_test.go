package cli

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execStatusSet(homeDir, day, text string, pk PromptKit, interactive bool) (string, error) {
	cmd, stdout := newTestCmd()
	err := runStatusSet(cmd, homeDir, day, text, pk, interactive, fixedNow)
	return stdout.String(), err
}

func TestResolveDay(t *testing.T) {
	now := fixedNow()

	tests := []struct {
		in   string
		want string
	}{
		{"2025-08-11", "2025-08-11"},
		{"today", "2025-09-15"},
		{"yesterday", "2025-09-14"},
		{"Sep 1", "2025-09-01"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := resolveDay(tt.in, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := resolveDay("someday", now)
	assert.Error(t, err)
}

func TestStatusSetStoresText(t *testing.T) {
	homeDir := setupHome(t, nil)

	stdout, err := execStatusSet(homeDir, "2025-08-12", "10hrs 2ot", PromptKit{}, false)

	require.NoError(t, err)
	assert.Contains(t, stdout, "2025-08-12")
	assert.Contains(t, stdout, "REG 8 OT 2")
	assert.Contains(t, stdout, "(overtime)")

	v, ok := readStatus(t, homeDir, "2025-08-12")
	assert.True(t, ok)
	assert.Equal(t, "10hrs 2ot", v)
}

func TestStatusSetRelativeDay(t *testing.T) {
	homeDir := setupHome(t, nil)

	_, err := execStatusSet(homeDir, "today", "off", PromptKit{}, false)
	require.NoError(t, err)

	v, ok := readStatus(t, homeDir, "2025-09-15")
	assert.True(t, ok)
	assert.Equal(t, "off", v)
}

func TestStatusSetRequiresTextWhenNotInteractive(t *testing.T) {
	homeDir := setupHome(t, nil)

	_, err := execStatusSet(homeDir, "2025-08-12", "", PromptKit{}, false)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status text required")
}

func TestStatusSetPromptsQuickStatus(t *testing.T) {
	homeDir := setupHome(t, nil)
	pk := PromptKit{Select: mockSelect(1), Prompt: mockPrompt()}

	_, err := execStatusSet(homeDir, "2025-08-12", "", pk, true)
	require.NoError(t, err)

	v, ok := readStatus(t, homeDir, "2025-08-12")
	assert.True(t, ok)
	assert.Equal(t, "off", v)
}

func TestStatusSetPromptsCustomStatus(t *testing.T) {
	homeDir := setupHome(t, nil)
	pk := PromptKit{Select: mockSelect(len(quickStatuses) - 1), Prompt: mockPrompt("7.5hrs")}

	_, err := execStatusSet(homeDir, "2025-08-12", "", pk, true)
	require.NoError(t, err)

	v, ok := readStatus(t, homeDir, "2025-08-12")
	assert.True(t, ok)
	assert.Equal(t, "7.5hrs", v)
}

func TestStatusSetBlankCustomClears(t *testing.T) {
	homeDir := setupHome(t, map[string]string{"2025-08-12": "8hrs"})
	pk := PromptKit{Select: mockSelect(len(quickStatuses) - 1), Prompt: mockPrompt("  ")}

	stdout, err := execStatusSet(homeDir, "2025-08-12", "", pk, true)
	require.NoError(t, err)
	assert.Contains(t, stdout, "cleared status")

	_, ok := readStatus(t, homeDir, "2025-08-12")
	assert.False(t, ok)
}

func TestStatusSetPromptError(t *testing.T) {
	homeDir := setupHome(t, nil)
	pk := PromptKit{Select: func(string, []string) (int, error) { return 0, fmt.Errorf("aborted") }}

	_, err := execStatusSet(homeDir, "2025-08-12", "", pk, true)
	assert.EqualError(t, err, "aborted")
}

func TestStatusSetInvalidDay(t *testing.T) {
	homeDir := setupHome(t, nil)

	_, err := execStatusSet(homeDir, "not a day", "8hrs", PromptKit{}, false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid day")
}

func TestStatusGet(t *testing.T) {
	homeDir := setupHome(t, map[string]string{"2025-08-12": "10hrs 2ot"})
	cmd, stdout := newTestCmd()

	err := runStatusGet(cmd, homeDir, "2025-08-12", fixedNow)

	require.NoError(t, err)
	out := stdout.String()
	assert.Contains(t, out, "10hrs 2ot")
	assert.Contains(t, out, "REG 8 OT 2")
	assert.Contains(t, out, "period 2025-08-10..2025-08-23")
	assert.Contains(t, out, "payday 2025-08-28")
}

func TestStatusGetMissing(t *testing.T) {
	homeDir := setupHome(t, nil)
	cmd, _ := newTestCmd()

	err := runStatusGet(cmd, homeDir, "2025-08-12", fixedNow)

	assert.EqualError(t, err, "no status for 2025-08-12")
}

func TestStatusRemove(t *testing.T) {
	homeDir := setupHome(t, map[string]string{"2025-08-12": "off"})
	cmd, stdout := newTestCmd()

	err := runStatusRemove(cmd, homeDir, "2025-08-12", AlwaysYes(), fixedNow)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "removed status")
	_, ok := readStatus(t, homeDir, "2025-08-12")
	assert.False(t, ok)
}

func TestStatusRemoveDeclined(t *testing.T) {
	homeDir := setupHome(t, map[string]string{"2025-08-12": "off"})
	cmd, stdout := newTestCmd()

	var asked string
	confirm := func(prompt string) (bool, error) {
		asked = prompt
		return false, nil
	}
	err := runStatusRemove(cmd, homeDir, "2025-08-12", confirm, fixedNow)

	require.NoError(t, err)
	assert.Contains(t, asked, "'off'")
	assert.Contains(t, stdout.String(), "cancelled")
	_, ok := readStatus(t, homeDir, "2025-08-12")
	assert.True(t, ok)
}

func TestStatusRemoveMissing(t *testing.T) {
	homeDir := setupHome(t, nil)
	cmd, _ := newTestCmd()

	err := runStatusRemove(cmd, homeDir, "2025-08-12", mockConfirm(true), fixedNow)
	assert.Error(t, err)
}

func TestStatusListMonth(t *testing.T) {
	homeDir := setupHome(t, map[string]string{
		"2025-08-31": "8hrs",
		"2025-09-01": "8hrs",
		"2025-09-02": "10hrs 2ot",
		"2025-10-01": "off",
	})
	cmd, stdout := newTestCmd()

	err := runStatusList(cmd, homeDir, "", "", false, fixedNow)

	require.NoError(t, err)
	out := stdout.String()
	assert.Contains(t, out, "2025-09-01")
	assert.Contains(t, out, "2025-09-02")
	assert.NotContains(t, out, "2025-08-31")
	assert.NotContains(t, out, "2025-10-01")
	assert.Contains(t, out, "2 day(s)")
	assert.Contains(t, out, "REG 16 OT 2")
}

func TestStatusListAll(t *testing.T) {
	homeDir := setupHome(t, map[string]string{
		"2025-08-31": "8hrs",
		"2025-10-01": "off",
	})
	cmd, stdout := newTestCmd()

	err := runStatusList(cmd, homeDir, "", "", true, fixedNow)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "2025-08-31")
	assert.Contains(t, stdout.String(), "2025-10-01")
}

func TestStatusListEmpty(t *testing.T) {
	homeDir := setupHome(t, nil)
	cmd, stdout := newTestCmd()

	err := runStatusList(cmd, homeDir, "2", "2024", false, fixedNow)

	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("No statuses for %s 2024.\n", time.February), stdout.String())
}
