package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/Flyrell/paycal/internal/schedule"
	"github.com/Flyrell/paycal/internal/status"
	"github.com/spf13/cobra"
)

var statusCmd = GroupCommand{
	Use:   "status",
	Short: "Manage daily statuses",
	Subcommands: []*cobra.Command{
		statusSetCmd,
		statusGetCmd,
		statusRemoveCmd,
		statusListCmd,
	},
}.Build()

// hoursLabel renders parsed hours as "REG x OT y".
func hoursLabel(h status.Hours) string {
	return fmt.Sprintf("REG %s OT %s", h.Regular.String(), h.Overtime.String())
}

// printStatusLine writes one status row: day, coloured text, class and hours.
func printStatusLine(w io.Writer, day, text string) {
	_, _ = fmt.Fprintf(w, "%s  %s  %s  %s\n",
		Primary(day),
		StatusText(text),
		Silent("("+string(status.Classify(text))+")"),
		Info(hoursLabel(status.ParseHours(text))),
	)
}

// resolveDay turns a day argument (YYYY-MM-DD, "today", "yesterday", "Jan 2"
// and the like) into a day key.
func resolveDay(arg string, now time.Time) (string, error) {
	t, err := schedule.ParseDate(arg, now)
	if err != nil {
		return "", fmt.Errorf("invalid day %q: %w", arg, err)
	}
	return schedule.DayKey(t), nil
}
