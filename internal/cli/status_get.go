package cli

import (
	"fmt"
	"time"

	"github.com/Flyrell/paycal/internal/schedule"
	"github.com/spf13/cobra"
)

var statusGetCmd = LeafCommand{
	Use:   "get <day>",
	Short: "Show the status of a day with its parsed hours and pay period",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := getHomeDir()
		if err != nil {
			return err
		}
		return runStatusGet(cmd, homeDir, args[0], time.Now)
	},
}.Build()

func runStatusGet(cmd *cobra.Command, homeDir, dayArg string, nowFn func() time.Time) error {
	day, err := resolveDay(dayArg, nowFn())
	if err != nil {
		return err
	}

	e, err := openEnv(homeDir, loggerFor(cmd))
	if err != nil {
		return err
	}
	defer func() { _ = e.Close() }()

	text, ok, err := e.store.Get(cmd.Context(), day)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no status for %s", day)
	}

	w := cmd.OutOrStdout()
	printStatusLine(w, day, text)

	t, _ := schedule.ParseDayKey(day)
	p := schedule.PeriodContaining(e.anchor, t)
	_, _ = fmt.Fprintf(w, "%s\n", Silent(fmt.Sprintf("period %s, payday %s",
		p.String(), schedule.DayKey(schedule.Payday(p)))))
	return nil
}
