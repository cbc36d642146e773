package cli

import (
	"fmt"
	"time"

	"github.com/Flyrell/paycal/internal/schedule"
	"github.com/spf13/cobra"
)

var periodsCmd = LeafCommand{
	Use:   "periods",
	Short: "List the pay periods and paydays of a year",
	StrFlags: []StringFlag{
		{Name: "year", Usage: "year to list (default: the anchor's year)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := getHomeDir()
		if err != nil {
			return err
		}
		yearFlag, _ := cmd.Flags().GetString("year")
		return runPeriods(cmd, homeDir, yearFlag, time.Now)
	},
}.Build()

func runPeriods(cmd *cobra.Command, homeDir, yearFlag string, nowFn func() time.Time) error {
	e, err := openEnv(homeDir, loggerFor(cmd))
	if err != nil {
		return err
	}
	defer func() { _ = e.Close() }()

	anchor, err := anchorForFlag(e.anchor, yearFlag)
	if err != nil {
		return err
	}

	periods, err := schedule.GeneratePeriods(anchor)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	today := nowFn().UTC()
	_, _ = fmt.Fprintf(w, "%s\n\n", Text(fmt.Sprintf("Pay periods from %s", Primary(schedule.DayKey(anchor)))))
	for i, p := range periods {
		line := fmt.Sprintf("%2d. %s → %s   payday %s",
			i+1, schedule.DayKey(p.Start), schedule.DayKey(p.End), schedule.DayKey(schedule.Payday(p)))
		if p.Contains(today) {
			_, _ = fmt.Fprintf(w, "  %s %s\n", Primary(line), Info("(current)"))
			continue
		}
		_, _ = fmt.Fprintf(w, "  %s\n", Text(line))
	}
	return nil
}
