package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/Flyrell/paycal/internal/schedule"
	"github.com/Flyrell/paycal/internal/timetrack"
	"github.com/spf13/cobra"
)

var eventsCmd = LeafCommand{
	Use:   "events",
	Short: "Show the calendar markers of a month",
	StrFlags: []StringFlag{
		{Name: "month", Usage: "month number 1-12 (default: current month)"},
		{Name: "year", Usage: "year (default: current year)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := getHomeDir()
		if err != nil {
			return err
		}
		monthFlag, _ := cmd.Flags().GetString("month")
		yearFlag, _ := cmd.Flags().GetString("year")
		return runEvents(cmd, homeDir, monthFlag, yearFlag, time.Now)
	},
}.Build()

func runEvents(cmd *cobra.Command, homeDir, monthFlag, yearFlag string, nowFn func() time.Time) error {
	year, month, err := parseMonthYearFlags(monthFlag, yearFlag, nowFn())
	if err != nil {
		return err
	}

	e, err := openEnv(homeDir, loggerFor(cmd))
	if err != nil {
		return err
	}
	defer func() { _ = e.Close() }()

	from, to := monthRange(year, month)
	periods := timetrack.PeriodsBetween(e.anchor, from, to)
	events, err := timetrack.BuildEvents(cmd.Context(), periods, e.store, from, to)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s\n\n", Text(fmt.Sprintf("%s %d", month, year)))
	for _, ev := range events {
		_, _ = fmt.Fprintf(w, "  %s  %s\n", Primary(schedule.DayKey(ev.Date)), renderEvent(ev))
	}
	return nil
}

// renderEvent renders a marker on one line; multi-line payday titles are
// joined with " | ".
func renderEvent(ev timetrack.Event) string {
	title := strings.ReplaceAll(ev.Title, "\n", " | ")
	switch ev.Kind {
	case timetrack.KindPayday:
		return Warning(title)
	case timetrack.KindStartPay, timetrack.KindEndPay:
		return Info(title)
	}
	return StatusText(title)
}
