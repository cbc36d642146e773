package cli

import (
	"fmt"
	"time"

	"github.com/Flyrell/paycal/internal/schedule"
	"github.com/Flyrell/paycal/internal/status"
	"github.com/Flyrell/paycal/internal/store"
	"github.com/spf13/cobra"
)

var statusListCmd = LeafCommand{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List statuses of a month",
	BoolFlags: []BoolFlag{
		{Name: "all", Usage: "list every stored status"},
	},
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
		all, _ := cmd.Flags().GetBool("all")
		return runStatusList(cmd, homeDir, monthFlag, yearFlag, all, time.Now)
	},
}.Build()

func runStatusList(cmd *cobra.Command, homeDir, monthFlag, yearFlag string, all bool, nowFn func() time.Time) error {
	year, month, err := parseMonthYearFlags(monthFlag, yearFlag, nowFn())
	if err != nil {
		return err
	}

	e, err := openEnv(homeDir, loggerFor(cmd))
	if err != nil {
		return err
	}
	defer func() { _ = e.Close() }()

	var records []store.Record
	label := "stored"
	if all {
		records, err = e.store.List(cmd.Context())
	} else {
		from, to := monthRange(year, month)
		records, err = store.ListRange(cmd.Context(), e.store, schedule.DayKey(from), schedule.DayKey(to))
		label = fmt.Sprintf("%s %d", month, year)
	}
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(records) == 0 {
		_, _ = fmt.Fprintf(w, "No statuses for %s.\n", label)
		return nil
	}

	var total status.Hours
	for _, r := range records {
		printStatusLine(w, r.Day, r.Status)
		total = total.Add(status.ParseHours(r.Status))
	}
	_, _ = fmt.Fprintf(w, "\n%s  %s\n", Text(fmt.Sprintf("%d day(s)", len(records))), Primary(hoursLabel(total)))
	return nil
}
