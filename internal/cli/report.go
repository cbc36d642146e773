package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/Flyrell/paycal/internal/schedule"
	"github.com/Flyrell/paycal/internal/status"
	"github.com/Flyrell/paycal/internal/store"
	"github.com/Flyrell/paycal/internal/timetrack"
	"github.com/spf13/cobra"
)

// reportData is everything the table and the PDF render: one row per pay
// period plus the statuses behind each row.
type reportData struct {
	Anchor  time.Time
	Rows    []timetrack.PeriodAggregate
	Days    [][]store.Record // statuses per row, sorted by day
	Total   status.Hours
	Current int // row containing today, -1 if none
}

var reportCmd = LeafCommand{
	Use:   "report",
	Short: "Show hours and paydays per pay period",
	StrFlags: []StringFlag{
		{Name: "year", Usage: "year to report (default: the anchor's year)"},
		{Name: "export", Usage: "export format (pdf)"},
		{Name: "output", Usage: "output path for --export (default: paycal-<year>.pdf)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := getHomeDir()
		if err != nil {
			return err
		}
		yearFlag, _ := cmd.Flags().GetString("year")
		exportFlag, _ := cmd.Flags().GetString("export")
		outputFlag, _ := cmd.Flags().GetString("output")
		return runReport(cmd, homeDir, yearFlag, exportFlag, outputFlag, time.Now)
	},
}.Build()

func runReport(cmd *cobra.Command, homeDir, yearFlag, exportFlag, outputFlag string, nowFn func() time.Time) error {
	if exportFlag != "" && exportFlag != "pdf" {
		return fmt.Errorf("unsupported export format %q (supported: pdf)", exportFlag)
	}

	e, err := openEnv(homeDir, loggerFor(cmd))
	if err != nil {
		return err
	}
	defer func() { _ = e.Close() }()

	anchor, err := anchorForFlag(e.anchor, yearFlag)
	if err != nil {
		return err
	}

	data, err := loadReportData(cmd.Context(), e.store, anchor, nowFn())
	if err != nil {
		return err
	}

	// PDF export path
	if exportFlag == "pdf" {
		outputPath := outputFlag
		if outputPath == "" {
			outputPath = fmt.Sprintf("paycal-%d.pdf", anchor.Year())
		}
		if err := renderReportPDF(data, outputPath); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported report to %s\n", outputPath)
		return nil
	}

	return runReportTable(cmd, data)
}

// loadReportData builds the schedule for anchor and collects the statuses of
// every period.
func loadReportData(ctx context.Context, s store.Store, anchor, now time.Time) (reportData, error) {
	rows, err := timetrack.BuildSchedule(ctx, anchor, s)
	if err != nil {
		return reportData{}, err
	}

	data := reportData{
		Anchor:  anchor,
		Rows:    rows,
		Days:    make([][]store.Record, len(rows)),
		Total:   timetrack.Totals(rows),
		Current: -1,
	}
	all, err := s.List(ctx)
	if err != nil {
		return reportData{}, err
	}

	// Both rows and records are in day order.
	next := 0
	for i, r := range rows {
		from, to := schedule.DayKey(r.Period.Start), schedule.DayKey(r.Period.End)
		for next < len(all) && all[next].Day < from {
			next++
		}
		for next < len(all) && all[next].Day <= to {
			data.Days[i] = append(data.Days[i], all[next])
			next++
		}
		if r.Period.Contains(now) {
			data.Current = i
		}
	}
	return data, nil
}
