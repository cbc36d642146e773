package cli

import (
	"fmt"

	"github.com/Flyrell/paycal/internal/schedule"
	"github.com/Flyrell/paycal/internal/status"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// renderReportPDF generates a PDF pay schedule from the report data and saves
// it to the given path.
func renderReportPDF(data reportData, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	// Document header
	m.AddRow(14,
		text.NewCol(12, "Pay schedule", props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("Periods from %s", schedule.DayKey(data.Anchor)), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4) // spacer

	// Period sections
	for i, row := range data.Rows {
		periodLabel := fmt.Sprintf("%s - %s", row.Period.Start.Format("Jan 2"), row.Period.End.Format("Jan 2, 2006"))

		m.AddRow(8,
			text.NewCol(6, periodLabel, props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Color: &pdfHeaderColor,
			}),
			text.NewCol(3, "Payday "+row.Payday.Format("Jan 2"), props.Text{
				Size:  10,
				Color: &pdfMutedColor,
			}),
			text.NewCol(3, hoursLabel(row.Hours()), props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Align: align.Right,
				Color: &pdfHeaderColor,
			}),
		)

		for _, rec := range data.Days[i] {
			m.AddRow(5,
				text.NewCol(3, "    "+rec.Day, props.Text{
					Size:  8,
					Color: &pdfMutedColor,
				}),
				text.NewCol(6, rec.Status, props.Text{
					Size:  8,
					Color: &pdfMutedColor,
				}),
				text.NewCol(3, hoursLabel(status.ParseHours(rec.Status)), props.Text{
					Size:  8,
					Align: align.Right,
					Color: &pdfMutedColor,
				}),
			)
		}

		// Spacer between periods
		m.AddRow(4)
	}

	// Grand total footer
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(10,
		text.NewCol(9, "Total", props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Color: &pdfHeaderColor,
		}),
		text.NewCol(3, hoursLabel(data.Total), props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Align: align.Right,
			Color: &pdfHeaderColor,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return doc.Save(outputPath)
}
