package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
	"github.com/klarbok/klarbok_backend/internal/utils"
)

// Provider renders reports to PDF.
type Provider interface {
	GenerateAnnualReport(ctx context.Context, orgName string, report *domain.AnnualReport) (io.Reader, error)
}

type MarotoProvider struct{}

func New() Provider {
	return &MarotoProvider{}
}

var _ Provider = (*MarotoProvider)(nil)

// GenerateAnnualReport renders the årsredovisning: a title page header followed
// by the resultaträkning and balansräkning line by line.
func (p *MarotoProvider) GenerateAnnualReport(ctx context.Context, orgName string, report *domain.AnnualReport) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Sida {current} av {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, "Årsredovisning", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)
	m.AddRow(16,
		col.New(12).Add(
			text.New(orgName, props.Text{Size: 12, Style: fontstyle.Bold}),
			text.New(fmt.Sprintf("Räkenskapsår %s – %s",
				report.FiscalYearStart.Format("2006-01-02"),
				report.FiscalYearEnd.Format("2006-01-02")), props.Text{Top: 6, Size: 10}),
		),
	)

	addStatementSection(m, "Resultaträkning", report.IncomeStatement.Lines)

	m.AddRow(8,
		text.NewCol(8, "Årets resultat", props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(4, utils.FormatKronor(report.IncomeStatement.NetResult), props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
	)

	addStatementSection(m, "Balansräkning per "+report.BalanceSheet.AsOf.Format("2006-01-02"), report.BalanceSheet.Lines)

	if !report.BalanceSheet.Balances {
		m.AddRow(8,
			text.NewCol(12, "Obs: balansräkningen balanserar inte.", props.Text{Size: 9, Style: fontstyle.Italic}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate annual report PDF: %w", err)
	}
	return bytes.NewReader(doc.GetBytes()), nil
}

// addStatementSection renders one statement with headers bold, totals bold and
// detail lines indented with right-aligned amounts.
func addStatementSection(m core.Maroto, title string, lines []domain.StatementLine) {
	m.AddRow(12,
		text.NewCol(12, title, props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Top:   4,
		}),
	)

	for _, line := range lines {
		if line.IsHeader {
			m.AddRow(8,
				text.NewCol(12, line.Label, props.Text{Size: 10, Style: fontstyle.Bold, Top: 2}),
			)
			continue
		}

		style := fontstyle.Normal
		left := 0.0
		if line.IsTotal {
			style = fontstyle.Bold
		} else {
			left = float64(line.Level) * 4
		}
		m.AddRow(6,
			text.NewCol(8, line.Label, props.Text{Size: 9, Style: style, Left: left}),
			text.NewCol(4, utils.FormatKronor(line.Value), props.Text{Size: 9, Style: style, Align: align.Right}),
		)
	}
}
