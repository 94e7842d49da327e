package accounting_test

import (
	"testing"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
	"github.com/klarbok/klarbok_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func q1Period() domain.FinancialPeriod {
	return domain.FinancialPeriod{
		PeriodID:  "p-2025-q1",
		Label:     "Q1 2025",
		StartDate: date("2025-01-01"),
		EndDate:   date("2025-03-31"),
	}
}

func TestBuildVatReport_SaleAt25Percent(t *testing.T) {
	// A 10 000 kr sale booked as a credit on 3010, with the output VAT of
	// 2 500 kr credited on 2610 and 12 500 kr received on 1930.
	rows := []domain.VerificationRow{
		row("1930", 12500, 0, "2025-01-10"),
		row("3010", 0, 10000, "2025-01-10"),
		row("2610", 0, 2500, "2025-01-10"),
	}
	balances, _ := accounting.AggregateBalances(rows, date("2025-01-01"), date("2025-03-31"))

	report := accounting.BuildVatReport(balances, q1Period())

	assert.True(t, report.Ruta05.Equal(decimal.NewFromInt(10000)), "ruta05 = %s", report.Ruta05)
	assert.True(t, report.Ruta10.Equal(decimal.NewFromInt(2500)), "ruta10 = %s", report.Ruta10)
	assert.Equal(t, domain.VatUpcoming, report.Status)
	assert.Equal(t, "Q1 2025", report.Period)
}

func TestBuildVatReport_InputVat(t *testing.T) {
	rows := []domain.VerificationRow{
		row("2641", 1000, 0, "2025-02-05"),
		row("5010", 4000, 0, "2025-02-05"),
		row("1930", 0, 5000, "2025-02-05"),
	}
	balances, _ := accounting.AggregateBalances(rows, date("2025-01-01"), date("2025-03-31"))

	report := accounting.BuildVatReport(balances, q1Period())

	assert.True(t, report.Ruta48.Equal(decimal.NewFromInt(1000)))
	assert.True(t, report.InputVat.Equal(decimal.NewFromInt(1000)))
	assert.True(t, report.NetVat.Equal(decimal.NewFromInt(-1000)))
}

func TestBuildVatReport_SpecificRangesWinOverBroadSales(t *testing.T) {
	// 3106 (EU goods) sits inside the broad 25% interval but must land in
	// ruta35, not ruta05.
	rows := []domain.VerificationRow{
		row("3106", 0, 8000, "2025-01-20"),
		row("3010", 0, 2000, "2025-01-21"),
	}
	balances, _ := accounting.AggregateBalances(rows, date("2025-01-01"), date("2025-03-31"))

	report := accounting.BuildVatReport(balances, q1Period())

	assert.True(t, report.Ruta35.Equal(decimal.NewFromInt(8000)), "ruta35 = %s", report.Ruta35)
	assert.True(t, report.Ruta05.Equal(decimal.NewFromInt(2000)), "ruta05 = %s", report.Ruta05)
}

func TestBuildVatReport_RoundsPerBox(t *testing.T) {
	rows := []domain.VerificationRow{
		row("3010", 0, 10001.50, "2025-01-10"), // base rounds to 10002
		row("3741", 0, 200.49, "2025-01-10"),   // 12% base rounds to 200
	}
	balances, _ := accounting.AggregateBalances(rows, date("2025-01-01"), date("2025-03-31"))

	report := accounting.BuildVatReport(balances, q1Period())

	assert.True(t, report.Ruta05.Equal(decimal.NewFromInt(10002)), "ruta05 = %s", report.Ruta05)
	assert.True(t, report.Ruta06.Equal(decimal.NewFromInt(200)), "ruta06 = %s", report.Ruta06)
	// Output VAT derived from the rounded base: 10002 * 0.25 = 2500.5 -> 2501.
	assert.True(t, report.Ruta10.Equal(decimal.NewFromInt(2501)), "ruta10 = %s", report.Ruta10)
	assert.True(t, report.Ruta11.Equal(decimal.NewFromInt(24)), "ruta11 = %s", report.Ruta11)
}

func TestRecalculateVat_DerivedTotals(t *testing.T) {
	report := domain.VatReport{
		Ruta10: decimal.NewFromInt(2500),
		Ruta48: decimal.NewFromInt(1000),
	}

	out := accounting.RecalculateVat(report)

	assert.True(t, out.SalesVat.Equal(decimal.NewFromInt(2500)))
	assert.True(t, out.NetVat.Equal(decimal.NewFromInt(1500)))
	assert.False(t, out.IsRefund())
	assert.Equal(t, "att betala", out.Disposition())
}

func TestRecalculateVat_RefundKeepsSign(t *testing.T) {
	report := domain.VatReport{
		Ruta10: decimal.NewFromInt(2500),
		Ruta48: decimal.NewFromInt(4000),
	}

	out := accounting.RecalculateVat(report)

	assert.True(t, out.NetVat.Equal(decimal.NewFromInt(-1500)), "netVat = %s", out.NetVat)
	assert.True(t, out.IsRefund())
	assert.Equal(t, "att få tillbaka", out.Disposition())
}

func TestRecalculateVat_Idempotent(t *testing.T) {
	report := domain.VatReport{
		Ruta10: decimal.NewFromInt(2500),
		Ruta11: decimal.NewFromInt(120),
		Ruta12: decimal.NewFromInt(60),
		Ruta48: decimal.NewFromInt(900),
	}

	once := accounting.RecalculateVat(report)
	twice := accounting.RecalculateVat(once)

	assert.Equal(t, once, twice)
}

func TestRecalculateVat_DoesNotMutateArgument(t *testing.T) {
	report := domain.VatReport{Ruta10: decimal.NewFromInt(2500)}
	before := report

	_ = accounting.RecalculateVat(report)

	assert.Equal(t, before, report)
}

func TestRecalculateVat_HonorsManualBoxEdit(t *testing.T) {
	rows := []domain.VerificationRow{
		row("3010", 0, 10000, "2025-01-10"),
	}
	balances, _ := accounting.AggregateBalances(rows, date("2025-01-01"), date("2025-03-31"))
	report := accounting.BuildVatReport(balances, q1Period())
	require.True(t, report.Ruta10.Equal(decimal.NewFromInt(2500)))

	// The user overrides the derived output VAT; the derived totals must
	// follow the edited box, not the original base.
	report.Ruta10 = decimal.NewFromInt(2600)
	out := accounting.RecalculateVat(report)

	assert.True(t, out.SalesVat.Equal(decimal.NewFromInt(2600)))
	assert.True(t, out.NetVat.Equal(decimal.NewFromInt(2600)))
}
