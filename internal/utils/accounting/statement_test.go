package accounting_test

import (
	"testing"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
	"github.com/klarbok/klarbok_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// balancedLedger books one sale (10 000 kr + 2 500 kr VAT) and one expense
// (4 000 kr + 1 000 kr VAT), all through the bank account. Every verification
// nets to zero.
func balancedLedger() []domain.VerificationRow {
	return []domain.VerificationRow{
		// Sale
		row("1930", 12500, 0, "2025-01-10"),
		row("3010", 0, 10000, "2025-01-10"),
		row("2610", 0, 2500, "2025-01-10"),
		// Purchase
		row("5010", 4000, 0, "2025-02-05"),
		row("2641", 1000, 0, "2025-02-05"),
		row("1930", 0, 5000, "2025-02-05"),
	}
}

func findLine(t *testing.T, lines []domain.StatementLine, label string) domain.StatementLine {
	t.Helper()
	for _, l := range lines {
		if l.Label == label {
			return l
		}
	}
	t.Fatalf("line %q not found", label)
	return domain.StatementLine{}
}

func TestBuildIncomeStatement_SectionsAndResult(t *testing.T) {
	is := accounting.BuildIncomeStatement(balancedLedger(), date("2025-01-01"), date("2025-12-31"))

	revenue := findLine(t, is.Lines, "Nettoomsättning")
	assert.True(t, revenue.Value.Equal(decimal.NewFromInt(10000)), "nettoomsättning = %s", revenue)

	costs := findLine(t, is.Lines, "Övriga externa kostnader")
	assert.True(t, costs.Value.Equal(decimal.NewFromInt(-4000)), "kostnader = %s", costs)

	assert.True(t, is.NetResult.Equal(decimal.NewFromInt(6000)), "netResult = %s", is.NetResult)
	result := findLine(t, is.Lines, "Årets resultat")
	assert.True(t, result.IsTotal)
	assert.True(t, result.Value.Equal(is.NetResult))
}

func TestBuildIncomeStatement_TotalsSumDetailLines(t *testing.T) {
	is := accounting.BuildIncomeStatement(balancedLedger(), date("2025-01-01"), date("2025-12-31"))

	var sectionSum decimal.Decimal
	for _, line := range is.Lines {
		switch {
		case line.IsHeader:
			sectionSum = decimal.Zero
		case line.IsTotal && line.Level == 1:
			assert.True(t, line.Value.Equal(sectionSum),
				"%s = %s, details sum to %s", line.Label, line.Value, sectionSum)
		case !line.IsTotal && line.Level == 1:
			sectionSum = sectionSum.Add(line.Value)
		}
	}
}

func TestBuildIncomeStatement_ScopedToFiscalYear(t *testing.T) {
	rows := append(balancedLedger(),
		row("3010", 0, 99999, "2024-06-01"), // previous fiscal year
	)

	is := accounting.BuildIncomeStatement(rows, date("2025-01-01"), date("2025-12-31"))
	assert.True(t, is.NetResult.Equal(decimal.NewFromInt(6000)), "netResult = %s", is.NetResult)
}

func TestBuildBalanceSheet_BalancedLedger(t *testing.T) {
	bs := accounting.BuildBalanceSheet(balancedLedger(), date("2025-12-31"))

	assert.True(t, bs.Balances, "assets %s vs equity+liabilities %s", bs.TotalAssets, bs.TotalEquityLiabilities)
	assert.True(t, bs.TotalAssets.Equal(bs.TotalEquityLiabilities))
	// 12 500 in minus 5 000 out on the bank account.
	assert.True(t, bs.TotalAssets.Equal(decimal.NewFromInt(7500)), "assets = %s", bs.TotalAssets)

	result := findLine(t, bs.Lines, "Beräknat resultat")
	assert.True(t, result.Value.Equal(decimal.NewFromInt(6000)), "beräknat resultat = %s", result)
}

func TestBuildBalanceSheet_CumulativeAcrossPeriods(t *testing.T) {
	// Opening balance booked the year before must still be on the sheet.
	rows := append(balancedLedger(),
		row("1930", 20000, 0, "2024-01-01"),
		row("2081", 0, 20000, "2024-01-01"), // aktiekapital
	)

	bs := accounting.BuildBalanceSheet(rows, date("2025-12-31"))

	assert.True(t, bs.Balances)
	assert.True(t, bs.TotalAssets.Equal(decimal.NewFromInt(27500)), "assets = %s", bs.TotalAssets)
	equity := findLine(t, bs.Lines, "Eget kapital")
	assert.True(t, equity.Value.Equal(decimal.NewFromInt(20000)), "eget kapital = %s", equity)
}

func TestBuildBalanceSheet_EmptyLedger(t *testing.T) {
	bs := accounting.BuildBalanceSheet(nil, date("2025-12-31"))

	require.NotEmpty(t, bs.Lines)
	assert.True(t, bs.Balances, "0 == 0 must balance")
	assert.True(t, bs.TotalAssets.IsZero())
	assert.True(t, bs.TotalEquityLiabilities.IsZero())
	for _, line := range bs.Lines {
		assert.True(t, line.Value.IsZero(), "line %s = %s", line.Label, line.Value)
	}
}

func TestBuildBalanceSheet_FlagsImbalance(t *testing.T) {
	// A lone debit row with no counter-entry cannot reconcile.
	rows := []domain.VerificationRow{
		row("1930", 5000, 0, "2025-01-10"),
	}

	bs := accounting.BuildBalanceSheet(rows, date("2025-12-31"))

	assert.False(t, bs.Balances)
	assert.True(t, bs.TotalAssets.Equal(decimal.NewFromInt(5000)))
	assert.True(t, bs.TotalEquityLiabilities.IsZero())
}

func TestBuildBalanceSheet_ToleratesOneKronaRounding(t *testing.T) {
	rows := []domain.VerificationRow{
		row("1930", 5000, 0, "2025-01-10"),
		row("2081", 0, 4999.60, "2025-01-10"), // rounds to 5000
	}

	bs := accounting.BuildBalanceSheet(rows, date("2025-12-31"))
	assert.True(t, bs.Balances)
}
