package accounting_test

import (
	"testing"
	"time"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
	"github.com/klarbok/klarbok_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func row(account string, debit, credit float64, day string) domain.VerificationRow {
	return domain.VerificationRow{
		Account: account,
		Debit:   decimal.NewFromFloat(debit),
		Credit:  decimal.NewFromFloat(credit),
		Date:    date(day),
	}
}

func TestAggregateBalances_EmptyInput(t *testing.T) {
	balances, skipped := accounting.AggregateBalances(nil, date("2025-01-01"), date("2025-03-31"))
	require.NotNil(t, balances)
	assert.Empty(t, balances)
	assert.Zero(t, skipped)
}

func TestAggregateBalances_NetsDebitMinusCredit(t *testing.T) {
	rows := []domain.VerificationRow{
		row("1930", 12500, 0, "2025-01-10"),
		row("3010", 0, 10000, "2025-01-10"),
		row("2610", 0, 2500, "2025-01-10"),
		row("1930", 0, 500, "2025-02-01"),
	}

	balances, skipped := accounting.AggregateBalances(rows, date("2025-01-01"), date("2025-03-31"))
	require.Zero(t, skipped)

	assert.True(t, balances["1930"].Equal(decimal.NewFromInt(12000)), "got %s", balances["1930"])
	assert.True(t, balances["3010"].Equal(decimal.NewFromInt(-10000)))
	assert.True(t, balances["2610"].Equal(decimal.NewFromInt(-2500)))
}

func TestAggregateBalances_OrderIndependent(t *testing.T) {
	rows := []domain.VerificationRow{
		row("3010", 0, 10000, "2025-01-10"),
		row("1930", 12500, 0, "2025-01-10"),
		row("2610", 0, 2500, "2025-01-10"),
		row("3010", 100, 0, "2025-02-15"),
	}
	reversed := make([]domain.VerificationRow, len(rows))
	for i, r := range rows {
		reversed[len(rows)-1-i] = r
	}

	a, _ := accounting.AggregateBalances(rows, date("2025-01-01"), date("2025-03-31"))
	b, _ := accounting.AggregateBalances(reversed, date("2025-01-01"), date("2025-03-31"))

	require.Len(t, b, len(a))
	for account, amount := range a {
		assert.True(t, amount.Equal(b[account]), "account %s: %s != %s", account, amount, b[account])
	}
}

func TestAggregateBalances_PeriodBoundsInclusive(t *testing.T) {
	rows := []domain.VerificationRow{
		row("3010", 0, 100, "2024-12-31"), // before
		row("3010", 0, 200, "2025-01-01"), // first day
		row("3010", 0, 300, "2025-03-31"), // last day
		row("3010", 0, 400, "2025-04-01"), // after
	}

	balances, _ := accounting.AggregateBalances(rows, date("2025-01-01"), date("2025-03-31"))
	assert.True(t, balances["3010"].Equal(decimal.NewFromInt(-500)), "got %s", balances["3010"])
}

func TestAggregateBalances_SkipsMalformedRows(t *testing.T) {
	rows := []domain.VerificationRow{
		row("3010", 0, 100, "2025-01-10"),
		{Account: "", Debit: decimal.NewFromInt(50), Date: date("2025-01-10")}, // missing account
		{Account: "3010", Credit: decimal.NewFromInt(75)},                     // zero date
	}

	balances, skipped := accounting.AggregateBalances(rows, date("2025-01-01"), date("2025-03-31"))
	assert.Equal(t, 2, skipped)
	assert.True(t, balances["3010"].Equal(decimal.NewFromInt(-100)))
}

func TestAggregateBalances_BothSidesOnOneRow(t *testing.T) {
	rows := []domain.VerificationRow{
		{Account: "3010", Debit: decimal.NewFromInt(300), Credit: decimal.NewFromInt(1000), Date: date("2025-01-10")},
	}

	balances, _ := accounting.AggregateBalances(rows, date("2025-01-01"), date("2025-03-31"))
	assert.True(t, balances["3010"].Equal(decimal.NewFromInt(-700)))
}

func TestAggregateBalances_PreservesPrecision(t *testing.T) {
	rows := []domain.VerificationRow{
		row("1930", 0.1, 0, "2025-01-10"),
		row("1930", 0.2, 0, "2025-01-11"),
	}

	balances, _ := accounting.AggregateBalances(rows, date("2025-01-01"), date("2025-03-31"))
	assert.True(t, balances["1930"].Equal(decimal.NewFromFloat(0.3)), "got %s", balances["1930"])
}

func TestRoundKronor(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{2500.4, 2500},
		{2500.5, 2501},
		{2500.6, 2501},
		{0, 0},
		{-1.5, -2}, // half away from zero
	}
	for _, tc := range tests {
		got := accounting.RoundKronor(decimal.NewFromFloat(tc.in))
		assert.True(t, got.Equal(decimal.NewFromInt(tc.want)), "RoundKronor(%v) = %s, want %d", tc.in, got, tc.want)
	}
}
