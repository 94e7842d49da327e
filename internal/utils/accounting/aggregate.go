package accounting

import (
	"strconv"
	"time"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AggregateBalances folds verification rows into per-account net amounts for
// the period [periodStart, periodEnd], both ends inclusive. The net amount of
// a row is always debit minus credit, even when both sides are set.
//
// Rows with no account code or a zero date are skipped and counted rather than
// silently corrupting the totals; the caller decides whether a non-zero skip
// count is worth surfacing. An empty input yields an empty map.
//
// Amounts keep full decimal precision; statutory whole-krona rounding happens
// at box/line level, never here, to avoid cumulative drift.
func AggregateBalances(rows []domain.VerificationRow, periodStart, periodEnd time.Time) (map[string]decimal.Decimal, int) {
	balances := make(map[string]decimal.Decimal)
	skipped := 0

	for _, row := range rows {
		if row.Account == "" || row.Date.IsZero() {
			skipped++
			continue
		}
		if row.Date.Before(periodStart) || row.Date.After(periodEnd) {
			continue
		}
		balances[row.Account] = balances[row.Account].Add(row.Net())
	}

	return balances, skipped
}

// accountNumber parses a BAS account code into its numeric value. Non-numeric
// codes return ok=false and are ignored by the mapping tables.
func accountNumber(account string) (int, bool) {
	n, err := strconv.Atoi(account)
	if err != nil {
		return 0, false
	}
	return n, true
}

// RoundKronor rounds an amount to whole kronor, half away from zero, matching
// the declared-value convention on Swedish tax forms. Applied independently
// per box, not on aggregates.
func RoundKronor(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}
