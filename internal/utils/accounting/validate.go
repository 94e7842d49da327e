package accounting

import (
	"fmt"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// zeroTolerance allows öre-level rounding slack when checking that a
// verification nets to zero.
var zeroTolerance = decimal.NewFromFloat(0.01)

// ValidateVerificationRows checks the invariants of a verification before it
// is posted: at least two rows, non-negative debit and credit amounts, 4-digit
// BAS account codes, and debits equalling credits within rounding tolerance.
func ValidateVerificationRows(rows []domain.VerificationRow) error {
	if len(rows) < 2 {
		return fmt.Errorf("verification must have at least two rows")
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for _, row := range rows {
		if row.Debit.IsNegative() || row.Credit.IsNegative() {
			return fmt.Errorf("row amounts must be non-negative for account %s", row.Account)
		}
		if row.Debit.IsZero() && row.Credit.IsZero() {
			return fmt.Errorf("row for account %s has neither debit nor credit", row.Account)
		}
		if n, ok := accountNumber(row.Account); !ok || n < 1000 || n > 9999 {
			return fmt.Errorf("invalid BAS account code %q", row.Account)
		}
		totalDebit = totalDebit.Add(row.Debit)
		totalCredit = totalCredit.Add(row.Credit)
	}

	if totalDebit.Sub(totalCredit).Abs().GreaterThan(zeroTolerance) {
		return fmt.Errorf("verification does not balance: debits %s, credits %s",
			totalDebit.String(), totalCredit.String())
	}
	return nil
}
