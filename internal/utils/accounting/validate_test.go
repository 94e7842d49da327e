package accounting_test

import (
	"testing"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
	"github.com/klarbok/klarbok_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateVerificationRows(t *testing.T) {
	tests := []struct {
		name    string
		rows    []domain.VerificationRow
		wantErr string
	}{
		{
			name: "balanced verification",
			rows: []domain.VerificationRow{
				row("1930", 12500, 0, "2025-01-10"),
				row("3010", 0, 10000, "2025-01-10"),
				row("2610", 0, 2500, "2025-01-10"),
			},
		},
		{
			name:    "single row",
			rows:    []domain.VerificationRow{row("1930", 100, 0, "2025-01-10")},
			wantErr: "at least two rows",
		},
		{
			name: "does not balance",
			rows: []domain.VerificationRow{
				row("1930", 100, 0, "2025-01-10"),
				row("3010", 0, 99, "2025-01-10"),
			},
			wantErr: "does not balance",
		},
		{
			name: "öre rounding tolerated",
			rows: []domain.VerificationRow{
				row("1930", 100.004, 0, "2025-01-10"),
				row("3010", 0, 100, "2025-01-10"),
			},
		},
		{
			name: "negative amount",
			rows: []domain.VerificationRow{
				{Account: "1930", Debit: decimal.NewFromInt(-5), Date: date("2025-01-10")},
				row("3010", 0, 5, "2025-01-10"),
			},
			wantErr: "non-negative",
		},
		{
			name: "bad account code",
			rows: []domain.VerificationRow{
				row("19", 100, 0, "2025-01-10"),
				row("3010", 0, 100, "2025-01-10"),
			},
			wantErr: "invalid BAS account code",
		},
		{
			name: "empty row",
			rows: []domain.VerificationRow{
				row("1930", 100, 0, "2025-01-10"),
				{Account: "3010", Date: date("2025-01-10")},
			},
			wantErr: "neither debit nor credit",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := accounting.ValidateVerificationRows(tc.rows)
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}
