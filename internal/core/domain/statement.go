package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementLine is one row of an income statement or balance sheet. Lines form
// an ordered hierarchy: headers introduce a section, detail lines carry values
// from account ranges, and total lines sum the detail lines that precede them
// in their section.
type StatementLine struct {
	Label    string          `json:"label"`
	Value    decimal.Decimal `json:"value"` // Signed; income positive, costs negative
	Level    int             `json:"level"` // Indentation depth
	IsHeader bool            `json:"isHeader"`
	IsTotal  bool            `json:"isTotal"`
}

// IncomeStatement is a resultaträkning for a fiscal year.
type IncomeStatement struct {
	FiscalYearStart time.Time       `json:"fiscalYearStart"`
	FiscalYearEnd   time.Time       `json:"fiscalYearEnd"`
	Lines           []StatementLine `json:"lines"`
	NetResult       decimal.Decimal `json:"netResult"` // Årets resultat
	SkippedRows     int             `json:"skippedRows"`
}

// BalanceSheet is a balansräkning as of a date. Balance-sheet accounts are
// cumulative, so it is always built from all history up to AsOf, never from a
// single period.
type BalanceSheet struct {
	AsOf                   time.Time       `json:"asOf"`
	Lines                  []StatementLine `json:"lines"`
	TotalAssets            decimal.Decimal `json:"totalAssets"`
	TotalEquityLiabilities decimal.Decimal `json:"totalEquityLiabilities"`
	// Balances is false when assets and equity+liabilities differ by more than
	// one krona. An imbalance is surfaced, never auto-corrected.
	Balances    bool `json:"balances"`
	SkippedRows int  `json:"skippedRows"`
}

// AnnualReport bundles the statutory statements for a fiscal year (K2 scope).
type AnnualReport struct {
	FiscalYearStart time.Time       `json:"fiscalYearStart"`
	FiscalYearEnd   time.Time       `json:"fiscalYearEnd"`
	IncomeStatement IncomeStatement `json:"incomeStatement"`
	BalanceSheet    BalanceSheet    `json:"balanceSheet"`
}
