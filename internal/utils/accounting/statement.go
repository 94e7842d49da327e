package accounting

import (
	"time"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// statementRange is one detail line of a statement: an inclusive BAS interval
// and its label. creditSide lines present credit balances as positive values.
type statementRange struct {
	label      string
	low, high  int
	creditSide bool
}

// Resultaträkning layout. All income-statement lines are presented from the
// credit side: revenue shows positive, costs (debit balances) show negative.
var incomeStatementSections = []struct {
	header     string
	totalLabel string
	details    []statementRange
}{
	{
		header:     "Rörelsens intäkter",
		totalLabel: "Summa rörelsens intäkter",
		details: []statementRange{
			{"Nettoomsättning", 3000, 3799, true},
			{"Övriga rörelseintäkter", 3800, 3999, true},
		},
	},
	{
		header:     "Rörelsens kostnader",
		totalLabel: "Summa rörelsens kostnader",
		details: []statementRange{
			{"Råvaror och förnödenheter", 4000, 4999, true},
			{"Övriga externa kostnader", 5000, 6999, true},
			{"Personalkostnader", 7000, 7699, true},
			{"Av- och nedskrivningar", 7700, 7899, true},
			{"Övriga rörelsekostnader", 7900, 7999, true},
		},
	},
	{
		header:     "Finansiella poster",
		totalLabel: "Summa finansiella poster",
		details: []statementRange{
			{"Finansiella intäkter", 8000, 8399, true},
			{"Finansiella kostnader", 8400, 8799, true},
		},
	},
	{
		header:     "Bokslutsdispositioner och skatt",
		totalLabel: "Summa dispositioner och skatt",
		details: []statementRange{
			{"Bokslutsdispositioner", 8800, 8899, true},
			{"Skatt på årets resultat", 8900, 8998, true},
		},
	},
}

// Balansräkning layout.
var assetRanges = []statementRange{
	{"Anläggningstillgångar", 1000, 1399, false},
	{"Omsättningstillgångar", 1400, 1999, false},
}

var equityLiabilityRanges = []statementRange{
	{"Eget kapital", 2000, 2099, true},
	{"Obeskattade reserver", 2100, 2199, true},
	{"Avsättningar", 2200, 2299, true},
	{"Långfristiga skulder", 2300, 2399, true},
	{"Kortfristiga skulder", 2400, 2999, true},
}

// balanceTolerance is the statutory rounding slack: one krona.
var balanceTolerance = decimal.NewFromInt(1)

// sumRange totals the net balances of all accounts inside an inclusive BAS
// interval, presented from the requested side and rounded to whole kronor.
func sumRange(balances map[string]decimal.Decimal, r statementRange) decimal.Decimal {
	sum := decimal.Zero
	for account, net := range balances {
		n, ok := accountNumber(account)
		if !ok || n < r.low || n > r.high {
			continue
		}
		sum = sum.Add(net)
	}
	if r.creditSide {
		sum = sum.Neg()
	}
	return RoundKronor(sum)
}

// BuildIncomeStatement derives a resultaträkning from verification rows scoped
// to the fiscal year. Total lines are always sums of the detail lines that
// precede them, never re-derived from the ledger, so subtotals stay internally
// consistent even if the range tables change.
func BuildIncomeStatement(rows []domain.VerificationRow, fyStart, fyEnd time.Time) domain.IncomeStatement {
	balances, skipped := AggregateBalances(rows, fyStart, fyEnd)

	var lines []domain.StatementLine
	netResult := decimal.Zero

	for i, section := range incomeStatementSections {
		lines = append(lines, domain.StatementLine{Label: section.header, Level: 0, IsHeader: true})

		sectionTotal := decimal.Zero
		for _, detail := range section.details {
			value := sumRange(balances, detail)
			sectionTotal = sectionTotal.Add(value)
			lines = append(lines, domain.StatementLine{Label: detail.label, Value: value, Level: 1})
		}
		netResult = netResult.Add(sectionTotal)
		lines = append(lines, domain.StatementLine{Label: section.totalLabel, Value: sectionTotal, Level: 1, IsTotal: true})

		// Intermediate results after operating and financial sections.
		switch i {
		case 1:
			lines = append(lines, domain.StatementLine{Label: "Rörelseresultat", Value: netResult, Level: 0, IsTotal: true})
		case 2:
			lines = append(lines, domain.StatementLine{Label: "Resultat efter finansiella poster", Value: netResult, Level: 0, IsTotal: true})
		}
	}

	lines = append(lines, domain.StatementLine{Label: "Årets resultat", Value: netResult, Level: 0, IsTotal: true})

	return domain.IncomeStatement{
		FiscalYearStart: fyStart,
		FiscalYearEnd:   fyEnd,
		Lines:           lines,
		NetResult:       netResult,
		SkippedRows:     skipped,
	}
}

// BuildBalanceSheet derives a balansräkning from all verification rows up to
// and including asOf. Balance-sheet accounts are cumulative, so unlike the
// income statement the aggregation is never scoped to a single period.
//
// The computed result of the books ("Beräknat resultat") is presented as an
// equity line, so a ledger whose verifications all net to zero always
// reconciles. If assets still differ from equity+liabilities by more than one
// krona the sheet is returned with Balances=false; the imbalance is the
// caller's to act on.
func BuildBalanceSheet(rows []domain.VerificationRow, asOf time.Time) domain.BalanceSheet {
	// Epoch start: all history counts.
	balances, skipped := AggregateBalances(rows, time.Time{}, asOf)

	var lines []domain.StatementLine

	lines = append(lines, domain.StatementLine{Label: "Tillgångar", Level: 0, IsHeader: true})
	totalAssets := decimal.Zero
	for _, detail := range assetRanges {
		value := sumRange(balances, detail)
		totalAssets = totalAssets.Add(value)
		lines = append(lines, domain.StatementLine{Label: detail.label, Value: value, Level: 1})
	}
	lines = append(lines, domain.StatementLine{Label: "Summa tillgångar", Value: totalAssets, Level: 0, IsTotal: true})

	lines = append(lines, domain.StatementLine{Label: "Eget kapital och skulder", Level: 0, IsHeader: true})
	totalEquityLiabilities := decimal.Zero
	for i, detail := range equityLiabilityRanges {
		value := sumRange(balances, detail)
		totalEquityLiabilities = totalEquityLiabilities.Add(value)
		lines = append(lines, domain.StatementLine{Label: detail.label, Value: value, Level: 1})

		if i == 0 {
			// Result accounts have not been closed into equity yet; show the
			// accumulated result of the books as its own equity line.
			result := sumRange(balances, statementRange{"Beräknat resultat", 3000, 8998, true})
			totalEquityLiabilities = totalEquityLiabilities.Add(result)
			lines = append(lines, domain.StatementLine{Label: "Beräknat resultat", Value: result, Level: 1})
		}
	}
	lines = append(lines, domain.StatementLine{Label: "Summa eget kapital och skulder", Value: totalEquityLiabilities, Level: 0, IsTotal: true})

	diff := totalAssets.Sub(totalEquityLiabilities).Abs()

	return domain.BalanceSheet{
		AsOf:                   asOf,
		Lines:                  lines,
		TotalAssets:            totalAssets,
		TotalEquityLiabilities: totalEquityLiabilities,
		Balances:               diff.LessThanOrEqual(balanceTolerance),
		SkippedRows:            skipped,
	}
}
