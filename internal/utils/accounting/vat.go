package accounting

import (
	"github.com/klarbok/klarbok_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// vatBox identifies a ruta on the VAT return that the mapping table feeds.
type vatBox int

const (
	boxSales25 vatBox = iota // ruta05
	boxSales12               // ruta06
	boxSales06               // ruta07
	boxPurchaseEUGoods       // ruta20
	boxPurchaseEUServices    // ruta21
	boxPurchaseNonEUServices // ruta22
	boxEUGoodsSales          // ruta35
	boxExportGoods           // ruta36
	boxEUServicesSales       // ruta39
	boxInputVat              // ruta48
)

// vatAccountRange maps an inclusive BAS account interval to a VAT box. Sales
// accounts carry credit balances, so their base is the negated net amount;
// input-VAT accounts carry debit balances and are taken as-is.
type vatAccountRange struct {
	low, high  int
	box        vatBox
	creditSide bool // true when a credit balance means a positive base
}

// vatAccountRanges is the fixed BAS-to-ruta mapping, evaluated in order with
// first match winning so that the specific foreign-trade accounts take
// precedence over the broad 25% sales interval they sit inside.
//
// The 25% sales interval (3001-3740) and the input-VAT interval (2640-2649)
// follow the standard BAS chart; the remaining intervals are the conventional
// BAS placements for the respective boxes. The table is deliberately not
// runtime-configurable: it is part of the statutory contract.
var vatAccountRanges = []vatAccountRange{
	{3105, 3105, boxExportGoods, true},
	{3106, 3106, boxEUGoodsSales, true},
	{3308, 3308, boxEUServicesSales, true},
	{3001, 3740, boxSales25, true},
	{3741, 3749, boxSales12, true},
	{3750, 3759, boxSales06, true},
	{4515, 4519, boxPurchaseEUGoods, false},
	{4535, 4539, boxPurchaseEUServices, false},
	{4531, 4534, boxPurchaseNonEUServices, false},
	{2640, 2649, boxInputVat, false},
}

var (
	rate25 = decimal.NewFromFloat(0.25)
	rate12 = decimal.NewFromFloat(0.12)
	rate06 = decimal.NewFromFloat(0.06)
)

// BuildVatReport maps aggregated account balances onto the boxes of a VAT
// return for the given period. Bases are accumulated at full precision and
// rounded per box; output VAT per rate is derived from the rounded base, and
// the derived totals are filled in via RecalculateVat.
func BuildVatReport(balances map[string]decimal.Decimal, period domain.FinancialPeriod) domain.VatReport {
	sums := make(map[vatBox]decimal.Decimal)

	for account, net := range balances {
		n, ok := accountNumber(account)
		if !ok {
			continue
		}
		for _, r := range vatAccountRanges {
			if n < r.low || n > r.high {
				continue
			}
			amount := net
			if r.creditSide {
				amount = net.Neg()
			}
			sums[r.box] = sums[r.box].Add(amount)
			break
		}
	}

	report := domain.VatReport{
		Period:   period.Label,
		PeriodID: period.PeriodID,
		DueDate:  period.VatDueDate,
		Status:   domain.VatUpcoming,

		Ruta05: RoundKronor(sums[boxSales25]),
		Ruta06: RoundKronor(sums[boxSales12]),
		Ruta07: RoundKronor(sums[boxSales06]),

		Ruta20: RoundKronor(sums[boxPurchaseEUGoods]),
		Ruta21: RoundKronor(sums[boxPurchaseEUServices]),
		Ruta22: RoundKronor(sums[boxPurchaseNonEUServices]),

		Ruta35: RoundKronor(sums[boxEUGoodsSales]),
		Ruta36: RoundKronor(sums[boxExportGoods]),
		Ruta39: RoundKronor(sums[boxEUServicesSales]),

		Ruta48: RoundKronor(sums[boxInputVat]),
	}

	// Output VAT is derived from the declared base per rate, each box rounded
	// independently per the Skatteverket convention.
	report.Ruta10 = RoundKronor(report.Ruta05.Mul(rate25))
	report.Ruta11 = RoundKronor(report.Ruta06.Mul(rate12))
	report.Ruta12 = RoundKronor(report.Ruta07.Mul(rate06))

	return RecalculateVat(report)
}

// RecalculateVat returns a copy of the report with the derived totals
// (SalesVat, InputVat, NetVat, Ruta49) recomputed from the current box values.
// It never mutates its argument and is idempotent: box values are taken as
// they stand, so manual edits to individual boxes keep overriding the
// auto-derived values until the underlying base changes and the report is
// rebuilt.
//
// A negative NetVat is a refund ("att få tillbaka"), not a negative payment;
// the sign is part of the contract and must survive serialization.
func RecalculateVat(report domain.VatReport) domain.VatReport {
	out := report
	out.SalesVat = out.Ruta10.Add(out.Ruta11).Add(out.Ruta12)
	out.InputVat = out.Ruta48
	out.NetVat = out.SalesVat.Sub(out.InputVat)
	out.Ruta49 = out.NetVat
	return out
}
