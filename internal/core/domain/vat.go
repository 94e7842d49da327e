package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VatStatus is the lifecycle state of a VAT return.
type VatStatus string

const (
	// VatUpcoming marks a live draft that is recomputed from the ledger on demand.
	VatUpcoming VatStatus = "upcoming"
	// VatSubmitted marks a filed return; it is a frozen snapshot and must never
	// change when the ledger does.
	VatSubmitted VatStatus = "submitted"
)

// VatReport mirrors the Skatteverket VAT return (SKV 4700) for one filing
// period. Box ("ruta") values are whole kronor. Boxes that this system never
// populates are still present because the declared form has them.
type VatReport struct {
	Period   string     `json:"period"`   // Human label, e.g. "Q1 2025"
	PeriodID string     `json:"periodId"` // FK -> financial_periods
	DueDate  *time.Time `json:"dueDate,omitempty"`
	Status   VatStatus  `json:"status"`

	// Momspliktig försäljning (sales bases per rate).
	Ruta05 decimal.Decimal `json:"ruta05"` // Sales taxed at 25%
	Ruta06 decimal.Decimal `json:"ruta06"` // Sales taxed at 12%
	Ruta07 decimal.Decimal `json:"ruta07"` // Sales taxed at 6%
	Ruta08 decimal.Decimal `json:"ruta08"` // Placeholder (self-supply etc.)

	// Utgående moms på försäljning.
	Ruta10 decimal.Decimal `json:"ruta10"` // Output VAT 25%
	Ruta11 decimal.Decimal `json:"ruta11"` // Output VAT 12%
	Ruta12 decimal.Decimal `json:"ruta12"` // Output VAT 6%

	// Inköp med omvänd skattskyldighet (reverse-charge purchase bases).
	Ruta20 decimal.Decimal `json:"ruta20"` // Goods from another EU country
	Ruta21 decimal.Decimal `json:"ruta21"` // Services from another EU country
	Ruta22 decimal.Decimal `json:"ruta22"` // Services from outside the EU
	Ruta23 decimal.Decimal `json:"ruta23"` // Placeholder
	Ruta24 decimal.Decimal `json:"ruta24"` // Placeholder

	// Utgående moms på inköp (reverse-charge output VAT per rate).
	Ruta30 decimal.Decimal `json:"ruta30"`
	Ruta31 decimal.Decimal `json:"ruta31"`
	Ruta32 decimal.Decimal `json:"ruta32"`

	// Momsfri försäljning och export.
	Ruta35 decimal.Decimal `json:"ruta35"` // Goods to another EU country
	Ruta36 decimal.Decimal `json:"ruta36"` // Goods exported outside the EU
	Ruta37 decimal.Decimal `json:"ruta37"` // Placeholder (middleman triangulation)
	Ruta38 decimal.Decimal `json:"ruta38"` // Placeholder
	Ruta39 decimal.Decimal `json:"ruta39"` // Services to another EU country
	Ruta40 decimal.Decimal `json:"ruta40"` // Placeholder
	Ruta41 decimal.Decimal `json:"ruta41"` // Placeholder
	Ruta42 decimal.Decimal `json:"ruta42"` // Other VAT-exempt sales

	// Ingående moms.
	Ruta48 decimal.Decimal `json:"ruta48"` // Deductible input VAT

	// Moms att betala eller få tillbaka. Mirrors NetVat on the filed form.
	Ruta49 decimal.Decimal `json:"ruta49"`

	// Derived totals, recomputed by accounting.RecalculateVat from the current
	// box values. Manual edits to individual boxes are honored.
	SalesVat decimal.Decimal `json:"salesVat"` // Ruta10 + Ruta11 + Ruta12
	InputVat decimal.Decimal `json:"inputVat"` // Ruta48
	NetVat   decimal.Decimal `json:"netVat"`   // SalesVat - InputVat
}

// IsRefund reports whether the period nets out to money back from Skatteverket.
func (r VatReport) IsRefund() bool {
	return r.NetVat.IsNegative()
}

// Disposition returns the statutory wording for the net amount: a negative net
// is money to be refunded, never a negative payment.
func (r VatReport) Disposition() string {
	if r.IsRefund() {
		return "att få tillbaka"
	}
	return "att betala"
}
