package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
)

// SubmitVatReportRequest locks in a VAT return for a period. Overrides carries
// manual box edits keyed by box name ("ruta05" .. "ruta48"); derived boxes are
// recomputed server-side and cannot be overridden.
type SubmitVatReportRequest struct {
	Overrides map[string]decimal.Decimal `json:"overrides"`
}

// VatReportResponse defines the structure for a VAT return in API responses.
type VatReportResponse struct {
	Period      string     `json:"period"`
	PeriodID    string     `json:"periodId"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Status      string     `json:"status"`
	Disposition string     `json:"disposition"`

	Ruta05 decimal.Decimal `json:"ruta05"`
	Ruta06 decimal.Decimal `json:"ruta06"`
	Ruta07 decimal.Decimal `json:"ruta07"`
	Ruta08 decimal.Decimal `json:"ruta08"`
	Ruta10 decimal.Decimal `json:"ruta10"`
	Ruta11 decimal.Decimal `json:"ruta11"`
	Ruta12 decimal.Decimal `json:"ruta12"`
	Ruta20 decimal.Decimal `json:"ruta20"`
	Ruta21 decimal.Decimal `json:"ruta21"`
	Ruta22 decimal.Decimal `json:"ruta22"`
	Ruta23 decimal.Decimal `json:"ruta23"`
	Ruta24 decimal.Decimal `json:"ruta24"`
	Ruta30 decimal.Decimal `json:"ruta30"`
	Ruta31 decimal.Decimal `json:"ruta31"`
	Ruta32 decimal.Decimal `json:"ruta32"`
	Ruta35 decimal.Decimal `json:"ruta35"`
	Ruta36 decimal.Decimal `json:"ruta36"`
	Ruta37 decimal.Decimal `json:"ruta37"`
	Ruta38 decimal.Decimal `json:"ruta38"`
	Ruta39 decimal.Decimal `json:"ruta39"`
	Ruta40 decimal.Decimal `json:"ruta40"`
	Ruta41 decimal.Decimal `json:"ruta41"`
	Ruta42 decimal.Decimal `json:"ruta42"`
	Ruta48 decimal.Decimal `json:"ruta48"`
	Ruta49 decimal.Decimal `json:"ruta49"`

	SalesVat decimal.Decimal `json:"salesVat"`
	InputVat decimal.Decimal `json:"inputVat"`
	NetVat   decimal.Decimal `json:"netVat"`
}

// ToVatReportResponse converts a domain.VatReport to its response DTO.
func ToVatReportResponse(r *domain.VatReport) VatReportResponse {
	return VatReportResponse{
		Period:      r.Period,
		PeriodID:    r.PeriodID,
		DueDate:     r.DueDate,
		Status:      string(r.Status),
		Disposition: r.Disposition(),
		Ruta05:      r.Ruta05, Ruta06: r.Ruta06, Ruta07: r.Ruta07, Ruta08: r.Ruta08,
		Ruta10: r.Ruta10, Ruta11: r.Ruta11, Ruta12: r.Ruta12,
		Ruta20: r.Ruta20, Ruta21: r.Ruta21, Ruta22: r.Ruta22, Ruta23: r.Ruta23, Ruta24: r.Ruta24,
		Ruta30: r.Ruta30, Ruta31: r.Ruta31, Ruta32: r.Ruta32,
		Ruta35: r.Ruta35, Ruta36: r.Ruta36, Ruta37: r.Ruta37, Ruta38: r.Ruta38,
		Ruta39: r.Ruta39, Ruta40: r.Ruta40, Ruta41: r.Ruta41, Ruta42: r.Ruta42,
		Ruta48: r.Ruta48, Ruta49: r.Ruta49,
		SalesVat: r.SalesVat, InputVat: r.InputVat, NetVat: r.NetVat,
	}
}

// StatementLineResponse is one rendered line of a financial statement.
type StatementLineResponse struct {
	Label    string          `json:"label"`
	Value    decimal.Decimal `json:"value"`
	Level    int             `json:"level"`
	IsHeader bool            `json:"isHeader"`
	IsTotal  bool            `json:"isTotal"`
}

// IncomeStatementResponse defines the income statement API response.
type IncomeStatementResponse struct {
	FiscalYearStart time.Time               `json:"fiscalYearStart"`
	FiscalYearEnd   time.Time               `json:"fiscalYearEnd"`
	Lines           []StatementLineResponse `json:"lines"`
	NetResult       decimal.Decimal         `json:"netResult"`
	SkippedRows     int                     `json:"skippedRows,omitempty"`
}

// BalanceSheetResponse defines the balance sheet API response.
type BalanceSheetResponse struct {
	AsOf                   time.Time               `json:"asOf"`
	Lines                  []StatementLineResponse `json:"lines"`
	TotalAssets            decimal.Decimal         `json:"totalAssets"`
	TotalEquityLiabilities decimal.Decimal         `json:"totalEquityLiabilities"`
	Balances               bool                    `json:"balances"`
	SkippedRows            int                     `json:"skippedRows,omitempty"`
}

// AnnualReportResponse bundles the year-end statements.
type AnnualReportResponse struct {
	FiscalYearStart time.Time               `json:"fiscalYearStart"`
	FiscalYearEnd   time.Time               `json:"fiscalYearEnd"`
	IncomeStatement IncomeStatementResponse `json:"incomeStatement"`
	BalanceSheet    BalanceSheetResponse    `json:"balanceSheet"`
}

func toStatementLineResponses(lines []domain.StatementLine) []StatementLineResponse {
	out := make([]StatementLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, StatementLineResponse{
			Label:    l.Label,
			Value:    l.Value,
			Level:    l.Level,
			IsHeader: l.IsHeader,
			IsTotal:  l.IsTotal,
		})
	}
	return out
}

// ToIncomeStatementResponse converts a domain.IncomeStatement to its response DTO.
func ToIncomeStatementResponse(s *domain.IncomeStatement) IncomeStatementResponse {
	return IncomeStatementResponse{
		FiscalYearStart: s.FiscalYearStart,
		FiscalYearEnd:   s.FiscalYearEnd,
		Lines:           toStatementLineResponses(s.Lines),
		NetResult:       s.NetResult,
		SkippedRows:     s.SkippedRows,
	}
}

// ToBalanceSheetResponse converts a domain.BalanceSheet to its response DTO.
func ToBalanceSheetResponse(s *domain.BalanceSheet) BalanceSheetResponse {
	return BalanceSheetResponse{
		AsOf:                   s.AsOf,
		Lines:                  toStatementLineResponses(s.Lines),
		TotalAssets:            s.TotalAssets,
		TotalEquityLiabilities: s.TotalEquityLiabilities,
		Balances:               s.Balances,
		SkippedRows:            s.SkippedRows,
	}
}

// ToAnnualReportResponse converts a domain.AnnualReport to its response DTO.
func ToAnnualReportResponse(r *domain.AnnualReport) AnnualReportResponse {
	return AnnualReportResponse{
		FiscalYearStart: r.FiscalYearStart,
		FiscalYearEnd:   r.FiscalYearEnd,
		IncomeStatement: ToIncomeStatementResponse(&r.IncomeStatement),
		BalanceSheet:    ToBalanceSheetResponse(&r.BalanceSheet),
	}
}
