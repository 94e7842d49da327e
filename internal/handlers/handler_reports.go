package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/klarbok/klarbok_backend/internal/core/ports/services"
	"github.com/klarbok/klarbok_backend/internal/dto"
	"github.com/klarbok/klarbok_backend/internal/middleware"
	"github.com/klarbok/klarbok_backend/internal/providers/pdf"
)

// reportHandler handles HTTP requests for VAT returns and financial statements.
type reportHandler struct {
	reportingService    portssvc.ReportingSvcFacade
	organizationService portssvc.OrganizationSvcFacade
	pdfProvider         pdf.Provider
}

func newReportHandler(reportingService portssvc.ReportingSvcFacade, organizationService portssvc.OrganizationSvcFacade, pdfProvider pdf.Provider) *reportHandler {
	return &reportHandler{
		reportingService:    reportingService,
		organizationService: organizationService,
		pdfProvider:         pdfProvider,
	}
}

// registerReportRoutes sets up the report routes under one organization.
func registerReportRoutes(org *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, organizationService portssvc.OrganizationSvcFacade, pdfProvider pdf.Provider) {
	h := newReportHandler(reportingService, organizationService, pdfProvider)
	reports := org.Group("/reports")
	{
		reports.GET("/vat/:period_id", h.getVatReport)
		reports.POST("/vat/:period_id/submit", h.submitVatReport)
		reports.GET("/income-statement", h.getIncomeStatement)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/annual-report", h.getAnnualReport)
		reports.GET("/annual-report/pdf", h.getAnnualReportPdf)
	}
}

// getVatReport godoc
// @Summary Get the VAT return for a period
// @Description Returns the submitted snapshot when one exists, otherwise computes the return live from the ledger.
// @Tags reports
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param period_id path string true "Period ID"
// @Success 200 {object} dto.VatReportResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /organizations/{organization_id}/reports/vat/{period_id} [get]
func (h *reportHandler) getVatReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")
	periodID := c.Param("period_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.reportingService.GetVatReport(c.Request.Context(), organizationID, periodID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "get VAT return")
		return
	}
	c.JSON(http.StatusOK, dto.ToVatReportResponse(report))
}

// submitVatReport godoc
// @Summary Submit the VAT return for a period
// @Description Freezes the VAT return. Manual box overrides are applied and derived totals recomputed before the snapshot is stored. A period can only be submitted once.
// @Tags reports
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param period_id path string true "Period ID"
// @Param overrides body dto.SubmitVatReportRequest false "Manual box overrides"
// @Success 201 {object} dto.VatReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /organizations/{organization_id}/reports/vat/{period_id}/submit [post]
func (h *reportHandler) submitVatReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")
	periodID := c.Param("period_id")

	var req dto.SubmitVatReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.reportingService.SubmitVatReport(c.Request.Context(), organizationID, periodID, req.Overrides, userID)
	if err != nil {
		respondServiceError(c, logger, err, "submit VAT return")
		return
	}

	logger.Info("VAT return submitted",
		slog.String("organization_id", organizationID),
		slog.String("period_id", periodID))
	c.JSON(http.StatusCreated, dto.ToVatReportResponse(report))
}

// getIncomeStatement godoc
// @Summary Get the income statement for a fiscal year
// @Tags reports
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param fiscalYear query int true "Fiscal year (named after its end year)"
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /organizations/{organization_id}/reports/income-statement [get]
func (h *reportHandler) getIncomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fiscalYear, err := strconv.Atoi(c.Query("fiscalYear"))
	if err != nil || fiscalYear < 1900 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or missing fiscalYear"})
		return
	}

	statement, err := h.reportingService.GetIncomeStatement(c.Request.Context(), organizationID, fiscalYear, userID)
	if err != nil {
		respondServiceError(c, logger, err, "build income statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(statement))
}

// getBalanceSheet godoc
// @Summary Get the balance sheet as of a date
// @Tags reports
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param asOf query string true "Cut-off date (YYYY-MM-DD)"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /organizations/{organization_id}/reports/balance-sheet [get]
func (h *reportHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	asOf, err := time.Parse("2006-01-02", c.Query("asOf"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or missing asOf date, expected YYYY-MM-DD"})
		return
	}

	sheet, err := h.reportingService.GetBalanceSheet(c.Request.Context(), organizationID, asOf, userID)
	if err != nil {
		respondServiceError(c, logger, err, "build balance sheet")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(sheet))
}

// getAnnualReport godoc
// @Summary Get the annual report for a fiscal year
// @Description Bundles the fiscal year's income statement and closing balance sheet.
// @Tags reports
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param fiscalYear query int true "Fiscal year (named after its end year)"
// @Success 200 {object} dto.AnnualReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /organizations/{organization_id}/reports/annual-report [get]
func (h *reportHandler) getAnnualReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fiscalYear, err := strconv.Atoi(c.Query("fiscalYear"))
	if err != nil || fiscalYear < 1900 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or missing fiscalYear"})
		return
	}

	report, err := h.reportingService.GetAnnualReport(c.Request.Context(), organizationID, fiscalYear, userID)
	if err != nil {
		respondServiceError(c, logger, err, "build annual report")
		return
	}
	c.JSON(http.StatusOK, dto.ToAnnualReportResponse(report))
}

// getAnnualReportPdf godoc
// @Summary Download the annual report as a PDF
// @Tags reports
// @Produce application/pdf
// @Param organization_id path string true "Organization ID"
// @Param fiscalYear query int true "Fiscal year (named after its end year)"
// @Success 200 {file} file "PDF document"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /organizations/{organization_id}/reports/annual-report/pdf [get]
func (h *reportHandler) getAnnualReportPdf(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fiscalYear, err := strconv.Atoi(c.Query("fiscalYear"))
	if err != nil || fiscalYear < 1900 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or missing fiscalYear"})
		return
	}

	org, err := h.organizationService.GetOrganizationByID(c.Request.Context(), organizationID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "get organization")
		return
	}

	report, err := h.reportingService.GetAnnualReport(c.Request.Context(), organizationID, fiscalYear, userID)
	if err != nil {
		respondServiceError(c, logger, err, "build annual report")
		return
	}

	reader, err := h.pdfProvider.GenerateAnnualReport(c.Request.Context(), org.Name, report)
	if err != nil {
		logger.Error("Failed to render annual report PDF", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to render annual report PDF"})
		return
	}

	filename := fmt.Sprintf("arsredovisning-%d.pdf", fiscalYear)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.DataFromReader(http.StatusOK, -1, "application/pdf", reader, nil)
}
