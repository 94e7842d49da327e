package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/klarbok/klarbok_backend/internal/core/ports/services"
	"github.com/klarbok/klarbok_backend/internal/dto"
	"github.com/klarbok/klarbok_backend/internal/middleware"
)

// periodHandler handles HTTP requests related to financial periods.
type periodHandler struct {
	periodService portssvc.PeriodSvcFacade
}

func newPeriodHandler(periodService portssvc.PeriodSvcFacade) *periodHandler {
	return &periodHandler{periodService: periodService}
}

// registerPeriodRoutes sets up the period routes under one organization.
func registerPeriodRoutes(org *gin.RouterGroup, periodService portssvc.PeriodSvcFacade) {
	h := newPeriodHandler(periodService)
	periods := org.Group("/periods")
	{
		periods.POST("", h.createPeriod)
		periods.GET("", h.listPeriods)
		periods.GET("/:period_id", h.getPeriod)
		periods.POST("/:period_id/close", h.closePeriod)
	}
}

// createPeriod godoc
// @Summary Create a financial period
// @Tags periods
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param period body dto.CreatePeriodRequest true "Period details"
// @Success 201 {object} dto.PeriodResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /organizations/{organization_id}/periods [post]
func (h *periodHandler) createPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")

	var req dto.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	period, err := h.periodService.CreatePeriod(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "create period")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPeriodResponse(period))
}

// listPeriods godoc
// @Summary List financial periods
// @Tags periods
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {array} dto.PeriodResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /organizations/{organization_id}/periods [get]
func (h *periodHandler) listPeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	periods, err := h.periodService.ListPeriods(c.Request.Context(), organizationID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "list periods")
		return
	}

	resp := make([]dto.PeriodResponse, 0, len(periods))
	for i := range periods {
		resp = append(resp, dto.ToPeriodResponse(&periods[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// getPeriod godoc
// @Summary Get a financial period
// @Tags periods
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param period_id path string true "Period ID"
// @Success 200 {object} dto.PeriodResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /organizations/{organization_id}/periods/{period_id} [get]
func (h *periodHandler) getPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")
	periodID := c.Param("period_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	period, err := h.periodService.GetPeriodByID(c.Request.Context(), organizationID, periodID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "get period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// closePeriod godoc
// @Summary Close a financial period
// @Description Marks a period closed for further bookkeeping. Requires the admin role.
// @Tags periods
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param period_id path string true "Period ID"
// @Success 200 {object} dto.PeriodResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /organizations/{organization_id}/periods/{period_id}/close [post]
func (h *periodHandler) closePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")
	periodID := c.Param("period_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	period, err := h.periodService.ClosePeriod(c.Request.Context(), organizationID, periodID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "close period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}
