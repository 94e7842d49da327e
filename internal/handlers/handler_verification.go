package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/klarbok/klarbok_backend/internal/core/ports/services"
	"github.com/klarbok/klarbok_backend/internal/dto"
	"github.com/klarbok/klarbok_backend/internal/middleware"
)

// verificationHandler handles HTTP requests related to verifications.
type verificationHandler struct {
	verificationService portssvc.VerificationSvcFacade
}

func newVerificationHandler(verificationService portssvc.VerificationSvcFacade) *verificationHandler {
	return &verificationHandler{verificationService: verificationService}
}

// registerVerificationRoutes sets up the verification routes under one organization.
func registerVerificationRoutes(org *gin.RouterGroup, verificationService portssvc.VerificationSvcFacade) {
	h := newVerificationHandler(verificationService)
	verifications := org.Group("/verifications")
	{
		verifications.POST("", h.createVerification)
		verifications.GET("", h.listVerifications)
		verifications.GET("/:verification_id", h.getVerification)
		verifications.POST("/:verification_id/reverse", h.reverseVerification)
	}
}

// createVerification godoc
// @Summary Post a verification
// @Description Posts a balanced bookkeeping verification. Rows must net to zero.
// @Tags verifications
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param verification body dto.CreateVerificationRequest true "Verification and rows"
// @Success 201 {object} dto.VerificationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /organizations/{organization_id}/verifications [post]
func (h *verificationHandler) createVerification(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")

	var req dto.CreateVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	verification, rows, err := h.verificationService.CreateVerification(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "post verification")
		return
	}

	logger.Info("Verification posted", slog.String("verification_id", verification.VerificationID))
	c.JSON(http.StatusCreated, dto.ToVerificationResponse(verification, rows))
}

// listVerifications godoc
// @Summary List verifications
// @Description Lists the organization's verifications, newest first, with token pagination.
// @Tags verifications
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Pagination cursor from a previous page"
// @Success 200 {object} dto.ListVerificationsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /organizations/{organization_id}/verifications [get]
func (h *verificationHandler) listVerifications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	verifications, newToken, err := h.verificationService.ListVerifications(c.Request.Context(), organizationID, limit, nextToken, userID)
	if err != nil {
		respondServiceError(c, logger, err, "list verifications")
		return
	}
	c.JSON(http.StatusOK, dto.ToListVerificationsResponse(verifications, newToken))
}

// getVerification godoc
// @Summary Get a verification
// @Description Retrieves one verification with its rows.
// @Tags verifications
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param verification_id path string true "Verification ID"
// @Success 200 {object} dto.VerificationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /organizations/{organization_id}/verifications/{verification_id} [get]
func (h *verificationHandler) getVerification(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")
	verificationID := c.Param("verification_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	verification, rows, err := h.verificationService.GetVerificationByID(c.Request.Context(), organizationID, verificationID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "get verification")
		return
	}
	c.JSON(http.StatusOK, dto.ToVerificationResponse(verification, rows))
}

// reverseVerification godoc
// @Summary Reverse a verification
// @Description Posts a mirror-image correction and links the pair. The original is never edited.
// @Tags verifications
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param verification_id path string true "Verification ID"
// @Success 201 {object} dto.VerificationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /organizations/{organization_id}/verifications/{verification_id}/reverse [post]
func (h *verificationHandler) reverseVerification(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")
	verificationID := c.Param("verification_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	reversal, rows, err := h.verificationService.ReverseVerification(c.Request.Context(), organizationID, verificationID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "reverse verification")
		return
	}

	logger.Info("Verification reversed",
		slog.String("original_id", verificationID),
		slog.String("reversal_id", reversal.VerificationID))
	c.JSON(http.StatusCreated, dto.ToVerificationResponse(reversal, rows))
}
