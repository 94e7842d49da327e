package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
	portssvc "github.com/klarbok/klarbok_backend/internal/core/ports/services"
	"github.com/klarbok/klarbok_backend/internal/dto"
	"github.com/klarbok/klarbok_backend/internal/middleware"
)

// meetingHandler handles HTTP requests for governance meetings.
type meetingHandler struct {
	meetingService portssvc.MeetingSvcFacade
}

func newMeetingHandler(meetingService portssvc.MeetingSvcFacade) *meetingHandler {
	return &meetingHandler{meetingService: meetingService}
}

// registerMeetingRoutes sets up the meeting routes under one organization.
// The stats route is registered before the parameterised routes so gin does
// not treat "stats" as a meeting ID.
func registerMeetingRoutes(org *gin.RouterGroup, meetingService portssvc.MeetingSvcFacade) {
	h := newMeetingHandler(meetingService)
	meetings := org.Group("/meetings")
	{
		meetings.POST("", h.createMeeting)
		meetings.GET("", h.listMeetings)
		meetings.GET("/stats", h.getMeetingStats)
		meetings.GET("/:meeting_id", h.getMeeting)
		meetings.PATCH("/:meeting_id/status", h.updateMeetingStatus)
		meetings.POST("/:meeting_id/motions", h.addMotion)
		meetings.POST("/:meeting_id/motions/:motion_id/decision", h.recordDecision)
	}
}

// createMeeting godoc
// @Summary Schedule a governance meeting
// @Tags meetings
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param meeting body dto.CreateMeetingRequest true "Meeting details"
// @Success 201 {object} dto.MeetingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /organizations/{organization_id}/meetings [post]
func (h *meetingHandler) createMeeting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")

	var req dto.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	meeting, err := h.meetingService.CreateMeeting(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "create meeting")
		return
	}

	logger.Info("Meeting scheduled", slog.String("meeting_id", meeting.MeetingID))
	c.JSON(http.StatusCreated, dto.ToMeetingResponse(meeting))
}

// listMeetings godoc
// @Summary List governance meetings
// @Tags meetings
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {array} dto.MeetingResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /organizations/{organization_id}/meetings [get]
func (h *meetingHandler) listMeetings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	meetings, err := h.meetingService.ListMeetings(c.Request.Context(), organizationID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "list meetings")
		return
	}

	resp := make([]dto.MeetingResponse, 0, len(meetings))
	for i := range meetings {
		resp = append(resp, dto.ToMeetingResponse(&meetings[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// getMeetingStats godoc
// @Summary Get meeting counts per lifecycle status
// @Tags meetings
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {object} dto.MeetingStatsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /organizations/{organization_id}/meetings/stats [get]
func (h *meetingHandler) getMeetingStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	stats, err := h.meetingService.GetMeetingStats(c.Request.Context(), organizationID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "get meeting stats")
		return
	}
	c.JSON(http.StatusOK, dto.ToMeetingStatsResponse(stats))
}

// getMeeting godoc
// @Summary Get a governance meeting
// @Description Retrieves one meeting with its motions and any recorded decisions.
// @Tags meetings
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param meeting_id path string true "Meeting ID"
// @Success 200 {object} dto.MeetingResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /organizations/{organization_id}/meetings/{meeting_id} [get]
func (h *meetingHandler) getMeeting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")
	meetingID := c.Param("meeting_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	meeting, err := h.meetingService.GetMeetingByID(c.Request.Context(), organizationID, meetingID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "get meeting")
		return
	}
	c.JSON(http.StatusOK, dto.ToMeetingResponse(meeting))
}

// updateMeetingStatus godoc
// @Summary Advance a meeting's lifecycle
// @Description Moves the meeting one step forward: planerad, kallad, genomford, protokoll_signerat. Skipping a step or moving backwards is rejected.
// @Tags meetings
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param meeting_id path string true "Meeting ID"
// @Param status body dto.UpdateMeetingStatusRequest true "Target status"
// @Success 200 {object} dto.MeetingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /organizations/{organization_id}/meetings/{meeting_id}/status [patch]
func (h *meetingHandler) updateMeetingStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")
	meetingID := c.Param("meeting_id")

	var req dto.UpdateMeetingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	meeting, err := h.meetingService.UpdateMeetingStatus(c.Request.Context(), organizationID, meetingID, domain.MeetingStatus(req.Status), userID)
	if err != nil {
		respondServiceError(c, logger, err, "update meeting status")
		return
	}

	logger.Info("Meeting status updated",
		slog.String("meeting_id", meetingID),
		slog.String("status", req.Status))
	c.JSON(http.StatusOK, dto.ToMeetingResponse(meeting))
}

// addMotion godoc
// @Summary Add a motion to a meeting
// @Description Adds an agenda motion. Motions cannot be added once the meeting has been held.
// @Tags meetings
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param meeting_id path string true "Meeting ID"
// @Param motion body dto.CreateMotionRequest true "Motion details"
// @Success 201 {object} dto.MotionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /organizations/{organization_id}/meetings/{meeting_id}/motions [post]
func (h *meetingHandler) addMotion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")
	meetingID := c.Param("meeting_id")

	var req dto.CreateMotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	motion, err := h.meetingService.AddMotion(c.Request.Context(), organizationID, meetingID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "add motion")
		return
	}
	c.JSON(http.StatusCreated, dto.MotionResponse{
		MotionID:    motion.MotionID,
		Title:       motion.Title,
		Description: motion.Description,
	})
}

// recordDecision godoc
// @Summary Record a motion's decision
// @Description Records the outcome of a motion: bifall, avslag or bordlagd. Only allowed after the meeting has been held, and only once per motion.
// @Tags meetings
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param meeting_id path string true "Meeting ID"
// @Param motion_id path string true "Motion ID"
// @Param decision body dto.RecordDecisionRequest true "Decision details"
// @Success 201 {object} dto.DecisionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /organizations/{organization_id}/meetings/{meeting_id}/motions/{motion_id}/decision [post]
func (h *meetingHandler) recordDecision(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")
	meetingID := c.Param("meeting_id")
	motionID := c.Param("motion_id")

	var req dto.RecordDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	decision, err := h.meetingService.RecordDecision(c.Request.Context(), organizationID, meetingID, motionID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "record decision")
		return
	}

	logger.Info("Decision recorded",
		slog.String("motion_id", motionID),
		slog.String("outcome", string(decision.Outcome)))
	c.JSON(http.StatusCreated, dto.DecisionResponse{
		DecisionID: decision.DecisionID,
		Outcome:    string(decision.Outcome),
		Notes:      decision.Notes,
		DecidedAt:  decision.DecidedAt,
	})
}
