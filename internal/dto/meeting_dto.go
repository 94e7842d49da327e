package dto

import (
	"time"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
)

// CreateMeetingRequest defines the payload for scheduling a governance meeting.
type CreateMeetingRequest struct {
	MeetingType string    `json:"meetingType" binding:"required,oneof=ARSMOTE BOLAGSSTAMMA"`
	Title       string    `json:"title" binding:"required,max=255"`
	MeetingDate time.Time `json:"meetingDate" binding:"required"`
	Location    string    `json:"location" binding:"max=255"`
}

// UpdateMeetingStatusRequest advances a meeting through its lifecycle.
type UpdateMeetingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=planerad kallad genomford protokoll_signerat"`
}

// CreateMotionRequest defines the payload for adding a motion to a meeting.
type CreateMotionRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"max=2000"`
}

// RecordDecisionRequest defines the payload for recording a motion's decision.
type RecordDecisionRequest struct {
	Outcome string `json:"outcome" binding:"required,oneof=bifall avslag bordlagd"`
	Notes   string `json:"notes" binding:"max=2000"`
}

// DecisionResponse defines decision data in API responses.
type DecisionResponse struct {
	DecisionID string    `json:"decisionId"`
	Outcome    string    `json:"outcome"`
	Notes      string    `json:"notes,omitempty"`
	DecidedAt  time.Time `json:"decidedAt"`
}

// MotionResponse defines motion data in API responses.
type MotionResponse struct {
	MotionID    string            `json:"motionId"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Decision    *DecisionResponse `json:"decision,omitempty"`
}

// MeetingResponse defines meeting data in API responses.
type MeetingResponse struct {
	MeetingID   string           `json:"meetingId"`
	MeetingType string           `json:"meetingType"`
	Title       string           `json:"title"`
	MeetingDate time.Time        `json:"meetingDate"`
	Location    string           `json:"location,omitempty"`
	Status      string           `json:"status"`
	Motions     []MotionResponse `json:"motions,omitempty"`
}

// MeetingStatsResponse aggregates meeting counts per lifecycle status.
type MeetingStatsResponse struct {
	Total         int `json:"total"`
	Planned       int `json:"planned"`
	NoticeSent    int `json:"noticeSent"`
	Held          int `json:"held"`
	MinutesSigned int `json:"minutesSigned"`
}

// ToMeetingResponse converts a domain.Meeting to a MeetingResponse DTO.
func ToMeetingResponse(m *domain.Meeting) MeetingResponse {
	resp := MeetingResponse{
		MeetingID:   m.MeetingID,
		MeetingType: string(m.MeetingType),
		Title:       m.Title,
		MeetingDate: m.MeetingDate,
		Location:    m.Location,
		Status:      string(m.Status),
	}
	for _, motion := range m.Motions {
		mr := MotionResponse{
			MotionID:    motion.MotionID,
			Title:       motion.Title,
			Description: motion.Description,
		}
		if motion.Decision != nil {
			mr.Decision = &DecisionResponse{
				DecisionID: motion.Decision.DecisionID,
				Outcome:    string(motion.Decision.Outcome),
				Notes:      motion.Decision.Notes,
				DecidedAt:  motion.Decision.DecidedAt,
			}
		}
		resp.Motions = append(resp.Motions, mr)
	}
	return resp
}

// ToMeetingStatsResponse converts domain.MeetingStats to its response DTO.
func ToMeetingStatsResponse(s *domain.MeetingStats) MeetingStatsResponse {
	return MeetingStatsResponse{
		Total:         s.Total,
		Planned:       s.Planned,
		NoticeSent:    s.NoticeSent,
		Held:          s.Held,
		MinutesSigned: s.MinutesSigned,
	}
}
