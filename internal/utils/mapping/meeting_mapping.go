package mapping

import (
	"github.com/klarbok/klarbok_backend/internal/core/domain"
	"github.com/klarbok/klarbok_backend/internal/models"
)

// ToModelMeeting converts a domain Meeting to a model Meeting. Motions are
// persisted separately.
func ToModelMeeting(d domain.Meeting) models.Meeting {
	return models.Meeting{
		MeetingID:      d.MeetingID,
		OrganizationID: d.OrganizationID,
		MeetingType:    string(d.MeetingType),
		Title:          d.Title,
		MeetingDate:    d.MeetingDate,
		Location:       d.Location,
		Status:         string(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMeeting converts a model Meeting to a domain Meeting without motions.
func ToDomainMeeting(m models.Meeting) domain.Meeting {
	return domain.Meeting{
		MeetingID:      m.MeetingID,
		OrganizationID: m.OrganizationID,
		MeetingType:    domain.MeetingType(m.MeetingType),
		Title:          m.Title,
		MeetingDate:    m.MeetingDate,
		Location:       m.Location,
		Status:         domain.MeetingStatus(m.Status),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMotion converts a model Motion (and optional decision) to domain form.
func ToDomainMotion(m models.Motion, decision *models.Decision) domain.Motion {
	motion := domain.Motion{
		MotionID:    m.MotionID,
		MeetingID:   m.MeetingID,
		Title:       m.Title,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if decision != nil {
		motion.Decision = &domain.Decision{
			DecisionID: decision.DecisionID,
			MotionID:   decision.MotionID,
			Outcome:    domain.DecisionOutcome(decision.Outcome),
			Notes:      decision.Notes,
			DecidedAt:  decision.DecidedAt,
		}
	}
	return motion
}
