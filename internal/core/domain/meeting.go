package domain

import "time"

// MeetingType distinguishes the annual general meeting from extra meetings.
type MeetingType string

const (
	MeetingAnnual  MeetingType = "ARSMOTE"
	MeetingGeneral MeetingType = "BOLAGSSTAMMA"
)

// MeetingStatus is the lifecycle state of a governance meeting. Transitions are
// forward-only and one step at a time:
// planerad -> kallad -> genomford -> protokoll_signerat.
type MeetingStatus string

const (
	MeetingPlanned       MeetingStatus = "planerad"
	MeetingNoticeSent    MeetingStatus = "kallad"
	MeetingHeld          MeetingStatus = "genomford"
	MeetingMinutesSigned MeetingStatus = "protokoll_signerat"
)

// nextMeetingStatus defines the single legal successor of each status.
var nextMeetingStatus = map[MeetingStatus]MeetingStatus{
	MeetingPlanned:    MeetingNoticeSent,
	MeetingNoticeSent: MeetingHeld,
	MeetingHeld:       MeetingMinutesSigned,
}

// CanTransitionTo reports whether a meeting in status s may move to target.
func (s MeetingStatus) CanTransitionTo(target MeetingStatus) bool {
	next, ok := nextMeetingStatus[s]
	return ok && next == target
}

// Meeting is a governance event (årsmöte or bolagsstämma) with its agenda of motions.
type Meeting struct {
	MeetingID      string        `json:"meetingID"` // Primary Key (UUID)
	OrganizationID string        `json:"organizationID"`
	MeetingType    MeetingType   `json:"meetingType"`
	Title          string        `json:"title"`
	MeetingDate    time.Time     `json:"meetingDate"`
	Location       string        `json:"location"`
	Status         MeetingStatus `json:"status"`
	Motions        []Motion      `json:"motions,omitempty"`
	AuditFields
}

// Motion is a single agenda item put before a meeting.
type Motion struct {
	MotionID    string    `json:"motionID"` // Primary Key (UUID)
	MeetingID   string    `json:"meetingID"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Decision    *Decision `json:"decision,omitempty"`
	AuditFields
}

// DecisionOutcome is the recorded vote result for a motion.
type DecisionOutcome string

const (
	DecisionApproved DecisionOutcome = "bifall"
	DecisionRejected DecisionOutcome = "avslag"
	DecisionTabled   DecisionOutcome = "bordlagd"
)

// Decision records how a meeting resolved a motion.
type Decision struct {
	DecisionID string          `json:"decisionID"` // Primary Key (UUID)
	MotionID   string          `json:"motionID"`
	Outcome    DecisionOutcome `json:"outcome"`
	Notes      string          `json:"notes"`
	DecidedAt  time.Time       `json:"decidedAt"`
}

// MeetingStats aggregates meeting counts per status for an organization.
type MeetingStats struct {
	Total         int `json:"total"`
	Planned       int `json:"planned"`
	NoticeSent    int `json:"noticeSent"`
	Held          int `json:"held"`
	MinutesSigned int `json:"minutesSigned"`
}
