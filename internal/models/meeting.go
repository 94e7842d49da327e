package models

import "time"

// Meeting is the storage representation of a governance meeting.
type Meeting struct {
	MeetingID      string    `json:"meetingID"`
	OrganizationID string    `json:"organizationID"`
	MeetingType    string    `json:"meetingType"`
	Title          string    `json:"title"`
	MeetingDate    time.Time `json:"meetingDate"`
	Location       string    `json:"location"`
	Status         string    `json:"status"`
	AuditFields
}

// Motion is the storage representation of a meeting agenda item.
type Motion struct {
	MotionID    string `json:"motionID"`
	MeetingID   string `json:"meetingID"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AuditFields
}

// Decision is the storage representation of a motion's recorded outcome.
type Decision struct {
	DecisionID string    `json:"decisionID"`
	MotionID   string    `json:"motionID"`
	Outcome    string    `json:"outcome"`
	Notes      string    `json:"notes"`
	DecidedAt  time.Time `json:"decidedAt"`
}
