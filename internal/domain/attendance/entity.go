package attendance

import (
	"time"
)

// Status is the attendance category for one employee-day.
type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusLate    Status = "LATE"
	StatusHalfDay Status = "HALF_DAY"

	// StatusOnLeave is never derived by classification; it is set only by
	// callers that already hold an approved leave record for the day.
	StatusOnLeave Status = "ON_LEAVE"
)

var StatusValues = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusLate),
	string(StatusHalfDay),
	string(StatusOnLeave),
}

// ReviewStatus tracks the correction/approval workflow state of a record,
// independent of its attendance Status.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "waiting_approval"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// Shift is the scheduled working window an employee-day is judged
// against. Times are "HH:MM" wall-clock strings in local shift time.
// An EndTime at or before StartTime means the shift crosses midnight;
// this is inferred, never flagged explicitly.
type Shift struct {
	StartTime    string
	EndTime      string
	GraceMinutes *int // nil means the configured default applies
}

// DayInput is one employee-day as the classifier sees it. Either clock
// may be absent; absence is a nil pointer, never an empty string.
type DayInput struct {
	CheckIn  *string
	CheckOut *string
	Shift    *Shift
}

// DayResult is the derived outcome for one employee-day. It is computed
// fresh on every classification and never mutated in place.
type DayResult struct {
	TotalHours  float64
	LateMinutes int
	Status      Status
}

// Attendance is a stored employee-day record. CheckIn/CheckOut/Shift are
// the source fields; TotalHours, LateMinutes and Status are derived and
// recomputed from source whenever any of them changes.
type Attendance struct {
	ID              string
	EmployeeID      string
	Date            time.Time
	CheckIn         *string
	CheckOut        *string
	Shift           *Shift
	TotalHours      float64
	LateMinutes     int
	Status          Status
	ReviewStatus    ReviewStatus
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
