package attendance

import (
	"github.com/cmlabs-hris/hr-admin-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ShiftInput struct {
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	GraceMinutes *int   `json:"grace_minutes,omitempty"`
}

type RecordAttendanceRequest struct {
	EmployeeID string      `json:"employee_id"`
	Date       string      `json:"date"`
	CheckIn    *string     `json:"check_in,omitempty"`
	CheckOut   *string     `json:"check_out,omitempty"`
	Shift      *ShiftInput `json:"shift,omitempty"`

	// OnLeave marks the day as approved leave. It bypasses classification
	// entirely; the caller is asserting a leave record exists.
	OnLeave bool `json:"on_leave"`
}

func (r *RecordAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	// A missing clock is an absent field, never an empty string.
	if r.CheckIn != nil && validator.IsEmpty(*r.CheckIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "check_in must be omitted when not clocked in",
		})
	}
	if r.CheckOut != nil && validator.IsEmpty(*r.CheckOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out",
			Message: "check_out must be omitted when not clocked out",
		})
	}

	if r.Shift != nil {
		if validator.IsEmpty(r.Shift.StartTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "shift.start_time",
				Message: "shift start_time is required",
			})
		}
		if validator.IsEmpty(r.Shift.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "shift.end_time",
				Message: "shift end_time is required",
			})
		}
		if r.Shift.GraceMinutes != nil && *r.Shift.GraceMinutes < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "shift.grace_minutes",
				Message: "shift grace_minutes must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateAttendanceRequest fixes wrong source data on an existing record
// (the manager correction flow). Derived fields are never settable; they
// are recomputed from the corrected source fields. An empty string on a
// clock field removes that timestamp.
type UpdateAttendanceRequest struct {
	ID       string      `json:"-"`
	Date     *string     `json:"date,omitempty"`
	CheckIn  *string     `json:"check_in,omitempty"`
	CheckOut *string     `json:"check_out,omitempty"`
	Shift    *ShiftInput `json:"shift,omitempty"`
	OnLeave  *bool       `json:"on_leave,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Shift != nil {
		if validator.IsEmpty(r.Shift.StartTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "shift.start_time",
				Message: "shift start_time is required",
			})
		}
		if validator.IsEmpty(r.Shift.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "shift.end_time",
				Message: "shift end_time is required",
			})
		}
		if r.Shift.GraceMinutes != nil && *r.Shift.GraceMinutes < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "shift.grace_minutes",
				Message: "shift grace_minutes must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectAttendanceRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r *RejectAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "rejection reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceFilter struct {
	EmployeeID *string
	Status     *string
	DateFrom   *string // YYYY-MM-DD, inclusive
	DateTo     *string // YYYY-MM-DD, inclusive
	Page       int
	Limit      int
}

// Normalize applies pagination defaults in place.
func (f *AttendanceFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 10
	}
}

type MonthlyGridRequest struct {
	EmployeeID string
	Year       int
	Month      int
}

func (r *MonthlyGridRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID              string      `json:"id"`
	EmployeeID      string      `json:"employee_id"`
	Date            string      `json:"date"`
	CheckIn         *string     `json:"check_in,omitempty"`
	CheckOut        *string     `json:"check_out,omitempty"`
	Shift           *ShiftInput `json:"shift,omitempty"`
	TotalHours      float64     `json:"total_hours"`
	LateMinutes     int         `json:"late_minutes"`
	Status          string      `json:"status"`
	ReviewStatus    string      `json:"review_status"`
	RejectionReason *string     `json:"rejection_reason,omitempty"`
	CreatedAt       string      `json:"created_at"`
	UpdatedAt       string      `json:"updated_at"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Showing     string               `json:"showing"`
	Attendances []AttendanceResponse `json:"attendances"`
}

// GridDay is one cell of the monthly attendance grid. Days with no
// stored record render as Absent with Recorded=false.
type GridDay struct {
	Date        string  `json:"date"`
	Status      string  `json:"status"`
	TotalHours  float64 `json:"total_hours"`
	LateMinutes int     `json:"late_minutes"`
	Recorded    bool    `json:"recorded"`
}

type MonthlyGridResponse struct {
	EmployeeID  string    `json:"employee_id"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	Days        []GridDay `json:"days"`
	PresentDays int       `json:"present_days"`
	AbsentDays  int       `json:"absent_days"`
	LateDays    int       `json:"late_days"`
	HalfDays    int       `json:"half_days"`
	LeaveDays   int       `json:"leave_days"`
}
