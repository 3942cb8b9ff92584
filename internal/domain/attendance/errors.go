package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAttendanceExists   = errors.New("attendance record already exists for this employee and date")
	ErrAlreadyProcessed   = errors.New("attendance has already been approved or rejected")
)
