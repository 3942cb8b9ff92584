package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hr-admin-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-admin-backend-go/internal/domain/grade"
	"github.com/cmlabs-hris/hr-admin-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hr-admin-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Accumulated form problems surface all at once
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Malformed clock strings are a data-integrity error in the request,
	// never swallowed
	var parseErr *clock.ParseError
	if errors.As(err, &parseErr) {
		BadRequest(w, parseErr.Error(), nil)
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceExists):
		Conflict(w, "Attendance record already exists for this employee and date")
	case errors.Is(err, attendance.ErrAlreadyProcessed):
		Conflict(w, "Attendance record has already been reviewed")

	// Salary grade domain errors
	case errors.Is(err, grade.ErrGradeNotFound):
		NotFound(w, "Salary grade not found")
	case errors.Is(err, grade.ErrGradeCodeExists):
		Conflict(w, "Salary grade code already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
