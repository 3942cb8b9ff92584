package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves attendance for a specific employee on
	// a specific date. Used to prevent duplicate day records.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, attendance Attendance) error

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// ListByEmployeeMonth retrieves all records for one employee within a
	// calendar month, ordered by date. Feeds the monthly grid.
	ListByEmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]Attendance, error)

	// Delete removes an attendance record
	Delete(ctx context.Context, id string) error
}
