package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// RecordDay stores one employee-day from raw clock data, classifying
	// it against the supplied shift
	RecordDay(ctx context.Context, req RecordAttendanceRequest) (AttendanceResponse, error)

	// UpdateDay corrects source fields on a record and reclassifies it
	UpdateDay(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// GetDay retrieves a single attendance record by ID
	GetDay(ctx context.Context, id string) (AttendanceResponse, error)

	// ListDays retrieves attendance records with filters (admin/manager)
	ListDays(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// MonthlyGrid builds the per-day grid for one employee and month
	MonthlyGrid(ctx context.Context, req MonthlyGridRequest) (MonthlyGridResponse, error)

	// ApproveDay approves a corrected attendance record
	ApproveDay(ctx context.Context, id string) (AttendanceResponse, error)

	// RejectDay rejects a corrected attendance record with a reason
	RejectDay(ctx context.Context, req RejectAttendanceRequest) (AttendanceResponse, error)

	// DeleteDay removes an attendance record
	DeleteDay(ctx context.Context, id string) error
}
