package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/hr-admin-backend-go/internal/domain/attendance"
	"github.com/google/uuid"
)

type attendanceRepositoryImpl struct {
	*store
	records map[string]attendance.Attendance
}

func NewAttendanceRepository() attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{
		store:   newStore(),
		records: make(map[string]attendance.Attendance),
	}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	att.ID = uuid.NewString()
	att.CreatedAt = now
	att.UpdatedAt = now

	r.records[att.ID] = cloneAttendance(att)
	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	att, ok := r.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return cloneAttendance(att), nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	day := date.Format("2006-01-02")
	for _, att := range r.records {
		if att.EmployeeID == employeeID && att.Date.Format("2006-01-02") == day {
			clone := cloneAttendance(att)
			return &clone, nil
		}
	}
	return nil, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(_ context.Context, att attendance.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.records[att.ID]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}

	att.CreatedAt = current.CreatedAt
	att.UpdatedAt = time.Now().UTC()
	r.records[att.ID] = cloneAttendance(att)
	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(_ context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []attendance.Attendance
	for _, att := range r.records {
		if filter.EmployeeID != nil && att.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && string(att.Status) != *filter.Status {
			continue
		}
		if filter.DateFrom != nil {
			if from, err := time.Parse("2006-01-02", *filter.DateFrom); err == nil && att.Date.Before(from) {
				continue
			}
		}
		if filter.DateTo != nil {
			if to, err := time.Parse("2006-01-02", *filter.DateTo); err == nil && att.Date.After(to) {
				continue
			}
		}
		matched = append(matched, cloneAttendance(att))
	}

	// Newest day first; employee ID breaks ties for a stable order.
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.After(matched[j].Date)
		}
		return matched[i].EmployeeID < matched[j].EmployeeID
	})

	total := int64(len(matched))
	return paginate(matched, filter.Page, filter.Limit), total, nil
}

// ListByEmployeeMonth implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeMonth(_ context.Context, employeeID string, year int, month time.Month) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []attendance.Attendance
	for _, att := range r.records {
		if att.EmployeeID != employeeID {
			continue
		}
		if att.Date.Year() != year || att.Date.Month() != month {
			continue
		}
		matched = append(matched, cloneAttendance(att))
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date)
	})

	return matched, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(r.records, id)
	return nil
}

// cloneAttendance deep-copies pointer fields so stored records never
// alias caller-owned memory.
func cloneAttendance(att attendance.Attendance) attendance.Attendance {
	att.CheckIn = cloneStringPtr(att.CheckIn)
	att.CheckOut = cloneStringPtr(att.CheckOut)
	att.RejectionReason = cloneStringPtr(att.RejectionReason)
	if att.Shift != nil {
		shift := *att.Shift
		shift.GraceMinutes = cloneIntPtr(att.Shift.GraceMinutes)
		att.Shift = &shift
	}
	return att
}
