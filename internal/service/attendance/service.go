package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/cmlabs-hris/hr-admin-backend-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	classifier     *Classifier
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	classifier *Classifier,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		classifier:     classifier,
	}
}

// RecordDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RecordDay(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	existing, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceExists
	}

	shift := shiftFromInput(req.Shift)

	var result attendance.DayResult
	if req.OnLeave {
		// Approved leave overrides classification entirely.
		result = attendance.DayResult{Status: attendance.StatusOnLeave}
	} else {
		result, err = a.classifier.Classify(attendance.DayInput{
			CheckIn:  req.CheckIn,
			CheckOut: req.CheckOut,
			Shift:    shift,
		})
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
	}

	data := attendance.Attendance{
		EmployeeID:   req.EmployeeID,
		Date:         date,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		Shift:        shift,
		TotalHours:   result.TotalHours,
		LateMinutes:  result.LateMinutes,
		Status:       result.Status,
		ReviewStatus: attendance.ReviewStatusApproved,
	}

	created, err := a.attendanceRepo.Create(ctx, data)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapAttendanceToResponse(created), nil
}

// UpdateDay implements attendance.AttendanceService.
// This is the correction flow: managers fix wrong source data and the
// derived fields are recomputed from scratch, never patched directly.
func (a *AttendanceServiceImpl) UpdateDay(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := a.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.Date != nil {
		parsedDate, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse date: %w", err)
		}
		att.Date = parsedDate
	}

	// An empty string clears the timestamp; the classifier only ever
	// sees present values or nil.
	if req.CheckIn != nil {
		if *req.CheckIn == "" {
			att.CheckIn = nil
		} else {
			att.CheckIn = req.CheckIn
		}
	}
	if req.CheckOut != nil {
		if *req.CheckOut == "" {
			att.CheckOut = nil
		} else {
			att.CheckOut = req.CheckOut
		}
	}

	if req.Shift != nil {
		att.Shift = shiftFromInput(req.Shift)
	}

	onLeave := att.Status == attendance.StatusOnLeave
	if req.OnLeave != nil {
		onLeave = *req.OnLeave
	}

	if onLeave {
		att.TotalHours = 0
		att.LateMinutes = 0
		att.Status = attendance.StatusOnLeave
	} else {
		result, err := a.classifier.Classify(attendance.DayInput{
			CheckIn:  att.CheckIn,
			CheckOut: att.CheckOut,
			Shift:    att.Shift,
		})
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		att.TotalHours = result.TotalHours
		att.LateMinutes = result.LateMinutes
		att.Status = result.Status
	}

	// Corrections go back through review.
	att.ReviewStatus = attendance.ReviewStatusPending
	att.RejectionReason = nil

	if err := a.attendanceRepo.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	updated, err := a.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get updated attendance: %w", err)
	}

	return mapAttendanceToResponse(updated), nil
}

// GetDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetDay(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := a.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(att), nil
}

// ListDays implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListDays(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	filter.Normalize()

	attendances, total, err := a.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Showing:     showing,
		Attendances: responses,
	}, nil
}

// MonthlyGrid implements attendance.AttendanceService.
// Year and month are explicit parameters; the grid never reads "today".
func (a *AttendanceServiceImpl) MonthlyGrid(ctx context.Context, req attendance.MonthlyGridRequest) (attendance.MonthlyGridResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthlyGridResponse{}, err
	}

	month := time.Month(req.Month)
	records, err := a.attendanceRepo.ListByEmployeeMonth(ctx, req.EmployeeID, req.Year, month)
	if err != nil {
		return attendance.MonthlyGridResponse{}, fmt.Errorf("failed to list attendance for month: %w", err)
	}

	byDay := make(map[int]attendance.Attendance, len(records))
	for _, att := range records {
		byDay[att.Date.Day()] = att
	}

	daysInMonth := time.Date(req.Year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	grid := attendance.MonthlyGridResponse{
		EmployeeID: req.EmployeeID,
		Year:       req.Year,
		Month:      req.Month,
		Days:       make([]attendance.GridDay, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(req.Year, month, day, 0, 0, 0, 0, time.UTC)
		cell := attendance.GridDay{
			Date:   date.Format("2006-01-02"),
			Status: string(attendance.StatusAbsent),
		}
		if att, ok := byDay[day]; ok {
			cell.Status = string(att.Status)
			cell.TotalHours = att.TotalHours
			cell.LateMinutes = att.LateMinutes
			cell.Recorded = true
		}
		grid.Days = append(grid.Days, cell)

		switch attendance.Status(cell.Status) {
		case attendance.StatusPresent:
			grid.PresentDays++
		case attendance.StatusAbsent:
			grid.AbsentDays++
		case attendance.StatusLate:
			grid.LateDays++
		case attendance.StatusHalfDay:
			grid.HalfDays++
		case attendance.StatusOnLeave:
			grid.LeaveDays++
		}
	}

	return grid, nil
}

// ApproveDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ApproveDay(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := a.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if att.ReviewStatus != attendance.ReviewStatusPending {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyProcessed
	}

	att.ReviewStatus = attendance.ReviewStatusApproved
	att.RejectionReason = nil

	if err := a.attendanceRepo.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to approve attendance: %w", err)
	}

	return mapAttendanceToResponse(att), nil
}

// RejectDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RejectDay(ctx context.Context, req attendance.RejectAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := a.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if att.ReviewStatus != attendance.ReviewStatusPending {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyProcessed
	}

	att.ReviewStatus = attendance.ReviewStatusRejected
	att.RejectionReason = &req.Reason

	if err := a.attendanceRepo.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to reject attendance: %w", err)
	}

	return mapAttendanceToResponse(att), nil
}

// DeleteDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteDay(ctx context.Context, id string) error {
	if err := a.attendanceRepo.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

func shiftFromInput(in *attendance.ShiftInput) *attendance.Shift {
	if in == nil {
		return nil
	}
	return &attendance.Shift{
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		GraceMinutes: in.GraceMinutes,
	}
}

func shiftToInput(s *attendance.Shift) *attendance.ShiftInput {
	if s == nil {
		return nil
	}
	return &attendance.ShiftInput{
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		GraceMinutes: s.GraceMinutes,
	}
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:              att.ID,
		EmployeeID:      att.EmployeeID,
		Date:            att.Date.Format("2006-01-02"),
		CheckIn:         att.CheckIn,
		CheckOut:        att.CheckOut,
		Shift:           shiftToInput(att.Shift),
		TotalHours:      att.TotalHours,
		LateMinutes:     att.LateMinutes,
		Status:          string(att.Status),
		ReviewStatus:    string(att.ReviewStatus),
		RejectionReason: att.RejectionReason,
		CreatedAt:       att.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       att.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
