package attendance

import (
	"github.com/cmlabs-hris/hr-admin-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-admin-backend-go/internal/pkg/clock"
)

// Policy defaults, overridable through configuration.
const (
	DefaultGraceMinutes        = 15
	DefaultHalfDayBelowMinutes = 4 * 60
)

// Classifier derives worked hours, late minutes and a status label for
// one employee-day. It holds only policy thresholds; every call is a
// pure function of its input.
type Classifier struct {
	halfDayBelowMinutes int
	defaultGraceMinutes int
}

func NewClassifier(halfDayBelowMinutes, defaultGraceMinutes int) *Classifier {
	if halfDayBelowMinutes <= 0 {
		halfDayBelowMinutes = DefaultHalfDayBelowMinutes
	}
	if defaultGraceMinutes < 0 {
		defaultGraceMinutes = DefaultGraceMinutes
	}
	return &Classifier{
		halfDayBelowMinutes: halfDayBelowMinutes,
		defaultGraceMinutes: defaultGraceMinutes,
	}
}

// Classify turns raw clock data plus an optional shift into a DayResult.
// It never produces StatusOnLeave; that is a caller-level override for
// days with an approved leave record. Malformed clock strings fail with
// the parse error from the clock package.
func (c *Classifier) Classify(input attendance.DayInput) (attendance.DayResult, error) {
	if input.CheckIn == nil && input.CheckOut == nil {
		return attendance.DayResult{Status: attendance.StatusAbsent}, nil
	}

	// A single timestamp is partial, likely erroneous attendance. No
	// attempt is made to estimate hours from one clock.
	if input.CheckIn == nil || input.CheckOut == nil {
		return attendance.DayResult{Status: attendance.StatusHalfDay}, nil
	}

	workedMinutes, err := clock.DurationMinutes(*input.CheckIn, *input.CheckOut)
	if err != nil {
		return attendance.DayResult{}, err
	}
	totalHours := clock.ToHours(workedMinutes)

	// Too short wins over too late: a half day is the more actionable
	// anomaly regardless of punctuality.
	if workedMinutes < c.halfDayBelowMinutes {
		return attendance.DayResult{
			TotalHours: totalHours,
			Status:     attendance.StatusHalfDay,
		}, nil
	}

	if input.Shift == nil {
		// Lateness cannot be evaluated without a schedule.
		return attendance.DayResult{
			TotalHours: totalHours,
			Status:     attendance.StatusPresent,
		}, nil
	}

	lateMinutes, err := c.lateMinutes(*input.Shift, *input.CheckIn)
	if err != nil {
		return attendance.DayResult{}, err
	}

	status := attendance.StatusPresent
	if lateMinutes > 0 {
		status = attendance.StatusLate
	}

	return attendance.DayResult{
		TotalHours:  totalHours,
		LateMinutes: lateMinutes,
		Status:      status,
	}, nil
}

// lateMinutes counts minutes past shift start beyond the grace window.
// Lateness is judged by minute of day: a check-in earlier on the clock
// than shift start is on time, and a check-in at exactly start+grace
// still is.
func (c *Classifier) lateMinutes(shift attendance.Shift, checkIn string) (int, error) {
	startMin, err := clock.Parse(shift.StartTime)
	if err != nil {
		return 0, err
	}
	checkInMin, err := clock.Parse(checkIn)
	if err != nil {
		return 0, err
	}

	grace := c.defaultGraceMinutes
	if shift.GraceMinutes != nil {
		grace = *shift.GraceMinutes
	}

	if checkInMin <= startMin+grace {
		return 0, nil
	}

	return checkInMin - startMin - grace, nil
}
