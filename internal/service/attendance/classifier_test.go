package attendance

import (
	"testing"

	"github.com/cmlabs-hris/hr-admin-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func testShift(start, end string, grace int) *attendance.Shift {
	return &attendance.Shift{StartTime: start, EndTime: end, GraceMinutes: intPtr(grace)}
}

func TestClassify_BothAbsent(t *testing.T) {
	c := NewClassifier(DefaultHalfDayBelowMinutes, DefaultGraceMinutes)

	// Absent regardless of the shift on file.
	shifts := []*attendance.Shift{
		nil,
		testShift("09:00", "18:00", 15),
		testShift("21:00", "06:00", 0),
	}
	for _, shift := range shifts {
		result, err := c.Classify(attendance.DayInput{Shift: shift})
		require.NoError(t, err)
		assert.Equal(t, attendance.StatusAbsent, result.Status)
		assert.Equal(t, float64(0), result.TotalHours)
		assert.Equal(t, 0, result.LateMinutes)
	}
}

func TestClassify_SingleTimestampIsHalfDay(t *testing.T) {
	c := NewClassifier(DefaultHalfDayBelowMinutes, DefaultGraceMinutes)

	onlyIn, err := c.Classify(attendance.DayInput{
		CheckIn: strPtr("09:00"),
		Shift:   testShift("09:00", "18:00", 15),
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusHalfDay, onlyIn.Status)
	assert.Equal(t, float64(0), onlyIn.TotalHours)
	assert.Equal(t, 0, onlyIn.LateMinutes)

	onlyOut, err := c.Classify(attendance.DayInput{CheckOut: strPtr("18:00")})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusHalfDay, onlyOut.Status)
	assert.Equal(t, float64(0), onlyOut.TotalHours)
}

func TestClassify_ShortDurationOverridesPunctuality(t *testing.T) {
	c := NewClassifier(DefaultHalfDayBelowMinutes, DefaultGraceMinutes)

	// On time, but only 3.5 hours worked.
	result, err := c.Classify(attendance.DayInput{
		CheckIn:  strPtr("09:00"),
		CheckOut: strPtr("12:30"),
		Shift:    testShift("09:00", "18:00", 15),
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusHalfDay, result.Status)
	assert.Equal(t, 3.5, result.TotalHours)
	assert.Equal(t, 0, result.LateMinutes)
}

func TestClassify_GraceBoundary(t *testing.T) {
	c := NewClassifier(DefaultHalfDayBelowMinutes, DefaultGraceMinutes)
	shift := testShift("09:00", "18:00", 15)

	onTime, err := c.Classify(attendance.DayInput{
		CheckIn:  strPtr("09:15"),
		CheckOut: strPtr("18:00"),
		Shift:    shift,
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, onTime.Status)
	assert.Equal(t, 0, onTime.LateMinutes)

	late, err := c.Classify(attendance.DayInput{
		CheckIn:  strPtr("09:16"),
		CheckOut: strPtr("18:00"),
		Shift:    shift,
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, late.Status)
	assert.Equal(t, 1, late.LateMinutes)
}

func TestClassify_NightShift(t *testing.T) {
	c := NewClassifier(DefaultHalfDayBelowMinutes, DefaultGraceMinutes)

	result, err := c.Classify(attendance.DayInput{
		CheckIn:  strPtr("21:00"),
		CheckOut: strPtr("06:00"),
		Shift:    testShift("21:00", "06:00", 15),
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, result.Status)
	assert.Equal(t, float64(9), result.TotalHours)
	assert.Equal(t, 0, result.LateMinutes)
}

func TestClassify_EarlyCheckInIsOnTime(t *testing.T) {
	c := NewClassifier(DefaultHalfDayBelowMinutes, DefaultGraceMinutes)

	result, err := c.Classify(attendance.DayInput{
		CheckIn:  strPtr("08:30"),
		CheckOut: strPtr("17:30"),
		Shift:    testShift("09:00", "18:00", 15),
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, result.Status)
	assert.Equal(t, 0, result.LateMinutes)
}

func TestClassify_NoShiftMeansNoLateness(t *testing.T) {
	c := NewClassifier(DefaultHalfDayBelowMinutes, DefaultGraceMinutes)

	result, err := c.Classify(attendance.DayInput{
		CheckIn:  strPtr("11:00"),
		CheckOut: strPtr("19:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, result.Status)
	assert.Equal(t, float64(8), result.TotalHours)
	assert.Equal(t, 0, result.LateMinutes)
}

func TestClassify_NilGraceUsesDefault(t *testing.T) {
	c := NewClassifier(DefaultHalfDayBelowMinutes, DefaultGraceMinutes)
	shift := &attendance.Shift{StartTime: "09:00", EndTime: "18:00"}

	onTime, err := c.Classify(attendance.DayInput{
		CheckIn:  strPtr("09:15"),
		CheckOut: strPtr("18:00"),
		Shift:    shift,
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, onTime.Status)

	late, err := c.Classify(attendance.DayInput{
		CheckIn:  strPtr("09:20"),
		CheckOut: strPtr("18:00"),
		Shift:    shift,
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, late.Status)
	assert.Equal(t, 5, late.LateMinutes)
}

func TestClassify_LateCountsFromShiftStartBeyondGrace(t *testing.T) {
	c := NewClassifier(DefaultHalfDayBelowMinutes, DefaultGraceMinutes)

	result, err := c.Classify(attendance.DayInput{
		CheckIn:  strPtr("10:00"),
		CheckOut: strPtr("18:00"),
		Shift:    testShift("09:00", "18:00", 15),
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, result.Status)
	assert.Equal(t, 45, result.LateMinutes)
}

func TestClassify_MalformedTimePropagatesParseError(t *testing.T) {
	c := NewClassifier(DefaultHalfDayBelowMinutes, DefaultGraceMinutes)

	_, err := c.Classify(attendance.DayInput{
		CheckIn:  strPtr("9am"),
		CheckOut: strPtr("18:00"),
	})
	assert.Error(t, err)

	_, err = c.Classify(attendance.DayInput{
		CheckIn:  strPtr("09:00"),
		CheckOut: strPtr("18:00"),
		Shift:    testShift("25:00", "18:00", 15),
	})
	assert.Error(t, err)
}

func TestClassify_CustomThresholds(t *testing.T) {
	// A 6-hour half-day policy and a zero-minute grace window.
	c := NewClassifier(6*60, 0)

	short, err := c.Classify(attendance.DayInput{
		CheckIn:  strPtr("09:00"),
		CheckOut: strPtr("14:00"),
		Shift:    testShift("09:00", "18:00", 0),
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusHalfDay, short.Status)

	late, err := c.Classify(attendance.DayInput{
		CheckIn:  strPtr("09:01"),
		CheckOut: strPtr("18:00"),
		Shift:    &attendance.Shift{StartTime: "09:00", EndTime: "18:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, late.Status)
	assert.Equal(t, 1, late.LateMinutes)
}
