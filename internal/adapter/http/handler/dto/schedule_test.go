package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vahanex/vahanex-server/pkg/validator"
)

// reference instant: 2025-06-01 10:30
var testNow = time.Date(2025, time.June, 1, 10, 30, 0, 0, time.UTC)

func validDraft() CreateScheduleRequest {
	return CreateScheduleRequest{
		StudentID:     "s1",
		VehicleID:     "v1",
		InstructorIDs: []string{"i1"},
		ScheduleDate:  "2099-01-01",
		StartTime:     "09:00",
		EndTime:       "10:00",
	}
}

func TestCreateScheduleRequest_ValidDraft(t *testing.T) {
	draft := validDraft()

	v := validator.New()
	draft.Validate(v, testNow)

	assert.True(t, v.Valid())
	assert.Empty(t, v.Errors)
}

func TestCreateScheduleRequest_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateScheduleRequest)
		key     string
		message string
	}{
		{"missing student", func(r *CreateScheduleRequest) { r.StudentID = "" }, "studentId", "Student is required"},
		{"missing vehicle", func(r *CreateScheduleRequest) { r.VehicleID = "" }, "vehicleId", "Vehicle is required"},
		{"no instructors", func(r *CreateScheduleRequest) { r.InstructorIDs = nil }, "instructorIds", "Select at least one instructor"},
		{"missing date", func(r *CreateScheduleRequest) { r.ScheduleDate = "" }, "scheduleDate", "Date is required"},
		{"missing start", func(r *CreateScheduleRequest) { r.StartTime = "" }, "startTime", "Start time is required"},
		{"missing end", func(r *CreateScheduleRequest) { r.EndTime = "" }, "endTime", "End time is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			v := validator.New()
			draft.Validate(v, testNow)

			assert.False(t, v.Valid())
			assert.Equal(t, tt.message, v.Errors[tt.key])
		})
	}
}

func TestCreateScheduleRequest_AllMissingFieldsReportedTogether(t *testing.T) {
	draft := CreateScheduleRequest{}

	v := validator.New()
	draft.Validate(v, testNow)

	require.False(t, v.Valid())
	assert.Equal(t, "Student is required", v.Errors["studentId"])
	assert.Equal(t, "Vehicle is required", v.Errors["vehicleId"])
	assert.Equal(t, "Select at least one instructor", v.Errors["instructorIds"])
	assert.Equal(t, "Date is required", v.Errors["scheduleDate"])
	assert.Equal(t, "Start time is required", v.Errors["startTime"])
	assert.Equal(t, "End time is required", v.Errors["endTime"])
}

func TestCreateScheduleRequest_InvertedWindow(t *testing.T) {
	draft := validDraft()
	draft.StartTime = "09:00"
	draft.EndTime = "08:00"

	v := validator.New()
	draft.Validate(v, testNow)

	require.False(t, v.Valid())
	assert.Equal(t, map[string]string{"endTime": "End time must be after start time"}, v.Errors)
}

func TestCreateScheduleRequest_EqualTimesRejected(t *testing.T) {
	draft := validDraft()
	draft.StartTime = "09:00"
	draft.EndTime = "09:00"

	v := validator.New()
	draft.Validate(v, testNow)

	assert.Equal(t, "End time must be after start time", v.Errors["endTime"])
}

func TestCreateScheduleRequest_PastDate(t *testing.T) {
	draft := validDraft()
	draft.ScheduleDate = "2025-05-31"

	v := validator.New()
	draft.Validate(v, testNow)

	assert.Equal(t, "Cannot select past dates", v.Errors["scheduleDate"])
}

func TestCreateScheduleRequest_PastTimeToday(t *testing.T) {
	draft := validDraft()
	draft.ScheduleDate = "2025-06-01"
	draft.StartTime = "10:00"
	draft.EndTime = "11:00"

	v := validator.New()
	draft.Validate(v, testNow)

	assert.Equal(t, "Cannot select past times", v.Errors["startTime"])
}

func TestCreateScheduleRequest_FutureTimeTodayAllowed(t *testing.T) {
	draft := validDraft()
	draft.ScheduleDate = "2025-06-01"
	draft.StartTime = "10:30"
	draft.EndTime = "11:30"

	v := validator.New()
	draft.Validate(v, testNow)

	assert.True(t, v.Valid(), "errors: %v", v.Errors)
}

func TestCreateScheduleRequest_FutureDateIgnoresClock(t *testing.T) {
	draft := validDraft()
	draft.ScheduleDate = "2025-06-02"
	draft.StartTime = "00:00"
	draft.EndTime = "01:00"

	v := validator.New()
	draft.Validate(v, testNow)

	assert.True(t, v.Valid(), "errors: %v", v.Errors)
}

func TestCreateScheduleRequest_ValidationIsPure(t *testing.T) {
	draft := validDraft()
	draft.EndTime = ""

	first := validator.New()
	draft.Validate(first, testNow)

	second := validator.New()
	draft.Validate(second, testNow)

	assert.Equal(t, first.Errors, second.Errors)
}

func TestUpdateScheduleRequest(t *testing.T) {
	t.Run("valid window", func(t *testing.T) {
		req := UpdateScheduleRequest{StartTime: "09:00", EndTime: "10:30"}
		v := validator.New()
		req.Validate(v)
		assert.True(t, v.Valid())
	})

	t.Run("missing fields", func(t *testing.T) {
		req := UpdateScheduleRequest{}
		v := validator.New()
		req.Validate(v)
		assert.Equal(t, "Start time is required", v.Errors["startTime"])
		assert.Equal(t, "End time is required", v.Errors["endTime"])
	})

	t.Run("inverted window", func(t *testing.T) {
		req := UpdateScheduleRequest{StartTime: "15:00", EndTime: "14:00"}
		v := validator.New()
		req.Validate(v)
		assert.Equal(t, "End time must be after start time", v.Errors["endTime"])
	})
}
