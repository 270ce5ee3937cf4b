package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vahanex/vahanex-server/pkg/validator"
)

func validStudentDraft() StudentRequest {
	return StudentRequest{
		FullName:        "Asha Shrestha",
		Email:           "asha@example.com",
		Phone:           "9800000001",
		Address:         "Kathmandu",
		CourseStartDate: "2099-01-05",
		CourseEndDate:   "2099-02-05",
	}
}

func TestStudentRequest_ValidDraft(t *testing.T) {
	draft := validStudentDraft()

	v := validator.New()
	draft.Validate(v)

	assert.True(t, v.Valid())
	assert.Empty(t, v.Errors)
}

func TestStudentRequest_OneDayCourseAllowed(t *testing.T) {
	draft := validStudentDraft()
	draft.CourseStartDate = "2099-01-05"
	draft.CourseEndDate = "2099-01-05"

	v := validator.New()
	draft.Validate(v)

	assert.True(t, v.Valid(), "equal course dates are a valid one-day window")
}

func TestStudentRequest_InvertedCourseDates(t *testing.T) {
	draft := validStudentDraft()
	draft.CourseStartDate = "2099-02-05"
	draft.CourseEndDate = "2099-01-05"

	v := validator.New()
	draft.Validate(v)

	assert.False(t, v.Valid())
	assert.Equal(t, "End date must be after or equal to start date", v.Errors["courseEndDate"])
}
