package dto

import (
	"time"

	"github.com/vahanex/vahanex-server/internal/domain/models"
	"github.com/vahanex/vahanex-server/pkg/uuid"
	"github.com/vahanex/vahanex-server/pkg/validator"
)

type StudentRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	CourseStartDate string `json:"courseStartDate"`
	CourseEndDate   string `json:"courseEndDate"`
	IsActive        *bool  `json:"isActive"`
}

func (r *StudentRequest) Validate(v *validator.Validator) {
	v.Check(r.FullName != "", "fullName", "must be provided")
	v.Check(len(r.FullName) <= 255, "fullName", "must not be more than 255 characters long")

	v.Check(r.Email != "", "email", "must be provided")
	v.Check(validator.Matches(r.Email, validator.EmailRX), "email", "must be a valid email address")

	v.Check(r.Phone != "", "phone", "must be provided")
	v.Check(len(r.Phone) <= 20, "phone", "must not be more than 20 characters long")

	v.Check(r.CourseStartDate != "", "courseStartDate", "must be provided")
	v.Check(r.CourseEndDate != "", "courseEndDate", "must be provided")

	var start, end time.Time
	var err error
	if r.CourseStartDate != "" {
		start, err = time.Parse(dateLayout, r.CourseStartDate)
		v.Check(err == nil, "courseStartDate", "must be a valid YYYY-MM-DD date")
	}
	if r.CourseEndDate != "" {
		end, err = time.Parse(dateLayout, r.CourseEndDate)
		v.Check(err == nil, "courseEndDate", "must be a valid YYYY-MM-DD date")
	}
	// A one-day course is a valid window, so equal dates pass.
	if !start.IsZero() && !end.IsZero() {
		v.Check(!end.Before(start), "courseEndDate", "End date must be after or equal to start date")
	}
}

func (r *StudentRequest) ToModel() (*models.Student, error) {
	start, err := time.Parse(dateLayout, r.CourseStartDate)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(dateLayout, r.CourseEndDate)
	if err != nil {
		return nil, err
	}

	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}

	return &models.Student{
		FullName:        r.FullName,
		Email:           r.Email,
		Phone:           r.Phone,
		Address:         r.Address,
		CourseStartDate: start,
		CourseEndDate:   end,
		IsActive:        active,
	}, nil
}

type StudentResponse struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Address         string    `json:"address,omitempty"`
	CourseStartDate string    `json:"courseStartDate"`
	CourseEndDate   string    `json:"courseEndDate"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt,omitzero"`
}

func NewStudentResponse(s *models.Student) StudentResponse {
	return StudentResponse{
		ID:              s.ID,
		FullName:        s.FullName,
		Email:           s.Email,
		Phone:           s.Phone,
		Address:         s.Address,
		CourseStartDate: s.CourseStartDate.Format(dateLayout),
		CourseEndDate:   s.CourseEndDate.Format(dateLayout),
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func NewStudentListResponse(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, NewStudentResponse(s))
	}
	return out
}
