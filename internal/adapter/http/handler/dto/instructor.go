package dto

import (
	"time"

	"github.com/vahanex/vahanex-server/internal/domain/models"
	"github.com/vahanex/vahanex-server/pkg/uuid"
	"github.com/vahanex/vahanex-server/pkg/validator"
)

type InstructorRequest struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Experience int    `json:"experience"`
	IsActive   *bool  `json:"isActive"`
}

func (r *InstructorRequest) Validate(v *validator.Validator) {
	v.Check(r.FullName != "", "fullName", "must be provided")
	v.Check(len(r.FullName) <= 255, "fullName", "must not be more than 255 characters long")

	v.Check(r.Email != "", "email", "must be provided")
	v.Check(validator.Matches(r.Email, validator.EmailRX), "email", "must be a valid email address")

	v.Check(r.Phone != "", "phone", "must be provided")
	v.Check(len(r.Phone) <= 20, "phone", "must not be more than 20 characters long")

	v.Check(r.Experience >= 0, "experience", "must not be negative")
	v.Check(r.Experience <= 80, "experience", "must be a realistic number of years")
}

func (r *InstructorRequest) ToModel() *models.Instructor {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}

	return &models.Instructor{
		FullName:   r.FullName,
		Email:      r.Email,
		Phone:      r.Phone,
		Experience: r.Experience,
		IsActive:   active,
	}
}

type InstructorResponse struct {
	ID               uuid.UUID `json:"id"`
	FullName         string    `json:"fullName"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Experience       int       `json:"experience"`
	IsActive         bool      `json:"isActive"`
	AssignedStudents int       `json:"assignedStudents"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt,omitzero"`
}

func NewInstructorResponse(i *models.Instructor) InstructorResponse {
	return InstructorResponse{
		ID:               i.ID,
		FullName:         i.FullName,
		Email:            i.Email,
		Phone:            i.Phone,
		Experience:       i.Experience,
		IsActive:         i.IsActive,
		AssignedStudents: i.AssignedStudents,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
}

func NewInstructorListResponse(instructors []*models.Instructor) []InstructorResponse {
	out := make([]InstructorResponse, 0, len(instructors))
	for _, i := range instructors {
		out = append(out, NewInstructorResponse(i))
	}
	return out
}
