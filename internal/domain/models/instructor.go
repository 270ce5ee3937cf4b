package models

import (
	"time"

	"github.com/vahanex/vahanex-server/pkg/uuid"
)

type Instructor struct {
	ID         uuid.UUID `json:"id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Experience int       `json:"experience"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at,omitzero"`

	// Number of students currently assigned through active schedules.
	AssignedStudents int `json:"assigned_students"`
}
