package models

import (
	"time"

	"github.com/vahanex/vahanex-server/pkg/uuid"
)

type Student struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Address         string    `json:"address,omitempty"`
	CourseStartDate time.Time `json:"course_start_date"`
	CourseEndDate   time.Time `json:"course_end_date"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at,omitzero"`
}
