package models

import (
	"time"

	"github.com/vahanex/vahanex-server/internal/domain/types"
	"github.com/vahanex/vahanex-server/pkg/uuid"
)

/* ======================= service ======================= */

// Schedule is a booked driving session. ScheduleDate holds the calendar day,
// StartTime and EndTime are wall clock values in "HH:MM" form.
type Schedule struct {
	ID            uuid.UUID
	StudentID     uuid.UUID
	VehicleID     uuid.UUID
	InstructorIDs []uuid.UUID
	ScheduleDate  time.Time
	StartTime     string
	EndTime       string
	Status        types.ScheduleStatus
	Notes         string

	CreatedAt time.Time
	UpdatedAt time.Time
}

/* ======================= for dashboard board ======================= */

// ScheduleInfo is a schedule joined with the display names of its
// participants, as listed on the dashboard board.
type ScheduleInfo struct {
	ID              uuid.UUID            `json:"id"`
	StudentID       uuid.UUID            `json:"student_id"`
	StudentName     string               `json:"student_name"`
	VehicleID       uuid.UUID            `json:"vehicle_id"`
	VehicleNumber   string               `json:"vehicle_number"`
	InstructorIDs   []uuid.UUID          `json:"instructor_ids"`
	InstructorNames []string             `json:"instructor_names"`
	ScheduleDate    time.Time            `json:"schedule_date"`
	StartTime       string               `json:"start_time"`
	EndTime         string               `json:"end_time"`
	Status          types.ScheduleStatus `json:"status"`
	Notes           string               `json:"notes,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at,omitzero"`
}

// StatsSnapshot is the dashboard counters block.
type StatsSnapshot struct {
	Total      int `json:"total"`
	Todays     int `json:"todays"`
	InProgress int `json:"inprogress"`
	Completed  int `json:"completed"`
}
