package models

import (
	"time"

	"github.com/vahanex/vahanex-server/internal/domain/types"
	"github.com/vahanex/vahanex-server/pkg/uuid"
)

/* ======================= rabbitmq ======================= */

// ScheduleEventMessage is published to the schedule topic exchange on every
// schedule lifecycle change.
type ScheduleEventMessage struct {
	ScheduleID    uuid.UUID           `json:"schedule_id"`
	Event         types.ScheduleEvent `json:"event"`
	StudentID     uuid.UUID           `json:"student_id"`
	VehicleID     uuid.UUID           `json:"vehicle_id"`
	InstructorIDs []uuid.UUID         `json:"instructor_ids"`
	ScheduleDate  string              `json:"schedule_date"`
	StartTime     string              `json:"start_time"`
	EndTime       string              `json:"end_time"`
	Status        string              `json:"status"`
	Timestamp     time.Time           `json:"timestamp"`
	CorrelationID string              `json:"correlation_id"`
}

/* ======================= Websocket ======================= */

// BoardUpdateDTO is pushed to every connected dashboard when the board or the
// counters change.
type BoardUpdateDTO struct {
	Type      string        `json:"type"` // By default must be: "board_update"
	Event     string        `json:"event"`
	Schedule  *ScheduleInfo `json:"schedule,omitempty"`
	Stats     StatsSnapshot `json:"stats"`
	Timestamp time.Time     `json:"timestamp"`
}
