package dto

import (
	"time"

	"github.com/vahanex/vahanex-server/internal/domain/models"
	"github.com/vahanex/vahanex-server/internal/domain/types"
	schedulesvc "github.com/vahanex/vahanex-server/internal/service/schedule"
	"github.com/vahanex/vahanex-server/pkg/pagination"
	"github.com/vahanex/vahanex-server/pkg/uuid"
	"github.com/vahanex/vahanex-server/pkg/validator"
)

const dateLayout = "2006-01-02"

type CreateScheduleRequest struct {
	StudentID     string   `json:"studentId"`
	VehicleID     string   `json:"vehicleId"`
	InstructorIDs []string `json:"instructorIds"`
	ScheduleDate  string   `json:"scheduleDate"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	Notes         string   `json:"notes"`
}

// Validate checks a creation draft against the booking rules. Every violated
// field is reported; nothing short-circuits. The reference instant decides
// what counts as a past date or time.
func (r *CreateScheduleRequest) Validate(v *validator.Validator, now time.Time) {
	// Identifiers are opaque here; whether they resolve is for the
	// storage layer to decide.
	v.Check(r.StudentID != "", "studentId", "Student is required")
	v.Check(r.VehicleID != "", "vehicleId", "Vehicle is required")
	v.Check(len(r.InstructorIDs) > 0, "instructorIds", "Select at least one instructor")
	v.Check(validator.Unique(r.InstructorIDs), "instructorIds", "must not contain duplicates")

	v.Check(r.ScheduleDate != "", "scheduleDate", "Date is required")
	v.Check(r.StartTime != "", "startTime", "Start time is required")
	v.Check(r.EndTime != "", "endTime", "End time is required")

	if r.StartTime != "" {
		_, err := schedulesvc.ParseClock(r.StartTime)
		v.Check(err == nil, "startTime", "must be a valid HH:MM time")
	}
	if r.EndTime != "" {
		_, err := schedulesvc.ParseClock(r.EndTime)
		v.Check(err == nil, "endTime", "must be a valid HH:MM time")
	}

	// Zero-padded HH:MM strings order correctly as plain strings.
	if r.StartTime != "" && r.EndTime != "" {
		v.Check(r.StartTime < r.EndTime, "endTime", "End time must be after start time")
	}

	if r.ScheduleDate != "" {
		date, err := time.Parse(dateLayout, r.ScheduleDate)
		if err != nil {
			v.AddError("scheduleDate", "must be a valid YYYY-MM-DD date")
			return
		}

		today := now.Format(dateLayout)

		v.Check(r.ScheduleDate >= today, "scheduleDate", "Cannot select past dates")

		if r.ScheduleDate == today && r.StartTime != "" {
			minStart := schedulesvc.MinStartTime(date, now)
			v.Check(r.StartTime >= minStart, "startTime", "Cannot select past times")
		}
	}
}

func (r *CreateScheduleRequest) ToModel() (*models.Schedule, error) {
	studentID, err := uuid.Parse(r.StudentID)
	if err != nil {
		return nil, err
	}

	vehicleID, err := uuid.Parse(r.VehicleID)
	if err != nil {
		return nil, err
	}

	instructorIDs := make([]uuid.UUID, 0, len(r.InstructorIDs))
	for _, raw := range r.InstructorIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		instructorIDs = append(instructorIDs, id)
	}

	date, err := time.Parse(dateLayout, r.ScheduleDate)
	if err != nil {
		return nil, err
	}

	return &models.Schedule{
		StudentID:     studentID,
		VehicleID:     vehicleID,
		InstructorIDs: instructorIDs,
		ScheduleDate:  date,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Status:        types.ScheduleScheduled,
		Notes:         r.Notes,
	}, nil
}

type UpdateScheduleRequest struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Validate checks an edit draft. Only the session window is mutable after
// creation, so only the two time fields are examined.
func (r *UpdateScheduleRequest) Validate(v *validator.Validator) {
	v.Check(r.StartTime != "", "startTime", "Start time is required")
	v.Check(r.EndTime != "", "endTime", "End time is required")

	if r.StartTime != "" {
		_, err := schedulesvc.ParseClock(r.StartTime)
		v.Check(err == nil, "startTime", "must be a valid HH:MM time")
	}
	if r.EndTime != "" {
		_, err := schedulesvc.ParseClock(r.EndTime)
		v.Check(err == nil, "endTime", "must be a valid HH:MM time")
	}

	if r.StartTime != "" && r.EndTime != "" {
		v.Check(r.StartTime < r.EndTime, "endTime", "End time must be after start time")
	}
}

type UpdateScheduleStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateScheduleStatusRequest) Validate(v *validator.Validator) {
	v.Check(r.Status != "", "status", "must be provided")
	if r.Status != "" {
		v.Check(validator.PermittedValue(r.Status,
			types.ScheduleScheduled.String(),
			types.ScheduleInProgress.String(),
			types.ScheduleCompleted.String(),
			types.ScheduleCancelled.String(),
		), "status", "must be one of scheduled, inprogress, completed, or cancelled")
	}
}

type ScheduleResponse struct {
	ID              uuid.UUID `json:"id"`
	StudentID       uuid.UUID `json:"studentId"`
	StudentName     string    `json:"studentName"`
	VehicleID       uuid.UUID `json:"vehicleId"`
	VehicleNumber   string    `json:"vehicleNumber"`
	InstructorIDs   []uuid.UUID `json:"instructorIds"`
	InstructorNames []string  `json:"instructorNames"`
	ScheduleDate    string    `json:"scheduleDate"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt,omitzero"`
}

func NewScheduleResponse(info *models.ScheduleInfo) ScheduleResponse {
	return ScheduleResponse{
		ID:              info.ID,
		StudentID:       info.StudentID,
		StudentName:     info.StudentName,
		VehicleID:       info.VehicleID,
		VehicleNumber:   info.VehicleNumber,
		InstructorIDs:   info.InstructorIDs,
		InstructorNames: info.InstructorNames,
		ScheduleDate:    info.ScheduleDate.Format(dateLayout),
		StartTime:       info.StartTime,
		EndTime:         info.EndTime,
		Status:          info.Status.String(),
		Notes:           info.Notes,
		CreatedAt:       info.CreatedAt,
		UpdatedAt:       info.UpdatedAt,
	}
}

func NewScheduleListResponse(infos []*models.ScheduleInfo) []ScheduleResponse {
	out := make([]ScheduleResponse, 0, len(infos))
	for _, info := range infos {
		out = append(out, NewScheduleResponse(info))
	}
	return out
}

// Meta is the pagination block every list endpoint returns. Pages is the
// compact page range for display, with "..." marking collapsed runs.
type Meta struct {
	TotalPages int      `json:"totalPages"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	Total      int      `json:"total"`
	Pages      []string `json:"pages,omitempty"`
}

func NewMeta(m models.Metadata) Meta {
	meta := Meta{
		TotalPages: m.LastPage,
		Page:       m.CurrentPage,
		Limit:      m.PageSize,
		Total:      m.TotalRecords,
	}
	if m.LastPage > 0 {
		meta.Pages = pagination.Range(m.CurrentPage, m.LastPage)
	}
	return meta
}
