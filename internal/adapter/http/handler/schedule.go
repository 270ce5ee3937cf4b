package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vahanex/vahanex-server/internal/adapter/http/handler/dto"
	"github.com/vahanex/vahanex-server/internal/domain/models"
	"github.com/vahanex/vahanex-server/internal/domain/types"
	"github.com/vahanex/vahanex-server/pkg/logger"
	wrap "github.com/vahanex/vahanex-server/pkg/logger/wrapper"
	"github.com/vahanex/vahanex-server/pkg/uuid"
	"github.com/vahanex/vahanex-server/pkg/validator"
)

const dateLayout = "2006-01-02"

type Schedule struct {
	service ScheduleService
	l       logger.Logger
}

type ScheduleService interface {
	Create(ctx context.Context, schedule *models.Schedule) (*models.ScheduleInfo, error)
	Get(ctx context.Context, scheduleID uuid.UUID) (*models.ScheduleInfo, error)
	List(ctx context.Context, date time.Time, filters models.Filters) ([]*models.ScheduleInfo, models.Metadata, error)
	UpdateTimes(ctx context.Context, scheduleID uuid.UUID, startTime, endTime string) (*models.ScheduleInfo, error)
	UpdateStatus(ctx context.Context, scheduleID uuid.UUID, status types.ScheduleStatus) (*models.ScheduleInfo, error)
	Delete(ctx context.Context, scheduleID uuid.UUID) error
	Stats(ctx context.Context, now time.Time) (models.StatsSnapshot, error)
}

func NewSchedule(service ScheduleService, l logger.Logger) *Schedule {
	return &Schedule{
		service: service,
		l:       l,
	}
}

func (h *Schedule) Create(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "create_schedule")

	var req dto.CreateScheduleRequest
	if err := readJSON(w, r, &req); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to read request JSON data", err)
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	req.Validate(v, time.Now())
	if !v.Valid() {
		h.l.Warn(ctx, "invalid request data")
		failedValidationResponse(w, v.Errors)
		return
	}

	schedule, err := req.ToModel()
	if err != nil {
		h.l.Warn(ctx, "invalid uuid in request", "error", err)
		badRequestResponse(w, "invalid uuid format")
		return
	}

	info, err := h.service.Create(ctx, schedule)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to create schedule", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"message": "Schedule created successfully",
		"data":    dto.NewScheduleResponse(info),
	}

	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}

	h.l.Info(ctx, "schedule created successfully", "schedule_id", info.ID)
}

var scheduleSortSafeList = []string{
	"schedule_date", "start_time", "created_at",
	"-schedule_date", "-start_time", "-created_at",
}

func (h *Schedule) List(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "list_schedules")

	v := validator.New()
	qs := r.URL.Query()

	page := readInt(qs, "page", 1, v)
	limit := readInt(qs, "limit", 10, v)
	sort := readString(qs, "sort", "schedule_date")

	var date time.Time
	if raw := readString(qs, "date", ""); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			v.AddError("date", "must be a valid YYYY-MM-DD date")
		} else {
			date = parsed
		}
	}

	filters, err := models.NewFilters(page, limit, sort, scheduleSortSafeList)
	if err != nil {
		internalErrorResponse(w, "internal error")
		return
	}

	filters.Validate(v)

	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	schedules, metadata, err := h.service.List(ctx, date, filters)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to list schedules", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"message": "success",
		"data":    dto.NewScheduleListResponse(schedules),
		"meta":    dto.NewMeta(metadata),
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

func (h *Schedule) Count(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "count_schedules")

	stats, err := h.service.Stats(ctx, time.Now())
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to count schedules", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"message": "success",
		"data":    stats,
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

func (h *Schedule) Get(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_schedule")

	scheduleID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.l.Warn(ctx, "invalid schedule uuid format")
		badRequestResponse(w, "invalid schedule uuid format")
		return
	}

	info, err := h.service.Get(ctx, scheduleID)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to get schedule", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"message": "success",
		"data":    dto.NewScheduleResponse(info),
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

func (h *Schedule) Update(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "update_schedule")

	scheduleID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.l.Warn(ctx, "invalid schedule uuid format")
		badRequestResponse(w, "invalid schedule uuid format")
		return
	}

	ctx = types.WithScheduleIDContext(ctx, scheduleID.String())

	var req dto.UpdateScheduleRequest
	if err := readJSON(w, r, &req); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to read request JSON data", err)
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	req.Validate(v)
	if !v.Valid() {
		h.l.Warn(ctx, "invalid request data")
		failedValidationResponse(w, v.Errors)
		return
	}

	info, err := h.service.UpdateTimes(ctx, scheduleID, req.StartTime, req.EndTime)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to update schedule", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"message": "Schedule updated successfully",
		"data":    dto.NewScheduleResponse(info),
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}

	h.l.Info(ctx, "schedule updated successfully", "schedule_id", scheduleID)
}

func (h *Schedule) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "update_schedule_status")

	scheduleID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.l.Warn(ctx, "invalid schedule uuid format")
		badRequestResponse(w, "invalid schedule uuid format")
		return
	}

	ctx = types.WithScheduleIDContext(ctx, scheduleID.String())

	var req dto.UpdateScheduleStatusRequest
	if err := readJSON(w, r, &req); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to read request JSON data", err)
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	req.Validate(v)
	if !v.Valid() {
		h.l.Warn(ctx, "invalid request data")
		failedValidationResponse(w, v.Errors)
		return
	}

	info, err := h.service.UpdateStatus(ctx, scheduleID, types.ScheduleStatus(req.Status))
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to update schedule status", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"message": "Schedule status updated successfully",
		"data":    dto.NewScheduleResponse(info),
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}

	h.l.Info(ctx, "schedule status updated", "schedule_id", scheduleID, "status", req.Status)
}

func (h *Schedule) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "delete_schedule")

	scheduleID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.l.Warn(ctx, "invalid schedule uuid format")
		badRequestResponse(w, "invalid schedule uuid format")
		return
	}

	ctx = types.WithScheduleIDContext(ctx, scheduleID.String())

	if err := h.service.Delete(ctx, scheduleID); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to delete schedule", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"message": "Schedule deleted successfully",
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}

	h.l.Info(ctx, "schedule deleted successfully", "schedule_id", scheduleID)
}
