package handler

import (
	"context"
	"net/http"

	"github.com/vahanex/vahanex-server/internal/adapter/http/handler/dto"
	"github.com/vahanex/vahanex-server/internal/domain/models"
	"github.com/vahanex/vahanex-server/pkg/logger"
	wrap "github.com/vahanex/vahanex-server/pkg/logger/wrapper"
	"github.com/vahanex/vahanex-server/pkg/uuid"
	"github.com/vahanex/vahanex-server/pkg/validator"
)

type Instructor struct {
	service InstructorService
	l       logger.Logger
}

type InstructorService interface {
	Create(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error)
	Get(ctx context.Context, instructorID uuid.UUID) (*models.Instructor, error)
	List(ctx context.Context, filters models.Filters) ([]*models.Instructor, models.Metadata, error)
	Update(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error)
	Delete(ctx context.Context, instructorID uuid.UUID) error
}

func NewInstructor(service InstructorService, l logger.Logger) *Instructor {
	return &Instructor{
		service: service,
		l:       l,
	}
}

func (h *Instructor) Create(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "create_instructor")

	var req dto.InstructorRequest
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

	created, err := h.service.Create(ctx, req.ToModel())
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to create instructor", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"message": "Instructor created successfully",
		"data":    dto.NewInstructorResponse(created),
	}

	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}

	h.l.Info(ctx, "instructor created successfully", "instructor_id", created.ID)
}

var instructorSortSafeList = []string{
	"full_name", "email", "experience", "created_at",
	"-full_name", "-email", "-experience", "-created_at",
}

func (h *Instructor) List(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "list_instructors")

	v := validator.New()
	qs := r.URL.Query()

	page := readInt(qs, "page", 1, v)
	limit := readInt(qs, "limit", 10, v)
	sort := readString(qs, "sort", "full_name")

	filters, err := models.NewFilters(page, limit, sort, instructorSortSafeList)
	if err != nil {
		internalErrorResponse(w, "internal error")
		return
	}

	filters.Validate(v)

	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	instructors, metadata, err := h.service.List(ctx, filters)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to list instructors", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"message": "success",
		"data":    dto.NewInstructorListResponse(instructors),
		"meta":    dto.NewMeta(metadata),
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

func (h *Instructor) Get(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_instructor")

	instructorID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.l.Warn(ctx, "invalid instructor uuid format")
		badRequestResponse(w, "invalid instructor uuid format")
		return
	}

	instructor, err := h.service.Get(ctx, instructorID)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to get instructor", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"message": "success",
		"data":    dto.NewInstructorResponse(instructor),
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

func (h *Instructor) Update(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "update_instructor")

	instructorID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.l.Warn(ctx, "invalid instructor uuid format")
		badRequestResponse(w, "invalid instructor uuid format")
		return
	}

	var req dto.InstructorRequest
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

	instructor := req.ToModel()
	instructor.ID = instructorID

	updated, err := h.service.Update(ctx, instructor)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to update instructor", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"message": "Instructor updated successfully",
		"data":    dto.NewInstructorResponse(updated),
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}

	h.l.Info(ctx, "instructor updated successfully", "instructor_id", instructorID)
}

func (h *Instructor) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "delete_instructor")

	instructorID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.l.Warn(ctx, "invalid instructor uuid format")
		badRequestResponse(w, "invalid instructor uuid format")
		return
	}

	if err := h.service.Delete(ctx, instructorID); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to delete instructor", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"message": "Instructor deleted successfully",
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}

	h.l.Info(ctx, "instructor deleted successfully", "instructor_id", instructorID)
}
