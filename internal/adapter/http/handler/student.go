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

type Student struct {
	service StudentService
	l       logger.Logger
}

type StudentService interface {
	Create(ctx context.Context, student *models.Student) (*models.Student, error)
	Get(ctx context.Context, studentID uuid.UUID) (*models.Student, error)
	List(ctx context.Context, search string, filters models.Filters) ([]*models.Student, models.Metadata, error)
	Update(ctx context.Context, student *models.Student) (*models.Student, error)
	Delete(ctx context.Context, studentID uuid.UUID) error
}

func NewStudent(service StudentService, l logger.Logger) *Student {
	return &Student{
		service: service,
		l:       l,
	}
}

func (h *Student) Create(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "create_student")

	var req dto.StudentRequest
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

	student, err := req.ToModel()
	if err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	created, err := h.service.Create(ctx, student)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to create student", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"message": "Student created successfully",
		"data":    dto.NewStudentResponse(created),
	}

	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}

	h.l.Info(ctx, "student created successfully", "student_id", created.ID)
}

var studentSortSafeList = []string{
	"full_name", "email", "course_start_date", "created_at",
	"-full_name", "-email", "-course_start_date", "-created_at",
}

func (h *Student) List(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "list_students")

	v := validator.New()
	qs := r.URL.Query()

	page := readInt(qs, "page", 1, v)
	limit := readInt(qs, "limit", 10, v)
	sort := readString(qs, "sort", "full_name")
	search := readString(qs, "search", "")

	filters, err := models.NewFilters(page, limit, sort, studentSortSafeList)
	if err != nil {
		internalErrorResponse(w, "internal error")
		return
	}

	filters.Validate(v)

	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	students, metadata, err := h.service.List(ctx, search, filters)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to list students", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"message": "success",
		"data":    dto.NewStudentListResponse(students),
		"meta":    dto.NewMeta(metadata),
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

func (h *Student) Get(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_student")

	studentID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.l.Warn(ctx, "invalid student uuid format")
		badRequestResponse(w, "invalid student uuid format")
		return
	}

	student, err := h.service.Get(ctx, studentID)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to get student", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"message": "success",
		"data":    dto.NewStudentResponse(student),
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

func (h *Student) Update(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "update_student")

	studentID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.l.Warn(ctx, "invalid student uuid format")
		badRequestResponse(w, "invalid student uuid format")
		return
	}

	var req dto.StudentRequest
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

	student, err := req.ToModel()
	if err != nil {
		badRequestResponse(w, err.Error())
		return
	}
	student.ID = studentID

	updated, err := h.service.Update(ctx, student)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to update student", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"message": "Student updated successfully",
		"data":    dto.NewStudentResponse(updated),
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}

	h.l.Info(ctx, "student updated successfully", "student_id", studentID)
}

func (h *Student) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "delete_student")

	studentID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.l.Warn(ctx, "invalid student uuid format")
		badRequestResponse(w, "invalid student uuid format")
		return
	}

	if err := h.service.Delete(ctx, studentID); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to delete student", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"message": "Student deleted successfully",
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}

	h.l.Info(ctx, "student deleted successfully", "student_id", studentID)
}
