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

type Vehicle struct {
	service VehicleService
	l       logger.Logger
}

type VehicleService interface {
	Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	Get(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error)
	List(ctx context.Context, filters models.Filters) ([]*models.Vehicle, models.Metadata, error)
	Update(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	Delete(ctx context.Context, vehicleID uuid.UUID) error
}

func NewVehicle(service VehicleService, l logger.Logger) *Vehicle {
	return &Vehicle{
		service: service,
		l:       l,
	}
}

func (h *Vehicle) Create(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "create_vehicle")

	var req dto.VehicleRequest
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
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to create vehicle", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"message": "Vehicle created successfully",
		"data":    dto.NewVehicleResponse(created),
	}

	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}

	h.l.Info(ctx, "vehicle created successfully", "vehicle_id", created.ID)
}

var vehicleSortSafeList = []string{
	"vehicle_number", "model", "type", "status", "created_at",
	"-vehicle_number", "-model", "-type", "-status", "-created_at",
}

func (h *Vehicle) List(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "list_vehicles")

	v := validator.New()
	qs := r.URL.Query()

	page := readInt(qs, "page", 1, v)
	limit := readInt(qs, "limit", 10, v)
	sort := readString(qs, "sort", "vehicle_number")

	filters, err := models.NewFilters(page, limit, sort, vehicleSortSafeList)
	if err != nil {
		internalErrorResponse(w, "internal error")
		return
	}

	filters.Validate(v)

	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	vehicles, metadata, err := h.service.List(ctx, filters)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to list vehicles", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"message": "success",
		"data":    dto.NewVehicleListResponse(vehicles),
		"meta":    dto.NewMeta(metadata),
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

func (h *Vehicle) Get(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_vehicle")

	vehicleID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.l.Warn(ctx, "invalid vehicle uuid format")
		badRequestResponse(w, "invalid vehicle uuid format")
		return
	}

	vehicle, err := h.service.Get(ctx, vehicleID)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to get vehicle", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"message": "success",
		"data":    dto.NewVehicleResponse(vehicle),
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

func (h *Vehicle) Update(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "update_vehicle")

	vehicleID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.l.Warn(ctx, "invalid vehicle uuid format")
		badRequestResponse(w, "invalid vehicle uuid format")
		return
	}

	var req dto.VehicleRequest
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

	vehicle := req.ToModel()
	vehicle.ID = vehicleID

	updated, err := h.service.Update(ctx, vehicle)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to update vehicle", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"message": "Vehicle updated successfully",
		"data":    dto.NewVehicleResponse(updated),
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}

	h.l.Info(ctx, "vehicle updated successfully", "vehicle_id", vehicleID)
}

func (h *Vehicle) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "delete_vehicle")

	vehicleID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.l.Warn(ctx, "invalid vehicle uuid format")
		badRequestResponse(w, "invalid vehicle uuid format")
		return
	}

	if err := h.service.Delete(ctx, vehicleID); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to delete vehicle", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"message": "Vehicle deleted successfully",
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}

	h.l.Info(ctx, "vehicle deleted successfully", "vehicle_id", vehicleID)
}
