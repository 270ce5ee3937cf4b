package directory

import (
	"context"

	"github.com/vahanex/vahanex-server/internal/domain/models"
	"github.com/vahanex/vahanex-server/pkg/logger"
	wrap "github.com/vahanex/vahanex-server/pkg/logger/wrapper"
	"github.com/vahanex/vahanex-server/pkg/uuid"
)

type VehicleService struct {
	repo   VehicleRepo
	logger logger.Logger
}

func NewVehicleService(repo VehicleRepo, logger logger.Logger) *VehicleService {
	return &VehicleService{
		repo:   repo,
		logger: logger,
	}
}

func (s *VehicleService) Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	ctx = wrap.WithAction(ctx, "create_vehicle")

	created, err := s.repo.Create(ctx, vehicle)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	return created, nil
}

func (s *VehicleService) Get(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error) {
	ctx = wrap.WithAction(ctx, "get_vehicle")

	vehicle, err := s.repo.Get(ctx, vehicleID)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	return vehicle, nil
}

func (s *VehicleService) List(ctx context.Context, filters models.Filters) ([]*models.Vehicle, models.Metadata, error) {
	ctx = wrap.WithAction(ctx, "list_vehicles")

	vehicles, metadata, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, models.Metadata{}, wrap.Error(ctx, err)
	}
	return vehicles, metadata, nil
}

func (s *VehicleService) Update(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	ctx = wrap.WithAction(ctx, "update_vehicle")

	if err := s.repo.Update(ctx, vehicle); err != nil {
		return nil, wrap.Error(ctx, err)
	}

	updated, err := s.repo.Get(ctx, vehicle.ID)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	return updated, nil
}

func (s *VehicleService) Delete(ctx context.Context, vehicleID uuid.UUID) error {
	ctx = wrap.WithAction(ctx, "delete_vehicle")

	if err := s.repo.Delete(ctx, vehicleID); err != nil {
		return wrap.Error(ctx, err)
	}
	return nil
}
