package directory

import (
	"context"

	"github.com/vahanex/vahanex-server/internal/domain/models"
	"github.com/vahanex/vahanex-server/pkg/uuid"
)

type StudentRepo interface {
	Create(ctx context.Context, student *models.Student) (*models.Student, error)
	Get(ctx context.Context, studentID uuid.UUID) (*models.Student, error)
	List(ctx context.Context, search string, filters models.Filters) ([]*models.Student, models.Metadata, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, studentID uuid.UUID) error
}

type InstructorRepo interface {
	Create(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error)
	Get(ctx context.Context, instructorID uuid.UUID) (*models.Instructor, error)
	List(ctx context.Context, filters models.Filters) ([]*models.Instructor, models.Metadata, error)
	Update(ctx context.Context, instructor *models.Instructor) error
	Delete(ctx context.Context, instructorID uuid.UUID) error
}

type VehicleRepo interface {
	Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	Get(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error)
	List(ctx context.Context, filters models.Filters) ([]*models.Vehicle, models.Metadata, error)
	Update(ctx context.Context, vehicle *models.Vehicle) error
	Delete(ctx context.Context, vehicleID uuid.UUID) error
}
