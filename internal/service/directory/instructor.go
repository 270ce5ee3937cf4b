package directory

import (
	"context"

	"github.com/vahanex/vahanex-server/internal/domain/models"
	"github.com/vahanex/vahanex-server/pkg/logger"
	wrap "github.com/vahanex/vahanex-server/pkg/logger/wrapper"
	"github.com/vahanex/vahanex-server/pkg/uuid"
)

type InstructorService struct {
	repo   InstructorRepo
	logger logger.Logger
}

func NewInstructorService(repo InstructorRepo, logger logger.Logger) *InstructorService {
	return &InstructorService{
		repo:   repo,
		logger: logger,
	}
}

func (s *InstructorService) Create(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error) {
	ctx = wrap.WithAction(ctx, "create_instructor")

	created, err := s.repo.Create(ctx, instructor)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	return created, nil
}

func (s *InstructorService) Get(ctx context.Context, instructorID uuid.UUID) (*models.Instructor, error) {
	ctx = wrap.WithAction(ctx, "get_instructor")

	instructor, err := s.repo.Get(ctx, instructorID)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	return instructor, nil
}

func (s *InstructorService) List(ctx context.Context, filters models.Filters) ([]*models.Instructor, models.Metadata, error) {
	ctx = wrap.WithAction(ctx, "list_instructors")

	instructors, metadata, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, models.Metadata{}, wrap.Error(ctx, err)
	}
	return instructors, metadata, nil
}

func (s *InstructorService) Update(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error) {
	ctx = wrap.WithAction(ctx, "update_instructor")

	if err := s.repo.Update(ctx, instructor); err != nil {
		return nil, wrap.Error(ctx, err)
	}

	updated, err := s.repo.Get(ctx, instructor.ID)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	return updated, nil
}

func (s *InstructorService) Delete(ctx context.Context, instructorID uuid.UUID) error {
	ctx = wrap.WithAction(ctx, "delete_instructor")

	if err := s.repo.Delete(ctx, instructorID); err != nil {
		return wrap.Error(ctx, err)
	}
	return nil
}
