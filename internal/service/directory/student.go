package directory

import (
	"context"

	"github.com/vahanex/vahanex-server/internal/domain/models"
	"github.com/vahanex/vahanex-server/pkg/logger"
	wrap "github.com/vahanex/vahanex-server/pkg/logger/wrapper"
	"github.com/vahanex/vahanex-server/pkg/uuid"
)

type StudentService struct {
	repo   StudentRepo
	logger logger.Logger
}

func NewStudentService(repo StudentRepo, logger logger.Logger) *StudentService {
	return &StudentService{
		repo:   repo,
		logger: logger,
	}
}

func (s *StudentService) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	ctx = wrap.WithAction(ctx, "create_student")

	created, err := s.repo.Create(ctx, student)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	return created, nil
}

func (s *StudentService) Get(ctx context.Context, studentID uuid.UUID) (*models.Student, error) {
	ctx = wrap.WithAction(ctx, "get_student")

	student, err := s.repo.Get(ctx, studentID)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	return student, nil
}

func (s *StudentService) List(ctx context.Context, search string, filters models.Filters) ([]*models.Student, models.Metadata, error) {
	ctx = wrap.WithAction(ctx, "list_students")

	students, metadata, err := s.repo.List(ctx, search, filters)
	if err != nil {
		return nil, models.Metadata{}, wrap.Error(ctx, err)
	}
	return students, metadata, nil
}

func (s *StudentService) Update(ctx context.Context, student *models.Student) (*models.Student, error) {
	ctx = wrap.WithAction(ctx, "update_student")

	if err := s.repo.Update(ctx, student); err != nil {
		return nil, wrap.Error(ctx, err)
	}

	updated, err := s.repo.Get(ctx, student.ID)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	return updated, nil
}

func (s *StudentService) Delete(ctx context.Context, studentID uuid.UUID) error {
	ctx = wrap.WithAction(ctx, "delete_student")

	if err := s.repo.Delete(ctx, studentID); err != nil {
		return wrap.Error(ctx, err)
	}
	return nil
}
