package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vahanex/vahanex-server/internal/domain/models"
	"github.com/vahanex/vahanex-server/internal/domain/types"
	wrap "github.com/vahanex/vahanex-server/pkg/logger/wrapper"
	"github.com/vahanex/vahanex-server/pkg/postgres"
	"github.com/vahanex/vahanex-server/pkg/uuid"
)

type InstructorRepo struct {
	db *pgxpool.Pool
}

func NewInstructorRepo(db *pgxpool.Pool) *InstructorRepo {
	return &InstructorRepo{db: db}
}

// assignedStudents counts distinct students on schedules that are not yet
// finished, which is what the dashboard shows next to each instructor.
const assignedStudentsExpr = `(
	SELECT count(DISTINCT s.student_id)
	FROM schedule_instructors si
	JOIN schedules s ON si.schedule_id = s.id
	WHERE si.instructor_id = i.id AND s.status IN ('scheduled', 'inprogress')
)`

func (r *InstructorRepo) Create(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error) {
	q := TxorDB(ctx, r.db)

	query := `
		INSERT INTO instructors (full_name, email, phone, experience, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;`

	err := q.QueryRow(ctx, query,
		instructor.FullName,
		instructor.Email,
		instructor.Phone,
		instructor.Experience,
		instructor.IsActive,
	).Scan(&instructor.ID, &instructor.CreatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, types.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("instructor repo: Create: %w", err)
	}

	return instructor, nil
}

func (r *InstructorRepo) Get(ctx context.Context, instructorID uuid.UUID) (*models.Instructor, error) {
	q := TxorDB(ctx, r.db)

	query := `
		SELECT i.id, i.full_name, i.email, i.phone, i.experience, i.is_active, i.created_at, i.updated_at,
			` + assignedStudentsExpr + `
		FROM instructors i
		WHERE i.id = $1;`

	var instructor models.Instructor
	err := q.QueryRow(ctx, query, instructorID).Scan(
		&instructor.ID,
		&instructor.FullName,
		&instructor.Email,
		&instructor.Phone,
		&instructor.Experience,
		&instructor.IsActive,
		&instructor.CreatedAt,
		&instructor.UpdatedAt,
		&instructor.AssignedStudents,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrInstructorNotFound
		}
		return nil, fmt.Errorf("instructor repo: Get: %w", err)
	}

	return &instructor, nil
}

func (r *InstructorRepo) List(ctx context.Context, filters models.Filters) ([]*models.Instructor, models.Metadata, error) {
	q := TxorDB(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT count(*) OVER(),
			i.id, i.full_name, i.email, i.phone, i.experience, i.is_active, i.created_at, i.updated_at,
			%s
		FROM instructors i
		ORDER BY i.%s %s, i.id ASC
		LIMIT $1 OFFSET $2;`, assignedStudentsExpr, filters.SortColumn(), filters.SortDirection())

	rows, err := q.Query(ctx, query, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, models.Metadata{}, fmt.Errorf("instructor repo: List: %w", err)
	}
	defer rows.Close()

	totalRecords := 0
	instructors := []*models.Instructor{}

	for rows.Next() {
		var instructor models.Instructor
		err := rows.Scan(
			&totalRecords,
			&instructor.ID,
			&instructor.FullName,
			&instructor.Email,
			&instructor.Phone,
			&instructor.Experience,
			&instructor.IsActive,
			&instructor.CreatedAt,
			&instructor.UpdatedAt,
			&instructor.AssignedStudents,
		)
		if err != nil {
			return nil, models.Metadata{}, fmt.Errorf("instructor repo: List (scan): %w", err)
		}
		instructors = append(instructors, &instructor)
	}

	if err := rows.Err(); err != nil {
		return nil, models.Metadata{}, fmt.Errorf("instructor repo: List (rows): %w", err)
	}

	metadata := models.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return instructors, metadata, nil
}

func (r *InstructorRepo) Update(ctx context.Context, instructor *models.Instructor) error {
	q := TxorDB(ctx, r.db)

	query := `
		UPDATE instructors
		SET
			full_name = $2,
			email = $3,
			phone = $4,
			experience = $5,
			is_active = $6,
			updated_at = now()
		WHERE id = $1;`

	cmdTag, err := q.Exec(ctx, query,
		instructor.ID,
		instructor.FullName,
		instructor.Email,
		instructor.Phone,
		instructor.Experience,
		instructor.IsActive,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return types.ErrDuplicateEmail
		}
		return fmt.Errorf("instructor repo: Update: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return wrap.Error(ctx, types.ErrInstructorNotFound)
	}

	return nil
}

func (r *InstructorRepo) Delete(ctx context.Context, instructorID uuid.UUID) error {
	q := TxorDB(ctx, r.db)

	query := `DELETE FROM instructors WHERE id = $1;`

	cmdTag, err := q.Exec(ctx, query, instructorID)
	if err != nil {
		return fmt.Errorf("instructor repo: Delete: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return wrap.Error(ctx, types.ErrInstructorNotFound)
	}

	return nil
}
