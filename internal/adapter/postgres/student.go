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

type StudentRepo struct {
	db *pgxpool.Pool
}

func NewStudentRepo(db *pgxpool.Pool) *StudentRepo {
	return &StudentRepo{db: db}
}

func (r *StudentRepo) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	q := TxorDB(ctx, r.db)

	query := `
		INSERT INTO students (full_name, email, phone, address, course_start_date, course_end_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at;`

	err := q.QueryRow(ctx, query,
		student.FullName,
		student.Email,
		student.Phone,
		student.Address,
		student.CourseStartDate,
		student.CourseEndDate,
		student.IsActive,
	).Scan(&student.ID, &student.CreatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, types.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("student repo: Create: %w", err)
	}

	return student, nil
}

func (r *StudentRepo) Get(ctx context.Context, studentID uuid.UUID) (*models.Student, error) {
	q := TxorDB(ctx, r.db)

	query := `
		SELECT id, full_name, email, phone, address, course_start_date, course_end_date, is_active, created_at, updated_at
		FROM students
		WHERE id = $1;`

	var student models.Student
	err := q.QueryRow(ctx, query, studentID).Scan(
		&student.ID,
		&student.FullName,
		&student.Email,
		&student.Phone,
		&student.Address,
		&student.CourseStartDate,
		&student.CourseEndDate,
		&student.IsActive,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrStudentNotFound
		}
		return nil, fmt.Errorf("student repo: Get: %w", err)
	}

	return &student, nil
}

// List returns students matching the search term (empty matches everything)
// plus the total record count for the metadata block.
func (r *StudentRepo) List(ctx context.Context, search string, filters models.Filters) ([]*models.Student, models.Metadata, error) {
	q := TxorDB(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT count(*) OVER(),
			id, full_name, email, phone, address, course_start_date, course_end_date, is_active, created_at, updated_at
		FROM students
		WHERE ($3 = '' OR full_name ILIKE '%%' || $3 || '%%' OR email ILIKE '%%' || $3 || '%%')
		ORDER BY %s %s, id ASC
		LIMIT $1 OFFSET $2;`, filters.SortColumn(), filters.SortDirection())

	rows, err := q.Query(ctx, query, filters.Limit(), filters.Offset(), search)
	if err != nil {
		return nil, models.Metadata{}, fmt.Errorf("student repo: List: %w", err)
	}
	defer rows.Close()

	totalRecords := 0
	students := []*models.Student{}

	for rows.Next() {
		var student models.Student
		err := rows.Scan(
			&totalRecords,
			&student.ID,
			&student.FullName,
			&student.Email,
			&student.Phone,
			&student.Address,
			&student.CourseStartDate,
			&student.CourseEndDate,
			&student.IsActive,
			&student.CreatedAt,
			&student.UpdatedAt,
		)
		if err != nil {
			return nil, models.Metadata{}, fmt.Errorf("student repo: List (scan): %w", err)
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, models.Metadata{}, fmt.Errorf("student repo: List (rows): %w", err)
	}

	metadata := models.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return students, metadata, nil
}

func (r *StudentRepo) Update(ctx context.Context, student *models.Student) error {
	q := TxorDB(ctx, r.db)

	query := `
		UPDATE students
		SET
			full_name = $2,
			email = $3,
			phone = $4,
			address = $5,
			course_start_date = $6,
			course_end_date = $7,
			is_active = $8,
			updated_at = now()
		WHERE id = $1;`

	cmdTag, err := q.Exec(ctx, query,
		student.ID,
		student.FullName,
		student.Email,
		student.Phone,
		student.Address,
		student.CourseStartDate,
		student.CourseEndDate,
		student.IsActive,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return types.ErrDuplicateEmail
		}
		return fmt.Errorf("student repo: Update: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return wrap.Error(ctx, types.ErrStudentNotFound)
	}

	return nil
}

func (r *StudentRepo) Delete(ctx context.Context, studentID uuid.UUID) error {
	q := TxorDB(ctx, r.db)

	query := `DELETE FROM students WHERE id = $1;`

	cmdTag, err := q.Exec(ctx, query, studentID)
	if err != nil {
		return fmt.Errorf("student repo: Delete: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return wrap.Error(ctx, types.ErrStudentNotFound)
	}

	return nil
}
