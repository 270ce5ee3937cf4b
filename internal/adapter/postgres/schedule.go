package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vahanex/vahanex-server/internal/domain/models"
	"github.com/vahanex/vahanex-server/internal/domain/types"
	wrap "github.com/vahanex/vahanex-server/pkg/logger/wrapper"
	"github.com/vahanex/vahanex-server/pkg/postgres"
	"github.com/vahanex/vahanex-server/pkg/uuid"
)

type ScheduleRepo struct {
	db *pgxpool.Pool
}

func NewScheduleRepo(db *pgxpool.Pool) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

func (r *ScheduleRepo) Create(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error) {
	q := TxorDB(ctx, r.db)

	scheduleQuery := `
		INSERT INTO schedules (student_id, vehicle_id, schedule_date, start_time, end_time, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at;`

	err := q.QueryRow(ctx, scheduleQuery,
		schedule.StudentID,
		schedule.VehicleID,
		schedule.ScheduleDate.Format("2006-01-02"),
		schedule.StartTime,
		schedule.EndTime,
		schedule.Status,
		schedule.Notes,
	).Scan(&schedule.ID, &schedule.CreatedAt)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return nil, types.ErrScheduleReferences
		}
		return nil, fmt.Errorf("schedule repo: Create: %w", err)
	}

	instructorQuery := `INSERT INTO schedule_instructors (schedule_id, instructor_id) VALUES ($1, $2);`

	for _, instructorID := range schedule.InstructorIDs {
		if _, err := q.Exec(ctx, instructorQuery, schedule.ID, instructorID); err != nil {
			if postgres.IsForeignKeyViolation(err) {
				return nil, types.ErrScheduleReferences
			}
			return nil, fmt.Errorf("schedule repo: Create (instructor): %w", err)
		}
	}

	return schedule, nil
}

const scheduleInfoSelect = `
	SELECT
		s.id, s.student_id, st.full_name,
		s.vehicle_id, v.vehicle_number,
		COALESCE(array_agg(si.instructor_id::text) FILTER (WHERE si.instructor_id IS NOT NULL), '{}'),
		COALESCE(array_agg(i.full_name) FILTER (WHERE i.full_name IS NOT NULL), '{}'),
		s.schedule_date, s.start_time, s.end_time, s.status, s.notes,
		s.created_at, s.updated_at
	FROM schedules s
	JOIN students st ON s.student_id = st.id
	JOIN vehicles v ON s.vehicle_id = v.id
	LEFT JOIN schedule_instructors si ON si.schedule_id = s.id
	LEFT JOIN instructors i ON si.instructor_id = i.id`

func scanScheduleInfo(row pgx.Row) (*models.ScheduleInfo, error) {
	var (
		info          models.ScheduleInfo
		instructorIDs []string
	)

	err := row.Scan(
		&info.ID, &info.StudentID, &info.StudentName,
		&info.VehicleID, &info.VehicleNumber,
		&instructorIDs,
		&info.InstructorNames,
		&info.ScheduleDate, &info.StartTime, &info.EndTime, &info.Status, &info.Notes,
		&info.CreatedAt, &info.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	info.InstructorIDs = make([]uuid.UUID, 0, len(instructorIDs))
	for _, raw := range instructorIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid instructor id %q: %w", raw, err)
		}
		info.InstructorIDs = append(info.InstructorIDs, id)
	}

	return &info, nil
}

func (r *ScheduleRepo) Get(ctx context.Context, scheduleID uuid.UUID) (*models.ScheduleInfo, error) {
	q := TxorDB(ctx, r.db)

	query := scheduleInfoSelect + `
	WHERE s.id = $1
	GROUP BY s.id, st.full_name, v.vehicle_number;`

	info, err := scanScheduleInfo(q.QueryRow(ctx, query, scheduleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("schedule repo: Get: %w", err)
	}

	return info, nil
}

// List returns schedules ordered per filters together with the total record
// count. A zero date means no date filter.
func (r *ScheduleRepo) List(ctx context.Context, date time.Time, filters models.Filters) ([]*models.ScheduleInfo, models.Metadata, error) {
	q := TxorDB(ctx, r.db)

	dateFilter := ""
	args := []any{filters.Limit(), filters.Offset()}
	if !date.IsZero() {
		dateFilter = "WHERE s.schedule_date = $3"
		args = append(args, date.Format("2006-01-02"))
	}

	query := fmt.Sprintf(`
		WITH page AS (
			%s
			%s
			GROUP BY s.id, st.full_name, v.vehicle_number
			ORDER BY s.%s %s, s.start_time ASC
			LIMIT $1 OFFSET $2
		)
		SELECT count(*) OVER(), page.* FROM page;`,
		scheduleInfoSelect, dateFilter, filters.SortColumn(), filters.SortDirection())

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, models.Metadata{}, fmt.Errorf("schedule repo: List: %w", err)
	}
	defer rows.Close()

	totalRecords := 0
	schedules := []*models.ScheduleInfo{}

	for rows.Next() {
		var (
			info          models.ScheduleInfo
			instructorIDs []string
		)

		err := rows.Scan(
			&totalRecords,
			&info.ID, &info.StudentID, &info.StudentName,
			&info.VehicleID, &info.VehicleNumber,
			&instructorIDs,
			&info.InstructorNames,
			&info.ScheduleDate, &info.StartTime, &info.EndTime, &info.Status, &info.Notes,
			&info.CreatedAt, &info.UpdatedAt,
		)
		if err != nil {
			return nil, models.Metadata{}, fmt.Errorf("schedule repo: List (scan): %w", err)
		}

		info.InstructorIDs = make([]uuid.UUID, 0, len(instructorIDs))
		for _, raw := range instructorIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				return nil, models.Metadata{}, fmt.Errorf("schedule repo: List: invalid instructor id %q: %w", raw, err)
			}
			info.InstructorIDs = append(info.InstructorIDs, id)
		}

		schedules = append(schedules, &info)
	}

	if err := rows.Err(); err != nil {
		return nil, models.Metadata{}, fmt.Errorf("schedule repo: List (rows): %w", err)
	}

	metadata := models.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return schedules, metadata, nil
}

// UpdateTimes rewrites the session window of an existing schedule.
func (r *ScheduleRepo) UpdateTimes(ctx context.Context, scheduleID uuid.UUID, startTime, endTime string) error {
	q := TxorDB(ctx, r.db)

	query := `
		UPDATE schedules
		SET
			start_time = $2,
			end_time = $3,
			updated_at = now()
		WHERE id = $1;`

	cmdTag, err := q.Exec(ctx, query, scheduleID, startTime, endTime)
	if err != nil {
		return fmt.Errorf("schedule repo: UpdateTimes: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return wrap.Error(ctx, types.ErrScheduleNotFound)
	}

	return nil
}

func (r *ScheduleRepo) UpdateStatus(ctx context.Context, scheduleID uuid.UUID, status types.ScheduleStatus) error {
	q := TxorDB(ctx, r.db)

	query := `
		UPDATE schedules
		SET
			status = $2,
			updated_at = now()
		WHERE id = $1;`

	cmdTag, err := q.Exec(ctx, query, scheduleID, status)
	if err != nil {
		return fmt.Errorf("schedule repo: UpdateStatus: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return wrap.Error(ctx, types.ErrScheduleNotFound)
	}

	return nil
}

func (r *ScheduleRepo) Delete(ctx context.Context, scheduleID uuid.UUID) error {
	q := TxorDB(ctx, r.db)

	// schedule_instructors rows cascade on delete
	query := `DELETE FROM schedules WHERE id = $1;`

	cmdTag, err := q.Exec(ctx, query, scheduleID)
	if err != nil {
		return fmt.Errorf("schedule repo: Delete: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return wrap.Error(ctx, types.ErrScheduleNotFound)
	}

	return nil
}

// CountStats builds the dashboard counters in a single scan.
func (r *ScheduleRepo) CountStats(ctx context.Context, today time.Time) (models.StatsSnapshot, error) {
	q := TxorDB(ctx, r.db)

	query := `
		SELECT
			count(*),
			count(*) FILTER (WHERE schedule_date = $1),
			count(*) FILTER (WHERE status = 'inprogress'),
			count(*) FILTER (WHERE status = 'completed')
		FROM schedules;`

	var stats models.StatsSnapshot
	err := q.QueryRow(ctx, query, today.Format("2006-01-02")).Scan(
		&stats.Total,
		&stats.Todays,
		&stats.InProgress,
		&stats.Completed,
	)
	if err != nil {
		return models.StatsSnapshot{}, fmt.Errorf("schedule repo: CountStats: %w", err)
	}

	return stats, nil
}
