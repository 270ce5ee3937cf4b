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

type VehicleRepo struct {
	db *pgxpool.Pool
}

func NewVehicleRepo(db *pgxpool.Pool) *VehicleRepo {
	return &VehicleRepo{db: db}
}

func (r *VehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	q := TxorDB(ctx, r.db)

	query := `
		INSERT INTO vehicles (vehicle_number, model, type, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;`

	err := q.QueryRow(ctx, query,
		vehicle.VehicleNumber,
		vehicle.Model,
		vehicle.Type,
		vehicle.Status,
	).Scan(&vehicle.ID, &vehicle.CreatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, types.ErrDuplicateVehicleNumber
		}
		return nil, fmt.Errorf("vehicle repo: Create: %w", err)
	}

	return vehicle, nil
}

func (r *VehicleRepo) Get(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error) {
	q := TxorDB(ctx, r.db)

	query := `
		SELECT id, vehicle_number, model, type, status, created_at, updated_at
		FROM vehicles
		WHERE id = $1;`

	var vehicle models.Vehicle
	err := q.QueryRow(ctx, query, vehicleID).Scan(
		&vehicle.ID,
		&vehicle.VehicleNumber,
		&vehicle.Model,
		&vehicle.Type,
		&vehicle.Status,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("vehicle repo: Get: %w", err)
	}

	return &vehicle, nil
}

func (r *VehicleRepo) List(ctx context.Context, filters models.Filters) ([]*models.Vehicle, models.Metadata, error) {
	q := TxorDB(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT count(*) OVER(),
			id, vehicle_number, model, type, status, created_at, updated_at
		FROM vehicles
		ORDER BY %s %s, id ASC
		LIMIT $1 OFFSET $2;`, filters.SortColumn(), filters.SortDirection())

	rows, err := q.Query(ctx, query, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, models.Metadata{}, fmt.Errorf("vehicle repo: List: %w", err)
	}
	defer rows.Close()

	totalRecords := 0
	vehicles := []*models.Vehicle{}

	for rows.Next() {
		var vehicle models.Vehicle
		err := rows.Scan(
			&totalRecords,
			&vehicle.ID,
			&vehicle.VehicleNumber,
			&vehicle.Model,
			&vehicle.Type,
			&vehicle.Status,
			&vehicle.CreatedAt,
			&vehicle.UpdatedAt,
		)
		if err != nil {
			return nil, models.Metadata{}, fmt.Errorf("vehicle repo: List (scan): %w", err)
		}
		vehicles = append(vehicles, &vehicle)
	}

	if err := rows.Err(); err != nil {
		return nil, models.Metadata{}, fmt.Errorf("vehicle repo: List (rows): %w", err)
	}

	metadata := models.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return vehicles, metadata, nil
}

func (r *VehicleRepo) Update(ctx context.Context, vehicle *models.Vehicle) error {
	q := TxorDB(ctx, r.db)

	query := `
		UPDATE vehicles
		SET
			vehicle_number = $2,
			model = $3,
			type = $4,
			status = $5,
			updated_at = now()
		WHERE id = $1;`

	cmdTag, err := q.Exec(ctx, query,
		vehicle.ID,
		vehicle.VehicleNumber,
		vehicle.Model,
		vehicle.Type,
		vehicle.Status,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return types.ErrDuplicateVehicleNumber
		}
		return fmt.Errorf("vehicle repo: Update: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return wrap.Error(ctx, types.ErrVehicleNotFound)
	}

	return nil
}

func (r *VehicleRepo) Delete(ctx context.Context, vehicleID uuid.UUID) error {
	q := TxorDB(ctx, r.db)

	query := `DELETE FROM vehicles WHERE id = $1;`

	cmdTag, err := q.Exec(ctx, query, vehicleID)
	if err != nil {
		return fmt.Errorf("vehicle repo: Delete: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return wrap.Error(ctx, types.ErrVehicleNotFound)
	}

	return nil
}
