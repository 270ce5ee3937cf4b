package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vahanex/vahanex-server/internal/domain/models"
	"github.com/vahanex/vahanex-server/internal/domain/types"
	"github.com/vahanex/vahanex-server/pkg/postgres"
	"github.com/vahanex/vahanex-server/pkg/uuid"
)

type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{
		db: db,
	}
}

// CreateUser inserts a user row. The password must already be hashed.
func (r *UserRepo) CreateUser(ctx context.Context, u *models.User) (uuid.UUID, error) {
	if u == nil {
		return uuid.UUID{}, errors.New("nil user")
	}

	const q = `
		INSERT INTO users (name, email, role, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at;
	`

	err := TxorDB(ctx, r.db).QueryRow(
		ctx, q, u.Name, u.Email, u.Role, u.GetPassword(),
	).Scan(&u.ID, &u.Created_At, &u.Updated_At)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return uuid.UUID{}, types.ErrDuplicateEmail
		}
		return uuid.UUID{}, err
	}

	return u.ID, nil
}

// GetUser fetches by email (unique).
func (r *UserRepo) GetUser(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, errors.New("email is required")
	}

	const q = `
		SELECT id, name, email, role, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1;
	`

	var (
		u            models.User
		passwordHash string
	)
	err := TxorDB(ctx, r.db).QueryRow(ctx, q, email).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Role,
		&passwordHash,
		&u.Created_At,
		&u.Updated_At,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrUserNotFound
		}
		return nil, err
	}

	u.SetPassword(passwordHash)
	return &u, nil
}

// GetUserByID fetches by UUID id.
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const q = `
		SELECT id, name, email, role, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1;
	`

	var (
		u            models.User
		passwordHash string
	)
	err := TxorDB(ctx, r.db).QueryRow(ctx, q, id).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Role,
		&passwordHash,
		&u.Created_At,
		&u.Updated_At,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrUserNotFound
		}
		return nil, err
	}

	u.SetPassword(passwordHash)
	return &u, nil
}
