package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vahanex/vahanex-server/internal/domain/models"
	"github.com/vahanex/vahanex-server/internal/domain/types"
	"github.com/vahanex/vahanex-server/pkg/logger"
	"github.com/vahanex/vahanex-server/pkg/uuid"
)

type memoryUserRepo struct {
	users map[uuid.UUID]*models.User
}

func (r *memoryUserRepo) CreateUser(ctx context.Context, u *models.User) (uuid.UUID, error) {
	id, err := uuid.New()
	if err != nil {
		return uuid.UUID{}, err
	}
	u.ID = id
	r.users[id] = u
	return id, nil
}

func (r *memoryUserRepo) GetUser(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, types.ErrUserNotFound
}

func (r *memoryUserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, types.ErrUserNotFound
	}
	return u, nil
}

type memoryRefreshRepo struct {
	records map[uuid.UUID]*models.RefreshTokenRecord
}

func (r *memoryRefreshRepo) Save(ctx context.Context, rec *models.RefreshTokenRecord) error {
	copied := *rec
	r.records[rec.ID] = &copied
	return nil
}

func (r *memoryRefreshRepo) Get(ctx context.Context, id uuid.UUID) (*models.RefreshTokenRecord, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (r *memoryRefreshRepo) MarkUsed(ctx context.Context, id uuid.UUID) error {
	if rec, ok := r.records[id]; ok {
		rec.Revoked = true
	}
	return nil
}

type noopTxManager struct{}

func (noopTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTokenService(t *testing.T) (*TokenService, *memoryUserRepo, *models.User) {
	t.Helper()

	users := &memoryUserRepo{users: make(map[uuid.UUID]*models.User)}
	refresh := &memoryRefreshRepo{records: make(map[uuid.UUID]*models.RefreshTokenRecord)}
	log := logger.InitLogger("test", logger.LevelError)

	svc := NewTokenService("test-secret", users, refresh, noopTxManager{}, time.Hour, 15*time.Minute, log)

	user := &models.User{Name: "Desk Staff", Email: "desk@vahanex.test", Role: types.FrontDeskRole.String()}
	_, err := users.CreateUser(context.Background(), user)
	require.NoError(t, err)

	return svc, users, user
}

func TestTokenService_GenerateAndValidate(t *testing.T) {
	svc, _, user := newTokenService(t)
	ctx := context.Background()

	pair, err := svc.GenerateTokens(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := svc.Validate(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.AccessToken, claims.TokenType)
}

func TestTokenService_Refresh(t *testing.T) {
	svc, _, user := newTokenService(t)
	ctx := context.Background()

	pair, err := svc.GenerateTokens(ctx, user)
	require.NoError(t, err)

	fresh, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, fresh.RefreshToken)

	// the old refresh token is single use
	_, err = svc.Refresh(ctx, pair.RefreshToken)
	assert.Error(t, err)
}

func TestTokenService_RefreshRejectsAccessToken(t *testing.T) {
	svc, _, user := newTokenService(t)
	ctx := context.Background()

	pair, err := svc.GenerateTokens(ctx, user)
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_ValidateRejectsWrongSecret(t *testing.T) {
	svc, users, user := newTokenService(t)
	ctx := context.Background()

	pair, err := svc.GenerateTokens(ctx, user)
	require.NoError(t, err)

	other := NewTokenService("different-secret", users, nil, noopTxManager{}, time.Hour, 15*time.Minute, logger.InitLogger("test", logger.LevelError))
	_, err = other.Validate(ctx, pair.AccessToken)
	assert.Error(t, err)
}
