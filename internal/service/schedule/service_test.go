package schedule

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

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRepo struct {
	schedules map[uuid.UUID]*models.ScheduleInfo
	stats     models.StatsSnapshot

	countCalls int
	deleted    []uuid.UUID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{schedules: make(map[uuid.UUID]*models.ScheduleInfo)}
}

func (r *fakeRepo) Create(ctx context.Context, s *models.Schedule) (*models.Schedule, error) {
	id, err := uuid.New()
	if err != nil {
		return nil, err
	}
	s.ID = id
	s.CreatedAt = time.Now()
	r.schedules[id] = &models.ScheduleInfo{
		ID:           id,
		StudentID:    s.StudentID,
		VehicleID:    s.VehicleID,
		ScheduleDate: s.ScheduleDate,
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		Status:       s.Status,
	}
	return s, nil
}

func (r *fakeRepo) Get(ctx context.Context, id uuid.UUID) (*models.ScheduleInfo, error) {
	info, ok := r.schedules[id]
	if !ok {
		return nil, types.ErrScheduleNotFound
	}
	return info, nil
}

func (r *fakeRepo) List(ctx context.Context, date time.Time, filters models.Filters) ([]*models.ScheduleInfo, models.Metadata, error) {
	out := []*models.ScheduleInfo{}
	for _, info := range r.schedules {
		out = append(out, info)
	}
	return out, models.CalculateMetadata(len(out), filters.Page, filters.PageSize), nil
}

func (r *fakeRepo) UpdateTimes(ctx context.Context, id uuid.UUID, start, end string) error {
	info, ok := r.schedules[id]
	if !ok {
		return types.ErrScheduleNotFound
	}
	info.StartTime = start
	info.EndTime = end
	return nil
}

func (r *fakeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status types.ScheduleStatus) error {
	info, ok := r.schedules[id]
	if !ok {
		return types.ErrScheduleNotFound
	}
	info.Status = status
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.schedules[id]; !ok {
		return types.ErrScheduleNotFound
	}
	delete(r.schedules, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeRepo) CountStats(ctx context.Context, today time.Time) (models.StatsSnapshot, error) {
	r.countCalls++
	return r.stats, nil
}

type fakeCache struct {
	stats       *models.StatsSnapshot
	invalidated int
}

func (c *fakeCache) Get(ctx context.Context) (models.StatsSnapshot, bool, error) {
	if c.stats == nil {
		return models.StatsSnapshot{}, false, nil
	}
	return *c.stats, true, nil
}

func (c *fakeCache) Set(ctx context.Context, stats models.StatsSnapshot) error {
	c.stats = &stats
	return nil
}

func (c *fakeCache) Invalidate(ctx context.Context) error {
	c.stats = nil
	c.invalidated++
	return nil
}

type fakeBroker struct {
	published []models.ScheduleEventMessage
}

func (b *fakeBroker) PublishScheduleEvent(ctx context.Context, msg models.ScheduleEventMessage) error {
	b.published = append(b.published, msg)
	return nil
}

type fakeBoard struct {
	broadcasts []map[string]any
}

func (b *fakeBoard) Broadcast(msg map[string]any) {
	b.broadcasts = append(b.broadcasts, msg)
}

func newTestService() (*ScheduleService, *fakeRepo, *fakeCache, *fakeBroker, *fakeBoard) {
	repo := newFakeRepo()
	cache := &fakeCache{}
	broker := &fakeBroker{}
	board := &fakeBoard{}
	log := logger.InitLogger("test", logger.LevelError)

	svc := NewScheduleService(repo, cache, broker, board, log, fakeTxManager{})
	return svc, repo, cache, broker, board
}

func newDraft(t *testing.T) *models.Schedule {
	t.Helper()

	studentID, err := uuid.New()
	require.NoError(t, err)
	vehicleID, err := uuid.New()
	require.NoError(t, err)

	return &models.Schedule{
		StudentID:    studentID,
		VehicleID:    vehicleID,
		ScheduleDate: time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
		StartTime:    "09:00",
		EndTime:      "10:00",
	}
}

func TestScheduleService_Create(t *testing.T) {
	svc, _, cache, broker, board := newTestService()

	created, err := svc.Create(context.Background(), newDraft(t))
	require.NoError(t, err)
	assert.Equal(t, types.ScheduleScheduled, created.Status)

	require.Len(t, broker.published, 1)
	assert.Equal(t, types.EventScheduleCreated, broker.published[0].Event)
	assert.Equal(t, "2025-06-02", broker.published[0].ScheduleDate)

	assert.Equal(t, 1, cache.invalidated)
	require.Len(t, board.broadcasts, 1)
	assert.Equal(t, "board_update", board.broadcasts[0]["type"])
}

func TestScheduleService_UpdateTimes(t *testing.T) {
	svc, _, _, broker, _ := newTestService()

	created, err := svc.Create(context.Background(), newDraft(t))
	require.NoError(t, err)

	updated, err := svc.UpdateTimes(context.Background(), created.ID, "11:00", "12:30")
	require.NoError(t, err)
	assert.Equal(t, "11:00", updated.StartTime)
	assert.Equal(t, "12:30", updated.EndTime)

	require.Len(t, broker.published, 2)
	assert.Equal(t, types.EventScheduleUpdated, broker.published[1].Event)
}

func TestScheduleService_UpdateTimes_NotFound(t *testing.T) {
	svc, _, _, broker, _ := newTestService()

	id, err := uuid.New()
	require.NoError(t, err)

	_, err = svc.UpdateTimes(context.Background(), id, "11:00", "12:00")
	assert.ErrorIs(t, err, types.ErrScheduleNotFound)
	assert.Empty(t, broker.published)
}

func TestScheduleService_Delete(t *testing.T) {
	svc, repo, _, broker, _ := newTestService()

	created, err := svc.Create(context.Background(), newDraft(t))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Contains(t, repo.deleted, created.ID)

	// deletion event still carries the participants
	last := broker.published[len(broker.published)-1]
	assert.Equal(t, types.EventScheduleDeleted, last.Event)
	assert.Equal(t, created.StudentID, last.StudentID)
}

func TestScheduleService_StatsUsesCache(t *testing.T) {
	svc, repo, cache, _, _ := newTestService()
	repo.stats = models.StatsSnapshot{Total: 4, Todays: 1, InProgress: 1, Completed: 2}

	now := time.Now()

	first, err := svc.Stats(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, repo.stats, first)
	assert.Equal(t, 1, repo.countCalls)

	// warm cache, the repo is not consulted again
	second, err := svc.Stats(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.countCalls)

	// a mutation drops the cache and afterMutation recounts
	_, err = svc.Create(context.Background(), newDraft(t))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cache.invalidated, 1)
	assert.GreaterOrEqual(t, repo.countCalls, 2)
}
