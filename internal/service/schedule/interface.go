package schedule

import (
	"context"
	"time"

	"github.com/vahanex/vahanex-server/internal/domain/models"
	"github.com/vahanex/vahanex-server/internal/domain/types"
	"github.com/vahanex/vahanex-server/pkg/uuid"
)

type ScheduleRepo interface {
	Create(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error)
	Get(ctx context.Context, scheduleID uuid.UUID) (*models.ScheduleInfo, error)
	List(ctx context.Context, date time.Time, filters models.Filters) ([]*models.ScheduleInfo, models.Metadata, error)
	UpdateTimes(ctx context.Context, scheduleID uuid.UUID, startTime, endTime string) error
	UpdateStatus(ctx context.Context, scheduleID uuid.UUID, status types.ScheduleStatus) error
	Delete(ctx context.Context, scheduleID uuid.UUID) error
	CountStats(ctx context.Context, today time.Time) (models.StatsSnapshot, error)
}

type StatsCache interface {
	Get(ctx context.Context) (models.StatsSnapshot, bool, error)
	Set(ctx context.Context, stats models.StatsSnapshot) error
	Invalidate(ctx context.Context) error
}

type EventPublisher interface {
	PublishScheduleEvent(ctx context.Context, msg models.ScheduleEventMessage) error
}

type BoardNotifier interface {
	Broadcast(msg map[string]any)
}
