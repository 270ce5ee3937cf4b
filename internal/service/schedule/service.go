package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vahanex/vahanex-server/internal/domain/models"
	"github.com/vahanex/vahanex-server/internal/domain/types"
	"github.com/vahanex/vahanex-server/pkg/logger"
	wrap "github.com/vahanex/vahanex-server/pkg/logger/wrapper"
	"github.com/vahanex/vahanex-server/pkg/metrics"
	"github.com/vahanex/vahanex-server/pkg/trm"
	"github.com/vahanex/vahanex-server/pkg/uuid"
)

const serviceName = "vahanex-server"

type ScheduleService struct {
	repo   ScheduleRepo
	cache  StatsCache
	broker EventPublisher
	board  BoardNotifier

	logger logger.Logger
	trm    trm.TxManager
}

func NewScheduleService(repo ScheduleRepo, cache StatsCache, broker EventPublisher, board BoardNotifier, logger logger.Logger, trm trm.TxManager) *ScheduleService {
	return &ScheduleService{
		repo:   repo,
		cache:  cache,
		broker: broker,
		board:  board,
		logger: logger,
		trm:    trm,
	}
}

func (s *ScheduleService) Create(ctx context.Context, schedule *models.Schedule) (*models.ScheduleInfo, error) {
	ctx = wrap.WithAction(ctx, "create_schedule")

	if schedule.Status == "" {
		schedule.Status = types.ScheduleScheduled
	}

	var created *models.ScheduleInfo

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		saved, err := s.repo.Create(ctx, schedule)
		if err != nil {
			return wrap.Error(ctx, fmt.Errorf("could not create schedule in repo: %w", err))
		}

		created, err = s.repo.Get(ctx, saved.ID)
		if err != nil {
			return wrap.Error(ctx, fmt.Errorf("could not load created schedule: %w", err))
		}

		return nil
	})
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	metrics.SchedulesTotal.WithLabelValues(serviceName, schedule.Status.String()).Inc()

	s.afterMutation(ctx, types.EventScheduleCreated, created)

	return created, nil
}

func (s *ScheduleService) Get(ctx context.Context, scheduleID uuid.UUID) (*models.ScheduleInfo, error) {
	ctx = wrap.WithAction(wrap.WithScheduleID(ctx, scheduleID.String()), "get_schedule")

	info, err := s.repo.Get(ctx, scheduleID)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	return info, nil
}

func (s *ScheduleService) List(ctx context.Context, date time.Time, filters models.Filters) ([]*models.ScheduleInfo, models.Metadata, error) {
	ctx = wrap.WithAction(ctx, "list_schedules")

	schedules, metadata, err := s.repo.List(ctx, date, filters)
	if err != nil {
		return nil, models.Metadata{}, wrap.Error(ctx, err)
	}
	return schedules, metadata, nil
}

// UpdateTimes rewrites the session window. Only the start and end of the
// window can change after creation; the date and participants are fixed.
func (s *ScheduleService) UpdateTimes(ctx context.Context, scheduleID uuid.UUID, startTime, endTime string) (*models.ScheduleInfo, error) {
	ctx = wrap.WithAction(wrap.WithScheduleID(ctx, scheduleID.String()), "update_schedule_times")

	var updated *models.ScheduleInfo

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.UpdateTimes(ctx, scheduleID, startTime, endTime); err != nil {
			return wrap.Error(ctx, err)
		}

		var err error
		updated, err = s.repo.Get(ctx, scheduleID)
		if err != nil {
			return wrap.Error(ctx, err)
		}
		return nil
	})
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	s.afterMutation(ctx, types.EventScheduleUpdated, updated)

	return updated, nil
}

func (s *ScheduleService) UpdateStatus(ctx context.Context, scheduleID uuid.UUID, status types.ScheduleStatus) (*models.ScheduleInfo, error) {
	ctx = wrap.WithAction(wrap.WithScheduleID(ctx, scheduleID.String()), "update_schedule_status")

	var updated *models.ScheduleInfo

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.UpdateStatus(ctx, scheduleID, status); err != nil {
			return wrap.Error(ctx, err)
		}

		var err error
		updated, err = s.repo.Get(ctx, scheduleID)
		if err != nil {
			return wrap.Error(ctx, err)
		}
		return nil
	})
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	s.afterMutation(ctx, types.EventStatusChanged, updated)

	return updated, nil
}

func (s *ScheduleService) Delete(ctx context.Context, scheduleID uuid.UUID) error {
	ctx = wrap.WithAction(wrap.WithScheduleID(ctx, scheduleID.String()), "delete_schedule")

	// Load the row first so the event still carries the participants.
	info, err := s.repo.Get(ctx, scheduleID)
	if err != nil {
		return wrap.Error(ctx, err)
	}

	if err := s.repo.Delete(ctx, scheduleID); err != nil {
		return wrap.Error(ctx, err)
	}

	s.afterMutation(ctx, types.EventScheduleDeleted, info)

	return nil
}

// Stats returns the dashboard counters, served from cache when warm.
func (s *ScheduleService) Stats(ctx context.Context, now time.Time) (models.StatsSnapshot, error) {
	ctx = wrap.WithAction(ctx, "schedule_stats")

	if stats, ok, err := s.cache.Get(ctx); err != nil {
		// Cache trouble must not take the endpoint down.
		s.logger.Warn(ctx, "stats cache unavailable, falling back to database", "err", err.Error())
	} else if ok {
		return stats, nil
	}

	stats, err := s.repo.CountStats(ctx, now)
	if err != nil {
		return models.StatsSnapshot{}, wrap.Error(ctx, err)
	}

	if err := s.cache.Set(ctx, stats); err != nil {
		s.logger.Warn(ctx, "failed to warm stats cache", "err", err.Error())
	}

	metrics.TodaySessionsGauge.WithLabelValues(serviceName).Set(float64(stats.Todays))

	return stats, nil
}

// afterMutation runs the side effects every schedule change shares: drop the
// cached counters, publish the lifecycle event and push the new board state
// to connected dashboards. Failures here are logged, not returned, since the
// database write already succeeded.
func (s *ScheduleService) afterMutation(ctx context.Context, event types.ScheduleEvent, info *models.ScheduleInfo) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn(wrap.WithAction(ctx, "invalidate_stats_cache"), "failed to invalidate stats cache", "err", err.Error())
	}

	correlationID, err := uuid.New()
	if err != nil {
		s.logger.Error(ctx, "failed to generate correlation id", err)
	}

	msg := models.ScheduleEventMessage{
		ScheduleID:    info.ID,
		Event:         event,
		StudentID:     info.StudentID,
		VehicleID:     info.VehicleID,
		InstructorIDs: info.InstructorIDs,
		ScheduleDate:  info.ScheduleDate.Format("2006-01-02"),
		StartTime:     info.StartTime,
		EndTime:       info.EndTime,
		Status:        info.Status.String(),
		Timestamp:     time.Now().UTC(),
		CorrelationID: correlationID.String(),
	}

	if err := s.broker.PublishScheduleEvent(ctx, msg); err != nil {
		s.logger.Error(wrap.ErrorCtx(ctx, err), "failed to publish schedule event", err)
	}

	stats, err := s.Stats(ctx, time.Now())
	if err != nil {
		s.logger.Error(wrap.ErrorCtx(ctx, err), "failed to refresh stats after mutation", err)
	}

	update := models.BoardUpdateDTO{
		Type:      "board_update",
		Event:     msg.Event.String(),
		Schedule:  info,
		Stats:     stats,
		Timestamp: msg.Timestamp,
	}

	// fan out through the generic hub payload
	body, err := json.Marshal(update)
	if err != nil {
		s.logger.Error(ctx, "failed to marshal board update", err)
		return
	}
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		s.logger.Error(ctx, "failed to build board payload", err)
		return
	}

	s.board.Broadcast(payload)
}
