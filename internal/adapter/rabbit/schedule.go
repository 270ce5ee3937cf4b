package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/vahanex/vahanex-server/internal/domain/models"
	"github.com/vahanex/vahanex-server/pkg/logger"
	wrap "github.com/vahanex/vahanex-server/pkg/logger/wrapper"
	"github.com/vahanex/vahanex-server/pkg/metrics"
	"github.com/vahanex/vahanex-server/pkg/rabbit"
)

const (
	ScheduleExchange = "schedule_topic"
)

type ScheduleBroker struct {
	client           *rabbit.RabbitMQ
	ScheduleExchange string

	l logger.Logger
}

func NewScheduleBroker(client *rabbit.RabbitMQ, log logger.Logger) *ScheduleBroker {
	scheduleBroker := &ScheduleBroker{
		client:           client,
		ScheduleExchange: ScheduleExchange,

		l: log,
	}

	return scheduleBroker
}

// PublishScheduleEvent publishes a schedule lifecycle event to the
// 'schedule_topic' exchange with key 'schedule.{created|updated|deleted}'.
func (r *ScheduleBroker) PublishScheduleEvent(ctx context.Context, msg models.ScheduleEventMessage) error {
	ctx = wrap.WithAction(ctx, "rabbitmq_publish_schedule_event")

	// Check and restore the connection first
	if err := r.client.EnsureConnection(ctx); err != nil {
		r.l.Error(ctx, "ensure connection failed", err)
		return wrap.Error(ctx, err)
	}

	// Make sure the exchange exists
	if err := r.client.Channel.ExchangeDeclare(r.ScheduleExchange, "topic", true, false, false, false, nil); err != nil {
		return wrap.Error(ctx, fmt.Errorf("failed to declare exchange: %w", err))
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return wrap.Error(ctx, fmt.Errorf("failed to marshal message: %w", err))
	}

	// routing key, example, "schedule.created"
	key := routingKey(msg.Event.String())

	publishErr := retry(5, time.Second, func() error {
		if err := r.client.Channel.PublishWithContext(
			ctx,
			r.ScheduleExchange, // exchange
			key,                // routing key
			false,              // mandatory
			false,              // immediate
			amqp091.Publishing{
				ContentType:   "application/json",
				CorrelationId: msg.CorrelationID, // for tracing
				Body:          body,
				Timestamp:     time.Now(),
			},
		); err != nil {
			return wrap.Error(ctx, fmt.Errorf("failed to publish with context: %w", err))
		}

		return nil
	})

	metrics.RecordRabbitMQPublish(serviceName, key, publishErr)

	if publishErr != nil {
		return wrap.Error(ctx, publishErr)
	}

	return nil
}

// routingKey maps event names like "SCHEDULE_CREATED" to "schedule.created".
func routingKey(event string) string {
	suffix := strings.ToLower(strings.TrimPrefix(event, "SCHEDULE_"))
	return "schedule." + suffix
}
