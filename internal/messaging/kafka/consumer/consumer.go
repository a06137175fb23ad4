package consumer

import (
	"context"
	"encoding/json"

	"go-hrm/internal/bootstrap"
	"go-hrm/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle drains employee lifecycle events into the audit
// trail. Malformed messages are committed and dropped so they cannot wedge
// the partition.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		auditLogger.Log(ctx, bootstrap.AuditLog{
			Action:  event.EventType,
			Message: "Employee lifecycle event received",
			Meta: map[string]any{
				"employee_id": event.EmployeeID,
				"email":       event.Email,
				"occurred_at": event.OccurredAt,
				"partition":   msg.Partition,
				"offset":      msg.Offset,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("employee lifecycle event processed",
			zap.String("event_type", event.EventType),
			zap.Int("employee_id", event.EmployeeID),
		)
	}
}
