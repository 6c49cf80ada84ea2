package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/account-service/internal/events"
)

// StartAuditWorker subscribes an audit logger to account lifecycle events so
// every successful admin mutation leaves an operator-visible trail.
func StartAuditWorker(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}
	audit := logger.Named("audit")

	handler := func(_ context.Context, event events.Event) error {
		audit.Info("account event",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.String("account_id", event.AccountID),
			zap.String("actor_id", event.Actor.AccountID),
			zap.Any("payload", event.Payload),
		)
		return nil
	}

	dispatcher.Subscribe(events.EventAccountRoleChanged, handler)
	dispatcher.Subscribe(events.EventAccountStatusChanged, handler)
	dispatcher.Subscribe(events.EventAccountDeactivated, handler)
}
