package app

import (
	"context"
	"errors"

	"courier-chat/internal/frontend"
	"courier-chat/internal/logx"
	"courier-chat/internal/transport/kafka"
)

type updatesWorkflow interface {
	Handle(ctx context.Context, sessionID int64, intent frontend.Intent) []frontend.Render
}

type rendersPublisher interface {
	Publish(sessionID int64, renders []frontend.Render) error
}

// makeUpdatesHandler turns bus updates into workflow calls and publishes the
// resulting renders. Unknown updates are acknowledged, not retried.
func makeUpdatesHandler(wf updatesWorkflow, producer rendersPublisher, logger logx.Logger) kafka.HandleFunc {
	return func(ctx context.Context, u frontend.Update) error {
		intent, err := frontend.Decode(u)
		if err != nil {
			if errors.Is(err, frontend.ErrUnknownUpdate) {
				logger.Debug("ignoring unknown update",
					logx.Int64("session_id", u.SessionID),
					logx.Err(err),
				)
				return nil
			}
			return err
		}

		renders := wf.Handle(ctx, u.SessionID, intent)
		return producer.Publish(u.SessionID, renders)
	}
}
