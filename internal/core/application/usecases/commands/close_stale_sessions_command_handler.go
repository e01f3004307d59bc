package commands

import (
	"context"
	"time"
)

// CloseStaleSessionsCommandHandler closes login sessions that outlived the
// configured ttl. Runs from the background job; agents whose sessions are
// closed simply log in again.
type CloseStaleSessionsCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewCloseStaleSessionsCommandHandler creates a handler for session cleanup.
func NewCloseStaleSessionsCommandHandler(uowFactory SessionUoWFactory) CloseStaleSessionsCommandHandler {
	return CloseStaleSessionsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle closes every open session older than the ttl and reports how many
// sessions were closed.
func (h *CloseStaleSessionsCommandHandler) Handle(ctx context.Context, cmd CloseStaleSessionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()

	now := time.Now().UTC()
	staleSessions, err := sessionRepo.GetAllOpenedBefore(ctx, now.Add(-cmd.TTL()))
	if err != nil {
		return 0, err
	}

	for _, staleSession := range staleSessions {
		if err = staleSession.Close(now); err != nil {
			return 0, err
		}

		if err = sessionRepo.Update(ctx, staleSession); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(staleSessions), nil
}
