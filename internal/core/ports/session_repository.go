package ports

import (
	"context"
	"time"

	"paquexpress/internal/core/domain/model/session"
)

// SessionRepository defines the persistence contract for login sessions.
type SessionRepository interface {
	// Add persists a new session aggregate to storage.
	Add(ctx context.Context, aggregate *session.Session) error

	// GetAllOpenedBefore retrieves every session that is still open and was
	// opened before the given cutoff. Used by the stale session cleanup job.
	GetAllOpenedBefore(ctx context.Context, cutoff time.Time) ([]*session.Session, error)

	// Update persists changes to an existing session aggregate.
	Update(ctx context.Context, aggregate *session.Session) error
}
