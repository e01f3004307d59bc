// Package ports defines repository and storage interfaces for the tracking core.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"paquexpress/internal/core/domain/model/agent"
	"paquexpress/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for agent aggregates.
type AgentRepository interface {
	// Add persists a new agent aggregate to storage.
	// Fails when an agent with the same login already exists.
	Add(ctx context.Context, aggregate *agent.Agent) error

	// Get retrieves an agent aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)

	// GetByLogin retrieves an agent aggregate by its unique login name.
	// Used by the login flow to resolve credentials.
	GetByLogin(ctx context.Context, login string) (*agent.Agent, error)
}
