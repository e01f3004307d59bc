package commands

import (
	"errors"
	"time"

	"paquexpress/internal/pkg/guard"
)

var (
	ErrCloseStaleSessionsCommandIsNotConstructed = errors.New(
		"CloseStaleSessionsCommand must be created via NewCloseStaleSessionsCommand constructor",
	)
	ErrTTLIsInvalid = errors.New("ttl must be greater than 0")
)

// CloseStaleSessionsCommand represents a request to close every session that
// has been open longer than the given ttl.
type CloseStaleSessionsCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewCloseStaleSessionsCommand creates a command to close stale sessions.
func NewCloseStaleSessionsCommand(ttl time.Duration) (CloseStaleSessionsCommand, error) {
	sessionsCommand := CloseStaleSessionsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := sessionsCommand.setTTL(ttl); err != nil {
		return CloseStaleSessionsCommand{}, err
	}

	return sessionsCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseStaleSessionsCommand) Validate() error {
	return c.guard.Validate(ErrCloseStaleSessionsCommandIsNotConstructed)
}

// TTL returns how long a session may stay open.
func (c CloseStaleSessionsCommand) TTL() time.Duration {
	return c.ttl
}

func (c *CloseStaleSessionsCommand) setTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return ErrTTLIsInvalid
	}

	c.ttl = ttl
	return nil
}
