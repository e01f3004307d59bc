// Package session contains the Session aggregate tracking an agent's signed
// login token and its open/closed window. The tracking core only creates
// sessions on login and closes stale ones from the cleanup job; token
// verification itself is the auth collaborator's concern.
package session

import (
	"errors"
	"time"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/pkg/errs"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session instance was not
	// created through the NewSession or RestoreSession factory methods.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession or RestoreSession constructor")

	// ErrSessionAlreadyClosed is returned when closing a session twice.
	ErrSessionAlreadyClosed = errors.New("session is already closed")
)

// Session records one login of an agent: the signed token that was issued
// and when the session was opened and, eventually, closed.
type Session struct {
	// id is the unique identifier of the session
	id kernel.UUID

	// agentID references the logged-in agent
	agentID kernel.UUID

	// token is the signed session token issued on login
	token string

	// openedAt is when the session started
	openedAt time.Time

	// closedAt is when the session ended; nil while open
	closedAt *time.Time

	// isConstructed ensures the session was created via a constructor
	isConstructed bool
}

// NewSession creates an open Session for the given agent and token.
func NewSession(id, agentID kernel.UUID, token string, openedAt time.Time) (*Session, error) {
	session := &Session{
		isConstructed: true,
	}

	if err := errors.Join(
		session.setID(id),
		session.setAgentID(agentID),
		session.setToken(token),
		session.setOpenedAt(openedAt),
	); err != nil {
		return nil, err
	}

	return session, nil
}

// RestoreSession reconstructs a Session from persistence, including its
// closed timestamp. Used by repositories only.
func RestoreSession(id, agentID kernel.UUID, token string, openedAt time.Time, closedAt *time.Time) (*Session, error) {
	session, err := NewSession(id, agentID, token, openedAt)
	if err != nil {
		return nil, err
	}

	session.closedAt = closedAt
	return session, nil
}

// Validate ensures the Session instance was properly constructed.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}

	return nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// AgentID returns the logged-in agent's identifier.
func (s *Session) AgentID() kernel.UUID {
	return s.agentID
}

// Token returns the signed session token.
func (s *Session) Token() string {
	return s.token
}

// OpenedAt returns when the session started.
func (s *Session) OpenedAt() time.Time {
	return s.openedAt
}

// ClosedAt returns when the session ended, or nil while it is open.
func (s *Session) ClosedAt() *time.Time {
	return s.closedAt
}

// IsOpen reports whether the session has not been closed yet.
func (s *Session) IsOpen() bool {
	return s.closedAt == nil
}

// Close ends the session at the given time.
// Returns ErrSessionAlreadyClosed when called on a closed session.
func (s *Session) Close(at time.Time) error {
	if s.closedAt != nil {
		return ErrSessionAlreadyClosed
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("closedAt")
	}

	s.closedAt = &at
	return nil
}

func (s *Session) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Session) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	s.agentID = agentID
	return nil
}

func (s *Session) setToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}
	s.token = token
	return nil
}

func (s *Session) setOpenedAt(openedAt time.Time) error {
	if openedAt.IsZero() {
		return errs.NewValueIsRequiredError("openedAt")
	}
	s.openedAt = openedAt
	return nil
}
