package agent

import (
	"errors"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/pkg/errs"
)

var (
	// ErrAgentIsNotConstructed is returned when an Agent instance was not created
	// through the NewAgent or RestoreAgent factory methods.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent or RestoreAgent constructor")
)

// Agent represents a courier identity capable of being assigned parcels.
//
// Agent follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty unique login and a display name
//   - Must carry a credential hash (never the plain password)
//   - Can only be created through NewAgent or RestoreAgent
//
// The tracking core never mutates an Agent after registration; the active
// flag exists so operators can disable an account without deleting its
// delivery history.
type Agent struct {
	// id is the unique identifier for the agent
	id kernel.UUID

	// login is the unique handle the agent authenticates with
	login string

	// name is the agent's display name
	name string

	// passwordHash is the argon2id PHC-encoded credential hash
	passwordHash string

	// active indicates whether the account may log in
	active bool

	// isConstructed ensures the agent was created via a constructor
	isConstructed bool
}

// NewAgent creates a new active Agent with validation. This is the entry
// point for registration; the password must already be hashed by the caller.
func NewAgent(id kernel.UUID, login, name, passwordHash string) (*Agent, error) {
	agent := &Agent{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		agent.setID(id),
		agent.setLogin(login),
		agent.setName(name),
		agent.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return agent, nil
}

// RestoreAgent reconstructs an Agent from persistence, including its
// active flag. Used by repositories only.
func RestoreAgent(id kernel.UUID, login, name, passwordHash string, active bool) (*Agent, error) {
	agent, err := NewAgent(id, login, name, passwordHash)
	if err != nil {
		return nil, err
	}

	agent.active = active
	return agent, nil
}

// Validate ensures the Agent instance was properly constructed.
func (a *Agent) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAgentIsNotConstructed
	}

	return nil
}

// IsEqual compares two agents by their unique identifiers.
func (a *Agent) IsEqual(other *Agent) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the agent's unique identifier.
func (a *Agent) ID() kernel.UUID {
	return a.id
}

// Login returns the agent's unique login handle.
func (a *Agent) Login() string {
	return a.login
}

// Name returns the agent's display name.
func (a *Agent) Name() string {
	return a.name
}

// PasswordHash returns the stored credential hash.
func (a *Agent) PasswordHash() string {
	return a.passwordHash
}

// IsActive reports whether the account may log in.
func (a *Agent) IsActive() bool {
	return a.active
}

func (a *Agent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Agent) setLogin(login string) error {
	if login == "" {
		return errs.NewValueIsRequiredError("login")
	}
	a.login = login
	return nil
}

func (a *Agent) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Agent) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	a.passwordHash = passwordHash
	return nil
}
