package commands

import (
	"errors"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/pkg/guard"
)

var (
	ErrRegisterAgentCommandIsNotConstructed = errors.New(
		"RegisterAgentCommand must be created via NewRegisterAgentCommand constructor",
	)
	ErrLoginIsRequired    = errors.New("login is required")
	ErrNameIsRequired     = errors.New("name is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// RegisterAgentCommand represents a request to register a new delivery agent.
// Carries the plain password; hashing happens in the handler so the credential
// derivation stays in one place.
type RegisterAgentCommand struct { //nolint:recvcheck //using for validation
	agentID  kernel.UUID
	login    string
	name     string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterAgentCommand creates a command to register a new agent.
// Validates that the agent ID is valid and login, name and password are not empty.
func NewRegisterAgentCommand(agentID kernel.UUID, login, name, password string) (RegisterAgentCommand, error) {
	agentCommand := RegisterAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		agentCommand.setAgentID(agentID),
		agentCommand.setLogin(login),
		agentCommand.setName(name),
		agentCommand.setPassword(password),
	); err != nil {
		return RegisterAgentCommand{}, err
	}

	return agentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAgentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAgentCommandIsNotConstructed)
}

// AgentID returns the unique identifier for the new agent.
func (c RegisterAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Login returns the unique login handle.
func (c RegisterAgentCommand) Login() string {
	return c.login
}

// Name returns the agent's display name.
func (c RegisterAgentCommand) Name() string {
	return c.name
}

// Password returns the plain password to be hashed by the handler.
func (c RegisterAgentCommand) Password() string {
	return c.password
}

func (c *RegisterAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *RegisterAgentCommand) setLogin(login string) error {
	if login == "" {
		return ErrLoginIsRequired
	}

	c.login = login
	return nil
}

func (c *RegisterAgentCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterAgentCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
