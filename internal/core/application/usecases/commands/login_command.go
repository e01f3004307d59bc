package commands

import (
	"errors"

	"paquexpress/internal/pkg/guard"
)

var (
	ErrLoginCommandIsNotConstructed = errors.New(
		"LoginCommand must be created via NewLoginCommand constructor",
	)
)

// LoginCommand represents an authentication attempt with agent credentials.
type LoginCommand struct { //nolint:recvcheck //using for validation
	login    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a command to authenticate an agent.
func NewLoginCommand(login, password string) (LoginCommand, error) {
	loginCommand := LoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loginCommand.setLogin(login),
		loginCommand.setPassword(password),
	); err != nil {
		return LoginCommand{}, err
	}

	return loginCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Login returns the login handle being authenticated.
func (c LoginCommand) Login() string {
	return c.login
}

// Password returns the plain password to verify.
func (c LoginCommand) Password() string {
	return c.password
}

func (c *LoginCommand) setLogin(login string) error {
	if login == "" {
		return ErrLoginIsRequired
	}

	c.login = login
	return nil
}

func (c *LoginCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
