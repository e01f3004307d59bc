package commands

import (
	"context"
	"errors"
	"time"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/session"
	"paquexpress/internal/pkg/errs"
	"paquexpress/internal/pkg/passwords"
)

// ErrInvalidCredentials is the single outcome for every failed login: unknown
// login, wrong password or a deactivated account. Callers cannot tell which.
var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenIssuer mints the signed token stored on the session and handed to the
// agent's device.
type TokenIssuer interface {
	Issue(agentID string) (string, error)
}

// LoginResult carries what the transport layer needs to answer a successful
// login without another read.
type LoginResult struct {
	AgentID   kernel.UUID
	AgentName string
	Token     string
}

// LoginCommandHandler handles agent authentication.
// Verifies credentials, mints a session token and records the session.
//
// Example:
//
//	handler := NewLoginCommandHandler(uowFactory, signer)
//	cmd, _ := NewLoginCommand("test_agent", "password123")
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrInvalidCredentials) {
//	    // respond 401 without detail
//	}
type LoginCommandHandler struct {
	uowFactory AuthUoWFactory
	issuer     TokenIssuer
}

// NewLoginCommandHandler creates a handler for agent authentication.
func NewLoginCommandHandler(uowFactory AuthUoWFactory, issuer TokenIssuer) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		issuer:     issuer,
	}
}

// Handle processes the login command.
// Looks up the agent by login, verifies the password hash and, on success,
// persists a new open session carrying the minted token. All failure modes
// collapse into ErrInvalidCredentials.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	foundAgent, err := uow.AgentRepository().GetByLogin(ctx, cmd.Login())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	matches, err := passwords.Verify(cmd.Password(), foundAgent.PasswordHash())
	if err != nil {
		return nil, err
	}
	if !matches || !foundAgent.IsActive() {
		return nil, ErrInvalidCredentials
	}

	token, err := h.issuer.Issue(foundAgent.ID().String())
	if err != nil {
		return nil, err
	}

	newSession, err := session.NewSession(kernel.NewUUID(), foundAgent.ID(), token, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.SessionRepository().Add(ctx, newSession); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &LoginResult{
		AgentID:   foundAgent.ID(),
		AgentName: foundAgent.Name(),
		Token:     token,
	}, nil
}
