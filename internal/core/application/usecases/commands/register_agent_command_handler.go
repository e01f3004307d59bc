package commands

import (
	"context"

	"paquexpress/internal/core/domain/model/agent"
	"paquexpress/internal/pkg/passwords"
)

// RegisterAgentCommandHandler handles the business logic for agent registration.
// Hashes the password and persists the new agent; a duplicate login surfaces as
// errs.ErrObjectAlreadyExists from the repository.
type RegisterAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewRegisterAgentCommandHandler creates a handler for agent registration.
// Requires an AgentUoWFactory for transactional persistence.
func NewRegisterAgentCommandHandler(uowFactory AgentUoWFactory) RegisterAgentCommandHandler {
	return RegisterAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the agent registration command.
// Returns the created agent so callers can render it without a follow-up read.
func (h *RegisterAgentCommandHandler) Handle(ctx context.Context, cmd RegisterAgentCommand) (*agent.Agent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := passwords.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	newAgent, err := agent.NewAgent(cmd.AgentID(), cmd.Login(), cmd.Name(), passwordHash)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AgentRepository().Add(ctx, newAgent); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newAgent, nil
}
