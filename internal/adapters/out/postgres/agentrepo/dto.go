// Package agentrepo provides data transfer objects and mapping functions for agent persistence.
// This package implements the repository pattern for the agent domain aggregate, handling
// the conversion between domain entities and database representations.
package agentrepo

import (
	"paquexpress/internal/core/domain/model/agent"
	"paquexpress/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AgentDTO represents the database structure for persisting agent aggregates.
// The login carries a unique index so duplicate registrations fail at the
// database level.
type AgentDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Login        string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:text;not null"`
	Active       bool      `gorm:"not null"`
}

// TableName specifies the database table name for agent entities.
// Overrides GORM's default naming convention to use "agents".
func (AgentDTO) TableName() string {
	return "agents"
}

// fromDomain converts an agent domain aggregate to its database representation.
func fromDomain(agent *agent.Agent) AgentDTO {
	return AgentDTO{
		ID:           agent.ID().Bytes(),
		Login:        agent.Login(),
		Name:         agent.Name(),
		PasswordHash: agent.PasswordHash(),
		Active:       agent.IsActive(),
	}
}

// toDomain converts a database DTO to an agent domain aggregate.
func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return agent.RestoreAgent(id, dto.Login, dto.Name, dto.PasswordHash, dto.Active)
}
