// Package sessionrepo provides data transfer objects and mapping functions for
// login session persistence.
package sessionrepo

import (
	"time"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/session"

	"github.com/google/uuid"
)

// SessionDTO represents the database structure for persisting login sessions.
// ClosedAt is indexed because the cleanup job filters on open sessions.
type SessionDTO struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AgentID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Token    string     `gorm:"type:text;not null"`
	OpenedAt time.Time  `gorm:"not null"`
	ClosedAt *time.Time `gorm:"index"`
}

// TableName specifies the database table name for session entities.
// Overrides GORM's default naming convention to use "sessions".
func (SessionDTO) TableName() string {
	return "sessions"
}

// fromDomain converts a session domain aggregate to its database representation.
func fromDomain(session *session.Session) SessionDTO {
	return SessionDTO{
		ID:       session.ID().Bytes(),
		AgentID:  session.AgentID().Bytes(),
		Token:    session.Token(),
		OpenedAt: session.OpenedAt(),
		ClosedAt: session.ClosedAt(),
	}
}

// toDomain converts a database DTO to a session domain aggregate.
func toDomain(dto SessionDTO) (*session.Session, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	agentID, err := kernel.UUIDFromBytes(dto.AgentID[:])
	if err != nil {
		return nil, err
	}

	return session.RestoreSession(id, agentID, dto.Token, dto.OpenedAt, dto.ClosedAt)
}
