// Package proofrepo provides data transfer objects and mapping functions for
// proof of delivery persistence. Proof rows are write-once.
package proofrepo

import (
	"time"

	"paquexpress/internal/core/domain/model/delivery"
	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ProofOfDeliveryDTO represents the database structure for persisting proofs.
// The tracking id carries a unique index: at most one proof per parcel.
type ProofOfDeliveryDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	TrackingID  string      `gorm:"type:varchar(50);not null;uniqueIndex"`
	AgentID     uuid.UUID   `gorm:"type:uuid;not null;index"`
	PhotoPath   string      `gorm:"type:text;not null"`
	Location    GeoPointDTO `gorm:"embedded;embeddedPrefix:gps_"`
	DeliveredAt time.Time   `gorm:"not null"`
}

// TableName specifies the database table name for proof entities.
// Overrides GORM's default naming convention to use "delivery_proofs".
func (ProofOfDeliveryDTO) TableName() string {
	return "delivery_proofs"
}

// GeoPointDTO represents embedded WGS84 coordinates.
type GeoPointDTO struct {
	Latitude  float64 `gorm:"type:double precision;not null"`
	Longitude float64 `gorm:"type:double precision;not null"`
}

// fromDomain converts a proof domain aggregate to its database representation.
func fromDomain(proof *delivery.ProofOfDelivery) ProofOfDeliveryDTO {
	return ProofOfDeliveryDTO{
		ID:         proof.ID().Bytes(),
		TrackingID: proof.TrackingID().String(),
		AgentID:    proof.AgentID().Bytes(),
		PhotoPath:  proof.PhotoPath(),
		Location: GeoPointDTO{
			Latitude:  proof.Location().Latitude(),
			Longitude: proof.Location().Longitude(),
		},
		DeliveredAt: proof.DeliveredAt(),
	}
}

// toDomain converts a database DTO to a proof domain aggregate.
func toDomain(dto ProofOfDeliveryDTO) (*delivery.ProofOfDelivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingID, err := parcel.NewTrackingID(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	agentID, err := kernel.UUIDFromBytes(dto.AgentID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreProofOfDelivery(id, trackingID, agentID, dto.PhotoPath, location, dto.DeliveredAt)
}
