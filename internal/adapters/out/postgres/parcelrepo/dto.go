// Package parcelrepo provides data transfer objects and mapping functions for parcel persistence.
// A parcel row references its address row; both are written by this repository
// so the pair commits or rolls back together.
package parcelrepo

import (
	"time"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// The tracking id is the primary key; there is no surrogate id.
type ParcelDTO struct {
	TrackingID string     `gorm:"type:varchar(50);primaryKey"`
	AddressID  uuid.UUID  `gorm:"type:uuid;not null"`
	Address    AddressDTO `gorm:"foreignKey:AddressID"`
	AgentID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status     int        `gorm:"type:int;not null;index"`
	AssignedAt time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for parcel entities.
// Overrides GORM's default naming convention to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// AddressDTO represents the database structure for persisting destination addresses.
type AddressDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Street      string      `gorm:"type:varchar(255);not null"`
	Locality    string      `gorm:"type:varchar(100);not null"`
	City        string      `gorm:"type:varchar(100);not null"`
	PostalCode  string      `gorm:"type:varchar(10);not null"`
	Destination GeoPointDTO `gorm:"embedded;embeddedPrefix:destination_"`
}

// TableName specifies the database table name for address entities.
// Overrides GORM's default naming convention to use "addresses".
func (AddressDTO) TableName() string {
	return "addresses"
}

// GeoPointDTO represents embedded WGS84 coordinates.
type GeoPointDTO struct {
	Latitude  float64 `gorm:"type:double precision;not null"`
	Longitude float64 `gorm:"type:double precision;not null"`
}

// fromDomain converts a parcel domain aggregate to its database representation,
// including the owned address row.
func fromDomain(parcel *parcel.Parcel) ParcelDTO {
	address := parcel.Address()

	return ParcelDTO{
		TrackingID: parcel.TrackingID().String(),
		AddressID:  address.ID().Bytes(),
		Address: AddressDTO{
			ID:         address.ID().Bytes(),
			Street:     address.Street(),
			Locality:   address.Locality(),
			City:       address.City(),
			PostalCode: address.PostalCode(),
			Destination: GeoPointDTO{
				Latitude:  address.Destination().Latitude(),
				Longitude: address.Destination().Longitude(),
			},
		},
		AgentID:    parcel.AgentID().Bytes(),
		Status:     int(parcel.Status()),
		AssignedAt: parcel.AssignedAt(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
// Reconstructs the aggregate with its stored status using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	trackingID, err := parcel.NewTrackingID(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	address, err := addressToDomain(dto.Address)
	if err != nil {
		return nil, err
	}

	agentID, err := kernel.UUIDFromBytes(dto.AgentID[:])
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(trackingID, address, agentID, parcel.Status(dto.Status), dto.AssignedAt)
}

// addressToDomain converts an address DTO to its domain value.
func addressToDomain(dto AddressDTO) (parcel.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return parcel.Address{}, err
	}

	destination, err := kernel.NewGeoPoint(dto.Destination.Latitude, dto.Destination.Longitude)
	if err != nil {
		return parcel.Address{}, err
	}

	return parcel.NewAddress(id, dto.Street, dto.Locality, dto.City, dto.PostalCode, destination)
}
