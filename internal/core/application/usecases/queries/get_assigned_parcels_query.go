// Package queries contains read-side operations over the relational store.
// Query handlers bypass the domain repositories and read with raw SQL,
// returning flat response models shaped for the transport layer.
package queries

import (
	"errors"
	"time"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/pkg/guard"
)

var (
	ErrGetAssignedParcelsQueryIsNotConstructed = errors.New(
		"GetAssignedParcelsQuery must be created via NewGetAssignedParcelsQuery constructor",
	)
)

// GetAssignedParcelsQuery retrieves the parcels an agent still has to deliver:
// everything assigned to the agent that is not yet delivered or cancelled.
//
// Example:
//
//	query, err := NewGetAssignedParcelsQuery(agentID)
//	if err != nil {
//	    return fmt.Errorf("invalid agent id: %w", err)
//	}
//
//	parcels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get assigned parcels: %w", err)
//	}
type GetAssignedParcelsQuery struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignedParcelsQuery creates a query for an agent's pending workload.
func NewGetAssignedParcelsQuery(agentID kernel.UUID) (GetAssignedParcelsQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetAssignedParcelsQuery{}, err
	}

	return GetAssignedParcelsQuery{
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignedParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedParcelsQueryIsNotConstructed)
}

// AgentID returns the agent whose workload is being queried.
func (q GetAssignedParcelsQuery) AgentID() kernel.UUID {
	return q.agentID
}

// GetAssignedParcelsQueryResponse represents one pending parcel together with
// its destination address.
type GetAssignedParcelsQueryResponse struct {
	TrackingID parcel.TrackingID
	Status     parcel.Status
	AssignedAt time.Time
	Address    AddressResponse
}

// AddressResponse represents the destination address of a pending parcel.
type AddressResponse struct {
	ID          kernel.UUID
	Street      string
	Locality    string
	City        string
	PostalCode  string
	Destination kernel.GeoPoint
}
