package queries

import (
	"context"
	"time"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAssignedParcelsQueryHandler retrieves an agent's pending parcels from the
// database. An agent id that matches nothing, including an unknown agent,
// yields an empty slice rather than an error.
//
// Example:
//
//	handler := NewGetAssignedParcelsQueryHandler(db)
//	query, _ := NewGetAssignedParcelsQuery(agentID)
//
//	parcels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get assigned parcels: %v", err)
//	    return err
//	}
//
//	fmt.Printf("%d parcels to deliver\n", len(parcels))
type GetAssignedParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignedParcelsQueryHandler creates a handler for pending parcel queries.
// Requires a GORM database connection for query execution.
func NewGetAssignedParcelsQueryHandler(db *gorm.DB) GetAssignedParcelsQueryHandler {
	return GetAssignedParcelsQueryHandler{db: db}
}

// Handle executes the query to retrieve the agent's pending parcels.
// Returns parcels in Assigned or EnRoute status joined with their addresses,
// sorted by assignment time for a stable route order.
func (h GetAssignedParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetAssignedParcelsQuery,
) ([]GetAssignedParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetAssignedParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.tracking_id,
			p.status,
			p.assigned_at,
			a.id,
			a.street,
			a.locality,
			a.city,
			a.postal_code,
			a.destination_latitude,
			a.destination_longitude
		FROM parcels p
		JOIN addresses a ON a.id = p.address_id
		WHERE p.agent_id = ? AND p.status IN (?, ?)
		ORDER BY p.assigned_at, p.tracking_id
	`, query.AgentID().Bytes(), parcel.Assigned, parcel.EnRoute).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var parcelResp GetAssignedParcelsQueryResponse
		var rawTrackingID string
		var status int
		var assignedAt time.Time
		var addressID uuid.UUID
		var latitude, longitude float64

		err = rows.Scan(
			&rawTrackingID,
			&status,
			&assignedAt,
			&addressID,
			&parcelResp.Address.Street,
			&parcelResp.Address.Locality,
			&parcelResp.Address.City,
			&parcelResp.Address.PostalCode,
			&latitude,
			&longitude,
		)
		if err != nil {
			return nil, err
		}

		trackingID, idErr := parcel.NewTrackingID(rawTrackingID)
		if idErr != nil {
			return nil, idErr
		}
		parcelResp.TrackingID = trackingID
		parcelResp.Status = parcel.Status(status)
		parcelResp.AssignedAt = assignedAt

		id, idErr := kernel.UUIDFromBytes(addressID[:])
		if idErr != nil {
			return nil, idErr
		}
		parcelResp.Address.ID = id

		destination, geoErr := kernel.NewGeoPoint(latitude, longitude)
		if geoErr != nil {
			return nil, geoErr
		}
		parcelResp.Address.Destination = destination

		parcels = append(parcels, parcelResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
