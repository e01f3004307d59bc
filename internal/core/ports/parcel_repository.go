package ports

import (
	"context"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// A parcel is stored together with its destination address.
type ParcelRepository interface {
	// Add persists a new parcel aggregate and its address to storage.
	// Fails when a parcel with the same tracking id already exists.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its tracking id.
	Get(ctx context.Context, trackingID parcel.TrackingID) (*parcel.Parcel, error)

	// GetForDelivery retrieves the parcel with the given tracking id only if it
	// is assigned to the given agent, locking the row for the duration of the
	// surrounding transaction so concurrent delivery registrations serialize.
	GetForDelivery(ctx context.Context, trackingID parcel.TrackingID, agentID kernel.UUID) (*parcel.Parcel, error)
}
