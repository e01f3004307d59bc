package ports

import (
	"context"

	"paquexpress/internal/core/domain/model/delivery"
	"paquexpress/internal/core/domain/model/parcel"
)

// ProofOfDeliveryRepository defines the persistence contract for proof of
// delivery records. Proofs are write-once: there is no update or delete.
type ProofOfDeliveryRepository interface {
	// Add persists a new proof of delivery record.
	// Fails when a proof for the same parcel already exists.
	Add(ctx context.Context, aggregate *delivery.ProofOfDelivery) error

	// Get retrieves the proof recorded for the given parcel.
	Get(ctx context.Context, trackingID parcel.TrackingID) (*delivery.ProofOfDelivery, error)
}
