package proofrepo

import (
	"context"
	"errors"

	"paquexpress/internal/core/domain/model/delivery"
	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProofRepository implements ProofOfDeliveryRepository using GORM.
type GormProofRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProofRepository creates a new GORM proof of delivery repository.
func NewGormProofRepository(db *gorm.DB, tracker aggregateTracker) *GormProofRepository {
	return &GormProofRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new proof of delivery to the database.
// A second proof for the same parcel surfaces as errs.ErrObjectAlreadyExists.
func (r *GormProofRepository) Add(ctx context.Context, aggregate *delivery.ProofOfDelivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("trackingId", aggregate.TrackingID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves the proof recorded for the given parcel.
func (r *GormProofRepository) Get(ctx context.Context, trackingID parcel.TrackingID) (*delivery.ProofOfDelivery, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}

	var dto ProofOfDeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_id = ?", trackingID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("proof", trackingID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
