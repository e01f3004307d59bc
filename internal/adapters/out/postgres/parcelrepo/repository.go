package parcelrepo

import (
	"context"
	"errors"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel and its address to the database.
// A duplicate tracking id surfaces as errs.ErrObjectAlreadyExists.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
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

	// Parcels have no surrogate uuid; the owned address id stands in.
	r.tracker.TrackAggregate(aggregate.Address().ID(), aggregate)
	return nil
}

// Update saves an existing parcel to the database. The address is immutable
// once created, so only the parcel row is written.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("tracking_id = ?", dto.TrackingID).
		Updates(map[string]any{
			"status":      dto.Status,
			"agent_id":    dto.AgentID,
			"assigned_at": dto.AssignedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.Address().ID(), aggregate)
	return nil
}

// Get retrieves a parcel by tracking id, address included.
func (r *GormParcelRepository) Get(ctx context.Context, trackingID parcel.TrackingID) (*parcel.Parcel, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).
		Preload("Address").
		First(&dto, "tracking_id = ?", trackingID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", trackingID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForDelivery retrieves the parcel only if it belongs to the given agent,
// taking a row-level lock that holds until the surrounding transaction ends.
// The parcel row is locked first and the address loaded afterwards so the lock
// never extends to the shared addresses table.
func (r *GormParcelRepository) GetForDelivery(
	ctx context.Context,
	trackingID parcel.TrackingID,
	agentID kernel.UUID,
) (*parcel.Parcel, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}
	if err := agentID.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "tracking_id = ? AND agent_id = ?", trackingID.String(), agentID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", trackingID.String())
		}
		return nil, err
	}

	if err := r.db.WithContext(ctx).First(&dto.Address, "id = ?", dto.AddressID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}
