package commands

import (
	"context"
	"errors"
	"time"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/pkg/errs"
)

// The intake flow only captures the street line and coordinates; the remaining
// address fields are filled with the depot's service-area defaults.
const (
	DefaultLocality   = "Colonia Central"
	DefaultCity       = "Ciudad Ejemplo"
	DefaultPostalCode = "10001"
)

// CreateParcelCommandHandler handles parcel registration.
// Verifies the assigned agent exists, rejects duplicate tracking ids, and
// persists the parcel together with its freshly created address in one
// transaction.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel registration.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel creation command.
// An unknown agent surfaces as errs.ErrObjectNotFound; a duplicate tracking id
// is rejected with errs.ErrObjectAlreadyExists before any write happens.
// Returns the created parcel so callers can render it with its address.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.AgentRepository().Get(ctx, cmd.AgentID()); err != nil {
		return nil, err
	}

	parcelRepo := uow.ParcelRepository()

	_, err := parcelRepo.Get(ctx, cmd.TrackingID())
	if err == nil {
		return nil, errs.NewObjectAlreadyExistsError("trackingID", cmd.TrackingID().String())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	address, err := parcel.NewAddress(
		kernel.NewUUID(),
		cmd.Street(),
		DefaultLocality,
		DefaultCity,
		DefaultPostalCode,
		cmd.Destination(),
	)
	if err != nil {
		return nil, err
	}

	newParcel, err := parcel.NewParcel(cmd.TrackingID(), address, cmd.AgentID(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = parcelRepo.Add(ctx, newParcel); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newParcel, nil
}
