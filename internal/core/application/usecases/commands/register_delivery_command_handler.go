package commands

import (
	"context"
	"errors"
	"time"

	"paquexpress/internal/core/domain/model/delivery"
	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/core/ports"
	"paquexpress/internal/pkg/errs"
)

// ErrParcelNotDeliverable is the single outcome for every ineligible delivery
// attempt: unknown tracking id, a parcel assigned to a different agent, or a
// parcel already delivered or cancelled. Callers cannot tell which.
var ErrParcelNotDeliverable = errors.New("parcel not found or not assigned to this agent")

// RegisterDeliveryCommandHandler handles delivery registration.
// Stores the photo, records the proof of delivery and flips the parcel to
// Delivered within one transaction.
//
// Concurrency: the parcel row is locked for the duration of the transaction,
// so two agents (or a double-tap) racing on the same parcel serialize and
// exactly one registration succeeds; the loser sees ErrParcelNotDeliverable.
type RegisterDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	photoStore ports.PhotoStore
}

// NewRegisterDeliveryCommandHandler creates a handler for delivery registration.
func NewRegisterDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	photoStore ports.PhotoStore,
) RegisterDeliveryCommandHandler {
	return RegisterDeliveryCommandHandler{
		uowFactory: uowFactory,
		photoStore: photoStore,
	}
}

// Handle processes the delivery registration command.
//
// Order of operations matters: eligibility is checked under the row lock
// first, the photo is written second, and the database writes come last so a
// storage failure never leaves a delivered parcel without its proof. If
// anything fails after the photo was written, the artifact is removed again.
func (h *RegisterDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterDeliveryCommand,
) (*delivery.ProofOfDelivery, error) {
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

	foundParcel, err := uow.ParcelRepository().GetForDelivery(ctx, cmd.TrackingID(), cmd.AgentID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrParcelNotDeliverable
	}
	if err != nil {
		return nil, err
	}

	if err = foundParcel.Deliver(); err != nil {
		return nil, ErrParcelNotDeliverable
	}

	photoPath, err := h.photoStore.Save(ctx, cmd.TrackingID().String(), cmd.PhotoName(), cmd.Photo())
	if err != nil {
		return nil, err
	}

	proof, err := h.persistDelivery(ctx, uow, foundParcel, photoPath, cmd)
	if err != nil {
		_ = h.photoStore.Remove(ctx, photoPath)
		return nil, err
	}

	return proof, nil
}

// persistDelivery performs every write that follows the photo upload, so the
// caller has a single failure point to compensate with artifact removal.
func (h *RegisterDeliveryCommandHandler) persistDelivery(
	ctx context.Context,
	uow DeliveryUoW,
	deliveredParcel *parcel.Parcel,
	photoPath string,
	cmd RegisterDeliveryCommand,
) (*delivery.ProofOfDelivery, error) {
	proof, err := delivery.NewProofOfDelivery(
		kernel.NewUUID(),
		cmd.TrackingID(),
		cmd.AgentID(),
		photoPath,
		cmd.Location(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ProofOfDeliveryRepository().Add(ctx, proof); err != nil {
		return nil, err
	}

	if err = uow.ParcelRepository().Update(ctx, deliveredParcel); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return proof, nil
}
