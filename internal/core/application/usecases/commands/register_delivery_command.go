package commands

import (
	"errors"
	"io"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/pkg/guard"
)

var (
	ErrRegisterDeliveryCommandIsNotConstructed = errors.New(
		"RegisterDeliveryCommand must be created via NewRegisterDeliveryCommand constructor",
	)
	ErrPhotoIsRequired     = errors.New("photo content is required")
	ErrPhotoNameIsRequired = errors.New("photo file name is required")
)

// RegisterDeliveryCommand represents a request to record a proof of delivery:
// which parcel, which agent, the GPS fix and the photo to store.
type RegisterDeliveryCommand struct { //nolint:recvcheck //using for validation
	trackingID parcel.TrackingID
	agentID    kernel.UUID
	location   kernel.GeoPoint
	photoName  string
	photo      io.Reader

	guard guard.ConstructorGuard
}

// NewRegisterDeliveryCommand creates a command to register a delivery.
// The photo reader is consumed once by the handler; callers must not reuse it.
func NewRegisterDeliveryCommand(
	trackingID parcel.TrackingID,
	agentID kernel.UUID,
	location kernel.GeoPoint,
	photoName string,
	photo io.Reader,
) (RegisterDeliveryCommand, error) {
	deliveryCommand := RegisterDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliveryCommand.setTrackingID(trackingID),
		deliveryCommand.setAgentID(agentID),
		deliveryCommand.setLocation(location),
		deliveryCommand.setPhoto(photoName, photo),
	); err != nil {
		return RegisterDeliveryCommand{}, err
	}

	return deliveryCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDeliveryCommandIsNotConstructed)
}

// TrackingID returns the parcel being delivered.
func (c RegisterDeliveryCommand) TrackingID() parcel.TrackingID {
	return c.trackingID
}

// AgentID returns the agent registering the delivery.
func (c RegisterDeliveryCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Location returns the GPS fix captured at handover.
func (c RegisterDeliveryCommand) Location() kernel.GeoPoint {
	return c.location
}

// PhotoName returns the original file name of the uploaded photo.
func (c RegisterDeliveryCommand) PhotoName() string {
	return c.photoName
}

// Photo returns the photo content. Single use.
func (c RegisterDeliveryCommand) Photo() io.Reader {
	return c.photo
}

func (c *RegisterDeliveryCommand) setTrackingID(trackingID parcel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}

func (c *RegisterDeliveryCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *RegisterDeliveryCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *RegisterDeliveryCommand) setPhoto(photoName string, photo io.Reader) error {
	if photoName == "" {
		return ErrPhotoNameIsRequired
	}
	if photo == nil {
		return ErrPhotoIsRequired
	}

	c.photoName = photoName
	c.photo = photo
	return nil
}
