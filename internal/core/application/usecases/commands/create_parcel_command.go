package commands

import (
	"errors"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrStreetIsRequired = errors.New("street is required")
)

// CreateParcelCommand represents a request to register a parcel and assign it
// to an agent. The destination is captured as a street line plus coordinates;
// locality, city and postal code are filled in by the handler.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	trackingID  parcel.TrackingID
	agentID     kernel.UUID
	street      string
	destination kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Validates the tracking id, agent id, street and destination coordinates.
func NewCreateParcelCommand(
	trackingID parcel.TrackingID,
	agentID kernel.UUID,
	street string,
	destination kernel.GeoPoint,
) (CreateParcelCommand, error) {
	parcelCommand := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcelCommand.setTrackingID(trackingID),
		parcelCommand.setAgentID(agentID),
		parcelCommand.setStreet(street),
		parcelCommand.setDestination(destination),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return parcelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// TrackingID returns the external identity for the new parcel.
func (c CreateParcelCommand) TrackingID() parcel.TrackingID {
	return c.trackingID
}

// AgentID returns the identifier of the agent the parcel is assigned to.
func (c CreateParcelCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Street returns the destination street line.
func (c CreateParcelCommand) Street() string {
	return c.street
}

// Destination returns the delivery coordinates.
func (c CreateParcelCommand) Destination() kernel.GeoPoint {
	return c.destination
}

func (c *CreateParcelCommand) setTrackingID(trackingID parcel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}

func (c *CreateParcelCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *CreateParcelCommand) setStreet(street string) error {
	if street == "" {
		return ErrStreetIsRequired
	}

	c.street = street
	return nil
}

func (c *CreateParcelCommand) setDestination(destination kernel.GeoPoint) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	c.destination = destination
	return nil
}
