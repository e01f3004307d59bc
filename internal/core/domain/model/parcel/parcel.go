package parcel

import (
	"errors"
	"time"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
	// through the NewParcel or RestoreParcel factory methods.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructor")
)

// Parcel represents a trackable delivery unit. It is the aggregate root that
// manages the parcel lifecycle from assignment through delivery.
//
// Parcel follows these invariants:
//   - Identity is the caller-supplied tracking id, unique across the system
//   - References exactly one Address, set at creation and immutable
//   - References exactly one assigned agent, set at creation and immutable
//     (no reassignment operation exists)
//   - Status starts at Assigned regardless of caller input and only moves
//     through Status' defined transitions
//   - Can only be created through NewParcel or RestoreParcel
type Parcel struct {
	// trackingID is the external identity of the parcel
	trackingID TrackingID

	// address is the destination, created together with the parcel
	address Address

	// agentID is the assigned agent's ID
	agentID kernel.UUID

	// status represents the current state in the parcel lifecycle
	status Status

	// assignedAt records when the parcel was bound to its agent
	assignedAt time.Time

	// isConstructed ensures the parcel was created via a constructor
	isConstructed bool
}

// NewParcel creates a new Parcel in Assigned status. The status is forced
// here and is not a parameter: callers cannot create parcels in any other
// state.
func NewParcel(trackingID TrackingID, address Address, agentID kernel.UUID, assignedAt time.Time) (*Parcel, error) {
	parcel := &Parcel{
		status:        Assigned,
		isConstructed: true,
	}

	if err := errors.Join(
		parcel.setTrackingID(trackingID),
		parcel.setAddress(address),
		parcel.setAgentID(agentID),
		parcel.setAssignedAt(assignedAt),
	); err != nil {
		return nil, err
	}

	return parcel, nil
}

// RestoreParcel reconstructs a Parcel from persistence with its stored
// status. Used by repositories only; the status must be a valid member of
// the enumeration, including the externally set EnRoute and Cancelled.
func RestoreParcel(
	trackingID TrackingID,
	address Address,
	agentID kernel.UUID,
	status Status,
	assignedAt time.Time,
) (*Parcel, error) {
	parcel, err := NewParcel(trackingID, address, agentID, assignedAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	parcel.status = status
	return parcel, nil
}

// Validate ensures the Parcel instance was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}

	return nil
}

// IsEqual compares two parcels by tracking id.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.trackingID.IsEqual(other.trackingID)
}

// TrackingID returns the parcel's external identity.
func (p *Parcel) TrackingID() TrackingID {
	return p.trackingID
}

// Address returns the destination address.
func (p *Parcel) Address() Address {
	return p.address
}

// AgentID returns the assigned agent's identifier.
func (p *Parcel) AgentID() kernel.UUID {
	return p.agentID
}

// Status returns the current status of the parcel.
func (p *Parcel) Status() Status {
	return p.status
}

// AssignedAt returns when the parcel was bound to its agent.
func (p *Parcel) AssignedAt() time.Time {
	return p.assignedAt
}

// IsAssignedTo reports whether the parcel belongs to the given agent.
func (p *Parcel) IsAssignedTo(agentID kernel.UUID) bool {
	return p.agentID.IsEqual(agentID)
}

// Deliver marks the parcel as delivered.
//
// This method enforces the following business rules:
//   - The parcel must be in Assigned or EnRoute status
//   - Delivered is a final state with no further transitions
//
// Returns an error if the parcel is not eligible for delivery. After a
// successful call, Status() reports Delivered.
func (p *Parcel) Deliver() error {
	newStatus, err := p.status.Deliver()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

func (p *Parcel) setTrackingID(trackingID TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	p.trackingID = trackingID
	return nil
}

func (p *Parcel) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	p.address = address
	return nil
}

func (p *Parcel) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	p.agentID = agentID
	return nil
}

func (p *Parcel) setAssignedAt(assignedAt time.Time) error {
	if assignedAt.IsZero() {
		return errs.NewValueIsRequiredError("assignedAt")
	}
	p.assignedAt = assignedAt
	return nil
}
