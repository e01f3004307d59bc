package delivery

import (
	"errors"
	"time"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/pkg/errs"
)

var (
	// ErrProofIsNotConstructed is returned when a ProofOfDelivery instance was
	// not created through the NewProofOfDelivery or RestoreProofOfDelivery
	// factory methods.
	ErrProofIsNotConstructed = errors.New(
		"ProofOfDelivery must be created via NewProofOfDelivery or RestoreProofOfDelivery constructor",
	)
)

// ProofOfDelivery is the immutable record created when an agent registers a
// delivery: a reference to the stored photo artifact, the GPS fix at the
// moment of handover and the delivery timestamp.
//
// ProofOfDelivery follows these invariants:
//   - At most one proof exists per parcel (enforced by the storage layer and
//     by the parcel status machine)
//   - References the parcel it proves and the agent who performed the delivery
//   - Never updated or deleted once created
type ProofOfDelivery struct {
	// id is the unique identifier of the proof
	id kernel.UUID

	// trackingID references the delivered parcel
	trackingID parcel.TrackingID

	// agentID references the agent who performed the delivery
	agentID kernel.UUID

	// photoPath is the relative path of the stored photo artifact
	photoPath string

	// location is the GPS fix captured at handover
	location kernel.GeoPoint

	// deliveredAt is the delivery timestamp
	deliveredAt time.Time

	// isConstructed ensures the proof was created via a constructor
	isConstructed bool
}

// NewProofOfDelivery creates a validated ProofOfDelivery.
func NewProofOfDelivery(
	id kernel.UUID,
	trackingID parcel.TrackingID,
	agentID kernel.UUID,
	photoPath string,
	location kernel.GeoPoint,
	deliveredAt time.Time,
) (*ProofOfDelivery, error) {
	proof := &ProofOfDelivery{
		isConstructed: true,
	}

	if err := errors.Join(
		proof.setID(id),
		proof.setTrackingID(trackingID),
		proof.setAgentID(agentID),
		proof.setPhotoPath(photoPath),
		proof.setLocation(location),
		proof.setDeliveredAt(deliveredAt),
	); err != nil {
		return nil, err
	}

	return proof, nil
}

// RestoreProofOfDelivery reconstructs a proof from persistence.
// Used by repositories only.
func RestoreProofOfDelivery(
	id kernel.UUID,
	trackingID parcel.TrackingID,
	agentID kernel.UUID,
	photoPath string,
	location kernel.GeoPoint,
	deliveredAt time.Time,
) (*ProofOfDelivery, error) {
	return NewProofOfDelivery(id, trackingID, agentID, photoPath, location, deliveredAt)
}

// Validate ensures the proof was properly constructed.
func (p *ProofOfDelivery) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProofIsNotConstructed
	}

	return nil
}

// ID returns the proof's unique identifier.
func (p *ProofOfDelivery) ID() kernel.UUID {
	return p.id
}

// TrackingID returns the delivered parcel's tracking id.
func (p *ProofOfDelivery) TrackingID() parcel.TrackingID {
	return p.trackingID
}

// AgentID returns the identifier of the agent who performed the delivery.
func (p *ProofOfDelivery) AgentID() kernel.UUID {
	return p.agentID
}

// PhotoPath returns the relative path of the stored photo artifact.
func (p *ProofOfDelivery) PhotoPath() string {
	return p.photoPath
}

// Location returns the GPS fix captured at handover.
func (p *ProofOfDelivery) Location() kernel.GeoPoint {
	return p.location
}

// DeliveredAt returns the delivery timestamp.
func (p *ProofOfDelivery) DeliveredAt() time.Time {
	return p.deliveredAt
}

func (p *ProofOfDelivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *ProofOfDelivery) setTrackingID(trackingID parcel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	p.trackingID = trackingID
	return nil
}

func (p *ProofOfDelivery) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	p.agentID = agentID
	return nil
}

func (p *ProofOfDelivery) setPhotoPath(photoPath string) error {
	if photoPath == "" {
		return errs.NewValueIsRequiredError("photoPath")
	}
	p.photoPath = photoPath
	return nil
}

func (p *ProofOfDelivery) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	p.location = location
	return nil
}

func (p *ProofOfDelivery) setDeliveredAt(deliveredAt time.Time) error {
	if deliveredAt.IsZero() {
		return errs.NewValueIsRequiredError("deliveredAt")
	}
	p.deliveredAt = deliveredAt
	return nil
}
