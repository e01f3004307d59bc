package parcel

import (
	"fmt"

	"paquexpress/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
// It implements a state machine with defined transitions so parcels follow
// the correct delivery workflow.
//
// State transitions:
//
//	Assigned ──┬──> Delivered
//	           │
//	EnRoute  ──┘
//
// EnRoute and Cancelled are valid members of the enumeration accepted by all
// read paths, but no operation in this service sets them; they are reachable
// only through external collaborators. Delivered is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Assigned is the initial status when a parcel is created and bound to
	// its agent.
	Assigned

	// EnRoute indicates the parcel is out for delivery. Delivery registration
	// accepts parcels in this status, though no operation here sets it.
	EnRoute

	// Delivered indicates proof of delivery has been registered.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the parcel was withdrawn. No operation in this
	// service reaches it; it exists so read paths accept externally
	// cancelled parcels.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Assigned:  "Assigned",
		EnRoute:   "En Ruta",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Assigned:  "Assigned",
		EnRoute:   "En Ruta",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is a member of the enumeration.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsEligibleForDelivery reports whether delivery registration is permitted
// from this status. Only Assigned and EnRoute parcels can be delivered;
// Delivered and Cancelled are excluded so a parcel accepts at most one
// proof of delivery.
func (s Status) IsEligibleForDelivery() bool {
	return s == Assigned || s == EnRoute
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Assigned -> Delivered
//   - EnRoute  -> Delivered
//
// Invalid transitions:
//   - Delivered -> Delivered (already delivered)
//   - Cancelled -> Delivered (withdrawn parcels cannot be delivered)
//   - Unknown   -> Delivered (invalid initial state)
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by Parcel.Deliver() to enforce state transitions.
func (s Status) Deliver() (Status, error) {
	if !s.IsEligibleForDelivery() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}
