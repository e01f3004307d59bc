package parcel

import (
	"paquexpress/internal/pkg/errs"
	"paquexpress/internal/pkg/guard"
)

// MaxTrackingIDLength bounds the caller-supplied tracking id; it matches the
// column width of the parcels table.
const MaxTrackingIDLength = 50

// ErrTrackingIDIsNotConstructed indicates that a TrackingID was created as a
// zero value instead of through NewTrackingID.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError("TrackingID must be created via NewTrackingID")

// TrackingID is the caller-supplied external identifier of a parcel. Unlike
// the surrogate UUIDs used elsewhere, it is the identity customers see and
// the primary key of the parcels table, so it must be non-empty and bounded.
type TrackingID struct {
	value string

	guard guard.ConstructorGuard
}

// NewTrackingID creates a TrackingID after validating it is non-empty and at
// most MaxTrackingIDLength characters.
func NewTrackingID(value string) (TrackingID, error) {
	if value == "" {
		return TrackingID{}, errs.NewValueIsRequiredError("trackingID")
	}

	if len(value) > MaxTrackingIDLength {
		return TrackingID{}, errs.NewValueIsOutOfRangeError("trackingID length", len(value), 1, MaxTrackingIDLength)
	}

	return TrackingID{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the TrackingID was properly constructed.
func (t TrackingID) Validate() error {
	return t.guard.Validate(ErrTrackingIDIsNotConstructed)
}

// String returns the raw tracking id value.
// This method implements the fmt.Stringer interface.
func (t TrackingID) String() string {
	return t.value
}

// IsEqual compares two tracking ids for equality.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.value == other.value
}
