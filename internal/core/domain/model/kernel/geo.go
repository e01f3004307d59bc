package kernel

import (
	"errors"
	"fmt"

	"paquexpress/internal/pkg/errs"
	"paquexpress/internal/pkg/guard"
)

// Coordinate bounds for WGS84 latitude and longitude, in decimal degrees.
const (
	MinLatitude  float64 = -90
	MaxLatitude  float64 = 90
	MinLongitude float64 = -180
	MaxLongitude float64 = 180
)

// ErrGeoPointIsNotConstructed indicates that a GeoPoint was created as a zero
// value instead of through NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("GeoPoint must be created via NewGeoPoint")

// GeoPoint is a value object representing a WGS84 latitude/longitude pair.
// It is used both for parcel destination coordinates and for the GPS fix
// captured when a delivery is registered.
//
// The zero value of GeoPoint is invalid; instances must be created through
// NewGeoPoint, which validates that both coordinates are within bounds.
// GeoPoint is immutable and safe for concurrent use.
//
// Example:
//
//	destination, err := kernel.NewGeoPoint(19.4326, -99.1332)
//	if err != nil {
//	    // handle out-of-range coordinates
//	}
type GeoPoint struct {
	latitude  float64
	longitude float64

	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint after validating that latitude is within
// [-90..90] and longitude within [-180..180] decimal degrees.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	if latitude < MinLatitude || latitude > MaxLatitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	if longitude < MinLongitude || longitude > MaxLongitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	return GeoPoint{
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the GeoPoint was properly constructed using NewGeoPoint.
// The zero value of GeoPoint fails this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String returns a human-readable "GeoPoint(lat,lon)" representation with
// six decimal places, which is useful for debugging and logging.
// This method implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.latitude, p.longitude)
}

// IsEqual compares two geo points for coordinate equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.latitude == other.latitude && p.longitude == other.longitude, nil
}
