package parcel

import (
	"errors"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through the NewAddress factory method.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the destination of a parcel: the street line, locality, city
// and postal code plus the destination coordinates. An Address is created
// together with its parcel and is immutable afterwards; the schema allows
// reuse across parcels but this workflow always creates a fresh one.
type Address struct {
	// id is the unique identifier for the address row
	id kernel.UUID

	// street is the street name and number line
	street string

	// locality is the neighbourhood/colonia
	locality string

	// city is the city name
	city string

	// postalCode is the postal code
	postalCode string

	// destination holds the delivery coordinates
	destination kernel.GeoPoint

	// isConstructed ensures the address was created via NewAddress
	isConstructed bool
}

// NewAddress creates a validated Address. All text fields are required and
// the destination must be a constructed GeoPoint.
func NewAddress(
	id kernel.UUID,
	street, locality, city, postalCode string,
	destination kernel.GeoPoint,
) (Address, error) {
	address := Address{
		isConstructed: true,
	}

	if err := errors.Join(
		address.setID(id),
		address.setStreet(street),
		address.setLocality(locality),
		address.setCity(city),
		address.setPostalCode(postalCode),
		address.setDestination(destination),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate ensures the Address instance was properly constructed.
func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}

	return nil
}

// ID returns the address's unique identifier.
func (a Address) ID() kernel.UUID {
	return a.id
}

// Street returns the street name and number line.
func (a Address) Street() string {
	return a.street
}

// Locality returns the neighbourhood.
func (a Address) Locality() string {
	return a.locality
}

// City returns the city name.
func (a Address) City() string {
	return a.city
}

// PostalCode returns the postal code.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Destination returns the delivery coordinates.
func (a Address) Destination() kernel.GeoPoint {
	return a.destination
}

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setLocality(locality string) error {
	if locality == "" {
		return errs.NewValueIsRequiredError("locality")
	}
	a.locality = locality
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}
	a.postalCode = postalCode
	return nil
}

func (a *Address) setDestination(destination kernel.GeoPoint) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	a.destination = destination
	return nil
}
