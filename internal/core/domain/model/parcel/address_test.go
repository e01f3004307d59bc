package parcel_test

import (
	"testing"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGeoPoint(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return point
}

func TestNewAddress(t *testing.T) {
	destination := mustGeoPoint(t, 19.4, -99.1)

	t.Run("valid address", func(t *testing.T) {
		id := kernel.NewUUID()

		address, err := parcel.NewAddress(id, "Main St 1", "Colonia Central", "Ciudad Ejemplo", "10001", destination)

		require.NoError(t, err)
		require.NoError(t, address.Validate())
		assert.True(t, address.ID().IsEqual(id))
		assert.Equal(t, "Main St 1", address.Street())
		assert.Equal(t, "Colonia Central", address.Locality())
		assert.Equal(t, "Ciudad Ejemplo", address.City())
		assert.Equal(t, "10001", address.PostalCode())

		equal, err := address.Destination().IsEqual(destination)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("missing required fields", func(t *testing.T) {
		id := kernel.NewUUID()

		tests := []struct {
			name    string
			street  string
			loc     string
			city    string
			postal  string
		}{
			{name: "street", street: "", loc: "L", city: "C", postal: "P"},
			{name: "locality", street: "S", loc: "", city: "C", postal: "P"},
			{name: "city", street: "S", loc: "L", city: "", postal: "P"},
			{name: "postal code", street: "S", loc: "L", city: "C", postal: ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := parcel.NewAddress(id, tt.street, tt.loc, tt.city, tt.postal, destination)

				require.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})

	t.Run("zero destination is rejected", func(t *testing.T) {
		var zero kernel.GeoPoint

		_, err := parcel.NewAddress(kernel.NewUUID(), "S", "L", "C", "P", zero)

		require.Error(t, err)
	})

	t.Run("zero id is rejected", func(t *testing.T) {
		var zero kernel.UUID

		_, err := parcel.NewAddress(zero, "S", "L", "C", "P", destination)

		require.Error(t, err)
	})
}

func TestAddress_Validate(t *testing.T) {
	var address parcel.Address

	require.ErrorIs(t, address.Validate(), parcel.ErrAddressIsNotConstructed)
}
