package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/pkg/errs"
)

func TestNewGeoPoint(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   bool
	}{
		{name: "valid point", latitude: 19.4326, longitude: -99.1332},
		{name: "valid point at min bounds", latitude: kernel.MinLatitude, longitude: kernel.MinLongitude},
		{name: "valid point at max bounds", latitude: kernel.MaxLatitude, longitude: kernel.MaxLongitude},
		{name: "latitude too small", latitude: -90.0001, longitude: 0, wantErr: true},
		{name: "latitude too large", latitude: 90.0001, longitude: 0, wantErr: true},
		{name: "longitude too small", latitude: 0, longitude: -180.0001, wantErr: true},
		{name: "longitude too large", latitude: 0, longitude: 180.0001, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, err := kernel.NewGeoPoint(tt.latitude, tt.longitude)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}

			require.NoError(t, err)
			require.NoError(t, point.Validate())
			assert.InDelta(t, tt.latitude, point.Latitude(), 0)
			assert.InDelta(t, tt.longitude, point.Longitude(), 0)
		})
	}
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var point kernel.GeoPoint

		err := point.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("constructed point is valid", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(19.4, -99.1)
		require.NoError(t, err)

		require.NoError(t, point.Validate())
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("equal coordinates", func(t *testing.T) {
		first, err := kernel.NewGeoPoint(19.4, -99.1)
		require.NoError(t, err)
		second, err := kernel.NewGeoPoint(19.4, -99.1)
		require.NoError(t, err)

		equal, err := first.IsEqual(second)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different coordinates", func(t *testing.T) {
		first, err := kernel.NewGeoPoint(19.4, -99.1)
		require.NoError(t, err)
		second, err := kernel.NewGeoPoint(19.5, -99.1)
		require.NoError(t, err)

		equal, err := first.IsEqual(second)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("zero value comparison fails", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(19.4, -99.1)
		require.NoError(t, err)

		var zero kernel.GeoPoint
		_, err = point.IsEqual(zero)

		require.Error(t, err)
	})
}

func TestGeoPoint_String(t *testing.T) {
	point, err := kernel.NewGeoPoint(19.4326, -99.1332)
	require.NoError(t, err)

	assert.Equal(t, "GeoPoint(19.432600,-99.133200)", point.String())
}
