package parcel_test

import (
	"testing"
	"time"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAddress(t *testing.T) parcel.Address {
	t.Helper()
	address, err := parcel.NewAddress(
		kernel.NewUUID(), "Main St 1", "Colonia Central", "Ciudad Ejemplo", "10001",
		mustGeoPoint(t, 19.4, -99.1),
	)
	require.NoError(t, err)
	return address
}

func buildTrackingID(t *testing.T, value string) parcel.TrackingID {
	t.Helper()
	id, err := parcel.NewTrackingID(value)
	require.NoError(t, err)
	return id
}

func TestNewParcel(t *testing.T) {
	t.Run("valid parcel starts assigned", func(t *testing.T) {
		trackingID := buildTrackingID(t, "PKG-1")
		address := buildAddress(t)
		agentID := kernel.NewUUID()
		assignedAt := time.Now().UTC()

		p, err := parcel.NewParcel(trackingID, address, agentID, assignedAt)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.TrackingID().IsEqual(trackingID))
		assert.True(t, p.AgentID().IsEqual(agentID))
		assert.Equal(t, parcel.Assigned, p.Status())
		assert.Equal(t, assignedAt, p.AssignedAt())
		assert.True(t, p.IsAssignedTo(agentID))
		assert.False(t, p.IsAssignedTo(kernel.NewUUID()))
	})

	t.Run("zero tracking id is rejected", func(t *testing.T) {
		var zero parcel.TrackingID

		_, err := parcel.NewParcel(zero, buildAddress(t), kernel.NewUUID(), time.Now())

		require.Error(t, err)
	})

	t.Run("zero address is rejected", func(t *testing.T) {
		var zero parcel.Address

		_, err := parcel.NewParcel(buildTrackingID(t, "PKG-1"), zero, kernel.NewUUID(), time.Now())

		require.ErrorIs(t, err, parcel.ErrAddressIsNotConstructed)
	})

	t.Run("zero agent id is rejected", func(t *testing.T) {
		var zero kernel.UUID

		_, err := parcel.NewParcel(buildTrackingID(t, "PKG-1"), buildAddress(t), zero, time.Now())

		require.Error(t, err)
	})

	t.Run("zero assignment time is rejected", func(t *testing.T) {
		_, err := parcel.NewParcel(buildTrackingID(t, "PKG-1"), buildAddress(t), kernel.NewUUID(), time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreParcel(t *testing.T) {
	t.Run("restores stored status", func(t *testing.T) {
		p, err := parcel.RestoreParcel(
			buildTrackingID(t, "PKG-1"), buildAddress(t), kernel.NewUUID(),
			parcel.EnRoute, time.Now().UTC(),
		)

		require.NoError(t, err)
		assert.Equal(t, parcel.EnRoute, p.Status())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := parcel.RestoreParcel(
			buildTrackingID(t, "PKG-1"), buildAddress(t), kernel.NewUUID(),
			parcel.Unknown, time.Now().UTC(),
		)

		require.Error(t, err)
	})
}

func TestParcel_Deliver(t *testing.T) {
	t.Run("assigned parcel delivers", func(t *testing.T) {
		p, err := parcel.NewParcel(buildTrackingID(t, "PKG-1"), buildAddress(t), kernel.NewUUID(), time.Now().UTC())
		require.NoError(t, err)

		require.NoError(t, p.Deliver())
		assert.Equal(t, parcel.Delivered, p.Status())
	})

	t.Run("en route parcel delivers", func(t *testing.T) {
		p, err := parcel.RestoreParcel(
			buildTrackingID(t, "PKG-1"), buildAddress(t), kernel.NewUUID(),
			parcel.EnRoute, time.Now().UTC(),
		)
		require.NoError(t, err)

		require.NoError(t, p.Deliver())
		assert.Equal(t, parcel.Delivered, p.Status())
	})

	t.Run("second delivery fails", func(t *testing.T) {
		p, err := parcel.NewParcel(buildTrackingID(t, "PKG-1"), buildAddress(t), kernel.NewUUID(), time.Now().UTC())
		require.NoError(t, err)

		require.NoError(t, p.Deliver())
		err = p.Deliver()

		require.Error(t, err)
		assert.Equal(t, parcel.Delivered, p.Status())
	})

	t.Run("cancelled parcel cannot deliver", func(t *testing.T) {
		p, err := parcel.RestoreParcel(
			buildTrackingID(t, "PKG-1"), buildAddress(t), kernel.NewUUID(),
			parcel.Cancelled, time.Now().UTC(),
		)
		require.NoError(t, err)

		require.Error(t, p.Deliver())
		assert.Equal(t, parcel.Cancelled, p.Status())
	})
}

func TestParcel_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var p parcel.Parcel

		require.ErrorIs(t, p.Validate(), parcel.ErrParcelIsNotConstructed)
	})

	t.Run("nil parcel fails validation", func(t *testing.T) {
		var p *parcel.Parcel

		require.ErrorIs(t, p.Validate(), parcel.ErrParcelIsNotConstructed)
	})
}

func TestParcel_IsEqual(t *testing.T) {
	first, err := parcel.NewParcel(buildTrackingID(t, "PKG-1"), buildAddress(t), kernel.NewUUID(), time.Now().UTC())
	require.NoError(t, err)
	second, err := parcel.NewParcel(buildTrackingID(t, "PKG-2"), buildAddress(t), kernel.NewUUID(), time.Now().UTC())
	require.NoError(t, err)

	assert.True(t, first.IsEqual(first))
	assert.False(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(nil))
}
