package commands_test

import (
	"testing"

	"paquexpress/internal/core/application/usecases/commands"
	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParcelArgs(t *testing.T) (parcel.TrackingID, kernel.UUID, kernel.GeoPoint) {
	t.Helper()
	trackingID, err := parcel.NewTrackingID("PKG-001")
	require.NoError(t, err)
	destination, err := kernel.NewGeoPoint(19.4326, -99.1332)
	require.NoError(t, err)
	return trackingID, kernel.NewUUID(), destination
}

func TestNewCreateParcelCommand_ValidInput(t *testing.T) {
	trackingID, agentID, destination := validParcelArgs(t)

	cmd, err := commands.NewCreateParcelCommand(trackingID, agentID, "Av. Reforma 123", destination)

	require.NoError(t, err)
	assert.True(t, cmd.TrackingID().IsEqual(trackingID))
	assert.Equal(t, agentID, cmd.AgentID())
	assert.Equal(t, "Av. Reforma 123", cmd.Street())
}

func TestNewCreateParcelCommand_InvalidTrackingID(t *testing.T) {
	_, agentID, destination := validParcelArgs(t)
	var zero parcel.TrackingID

	_, err := commands.NewCreateParcelCommand(zero, agentID, "Av. Reforma 123", destination)

	require.Error(t, err)
}

func TestNewCreateParcelCommand_EmptyStreet(t *testing.T) {
	trackingID, agentID, destination := validParcelArgs(t)

	_, err := commands.NewCreateParcelCommand(trackingID, agentID, "", destination)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrStreetIsRequired)
}

func TestNewCreateParcelCommand_InvalidDestination(t *testing.T) {
	trackingID, agentID, _ := validParcelArgs(t)
	var zero kernel.GeoPoint

	_, err := commands.NewCreateParcelCommand(trackingID, agentID, "Av. Reforma 123", zero)

	require.Error(t, err)
}
