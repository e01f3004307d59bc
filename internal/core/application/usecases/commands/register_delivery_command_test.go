package commands_test

import (
	"strings"
	"testing"

	"paquexpress/internal/core/application/usecases/commands"
	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterDeliveryCommand_ValidInput(t *testing.T) {
	trackingID, agentID, location := validParcelArgs(t)
	photo := strings.NewReader("jpeg bytes")

	cmd, err := commands.NewRegisterDeliveryCommand(trackingID, agentID, location, "photo.jpg", photo)

	require.NoError(t, err)
	assert.True(t, cmd.TrackingID().IsEqual(trackingID))
	assert.Equal(t, agentID, cmd.AgentID())
	assert.Equal(t, "photo.jpg", cmd.PhotoName())
	assert.NotNil(t, cmd.Photo())
}

func TestNewRegisterDeliveryCommand_MissingPhotoName(t *testing.T) {
	trackingID, agentID, location := validParcelArgs(t)

	_, err := commands.NewRegisterDeliveryCommand(trackingID, agentID, location, "", strings.NewReader("x"))

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPhotoNameIsRequired)
}

func TestNewRegisterDeliveryCommand_MissingPhoto(t *testing.T) {
	trackingID, agentID, location := validParcelArgs(t)

	_, err := commands.NewRegisterDeliveryCommand(trackingID, agentID, location, "photo.jpg", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPhotoIsRequired)
}

func TestNewRegisterDeliveryCommand_InvalidLocation(t *testing.T) {
	trackingID, agentID, _ := validParcelArgs(t)
	var zero kernel.GeoPoint

	_, err := commands.NewRegisterDeliveryCommand(trackingID, agentID, zero, "photo.jpg", strings.NewReader("x"))

	require.Error(t, err)
}

func TestNewRegisterDeliveryCommand_InvalidTrackingID(t *testing.T) {
	_, agentID, location := validParcelArgs(t)
	var zero parcel.TrackingID

	_, err := commands.NewRegisterDeliveryCommand(zero, agentID, location, "photo.jpg", strings.NewReader("x"))

	require.Error(t, err)
}
