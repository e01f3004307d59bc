package commands_test

import (
	"testing"
	"time"

	"paquexpress/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCloseStaleSessionsCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCloseStaleSessionsCommand(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cmd.TTL())
}

func TestNewCloseStaleSessionsCommand_InvalidTTL(t *testing.T) {
	_, err := commands.NewCloseStaleSessionsCommand(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTTLIsInvalid)
}
