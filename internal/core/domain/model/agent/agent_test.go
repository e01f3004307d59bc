package agent_test

import (
	"testing"

	"paquexpress/internal/core/domain/model/agent"
	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAgent(t *testing.T) {
	t.Run("valid agent", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := agent.NewAgent(id, "test_agent", "Test Agent", "$argon2id$hash")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(id))
		assert.Equal(t, "test_agent", a.Login())
		assert.Equal(t, "Test Agent", a.Name())
		assert.Equal(t, "$argon2id$hash", a.PasswordHash())
		assert.True(t, a.IsActive())
	})

	t.Run("invalid id", func(t *testing.T) {
		var zero kernel.UUID

		_, err := agent.NewAgent(zero, "test_agent", "Test Agent", "hash")

		require.Error(t, err)
	})

	t.Run("missing login", func(t *testing.T) {
		_, err := agent.NewAgent(kernel.NewUUID(), "", "Test Agent", "hash")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := agent.NewAgent(kernel.NewUUID(), "test_agent", "", "hash")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing password hash", func(t *testing.T) {
		_, err := agent.NewAgent(kernel.NewUUID(), "test_agent", "Test Agent", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreAgent(t *testing.T) {
	t.Run("restores inactive flag", func(t *testing.T) {
		a, err := agent.RestoreAgent(kernel.NewUUID(), "test_agent", "Test Agent", "hash", false)

		require.NoError(t, err)
		assert.False(t, a.IsActive())
	})
}

func TestAgent_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var a agent.Agent

		require.ErrorIs(t, a.Validate(), agent.ErrAgentIsNotConstructed)
	})

	t.Run("nil agent fails validation", func(t *testing.T) {
		var a *agent.Agent

		require.ErrorIs(t, a.Validate(), agent.ErrAgentIsNotConstructed)
	})
}

func TestAgent_IsEqual(t *testing.T) {
	first, err := agent.NewAgent(kernel.NewUUID(), "a", "Agent A", "hash")
	require.NoError(t, err)
	second, err := agent.NewAgent(kernel.NewUUID(), "b", "Agent B", "hash")
	require.NoError(t, err)

	assert.True(t, first.IsEqual(first))
	assert.False(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(nil))
}
