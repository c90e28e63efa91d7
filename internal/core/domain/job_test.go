package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shipwright/internal/core/domain"
)

func TestTransition_HappyPath(t *testing.T) {
	state := domain.JobUnprovisioned
	var err error

	for _, next := range []domain.JobState{domain.JobProvisioned, domain.JobFrozen, domain.JobPackaged} {
		state, err = domain.Transition(state, next)
		require.NoError(t, err)
		assert.Equal(t, next, state)
	}
	assert.True(t, state.IsTerminal())
}

func TestTransition_AnyActiveStateMayFail(t *testing.T) {
	for _, from := range []domain.JobState{domain.JobUnprovisioned, domain.JobProvisioned, domain.JobFrozen} {
		state, err := domain.Transition(from, domain.JobFailed)
		require.NoError(t, err, string(from))
		assert.Equal(t, domain.JobFailed, state)
	}
}

func TestTransition_RejectsSkipsAndTerminalExits(t *testing.T) {
	cases := []struct{ from, to domain.JobState }{
		{domain.JobUnprovisioned, domain.JobFrozen},   // skipping provisioning
		{domain.JobUnprovisioned, domain.JobPackaged}, // skipping everything
		{domain.JobProvisioned, domain.JobPackaged},   // skipping freeze
		{domain.JobFrozen, domain.JobProvisioned},     // going backwards
		{domain.JobPackaged, domain.JobFailed},        // leaving terminal state
		{domain.JobFailed, domain.JobProvisioned},     // leaving terminal state
	}

	for _, tc := range cases {
		state, err := domain.Transition(tc.from, tc.to)
		require.Error(t, err, "%s -> %s", tc.from, tc.to)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		// The state is unchanged on a rejected transition.
		assert.Equal(t, tc.from, state)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, domain.JobPackaged.IsTerminal())
	assert.True(t, domain.JobFailed.IsTerminal())
	assert.False(t, domain.JobUnprovisioned.IsTerminal())
	assert.False(t, domain.JobProvisioned.IsTerminal())
	assert.False(t, domain.JobFrozen.IsTerminal())
}
