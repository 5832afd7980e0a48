package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kkh0343-create/campus-pairing/models"
)

func TestMatchService(t *testing.T) {
	ctx := context.Background()

	t.Run("FindMatchesRequiresCriteria", func(t *testing.T) {
		ms := NewMatchService(NewAppStateService(), failingResponder(), Delays{})
		_, err := ms.FindMatches(ctx)
		assert.ErrorIs(t, err, ErrMissingCriteria)
	})

	t.Run("FindMatchesDegradesToSamples", func(t *testing.T) {
		ms := NewMatchService(authenticatedStore(t), failingResponder(), Delays{})

		matches, err := ms.FindMatches(ctx)
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, "mock-1", matches[0].ID)

		// The samples are cached as requestable candidates.
		require.NoError(t, ms.RequestMatch("mock-1"))
	})

	t.Run("RequestAcceptStartChat", func(t *testing.T) {
		store := authenticatedStore(t)
		ms := NewMatchService(store, failingResponder(), Delays{})
		_, err := ms.FindMatches(ctx)
		require.NoError(t, err)

		require.NoError(t, ms.RequestMatch("mock-1"))

		require.Eventually(t, func() bool {
			status, target := ms.Status()
			return status == models.MatchStatusAccepted && target == "mock-1"
		}, eventuallyWait, 10*time.Millisecond)

		match, err := ms.StartChat("mock-1")
		require.NoError(t, err)
		assert.Equal(t, "연세대학교", match.University)
		assert.Equal(t, models.ViewChat, store.View())
		assert.Equal(t, "mock-1", store.ActiveMatchID())

		// The handshake resets for the next request.
		status, target := ms.Status()
		assert.Equal(t, models.MatchStatusIdle, status)
		assert.Empty(t, target)
	})

	t.Run("StartChatBeforeAccepted", func(t *testing.T) {
		ms := NewMatchService(authenticatedStore(t), failingResponder(), Delays{Acceptance: 200 * time.Millisecond})
		_, err := ms.FindMatches(ctx)
		require.NoError(t, err)

		require.NoError(t, ms.RequestMatch("mock-1"))
		_, err = ms.StartChat("mock-1")
		assert.ErrorIs(t, err, ErrNotAccepted)
	})

	t.Run("OnlyOneRequestPending", func(t *testing.T) {
		ms := NewMatchService(authenticatedStore(t), failingResponder(), Delays{Acceptance: 200 * time.Millisecond})
		_, err := ms.FindMatches(ctx)
		require.NoError(t, err)

		require.NoError(t, ms.RequestMatch("mock-1"))
		assert.ErrorIs(t, ms.RequestMatch("mock-2"), ErrRequestPending)
	})

	t.Run("RequestUnknownCandidate", func(t *testing.T) {
		ms := NewMatchService(authenticatedStore(t), failingResponder(), Delays{})
		assert.ErrorIs(t, ms.RequestMatch("nope"), ErrUnknownCandidate)
	})

	t.Run("EnterExistingChat", func(t *testing.T) {
		store := authenticatedStore(t)
		ms := NewMatchService(store, failingResponder(), Delays{})
		store.SelectMatch(models.MatchGroup{ID: "m-1", University: "고려대학교"})
		store.LeaveChat()
		require.Equal(t, models.ViewDashboard, store.View())

		match, err := ms.EnterExistingChat("m-1")
		require.NoError(t, err)
		assert.Equal(t, "고려대학교", match.University)
		assert.Equal(t, models.ViewChat, store.View())

		_, err = ms.EnterExistingChat("m-404")
		assert.ErrorIs(t, err, ErrUnknownMatch)
	})
}
