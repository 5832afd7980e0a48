package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kkh0343-create/campus-pairing/models"
)

func TestAppStateService(t *testing.T) {
	t.Run("InitialState", func(t *testing.T) {
		s := NewAppStateService()
		assert.Equal(t, models.ViewLogin, s.View())
		assert.Equal(t, models.LanguageKorean, s.Language())
		assert.Nil(t, s.User())
		assert.Nil(t, s.MyGroup())
		assert.Empty(t, s.Matches())
		assert.Empty(t, s.Appointments())
	})

	t.Run("LoginAdvancesToProfileSetup", func(t *testing.T) {
		s := NewAppStateService()
		s.LoginSucceeded()
		assert.Equal(t, models.ViewProfileSetup, s.View())
	})

	t.Run("CompleteProfile", func(t *testing.T) {
		s := NewAppStateService()
		s.LoginSucceeded()

		err := s.CompleteProfile(models.UserProfile{
			Name:  "지훈",
			Age:   23,
			Major: "전자공학",
			Bio:   "안녕하세요",
		})
		require.NoError(t, err)
		assert.Equal(t, models.ViewGroupSetup, s.View())

		user := s.User()
		require.NotNil(t, user)
		assert.Equal(t, "지훈", user.Name)
		assert.Equal(t, 23, user.Age)
	})

	t.Run("CompleteProfileMissingFields", func(t *testing.T) {
		s := NewAppStateService()
		s.LoginSucceeded()

		err := s.CompleteProfile(models.UserProfile{Name: "지훈", Age: 23})
		assert.ErrorIs(t, err, ErrMissingProfileFields)
		assert.Equal(t, models.ViewProfileSetup, s.View())
		assert.Nil(t, s.User())
	})

	t.Run("ConfirmGroupAdvancesToMatchList", func(t *testing.T) {
		s := authenticatedStore(t)
		s.ConfirmGroup(models.MyGroup{MatchType: models.MatchTypeDate, Size: 1, Region: "마포구 홍대입구"})
		assert.Equal(t, models.ViewMatchList, s.View())

		group := s.MyGroup()
		require.NotNil(t, group)
		assert.Equal(t, "마포구 홍대입구", group.Region)
	})

	t.Run("SelectMatchSeedsHistoryOnce", func(t *testing.T) {
		s := authenticatedStore(t)
		match := models.MatchGroup{ID: "m-1", University: "연세대학교"}

		s.SelectMatch(match)
		assert.Equal(t, models.ViewChat, s.View())
		assert.Equal(t, "m-1", s.ActiveMatchID())
		require.Len(t, s.Matches(), 1)

		history := s.History("m-1")
		require.Len(t, history, 1)
		assert.Equal(t, models.SenderSystem, history[0].Sender)
		assert.Equal(t, SeedMessageText, history[0].Text)

		// Selecting the same match again neither duplicates it nor reseeds.
		s.LeaveChat()
		s.SelectMatch(match)
		assert.Len(t, s.Matches(), 1)
		assert.Len(t, s.History("m-1"), 1)
	})

	t.Run("NavigateRequiresAuthentication", func(t *testing.T) {
		s := NewAppStateService()
		err := s.Navigate(models.ViewDashboard)
		assert.ErrorIs(t, err, ErrNotAuthenticated)
		assert.Equal(t, models.ViewLogin, s.View())
	})

	t.Run("NavigateRejectsUnknownView", func(t *testing.T) {
		s := authenticatedStore(t)
		err := s.Navigate("SETTINGS")
		assert.ErrorIs(t, err, ErrUnknownView)
	})

	t.Run("NavigateBetweenTabs", func(t *testing.T) {
		s := authenticatedStore(t)
		for _, view := range []string{models.ViewDashboard, models.ViewChatList, models.ViewMyPage, models.ViewReview} {
			require.NoError(t, s.Navigate(view))
			assert.Equal(t, view, s.View())
		}
	})

	t.Run("FinishReviewClearsActiveMatch", func(t *testing.T) {
		s := authenticatedStore(t)
		s.SelectMatch(models.MatchGroup{ID: "m-1"})
		require.Equal(t, "m-1", s.ActiveMatchID())

		s.FinishReview()
		assert.Equal(t, models.ViewDashboard, s.View())
		assert.Empty(t, s.ActiveMatchID())
	})

	t.Run("SetHistoryWriteThrough", func(t *testing.T) {
		s := authenticatedStore(t)
		s.SelectMatch(models.MatchGroup{ID: "m-1"})

		messages := append(s.History("m-1"), models.ChatMessage{ID: "msg-1", Sender: models.SenderMe, Text: "안녕하세요"})
		require.NoError(t, s.SetHistory("m-1", messages))
		assert.Len(t, s.History("m-1"), 2)

		err := s.SetHistory("m-404", messages)
		assert.ErrorIs(t, err, ErrUnknownMatch)
	})

	t.Run("UnlockIsMonotonic", func(t *testing.T) {
		s := authenticatedStore(t)
		assert.False(t, s.IsUnlocked("m-1"))

		s.UnlockMatch("m-1")
		assert.True(t, s.IsUnlocked("m-1"))

		// Unlocking again is a no-op, never a removal.
		s.UnlockMatch("m-1")
		assert.True(t, s.IsUnlocked("m-1"))
		assert.False(t, s.IsUnlocked("m-2"))
	})

	t.Run("AppointmentsAppendOnly", func(t *testing.T) {
		s := authenticatedStore(t)
		s.AddAppointment(models.Appointment{ID: "a-1", Date: "2026-09-05", Time: "19:00"})
		s.AddAppointment(models.Appointment{ID: "a-2", Date: "2026-09-12", Time: "18:00"})

		appointments := s.Appointments()
		require.Len(t, appointments, 2)
		assert.Equal(t, "a-1", appointments[0].ID)
		assert.Equal(t, "a-2", appointments[1].ID)
	})

	t.Run("SnapshotIsDeepCopy", func(t *testing.T) {
		s := authenticatedStore(t)
		s.SelectMatch(models.MatchGroup{ID: "m-1", University: "연세대학교"})

		snapshot := s.Snapshot()
		require.Len(t, snapshot.Matches, 1)
		require.Len(t, snapshot.ChatHistories["m-1"], 1)

		// Mutations after the snapshot must not leak into it.
		s.UnlockMatch("m-1")
		s.AddAppointment(models.Appointment{ID: "a-1"})
		messages := append(s.History("m-1"), models.ChatMessage{ID: "msg-1", Sender: models.SenderMe, Text: "hi"})
		require.NoError(t, s.SetHistory("m-1", messages))

		assert.False(t, snapshot.UnlockedMatches["m-1"])
		assert.Empty(t, snapshot.Appointments)
		assert.Len(t, snapshot.ChatHistories["m-1"], 1)
	})

	t.Run("RestoreRoundTrip", func(t *testing.T) {
		s := authenticatedStore(t)
		s.SelectMatch(models.MatchGroup{ID: "m-1", University: "연세대학교"})
		s.UnlockMatch("m-1")
		snapshot := s.Snapshot()

		restored := NewAppStateService()
		restored.Restore(snapshot)

		assert.Equal(t, s.View(), restored.View())
		assert.Equal(t, "m-1", restored.ActiveMatchID())
		assert.True(t, restored.IsUnlocked("m-1"))
		require.NotNil(t, restored.User())
		assert.Equal(t, "지훈", restored.User().Name)
		assert.Len(t, restored.History("m-1"), 1)
	})

	t.Run("SetLanguage", func(t *testing.T) {
		s := NewAppStateService()
		s.SetLanguage(models.LanguageEnglish)
		assert.Equal(t, models.LanguageEnglish, s.Language())

		// Unknown codes are ignored.
		s.SetLanguage("fr")
		assert.Equal(t, models.LanguageEnglish, s.Language())
	})
}

// authenticatedStore builds a store that has passed login, profile and group
// setup, ready for match selection.
func authenticatedStore(t *testing.T) *AppStateService {
	t.Helper()
	s := NewAppStateService()
	s.LoginSucceeded()
	require.NoError(t, s.CompleteProfile(models.UserProfile{
		Name:  "지훈",
		Age:   23,
		Major: "전자공학",
		Bio:   "안녕하세요",
	}))
	s.ConfirmGroup(models.MyGroup{MatchType: models.MatchTypeDate, Size: 1, Region: "마포구 홍대입구"})
	return s
}
