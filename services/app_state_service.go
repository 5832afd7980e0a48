package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kkh0343-create/campus-pairing/models"
)

// Validation errors reported synchronously to the initiating flow.
var (
	ErrMissingProfileFields = errors.New("name, age, major and bio are required")
	ErrNotAuthenticated     = errors.New("no authenticated user")
	ErrUnknownView          = errors.New("unknown view")
	ErrNoActiveMatch        = errors.New("no active match")
	ErrUnknownMatch         = errors.New("unknown match")
)

// SeedMessageText is the system message a freshly created history starts with.
const SeedMessageText = "대화가 시작되었습니다."

// AppStateService owns the single AppState and mediates every transition.
// All mutations happen under the mutex; callers only ever receive copies.
type AppStateService struct {
	mu    sync.Mutex
	state *models.AppState
}

func NewAppStateService() *AppStateService {
	return &AppStateService{state: models.NewAppState()}
}

// View returns the current view.
func (s *AppStateService) View() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.View
}

// Language returns the current UI language.
func (s *AppStateService) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Language
}

// SetLanguage switches between "ko" and "en".
func (s *AppStateService) SetLanguage(lang string) {
	if lang != models.LanguageKorean && lang != models.LanguageEnglish {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Language = lang
}

// LoginSucceeded advances LOGIN -> PROFILE_SETUP.
func (s *AppStateService) LoginSucceeded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	log.Println("✅ Login verified, moving to profile setup")
	s.state.View = models.ViewProfileSetup
}

// CompleteProfile sets the user and advances to GROUP_SETUP.
// Guard: name, age, major and bio must be present.
func (s *AppStateService) CompleteProfile(profile models.UserProfile) error {
	if profile.Name == "" || profile.Age == 0 || profile.Major == "" || profile.Bio == "" {
		return ErrMissingProfileFields
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.User = &profile
	s.state.View = models.ViewGroupSetup
	log.Printf("✅ Profile created for %s (%s %s)", profile.Name, profile.University, profile.Major)
	return nil
}

// ConfirmGroup stores the matching criteria and advances to MATCH_LIST.
// A new group replaces any previous one (restarted setup).
func (s *AppStateService) ConfirmGroup(group models.MyGroup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.MyGroup = &group
	s.state.View = models.ViewMatchList
	log.Printf("✅ Group criteria confirmed: type=%s region=%s", group.MatchType, group.Region)
}

// SelectMatch promotes a candidate into the persistent matches list
// (deduplicated by id), seeds its chat history if absent, marks it active and
// enters CHAT. Selecting an already-known match reuses the existing history.
func (s *AppStateService) SelectMatch(match models.MatchGroup) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists := false
	for _, m := range s.state.Matches {
		if m.ID == match.ID {
			exists = true
			break
		}
	}
	if !exists {
		s.state.Matches = append(s.state.Matches, match)
	}

	if _, ok := s.state.ChatHistories[match.ID]; !ok {
		s.state.ChatHistories[match.ID] = []models.ChatMessage{{
			ID:        "init",
			Sender:    models.SenderSystem,
			Text:      SeedMessageText,
			Timestamp: time.Now().UnixMilli(),
		}}
	}

	s.state.ActiveMatchID = match.ID
	s.state.View = models.ViewChat
	log.Printf("💬 Entering chat with match %s (%s)", match.ID, match.University)
}

// LeaveChat returns to the dashboard without clearing anything.
func (s *AppStateService) LeaveChat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.View = models.ViewDashboard
}

// Navigate moves between the authenticated tab views.
func (s *AppStateService) Navigate(view string) error {
	switch view {
	case models.ViewDashboard, models.ViewChatList, models.ViewMyPage, models.ViewGroupSetup, models.ViewReview:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownView, view)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User == nil {
		return ErrNotAuthenticated
	}
	s.state.View = view
	return nil
}

// FinishReview clears the active match and returns to the dashboard.
func (s *AppStateService) FinishReview() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ActiveMatchID = ""
	s.state.View = models.ViewDashboard
}

// User returns a copy of the authenticated user, or nil before profile setup.
func (s *AppStateService) User() *models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User == nil {
		return nil
	}
	user := *s.state.User
	return &user
}

// MyGroup returns a copy of the submitted criteria, or nil.
func (s *AppStateService) MyGroup() *models.MyGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.MyGroup == nil {
		return nil
	}
	group := *s.state.MyGroup
	return &group
}

// Matches returns a copy of the persistent matches list.
func (s *AppStateService) Matches() []models.MatchGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MatchGroup, len(s.state.Matches))
	copy(out, s.state.Matches)
	return out
}

// ActiveMatch returns the active match, or an error if none is set.
func (s *AppStateService) ActiveMatch() (models.MatchGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.ActiveMatchID == "" {
		return models.MatchGroup{}, ErrNoActiveMatch
	}
	for _, m := range s.state.Matches {
		if m.ID == s.state.ActiveMatchID {
			return m, nil
		}
	}
	return models.MatchGroup{}, ErrNoActiveMatch
}

// ActiveMatchID returns the id of the active match ("" if none).
func (s *AppStateService) ActiveMatchID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ActiveMatchID
}

// History returns a copy of one match's chat history.
func (s *AppStateService) History(matchID string) []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := s.state.ChatHistories[matchID]
	out := make([]models.ChatMessage, len(history))
	copy(out, history)
	return out
}

// SetHistory is the write-through from a chat session: it replaces one match's
// history wholesale after every local mutation. The match must be known.
func (s *AppStateService) SetHistory(matchID string, messages []models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.state.ChatHistories[matchID]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMatch, matchID)
	}
	stored := make([]models.ChatMessage, len(messages))
	copy(stored, messages)
	s.state.ChatHistories[matchID] = stored
	return nil
}

// AddAppointment appends a confirmed appointment. Append-only.
func (s *AppStateService) AddAppointment(apt models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Appointments = append(s.state.Appointments, apt)
	log.Printf("📅 Appointment saved: %s %s @ %s", apt.Date, apt.Time, apt.Location)
}

// Appointments returns a copy of the appointment list.
func (s *AppStateService) Appointments() []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Appointment, len(s.state.Appointments))
	copy(out, s.state.Appointments)
	return out
}

// UnlockMatch adds a match id to the unlocked set. Monotonic: ids are never
// removed for the rest of the session.
func (s *AppStateService) UnlockMatch(matchID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.UnlockedMatches[matchID] = true
	log.Printf("🔓 Extended profile unlocked for match %s", matchID)
}

// IsUnlocked reports whether a match's extended profile is visible.
func (s *AppStateService) IsUnlocked(matchID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.UnlockedMatches[matchID]
}

// Snapshot returns a deep copy of the whole state. The copy shares nothing
// with the live state, so it survives later mutations unchanged.
func (s *AppStateService) Snapshot() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deepCopyState(s.state)
}

// Restore replaces the whole state with a snapshot (again deep-copied, so the
// caller keeps ownership of its argument).
func (s *AppStateService) Restore(snapshot models.AppState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	restored := deepCopyState(&snapshot)
	s.state = &restored
}

// deepCopyState copies via JSON round-trip; AppState is plain data and the
// copy doubles as a check that the state stays serializable.
func deepCopyState(state *models.AppState) models.AppState {
	raw, err := json.Marshal(state)
	if err != nil {
		// AppState contains no cycles or unsupported types; this cannot fail.
		panic(fmt.Sprintf("snapshot marshal: %v", err))
	}
	var out models.AppState
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(fmt.Sprintf("snapshot unmarshal: %v", err))
	}
	if out.Matches == nil {
		out.Matches = []models.MatchGroup{}
	}
	if out.ChatHistories == nil {
		out.ChatHistories = map[string][]models.ChatMessage{}
	}
	if out.Appointments == nil {
		out.Appointments = []models.Appointment{}
	}
	if out.UnlockedMatches == nil {
		out.UnlockedMatches = map[string]bool{}
	}
	return out
}
