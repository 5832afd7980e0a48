package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kkh0343-create/campus-pairing/models"
	"github.com/kkh0343-create/campus-pairing/utils"
)

// Chat flow errors.
var (
	ErrEmptyMessage      = errors.New("message text is empty")
	ErrReplyPending      = errors.New("a reply is already pending for this chat")
	ErrAlreadyUnlocked   = errors.New("extended profile is already unlocked")
	ErrUnlockPending     = errors.New("an unlock request is already pending")
	ErrMissingDateTime   = errors.New("date and time are required")
	ErrBookingInProgress = errors.New("a booking is already in progress")
)

// GreetingMessageText seeds a session whose persisted history is empty.
const GreetingMessageText = "매칭이 성사되었습니다! 설레는 대화를 시작해보세요."

// ChatService owns one ChatSession per match and orchestrates sending,
// persona replies, reply suggestions, the profile-unlock flow and the
// appointment booking sub-flow. Every local mutation is written through to
// the state machine immediately.
type ChatService struct {
	Store     *AppStateService
	Responder *ResponderService
	Delays    Delays

	mu       sync.Mutex
	sessions map[string]*ChatSession
}

func NewChatService(store *AppStateService, responder *ResponderService, delays Delays) *ChatService {
	return &ChatService{
		Store:     store,
		Responder: responder,
		Delays:    delays,
		sessions:  map[string]*ChatSession{},
	}
}

// ChatSession is the per-match chat state. Fields are guarded by mu; the
// asynchronous completions (persona reply, unlock acceptance, booking) re-check
// their guards under the lock before applying, so a stale completion can never
// land in the wrong place.
type ChatSession struct {
	MatchID string

	svc   *ChatService
	match models.MatchGroup

	mu                sync.Mutex
	messages          []models.ChatMessage
	typing            bool
	suggestion        string
	requestingProfile bool
	bookingStep       string
	scheduleDate      string
	scheduleTime      string
	sendGen           int
}

// Session returns the session for a match, creating and seeding it on first
// access. The match must already be known to the state machine.
func (cs *ChatService) Session(matchID string) (*ChatSession, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if session, ok := cs.sessions[matchID]; ok {
		return session, nil
	}

	var match models.MatchGroup
	found := false
	for _, m := range cs.Store.Matches() {
		if m.ID == matchID {
			match = m
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMatch, matchID)
	}

	session := &ChatSession{
		MatchID:     matchID,
		svc:         cs,
		match:       match,
		bookingStep: models.BookingStepInput,
	}

	history := cs.Store.History(matchID)
	if len(history) > 0 {
		session.messages = history
	} else {
		session.messages = []models.ChatMessage{{
			ID:        "0",
			Sender:    models.SenderSystem,
			Text:      GreetingMessageText,
			Timestamp: time.Now().UnixMilli(),
		}}
		session.persistLocked()
	}

	cs.sessions[matchID] = session
	return session, nil
}

// Messages returns a copy of the session's local buffer.
func (s *ChatSession) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Typing reports whether a persona reply is pending.
func (s *ChatSession) Typing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.typing
}

// Suggestion returns the cached reply suggestion ("" if none).
func (s *ChatSession) Suggestion() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suggestion
}

// IsRequestingProfile reports whether an unlock request is pending.
func (s *ChatSession) IsRequestingProfile() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requestingProfile
}

// BookingState returns the scheduler sub-state.
func (s *ChatSession) BookingState() (step, date, tm string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookingStep, s.scheduleDate, s.scheduleTime
}

// Send appends the user's message immediately, clears any cached suggestion
// and requests a persona reply. The reply lands as a partner message after the
// typing window unless the user has moved to a different match or a newer send
// superseded this one in the meantime.
func (s *ChatSession) Send(text string) error {
	if text == "" {
		return ErrEmptyMessage
	}

	s.mu.Lock()
	if s.typing {
		s.mu.Unlock()
		return ErrReplyPending
	}
	s.appendLocked(models.ChatMessage{
		ID:        uuid.New().String(),
		Sender:    models.SenderMe,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	})
	s.suggestion = ""
	s.typing = true
	s.sendGen++
	gen := s.sendGen
	history := make([]models.ChatMessage, len(s.messages))
	copy(history, s.messages)
	s.mu.Unlock()

	user := s.svc.Store.User()
	language := s.svc.Store.Language()

	go func() {
		profile := models.UserProfile{}
		if user != nil {
			profile = *user
		}
		reply, err := s.svc.Responder.PersonaReply(context.Background(), history, s.match, profile, language)
		if err != nil {
			log.Printf("❌ Persona reply failed for match %s: %v", s.MatchID, err)
			s.mu.Lock()
			if s.sendGen == gen {
				s.typing = false
			}
			s.mu.Unlock()
			return
		}
		time.AfterFunc(s.svc.Delays.PartnerReply, func() {
			s.applyPartnerReply(gen, reply)
		})
	}()

	return nil
}

// applyPartnerReply lands a persona reply if this send is still the latest one
// and the user is still in this chat.
func (s *ChatSession) applyPartnerReply(gen int, reply string) {
	s.mu.Lock()
	if s.sendGen != gen {
		// A newer send owns the typing flag now; drop this reply.
		s.mu.Unlock()
		return
	}
	s.typing = false
	if s.svc.Store.ActiveMatchID() != s.MatchID {
		log.Printf("⚠️ Dropping stale persona reply for match %s (no longer active)", s.MatchID)
		s.mu.Unlock()
		return
	}
	s.appendLocked(models.ChatMessage{
		ID:        uuid.New().String(),
		Sender:    models.SenderPartner,
		Text:      reply,
		Timestamp: time.Now().UnixMilli(),
	})
	s.mu.Unlock()

	s.RefreshSuggestion()
}

// RefreshSuggestion requests a reply suggestion when the most recent message
// came from the partner, and clears the cache otherwise. The asynchronous
// result is dropped if the history moved on while it was being generated.
func (s *ChatSession) RefreshSuggestion() {
	s.mu.Lock()
	if len(s.messages) == 0 || s.messages[len(s.messages)-1].Sender != models.SenderPartner {
		s.suggestion = ""
		s.mu.Unlock()
		return
	}
	count := len(s.messages)
	history := make([]models.ChatMessage, count)
	copy(history, s.messages)
	s.mu.Unlock()

	language := s.svc.Store.Language()

	go func() {
		suggestion := s.svc.Responder.ReplySuggestion(context.Background(), history, language)
		s.mu.Lock()
		defer s.mu.Unlock()
		if len(s.messages) != count {
			return
		}
		s.suggestion = suggestion
	}()
}

// RequestUnlock starts the extended-profile request flow. At most one request
// may be in flight, and an unlocked match cannot be requested again.
func (s *ChatSession) RequestUnlock() error {
	if s.svc.Store.IsUnlocked(s.MatchID) {
		return ErrAlreadyUnlocked
	}

	s.mu.Lock()
	if s.requestingProfile {
		s.mu.Unlock()
		return ErrUnlockPending
	}
	s.requestingProfile = true
	s.appendLocked(models.ChatMessage{
		ID:        uuid.New().String(),
		Sender:    models.SenderSystem,
		Text:      "상대방에게 확장 프로필(사진, MBTI, 얼굴상 등) 공개를 요청했습니다.",
		Timestamp: time.Now().UnixMilli(),
	})
	s.mu.Unlock()

	log.Printf("🔒 Extended profile requested for match %s", s.MatchID)

	time.AfterFunc(s.svc.Delays.UnlockAccept, func() {
		s.mu.Lock()
		if !s.requestingProfile {
			s.mu.Unlock()
			return
		}
		s.requestingProfile = false
		s.appendLocked(models.ChatMessage{
			ID:        uuid.New().String(),
			Sender:    models.SenderSystem,
			Text:      "상대방이 요청을 수락했습니다!\n이제 [확장 프로필 보기]를 통해 상세 정보를 확인할 수 있습니다.",
			Timestamp: time.Now().UnixMilli(),
		})
		s.mu.Unlock()

		s.svc.Store.UnlockMatch(s.MatchID)
	})

	return nil
}

// ConfirmBooking validates the chosen date and time and runs the scheduler:
// input -> connecting -> confirmed, creating the Appointment and a
// confirmation system message, then resets to input after the display delay.
func (s *ChatSession) ConfirmBooking(date, tm string) error {
	if date == "" || tm == "" {
		return ErrMissingDateTime
	}

	s.mu.Lock()
	if s.bookingStep != models.BookingStepInput {
		s.mu.Unlock()
		return ErrBookingInProgress
	}
	s.bookingStep = models.BookingStepConnecting
	s.scheduleDate = date
	s.scheduleTime = tm
	s.mu.Unlock()

	log.Printf("📅 Booking started for match %s: %s %s", s.MatchID, date, tm)

	time.AfterFunc(s.svc.Delays.BookingConnect, func() {
		s.mu.Lock()
		if s.bookingStep != models.BookingStepConnecting {
			s.mu.Unlock()
			return
		}
		s.bookingStep = models.BookingStepConfirmed

		location := s.match.Region
		if location == "" {
			location = "강남"
		}
		apt := models.Appointment{
			ID:          uuid.New().String(),
			MatchID:     s.MatchID,
			PartnerName: utils.JoinMemberNames(s.match.Members),
			Date:        s.scheduleDate,
			Time:        s.scheduleTime,
			Location:    location,
			Status:      models.AppointmentStatusConfirmed,
		}

		s.appendLocked(models.ChatMessage{
			ID:        uuid.New().String(),
			Sender:    models.SenderSystem,
			Text:      fmt.Sprintf("[📅 예약 확인] %s %s\n제휴 매장 예약이 완료되었습니다. 매칭 캘린더에서 확인하세요.", s.scheduleDate, s.scheduleTime),
			Timestamp: time.Now().UnixMilli(),
		})
		s.mu.Unlock()

		s.svc.Store.AddAppointment(apt)

		time.AfterFunc(s.svc.Delays.BookingReset, func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.bookingStep != models.BookingStepConfirmed {
				return
			}
			s.bookingStep = models.BookingStepInput
			s.scheduleDate = ""
			s.scheduleTime = ""
		})
	})

	return nil
}

// appendLocked appends to the local buffer and writes the history through to
// the state machine. Caller holds s.mu.
func (s *ChatSession) appendLocked(msg models.ChatMessage) {
	s.messages = append(s.messages, msg)
	s.persistLocked()
}

func (s *ChatSession) persistLocked() {
	if err := s.svc.Store.SetHistory(s.MatchID, s.messages); err != nil {
		log.Printf("❌ Failed to persist history for match %s: %v", s.MatchID, err)
	}
}
