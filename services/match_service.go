package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kkh0343-create/campus-pairing/models"
)

// Match selection errors.
var (
	ErrMissingCriteria  = errors.New("profile and group criteria are required")
	ErrRequestPending   = errors.New("a match request is already pending")
	ErrNotAccepted      = errors.New("the match has not accepted yet")
	ErrUnknownCandidate = errors.New("unknown candidate")
)

// MatchService runs the selection flow: fetch candidates, simulate the
// requesting -> accepted handshake, then hand the accepted match to the state
// machine for chat.
type MatchService struct {
	Store     *AppStateService
	Responder *ResponderService
	Delays    Delays

	mu         sync.Mutex
	candidates map[string]models.MatchGroup
	status     string
	target     string
}

func NewMatchService(store *AppStateService, responder *ResponderService, delays Delays) *MatchService {
	return &MatchService{
		Store:      store,
		Responder:  responder,
		Delays:     delays,
		candidates: map[string]models.MatchGroup{},
		status:     models.MatchStatusIdle,
	}
}

// FindMatches fetches candidates for the submitted criteria. The generator
// already degrades to the sample set internally, so this never fails once the
// profile and criteria exist.
func (ms *MatchService) FindMatches(ctx context.Context) ([]models.MatchGroup, error) {
	user := ms.Store.User()
	criteria := ms.Store.MyGroup()
	if user == nil || criteria == nil {
		return nil, ErrMissingCriteria
	}

	log.Printf("🔍 Generating matches for %s (%s, region %s)", user.Name, criteria.MatchType, criteria.Region)
	matches := ms.Responder.GenerateMatches(ctx, *user, *criteria)
	log.Printf("✅ Got %d candidate matches", len(matches))

	ms.mu.Lock()
	defer ms.mu.Unlock()
	for _, m := range matches {
		ms.candidates[m.ID] = m
	}
	return matches, nil
}

// RequestMatch starts the acceptance handshake for a candidate. Only one
// request may be pending at a time; after the acceptance delay the status
// flips to accepted.
func (ms *MatchService) RequestMatch(candidateID string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.status == models.MatchStatusRequesting {
		return ErrRequestPending
	}
	if _, ok := ms.candidates[candidateID]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCandidate, candidateID)
	}

	ms.status = models.MatchStatusRequesting
	ms.target = candidateID
	log.Printf("💌 Match requested: %s, waiting for acceptance", candidateID)

	time.AfterFunc(ms.Delays.Acceptance, func() {
		ms.mu.Lock()
		defer ms.mu.Unlock()
		if ms.status != models.MatchStatusRequesting || ms.target != candidateID {
			return
		}
		ms.status = models.MatchStatusAccepted
		log.Printf("✅ Match accepted: %s", candidateID)
	})

	return nil
}

// Status returns the handshake status and its target candidate id.
func (ms *MatchService) Status() (status, target string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.status, ms.target
}

// StartChat enters the chat with the accepted candidate via the state machine
// and resets the handshake.
func (ms *MatchService) StartChat(candidateID string) (models.MatchGroup, error) {
	ms.mu.Lock()
	if ms.status != models.MatchStatusAccepted || ms.target != candidateID {
		ms.mu.Unlock()
		return models.MatchGroup{}, ErrNotAccepted
	}
	match := ms.candidates[candidateID]
	ms.status = models.MatchStatusIdle
	ms.target = ""
	ms.mu.Unlock()

	ms.Store.SelectMatch(match)
	return match, nil
}

// EnterExistingChat re-opens a chat from the chat list: the match is already
// in the persistent list, so no handshake is needed.
func (ms *MatchService) EnterExistingChat(matchID string) (models.MatchGroup, error) {
	for _, m := range ms.Store.Matches() {
		if m.ID == matchID {
			ms.Store.SelectMatch(m)
			return m, nil
		}
	}
	return models.MatchGroup{}, fmt.Errorf("%w: %s", ErrUnknownMatch, matchID)
}
