package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kkh0343-create/campus-pairing/models"
	"github.com/kkh0343-create/campus-pairing/services"
)

// newTestRouter wires the full controller surface against a fresh store with
// zero delays and no generative backend (every consumer uses its fallback).
func newTestRouter(t *testing.T) (*services.AppStateService, *mux.Router) {
	t.Helper()

	store := services.NewAppStateService()
	responder := &services.ResponderService{Generator: unavailableGenerator{}}
	delays := services.Delays{}
	matchService := services.NewMatchService(store, responder, delays)
	chatService := services.NewChatService(store, responder, delays)

	app := NewAppController(store, delays)
	match := NewMatchController(matchService)
	chat := NewChatController(chatService, store, responder)
	ref := NewReferenceController()

	r := mux.NewRouter()
	r.HandleFunc("/api/auth/login", app.HandleLogin).Methods("POST")
	r.HandleFunc("/api/profile", app.HandleCompleteProfile).Methods("POST")
	r.HandleFunc("/api/group", app.HandleConfirmGroup).Methods("POST")
	r.HandleFunc("/api/navigate", app.HandleNavigate).Methods("POST")
	r.HandleFunc("/api/review/finish", app.HandleFinishReview).Methods("POST")
	r.HandleFunc("/api/language", app.HandleSetLanguage).Methods("POST")
	r.HandleFunc("/api/state", app.HandleGetState).Methods("GET")
	r.HandleFunc("/api/matches", match.HandleGetMatches).Methods("GET")
	r.HandleFunc("/api/matches/request", match.HandleRequestMatch).Methods("POST")
	r.HandleFunc("/api/matches/status", match.HandleMatchStatus).Methods("GET")
	r.HandleFunc("/api/matches/{matchId}/chat", match.HandleStartChat).Methods("POST")
	r.HandleFunc("/api/chat/messages", chat.HandleGetMessages).Methods("GET")
	r.HandleFunc("/api/chat/message", chat.HandleSendMessage).Methods("POST")
	r.HandleFunc("/api/chat/unlock", chat.HandleRequestUnlock).Methods("POST")
	r.HandleFunc("/api/chat/appointment", chat.HandleConfirmAppointment).Methods("POST")
	r.HandleFunc("/api/chat/icebreaker", chat.HandleGetIcebreaker).Methods("GET")
	r.HandleFunc("/api/chat/leave", chat.HandleLeaveChat).Methods("POST")
	r.HandleFunc("/api/regions", ref.HandleGetCities).Methods("GET")
	r.HandleFunc("/api/regions/{city}", ref.HandleGetDistricts).Methods("GET")
	r.HandleFunc("/api/universities/{city}", ref.HandleGetUniversities).Methods("GET")
	return store, r
}

var errUnavailable = errors.New("generator unavailable")

type unavailableGenerator struct{}

func (unavailableGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return "", errUnavailable
}

func (unavailableGenerator) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return "", errUnavailable
}

func postJSON(t *testing.T, r *mux.Router, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func getJSON(t *testing.T, r *mux.Router, path string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func TestFullFlow(t *testing.T) {
	store, r := newTestRouter(t)

	// Login
	rec := postJSON(t, r, "/api/auth/login", map[string]string{"provider": "everytime"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ViewProfileSetup, store.View())

	// Profile setup
	rec = postJSON(t, r, "/api/profile", map[string]interface{}{
		"name": "지훈", "age": 23, "major": "전자공학", "bio": "안녕하세요",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ViewGroupSetup, store.View())

	// Group setup (1:1 date in 홍대입구)
	rec = postJSON(t, r, "/api/group", map[string]interface{}{
		"matchType": models.MatchTypeDate,
		"city":      "서울", "district": "마포구", "dong": "홍대입구",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ViewMatchList, store.View())

	// The generator is down, so the sample candidates come back
	var matches []models.MatchGroup
	rec = getJSON(t, r, "/api/matches", &matches)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, matches, 2)

	// Handshake: request, wait for acceptance, enter the chat
	rec = postJSON(t, r, "/api/matches/request", map[string]string{"matchId": "mock-1"})
	require.Equal(t, http.StatusOK, rec.Code)

	require.Eventually(t, func() bool {
		var status map[string]string
		getJSON(t, r, "/api/matches/status", &status)
		return status["status"] == models.MatchStatusAccepted
	}, 2*time.Second, 10*time.Millisecond)

	rec = postJSON(t, r, "/api/matches/mock-1/chat", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ViewChat, store.View())
	assert.Equal(t, "mock-1", store.ActiveMatchID())

	// The chat opens with the seeded system message
	var session map[string]interface{}
	rec = getJSON(t, r, "/api/chat/messages", &session)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "mock-1", session["matchId"])
	require.Len(t, session["messages"], 1)

	// Send a message; the persona fallback reply arrives asynchronously
	rec = postJSON(t, r, "/api/chat/message", map[string]string{"text": "안녕하세요"})
	require.Equal(t, http.StatusOK, rec.Code)

	require.Eventually(t, func() bool {
		var session map[string]interface{}
		getJSON(t, r, "/api/chat/messages", &session)
		messages, ok := session["messages"].([]interface{})
		return ok && len(messages) == 3 && session["isTyping"] == false
	}, 2*time.Second, 10*time.Millisecond)

	// Book an appointment at the partner venue
	rec = postJSON(t, r, "/api/chat/appointment", map[string]string{"date": "2026-09-05", "time": "19:00"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Eventually(t, func() bool {
		return len(store.Appointments()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	// Leave the chat and check the snapshot survived it all
	rec = postJSON(t, r, "/api/chat/leave", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var snapshot models.AppState
	rec = getJSON(t, r, "/api/state", &snapshot)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ViewDashboard, snapshot.View)
	assert.Len(t, snapshot.Matches, 1)
	assert.Len(t, snapshot.Appointments, 1)
	assert.NotEmpty(t, snapshot.ChatHistories["mock-1"])
}

func TestProfileValidation(t *testing.T) {
	_, r := newTestRouter(t)
	postJSON(t, r, "/api/auth/login", nil)

	rec := postJSON(t, r, "/api/profile", map[string]interface{}{"name": "지훈", "age": 23})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required fields")
}

func TestGroupValidation(t *testing.T) {
	store, r := newTestRouter(t)
	postJSON(t, r, "/api/auth/login", nil)
	postJSON(t, r, "/api/profile", map[string]interface{}{
		"name": "지훈", "age": 23, "major": "전자공학", "bio": "안녕하세요",
	})

	t.Run("MissingRegion", func(t *testing.T) {
		rec := postJSON(t, r, "/api/group", map[string]interface{}{"matchType": models.MatchTypeDate})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "region")
	})

	t.Run("NotEnoughMembers", func(t *testing.T) {
		rec := postJSON(t, r, "/api/group", map[string]interface{}{
			"matchType": models.MatchTypeGroup,
			"size":      3,
			"city":      "서울", "district": "마포구", "dong": "홍대입구",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "friends")
		assert.Equal(t, models.ViewGroupSetup, store.View())
	})
}

func TestNavigateRequiresAuth(t *testing.T) {
	_, r := newTestRouter(t)
	rec := postJSON(t, r, "/api/navigate", map[string]string{"view": models.ViewDashboard})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLanguageToggle(t *testing.T) {
	store, r := newTestRouter(t)
	rec := postJSON(t, r, "/api/language", map[string]string{"language": models.LanguageEnglish})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.LanguageEnglish, store.Language())
}

func TestReferenceEndpoints(t *testing.T) {
	_, r := newTestRouter(t)

	var cities []string
	rec := getJSON(t, r, "/api/regions", &cities)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, cities, "서울")

	var districts []string
	rec = getJSON(t, r, "/api/regions/서울", &districts)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, districts, "마포구")

	rec = getJSON(t, r, "/api/regions/평양", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var univs []string
	rec = getJSON(t, r, "/api/universities/대구", &univs)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, univs, "경북대")
}

func TestIcebreakerFallback(t *testing.T) {
	_, r := newTestRouter(t)
	var out map[string]string
	rec := getJSON(t, r, "/api/chat/icebreaker?context=first+meeting", &out)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, out["topic"])
}
