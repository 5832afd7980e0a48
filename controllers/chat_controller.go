package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/kkh0343-create/campus-pairing/services"
	"github.com/kkh0343-create/campus-pairing/utils"
)

// ChatController exposes the chat session: messages, sending, suggestions,
// the profile-unlock flow and the appointment scheduler.
type ChatController struct {
	ChatService *services.ChatService
	Store       *services.AppStateService
	Responder   *services.ResponderService
}

// NewChatController initializes the chat controller
func NewChatController(chatService *services.ChatService, store *services.AppStateService, responder *services.ResponderService) *ChatController {
	return &ChatController{ChatService: chatService, Store: store, Responder: responder}
}

// session resolves the target session from ?matchId= or the active match.
func (c *ChatController) session(r *http.Request, matchID string) (*services.ChatSession, error) {
	if matchID == "" {
		matchID = r.URL.Query().Get("matchId")
	}
	if matchID == "" {
		matchID = c.Store.ActiveMatchID()
	}
	if matchID == "" {
		return nil, services.ErrNoActiveMatch
	}
	return c.ChatService.Session(matchID)
}

// HandleGetMessages - fetches the message buffer plus the session flags
func (c *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	session, err := c.session(r, "")
	if err != nil {
		http.Error(w, `{"error": "No active match"}`, http.StatusNotFound)
		return
	}

	step, date, tm := session.BookingState()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"matchId":             session.MatchID,
		"messages":            session.Messages(),
		"isTyping":            session.Typing(),
		"suggestedReply":      session.Suggestion(),
		"isRequestingProfile": session.IsRequestingProfile(),
		"isProfileUnlocked":   c.Store.IsUnlocked(session.MatchID),
		"bookingStep":         step,
		"scheduleDate":        date,
		"scheduleTime":        tm,
	})
}

// HandleSendMessage - appends the user's message and kicks off the persona reply
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MatchID string `json:"matchId"`
		Text    string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	session, err := c.session(r, request.MatchID)
	if err != nil {
		http.Error(w, `{"error": "No active match"}`, http.StatusNotFound)
		return
	}

	log.Printf("📩 Sending message to match %s: %s", session.MatchID, utils.Truncate(request.Text, 40))

	if err := session.Send(request.Text); err != nil {
		if errors.Is(err, services.ErrReplyPending) {
			http.Error(w, `{"error": "A reply is already pending"}`, http.StatusConflict)
			return
		}
		http.Error(w, `{"error": "Message text is required"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"status": "success", "messages": session.Messages()})
}

// HandleGetSuggestion - returns the cached reply suggestion
func (c *ChatController) HandleGetSuggestion(w http.ResponseWriter, r *http.Request) {
	session, err := c.session(r, "")
	if err != nil {
		http.Error(w, `{"error": "No active match"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"suggestedReply": session.Suggestion()})
}

// HandleRequestUnlock - issues the extended-profile request
func (c *ChatController) HandleRequestUnlock(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MatchID string `json:"matchId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	session, err := c.session(r, request.MatchID)
	if err != nil {
		http.Error(w, `{"error": "No active match"}`, http.StatusNotFound)
		return
	}

	if err := session.RequestUnlock(); err != nil {
		log.Printf("❌ Unlock request rejected for match %s: %v", session.MatchID, err)
		http.Error(w, `{"error": "Profile is already unlocked or a request is pending"}`, http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}

// HandleConfirmAppointment - runs the booking sub-flow for a chosen date/time
func (c *ChatController) HandleConfirmAppointment(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MatchID string `json:"matchId"`
		Date    string `json:"date"`
		Time    string `json:"time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	session, err := c.session(r, request.MatchID)
	if err != nil {
		http.Error(w, `{"error": "No active match"}`, http.StatusNotFound)
		return
	}

	if err := session.ConfirmBooking(request.Date, request.Time); err != nil {
		if errors.Is(err, services.ErrBookingInProgress) {
			http.Error(w, `{"error": "A booking is already in progress"}`, http.StatusConflict)
			return
		}
		http.Error(w, `{"error": "Please choose a date and time"}`, http.StatusBadRequest)
		return
	}

	step, _, _ := session.BookingState()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success", "bookingStep": step})
}

// HandleGetIcebreaker - suggests a conversation topic for the meeting mode
func (c *ChatController) HandleGetIcebreaker(w http.ResponseWriter, r *http.Request) {
	hint := r.URL.Query().Get("context")
	if hint == "" {
		hint = "university date"
	}

	topic := c.Responder.IcebreakerTopic(r.Context(), hint)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"topic": topic})
}

// HandleLeaveChat - returns to the dashboard, keeping the history intact
func (c *ChatController) HandleLeaveChat(w http.ResponseWriter, r *http.Request) {
	c.Store.LeaveChat()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success", "view": c.Store.View()})
}
