package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kkh0343-create/campus-pairing/services"
)

// MatchController exposes candidate generation and the acceptance handshake.
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController initializes the match controller
func NewMatchController(service *services.MatchService) *MatchController {
	return &MatchController{MatchService: service}
}

// HandleGetMatches - generates candidate matches for the submitted criteria
func (c *MatchController) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := c.MatchService.FindMatches(r.Context())
	if err != nil {
		http.Error(w, `{"error": "Profile and group criteria are required"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(matches)
}

// HandleRequestMatch - starts the acceptance handshake for a candidate
func (c *MatchController) HandleRequestMatch(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MatchID string `json:"matchId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.MatchID == "" {
		http.Error(w, `{"error": "matchId is required"}`, http.StatusBadRequest)
		return
	}

	if err := c.MatchService.RequestMatch(request.MatchID); err != nil {
		log.Printf("❌ Match request failed: %v", err)
		if errors.Is(err, services.ErrRequestPending) {
			http.Error(w, `{"error": "A match request is already pending"}`, http.StatusConflict)
			return
		}
		http.Error(w, `{"error": "Unknown candidate"}`, http.StatusNotFound)
		return
	}

	status, target := c.MatchService.Status()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": status, "matchId": target})
}

// HandleMatchStatus - reports the handshake status
func (c *MatchController) HandleMatchStatus(w http.ResponseWriter, r *http.Request) {
	status, target := c.MatchService.Status()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": status, "matchId": target})
}

// HandleStartChat - enters the chat with an accepted candidate
func (c *MatchController) HandleStartChat(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	match, err := c.MatchService.StartChat(matchID)
	if err != nil {
		// Not a fresh acceptance; maybe it is an already-confirmed match
		// being re-opened from the chat list.
		match, err = c.MatchService.EnterExistingChat(matchID)
		if err != nil {
			http.Error(w, `{"error": "Match has not been accepted"}`, http.StatusConflict)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"status": "success", "match": match})
}
