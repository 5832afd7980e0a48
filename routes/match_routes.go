package routes

import (
	"github.com/kkh0343-create/campus-pairing/controllers"
	"github.com/kkh0343-create/campus-pairing/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes registers all match-related routes under `/api/matches`
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService) {
	controller := controllers.NewMatchController(matchService)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()

	matchRouter.HandleFunc("", controller.HandleGetMatches).Methods("GET")                // ✅ Generate candidate matches
	matchRouter.HandleFunc("/request", controller.HandleRequestMatch).Methods("POST")     // ✅ Send a match request
	matchRouter.HandleFunc("/status", controller.HandleMatchStatus).Methods("GET")        // ✅ Poll the request status
	matchRouter.HandleFunc("/{matchId}/chat", controller.HandleStartChat).Methods("POST") // ✅ Enter the chat room
}
