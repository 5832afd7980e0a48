package routes

import (
	"github.com/kkh0343-create/campus-pairing/controllers"
	"github.com/kkh0343-create/campus-pairing/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes registers all chat-related routes under `/api/chat`
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService, store *services.AppStateService, responder *services.ResponderService) {
	controller := controllers.NewChatController(chatService, store, responder)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()

	chatRouter.HandleFunc("/messages", controller.HandleGetMessages).Methods("GET")            // ✅ Fetch the session state
	chatRouter.HandleFunc("/message", controller.HandleSendMessage).Methods("POST")            // ✅ Send a message
	chatRouter.HandleFunc("/suggestion", controller.HandleGetSuggestion).Methods("GET")        // ✅ Fetch the suggested reply
	chatRouter.HandleFunc("/unlock", controller.HandleRequestUnlock).Methods("POST")           // ✅ Request the extended profile
	chatRouter.HandleFunc("/appointment", controller.HandleConfirmAppointment).Methods("POST") // ✅ Book a partner venue
	chatRouter.HandleFunc("/icebreaker", controller.HandleGetIcebreaker).Methods("GET")
	chatRouter.HandleFunc("/leave", controller.HandleLeaveChat).Methods("POST")
}
