package routes

import (
	"github.com/kkh0343-create/campus-pairing/controllers"
	"github.com/kkh0343-create/campus-pairing/services"

	"github.com/gorilla/mux"
)

// RegisterAppRoutes registers login, profile and navigation routes
func RegisterAppRoutes(r *mux.Router, store *services.AppStateService, delays services.Delays) {
	controller := controllers.NewAppController(store, delays)

	apiRouter := r.PathPrefix("/api").Subrouter()

	apiRouter.HandleFunc("/auth/login", controller.HandleLogin).Methods("POST")           // ✅ Everytime login handoff
	apiRouter.HandleFunc("/profile", controller.HandleCompleteProfile).Methods("POST")    // ✅ Submit the profile setup form
	apiRouter.HandleFunc("/group", controller.HandleConfirmGroup).Methods("POST")         // ✅ Submit the group-setup wizard
	apiRouter.HandleFunc("/navigate", controller.HandleNavigate).Methods("POST")          // ✅ Switch between tab views
	apiRouter.HandleFunc("/review/finish", controller.HandleFinishReview).Methods("POST") // ✅ Close the meeting review
	apiRouter.HandleFunc("/language", controller.HandleSetLanguage).Methods("POST")
	apiRouter.HandleFunc("/state", controller.HandleGetState).Methods("GET")
}
