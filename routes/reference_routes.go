package routes

import (
	"github.com/kkh0343-create/campus-pairing/controllers"

	"github.com/gorilla/mux"
)

// RegisterReferenceRoutes registers the region and university lookup routes
func RegisterReferenceRoutes(r *mux.Router) {
	controller := controllers.NewReferenceController()

	apiRouter := r.PathPrefix("/api").Subrouter()

	apiRouter.HandleFunc("/regions", controller.HandleGetCities).Methods("GET")
	apiRouter.HandleFunc("/regions/{city}", controller.HandleGetDistricts).Methods("GET")
	apiRouter.HandleFunc("/regions/{city}/{district}", controller.HandleGetNeighborhoods).Methods("GET")
	apiRouter.HandleFunc("/universities/{city}", controller.HandleGetUniversities).Methods("GET")
}
