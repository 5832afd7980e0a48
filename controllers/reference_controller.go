package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kkh0343-create/campus-pairing/services"
)

// ReferenceController serves the static region and university lookup tables.
type ReferenceController struct{}

func NewReferenceController() *ReferenceController {
	return &ReferenceController{}
}

// HandleGetCities - lists every selectable city/province
func (c *ReferenceController) HandleGetCities(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(services.Cities())
}

// HandleGetDistricts - lists a city's districts
func (c *ReferenceController) HandleGetDistricts(w http.ResponseWriter, r *http.Request) {
	city := mux.Vars(r)["city"]
	districts := services.Districts(city)
	if districts == nil {
		http.Error(w, `{"error": "Unknown city"}`, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(districts)
}

// HandleGetNeighborhoods - lists a district's neighborhoods
func (c *ReferenceController) HandleGetNeighborhoods(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dongs := services.Neighborhoods(vars["city"], vars["district"])
	if dongs == nil {
		http.Error(w, `{"error": "Unknown district"}`, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dongs)
}

// HandleGetUniversities - lists the recommended universities of a city
func (c *ReferenceController) HandleGetUniversities(w http.ResponseWriter, r *http.Request) {
	city := mux.Vars(r)["city"]
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(services.UniversitiesFor(city))
}
