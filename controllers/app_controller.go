package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/kkh0343-create/campus-pairing/models"
	"github.com/kkh0343-create/campus-pairing/services"
)

// AppController exposes the top-level state machine: login, profile setup,
// group setup, navigation, language and the state snapshot.
type AppController struct {
	Store  *services.AppStateService
	Delays services.Delays
}

// NewAppController initializes the app controller
func NewAppController(store *services.AppStateService, delays services.Delays) *AppController {
	return &AppController{Store: store, Delays: delays}
}

// HandleLogin - verifies the Everytime login handoff and advances to profile setup
func (c *AppController) HandleLogin(w http.ResponseWriter, r *http.Request) {
	log.Println("🔑 Verifying login handoff...")

	// Models the account-link verification round trip
	time.Sleep(c.Delays.LoginVerify)
	c.Store.LoginSucceeded()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success", "view": c.Store.View()})
}

// HandleCompleteProfile - builds the user profile from the setup form
func (c *AppController) HandleCompleteProfile(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Name         string   `json:"name"`
		Age          int      `json:"age"`
		Gender       string   `json:"gender"`
		University   string   `json:"university"`
		Major        string   `json:"major"`
		Bio          string   `json:"bio"`
		MBTI         string   `json:"mbti"`
		InstaID      string   `json:"instaId"`
		FaceType     string   `json:"faceType"`
		IdealType    string   `json:"idealType"`
		Values       []string `json:"values"`
		ProfileImage string   `json:"profileImage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	builder := services.NewProfileBuilder().
		SetName(request.Name).
		SetAge(request.Age).
		SetMajor(request.Major).
		SetBio(request.Bio)
	if request.Gender != "" {
		builder.SetGender(request.Gender)
	}
	if request.University != "" {
		builder.SetUniversity(request.University)
	}
	if request.MBTI != "" {
		builder.SetMBTI(request.MBTI)
	}
	if request.FaceType != "" {
		builder.SetFaceType(request.FaceType)
	}
	builder.SetInstaID(request.InstaID)
	builder.SetIdealType(request.IdealType)
	builder.SetValues(request.Values)
	builder.SetProfileImage(request.ProfileImage)

	profile, err := builder.Build()
	if err != nil {
		http.Error(w, `{"error": "Missing required fields: name, age, major, or bio"}`, http.StatusBadRequest)
		return
	}

	if err := c.Store.CompleteProfile(profile); err != nil {
		http.Error(w, `{"error": "Missing required fields: name, age, major, or bio"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"status": "success", "view": c.Store.View(), "user": profile})
}

// HandleConfirmGroup - drives the group-setup wizard and submits the criteria
func (c *AppController) HandleConfirmGroup(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MatchType           string               `json:"matchType"`
		Size                int                  `json:"size"`
		Members             []models.GroupMember `json:"members"`
		City                string               `json:"city"`
		District            string               `json:"district"`
		Dong                string               `json:"dong"`
		Atmosphere          string               `json:"atmosphere"`
		GamePreference      string               `json:"gamePreference"`
		PreferredAgeMin     int                  `json:"preferredAgeMin"`
		PreferredAgeMax     int                  `json:"preferredAgeMax"`
		PreferredUniversity string               `json:"preferredUniversity"`
		PreferredMajorType  string               `json:"preferredMajorType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	builder := services.NewGroupBuilder()
	if request.MatchType != "" {
		if err := builder.SetMatchType(request.MatchType); err != nil {
			http.Error(w, `{"error": "Unknown match type"}`, http.StatusBadRequest)
			return
		}
	}
	if request.Size != 0 {
		if err := builder.SetGroupSize(request.Size); err != nil {
			http.Error(w, `{"error": "Group size must be between 2 and 4"}`, http.StatusBadRequest)
			return
		}
	}
	for _, member := range request.Members {
		if err := builder.AddFriend(member); err != nil {
			http.Error(w, `{"error": "Too many friends for the group size"}`, http.StatusBadRequest)
			return
		}
	}
	if err := builder.SelectRegion(request.City, request.District, request.Dong); err != nil {
		http.Error(w, `{"error": "Please select a region"}`, http.StatusBadRequest)
		return
	}
	if request.Atmosphere != "" {
		builder.SetAtmosphere(request.Atmosphere)
	}
	if request.GamePreference != "" {
		builder.SetGamePreference(request.GamePreference)
	}
	if request.PreferredAgeMin != 0 || request.PreferredAgeMax != 0 {
		builder.SetPreferredAges(request.PreferredAgeMin, request.PreferredAgeMax)
	}
	if request.PreferredUniversity != "" {
		builder.SetPreferredUniversity(request.PreferredUniversity)
	}
	if request.PreferredMajorType != "" {
		builder.SetPreferredMajorType(request.PreferredMajorType)
	}

	// Walk the wizard to its final step; each Next re-checks the step guards
	for builder.Step() < builder.TotalSteps() {
		if err := builder.Next(); err != nil {
			log.Printf("❌ Group setup blocked at step %d: %v", builder.Step(), err)
			if errors.Is(err, services.ErrNotEnoughMembers) {
				http.Error(w, `{"error": "Please add enough friends for the group size"}`, http.StatusBadRequest)
			} else {
				http.Error(w, `{"error": "Please select a region"}`, http.StatusBadRequest)
			}
			return
		}
	}

	group, err := builder.Build()
	if err != nil {
		http.Error(w, `{"error": "Group setup is incomplete"}`, http.StatusBadRequest)
		return
	}

	c.Store.ConfirmGroup(group)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"status": "success", "view": c.Store.View(), "myGroup": group})
}

// HandleNavigate - moves between the authenticated tab views
func (c *AppController) HandleNavigate(w http.ResponseWriter, r *http.Request) {
	var request struct {
		View string `json:"view"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.Store.Navigate(request.View); err != nil {
		if errors.Is(err, services.ErrNotAuthenticated) {
			http.Error(w, `{"error": "Login and profile setup required"}`, http.StatusUnauthorized)
			return
		}
		http.Error(w, `{"error": "Unknown view"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success", "view": c.Store.View()})
}

// HandleFinishReview - closes the review view and clears the active match
func (c *AppController) HandleFinishReview(w http.ResponseWriter, r *http.Request) {
	c.Store.FinishReview()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success", "view": c.Store.View()})
}

// HandleSetLanguage - toggles between Korean and English
func (c *AppController) HandleSetLanguage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	c.Store.SetLanguage(request.Language)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success", "language": c.Store.Language()})
}

// HandleGetState - returns a full snapshot of the application state
func (c *AppController) HandleGetState(w http.ResponseWriter, r *http.Request) {
	snapshot := c.Store.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snapshot)
}
