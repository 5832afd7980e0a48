package models

// AppState is the root aggregate: the single in-memory state object the whole
// session runs on. It exclusively owns every collection below it; callers get
// copies, never interior pointers.
type AppState struct {
	View            string                   `json:"view"`
	Language        string                   `json:"language"`
	User            *UserProfile             `json:"user"`
	MyGroup         *MyGroup                 `json:"myGroup"`
	Matches         []MatchGroup             `json:"matches"`
	ActiveMatchID   string                   `json:"activeMatchId"`
	ChatHistories   map[string][]ChatMessage `json:"chatHistories"`
	Appointments    []Appointment            `json:"appointments"`
	UnlockedMatches map[string]bool          `json:"unlockedMatches"`
}

// NewAppState returns the initial state: LOGIN view, Korean, everything empty.
func NewAppState() *AppState {
	return &AppState{
		View:            ViewLogin,
		Language:        LanguageKorean,
		Matches:         []MatchGroup{},
		ChatHistories:   map[string][]ChatMessage{},
		Appointments:    []Appointment{},
		UnlockedMatches: map[string]bool{},
	}
}
