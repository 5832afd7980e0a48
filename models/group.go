package models

// GroupMember is a participant in the user's own group or a candidate group.
// Name, major, university, age and gender are the BASIC subset, always visible;
// the rest is EXTENDED and gated behind the profile unlock.
type GroupMember struct {
	Name         string   `json:"name"`
	Major        string   `json:"major"`
	University   string   `json:"university,omitempty"`
	Age          int      `json:"age"`
	Gender       string   `json:"gender,omitempty"`
	MBTI         string   `json:"mbti,omitempty"`
	ProfileImage string   `json:"profileImage,omitempty"`
	FaceType     string   `json:"faceType,omitempty"`
	IdealType    string   `json:"idealType,omitempty"`
	Values       []string `json:"values,omitempty"`
}

// MyGroup is the user's matching criteria, immutable once submitted
type MyGroup struct {
	MatchType           string        `json:"matchType"` // "date" or "group"
	Size                int           `json:"size"`      // 1 for date, 2-4 for group
	Members             []GroupMember `json:"members"`
	Region              string        `json:"region"` // "<district> <neighborhood>"
	Atmosphere          string        `json:"atmosphere"`
	GamePreference      string        `json:"gamePreference"`
	PreferredAgeMin     int           `json:"preferredAgeMin"`
	PreferredAgeMax     int           `json:"preferredAgeMax"`
	PreferredUniversity string        `json:"preferredUniversity"`
	PreferredMajorType  string        `json:"preferredMajorType"`
}
