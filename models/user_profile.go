package models

// UserProfile defines the structure for the authenticated user's profile
type UserProfile struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	ProfileImage string   `json:"profileImage,omitempty"`
	IsVerified   bool     `json:"isVerified"`
	Gender       string   `json:"gender"`
	Age          int      `json:"age"`
	University   string   `json:"university"`
	Major        string   `json:"major"`
	Bio          string   `json:"bio"`
	MBTI         string   `json:"mbti,omitempty"`
	InstaID      string   `json:"instaId,omitempty"`
	FaceType     string   `json:"faceType,omitempty"`
	IdealType    string   `json:"idealType,omitempty"`
	Values       []string `json:"values,omitempty"`
}
