package models

// MatchGroup is a candidate (or confirmed) match returned by the generator.
// Once the user selects it, it is promoted into AppState.Matches and stays
// addressable from the chat list for the rest of the session.
type MatchGroup struct {
	ID         string        `json:"id"`
	University string        `json:"university"`
	Department string        `json:"department"`
	AvgAge     float64       `json:"avgAge"`
	Members    []GroupMember `json:"members"`
	Region     string        `json:"region"`
	Atmosphere string        `json:"atmosphere"`
	Bio        string        `json:"bio"`
	MatchScore float64       `json:"matchScore,omitempty"`
}
