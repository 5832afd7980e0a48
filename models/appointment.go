package models

// Appointment is a confirmed meeting produced by the booking flow.
// Never edited or deleted once created.
type Appointment struct {
	ID          string `json:"id"`
	MatchID     string `json:"matchId"`
	PartnerName string `json:"partnerName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Status      string `json:"status"`
}
