package models

// ChatMessage is a single chat entry. Append-only per match; ordering is
// insertion order and messages are never mutated after creation.
type ChatMessage struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"` // "me", "partner" or "system"
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds, monotonic per history
	IsImage   bool   `json:"isImage,omitempty"`
}
