package models

import "time"

// ChatMessage is one entry of the assistant conversation log. The log is
// append-only and kept in insertion order; it is restored verbatim across
// restarts until explicitly reset.
type ChatMessage struct {
	ID        string    `json:"id"` // timestamp-derived
	Text      string    `json:"text"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
}
