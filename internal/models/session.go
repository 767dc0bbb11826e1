package models

import (
	"time"

	"gorm.io/gorm"
)

// SessionWindow is the sliding window after which a chat session ages out
const SessionWindow = 24 * time.Hour

// ChatSession stores one customer's conversation with one business.
// Sessions live for a sliding 24-hour window; the store hands out a fresh
// session once the previous one ages out.
type ChatSession struct {
	gorm.Model
	OwnerID     string `json:"owner_id" gorm:"index:idx_session_owner_phone"`
	PhoneNumber string `json:"phone_number" gorm:"index:idx_session_owner_phone"`

	Messages []ChatMessage `json:"messages" gorm:"serializer:json"`
	Context  Context       `json:"context" gorm:"serializer:json"`

	LastMessageAt time.Time `json:"last_message_at"`
}

// Expired reports whether the session has aged out of its window
func (s *ChatSession) Expired(now time.Time) bool {
	return now.Sub(s.LastMessageAt) > SessionWindow
}

// Append adds a message to the session log and refreshes the window
func (s *ChatSession) Append(role, content string) {
	s.Messages = append(s.Messages, ChatMessage{Role: role, Content: content})
	s.LastMessageAt = time.Now()
}
