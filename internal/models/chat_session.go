package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	UserTypeGuest   = "guest"
	UserTypeStudent = "student"
	UserTypeTrainer = "trainer"
	UserTypeAdmin   = "admin"
)

// ChatTurn is one persisted conversation entry.
type ChatTurn struct {
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatUserContext holds contact details a visitor shares during a chat.
type ChatUserContext struct {
	Name           string `json:"name,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	UserRole       string `json:"userRole,omitempty"`
	LearningGoal   string `json:"learningGoal,omitempty"`
	TargetLanguage string `json:"targetLanguage,omitempty"`
}

// ChatSession is the durable record of one chatbot conversation. The
// conversation list is append-only and ordered by time.
type ChatSession struct {
	ID           uuid.UUID       `db:"id"`
	SessionID    string          `db:"session_id"`
	UserType     string          `db:"user_type"`
	Language     string          `db:"language"`
	Conversation []ChatTurn      `db:"conversation"`
	UserContext  ChatUserContext `db:"user_context"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}
