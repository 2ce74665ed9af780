package dto

import (
	"github.com/KartikSaxena19/LearnILmWorld/internal/chatbot"
	"github.com/KartikSaxena19/LearnILmWorld/internal/models"
)

type StartChatRequest struct {
	Language string `json:"language" validate:"omitempty,oneof=en de fr ja es sa hi"`
	UserType string `json:"userType" validate:"omitempty,oneof=student trainer admin guest"`
}

type StartChatResponse struct {
	SessionID    string            `json:"sessionId"`
	Conversation []models.ChatTurn `json:"conversation"`
}

type ChatMessageRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
	Message   string `json:"message" validate:"required"`
	Language  string `json:"language" validate:"omitempty,oneof=en de fr ja es sa hi"`
}

type ChatMessageResponse struct {
	Response     string            `json:"response"`
	Source       string            `json:"source"`
	Conversation []models.ChatTurn `json:"conversation"`
}

type ChatHistoryResponse struct {
	Conversation []models.ChatTurn      `json:"conversation"`
	UserContext  models.ChatUserContext `json:"userContext"`
}

type SaveChatUserRequest struct {
	SessionID      string `json:"sessionId" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Role           string `json:"role" validate:"required"`
	LearningGoal   string `json:"learningGoal" validate:"omitempty"`
	TargetLanguage string `json:"targetLanguage" validate:"omitempty"`
}

type ChatMemoryResponse struct {
	ConversationHistory []chatbot.Turn  `json:"conversationHistory"`
	Context             chatbot.Context `json:"context"`
	SessionAgeMS        int64           `json:"sessionAge"`
}
