package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/KartikSaxena19/LearnILmWorld/internal/chatbot"
	"github.com/KartikSaxena19/LearnILmWorld/internal/dto"
	"github.com/KartikSaxena19/LearnILmWorld/internal/models"
	"github.com/KartikSaxena19/LearnILmWorld/pkg/config"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var ErrSessionNotFound = errors.New("chat session not found")

// genericFallback is shown when the whole pipeline errors out, so the
// user never sees a bare failure.
const genericFallback = "I'd be happy to help you with LearnILmWorld! What would you like to know?"

// chatStore is the persistence surface ChatService needs; the pgx-backed
// repository satisfies it, tests use an in-memory fake.
type chatStore interface {
	Create(ctx context.Context, session *models.ChatSession) error
	GetBySessionID(ctx context.Context, sessionID string) (*models.ChatSession, error)
	Update(ctx context.Context, session *models.ChatSession) error
	Delete(ctx context.Context, sessionID string) error
}

// ChatService orchestrates chat sessions: it owns session lifecycle and
// durable history, and delegates reply selection to the LLM pipeline.
type ChatService struct {
	store  chatStore
	llm    *LLMService
	memory *chatbot.Memory
	cfg    *config.ChatbotConfig
	logger *zap.Logger
	now    func() time.Time
}

func NewChatService(store chatStore, llm *LLMService, memory *chatbot.Memory, cfg *config.ChatbotConfig, logger *zap.Logger) *ChatService {
	return &ChatService{
		store:  store,
		llm:    llm,
		memory: memory,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

const sessionIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func newSessionID(now time.Time) string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = sessionIDAlphabet[rand.Intn(len(sessionIDAlphabet))]
	}
	return fmt.Sprintf("chat_%d_%s", now.UnixMilli(), suffix)
}

// StartChat creates a session and seeds it with the time-of-day welcome
// message. The welcome never goes through the model.
func (s *ChatService) StartChat(ctx context.Context, req *dto.StartChatRequest) (*dto.StartChatResponse, error) {
	now := s.now()

	language := req.Language
	if language == "" {
		language = "en"
	}
	userType := req.UserType
	if userType == "" {
		userType = models.UserTypeGuest
	}

	sessionID := newSessionID(now)
	welcome := chatbot.WelcomeMessage(now, language)

	s.memory.AddMessage(sessionID, chatbot.RoleAssistant, welcome)

	session := &models.ChatSession{
		ID:        uuid.New(),
		SessionID: sessionID,
		UserType:  userType,
		Language:  language,
		Conversation: []models.ChatTurn{
			{Role: chatbot.RoleAssistant, Message: welcome, Timestamp: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Create(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("Chat session started",
		zap.String("session_id", sessionID),
		zap.String("language", language),
		zap.String("user_type", userType))

	return &dto.StartChatResponse{
		SessionID:    sessionID,
		Conversation: session.Conversation,
	}, nil
}

// SendMessage records the user's turn, runs the reply pipeline and
// persists both turns. Pipeline errors degrade to a generic reply
// tagged "fallback" rather than failing the request; a persistence
// failure does fail it, since the conversation would be lost.
func (s *ChatService) SendMessage(ctx context.Context, req *dto.ChatMessageRequest) (*dto.ChatMessageResponse, error) {
	session, err := s.store.GetBySessionID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	language := req.Language
	if language == "" {
		language = session.Language
	}

	s.memory.AddMessage(req.SessionID, chatbot.RoleUser, req.Message)

	result, err := s.llm.GenerateResponse(ctx, req.Message, req.SessionID, language)
	if err != nil {
		s.logger.Warn("Reply pipeline failed, using generic fallback",
			zap.String("session_id", req.SessionID), zap.Error(err))
		result = &GenerationResult{
			Response: genericFallback,
			Source:   "fallback",
		}
	}

	s.memory.AddMessage(req.SessionID, chatbot.RoleAssistant, result.Response)

	now := s.now()
	session.Conversation = append(session.Conversation,
		models.ChatTurn{Role: chatbot.RoleUser, Message: sanitizeUTF8(req.Message), Timestamp: now},
		models.ChatTurn{Role: chatbot.RoleAssistant, Message: sanitizeUTF8(result.Response), Timestamp: now},
	)
	session.Language = language
	session.UpdatedAt = now

	if err := s.store.Update(ctx, session); err != nil {
		s.logger.Error("Failed to persist conversation",
			zap.String("session_id", req.SessionID), zap.Error(err))
		return nil, err
	}

	return &dto.ChatMessageResponse{
		Response:     result.Response,
		Source:       result.Source,
		Conversation: session.Conversation,
	}, nil
}

// History returns the durable conversation for a session.
func (s *ChatService) History(ctx context.Context, sessionID string) (*dto.ChatHistoryResponse, error) {
	session, err := s.store.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return &dto.ChatHistoryResponse{
		Conversation: session.Conversation,
		UserContext:  session.UserContext,
	}, nil
}

// SaveUser attaches contact details a visitor shared mid-chat to the
// session record and confirms it with an assistant turn.
func (s *ChatService) SaveUser(ctx context.Context, req *dto.SaveChatUserRequest) error {
	session, err := s.store.GetBySessionID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSessionNotFound
		}
		return err
	}

	name := sanitizeUTF8(req.Name)
	session.UserContext.Name = name
	session.UserContext.Phone = sanitizeUTF8(req.Phone)
	session.UserContext.Email = sanitizeUTF8(req.Email)
	session.UserContext.UserRole = sanitizeUTF8(req.Role)
	session.UserContext.LearningGoal = sanitizeUTF8(req.LearningGoal)
	session.UserContext.TargetLanguage = sanitizeUTF8(req.TargetLanguage)
	session.UserType = req.Role

	now := s.now()
	session.Conversation = append(session.Conversation, models.ChatTurn{
		Role:      chatbot.RoleAssistant,
		Message:   fmt.Sprintf("Thank you %s, your details are saved successfully.", name),
		Timestamp: now,
	})
	session.UpdatedAt = now

	if err := s.store.Update(ctx, session); err != nil {
		return err
	}

	s.logger.Info("Chat user details saved", zap.String("session_id", req.SessionID))
	return nil
}

// MemoryInfo exposes the in-memory record for a session: history, the
// derived context, and how long the session has been alive.
func (s *ChatService) MemoryInfo(sessionID string) *dto.ChatMemoryResponse {
	rec := s.memory.Get(sessionID)
	return &dto.ChatMemoryResponse{
		ConversationHistory: rec.History,
		Context:             rec.Context,
		SessionAgeMS:        s.now().Sub(rec.CreatedAt).Milliseconds(),
	}
}

// DeleteSession removes both the durable record and the in-memory state.
func (s *ChatService) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.memory.Delete(sessionID)
	s.logger.Info("Chat session deleted", zap.String("session_id", sessionID))
	return nil
}

// StartJanitor sweeps idle in-memory sessions until the context is
// cancelled.
func (s *ChatService) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.cfg.CleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if evicted := s.memory.Cleanup(s.cfg.MemoryMaxAge); evicted > 0 {
					s.logger.Info("Cleaned up idle chat sessions", zap.Int("evicted", evicted))
				}
			}
		}
	}()
}
