package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/KartikSaxena19/LearnILmWorld/internal/chatbot"
	"github.com/KartikSaxena19/LearnILmWorld/internal/dto"
	"github.com/KartikSaxena19/LearnILmWorld/internal/models"
	"github.com/KartikSaxena19/LearnILmWorld/pkg/config"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStore struct {
	sessions  map[string]*models.ChatSession
	updateErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{sessions: make(map[string]*models.ChatSession)}
}

func (s *fakeStore) Create(ctx context.Context, session *models.ChatSession) error {
	s.sessions[session.SessionID] = session
	return nil
}

func (s *fakeStore) GetBySessionID(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return session, nil
}

func (s *fakeStore) Update(ctx context.Context, session *models.ChatSession) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.sessions[session.SessionID] = session
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func newTestChatService(t *testing.T, gen textGenerator) (*ChatService, *fakeStore, *fakeGenerator) {
	t.Helper()

	fake, _ := gen.(*fakeGenerator)
	store := newFakeStore()
	memory := chatbot.NewMemory()

	llm := &LLMService{
		generator: gen,
		detector:  chatbot.NewDetector(zap.NewNop()),
		kb:        chatbot.LoadKnowledgeBase("does-not-exist.json", zap.NewNop()),
		memory:    memory,
		followUp:  chatbot.NewFollowUp(),
		logger:    zap.NewNop(),
	}

	cfg := &config.ChatbotConfig{
		MemoryMaxAge:    24 * time.Hour,
		CleanupInterval: time.Minute,
	}
	svc := NewChatService(store, llm, memory, cfg, zap.NewNop())
	return svc, store, fake
}

func TestStartChatSeedsWelcome(t *testing.T) {
	gen := &fakeGenerator{reply: "should not be used"}
	svc, store, _ := newTestChatService(t, gen)

	resp, err := svc.StartChat(context.Background(), &dto.StartChatRequest{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.SessionID, "chat_"))
	require.Len(t, resp.Conversation, 1)
	assert.Equal(t, chatbot.RoleAssistant, resp.Conversation[0].Role)
	assert.Contains(t, resp.Conversation[0].Message, "Welcome to LearnILmWorld!")

	// The welcome never goes through the model
	assert.Equal(t, 0, gen.calls)

	stored, ok := store.sessions[resp.SessionID]
	require.True(t, ok)
	assert.Equal(t, models.UserTypeGuest, stored.UserType)
	assert.Equal(t, "en", stored.Language)
}

func TestSendMessageGibberishEndToEnd(t *testing.T) {
	gen := &fakeGenerator{reply: "should not be used"}
	svc, store, _ := newTestChatService(t, gen)

	started, err := svc.StartChat(context.Background(), &dto.StartChatRequest{})
	require.NoError(t, err)

	resp, err := svc.SendMessage(context.Background(), &dto.ChatMessageRequest{
		SessionID: started.SessionID,
		Message:   "asdfghjkl",
	})
	require.NoError(t, err)

	assert.Equal(t, "random_text_detection", resp.Source)
	assert.Equal(t, 0, gen.calls)

	// Welcome + user turn + assistant turn
	stored := store.sessions[started.SessionID]
	require.Len(t, stored.Conversation, 3)
	assert.Equal(t, "asdfghjkl", stored.Conversation[1].Message)
	assert.Equal(t, resp.Response, stored.Conversation[2].Message)
}

func TestSendMessageModelPath(t *testing.T) {
	gen := &fakeGenerator{reply: "Pricing depends on the trainer. 💡 Want details?"}
	svc, _, _ := newTestChatService(t, gen)

	started, err := svc.StartChat(context.Background(), &dto.StartChatRequest{})
	require.NoError(t, err)

	resp, err := svc.SendMessage(context.Background(), &dto.ChatMessageRequest{
		SessionID: started.SessionID,
		Message:   "tell me about pricing",
	})
	require.NoError(t, err)

	assert.Equal(t, "gemini_with_followup", resp.Source)
	assert.Equal(t, "Pricing depends on the trainer. 💡 Want details?", resp.Response)
	assert.Equal(t, 1, gen.calls)
}

func TestSendMessageUnknownSession(t *testing.T) {
	svc, _, _ := newTestChatService(t, &fakeGenerator{})

	_, err := svc.SendMessage(context.Background(), &dto.ChatMessageRequest{
		SessionID: "chat_123_missing",
		Message:   "hello there",
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSendMessageDegradesToGenericFallback(t *testing.T) {
	// No generator configured: the pipeline errors and the user still
	// gets a reply.
	svc, store, _ := newTestChatService(t, nil)

	started, err := svc.StartChat(context.Background(), &dto.StartChatRequest{})
	require.NoError(t, err)

	resp, err := svc.SendMessage(context.Background(), &dto.ChatMessageRequest{
		SessionID: started.SessionID,
		Message:   "tell me about pricing",
	})
	require.NoError(t, err)

	assert.Equal(t, "fallback", resp.Source)
	assert.Equal(t, genericFallback, resp.Response)
	require.Len(t, store.sessions[started.SessionID].Conversation, 3)
}

func TestSaveUser(t *testing.T) {
	svc, store, _ := newTestChatService(t, &fakeGenerator{})

	started, err := svc.StartChat(context.Background(), &dto.StartChatRequest{})
	require.NoError(t, err)

	err = svc.SaveUser(context.Background(), &dto.SaveChatUserRequest{
		SessionID:    started.SessionID,
		Name:         "Asha",
		Phone:        "+911234567890",
		Email:        "asha@example.com",
		Role:         "student",
		LearningGoal: "conversational French",
	})
	require.NoError(t, err)

	stored := store.sessions[started.SessionID]
	assert.Equal(t, "Asha", stored.UserContext.Name)
	assert.Equal(t, "conversational French", stored.UserContext.LearningGoal)
	assert.Equal(t, "student", stored.UserType)

	// Saving details confirms with an assistant turn after the welcome.
	require.Len(t, stored.Conversation, 2)
	last := stored.Conversation[1]
	assert.Equal(t, chatbot.RoleAssistant, last.Role)
	assert.Equal(t, "Thank you Asha, your details are saved successfully.", last.Message)

	err = svc.SaveUser(context.Background(), &dto.SaveChatUserRequest{SessionID: "missing"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSendMessageFailsWhenPersistFails(t *testing.T) {
	gen := &fakeGenerator{reply: "Pricing depends on the trainer. 💡 Want details?"}
	svc, store, _ := newTestChatService(t, gen)

	started, err := svc.StartChat(context.Background(), &dto.StartChatRequest{})
	require.NoError(t, err)

	store.updateErr = errors.New("connection refused")

	_, err = svc.SendMessage(context.Background(), &dto.ChatMessageRequest{
		SessionID: started.SessionID,
		Message:   "tell me about pricing",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
}

func TestDeleteSessionClearsStoreAndMemory(t *testing.T) {
	svc, store, _ := newTestChatService(t, &fakeGenerator{})

	started, err := svc.StartChat(context.Background(), &dto.StartChatRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSession(context.Background(), started.SessionID))

	_, ok := store.sessions[started.SessionID]
	assert.False(t, ok)
	assert.Empty(t, svc.memory.Get(started.SessionID).History)
}

func TestMemoryInfo(t *testing.T) {
	svc, _, _ := newTestChatService(t, &fakeGenerator{})

	started, err := svc.StartChat(context.Background(), &dto.StartChatRequest{})
	require.NoError(t, err)

	info := svc.MemoryInfo(started.SessionID)
	require.Len(t, info.ConversationHistory, 1)
	assert.GreaterOrEqual(t, info.SessionAgeMS, int64(0))
}
