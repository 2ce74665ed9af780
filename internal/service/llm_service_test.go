package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KartikSaxena19/LearnILmWorld/internal/chatbot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGenerator struct {
	reply      string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestLLM(t *testing.T, gen textGenerator, knowledgeJSON string) (*LLMService, *chatbot.Memory) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "site_data.json")
	if knowledgeJSON != "" {
		require.NoError(t, os.WriteFile(path, []byte(knowledgeJSON), 0o644))
	}

	memory := chatbot.NewMemory()
	svc := &LLMService{
		generator: gen,
		detector:  chatbot.NewDetector(zap.NewNop()),
		kb:        chatbot.LoadKnowledgeBase(path, zap.NewNop()),
		memory:    memory,
		followUp:  chatbot.NewFollowUp(),
		logger:    zap.NewNop(),
	}
	return svc, memory
}

const certKnowledge = `[
	{"title": "Certificates", "section": "FAQ", "content": "We issue completion certificates after assessments."}
]`

func TestGenerateResponseGibberishSkipsModel(t *testing.T) {
	gen := &fakeGenerator{reply: "should not be used"}
	svc, _ := newTestLLM(t, gen, "")

	result, err := svc.GenerateResponse(context.Background(), "asdfghjkl", "s1", "en")
	require.NoError(t, err)

	assert.Equal(t, "random_text_detection", result.Source)
	assert.Contains(t, result.Response, "I'm sorry, I didn't quite understand")
	assert.Equal(t, 0, gen.calls)
}

func TestGenerateResponseNotConfigured(t *testing.T) {
	svc, _ := newTestLLM(t, nil, "")

	_, err := svc.GenerateResponse(context.Background(), "do you offer certificates", "s1", "en")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGenerateResponseCannedAnswerSkipsModel(t *testing.T) {
	gen := &fakeGenerator{reply: "should not be used"}
	svc, _ := newTestLLM(t, gen, certKnowledge)

	result, err := svc.GenerateResponse(context.Background(), "do you offer certificates", "s1", "en")
	require.NoError(t, err)

	assert.Equal(t, "website_data_direct", result.Source)
	assert.Contains(t, result.Response, "completion certificates")
	assert.Contains(t, result.Response, chatbot.FollowUpMarker)
	assert.Equal(t, 0, gen.calls)
}

func TestGenerateResponseAppendsMissingFollowUp(t *testing.T) {
	gen := &fakeGenerator{reply: "Our pricing varies by trainer."}
	svc, _ := newTestLLM(t, gen, "")

	result, err := svc.GenerateResponse(context.Background(), "tell me about pricing", "s1", "en")
	require.NoError(t, err)

	assert.Equal(t, "gemini_with_followup", result.Source)
	assert.True(t, strings.HasPrefix(result.Response, "Our pricing varies by trainer."))
	assert.Contains(t, result.Response, chatbot.FollowUpMarker)
	assert.Equal(t, 1, gen.calls)
}

func TestGenerateResponseWeakReplyCleanFallback(t *testing.T) {
	gen := &fakeGenerator{reply: "I'm sorry, I cannot help with that. 💡 Anything else?"}
	svc, _ := newTestLLM(t, gen, "")

	result, err := svc.GenerateResponse(context.Background(), "tell me about pricing", "s1", "en")
	require.NoError(t, err)

	assert.Equal(t, "clean_fallback", result.Source)
	assert.Contains(t, result.Response, "I'd be happy to help you with that!")
	assert.Contains(t, result.Response, chatbot.FollowUpMarker)
}

func TestGenerateResponseRateLimitPropagates(t *testing.T) {
	gen := &fakeGenerator{err: ErrRateLimited}
	svc, _ := newTestLLM(t, gen, "")

	_, err := svc.GenerateResponse(context.Background(), "tell me about pricing", "s1", "en")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestGenerateResponseModelErrorFallsBack(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("boom")}
	svc, _ := newTestLLM(t, gen, "")

	result, err := svc.GenerateResponse(context.Background(), "tell me about pricing", "s1", "en")
	require.NoError(t, err)

	assert.Equal(t, "error_fallback", result.Source)
	assert.Contains(t, result.Response, "Welcome to LearnILmWorld!")
	assert.Contains(t, result.Response, chatbot.FollowUpMarker)
}

func TestGenerateResponsePromptCarriesContext(t *testing.T) {
	gen := &fakeGenerator{reply: "Answer. 💡 More?"}
	svc, memory := newTestLLM(t, gen, "")

	memory.AddMessage("s1", chatbot.RoleUser, "do you have math classes?")
	memory.AddMessage("s1", chatbot.RoleAssistant, "Yes, we do.")

	_, err := svc.GenerateResponse(context.Background(), "tell me about pricing", "s1", "en")
	require.NoError(t, err)

	assert.Contains(t, gen.lastPrompt, "WEBSITE INFORMATION:")
	assert.Contains(t, gen.lastPrompt, `CURRENT USER QUESTION: "tell me about pricing"`)
	assert.Contains(t, gen.lastPrompt, "User: do you have math classes?")
	assert.Contains(t, gen.lastPrompt, "Assistant: Yes, we do.")
	assert.Contains(t, gen.lastPrompt, "Previous conversation context:")
	assert.Contains(t, gen.lastPrompt, chatbot.FollowUpMarker)
	assert.Contains(t, gen.lastPrompt, "Language: en")
}
