package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KartikSaxena19/LearnILmWorld/internal/chatbot"
	"github.com/KartikSaxena19/LearnILmWorld/pkg/config"

	"go.uber.org/zap"
)

var (
	ErrNotConfigured = errors.New("generation api key not configured")
	ErrRateLimited   = errors.New("generation rate limit exceeded")
)

// textGenerator is the single capability the pipeline needs from a
// generation backend, so tests can swap in a fake.
type textGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GenerationResult carries a reply plus the provenance tag reported to
// clients.
type GenerationResult struct {
	Response string
	Source   string
}

// LLMService runs the response-selection pipeline: gibberish detection,
// knowledge-base lookup, canned answer synthesis, and finally a model
// call with quality filtering on the output.
type LLMService struct {
	generator textGenerator
	detector  *chatbot.Detector
	kb        *chatbot.KnowledgeBase
	memory    *chatbot.Memory
	followUp  *chatbot.FollowUp
	logger    *zap.Logger
}

func NewLLMService(cfg *config.GeminiConfig, kb *chatbot.KnowledgeBase, memory *chatbot.Memory, logger *zap.Logger) *LLMService {
	var generator textGenerator
	if cfg.APIKey != "" {
		generator = newGeminiClient(cfg, logger)
	} else {
		logger.Warn("GOOGLE_API_KEY is not set, model generation is disabled")
	}

	return &LLMService{
		generator: generator,
		detector:  chatbot.NewDetector(logger),
		kb:        kb,
		memory:    memory,
		followUp:  chatbot.NewFollowUp(),
		logger:    logger,
	}
}

// Weak model replies that read like refusals get replaced with a canned
// answer instead of being shown to the user.
var weakPhrases = []string{
	"i'm sorry", "i cannot", "unable to", "i don't have",
	"i couldn't find", "no information", "contact support",
}

// GenerateResponse selects one reply for a user message. ErrNotConfigured
// and ErrRateLimited are returned to the caller; every other failure is
// absorbed into a canned-answer fallback so the user always gets a reply.
func (s *LLMService) GenerateResponse(ctx context.Context, message, sessionID, language string) (*GenerationResult, error) {
	if s.detector.IsRandom(message) {
		return &GenerationResult{
			Response: s.detector.ConfusedResponse(language),
			Source:   "random_text_detection",
		}, nil
	}

	if s.generator == nil {
		return nil, ErrNotConfigured
	}

	websiteData := s.kb.Search(message)

	if manual := chatbot.Synthesize(message, websiteData, language); manual != "" {
		return &GenerationResult{
			Response: s.withFollowUp(manual, message, sessionID, language),
			Source:   "website_data_direct",
		}, nil
	}

	prompt := s.buildPrompt(message, sessionID, language, websiteData)

	answer, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		if errors.Is(err, ErrRateLimited) {
			s.logger.Warn("Generation rate limit hit", zap.String("session_id", sessionID))
			return nil, ErrRateLimited
		}
		s.logger.Error("Generation failed, using canned fallback",
			zap.String("session_id", sessionID), zap.Error(err))
		return s.errorFallback(message, websiteData, sessionID, language), nil
	}

	if !strings.Contains(answer, chatbot.FollowUpMarker) {
		answer = s.withFollowUp(answer, message, sessionID, language)
	}

	if hasWeakPhrase(answer) {
		s.logger.Info("Model reply contained weak phrasing, using canned fallback",
			zap.String("session_id", sessionID))
		fallback := chatbot.Synthesize(message, websiteData, language)
		if fallback == "" {
			fallback = "I'd be happy to help you with that!"
		}
		return &GenerationResult{
			Response: s.withFollowUp(fallback, message, sessionID, language),
			Source:   "clean_fallback",
		}, nil
	}

	return &GenerationResult{
		Response: answer,
		Source:   "gemini_with_followup",
	}, nil
}

func (s *LLMService) buildPrompt(message, sessionID, language string, websiteData []chatbot.Entry) string {
	websiteContext := chatbot.BuildContext(websiteData)
	summary := s.memory.Summary(sessionID)

	history := formatHistory(s.memory.RecentHistory(sessionID, 0))

	var recentContext string
	if recent := s.memory.RecentHistory(sessionID, 3); len(recent) > 0 {
		recentContext = "Recent conversation:\n" + formatHistory(recent)
	}

	return fmt.Sprintf(`You are LearnILmWorld's helpful assistant. Always end your response with a relevant follow-up question to keep the conversation engaging.

Conversation so far:
%s

WEBSITE INFORMATION:
%s

%s

%s

CURRENT USER QUESTION: "%s"

INSTRUCTIONS:
1. Give a clear, direct answer to the question
2. Use previous conversation context to make responses more relevant
3. Always end with a relevant follow-up question to engage the user
4. Make the follow-up question specific to what was discussed
5. Use bullet points or numbered lists for steps/features
6. Keep it conversational and helpful
7. Language: %s

IMPORTANT: Always end your response with a follow-up question starting with "%s"

ANSWER:`,
		history, websiteContext, summary, recentContext, message, language, chatbot.FollowUpMarker)
}

func (s *LLMService) withFollowUp(response, message, sessionID, language string) string {
	topics := s.memory.Get(sessionID).Context.Topics
	question := s.followUp.Generate(message, topics, language)
	return chatbot.Append(response, question)
}

func (s *LLMService) errorFallback(message string, websiteData []chatbot.Entry, sessionID, language string) *GenerationResult {
	answer := chatbot.Synthesize(message, websiteData, language)
	if answer == "" {
		answer = "Welcome to LearnILmWorld! I can help you find expert trainers, learn about our courses, or answer any questions about our services."
	}
	return &GenerationResult{
		Response: s.withFollowUp(answer, message, sessionID, language),
		Source:   "error_fallback",
	}
}

func formatHistory(turns []chatbot.Turn) string {
	var b strings.Builder
	for _, turn := range turns {
		role := "Assistant"
		if turn.Role == chatbot.RoleUser {
			role = "User"
		}
		fmt.Fprintf(&b, "%s: %s\n", role, turn.Message)
	}
	return b.String()
}

func hasWeakPhrase(answer string) bool {
	lower := strings.ToLower(answer)
	for _, phrase := range weakPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
