package chatbot

import (
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	maxHistoryLength = 10
)

// Turn is a single exchange entry in a session's short-term history.
type Turn struct {
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Context holds what the pipeline has derived about a session so far.
type Context struct {
	Topics          []string `json:"mentioned_topics"`
	Interests       []string `json:"user_interests"`
	RecentQuestions []string `json:"previous_questions"`
	Role            string   `json:"role,omitempty"`
}

// Record is the in-memory state kept per chat session. It is a derived
// cache, not a system of record: durable history lives in the database.
type Record struct {
	History      []Turn    `json:"conversation_history"`
	Context      Context   `json:"context"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
}

// Memory stores per-session conversation records keyed by session id.
// Expiry is driven by the Cleanup sweep rather than per-item TTLs so the
// idle threshold can be chosen per sweep and tests can inject a clock.
type Memory struct {
	records *cache.Cache
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		records: cache.New(cache.NoExpiration, 0),
		now:     time.Now,
	}
}

// Get returns the session's record, creating it on first access.
func (m *Memory) Get(sessionID string) *Record {
	if x, found := m.records.Get(sessionID); found {
		return x.(*Record)
	}
	now := m.now()
	rec := &Record{
		CreatedAt:    now,
		LastActivity: now,
	}
	m.records.Set(sessionID, rec, cache.NoExpiration)
	return rec
}

// AddMessage appends a turn, truncates history to the most recent entries
// and recomputes the derived context.
func (m *Memory) AddMessage(sessionID, role, message string) *Record {
	rec := m.Get(sessionID)

	rec.History = append(rec.History, Turn{
		Role:      role,
		Message:   message,
		Timestamp: m.now(),
	})
	if len(rec.History) > maxHistoryLength {
		rec.History = rec.History[len(rec.History)-maxHistoryLength:]
	}
	rec.LastActivity = m.now()

	rec.Context = deriveContext(rec.History)
	m.records.Set(sessionID, rec, cache.NoExpiration)

	return rec
}

// RecentHistory returns up to max of the most recent turns, oldest first.
func (m *Memory) RecentHistory(sessionID string, max int) []Turn {
	rec := m.Get(sessionID)
	if max <= 0 || max >= len(rec.History) {
		return rec.History
	}
	return rec.History[len(rec.History)-max:]
}

// Summary renders a short digest of the derived context for prompt
// embedding, or "" when nothing has been derived yet.
func (m *Memory) Summary(sessionID string) string {
	ctx := m.Get(sessionID).Context

	var b strings.Builder
	b.WriteString("Previous conversation context:\n")
	empty := b.Len()

	if len(ctx.Topics) > 0 {
		fmt.Fprintf(&b, "- Discussed topics: %s\n", strings.Join(ctx.Topics, ", "))
	}
	if len(ctx.Interests) > 0 {
		fmt.Fprintf(&b, "- User interests: %s\n", strings.Join(ctx.Interests, ", "))
	}
	if len(ctx.RecentQuestions) > 0 {
		fmt.Fprintf(&b, "- Recent questions: %s\n", strings.Join(ctx.RecentQuestions, "; "))
	}
	if ctx.Role != "" {
		fmt.Fprintf(&b, "- User is a: %s\n", ctx.Role)
	}

	if b.Len() == empty {
		return ""
	}
	return b.String()
}

// Delete removes a session's record.
func (m *Memory) Delete(sessionID string) {
	m.records.Delete(sessionID)
}

// Cleanup removes records idle for longer than maxAge and returns how many
// were evicted.
func (m *Memory) Cleanup(maxAge time.Duration) int {
	now := m.now()
	evicted := 0
	for key, item := range m.records.Items() {
		rec, ok := item.Object.(*Record)
		if !ok {
			continue
		}
		if now.Sub(rec.LastActivity) > maxAge {
			m.records.Delete(key)
			evicted++
		}
	}
	return evicted
}

// topicKeywords maps conversation topics to trigger keywords. Order is
// stable so derived topic lists are deterministic.
var topicKeywords = []struct {
	topic    string
	keywords []string
}{
	{"trainers", []string{"trainer", "mentor", "teacher", "instructor", "expert"}},
	{"certificates", []string{"certificate", "certification", "completion"}},
	{"equipment", []string{"equipment", "laptop", "computer", "webcam", "microphone"}},
	{"classes", []string{"class", "lesson", "session", "schedule"}},
	{"booking", []string{"book", "reserve", "schedule", "appointment"}},
	{"pricing", []string{"price", "cost", "fee", "payment"}},
	{"subjects", []string{"subject", "course", "language", "math", "science", "programming"}},
}

var interestKeywords = []struct {
	interest string
	keywords []string
}{
	{"languages", []string{"language"}},
	{"math", []string{"math"}},
	{"science", []string{"science"}},
	{"programming", []string{"programming", "coding"}},
}

func deriveContext(history []Turn) Context {
	return Context{
		Topics:          extractTopics(history),
		Interests:       extractInterests(history),
		RecentQuestions: extractQuestions(history),
		Role:            inferRole(history),
	}
}

func extractTopics(history []Turn) []string {
	var topics []string
	seen := make(map[string]bool)

	for _, turn := range history {
		message := strings.ToLower(turn.Message)
		for _, entry := range topicKeywords {
			if seen[entry.topic] {
				continue
			}
			for _, kw := range entry.keywords {
				if strings.Contains(message, kw) {
					topics = append(topics, entry.topic)
					seen[entry.topic] = true
					break
				}
			}
		}
	}

	return topics
}

func extractInterests(history []Turn) []string {
	var interests []string
	seen := make(map[string]bool)

	for _, turn := range history {
		if turn.Role != RoleUser {
			continue
		}
		message := strings.ToLower(turn.Message)
		if !strings.Contains(message, "learn") && !strings.Contains(message, "study") &&
			!strings.Contains(message, "interested") {
			continue
		}
		for _, entry := range interestKeywords {
			if seen[entry.interest] {
				continue
			}
			for _, kw := range entry.keywords {
				if strings.Contains(message, kw) {
					interests = append(interests, entry.interest)
					seen[entry.interest] = true
					break
				}
			}
		}
	}

	return interests
}

// extractQuestions keeps the last three user turns that look like questions.
func extractQuestions(history []Turn) []string {
	var questions []string
	for _, turn := range history {
		if turn.Role != RoleUser {
			continue
		}
		lower := strings.ToLower(turn.Message)
		if strings.Contains(turn.Message, "?") || strings.Contains(lower, "how") ||
			strings.Contains(lower, "what") || strings.Contains(lower, "who") {
			questions = append(questions, turn.Message)
		}
	}
	if len(questions) > 3 {
		questions = questions[len(questions)-3:]
	}
	return questions
}

// inferRole tags the user as student or trainer, last match wins.
func inferRole(history []Turn) string {
	role := ""
	for _, turn := range history {
		if turn.Role != RoleUser {
			continue
		}
		message := strings.ToLower(turn.Message)
		if strings.Contains(message, "student") || strings.Contains(message, "learn") {
			role = "student"
		}
		if strings.Contains(message, "trainer") || strings.Contains(message, "teach") {
			role = "trainer"
		}
	}
	return role
}
