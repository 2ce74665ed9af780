package chatbot

import (
	"encoding/json"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Entry is a single scraped-content snippet from the site.
type Entry struct {
	Title   string `json:"title"`
	Section string `json:"section"`
	Content string `json:"content"`
}

// KnowledgeBase is a static keyword-indexed snapshot of site content,
// loaded once at startup. A missing or unreadable file leaves the base
// empty and the pipeline degrades to the model-only path.
type KnowledgeBase struct {
	entries []Entry
	logger  *zap.Logger
}

func LoadKnowledgeBase(path string, logger *zap.Logger) *KnowledgeBase {
	kb := &KnowledgeBase{logger: logger}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Knowledge base file not found, continuing without it",
			zap.String("path", path), zap.Error(err))
		return kb
	}

	if err := json.Unmarshal(data, &kb.entries); err != nil {
		logger.Warn("Failed to parse knowledge base file",
			zap.String("path", path), zap.Error(err))
		kb.entries = nil
		return kb
	}

	logger.Info("Knowledge base loaded",
		zap.String("path", path), zap.Int("entries", len(kb.entries)))
	return kb
}

func (kb *KnowledgeBase) Len() int {
	return len(kb.entries)
}

// searchCategories maps query categories to the keywords that select them.
// Order is stable; an entry can be matched by several categories and is
// deduplicated by content.
var searchCategories = []struct {
	category string
	keywords []string
}{
	{"mentor", []string{"mentor", "trainer", "teacher", "instructor", "expert", "educator", "tutor"}},
	{"certificate", []string{"certificate", "certification", "completion", "assessment", "credential"}},
	{"equipment", []string{"equipment", "laptop", "requirements", "device", "tools", "need", "require"}},
	{"class", []string{"class", "lesson", "session", "schedule", "structure", "1-on-1", "virtual"}},
	{"book", []string{"book", "schedule", "reserve", "how to", "get started", "choose", "search", "find"}},
}

const maxSearchResults = 5

// Search returns up to five entries matching any triggered category's
// keywords against content, title or section. Returns nil when the base
// is empty.
func (kb *KnowledgeBase) Search(query string) []Entry {
	if len(kb.entries) == 0 {
		return nil
	}

	query = strings.ToLower(query)

	var matches []Entry
	seen := make(map[string]bool)

	for _, cat := range searchCategories {
		triggered := false
		for _, kw := range cat.keywords {
			if strings.Contains(query, kw) {
				triggered = true
				break
			}
		}
		if !triggered {
			continue
		}

		for _, entry := range kb.entries {
			if seen[entry.Content] {
				continue
			}
			content := strings.ToLower(entry.Content)
			title := strings.ToLower(entry.Title)
			section := strings.ToLower(entry.Section)

			for _, kw := range cat.keywords {
				if strings.Contains(content, kw) || strings.Contains(title, kw) || strings.Contains(section, kw) {
					matches = append(matches, entry)
					seen[entry.Content] = true
					break
				}
			}
		}
	}

	if len(matches) > maxSearchResults {
		matches = matches[:maxSearchResults]
	}
	return matches
}

// Scraped pages carry site chrome that would pollute the prompt.
var boilerplate = []string{
	"LEARNILM WORLD 🌎 Browse our Mentors Sign In Get started",
	"💬 Ask LEARNilM",
	"© 2025 Learnilm World — All rights reserved.",
	"© 2025 Learnilm World — All rights reserved",
}

// BuildContext renders matched entries as a cleaned prompt section.
func BuildContext(entries []Entry) string {
	if len(entries) == 0 {
		return "LearnILmWorld connects students with expert trainers for personalized 1-on-1 sessions."
	}

	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		content := entry.Content
		for _, chrome := range boilerplate {
			content = strings.ReplaceAll(content, chrome, "")
		}
		section := entry.Section
		if section == "" {
			section = "Info"
		}
		parts = append(parts, "["+section+"] "+content)
	}

	return strings.Join(parts, "\n\n")
}
