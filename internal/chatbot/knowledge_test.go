package chatbot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeKnowledgeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site_data.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadKnowledgeBaseMissingFile(t *testing.T) {
	kb := LoadKnowledgeBase(filepath.Join(t.TempDir(), "missing.json"), zap.NewNop())

	assert.Equal(t, 0, kb.Len())
	assert.Nil(t, kb.Search("trainer"))
}

func TestLoadKnowledgeBaseBadJSON(t *testing.T) {
	path := writeKnowledgeFile(t, "{not json")
	kb := LoadKnowledgeBase(path, zap.NewNop())

	assert.Equal(t, 0, kb.Len())
}

func TestSearchMatchesAndDeduplicates(t *testing.T) {
	path := writeKnowledgeFile(t, `[
		{"title": "Mentors", "section": "About", "content": "Our expert trainers teach worldwide."},
		{"title": "Certificates", "section": "FAQ", "content": "We issue completion certificates after assessments."}
	]`)
	kb := LoadKnowledgeBase(path, zap.NewNop())
	require.Equal(t, 2, kb.Len())

	// "trainer" and "mentor" both select the mentor category; the entry
	// must appear once.
	results := kb.Search("I am looking for a trainer or mentor")
	require.Len(t, results, 1)
	assert.Equal(t, "Mentors", results[0].Title)

	assert.Nil(t, kb.Search("what is the weather today"))
}

func TestBuildContextStripsBoilerplate(t *testing.T) {
	entries := []Entry{
		{Section: "About", Content: "LEARNILM WORLD 🌎 Browse our Mentors Sign In Get started Expert trainers available."},
		{Content: "No section here."},
	}

	ctx := BuildContext(entries)
	assert.Contains(t, ctx, "[About]")
	assert.Contains(t, ctx, "Expert trainers available.")
	assert.NotContains(t, ctx, "Sign In Get started")
	assert.Contains(t, ctx, "[Info] No section here.")
}

func TestBuildContextDefaultWhenEmpty(t *testing.T) {
	ctx := BuildContext(nil)
	assert.Equal(t, "LearnILmWorld connects students with expert trainers for personalized 1-on-1 sessions.", ctx)
}
