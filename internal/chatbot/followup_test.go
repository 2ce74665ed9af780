package chatbot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateFollowUpByTopic(t *testing.T) {
	f := &FollowUp{pick: func(n int) int { return 0 }}

	q := f.Generate("I need a trainer", nil, "en")
	assert.Equal(t, followUpQuestions["en"]["trainer"][0], q)

	q = f.Generate("what about certificates", nil, "en")
	assert.Equal(t, followUpQuestions["en"]["certificate"][0], q)
}

func TestGenerateFollowUpDefaultTopic(t *testing.T) {
	f := &FollowUp{pick: func(n int) int { return 1 }}

	q := f.Generate("tell me about pricing", nil, "en")
	assert.Equal(t, followUpQuestions["en"]["default"][1], q)
}

func TestGenerateFollowUpLanguageFallback(t *testing.T) {
	f := &FollowUp{pick: func(n int) int { return 0 }}

	// Hindi has trainer questions but no certificate ones, so the topic
	// falls back to the Hindi default set.
	q := f.Generate("what about certificates", nil, "hi")
	assert.Equal(t, followUpQuestions["hi"]["default"][0], q)

	// Unsupported languages use English
	q = f.Generate("I need a trainer", nil, "fr")
	assert.Equal(t, followUpQuestions["en"]["trainer"][0], q)
}

func TestGenerateFollowUpIsAlwaysFromKnownSet(t *testing.T) {
	f := NewFollowUp()

	for i := 0; i < 20; i++ {
		q := f.Generate("I need a trainer", nil, "en")
		assert.Contains(t, followUpQuestions["en"]["trainer"], q)
	}
}

func TestAppendUsesMarker(t *testing.T) {
	out := Append("Here is your answer.", "Anything else?")

	assert.True(t, strings.HasPrefix(out, "Here is your answer."))
	assert.Contains(t, out, "\n\n"+FollowUpMarker+" Anything else?")
}
