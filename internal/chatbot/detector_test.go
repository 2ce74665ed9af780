package chatbot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestIsRandomKeyboardMash(t *testing.T) {
	d := NewDetector(zap.NewNop())

	assert.True(t, d.IsRandom("asdfghjkl"))
	assert.True(t, d.IsRandom("qwertyuiop"))
	assert.True(t, d.IsRandom("zxcvbnm"))
}

func TestIsRandomRepeatedPatterns(t *testing.T) {
	d := NewDetector(zap.NewNop())

	assert.True(t, d.IsRandom("aaaaaa"))
	assert.True(t, d.IsRandom("hahahaha"))
	assert.True(t, d.IsRandom("abababab"))
}

func TestIsRandomKnownNonsenseStrings(t *testing.T) {
	d := NewDetector(zap.NewNop())

	assert.True(t, d.IsRandom("fyxgnaxsgykids"))
	assert.True(t, d.IsRandom("htyckigh"))
}

func TestIsRandomAllowsLegitimateText(t *testing.T) {
	d := NewDetector(zap.NewNop())

	cases := []string{
		"What is math?",
		"hello",
		"I need a trainer for my son",
		"do you offer certificates",
		"how much does it cost",
	}
	for _, c := range cases {
		assert.False(t, d.IsRandom(c), "expected %q to be legitimate", c)
	}
}

func TestIsRandomShortAndEmptyInput(t *testing.T) {
	d := NewDetector(zap.NewNop())

	assert.False(t, d.IsRandom(""))
	assert.False(t, d.IsRandom("  "))
	assert.False(t, d.IsRandom("ab"))
}

func TestIsRandomNoVowelsRun(t *testing.T) {
	d := NewDetector(zap.NewNop())

	assert.True(t, d.IsRandom("bcdfghjk"))
}

func TestConfusedResponseLanguages(t *testing.T) {
	d := NewDetector(zap.NewNop())

	assert.True(t, strings.HasPrefix(d.ConfusedResponse("en"), "I'm sorry"))
	assert.NotEqual(t, d.ConfusedResponse("en"), d.ConfusedResponse("fr"))

	// Unknown language falls back to English
	assert.Equal(t, d.ConfusedResponse("en"), d.ConfusedResponse("zz"))
}
