package chatbot

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour int) time.Time {
	return time.Date(2026, 3, 1, hour, 30, 0, 0, time.UTC)
}

func TestGreetingHourBuckets(t *testing.T) {
	assert.Equal(t, "Good morning", Greeting(at(5), "en"))
	assert.Equal(t, "Good morning", Greeting(at(11), "en"))
	assert.Equal(t, "Good afternoon", Greeting(at(12), "en"))
	assert.Equal(t, "Good afternoon", Greeting(at(16), "en"))
	assert.Equal(t, "Good evening", Greeting(at(17), "en"))
	assert.Equal(t, "Good evening", Greeting(at(20), "en"))
	assert.Equal(t, "Good night", Greeting(at(21), "en"))
	assert.Equal(t, "Good night", Greeting(at(3), "en"))
}

func TestGreetingLanguageFallback(t *testing.T) {
	assert.Equal(t, "Bonjour", Greeting(at(9), "fr"))
	assert.Equal(t, "Good morning", Greeting(at(9), "zz"))
}

func TestWelcomeMessage(t *testing.T) {
	msg := WelcomeMessage(at(9), "en")

	assert.True(t, strings.HasPrefix(msg, "Good morning! 👋 Welcome to LearnILmWorld!"))
	assert.Contains(t, msg, FollowUpMarker)

	hiMsg := WelcomeMessage(at(9), "hi")
	assert.Contains(t, hiMsg, "शुभ प्रभात")
	assert.NotEqual(t, msg, hiMsg)
}
