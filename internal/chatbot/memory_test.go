package chatbot

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	m.AddMessage("s1", RoleUser, "Do you have math trainers?")
	m.AddMessage("s1", RoleAssistant, "Yes, we do!")

	rec := m.Get("s1")
	require.Len(t, rec.History, 2)
	assert.Equal(t, RoleUser, rec.History[0].Role)
	assert.Equal(t, "Do you have math trainers?", rec.History[0].Message)
	assert.Equal(t, RoleAssistant, rec.History[1].Role)
}

func TestMemoryTruncatesToLastTen(t *testing.T) {
	m := NewMemory()

	for i := 0; i < 11; i++ {
		m.AddMessage("s1", RoleUser, fmt.Sprintf("message %d", i))
	}

	rec := m.Get("s1")
	require.Len(t, rec.History, maxHistoryLength)
	assert.Equal(t, "message 1", rec.History[0].Message)
	assert.Equal(t, "message 10", rec.History[9].Message)
}

func TestMemoryRecentHistory(t *testing.T) {
	m := NewMemory()

	for i := 0; i < 5; i++ {
		m.AddMessage("s1", RoleUser, fmt.Sprintf("message %d", i))
	}

	recent := m.RecentHistory("s1", 3)
	require.Len(t, recent, 3)
	assert.Equal(t, "message 2", recent[0].Message)
	assert.Equal(t, "message 4", recent[2].Message)

	// Zero or negative means the full history
	assert.Len(t, m.RecentHistory("s1", 0), 5)
}

func TestMemoryDerivedContext(t *testing.T) {
	m := NewMemory()

	m.AddMessage("s1", RoleUser, "I want to learn programming, do you have classes?")

	ctx := m.Get("s1").Context
	assert.Contains(t, ctx.Topics, "classes")
	assert.Contains(t, ctx.Interests, "programming")
	assert.Equal(t, "student", ctx.Role)
	require.Len(t, ctx.RecentQuestions, 1)
}

func TestMemorySummary(t *testing.T) {
	m := NewMemory()

	// Empty session yields no summary
	assert.Equal(t, "", m.Summary("fresh"))

	m.AddMessage("s1", RoleUser, "What certificates do you offer?")
	summary := m.Summary("s1")
	assert.Contains(t, summary, "Previous conversation context:")
	assert.Contains(t, summary, "certificates")
}

func TestMemoryCleanupEvictsIdleSessions(t *testing.T) {
	m := NewMemory()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base }

	m.AddMessage("old", RoleUser, "hello there")
	m.AddMessage("fresh", RoleUser, "hello there")

	// Advance the clock past the idle threshold for "old" only
	m.now = func() time.Time { return base.Add(25 * time.Hour) }
	m.AddMessage("fresh", RoleUser, "still here")

	evicted := m.Cleanup(24 * time.Hour)
	assert.Equal(t, 1, evicted)

	// "old" was recreated empty on next access
	assert.Empty(t, m.Get("old").History)
	assert.NotEmpty(t, m.Get("fresh").History)
}

func TestMemoryDelete(t *testing.T) {
	m := NewMemory()

	m.AddMessage("s1", RoleUser, "hello there")
	m.Delete("s1")

	assert.Empty(t, m.Get("s1").History)
}
