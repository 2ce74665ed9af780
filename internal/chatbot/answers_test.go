package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testEntries = []Entry{
	{Title: "Mentors", Section: "FAQ", Content: "Browse and search our trainers by subject and rating."},
}

func TestSynthesizeRequiresEntries(t *testing.T) {
	assert.Equal(t, "", Synthesize("do you offer certificates", nil, "en"))
}

func TestSynthesizeChildSubjectWinsOverGeneralRules(t *testing.T) {
	// Mentions both a child and "trainer"; the child+subject rule has the
	// higher priority.
	answer := Synthesize("my son needs a math trainer", testEntries, "en")

	assert.Contains(t, answer, "math tutor")
	assert.Contains(t, answer, "Browse Mentors")
}

func TestSynthesizeExtractsGradeLevel(t *testing.T) {
	answer := Synthesize("my daughter needs a 7th grade math tutor", testEntries, "en")

	assert.Contains(t, answer, "Grade 7")
	assert.Contains(t, answer, "Math")
}

func TestSynthesizeSubjectSearch(t *testing.T) {
	answer := Synthesize("I want to learn history", testEntries, "en")

	assert.Contains(t, answer, "history tutors")
}

func TestSynthesizeCertificates(t *testing.T) {
	answer := Synthesize("do you give a certificate", testEntries, "en")

	assert.Contains(t, answer, "Certificates")
	assert.Contains(t, answer, "completion certificates")
}

func TestSynthesizeEquipmentSkippedInTutorContext(t *testing.T) {
	// Equipment words next to a learning context should not produce the
	// equipment answer; this one falls through to the class rule or model.
	answer := Synthesize("do I need a laptop to learn with a tutor", testEntries, "en")
	assert.NotContains(t, answer, "Equipment Needed")
}

func TestSynthesizeBooking(t *testing.T) {
	answer := Synthesize("how to get started", testEntries, "en")

	assert.Contains(t, answer, "How to Get Started")
}

func TestSynthesizeNoRuleMatch(t *testing.T) {
	assert.Equal(t, "", Synthesize("tell me about your pricing", testEntries, "en"))
}
