package chatbot

import (
	"fmt"
	"regexp"
	"strings"
)

// Canned answers synthesized directly from matched knowledge entries.
// The rule cascade is priority-ordered and first match wins; callers fall
// through to the model when no rule applies.

var gradePattern = regexp.MustCompile(`(\d+)(st|nd|rd|th|)`)

var subjectKeywords = []struct {
	subject  string
	keywords []string
}{
	{"history", []string{"history", "historical", "past"}},
	{"math", []string{"math", "mathematics", "algebra", "calculus"}},
	{"science", []string{"science", "physics", "chemistry", "biology"}},
	{"english", []string{"english", "language", "grammar", "writing"}},
	{"programming", []string{"programming", "coding", "computer", "python", "java"}},
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Synthesize produces a templated answer for a question, or "" when no
// rule matches. Without knowledge entries it always returns "" so callers
// go to the model instead of answering from nothing.
func Synthesize(question string, entries []Entry, language string) string {
	if len(entries) == 0 {
		return ""
	}

	q := strings.ToLower(question)

	// Priority 1: a child or student needs a tutor for a subject
	if containsAny(q, "son", "daughter", "child", "student", "kid") &&
		containsAny(q, "learn", "study", "teach", "tutor", "need", "want") {
		return childSubjectAnswer(q)
	}

	// Priority 2: subject-specific tutor search
	if containsAny(q, "learn", "study", "need", "want", "looking") &&
		containsAny(q, "history", "math", "science", "english", "programming") {
		return subjectSearchAnswer(q)
	}

	// Priority 3: general tutor search
	if containsAny(q, "search", "find", "where", "look for", "trainer", "mentor", "tutor") {
		if hasSearchableEntries(entries) {
			return `To search for trainers on LearnILmWorld:

🔍 How to Find Trainers:
• Use the "Browse our Mentors" section on the website
• Apply filters like experience, ratings, and pricing
• Watch trainer video introductions
• Read student reviews and ratings

You can find and filter through our expert trainers to find the perfect match for your learning needs!`
		}
	}

	// Priority 4: mentors/trainers general info
	if containsAny(q, "mentor", "trainer", "teacher", "tutor") {
		return `🤝 Our Mentors & Trainers:

At LearnILmWorld, we connect you with certified expert trainers from around the world for personalized 1-on-1 sessions.

Features:
• Certified experts in languages, sciences, math, and computer science
• Global community of passionate educators
• Flexible scheduling with trainers worldwide
• Video introductions and student reviews
• Filter by subject, experience, and availability

Browse our mentor profiles to find your perfect learning partner!`
	}

	// Priority 5: certificates
	if containsAny(q, "certificate", "certification") {
		return `🏆 Certificates:

Yes! LearnILmWorld provides completion certificates for our courses.

Certificate Details:
• Issued after completing courses and passing required assessments
• Downloadable digital certificates
• Shareable to showcase your new skills
• Proof of course completion and skill acquisition

Complete your course to receive your certificate!`
	}

	// Priority 6: equipment, only without a tutoring context
	if containsAny(q, "equipment", "laptop", "computer", "webcam", "microphone") &&
		!containsAny(q, "tutor", "teacher", "mentor", "learn", "study") {
		return `💻 Equipment Needed:

For LearnILmWorld sessions, you'll need basic equipment:

• Laptop or computer with internet connection
• Webcam and microphone for interactive sessions
• Our platform works great on mobile devices too
• Progressive Web App (PWA) available

No special equipment required!`
	}

	// Priority 7: class structure
	if containsAny(q, "class", "lesson", "structure", "schedule") {
		return `📚 Class Structure:

LearnILmWorld offers personalized learning experiences:

• 1-on-1 sessions with expert trainers
• Flexible scheduling to fit your availability
• Interactive virtual classrooms
• Reschedule up to 24 hours before sessions
• Learning materials provided by trainers

Schedule sessions at your convenience!`
	}

	// Priority 8: booking / getting started
	if containsAny(q, "book", "how to", "get started") {
		return `🎯 How to Get Started:

Booking sessions on LearnILmWorld is easy:

1. Browse - Look through our trainer profiles
2. Filter - Use experience, rating, and price filters
3. Review - Watch videos and read student reviews
4. Message - Send a short message to potential trainers
5. Schedule - Book sessions based on mutual availability
6. Learn - Join interactive 1-on-1 sessions

Start by browsing our mentor community today!`
	}

	return ""
}

func detectSubject(q string) string {
	for _, entry := range subjectKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(q, kw) {
				return entry.subject
			}
		}
	}
	return ""
}

// extractGrade pulls a grade level out of a question via a digit plus
// ordinal suffix ("7th", "3rd").
func extractGrade(q string) string {
	if m := gradePattern.FindStringSubmatch(q); m != nil {
		return "Grade " + m[1]
	}
	if strings.Contains(q, "grade") {
		return "the specified grade"
	}
	return ""
}

func childSubjectAnswer(q string) string {
	subject := detectSubject(q)
	if subject == "" {
		subject = "subject"
	}

	target := extractGrade(q)
	if target == "" {
		target = "child"
	}

	title := capitalize(subject)

	return fmt.Sprintf(`🎯 Perfect! I can help you find a %s tutor for your %s!

🤝 Finding the Right %s Tutor:

• We have certified %s experts specializing in different grade levels
• Tutors can make %s engaging with interactive sessions
• Personalized lesson plans based on your child's learning style
• Flexible scheduling to fit school routines

🔍 How to Find %s Tutors:
1. Visit our "Browse Mentors" section
2. Filter by "Subject: %s"
3. Select appropriate grade level
4. Review tutor profiles, videos, and student ratings
5. Book a trial session to find the perfect match

Would you like me to help you search for %s tutors specifically?`,
		subject, target, title, subject, subject, title, title, subject)
}

func subjectSearchAnswer(q string) string {
	subject := "the subject"
	switch {
	case strings.Contains(q, "history"):
		subject = "history"
	case strings.Contains(q, "math"):
		subject = "mathematics"
	case strings.Contains(q, "science"):
		subject = "science"
	case strings.Contains(q, "english"):
		subject = "English"
	case strings.Contains(q, "programming"):
		subject = "programming"
	}

	return fmt.Sprintf(`🔍 Great! Looking for %s tutors?

We have expert %s tutors available for all grade levels:

• Certified %s educators
• Interactive learning sessions
• Customized lesson plans
• Flexible scheduling

To find %s tutors:
1. Browse our mentor database
2. Filter by "%s" subject
3. Check qualifications and reviews
4. Schedule a trial session

Would you like to see available %s tutors?`,
		subject, subject, subject, subject, subject, subject)
}

// hasSearchableEntries reports whether any entry discusses how to search
// or browse (or sits in a FAQ section).
func hasSearchableEntries(entries []Entry) bool {
	for _, entry := range entries {
		content := strings.ToLower(entry.Content)
		if containsAny(content, "search", "find", "filter", "browse") {
			return true
		}
		if strings.Contains(strings.ToLower(entry.Section), "faq") {
			return true
		}
	}
	return false
}
