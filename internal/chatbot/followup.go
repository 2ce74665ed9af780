package chatbot

import (
	"math/rand"
	"strings"
)

// FollowUpMarker precedes every engagement question appended to a reply.
const FollowUpMarker = "💡"

// FollowUp picks templated engagement questions keyed by topic and
// language. The random source is injectable for tests.
type FollowUp struct {
	pick func(n int) int
}

func NewFollowUp() *FollowUp {
	return &FollowUp{pick: rand.Intn}
}

var followUpQuestions = map[string]map[string][]string{
	"en": {
		"trainer": {
			"Would you like me to help you find trainers for a specific subject?",
			"Are you interested in seeing trainer availability and pricing?",
			"Would you like to know more about the booking process?",
			"Do you want to learn about our trainer verification process?",
		},
		"certificate": {
			"Would you like to know which courses offer certificates?",
			"Are you interested in the assessment process for certificates?",
			"Would you like information about certificate verification?",
			"Do you want to know how to access your certificates after completion?",
		},
		"equipment": {
			"Would you like specific recommendations for webcams or microphones?",
			"Are you having technical issues with your current setup?",
			"Would you like to test your equipment before sessions?",
			"Do you need help with our mobile app installation?",
		},
		"class": {
			"Would you like to see sample class schedules?",
			"Are you interested in our rescheduling policy?",
			"Would you like to know about learning materials provided?",
			"Do you want information about class duration and frequency?",
		},
		"book": {
			"Would you like me to walk you through the booking process step by step?",
			"Are you looking to book a trial session first?",
			"Would you like information about our cancellation policy?",
			"Do you need help with payment methods?",
		},
		"default": {
			"Is there anything specific you'd like to know more about?",
			"Would you like me to help you with anything else?",
			"Do you have any other questions about our services?",
			"Is there a particular area you'd like me to explain further?",
		},
	},
	"hi": {
		"trainer": {
			"क्या आप किसी विशेष विषय के लिए प्रशिक्षक खोजने में मदद चाहते हैं?",
			"क्या आप प्रशिक्षक की उपलब्धता और मूल्य निर्धारण देखने में रुचि रखते हैं?",
			"क्या आप बुकिंग प्रक्रिया के बारे में और जानना चाहेंगे?",
			"क्या आप हमारी प्रशिक्षक सत्यापन प्रक्रिया के बारे में जानना चाहते हैं?",
		},
		"default": {
			"क्या आप किसी विशेष चीज के बारे में और जानना चाहेंगे?",
			"क्या आप मुझे किसी और चीज में मदद चाहेंगे?",
			"क्या आपके पास हमारी सेवाओं के बारे में कोई अन्य प्रश्न हैं?",
			"क्या कोई विशेष क्षेत्र है जिसके बारे में आप मुझे और समझाना चाहेंगे?",
		},
	},
}

// followUpTopics maps a question to its follow-up topic, first match wins.
var followUpTopics = []struct {
	topic    string
	keywords []string
}{
	{"trainer", []string{"trainer", "mentor", "teacher"}},
	{"certificate", []string{"certificate", "certification"}},
	{"equipment", []string{"equipment", "laptop", "webcam"}},
	{"class", []string{"class", "lesson", "schedule"}},
	{"book", []string{"book", "reserve", "get started"}},
}

// Generate returns one follow-up question for the user's last question,
// keyed by topic and language (English when the language is unsupported).
func (f *FollowUp) Generate(userQuestion string, topics []string, language string) string {
	question := strings.ToLower(userQuestion)

	langQuestions, ok := followUpQuestions[language]
	if !ok {
		langQuestions = followUpQuestions["en"]
	}

	mainTopic := "default"
	for _, entry := range followUpTopics {
		if containsAny(question, entry.keywords...) {
			mainTopic = entry.topic
			break
		}
	}

	topicQuestions, ok := langQuestions[mainTopic]
	if !ok {
		topicQuestions = langQuestions["default"]
	}

	return topicQuestions[f.pick(len(topicQuestions))]
}

// Append joins a response and its follow-up question with the marker.
func Append(response, followUp string) string {
	return response + "\n\n" + FollowUpMarker + " " + followUp
}
