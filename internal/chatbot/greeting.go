package chatbot

import "time"

var greetings = map[string]map[string]string{
	"morning":   {"en": "Good morning", "hi": "शुभ प्रभात", "fr": "Bonjour", "es": "Buenos días", "de": "Guten Morgen", "ja": "おはようございます", "sa": "सुप्रभातम्"},
	"afternoon": {"en": "Good afternoon", "hi": "शुभ दोपहर", "fr": "Bon après-midi", "es": "Buenas tardes", "de": "Guten Tag", "ja": "こんにちは", "sa": "सुभमध्याह्नम्"},
	"evening":   {"en": "Good evening", "hi": "शुभ संध्या", "fr": "Bonsoir", "es": "Buenas noches", "de": "Guten Abend", "ja": "こんばんは", "sa": "सुभसन्ध्याकालम्"},
	"night":     {"en": "Good night", "hi": "शुभ रात्रि", "fr": "Bonne nuit", "es": "Buenas noches", "de": "Gute Nacht", "ja": "おやすみなさい", "sa": "शुभरात्रिः"},
}

// Greeting returns a time-of-day salutation for the language, falling
// back to English.
func Greeting(now time.Time, language string) string {
	hour := now.Hour()

	var timeOfDay string
	switch {
	case hour >= 5 && hour < 12:
		timeOfDay = "morning"
	case hour >= 12 && hour < 17:
		timeOfDay = "afternoon"
	case hour >= 17 && hour < 21:
		timeOfDay = "evening"
	default:
		timeOfDay = "night"
	}

	byLang := greetings[timeOfDay]
	if g, ok := byLang[language]; ok {
		return g
	}
	return byLang["en"]
}

// WelcomeMessage renders the first-contact message for a new chat session.
func WelcomeMessage(now time.Time, language string) string {
	greeting := Greeting(now, language)

	switch language {
	case "hi":
		return greeting + "! 👋 LearnILmWorld में आपका स्वागत है!\n\nमैं यहां आपकी सहायता के लिए हूं:\n\n• विशेषज्ञ प्रशिक्षकों और मेंटर्स को ढूंढने में\n• पाठ्यक्रम और प्रमाणपत्रों की जानकारी\n• सत्र बुक करने और कक्षा संरचना\n• उपकरण आवश्यकताएं\n• और बहुत कुछ!\n\n💡 आज आप हमारी सेवाओं के बारे में क्या जानना चाहेंगे?"
	default:
		return greeting + "! 👋 Welcome to LearnILmWorld!\n\nI'm here to help you with:\n\n• Finding expert trainers and mentors\n• Information about courses and certificates\n• Booking sessions and class structure\n• Equipment requirements\n• And much more!\n\n💡 What would you like to know about our services today?"
	}
}
