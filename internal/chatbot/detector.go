package chatbot

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Detector decides whether user input is keyboard-mash / nonsense text
// before any model call is attempted.
type Detector struct {
	logger *zap.Logger
}

func NewDetector(logger *zap.Logger) *Detector {
	return &Detector{logger: logger}
}

// Quick whitelist: anything matching these is treated as a legitimate query.
var legitimatePatterns = []*regexp.Regexp{
	// Contains spaces (usually indicates real text)
	regexp.MustCompile(`\s`),
	// Contains common punctuation
	regexp.MustCompile(`[.,!?]`),
	// Contains numbers in context (not just numbers)
	regexp.MustCompile(`\d+[a-z]`),
	regexp.MustCompile(`[a-z]+\d+`),
	// Common educational words
	regexp.MustCompile(`(son|daughter|child|student|learn|study|teach|tutor|teacher|class|course|subject|history|math|science|english)`),
	// Question words
	regexp.MustCompile(`(what|who|when|where|why|how|can|could|would|will)`),
}

var nonsensePatterns = []*regexp.Regexp{
	// Keyboard mashing patterns
	regexp.MustCompile(`^[asdfghjkl]{4,}$`),
	regexp.MustCompile(`^[qwertyuiop]{4,}$`),
	regexp.MustCompile(`^[zxcvbnm]{4,}$`),
	// Mixed keyboard rows (qwerty, asdfgh, etc.)
	regexp.MustCompile(`^[qwertasdfgzxcv]{5,}$`),
	// Only consonants with no meaning
	regexp.MustCompile(`^[bcdfghjklmnpqrstvwxyz]{6,}$`),
	// Only vowels with no meaning
	regexp.MustCompile(`^[aeiou]{5,}$`),
	// No vowels at all (except y)
	regexp.MustCompile(`^[bcdfghjklmnpqrstvwxz]{6,}$`),
	// Laughter patterns
	regexp.MustCompile(`^(ha|he|ah|oh|ho|hi|hu){4,}`),
	regexp.MustCompile(`^a+h+a+h+a+`),
	regexp.MustCompile(`^h+a+h+a+h+`),
	// Specific nonsense strings seen in production logs
	regexp.MustCompile(`fyxgnaxsgykids`),
	regexp.MustCompile(`htyckigh`),
	regexp.MustCompile(`aeihpfnc`),
	regexp.MustCompile(`svdgcfrvs`),
	// Long unbroken alpha run with no spaces
	regexp.MustCompile(`^[a-zA-Z]{8,}$`),
	// Too many consonants in a row
	regexp.MustCompile(`[bcdfghjklmnpqrstvwxyz]{5,}`),
}

var commonWords = map[string]struct{}{}

func init() {
	words := []string{
		// Very common words
		"the", "be", "to", "of", "and", "a", "in", "that", "have", "i",
		"it", "for", "not", "on", "with", "he", "as", "you", "do", "at",
		"this", "but", "his", "by", "from", "they", "we", "say", "her", "she",
		"or", "an", "will", "my", "one", "all", "would", "there", "their", "what",
		"so", "up", "out", "if", "about", "who", "get", "which", "go", "me",
		"when", "make", "can", "like", "time", "no", "just", "him", "know", "take",
		"people", "into", "year", "your", "good", "some", "could", "them", "see", "other",
		"than", "then", "now", "look", "only", "come", "its", "over", "think", "also",
		"back", "after", "use", "two", "how", "our", "work", "first", "well", "way",
		"even", "new", "want", "because", "any", "these", "give", "day", "most", "us",

		// Common conversational words
		"hello", "hi", "thanks", "thank", "please", "help", "need", "find", "book",
		"yes", "ok", "okay", "maybe", "probably", "actually", "really", "very",

		// Platform specific
		"trainer", "mentor", "teacher", "class", "lesson", "course", "certificate",
		"schedule", "price", "cost", "equipment", "laptop", "computer", "learn",

		// Educational terms
		"son", "daughter", "child", "kid", "student", "study", "teach",
		"history", "math", "science", "english", "language", "programming", "coding",
		"grade", "subject", "homework", "assignment", "project", "exam", "test",
		"age", "old", "years", "children", "tutor",
	}
	for _, w := range words {
		commonWords[w] = struct{}{}
	}
}

var (
	vowelRe     = regexp.MustCompile(`[aeiou]`)
	consonantRe = regexp.MustCompile(`[bcdfghjklmnpqrstvwxyz]`)
)

// IsRandom reports whether the text looks like nonsense. Whitelist patterns
// win over nonsense patterns, so anything resembling a real question passes.
func (d *Detector) IsRandom(text string) bool {
	cleaned := strings.ToLower(strings.TrimSpace(text))
	if cleaned == "" {
		return false
	}

	// Too short to be meaningful
	if len(cleaned) < 3 {
		return false
	}

	for _, p := range legitimatePatterns {
		if p.MatchString(cleaned) {
			return false
		}
	}

	if isRepeatedCharRun(cleaned) || isRepeatedUnit(cleaned) {
		d.logger.Debug("Detected random text: repeated pattern", zap.String("text", cleaned))
		return true
	}

	for _, p := range nonsensePatterns {
		if p.MatchString(cleaned) {
			d.logger.Debug("Detected random text: nonsense pattern", zap.String("text", cleaned))
			return true
		}
	}

	if hasExcessiveRepetition(cleaned) {
		d.logger.Debug("Detected random text: excessive repetition", zap.String("text", cleaned))
		return true
	}

	if !hasRealWords(cleaned) && len(cleaned) > 6 {
		d.logger.Debug("Detected random text: no real words", zap.String("text", cleaned))
		return true
	}

	d.logger.Debug("Allowing text as legitimate", zap.String("text", cleaned))
	return false
}

// isRepeatedCharRun reports whether the whole text is a single character
// repeated four or more times (aaaa, bbbbb).
func isRepeatedCharRun(text string) bool {
	if len(text) < 4 {
		return false
	}
	first := text[0]
	for i := 1; i < len(text); i++ {
		if text[i] != first {
			return false
		}
	}
	return true
}

// isRepeatedUnit reports whether the whole text is a short unit of two or
// three letters repeated four or more times (abababab, xyzxyzxyzxyz).
func isRepeatedUnit(text string) bool {
	for unit := 2; unit <= 3; unit++ {
		if len(text) < unit*4 || len(text)%unit != 0 {
			continue
		}
		repeated := true
		for i := unit; i < len(text); i += unit {
			if text[i:i+unit] != text[:unit] {
				repeated = false
				break
			}
		}
		if repeated {
			return true
		}
	}
	return false
}

// hasExcessiveRepetition reports whether one character makes up more than
// 60% of a string of six or more characters.
func hasExcessiveRepetition(text string) bool {
	if len(text) < 6 {
		return false
	}

	counts := make(map[rune]int)
	total := 0
	for _, r := range text {
		counts[r]++
		total++
	}

	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}

	return float64(max)/float64(total) > 0.6
}

// hasRealWords reports whether the text contains at least one known word.
// Single tokens also pass if they are word-shaped (vowels and consonants
// mixed, reasonable length).
func hasRealWords(text string) bool {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return false
	}

	if len(words) > 1 {
		for _, w := range words {
			if _, ok := commonWords[w]; ok {
				return true
			}
		}
		return false
	}

	single := words[0]
	if _, ok := commonWords[single]; ok {
		return true
	}

	return vowelRe.MatchString(single) && consonantRe.MatchString(single) && len(single) <= 12
}

var confusedResponses = map[string]string{
	"en": "I'm sorry, I didn't quite understand that. Could you please rephrase your question or ask about LearnILmWorld services? I can help you with finding trainers, certificates, class schedules, and more!",
	"hi": "मुझे खेद है, मैं इसे पूरी तरह से नहीं समझ पाया। क्या आप कृपया अपना प्रश्न दोबारा बता सकते हैं या LearnILmWorld सेवाओं के बारे में पूछ सकते हैं? मैं आपकी प्रशिक्षकों को ढूंढने, प्रमाणपत्रों, कक्षा अनुसूची और बहुत कुछ में मदद कर सकता हूं!",
	"fr": "Je suis désolé, je n'ai pas bien compris cela. Pourriez-vous reformuler votre question ou poser des questions sur les services LearnILmWorld ? Je peux vous aider à trouver des formateurs, des certificats, des horaires de cours et bien plus encore !",
	"es": "Lo siento, no entendí eso completamente. ¿Podría reformular su pregunta o preguntar sobre los servicios de LearnILmWorld? ¡Puedo ayudarle a encontrar entrenadores, certificados, horarios de clases y mucho más!",
	"de": "Es tut mir leid, das habe ich nicht ganz verstanden. Könnten Sie Ihre Frage bitte umformulieren oder nach LearnILmWorld-Diensten fragen? Ich kann Ihnen bei der Suche nach Trainern, Zertifikaten, Stundenplänen und mehr helfen!",
	"ja": "申し訳ありませんが、よく理解できませんでした。質問を言い換えていただくか、LearnILmWorldのサービスについてお聞きいただけますか？トレーナーの検索、証明書、クラススケジュールなどについてお手伝いできます！",
	"sa": "क्षम्यताम्, अहं तत् सम्यक् न अवगच्छम्। कृपया भवतः प्रश्नं पुनः कथयतु वा LearnILmWorld सेवासु पृच्छतु? अहं भवते प्रशिक्षकान् अन्वेष्टुं, प्रमाणपत्राणि, कक्षासूचीं च साहाय्यं करितुं शक्नोमि!",
}

// ConfusedResponse returns the "I didn't understand" template for a
// language, falling back to English.
func (d *Detector) ConfusedResponse(language string) string {
	if resp, ok := confusedResponses[language]; ok {
		return resp
	}
	return confusedResponses["en"]
}
