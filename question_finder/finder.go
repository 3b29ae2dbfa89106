// Package question_finder detects interview questions in a growing
// transcript. The input stream comes from overlapping audio windows that
// re-transcribe the same speech with small drift, so detection runs over a
// rolling buffer and deduplicates on normalized forms by substring
// containment rather than exact match.
package question_finder

import (
	"regexp"
	"strings"
)

const (
	defaultBufferLimit = 4000
	minFragmentWords   = 4
	minQuestionWords   = 4
	maxQuestionWords   = 50
)

var questionWords = map[string]struct{}{
	"who": {}, "what": {}, "when": {}, "where": {}, "why": {}, "how": {},
	"can": {}, "could": {}, "would": {},
	"do": {}, "does": {}, "did": {},
	"are": {}, "is": {}, "was": {}, "were": {},
	"have": {}, "has": {}, "had": {},
	"should": {}, "shall": {}, "may": {}, "might": {},
}

var questionPhrases = []string{
	"tell me about",
	"walk me through",
	"can you explain",
	"could you explain",
	"would you explain",
	"could you walk me through",
	"how would you",
	"how did you",
	"what did you do",
	"what would you do",
	"how do you handle",
	"how did you handle",
	"give me an example",
	"could you give me an example",
	"explain a time when",
	"explain the time when",
}

var leadingFillers = []string{
	"so", "okay", "ok", "right", "well", "alright", "yeah", "look",
	"so uh", "so um", "so like", "um", "uh",
}

// verbs that let a short question-word opener through
var shortQuestionVerbs = map[string]struct{}{
	"explain": {}, "describe": {}, "show": {}, "tell": {}, "walk": {},
	"do": {}, "did": {}, "have": {}, "has": {},
}

// meeting noise and obvious non-interview chatter, never treated as questions
var ignoredPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bgive me a minute\b`),
	regexp.MustCompile(`\bjoin in a minute\b`),
	regexp.MustCompile(`\bplease show me your id\b`),
	regexp.MustCompile(`\bshow me your id\b`),
	regexp.MustCompile(`\bshow me your id proof\b`),
	regexp.MustCompile(`\bcan you show me your id\b`),
	regexp.MustCompile(`\b(on mute|you are on mute)\b`),
	regexp.MustCompile(`\bwill be joining\b`),
	regexp.MustCompile(`\bfollow question\b`),
	regexp.MustCompile(`\bfollow up\b`),
	regexp.MustCompile(`\bthanks\b`),
	regexp.MustCompile(`\bthank you\b`),
	regexp.MustCompile(`\bwe will be\b`),
}

var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^so\s+let'?s\s+begin\s+with\s+our\s+very\s+first\s+question\s+which\s+is\s+`),
	regexp.MustCompile(`^so\s+let'?s\s+begin\s+with\s+our\s+first\s+question\s+which\s+is\s+`),
	regexp.MustCompile(`^let'?s\s+begin\s+with\s+our\s+very\s+first\s+question\s+which\s+is\s+`),
	regexp.MustCompile(`^let'?s\s+start\s+with\s+the\s+tell\s+me\s+about\s+yourself\s+question\s*`),
}

var (
	trailingPunct = regexp.MustCompile(`[?!.\s]+$`)
	whitespaceRun = regexp.MustCompile(`\s+`)

	fillerPatterns = compileFillerPatterns()
)

func compileFillerPatterns() []*regexp.Regexp {
	pats := make([]*regexp.Regexp, 0, len(leadingFillers))
	for _, filler := range leadingFillers {
		pats = append(pats, regexp.MustCompile(`^`+regexp.QuoteMeta(filler)+`[\s,]+`))
	}

	return pats
}

// Finder is a stateful question detector over a rolling transcript buffer.
// Not safe for concurrent use; the session loop is its only caller.
type Finder struct {
	bufferLimit int
	textTail    string
	seen        []string
}

type Config struct {
	// BufferLimit caps the rolling buffer in characters; 0 means the default.
	BufferLimit int
}

func New(cfg *Config) *Finder {
	limit := defaultBufferLimit
	if cfg != nil && cfg.BufferLimit > 0 {
		limit = cfg.BufferLimit
	}

	return &Finder{
		bufferLimit: limit,
	}
}

// Process feeds new transcript text and returns questions not seen before,
// in their original surface form.
func (f *Finder) Process(newText string) []string {
	if newText == "" {
		return nil
	}

	f.textTail += " " + newText
	if len(f.textTail) > f.bufferLimit {
		f.textTail = f.textTail[len(f.textTail)-f.bufferLimit:]
	}

	var newQuestions []string

	for _, cand := range splitSentences(f.textTail) {
		if len(strings.Fields(cand)) < minFragmentWords {
			continue
		}

		if !looksLikeQuestion(cand) {
			continue
		}

		norm := normalizeQuestion(cand)
		if norm == "" {
			continue
		}

		wordCount := len(strings.Fields(norm))
		if wordCount < minQuestionWords || wordCount > maxQuestionWords {
			continue
		}

		if f.isDuplicate(norm) {
			continue
		}

		f.seen = append(f.seen, norm)
		newQuestions = append(newQuestions, strings.TrimSpace(cand))
	}

	return newQuestions
}

// isDuplicate absorbs re-transcriptions with prefix/suffix drift: a
// normalized candidate matches if it contains, or is contained in, any
// previously seen question.
func (f *Finder) isDuplicate(norm string) bool {
	for _, seen := range f.seen {
		if strings.Contains(seen, norm) || strings.Contains(norm, seen) {
			return true
		}
	}

	return false
}

// splitSentences breaks text into fragments on sentence punctuation,
// keeping the terminator with its sentence.
func splitSentences(text string) []string {
	var (
		parts []string
		start int
	)

	runes := []rune(text)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '?' && r != '!' {
			continue
		}

		// only split when punctuation is followed by whitespace
		if i+1 < len(runes) && runes[i+1] != ' ' && runes[i+1] != '\t' && runes[i+1] != '\n' {
			continue
		}

		if p := strings.TrimSpace(string(runes[start : i+1])); p != "" {
			parts = append(parts, p)
		}

		start = i + 1
	}

	if p := strings.TrimSpace(string(runes[start:])); p != "" {
		parts = append(parts, p)
	}

	return parts
}

func looksLikeQuestion(s string) bool {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return false
	}

	lower := strings.ToLower(raw)

	for _, pat := range ignoredPatterns {
		if pat.MatchString(lower) {
			return false
		}
	}

	if strings.Contains(raw, "?") {
		return true
	}

	for _, phrase := range questionPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}

	tokens := strings.Fields(lower)
	if len(tokens) == 0 {
		return false
	}

	if _, ok := questionWords[tokens[0]]; ok {
		if len(tokens) >= 5 {
			return true
		}

		// short openers like "can you explain X" need a verb after the
		// first token to avoid fragments
		if len(tokens) >= 3 {
			for _, t := range tokens[1:] {
				if _, ok := shortQuestionVerbs[t]; ok {
					return true
				}
			}
		}
	}

	return false
}

func normalizeQuestion(s string) string {
	s = strings.TrimSpace(s)
	s = trailingPunct.ReplaceAllString(s, "")
	s = strings.ToLower(s)

	for _, pat := range boilerplatePatterns {
		s = pat.ReplaceAllString(s, "")
	}

	for _, pat := range fillerPatterns {
		s = pat.ReplaceAllString(s, "")
	}

	tokens := collapseStutters(strings.Fields(s))

	// keep from the first question word onwards
	for i, t := range tokens {
		if _, ok := questionWords[t]; ok {
			tokens = tokens[i:]
			break
		}
	}

	s = strings.Join(tokens, " ")
	s = whitespaceRun.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}

// collapseStutters folds runs of three or more identical words into one,
// an artifact of imperfect transcription over overlapping windows.
func collapseStutters(tokens []string) []string {
	if len(tokens) == 0 {
		return tokens
	}

	out := tokens[:0]
	i := 0

	for i < len(tokens) {
		j := i
		for j < len(tokens) && tokens[j] == tokens[i] {
			j++
		}

		run := j - i
		if run >= 3 {
			out = append(out, tokens[i])
		} else {
			out = append(out, tokens[i:j]...)
		}

		i = j
	}

	return out
}
