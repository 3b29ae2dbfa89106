// Package answer_engine turns detected questions into first-person bullet
// answers: it reuses near-duplicate historical answers when the retriever
// clears both gates, otherwise classifies the question and asks the LLM with
// an intent-specific prompt.
package answer_engine

import (
	"context"
	"fmt"
	"strings"

	"interview-copilot/answer_bank"
	"interview-copilot/clients/llm"
	"interview-copilot/intent"
	"interview-copilot/projects"
)

type Engine struct {
	llmClient llm.API
	retriever *answer_bank.Retriever

	role       string
	resumeText string
	jdText     string

	projectList      []projects.Record
	defaultProjectID string

	systemPromptGeneral string
	systemPromptWithJD  string

	state SessionState
}

type Config struct {
	LLMClient llm.API
	Retriever *answer_bank.Retriever

	Role       string
	ResumeText string
	JDText     string

	Projects         []projects.Record
	DefaultProjectID string
}

func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	if cfg.LLMClient == nil {
		return nil, fmt.Errorf("llmClient is nil")
	}

	if cfg.Retriever == nil {
		return nil, fmt.Errorf("retriever is nil")
	}

	defaultID := cfg.DefaultProjectID
	if defaultID == "" {
		defaultID = projects.DefaultID
	}

	return &Engine{
		llmClient:           cfg.LLMClient,
		retriever:           cfg.Retriever,
		role:                cfg.Role,
		resumeText:          cfg.ResumeText,
		jdText:              cfg.JDText,
		projectList:         cfg.Projects,
		defaultProjectID:    defaultID,
		systemPromptGeneral: buildGeneralSystemPrompt(cfg.Role, cfg.ResumeText),
		systemPromptWithJD:  buildJDSystemPrompt(cfg.Role, cfg.ResumeText, cfg.JDText),
	}, nil
}

// State returns a copy of the session state, for logging and tests.
func (e *Engine) State() SessionState {
	return e.state
}

// follow-up wordings observed in session logs
var followupPatterns = []string{
	"when was it",
	"which was the outcome",
	"what did you do",
	"how was it resolved",
	"what did it consist of",
	"and how was it resolved",
	"and which was the outcome",
	"okay, so tell me about the time",
	"tell me about the time",
	"and what did you do",
	"and how did you meet the deadline",
	"how did you meet the deadline",
}

var followupHintWords = []string{"when", "outcome", "resolved"}

var weaknessFollowupPatterns = []string{
	"what do you have identified",
	"identified as",
	"those areas",
	"these areas",
	"what have you done",
	"done to improve",
	"improve them",
	"to improve them so far",
	"how have you worked on them",
}

// isBehavioralFollowup detects short vague questions that chain onto the
// previous behavioral story. Only possible while the session is already in a
// behavioral state.
func isBehavioralFollowup(question string, lastIntent intent.Intent) bool {
	if lastIntent != intent.BehavioralProject && lastIntent != intent.BehavioralFollowup {
		return false
	}

	q := strings.ToLower(strings.TrimSpace(question))

	for _, p := range followupPatterns {
		if strings.Contains(q, p) {
			return true
		}
	}

	if len(q) < 60 {
		for _, w := range followupHintWords {
			if strings.Contains(q, w) {
				return true
			}
		}
	}

	return false
}

func matchesWeaknessFollowup(question string) bool {
	q := strings.ToLower(question)

	for _, p := range weaknessFollowupPatterns {
		if strings.Contains(q, p) {
			return true
		}
	}

	return false
}

// GenerateAnswer produces the bullet answer for one question. Failures are
// contained per question: an LLM error comes back as a single diagnostic
// bullet and the session state stays as it was.
func (e *Engine) GenerateAnswer(ctx context.Context, question string) []string {
	q := strings.TrimSpace(question)

	// historical reuse short-circuits everything else; the matched
	// question's intent (not the new one's) anchors continuity
	if match, ok := e.retriever.FindBest(q); ok {
		matchedIntent := intent.Classify(match.Question)

		e.state.LastQuestion = q
		e.state.LastIntent = matchedIntent

		if matchedIntent == intent.BehavioralProject {
			e.state.LastBehavioralAnswer = match.Bullets
		}

		return match.Bullets
	}

	qIntent := intent.Classify(q)

	// weakness follow-ups stay in weaknesses mode
	if qIntent == intent.Generic && e.state.LastIntent == intent.Weaknesses && matchesWeaknessFollowup(q) {
		qIntent = intent.Weaknesses
	}

	if isBehavioralFollowup(q, e.state.LastIntent) && len(e.projectList) > 0 {
		qIntent = intent.BehavioralFollowup
	}

	var (
		project *projects.Record
		userMsg string
	)

	switch {
	case qIntent == intent.BehavioralProject && len(e.projectList) > 0:
		project, _ = projects.PickBest(q, e.projectList, e.defaultProjectID)
		userMsg = buildProjectAnswerPrompt(q, project)

	case qIntent == intent.BehavioralFollowup:
		// a follow-up must stay on the story already told
		project = e.state.LastBehavioralProject
		if project == nil {
			project, _ = projects.PickBest(q, e.projectList, e.defaultProjectID)
		}

		userMsg = buildBehavioralFollowupPrompt(q, project, e.state.LastBehavioralAnswer)

	default:
		builder, ok := promptBuilders[qIntent]
		if !ok {
			builder = promptBuilders[intent.Generic]
		}

		userMsg = builder(q)
	}

	systemPrompt := e.systemPromptGeneral
	if qIntent == intent.WhyCompany {
		systemPrompt = e.systemPromptWithJD
	}

	text, err := e.llmClient.SendChat(ctx, systemPrompt, userMsg)
	if err != nil {
		return []string{fmt.Sprintf("(LLM error: %v)", err)}
	}

	bullets := ParseBullets(text)

	e.state.LastQuestion = q
	e.state.LastIntent = qIntent

	if qIntent == intent.BehavioralProject || qIntent == intent.BehavioralFollowup {
		e.state.LastBehavioralProject = project
		e.state.LastBehavioralAnswer = bullets
	}

	return bullets
}
