// Package intent maps a free-text interview question to a coarse category.
// Classification is an ordered cascade of phrase containment checks: narrow
// personal categories are tried before the broad behavioral one so that, for
// example, an education question never becomes a behavioral story.
package intent

import "strings"

type Intent string

const (
	Intro             Intent = "intro"
	Education         Intent = "education"
	Experience        Intent = "experience"
	Strengths         Intent = "strengths"
	Weaknesses        Intent = "weaknesses"
	LLMBasics         Intent = "llm_basics"
	MLPipeline        Intent = "ml_pipeline"
	WhyCompany        Intent = "why_company"
	BehavioralProject Intent = "behavioral_project"
	Generic           Intent = "generic"

	// BehavioralFollowup is never produced by Classify; the answer engine
	// assigns it when a short question chains onto the previous story.
	BehavioralFollowup Intent = "behavioral_followup"

	// None marks a session with no question answered yet.
	None Intent = ""
)

type rule struct {
	label Intent
	match func(q string) bool
}

func anyOf(phrases ...string) func(string) bool {
	return func(q string) bool {
		for _, p := range phrases {
			if strings.Contains(q, p) {
				return true
			}
		}

		return false
	}
}

// rules are evaluated in order; the first hit wins.
var rules = []rule{
	{Intro, anyOf("tell me about yourself", "introduce yourself", "who are you")},
	{Education, anyOf("what have you studied", "education", "background")},
	{Experience, func(q string) bool {
		return strings.Contains(q, "experience") && strings.Contains(q, "what has been your")
	}},
	{Strengths, anyOf("strength")},
	{Weaknesses, anyOf("weakness", "development areas", "improvement areas")},
	{LLMBasics, anyOf(
		"what is an llm",
		"what is a large language model",
		"how do llms work",
		"generative ai",
		"foundation model",
		"what is gpt",
		"what are transformers",
	)},
	{MLPipeline, anyOf(
		"ml pipeline",
		"machine learning pipeline",
		"end to end pipeline",
		"end-to-end pipeline",
		"ml workflow",
		"machine learning workflow",
		"productionize",
		"productionalize",
		"deploy a model",
		"model deployment steps",
		"model training pipeline",
		"feature pipeline",
	)},
	{WhyCompany, anyOf(
		"why do you want to work here",
		"why do you want to work for",
		"why are you interviewing with me today",
		"why are you interviewing with us",
		"what made you apply for this job",
		"what made you apply",
		"why this job",
		"why this company",
		"why do you want to join",
		"why do you want this role",
		"why are you interested in this position",
		"why should we hire you",
		"why should we give this job to you",
		"why should we hire you and not someone else",
	)},
	{BehavioralProject, anyOf(
		"tell me about a time",
		"give me an example",
		"describe a time",
		"describe a situation",
		"situation where",
		"project where",
		"project when",
		"time when you",
		"time when you were",
		"handled a",
		"faced a",
		"dealt with",
		"how did you handle",
		"how did you meet the deadline",
		"with a deadline",
		"in charge of a project",
	)},
}

// Classify returns the first matching category for the question, or Generic.
// Pure function of the input text.
func Classify(question string) Intent {
	q := strings.ToLower(strings.TrimSpace(question))

	for _, r := range rules {
		if r.match(q) {
			return r.label
		}
	}

	return Generic
}
