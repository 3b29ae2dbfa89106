package projects

import (
	"strings"

	"interview-copilot/textmatch"
)

// DefaultID is the project used when nothing scores above the relevance
// threshold.
const DefaultID = "ua_devops_platform"

const relevanceThreshold = 1.0

type tagGroup struct {
	keywords []string
	tags     []string
}

var tagGroups = []tagGroup{
	{[]string{"deadline", "time pressure", "tight schedule", "deliver on time"}, []string{"deadline"}},
	{[]string{"in charge", "led", "leadership", "owned", "owner", "drove"}, []string{"leadership", "ownership"}},
	{[]string{"cost", "budget", "optimiz", "expense", "saving", "save money"}, []string{"cost", "analysis"}},
	{[]string{"incident", "outage", "downtime", "reliability", "dr", "disaster"}, []string{"incident", "reliability", "risk"}},
	{[]string{"compliance", "audit", "soc2", "security", "controls", "governance"}, []string{"compliance", "audit", "security"}},
	{[]string{"mlops", "model", "training", "deploying models", "prediction"}, []string{"mlops"}},
	{[]string{"real-time", "realtime", "stream", "sensor", "modbus", "iot"}, []string{"realtime", "sensor_data"}},
	{[]string{"pipeline", "data", "ingestion", "processing"}, []string{"data_ingestion", "data_processing"}},
}

var genericExperienceWords = []string{"project", "situation", "example", "experience"}

// summary keywords that earn a bonus when the matching tag category fired
var summaryBonuses = []struct {
	tags     []string
	keywords []string
}{
	{[]string{"deadline"}, []string{"deadline", "on time", "time", "schedule"}},
	{[]string{"cost"}, []string{"cost", "spend", "billing", "save", "optimiz"}},
	{[]string{"incident", "reliability"}, []string{"outage", "dr", "backup", "recovery", "resilience"}},
	{[]string{"mlops"}, []string{"mlops", "model", "sagemaker"}},
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}

	return false
}

// BehaviorTags extracts heuristic tags from the question's wording. Multiple
// groups may fire; tags are deduplicated with order preserved. A question
// with no specific signal but generic experience wording falls back to
// {ownership, deadline}.
func BehaviorTags(question string) []string {
	q := strings.ToLower(question)

	var tags []string

	for _, g := range tagGroups {
		if containsAny(q, g.keywords) {
			tags = append(tags, g.tags...)
		}
	}

	if len(tags) == 0 && containsAny(q, genericExperienceWords) {
		tags = append(tags, "ownership", "deadline")
	}

	seen := make(map[string]struct{}, len(tags))
	deduped := tags[:0]

	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}

		seen[t] = struct{}{}
		deduped = append(deduped, t)
	}

	return deduped
}

// Score rates one project against the question's behavior tags: +2 per tag in
// the project's own tag set, +1 per tag category whose keywords appear in the
// summaries, +0.3 × similarity between the question and name+short summary.
func Score(p *Record, behaviorTags []string, question string) float64 {
	score := 0.0

	projTags := make(map[string]struct{}, len(p.Tags))
	for _, t := range p.Tags {
		projTags[t] = struct{}{}
	}

	for _, t := range behaviorTags {
		if _, ok := projTags[t]; ok {
			score += 2.0
		}
	}

	text := strings.ToLower(p.ShortSummary + " " + p.ImpactSummary)

	fired := make(map[string]struct{}, len(behaviorTags))
	for _, t := range behaviorTags {
		fired[t] = struct{}{}
	}

	for _, bonus := range summaryBonuses {
		hit := false

		for _, t := range bonus.tags {
			if _, ok := fired[t]; ok {
				hit = true
				break
			}
		}

		if hit && containsAny(text, bonus.keywords) {
			score += 1.0
		}
	}

	score += 0.3 * textmatch.Ratio(question, p.Name+" "+p.ShortSummary)

	return score
}

// PickBest returns the project best suited to the question. Ties go to the
// earlier record. A winning score below the relevance threshold is overridden
// by the default-ID project when present. An empty list yields (nil, false).
func PickBest(question string, records []Record, defaultID string) (*Record, bool) {
	if len(records) == 0 {
		return nil, false
	}

	behaviorTags := BehaviorTags(question)

	bestIdx := 0
	bestScore := Score(&records[0], behaviorTags, question)

	for i := 1; i < len(records); i++ {
		if s := Score(&records[i], behaviorTags, question); s > bestScore {
			bestScore = s
			bestIdx = i
		}
	}

	if bestScore < relevanceThreshold {
		for i := range records {
			if records[i].ID == defaultID {
				return &records[i], true
			}
		}
	}

	return &records[bestIdx], true
}
