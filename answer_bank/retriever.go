package answer_bank

import (
	"fmt"
	"strings"

	"interview-copilot/textmatch"
)

// Match is a historical answer whose question cleared both similarity gates.
type Match struct {
	Bullets  []string
	Question string
	Score    float64
	Overlap  float64
}

type Retriever struct {
	entries          []Entry
	similarityThresh float64
	overlapThresh    float64
}

type RetrieverConfig struct {
	Entries          []Entry
	SimilarityThresh float64
	OverlapThresh    float64
}

func NewRetriever(cfg *RetrieverConfig) (*Retriever, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	if cfg.SimilarityThresh <= 0 || cfg.SimilarityThresh > 1 {
		return nil, fmt.Errorf("similarity threshold out of range: %f", cfg.SimilarityThresh)
	}

	if cfg.OverlapThresh < 0 || cfg.OverlapThresh > 1 {
		return nil, fmt.Errorf("overlap threshold out of range: %f", cfg.OverlapThresh)
	}

	return &Retriever{
		entries:          cfg.Entries,
		similarityThresh: cfg.SimilarityThresh,
		overlapThresh:    cfg.OverlapThresh,
	}, nil
}

// FindBest scans the bank for the stored question most similar to the input.
// The best candidate is reused only when the character-level ratio clears the
// similarity threshold AND the token overlap clears its own threshold; the
// second gate is there because pure character similarity false-positives on
// short or templated questions. An empty bank never matches.
func (r *Retriever) FindBest(question string) (*Match, bool) {
	if len(r.entries) == 0 {
		return nil, false
	}

	q := strings.TrimSpace(question)

	var best *Entry
	bestScore := 0.0

	for i := range r.entries {
		score := textmatch.Ratio(q, r.entries[i].Question)
		if score > bestScore {
			bestScore = score
			best = &r.entries[i]
		}
	}

	if best == nil || bestScore < r.similarityThresh {
		return nil, false
	}

	overlap := textmatch.TokenOverlap(q, best.Question)
	if overlap < r.overlapThresh {
		return nil, false
	}

	return &Match{
		Bullets:  best.Bullets,
		Question: best.Question,
		Score:    bestScore,
		Overlap:  overlap,
	}, true
}
