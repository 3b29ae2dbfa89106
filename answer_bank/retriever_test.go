package answer_bank

import (
	"testing"

	"github.com/spf13/afero"
)

func newTestRetriever(t *testing.T, entries []Entry) *Retriever {
	t.Helper()

	r, err := NewRetriever(&RetrieverConfig{
		Entries:          entries,
		SimilarityThresh: 0.82,
		OverlapThresh:    0.55,
	})
	if err != nil {
		t.Fatal(err)
	}

	return r
}

func TestRetriever_FindBest(t *testing.T) {
	bank := []Entry{
		{Question: "Tell me about yourself", Bullets: []string{"a", "b"}},
		{Question: "What are your strengths?", Bullets: []string{"c"}},
	}

	t.Run("exact question returns the stored bullets", func(t *testing.T) {
		r := newTestRetriever(t, bank)

		match, ok := r.FindBest("Tell me about yourself")
		if !ok {
			t.Fatal("expected a match")
		}

		if len(match.Bullets) != 2 || match.Bullets[0] != "a" || match.Bullets[1] != "b" {
			t.Errorf("unexpected bullets: %v", match.Bullets)
		}

		if match.Question != "Tell me about yourself" {
			t.Errorf("unexpected matched question: %s", match.Question)
		}

		if match.Score < 0.82 {
			t.Errorf("score below threshold: %f", match.Score)
		}
	})

	t.Run("unrelated question reports no match", func(t *testing.T) {
		r := newTestRetriever(t, bank)

		if _, ok := r.FindBest("What's your favorite color?"); ok {
			t.Error("expected no match")
		}
	})

	t.Run("empty bank never matches", func(t *testing.T) {
		r := newTestRetriever(t, nil)

		if _, ok := r.FindBest("Tell me about yourself"); ok {
			t.Error("expected no match from empty bank")
		}
	})

	t.Run("high character ratio alone is rejected by the overlap gate", func(t *testing.T) {
		r, err := NewRetriever(&RetrieverConfig{
			Entries:          []Entry{{Question: "abcdefgh ijkl", Bullets: []string{"x"}}},
			SimilarityThresh: 0.5,
			OverlapThresh:    0.99,
		})
		if err != nil {
			t.Fatal(err)
		}

		// similar characters, disjoint tokens
		if _, ok := r.FindBest("abcdefgh mnop"); ok {
			t.Error("expected overlap gate to reject")
		}
	})
}

func TestLoadBank(t *testing.T) {
	t.Run("missing file degrades to empty", func(t *testing.T) {
		fs := afero.NewMemMapFs()

		entries, degraded := Load(fs, "data/answer_bank.jsonl")
		if !degraded {
			t.Error("expected degraded load")
		}

		if len(entries) != 0 {
			t.Errorf("expected empty bank, got %d entries", len(entries))
		}
	})

	t.Run("malformed lines are skipped", func(t *testing.T) {
		fs := afero.NewMemMapFs()

		content := `{"question":"Tell me about yourself","bullets":["a","b"]}
not json at all
{"question":"","bullets":["orphan"]}

{"question":"What are your strengths?","bullets":["c"]}
`
		if err := afero.WriteFile(fs, "data/answer_bank.jsonl", []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		entries, degraded := Load(fs, "data/answer_bank.jsonl")
		if degraded {
			t.Error("expected clean load")
		}

		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}

		if entries[0].Question != "Tell me about yourself" || entries[1].Question != "What are your strengths?" {
			t.Errorf("unexpected entries: %+v", entries)
		}
	})
}

func TestParseSessionLog(t *testing.T) {
	content := `# Q&A Transcript

## Q1. Tell me about yourself

- first bullet
- second bullet

---

## Q2: What are your strengths?

- third bullet

---

## Q3. Question without bullets

---
`

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "data/sessions/20250101_120000/qa_log.md", []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := ParseSessionLog(fs, "data/sessions/20250101_120000/qa_log.md")
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].Question != "Tell me about yourself" {
		t.Errorf("unexpected first question: %q", entries[0].Question)
	}

	if len(entries[0].Bullets) != 2 || entries[0].Bullets[1] != "second bullet" {
		t.Errorf("unexpected bullets: %v", entries[0].Bullets)
	}

	if entries[1].Question != "What are your strengths?" {
		t.Errorf("unexpected second question: %q", entries[1].Question)
	}

	if entries[1].SourceFile == "" {
		t.Error("expected source file to be recorded")
	}
}
