package projects

import (
	"testing"

	"github.com/spf13/afero"
)

func testRecords() []Record {
	return []Record{
		{
			ID:           "infra_migration",
			Name:         "Platform migration",
			ShortSummary: "migrated workloads under a hard deadline, on time delivery",
			Tags:         []string{"deadline", "ownership"},
		},
		{
			ID:            "cost_cutter",
			Name:          "Cloud spend review",
			ShortSummary:  "reduced monthly cloud cost",
			ImpactSummary: "cut billing by a third through optimization",
			Tags:          []string{"cost", "analysis"},
		},
		{
			ID:           DefaultID,
			Name:         "DevOps platform",
			ShortSummary: "built the internal deployment platform",
			Tags:         []string{"ownership", "mlops"},
		},
	}
}

func TestBehaviorTags(t *testing.T) {
	t.Run("deadline and leadership groups fire together", func(t *testing.T) {
		tags := BehaviorTags("Tell me about a time you led a team under a tight schedule")

		expected := []string{"deadline", "leadership", "ownership"}
		if len(tags) != len(expected) {
			t.Fatalf("expected %v, got %v", expected, tags)
		}

		for i := range expected {
			if tags[i] != expected[i] {
				t.Errorf("expected %v, got %v", expected, tags)
			}
		}
	})

	t.Run("generic experience wording falls back to ownership and deadline", func(t *testing.T) {
		tags := BehaviorTags("Give me an example from your experience")

		if len(tags) != 2 || tags[0] != "ownership" || tags[1] != "deadline" {
			t.Errorf("expected [ownership deadline], got %v", tags)
		}
	})

	t.Run("duplicate tags collapse, order preserved", func(t *testing.T) {
		// both the incident group and the reliability wording fire once
		tags := BehaviorTags("how did you handle the outage and the downtime incident")

		seen := make(map[string]int)
		for _, tag := range tags {
			seen[tag]++
			if seen[tag] > 1 {
				t.Errorf("tag %q appears more than once in %v", tag, tags)
			}
		}
	})
}

func TestPickBest(t *testing.T) {
	records := testRecords()

	t.Run("highest scoring project wins", func(t *testing.T) {
		p, ok := PickBest("Tell me about a time you worked against a cost budget", records, DefaultID)
		if !ok {
			t.Fatal("expected a pick")
		}

		if p.ID != "cost_cutter" {
			t.Errorf("expected cost_cutter, got %s", p.ID)
		}
	})

	t.Run("winner score beats every other candidate", func(t *testing.T) {
		question := "How did you deliver on time with a deadline?"
		tags := BehaviorTags(question)

		p, _ := PickBest(question, records, DefaultID)
		winning := Score(p, tags, question)

		for i := range records {
			if s := Score(&records[i], tags, question); s > winning {
				t.Errorf("record %s scores %f above winner %f", records[i].ID, s, winning)
			}
		}
	})

	t.Run("low scores fall back to the default project", func(t *testing.T) {
		p, ok := PickBest("What's the weather like?", records, DefaultID)
		if !ok {
			t.Fatal("expected a pick")
		}

		if p.ID != DefaultID {
			t.Errorf("expected default %s, got %s", DefaultID, p.ID)
		}
	})

	t.Run("low score without a default keeps the nominal winner", func(t *testing.T) {
		noDefault := records[:2]

		p, ok := PickBest("What's the weather like?", noDefault, DefaultID)
		if !ok {
			t.Fatal("expected a pick")
		}

		if p.ID != noDefault[0].ID && p.ID != noDefault[1].ID {
			t.Errorf("unexpected pick %s", p.ID)
		}
	})

	t.Run("empty list yields no pick", func(t *testing.T) {
		if _, ok := PickBest("anything", nil, DefaultID); ok {
			t.Error("expected no pick from empty list")
		}
	})

	t.Run("ties resolve to the earlier record", func(t *testing.T) {
		twins := []Record{
			{ID: "first", Name: "same", ShortSummary: "same", Tags: []string{"deadline"}},
			{ID: "second", Name: "same", ShortSummary: "same", Tags: []string{"deadline"}},
		}

		p, _ := PickBest("how did you handle the deadline on this project", twins, "")
		if p.ID != "first" {
			t.Errorf("expected first record on tie, got %s", p.ID)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing file degrades to empty", func(t *testing.T) {
		fs := afero.NewMemMapFs()

		records, degraded := Load(fs, "data/projects.yaml")
		if !degraded {
			t.Error("expected degraded load")
		}

		if len(records) != 0 {
			t.Errorf("expected no records, got %d", len(records))
		}
	})

	t.Run("valid yaml loads records", func(t *testing.T) {
		fs := afero.NewMemMapFs()

		content := `- id: p1
  name: Project one
  role: Engineer
  company: Acme
  short_summary: did things
  impact_summary: it worked
  tags: [deadline, ownership]
`
		if err := afero.WriteFile(fs, "data/projects.yaml", []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		records, degraded := Load(fs, "data/projects.yaml")
		if degraded {
			t.Error("expected clean load")
		}

		if len(records) != 1 || records[0].ID != "p1" || len(records[0].Tags) != 2 {
			t.Errorf("unexpected records: %+v", records)
		}
	})
}
