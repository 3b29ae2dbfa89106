package question_finder

import (
	"strings"
	"testing"
)

func TestFinder_Process(t *testing.T) {
	t.Run("detects a question ending in a question mark", func(t *testing.T) {
		f := New(nil)

		questions := f.Process("What has been your experience with cloud platforms?")
		if len(questions) != 1 {
			t.Fatalf("expected 1 question, got %d: %v", len(questions), questions)
		}
	})

	t.Run("same sentence across overlapping windows is emitted once", func(t *testing.T) {
		f := New(nil)

		first := f.Process("Can you walk me through your deployment process?")
		second := f.Process("Can you walk me through your deployment process?")

		if len(first) != 1 {
			t.Fatalf("expected 1 question on first chunk, got %d", len(first))
		}

		if len(second) != 0 {
			t.Errorf("expected dedup on second chunk, got %v", second)
		}
	})

	t.Run("prefix drift from the sliding window is absorbed", func(t *testing.T) {
		f := New(nil)

		f.Process("So can you walk me through your deployment process?")
		again := f.Process("you walk me through your deployment process?")

		if len(again) != 0 {
			t.Errorf("expected substring dedup, got %v", again)
		}
	})

	t.Run("three word fragment is never emitted", func(t *testing.T) {
		f := New(nil)

		if qs := f.Process("What about scaling?"); len(qs) != 0 {
			t.Errorf("expected no questions, got %v", qs)
		}
	})

	t.Run("six word question is emitted", func(t *testing.T) {
		f := New(nil)

		qs := f.Process("How do you handle production incidents today?")
		if len(qs) != 1 {
			t.Errorf("expected 1 question, got %v", qs)
		}
	})

	t.Run("meeting chatter is never a question", func(t *testing.T) {
		f := New(nil)

		chatter := []string{
			"Can you hear me, you are on mute?",
			"Please show me your ID before we start?",
			"Thank you so much for joining today?",
		}

		for _, c := range chatter {
			if qs := f.Process(c); len(qs) != 0 {
				t.Errorf("chatter %q emitted %v", c, qs)
			}
		}
	})

	t.Run("boilerplate lead-in is stripped before dedup", func(t *testing.T) {
		f := New(nil)

		qs := f.Process("So let's begin with our very first question which is tell me about yourself?")
		if len(qs) != 1 {
			t.Fatalf("expected 1 question, got %v", qs)
		}

		// the normalized form should dedup against the bare question
		if again := f.Process("Tell me about yourself and your recent work?"); len(again) != 0 {
			t.Errorf("expected dedup against stripped boilerplate, got %v", again)
		}
	})

	t.Run("statements are not questions", func(t *testing.T) {
		f := New(nil)

		if qs := f.Process("I worked at a consultancy for three years."); len(qs) != 0 {
			t.Errorf("expected no questions, got %v", qs)
		}
	})

	t.Run("over long fragments are rejected", func(t *testing.T) {
		f := New(nil)

		long := "what " + strings.Repeat("and more words ", 20) + "now?"
		if qs := f.Process(long); len(qs) != 0 {
			t.Errorf("expected rejection of %d word question", len(strings.Fields(long)))
		}
	})

	t.Run("empty input returns nothing", func(t *testing.T) {
		f := New(nil)

		if qs := f.Process(""); qs != nil {
			t.Errorf("expected nil, got %v", qs)
		}
	})
}

func TestNormalizeQuestion(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"So let's begin with our very first question which is tell me about yourself?", "tell me about yourself"},
		{"Okay, what are your strengths?", "what are your strengths"},
		{"How how how did you handle the outage?", "how did you handle the outage"},
		{"Um, can you explain your architecture?", "can you explain your architecture"},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			if got := normalizeQuestion(c.in); got != c.expected {
				t.Errorf("normalizeQuestion(%q) = %q, expected %q", c.in, got, c.expected)
			}
		})
	}
}

func TestCollapseStutters(t *testing.T) {
	t.Run("three repeats collapse to one", func(t *testing.T) {
		got := collapseStutters([]string{"how", "how", "how", "did", "you"})

		if strings.Join(got, " ") != "how did you" {
			t.Errorf("got %v", got)
		}
	})

	t.Run("double words are left alone", func(t *testing.T) {
		got := collapseStutters([]string{"that", "that", "was", "hard"})

		if strings.Join(got, " ") != "that that was hard" {
			t.Errorf("got %v", got)
		}
	})
}

func TestFinder_RollingBufferCap(t *testing.T) {
	f := New(&Config{BufferLimit: 200})

	// flood the buffer so early content slides out
	for i := 0; i < 10; i++ {
		f.Process("some ordinary statement about nothing in particular.")
	}

	qs := f.Process("What has been your experience with observability tooling?")
	if len(qs) != 1 {
		t.Errorf("expected the question to survive the rolling window, got %v", qs)
	}
}
