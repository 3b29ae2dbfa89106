package intent

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		question string
		expected Intent
	}{
		{"Tell me about yourself", Intro},
		{"Could you introduce yourself?", Intro},
		{"What have you studied?", Education},
		{"Tell me about your background", Education},
		{"What has been your experience with cloud platforms?", Experience},
		{"What are your strengths?", Strengths},
		{"What are your weaknesses?", Weaknesses},
		{"What are your improvement areas?", Weaknesses},
		{"What is an LLM?", LLMBasics},
		{"How do LLMs work?", LLMBasics},
		{"Walk me through an end-to-end pipeline", MLPipeline},
		{"How would you deploy a model?", MLPipeline},
		{"Why do you want to work here?", WhyCompany},
		{"Why should we hire you?", WhyCompany},
		{"Tell me about a time you missed a deadline", BehavioralProject},
		{"Describe a situation where you led a team", BehavioralProject},
		{"What's your favorite programming language?", Generic},
	}

	for _, c := range cases {
		t.Run(c.question, func(t *testing.T) {
			if got := Classify(c.question); got != c.expected {
				t.Errorf("Classify(%q) = %q, expected %q", c.question, got, c.expected)
			}
		})
	}
}

func TestClassify_Precedence(t *testing.T) {
	t.Run("experience rule wins over education when both could fire", func(t *testing.T) {
		// "experience" + "what has been your" is checked after education, so
		// a question also containing "education" resolves to education first
		q := "what is your experience with what has been your education"
		if got := Classify(q); got != Education {
			t.Errorf("expected %q, got %q", Education, got)
		}
	})

	t.Run("intro wins over behavioral phrasing", func(t *testing.T) {
		q := "tell me about yourself and give me an example"
		if got := Classify(q); got != Intro {
			t.Errorf("expected %q, got %q", Intro, got)
		}
	})
}

func TestClassify_Deterministic(t *testing.T) {
	q := "Why do you want to join our platform team?"

	first := Classify(q)
	for i := 0; i < 5; i++ {
		if got := Classify(q); got != first {
			t.Fatalf("classification changed between calls: %q vs %q", first, got)
		}
	}
}
