package answer_engine

import (
	"interview-copilot/intent"
	"interview-copilot/projects"
)

// SessionState carries the per-session continuity the engine needs between
// questions. It is owned by the engine and mutated only after a successful
// answer; a failed LLM call leaves it untouched.
type SessionState struct {
	LastQuestion          string
	LastIntent            intent.Intent
	LastBehavioralProject *projects.Record
	LastBehavioralAnswer  []string
}
