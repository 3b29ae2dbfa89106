package session

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// QA is one answered question in the session log.
type QA struct {
	Question string
	Bullets  []string
}

// WriteTranscript flushes the session's Q&A log to
// <baseDir>/<timestamp>/qa_log.md and returns the written path. One file per
// run; the log is written only at shutdown.
func WriteTranscript(fs afero.Fs, baseDir string, startedAt time.Time, qaLog []QA) (string, error) {
	sessionDir := path.Join(baseDir, startedAt.Format("20060102_150405"))

	if err := fs.MkdirAll(sessionDir, 0o755); err != nil {
		return "", err
	}

	outPath := path.Join(sessionDir, "qa_log.md")

	var b strings.Builder
	b.WriteString("# Q&A Transcript\n\n")

	for i, item := range qaLog {
		fmt.Fprintf(&b, "## Q%d. %s\n\n", i+1, strings.TrimSpace(item.Question))

		for _, bullet := range item.Bullets {
			bullet = strings.TrimSpace(bullet)
			if bullet == "" {
				continue
			}

			fmt.Fprintf(&b, "- %s\n", bullet)
		}

		b.WriteString("\n---\n\n")
	}

	if err := afero.WriteFile(fs, outPath, []byte(b.String()), 0o644); err != nil {
		return "", err
	}

	return outPath, nil
}
