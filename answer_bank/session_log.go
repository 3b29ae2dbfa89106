package answer_bank

import (
	"bufio"
	"strings"

	"github.com/spf13/afero"
)

// ParseSessionLog extracts Q&A pairs from a session markdown log in the
// format written at shutdown:
//
//	## Q1. Question text
//
//	- bullet 1
//	- bullet 2
//
//	---
//
// Headers without bullets are dropped. Other lines are ignored.
func ParseSessionLog(fs afero.Fs, path string) ([]Entry, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		entries        []Entry
		currentQ       string
		currentBullets []string
	)

	flush := func() {
		if currentQ != "" && len(currentBullets) > 0 {
			entries = append(entries, Entry{
				Question:   strings.TrimSpace(currentQ),
				Bullets:    currentBullets,
				SourceFile: path,
			})
		}

		currentQ = ""
		currentBullets = nil
	}

	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, "## "):
			flush()

			header := strings.TrimSpace(line[3:])

			// expected forms: "Q1. text", "Q1: text", "Q1 text"
			parts := strings.SplitN(header, " ", 2)
			if len(parts) == 2 && strings.HasPrefix(strings.ToLower(parts[0]), "q") {
				currentQ = strings.TrimSpace(strings.TrimLeft(parts[1], ".:"))
			} else {
				currentQ = header
			}

		case strings.HasPrefix(line, "---"):
			flush()

		case strings.HasPrefix(line, "- "):
			if currentQ != "" {
				if b := strings.TrimSpace(line[2:]); b != "" {
					currentBullets = append(currentBullets, b)
				}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	flush()

	return entries, nil
}
