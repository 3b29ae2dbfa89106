// Package answer_bank stores previously generated question/answer pairs and
// retrieves near-duplicate answers for reuse.
package answer_bank

import (
	"bufio"
	"encoding/json"
	"log"

	"github.com/spf13/afero"
)

// Entry is one historical Q&A record from the append-only bank file.
type Entry struct {
	Question   string   `json:"question"`
	Bullets    []string `json:"bullets"`
	SourceFile string   `json:"source_file,omitempty"`
}

// Load reads the line-delimited JSON bank. Blank and malformed lines are
// skipped. A missing file degrades to an empty bank; the second return
// reports the degradation.
func Load(fs afero.Fs, path string) ([]Entry, bool) {
	f, err := fs.Open(path)
	if err != nil {
		log.Printf("no answer bank at %s, history reuse disabled", path)

		return nil, true
	}
	defer f.Close()

	var entries []Entry

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			continue
		}

		if e.Question == "" || len(e.Bullets) == 0 {
			continue
		}

		entries = append(entries, e)
	}

	log.Printf("loaded %d historical Q&A entries from %s", len(entries), path)

	return entries, false
}

// Write appends entries to the bank file as line-delimited JSON, replacing
// the file's contents.
func Write(fs afero.Fs, path string, entries []Entry) error {
	f, err := fs.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	for _, e := range entries {
		data, err := json.Marshal(e)
		if err != nil {
			return err
		}

		if _, err := w.Write(append(data, '\n')); err != nil {
			return err
		}
	}

	return w.Flush()
}
