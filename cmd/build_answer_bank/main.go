// build_answer_bank collects the Q&A pairs from every session log and
// rewrites the answer bank file the retriever loads at startup.
package main

import (
	"flag"
	"log"
	"path"
	"sort"

	"github.com/spf13/afero"

	"interview-copilot/answer_bank"
)

func main() {
	sessionsFlag := flag.String("sessions", "data/sessions", "sessions directory")
	outFlag := flag.String("o", "data/answer_bank.jsonl", "output bank file")

	flag.Parse()

	fileSys := afero.NewOsFs()

	pattern := path.Join(*sessionsFlag, "*", "qa_log.md")

	paths, err := afero.Glob(fileSys, pattern)
	if err != nil {
		log.Fatalf("error globbing session logs: %v", err)
	}

	sort.Strings(paths)

	log.Printf("found %d session logs", len(paths))

	var all []answer_bank.Entry

	for _, p := range paths {
		entries, err := answer_bank.ParseSessionLog(fileSys, p)
		if err != nil {
			log.Printf("skipping %s: %v", p, err)

			continue
		}

		all = append(all, entries...)

		log.Printf("parsed %d Q&A pairs so far (%s)", len(all), p)
	}

	if err := fileSys.MkdirAll(path.Dir(*outFlag), 0o755); err != nil {
		log.Fatalf("error creating output dir: %v", err)
	}

	if err := answer_bank.Write(fileSys, *outFlag, all); err != nil {
		log.Fatalf("error writing bank: %v", err)
	}

	log.Printf("extracted %d Q&A pairs into %s", len(all), *outFlag)
}
