// transcribe_file runs full transcription on a WAV file and writes the text
// next to it.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
	"github.com/go-audio/wav"

	"interview-copilot/speech_to_text"
)

func main() {
	modelFlag := flag.String("m", "", "model file for whisper")

	flag.Parse()

	if *modelFlag == "" {
		log.Fatalf("error: model file not specified")
	}

	if flag.NArg() != 1 {
		log.Fatalf("usage: transcribe_file -m model.bin input.wav")
	}

	wavPath := flag.Arg(0)

	// Load model
	model, err := whisper.New(*modelFlag)
	if err != nil {
		log.Fatalf("error loading model: %v", err)
	}

	defer model.Close()

	sttEngine, err := speech_to_text.New(&speech_to_text.Config{
		Model: model,
	})
	if err != nil {
		log.Fatalf("error with speech_to_text.New: %v", err)
	}

	f, err := os.Open(wavPath)
	if err != nil {
		log.Fatalf("error opening %s: %v", wavPath, err)
	}

	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		log.Fatalf("error: %s is not a valid wav file", wavPath)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		log.Fatalf("error reading pcm data: %v", err)
	}

	log.Printf("transcribing %s", wavPath)

	text, err := sttEngine.Process(buf)
	if err != nil {
		log.Fatalf("error running model: %v", err)
	}

	textPath := strings.TrimSuffix(wavPath, ".wav") + ".txt"

	if err := os.WriteFile(textPath, []byte(text+"\n"), 0o644); err != nil {
		log.Fatalf("error writing transcript: %v", err)
	}

	log.Printf("transcript saved: %s", textPath)
}
