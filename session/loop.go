// Package session runs the live interview loop: drain captured audio into a
// sliding window, gate it with the VAD, transcribe, feed the question finder,
// and answer each new question. Everything runs on one goroutine; the only
// concurrency is the capture producer on the other end of the chunk channel.
package session

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/afero"

	"interview-copilot/question_finder"
	"interview-copilot/ring_buffer"
	"interview-copilot/speech_to_text"
	"interview-copilot/voice_activity_detection"
)

const printedTailLimit = 8000

// Answerer is the answer engine as the loop sees it.
type Answerer interface {
	GenerateAnswer(ctx context.Context, question string) []string
}

type Loop struct {
	chunks    <-chan []int16
	sttEngine speech_to_text.Interface
	engine    Answerer
	finder    *question_finder.Finder
	fs        afero.Fs

	sampleRate  int
	channels    int
	windowS     int
	stepS       int
	rmsThresh   float64
	minSpeechMs int
	sessionsDir string

	printedTail string
	qaLog       []QA
	startedAt   time.Time
}

type Config struct {
	Chunks      <-chan []int16
	STTEngine   speech_to_text.Interface
	Engine      Answerer
	Finder      *question_finder.Finder
	FileSys     afero.Fs
	SampleRate  int
	Channels    int
	WindowS     int
	StepS       int
	RMSThresh   float64
	MinSpeechMs int
	SessionsDir string
}

func New(cfg *Config) (*Loop, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	if cfg.Chunks == nil {
		return nil, fmt.Errorf("chunks is nil")
	}

	if cfg.STTEngine == nil {
		return nil, fmt.Errorf("sttEngine is nil")
	}

	if cfg.Engine == nil {
		return nil, fmt.Errorf("engine is nil")
	}

	if cfg.Finder == nil {
		return nil, fmt.Errorf("finder is nil")
	}

	if cfg.FileSys == nil {
		return nil, fmt.Errorf("fileSys is nil")
	}

	return &Loop{
		chunks:      cfg.Chunks,
		sttEngine:   cfg.STTEngine,
		engine:      cfg.Engine,
		finder:      cfg.Finder,
		fs:          cfg.FileSys,
		sampleRate:  cfg.SampleRate,
		channels:    cfg.Channels,
		windowS:     cfg.WindowS,
		stepS:       cfg.StepS,
		rmsThresh:   cfg.RMSThresh,
		minSpeechMs: cfg.MinSpeechMs,
		sessionsDir: cfg.SessionsDir,
		startedAt:   time.Now(),
	}, nil
}

// Run consumes audio until the context is cancelled or the chunk channel
// closes, then writes the session transcript.
func (l *Loop) Run(ctx context.Context) error {
	windowSamples := l.sampleRate * l.windowS * l.channels
	stepSamples := l.sampleRate * l.stepS * l.channels

	// hold a few windows; a stalled LLM call sheds the oldest audio
	buffer := ring_buffer.New(windowSamples * 4)

	log.Printf("starting live transcription and question finding")

loop:
	for {
		select {
		case <-ctx.Done():
			break loop

		case chunk, ok := <-l.chunks:
			if !ok {
				break loop
			}

			buffer.Append(chunk)
		}

		// drain whatever else is queued before transcribing
	drain:
		for {
			select {
			case chunk, ok := <-l.chunks:
				if !ok {
					break drain
				}

				buffer.Append(chunk)
			default:
				break drain
			}
		}

		for buffer.Len() >= windowSamples {
			window := buffer.Head(windowSamples)
			l.processWindow(ctx, window)
			buffer.Advance(stepSamples)
		}
	}

	outPath, err := WriteTranscript(l.fs, l.sessionsDir, l.startedAt, l.qaLog)
	if err != nil {
		return err
	}

	log.Printf("Q&A log saved to %s", outPath)

	return nil
}

func (l *Loop) processWindow(ctx context.Context, window []int16) {
	level := voice_activity_detection.RMS(window)
	if level < l.rmsThresh {
		return
	}

	if !voice_activity_detection.HasEnoughVoiced(window, l.sampleRate*l.channels, l.minSpeechMs) {
		return
	}

	buf := speech_to_text.PrepareWindow(window, l.sampleRate, l.channels)

	text, err := l.sttEngine.Process(buf)
	if err != nil {
		log.Printf("error running model: %v", err)

		return
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	newPart := l.unseenTail(text)
	if newPart == "" {
		return
	}

	for _, line := range strings.Split(newPart, ". ") {
		if line = strings.TrimSpace(line); line != "" {
			log.Printf("transcript: %s", line)
		}
	}

	l.printedTail += " " + newPart
	if len(l.printedTail) > printedTailLimit {
		l.printedTail = l.printedTail[len(l.printedTail)-printedTailLimit:]
	}

	for _, question := range l.finder.Process(newPart) {
		log.Printf("question: %s", question)

		bullets := l.engine.GenerateAnswer(ctx, question)
		for _, b := range bullets {
			log.Printf("  -> %s", b)
		}

		l.qaLog = append(l.qaLog, QA{Question: question, Bullets: bullets})
	}
}

// unseenTail strips the longest overlap between the already-printed tail
// and the start of the new transcription. Overlapping audio windows
// re-transcribe the same speech, so most of each window has been seen.
func (l *Loop) unseenTail(text string) string {
	tail := l.printedTail
	if len(tail) > 2000 {
		tail = tail[len(tail)-2000:]
	}

	max := len(text)
	if len(tail) < max {
		max = len(tail)
	}

	for n := max; n > 0; n-- {
		if strings.HasSuffix(tail, text[:n]) {
			return strings.TrimSpace(text[n:])
		}
	}

	return strings.TrimSpace(text)
}
