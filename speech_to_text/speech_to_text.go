package speech_to_text

import (
	"fmt"
	"io"
	"strings"

	"github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
	"github.com/go-audio/audio"
)

type sttImpl struct {
	model whisper.Model
}

type Config struct {
	Model whisper.Model
}

func New(cfg *Config) (Interface, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	if cfg.Model == nil {
		return nil, fmt.Errorf("model is nil")
	}

	return &sttImpl{
		model: cfg.Model,
	}, nil
}

// Process transcribes one audio window and returns the joined segment text.
func (stt *sttImpl) Process(wavBuffer audio.Buffer) (string, error) {
	// Create processing context
	context, err := stt.model.NewContext()
	if err != nil {
		return "", err
	}

	data := wavBuffer.AsFloat32Buffer().Data

	var cb whisper.SegmentCallback

	err = context.Process(data, cb)
	if err != nil {
		return "", err
	}

	segments, err := collectSegments(context)
	if err != nil {
		return "", err
	}

	var texts []string
	for _, segment := range segments {
		texts = append(texts, strings.TrimSpace(segment.Text))
	}

	return strings.Join(texts, " "), nil
}

func collectSegments(context whisper.Context) ([]whisper.Segment, error) {
	seenText := make(map[string]bool)

	segments := make([]whisper.Segment, 0)

	for {
		segment, err := context.NextSegment()
		if err == io.EOF {
			return segments, nil
		} else if err != nil {
			return nil, err
		}

		// segments wrapped in parentheses or brackets are whisper noise
		// annotations like "(music)", not speech
		if len(segment.Text) > 0 && (segment.Text[0] == '(' || segment.Text[0] == '[' ||
			segment.Text[len(segment.Text)-1] == ')' || segment.Text[len(segment.Text)-1] == ']') {
			continue
		}

		// overlapping windows re-emit identical segments
		if _, ok := seenText[segment.Text]; ok {
			continue
		} else {
			seenText[segment.Text] = true
		}

		segments = append(segments, segment)
	}
}
