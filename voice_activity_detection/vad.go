// Package voice_activity_detection gates audio windows before they are sent
// to the transcription engine: cheap RMS and voiced-sample checks for the
// live loop, and a spectral-flux detector for the capture sanity tool.
package voice_activity_detection

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
)

const fullScale = 32768.0

// voicedThreshold is the amplitude above which a sample counts as voiced,
// as a fraction of full scale.
const voicedThreshold = 0.08

// RMS returns the root-mean-square level of a frame, normalized to [0, 1].
func RMS(frame []int16) float64 {
	if len(frame) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, s := range frame {
		f := float64(s)
		sum += f * f
	}

	return math.Sqrt(sum/float64(len(frame))) / fullScale
}

// VoicedMillis returns how many milliseconds of the frame sit above the
// voiced amplitude threshold.
func VoicedMillis(frame []int16, sampleRate int) float64 {
	if len(frame) == 0 || sampleRate <= 0 {
		return 0.0
	}

	thr := voicedThreshold * fullScale

	voiced := 0
	for _, s := range frame {
		if math.Abs(float64(s)) >= thr {
			voiced++
		}
	}

	return float64(voiced) / float64(sampleRate) * 1000.0
}

// HasEnoughVoiced reports whether the frame carries at least minSpeechMs of
// voiced audio; windows failing this are dropped without transcription.
func HasEnoughVoiced(frame []int16, sampleRate, minSpeechMs int) bool {
	return VoicedMillis(frame, sampleRate) >= float64(minSpeechMs)
}

// VAD tracks spectral flux between consecutive frames. A jump in flux marks
// the onset of speech over steady background noise.
type VAD struct {
	frameSize    int
	lastSpectrum []float64
}

func New(frameSize int) *VAD {
	return &VAD{
		frameSize: frameSize,
	}
}

// Flux returns the spectral flux of the frame against the previous one.
func (v *VAD) Flux(frame []int16) float64 {
	samples := make([]float64, len(frame))
	for i, s := range frame {
		samples[i] = float64(s) / fullScale
	}

	spectrum := fft.FFTReal(samples)

	half := len(spectrum) / 2
	magnitudes := make([]float64, half)

	for i := 0; i < half; i++ {
		magnitudes[i] = math.Hypot(real(spectrum[i]), imag(spectrum[i]))
	}

	if v.lastSpectrum == nil || len(v.lastSpectrum) != len(magnitudes) {
		v.lastSpectrum = magnitudes

		return 0.0
	}

	flux := 0.0
	for i := range magnitudes {
		d := magnitudes[i] - v.lastSpectrum[i]
		flux += d * d
	}

	v.lastSpectrum = magnitudes

	return math.Sqrt(flux)
}
