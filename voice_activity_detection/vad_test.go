package voice_activity_detection

import (
	"math"
	"testing"
)

func sine(n int, freq, rate, amplitude float64) []int16 {
	frame := make([]int16, n)
	for i := range frame {
		frame[i] = int16(amplitude * fullScale * math.Sin(2*math.Pi*freq*float64(i)/rate))
	}

	return frame
}

func TestRMS(t *testing.T) {
	t.Run("silence is zero", func(t *testing.T) {
		if r := RMS(make([]int16, 1024)); r != 0.0 {
			t.Errorf("expected 0.0, got %f", r)
		}
	})

	t.Run("empty frame is zero", func(t *testing.T) {
		if r := RMS(nil); r != 0.0 {
			t.Errorf("expected 0.0, got %f", r)
		}
	})

	t.Run("full scale square wave is near 1.0", func(t *testing.T) {
		frame := make([]int16, 1024)
		for i := range frame {
			frame[i] = 32767
		}

		if r := RMS(frame); r < 0.99 {
			t.Errorf("expected near 1.0, got %f", r)
		}
	})
}

func TestHasEnoughVoiced(t *testing.T) {
	t.Run("loud tone clears the gate", func(t *testing.T) {
		frame := sine(16000, 440, 16000, 0.5)

		if !HasEnoughVoiced(frame, 16000, 200) {
			t.Error("expected a loud one second tone to count as voiced")
		}
	})

	t.Run("quiet noise stays below the gate", func(t *testing.T) {
		frame := sine(16000, 440, 16000, 0.01)

		if HasEnoughVoiced(frame, 16000, 200) {
			t.Error("expected quiet audio to fail the voiced gate")
		}
	})
}

func TestVAD_Flux(t *testing.T) {
	t.Run("first frame primes the detector", func(t *testing.T) {
		vad := New(1024)

		if f := vad.Flux(sine(1024, 440, 16000, 0.5)); f != 0.0 {
			t.Errorf("expected 0.0 on first frame, got %f", f)
		}
	})

	t.Run("spectral change produces positive flux", func(t *testing.T) {
		vad := New(1024)

		vad.Flux(make([]int16, 1024))

		if f := vad.Flux(sine(1024, 440, 16000, 0.5)); f <= 0.0 {
			t.Errorf("expected positive flux on speech onset, got %f", f)
		}
	})
}
