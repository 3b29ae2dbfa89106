package speech_to_text

import "testing"

func TestPrepareWindow(t *testing.T) {
	t.Run("stereo downmix averages channels", func(t *testing.T) {
		buf := PrepareWindow([]int16{100, 200, -100, -200}, 16000, 2)

		intBuf := buf.AsIntBuffer()
		if len(intBuf.Data) != 2 {
			t.Fatalf("expected 2 mono samples, got %d", len(intBuf.Data))
		}
	})

	t.Run("mono passes through with peak normalization", func(t *testing.T) {
		buf := PrepareWindow([]int16{0, 16383, -16383, 0}, 16000, 1)

		data := buf.AsIntBuffer().Data
		if len(data) != 4 {
			t.Fatalf("expected 4 samples, got %d", len(data))
		}

		// peak scaled up to near full scale
		if data[1] < 32000 {
			t.Errorf("expected normalized peak, got %d", data[1])
		}
	})

	t.Run("silence stays silent", func(t *testing.T) {
		buf := PrepareWindow(make([]int16, 8), 16000, 1)

		for _, s := range buf.AsIntBuffer().Data {
			if s != 0 {
				t.Fatalf("expected silence, got %d", s)
			}
		}
	})

	t.Run("mono format metadata", func(t *testing.T) {
		buf := PrepareWindow([]int16{1, 2}, 16000, 1)

		intBuf := buf.AsIntBuffer()
		if intBuf.Format.NumChannels != 1 || intBuf.Format.SampleRate != 16000 {
			t.Errorf("unexpected format: %+v", intBuf.Format)
		}
	})
}
