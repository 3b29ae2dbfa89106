package speech_to_text

import "github.com/go-audio/audio"

// PrepareWindow converts a raw capture window into the mono buffer the model
// expects: interleaved stereo is downmixed by averaging the channels, and the
// result is peak-normalized so quiet loopback captures still transcribe.
func PrepareWindow(samples []int16, sampleRate, channels int) audio.Buffer {
	mono := samples

	if channels == 2 {
		// drop a trailing odd sample so frames pair up
		n := len(samples) / 2
		mono = make([]int16, n)

		for i := 0; i < n; i++ {
			left := int(samples[2*i])
			right := int(samples[2*i+1])
			mono[i] = int16((left + right) / 2)
		}
	}

	peak := 0
	for _, s := range mono {
		v := int(s)
		if v < 0 {
			v = -v
		}

		if v > peak {
			peak = v
		}
	}

	data := make([]int, len(mono))

	if peak == 0 {
		for i, s := range mono {
			data[i] = int(s)
		}
	} else {
		scale := 32767.0 / float64(peak)
		if scale > 1.0 {
			for i, s := range mono {
				data[i] = int(float64(s) * scale)
			}
		} else {
			for i, s := range mono {
				data[i] = int(s)
			}
		}
	}

	return &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}
}
