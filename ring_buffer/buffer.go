package ring_buffer

// SampleBuffer is a FIFO window over int16 PCM samples. Audio chunks are
// appended at the tail; the transcription loop reads a fixed-size head and
// advances by the step size. When the buffer grows past its cap the oldest
// samples are dropped, so a stalled consumer trades history for recency.
type SampleBuffer struct {
	samples []int16
	cap     int
}

func New(cap int) *SampleBuffer {
	return &SampleBuffer{
		samples: make([]int16, 0, cap),
		cap:     cap,
	}
}

func (b *SampleBuffer) Append(chunk []int16) {
	b.samples = append(b.samples, chunk...)

	if len(b.samples) > b.cap {
		drop := len(b.samples) - b.cap
		b.samples = b.samples[drop:]
	}
}

func (b *SampleBuffer) Len() int {
	return len(b.samples)
}

// Head returns a copy of the oldest n samples, or nil if fewer are buffered.
func (b *SampleBuffer) Head(n int) []int16 {
	if len(b.samples) < n {
		return nil
	}

	head := make([]int16, n)
	copy(head, b.samples[:n])

	return head
}

// Advance discards the oldest n samples.
func (b *SampleBuffer) Advance(n int) {
	if n >= len(b.samples) {
		b.samples = b.samples[:0]
		return
	}

	b.samples = b.samples[n:]
}

func (b *SampleBuffer) Clear() {
	b.samples = b.samples[:0]
}
