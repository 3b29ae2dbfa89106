// Package audio_capture produces fixed-size PCM chunks from a portaudio
// input device. One background goroutine runs the capture stream; the
// session loop consumes chunks from a bounded channel. When the consumer
// falls behind, the oldest chunk is dropped in favor of the newest, so the
// transcript stays close to live audio at the cost of completeness.
package audio_capture

import (
	"fmt"
	"log"

	"github.com/gordonklaus/portaudio"
)

const defaultQueueSize = 20

type captureImpl struct {
	deviceIndex int
	sampleRate  int
	channels    int
	chunkFrames int
	chunks      chan []int16
}

type Config struct {
	// DeviceIndex selects the portaudio input device; negative means the
	// system default.
	DeviceIndex int
	SampleRate  int
	Channels    int
	ChunkMs     int
	QueueSize   int
}

func New(cfg *Config) (Interface, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sampleRate must be positive")
	}

	if cfg.Channels <= 0 {
		return nil, fmt.Errorf("channels must be positive")
	}

	if cfg.ChunkMs <= 0 {
		return nil, fmt.Errorf("chunkMs must be positive")
	}

	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	return &captureImpl{
		deviceIndex: cfg.DeviceIndex,
		sampleRate:  cfg.SampleRate,
		channels:    cfg.Channels,
		chunkFrames: cfg.SampleRate * cfg.ChunkMs / 1000,
		chunks:      make(chan []int16, queueSize),
	}, nil
}

func (c *captureImpl) Chunks() <-chan []int16 {
	return c.chunks
}

func (c *captureImpl) Run(stop <-chan struct{}) error {
	defer close(c.chunks)

	err := portaudio.Initialize()
	if err != nil {
		return err
	}

	defer func() {
		if err := portaudio.Terminate(); err != nil {
			log.Printf("error while freeing audio: %v", err)
		}
	}()

	in := make([]int16, c.chunkFrames*c.channels)

	stream, err := c.openStream(in)
	if err != nil {
		return err
	}

	defer stream.Close()

	err = stream.Start()
	if err != nil {
		return err
	}

	log.Printf("capturing device %d at %d Hz", c.deviceIndex, c.sampleRate)

	for {
		select {
		case <-stop:
			return stream.Stop()
		default:
		}

		err = stream.Read()
		if err != nil {
			// overflows happen when the consumer blocks on the LLM;
			// skip the chunk rather than kill the capture loop
			if err == portaudio.InputOverflowed {
				continue
			}

			return err
		}

		chunk := make([]int16, len(in))
		copy(chunk, in)

		c.push(chunk)
	}
}

// push enqueues a chunk, dropping the oldest and retrying once when the
// queue is full. If the retry also fails the new chunk is dropped.
func (c *captureImpl) push(chunk []int16) {
	select {
	case c.chunks <- chunk:
		return
	default:
	}

	select {
	case <-c.chunks:
	default:
	}

	select {
	case c.chunks <- chunk:
	default:
	}
}

func (c *captureImpl) openStream(in []int16) (*portaudio.Stream, error) {
	if c.deviceIndex < 0 {
		return portaudio.OpenDefaultStream(c.channels, 0, float64(c.sampleRate), c.chunkFrames, in)
	}

	devices, err := portaudio.Devices()
	if err != nil {
		return nil, err
	}

	if c.deviceIndex >= len(devices) {
		return nil, fmt.Errorf("device index %d out of range (%d devices)", c.deviceIndex, len(devices))
	}

	device := devices[c.deviceIndex]

	params := portaudio.StreamParameters{
		Input: portaudio.StreamDeviceParameters{
			Device:   device,
			Channels: c.channels,
			Latency:  device.DefaultLowInputLatency,
		},
		SampleRate:      float64(c.sampleRate),
		FramesPerBuffer: c.chunkFrames,
	}

	return portaudio.OpenStream(params, in)
}
