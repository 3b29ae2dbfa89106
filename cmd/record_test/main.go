// record_test captures a few seconds from an input device and writes a WAV
// file, reporting RMS along the way. Used to find the right loopback device
// before a live session: low average RMS means the wrong device or a muted
// output.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gordonklaus/portaudio"
	"github.com/spf13/afero"
	"github.com/zenwerk/go-wave"

	"interview-copilot/voice_activity_detection"
)

const framesPerBuffer = 1024

func main() {
	deviceFlag := flag.Int("d", -1, "input device index (-1 for default)")
	rateFlag := flag.Int("r", 48000, "sample rate")
	channelsFlag := flag.Int("c", 2, "channels")
	secondsFlag := flag.Int("t", 3, "seconds to record")
	outFlag := flag.String("o", "capture_test.wav", "output wav file")

	flag.Parse()

	err := record(*deviceFlag, *rateFlag, *channelsFlag, *secondsFlag, *outFlag)
	if err != nil {
		log.Fatalf("error: %v", err)
	}
}

func record(deviceIndex, rate, channels, seconds int, outPath string) error {
	err := portaudio.Initialize()
	if err != nil {
		return err
	}

	defer portaudio.Terminate()

	in := make([]int16, framesPerBuffer*channels)

	stream, err := openStream(deviceIndex, rate, channels, in)
	if err != nil {
		return err
	}

	defer stream.Close()

	fileSys := afero.NewOsFs()

	waveFile, err := fileSys.Create(outPath)
	if err != nil {
		return err
	}

	param := wave.WriterParam{
		Out:           waveFile,
		Channel:       channels,
		SampleRate:    rate,
		BitsPerSample: 16,
	}

	waveWriter, err := wave.NewWriter(param)
	if err != nil {
		return err
	}

	defer waveWriter.Close()

	err = stream.Start()
	if err != nil {
		return err
	}

	iterations := rate * seconds / framesPerBuffer

	log.Printf("recording %ds from device %d at %d Hz", seconds, deviceIndex, rate)

	var sumRMS, peakRMS float64

	for i := 0; i < iterations; i++ {
		err = stream.Read()
		if err != nil {
			return err
		}

		_, err = waveWriter.WriteSample16(in)
		if err != nil {
			return err
		}

		r := voice_activity_detection.RMS(in)
		sumRMS += r

		if r > peakRMS {
			peakRMS = r
		}

		if iterations >= 10 && i%(iterations/10) == 0 {
			log.Printf("iter %d/%d, rms=%.6f", i, iterations, r)
		}
	}

	err = stream.Stop()
	if err != nil {
		return err
	}

	avgRMS := 0.0
	if iterations > 0 {
		avgRMS = sumRMS / float64(iterations)
	}

	log.Printf("wrote %s, avg_rms=%.6f, peak_rms=%.6f", outPath, avgRMS, peakRMS)

	if avgRMS < 0.0005 {
		log.Printf("low energy captured, likely the wrong device or a muted output")
	} else {
		log.Printf("captured sound looks present, play %s to verify", outPath)
	}

	return nil
}

func openStream(deviceIndex, rate, channels int, in []int16) (*portaudio.Stream, error) {
	if deviceIndex < 0 {
		return portaudio.OpenDefaultStream(channels, 0, float64(rate), framesPerBuffer, in)
	}

	devices, err := portaudio.Devices()
	if err != nil {
		return nil, err
	}

	if deviceIndex >= len(devices) {
		return nil, fmt.Errorf("device index %d out of range (%d devices)", deviceIndex, len(devices))
	}

	device := devices[deviceIndex]

	params := portaudio.StreamParameters{
		Input: portaudio.StreamDeviceParameters{
			Device:   device,
			Channels: channels,
			Latency:  device.DefaultLowInputLatency,
		},
		SampleRate:      float64(rate),
		FramesPerBuffer: framesPerBuffer,
	}

	return portaudio.OpenStream(params, in)
}
