package main

import (
	"fmt"
	"log"

	"interview-copilot/audio_capture"
)

func main() {
	devices, err := audio_capture.ListDevices()
	if err != nil {
		log.Fatalf("error listing devices: %v", err)
	}

	if len(devices) == 0 {
		fmt.Println("no input devices found")

		return
	}

	for _, d := range devices {
		fmt.Printf("[%d] %s (%s) inputs: %d, default rate: %.0f Hz\n",
			d.Index, d.Name, d.HostAPI, d.MaxInputs, d.SampleRate)
	}
}
