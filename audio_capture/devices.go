package audio_capture

import "github.com/gordonklaus/portaudio"

// Device describes one capture-capable endpoint for the device listing tool.
type Device struct {
	Index      int
	Name       string
	HostAPI    string
	MaxInputs  int
	SampleRate float64
}

// ListDevices enumerates the input devices portaudio can see. It owns the
// portaudio init/terminate pair, so callers must not hold a capture stream.
func ListDevices() ([]Device, error) {
	err := portaudio.Initialize()
	if err != nil {
		return nil, err
	}

	defer portaudio.Terminate()

	infos, err := portaudio.Devices()
	if err != nil {
		return nil, err
	}

	var devices []Device

	for i, info := range infos {
		if info.MaxInputChannels == 0 {
			continue
		}

		hostAPI := ""
		if info.HostApi != nil {
			hostAPI = info.HostApi.Name
		}

		devices = append(devices, Device{
			Index:      i,
			Name:       info.Name,
			HostAPI:    hostAPI,
			MaxInputs:  info.MaxInputChannels,
			SampleRate: info.DefaultSampleRate,
		})
	}

	return devices, nil
}
