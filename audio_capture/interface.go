package audio_capture

type Interface interface {
	// Run captures audio until stop closes, pushing chunks to the channel
	// returned by Chunks. It closes that channel on exit.
	Run(stop <-chan struct{}) error
	Chunks() <-chan []int16
}
