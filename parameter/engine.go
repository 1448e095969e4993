package parameter

import "time"

// Game Loop Timing
const (
	// FrameRateDefault is the default render and animation rate
	FrameRateDefault = 60

	// FrameRateMin and FrameRateMax bound configured frame rates
	FrameRateMin = 10
	FrameRateMax = 120

	// AnimationFramesDefault is the duration of one placement transition in frames
	AnimationFramesDefault = 12

	// AnimationFramesMax bounds configured transition length
	AnimationFramesMax = 240

	// EventChannelSize is the buffered capacity of the terminal event channel
	EventChannelSize = 256
)

// FrameInterval returns the frame period for the given rate
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = FrameRateDefault
	}
	return time.Second / time.Duration(fps)
}
