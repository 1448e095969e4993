// Package pointer turns 2D pointer events into ring drags on the puzzle stage
package pointer

// Button identifies the pointer button of a press
type Button uint8

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "Primary"
	case ButtonSecondary:
		return "Secondary"
	case ButtonMiddle:
		return "Middle"
	default:
		return "None"
	}
}

// Event is a pointer event in screen cell coordinates
type Event struct {
	X, Y   int
	Button Button
}
