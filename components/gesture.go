package components

import (
	"github.com/automoto/sphereballs/shared/deform"
	"github.com/automoto/sphereballs/shared/gesture"
	"github.com/yohamta/donburi"
)

// GestureData holds the recognizer of a play scene.
type GestureData struct {
	Recognizer *gesture.Recognizer

	// Events produced this frame, already forwarded to the ball.
	Events []deform.Event

	// Keyboard/gamepad long press is held.
	KeyPress bool
}

var Gesture = donburi.NewComponentType[GestureData]()
