package components

import (
	cfg "github.com/automoto/sphereballs/config"
	"github.com/automoto/sphereballs/shared/gamemath"
	"github.com/automoto/sphereballs/shared/gesture"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
	InputTouch
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method

	// Touches and the held left mouse button, in screen coordinates.
	Pointers []gesture.Pointer
	Wheel    float64

	// Pointer released this frame (touch or left click), for buttons.
	Clicked  bool
	ClickPos gamemath.Vec
	// Pointer pressed this frame. PressPos keeps the last press.
	Pressed  bool
	PressPos gamemath.Vec
}

var Input = donburi.NewComponentType[InputData]()
