package systems

import (
	"strings"

	"github.com/automoto/sphereballs/components"
	cfg "github.com/automoto/sphereballs/config"
	"github.com/automoto/sphereballs/shared/gamemath"
	"github.com/automoto/sphereballs/shared/gesture"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the Input component.
// Must run before any system that reads actions or pointers.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	analogLeft, analogRight, analogUp, analogDown, analogGpID := getAnalogStickState(gamepadIDs)

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	if analogLeft {
		input.Current[cfg.ActionMenuLeft] = true
	}
	if analogRight {
		input.Current[cfg.ActionMenuRight] = true
	}
	if analogUp {
		input.Current[cfg.ActionMenuUp] = true
	}
	if analogDown {
		input.Current[cfg.ActionMenuDown] = true
	}
	if analogLeft || analogRight || analogUp || analogDown {
		gamepadUsed = true
		activeGamepadID = analogGpID
	}

	touchUsed := pollPointers(input)

	// Gamepad takes priority, then touch, then keyboard
	switch {
	case gamepadUsed:
		input.LastInputMethod = getControllerType(activeGamepadID)
	case touchUsed:
		input.LastInputMethod = components.InputTouch
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

// pollPointers samples touches, the mouse and the wheel. It reports whether
// any touch was seen this frame.
func pollPointers(input *components.InputData) bool {
	input.Pointers = input.Pointers[:0]
	input.Clicked, input.Pressed = false, false

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		input.Pointers = append(input.Pointers, gesture.Pointer{ID: int(id), Pos: gamemath.V(float64(x), float64(y))})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		input.Pressed = true
		input.PressPos = gamemath.V(float64(x), float64(y))
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		input.Clicked = true
		input.ClickPos = gamemath.V(float64(x), float64(y))
	}
	touchUsed := len(touchIDs) > 0 || input.Clicked

	mx, my := ebiten.CursorPosition()
	mouse := gamemath.V(float64(mx), float64(my))
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		input.Pointers = append(input.Pointers, gesture.Pointer{ID: cfg.Input.MousePointerID, Pos: mouse})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		input.Pressed = true
		input.PressPos = mouse
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		input.Clicked = true
		input.ClickPos = mouse
	}

	_, input.Wheel = ebiten.Wheel()
	return touchUsed
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			left = true
			activeGpID = gpID
		}
		if horizontal > deadzone {
			right = true
			activeGpID = gpID
		}
		if vertical < -deadzone {
			up = true
			activeGpID = gpID
		}
		if vertical > deadzone {
			down = true
			activeGpID = gpID
		}
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// PointerIn reports whether p lies inside the rectangle.
func PointerIn(p gamemath.Vec, x, y, w, h float64) bool {
	return p.X >= x && p.X < x+w && p.Y >= y && p.Y < y+h
}

// ClickedIn reports a click that both started and ended inside the rectangle.
func ClickedIn(input *components.InputData, x, y, w, h float64) bool {
	return input.Clicked && PointerIn(input.PressPos, x, y, w, h) && PointerIn(input.ClickPos, x, y, w, h)
}
