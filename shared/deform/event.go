package deform

import (
	"fmt"

	"github.com/automoto/sphereballs/shared/gamemath"
)

// Event is a discrete gesture delivered to the Controller.
type Event interface {
	fmt.Stringer
	isEvent()
}

// Tap is a short touch at a location.
type Tap struct {
	At gamemath.Vec
}

// PinchChanged reports the live magnification relative to the pinch start.
type PinchChanged struct {
	Scale float64
}

// PinchEnded closes a pinch; Scale is the last magnification seen.
type PinchEnded struct {
	Scale float64
}

// DragChanged reports the live translation from the drag start.
type DragChanged struct {
	Translation gamemath.Vec
}

// DragEnded closes a drag with its final translation.
type DragEnded struct {
	Translation gamemath.Vec
}

// LongPressChanged fires when a long press starts or stops.
type LongPressChanged struct {
	Active bool
}

func (Tap) isEvent()              {}
func (PinchChanged) isEvent()     {}
func (PinchEnded) isEvent()       {}
func (DragChanged) isEvent()      {}
func (DragEnded) isEvent()        {}
func (LongPressChanged) isEvent() {}

func (e Tap) String() string { return fmt.Sprintf("Tap(%.1f,%.1f)", e.At.X, e.At.Y) }
func (e PinchChanged) String() string {
	return fmt.Sprintf("PinchChanged(%.3f)", e.Scale)
}
func (e PinchEnded) String() string { return fmt.Sprintf("PinchEnded(%.3f)", e.Scale) }
func (e DragChanged) String() string {
	return fmt.Sprintf("DragChanged(%.1f,%.1f)", e.Translation.X, e.Translation.Y)
}
func (e DragEnded) String() string {
	return fmt.Sprintf("DragEnded(%.1f,%.1f)", e.Translation.X, e.Translation.Y)
}
func (e LongPressChanged) String() string {
	return fmt.Sprintf("LongPressChanged(%t)", e.Active)
}

// gestureKind groups events by the gesture that produced them.
type gestureKind uint8

const (
	gestureTap gestureKind = 1 << iota
	gesturePinch
	gestureDrag
	gestureLongPress
)

// classify returns the gesture kind and whether the event leaves it held.
func classify(ev Event) (gestureKind, bool) {
	switch e := ev.(type) {
	case Tap:
		return gestureTap, false
	case PinchChanged:
		return gesturePinch, true
	case PinchEnded:
		return gesturePinch, false
	case DragChanged:
		return gestureDrag, true
	case DragEnded:
		return gestureDrag, false
	case LongPressChanged:
		return gestureLongPress, e.Active
	}
	return 0, false
}
