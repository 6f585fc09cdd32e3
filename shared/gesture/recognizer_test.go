package gesture

import (
	"testing"
	"time"

	"github.com/automoto/sphereballs/shared/deform"
	"github.com/automoto/sphereballs/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = time.Second / 60

// feed runs one frame per sample and collects every event.
func feed(r *Recognizer, samples ...[]Pointer) []deform.Event {
	var out []deform.Event
	for _, s := range samples {
		out = append(out, r.Update(frame, s, 0)...)
	}
	return out
}

func hold(p []Pointer, frames int) [][]Pointer {
	out := make([][]Pointer, frames)
	for i := range out {
		out[i] = p
	}
	return out
}

func touch(id int, x, y float64) Pointer {
	return Pointer{ID: id, Pos: gamemath.V(x, y)}
}

func TestTap(t *testing.T) {
	r := New(DefaultConfig(), nil)
	p := []Pointer{touch(1, 100, 100)}
	events := feed(r, p, p, []Pointer{touch(1, 103, 101)}, nil)

	require.Len(t, events, 1)
	assert.Equal(t, deform.Tap{At: gamemath.V(103, 101)}, events[0])
}

func TestSlowTouchIsNotATap(t *testing.T) {
	r := New(DefaultConfig(), nil)
	p := []Pointer{touch(1, 0, 0)}
	events := feed(r, append(hold(p, 25), nil)...)
	assert.Empty(t, events)
}

func TestDrag(t *testing.T) {
	r := New(DefaultConfig(), nil)
	events := feed(r,
		[]Pointer{touch(1, 0, 0)},
		[]Pointer{touch(1, 5, 0)},
		[]Pointer{touch(1, 20, 0)},
		[]Pointer{touch(1, 30, -10)},
		nil,
	)

	assert.Equal(t, []deform.Event{
		deform.DragChanged{Translation: gamemath.V(20, 0)},
		deform.DragChanged{Translation: gamemath.V(30, -10)},
		deform.DragEnded{Translation: gamemath.V(30, -10)},
	}, events)
	assert.False(t, r.Active())
}

func TestLongPress(t *testing.T) {
	r := New(DefaultConfig(), nil)
	p := []Pointer{touch(1, 50, 50)}

	events := feed(r, hold(p, 40)...)
	assert.Equal(t, []deform.Event{deform.LongPressChanged{Active: true}}, events)
	assert.True(t, r.Active())

	events = feed(r, nil)
	assert.Equal(t, []deform.Event{deform.LongPressChanged{Active: false}}, events)
}

func TestLongPressEndsWhenMovedAway(t *testing.T) {
	r := New(DefaultConfig(), nil)
	p := []Pointer{touch(1, 0, 0)}
	feed(r, hold(p, 40)...)

	events := feed(r, []Pointer{touch(1, 60, 0)})
	assert.Equal(t, []deform.Event{
		deform.DragChanged{Translation: gamemath.V(60, 0)},
		deform.LongPressChanged{Active: false},
	}, events)

	events = feed(r, []Pointer{touch(1, 0, 0)})
	assert.NotContains(t, events, deform.LongPressChanged{Active: true}, "a long press fires once per touch")
}

func TestPinch(t *testing.T) {
	r := New(DefaultConfig(), nil)
	events := feed(r,
		[]Pointer{touch(1, 0, 0), touch(2, 100, 0)},
		[]Pointer{touch(1, 0, 0), touch(2, 150, 0)},
		[]Pointer{touch(1, 0, 0), touch(2, 150, 0)},
		[]Pointer{touch(1, 0, 0)},
		nil,
	)

	assert.Equal(t, []deform.Event{
		deform.PinchChanged{Scale: 1},
		deform.PinchChanged{Scale: 1.5},
		deform.PinchEnded{Scale: 1.5},
	}, events)
}

func TestSecondFingerTurnsDragIntoPinch(t *testing.T) {
	r := New(DefaultConfig(), nil)
	events := feed(r,
		[]Pointer{touch(1, 0, 0)},
		[]Pointer{touch(1, 40, 0)},
		[]Pointer{touch(1, 40, 0), touch(2, 140, 0)},
	)

	assert.Equal(t, []deform.Event{
		deform.DragChanged{Translation: gamemath.V(40, 0)},
		deform.DragEnded{Translation: gamemath.V(40, 0)},
		deform.PinchChanged{Scale: 1},
	}, events)
}

func TestGesturesStartOnlyOnHit(t *testing.T) {
	onBall := func(p gamemath.Vec) bool { return p.Len() < 50 }
	r := New(DefaultConfig(), onBall)

	events := feed(r, []Pointer{touch(1, 200, 200)}, []Pointer{touch(1, 260, 200)}, nil)
	assert.Empty(t, events)

	events = feed(r, []Pointer{touch(1, 10, 10)}, nil)
	assert.Equal(t, []deform.Event{deform.Tap{At: gamemath.V(10, 10)}}, events)

	events = feed(r, []Pointer{touch(1, 200, 0), touch(2, 300, 0)})
	assert.Equal(t, []deform.Event{deform.PinchChanged{Scale: 1}}, events, "pinch starts anywhere")
}

func TestWheelPinch(t *testing.T) {
	r := New(DefaultConfig(), nil)

	events := r.Update(frame, nil, 1)
	require.Len(t, events, 1)
	changed, ok := events[0].(deform.PinchChanged)
	require.True(t, ok)
	assert.InDelta(t, 1.1, changed.Scale, 1e-9)
	assert.True(t, r.Active())

	var all []deform.Event
	for i := 0; i < 20; i++ {
		all = append(all, r.Update(frame, nil, 0)...)
	}
	require.Len(t, all, 1)
	ended, ok := all[0].(deform.PinchEnded)
	require.True(t, ok)
	assert.InDelta(t, 1.1, ended.Scale, 1e-9)
	assert.False(t, r.Active())
}

func TestWheelScaleHasFloor(t *testing.T) {
	r := New(DefaultConfig(), nil)
	events := r.Update(frame, nil, -50)
	require.Len(t, events, 1)
	assert.Equal(t, deform.PinchChanged{Scale: DefaultConfig().MinPinchScale}, events[0])
}

func TestResetEndsHeldGestures(t *testing.T) {
	r := New(DefaultConfig(), nil)
	feed(r, []Pointer{touch(1, 0, 0)}, []Pointer{touch(1, 30, 0)})

	events := r.Reset()
	assert.Equal(t, []deform.Event{deform.DragEnded{Translation: gamemath.V(30, 0)}}, events)
	assert.False(t, r.Active())

	assert.Empty(t, feed(r, nil))
}

func TestWheelIgnoredDuringTouchPinch(t *testing.T) {
	r := New(DefaultConfig(), nil)
	two := []Pointer{touch(1, 100, 100), touch(2, 200, 100)}

	require.Equal(t, []deform.Event{deform.PinchChanged{Scale: 1}}, r.Update(frame, two, 0))
	assert.Empty(t, r.Update(frame, two, 3), "wheel does not drive a second pinch")

	wider := []Pointer{touch(1, 50, 100), touch(2, 250, 100)}
	assert.Equal(t, []deform.Event{deform.PinchChanged{Scale: 2}}, r.Update(frame, wider, 1))

	assert.Equal(t, []deform.Event{deform.PinchEnded{Scale: 2}}, r.Update(frame, nil, 0))
	assert.False(t, r.Active())
}

func TestTouchPinchTakesOverWheel(t *testing.T) {
	r := New(DefaultConfig(), nil)
	r.Update(frame, nil, 1)

	two := []Pointer{touch(1, 100, 100), touch(2, 200, 100)}
	events := r.Update(frame, two, 0)
	require.Len(t, events, 2)
	ended, ok := events[0].(deform.PinchEnded)
	require.True(t, ok)
	assert.InDelta(t, 1.1, ended.Scale, 1e-9)
	assert.Equal(t, deform.PinchChanged{Scale: 1}, events[1])
}
