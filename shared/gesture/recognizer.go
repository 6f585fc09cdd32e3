// Package gesture turns raw pointer samples into deform events. It plays the
// role of the platform gesture recognizers: the presentation layer feeds it
// one sample per frame and forwards whatever events come out to the
// controller. Like the rest of shared/, it never imports ebiten.
package gesture

import (
	"math"
	"time"

	"github.com/automoto/sphereballs/shared/deform"
	"github.com/automoto/sphereballs/shared/gamemath"
)

// Pointer is one touch (or the mouse) in a frame sample.
type Pointer struct {
	ID  int
	Pos gamemath.Vec
}

// HitTest reports whether a gesture may start at p. A nil HitTest accepts
// every point.
type HitTest func(p gamemath.Vec) bool

// Config holds the recognizer thresholds.
type Config struct {
	TapMaxDuration    time.Duration
	TapSlop           float64 // max travel for a tap
	DragThreshold     float64 // travel before a drag starts
	LongPressDuration time.Duration
	LongPressSlop     float64 // max travel while a long press holds
	WheelStep         float64 // pinch scale per wheel notch
	WheelIdle         time.Duration
	MinPinchScale     float64
}

// DefaultConfig returns the thresholds the toy ships with.
func DefaultConfig() Config {
	return Config{
		TapMaxDuration:    300 * time.Millisecond,
		TapSlop:           10,
		DragThreshold:     10,
		LongPressDuration: 500 * time.Millisecond,
		LongPressSlop:     50,
		WheelStep:         0.1,
		WheelIdle:         250 * time.Millisecond,
		MinPinchScale:     0.05,
	}
}

type track struct {
	id        int
	start     gamemath.Vec
	last      gamemath.Vec
	held      time.Duration
	dragging  bool
	pressing  bool // long press currently active
	pressDone bool // long press already ended for this touch
}

func (t *track) travel() float64 {
	return t.start.Dist(t.last)
}

type pinch struct {
	ids       [2]int
	startDist float64
	scale     float64
}

// Recognizer classifies pointer samples. It keeps state between frames and
// is not safe for concurrent use.
type Recognizer struct {
	cfg Config
	hit HitTest

	track   *track
	pinch   *pinch
	ignored map[int]bool

	wheelActive bool
	wheelScale  float64
	wheelIdle   time.Duration

	events []deform.Event
}

// New creates a recognizer.
func New(cfg Config, hit HitTest) *Recognizer {
	return &Recognizer{
		cfg:     cfg,
		hit:     hit,
		ignored: make(map[int]bool),
	}
}

// Active reports whether any gesture is currently held.
func (r *Recognizer) Active() bool {
	return r.pinch != nil || r.wheelActive ||
		(r.track != nil && (r.track.dragging || r.track.pressing))
}

// Update consumes one frame: dt since the last frame, the pointers currently
// down and the vertical wheel delta. The returned slice is reused by the
// next call.
func (r *Recognizer) Update(dt time.Duration, pointers []Pointer, wheel float64) []deform.Event {
	r.events = r.events[:0]

	r.updateWheel(dt, wheel)
	r.forgetReleased(pointers)

	switch {
	case r.pinch != nil:
		r.updatePinch(pointers)
	case len(pointers) >= 2:
		r.startPinch(pointers)
	case r.track != nil:
		if p, ok := find(pointers, r.track.id); ok {
			r.moveTrack(dt, p.Pos)
		} else {
			r.releaseTrack()
		}
	}

	if r.pinch == nil && r.track == nil && len(pointers) == 1 {
		r.startTrack(pointers[0])
	}
	return r.events
}

// Reset ends every held gesture and forgets all pointers.
func (r *Recognizer) Reset() []deform.Event {
	r.events = r.events[:0]
	r.cancelTrack()
	if r.pinch != nil {
		r.emit(deform.PinchEnded{Scale: r.pinch.scale})
		r.pinch = nil
	}
	if r.wheelActive {
		r.emit(deform.PinchEnded{Scale: r.wheelScale})
		r.wheelActive = false
	}
	clear(r.ignored)
	return r.events
}

func (r *Recognizer) emit(ev deform.Event) {
	r.events = append(r.events, ev)
}

func (r *Recognizer) accepts(p gamemath.Vec) bool {
	return r.hit == nil || r.hit(p)
}

func (r *Recognizer) updateWheel(dt time.Duration, wheel float64) {
	// A touch pinch owns the scale until it ends.
	if r.pinch != nil {
		return
	}
	if wheel != 0 {
		if !r.wheelActive {
			r.wheelActive = true
			r.wheelScale = 1
		}
		r.wheelScale = math.Max(r.cfg.MinPinchScale, r.wheelScale+wheel*r.cfg.WheelStep)
		r.wheelIdle = 0
		r.emit(deform.PinchChanged{Scale: r.wheelScale})
		return
	}
	if !r.wheelActive {
		return
	}
	r.wheelIdle += dt
	if r.wheelIdle >= r.cfg.WheelIdle {
		r.wheelActive = false
		r.emit(deform.PinchEnded{Scale: r.wheelScale})
	}
}

func (r *Recognizer) forgetReleased(pointers []Pointer) {
	for id := range r.ignored {
		if _, ok := find(pointers, id); !ok {
			delete(r.ignored, id)
		}
	}
}

func (r *Recognizer) startTrack(p Pointer) {
	if r.ignored[p.ID] {
		return
	}
	if !r.accepts(p.Pos) {
		r.ignored[p.ID] = true
		return
	}
	r.track = &track{id: p.ID, start: p.Pos, last: p.Pos}
}

func (r *Recognizer) moveTrack(dt time.Duration, pos gamemath.Vec) {
	t := r.track
	t.held += dt
	t.last = pos
	travel := t.travel()

	if !t.dragging && travel >= r.cfg.DragThreshold {
		t.dragging = true
	}
	if t.dragging {
		r.emit(deform.DragChanged{Translation: t.last.Sub(t.start)})
	}

	switch {
	case t.pressing && travel > r.cfg.LongPressSlop:
		t.pressing = false
		t.pressDone = true
		r.emit(deform.LongPressChanged{Active: false})
	case !t.pressing && !t.pressDone && t.held >= r.cfg.LongPressDuration && travel < r.cfg.LongPressSlop:
		t.pressing = true
		r.emit(deform.LongPressChanged{Active: true})
	}
}

func (r *Recognizer) releaseTrack() {
	t := r.track
	r.track = nil

	if t.dragging {
		r.emit(deform.DragEnded{Translation: t.last.Sub(t.start)})
	}
	if t.pressing {
		r.emit(deform.LongPressChanged{Active: false})
	}
	if !t.dragging && !t.pressing && !t.pressDone &&
		t.held < r.cfg.TapMaxDuration && t.travel() < r.cfg.TapSlop {
		r.emit(deform.Tap{At: t.last})
	}
}

// cancelTrack ends a single-pointer gesture without producing a tap.
func (r *Recognizer) cancelTrack() {
	t := r.track
	if t == nil {
		return
	}
	r.track = nil
	if t.dragging {
		r.emit(deform.DragEnded{Translation: t.last.Sub(t.start)})
	}
	if t.pressing {
		r.emit(deform.LongPressChanged{Active: false})
	}
	r.ignored[t.id] = true
}

func (r *Recognizer) startPinch(pointers []Pointer) {
	r.cancelTrack()
	if r.wheelActive {
		r.wheelActive = false
		r.emit(deform.PinchEnded{Scale: r.wheelScale})
	}
	a, b := pointers[0], pointers[1]
	dist := a.Pos.Dist(b.Pos)
	if dist < 1 {
		dist = 1
	}
	r.pinch = &pinch{ids: [2]int{a.ID, b.ID}, startDist: dist, scale: 1}
	r.emit(deform.PinchChanged{Scale: 1})
}

func (r *Recognizer) updatePinch(pointers []Pointer) {
	pc := r.pinch
	a, okA := find(pointers, pc.ids[0])
	b, okB := find(pointers, pc.ids[1])
	if !okA || !okB {
		r.emit(deform.PinchEnded{Scale: pc.scale})
		r.pinch = nil
		for _, p := range pointers {
			r.ignored[p.ID] = true
		}
		return
	}

	scale := math.Max(r.cfg.MinPinchScale, a.Pos.Dist(b.Pos)/pc.startDist)
	if scale != pc.scale {
		pc.scale = scale
		r.emit(deform.PinchChanged{Scale: scale})
	}
}

func find(pointers []Pointer, id int) (Pointer, bool) {
	for _, p := range pointers {
		if p.ID == id {
			return p, true
		}
	}
	return Pointer{}, false
}
