package deform

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
)

// settleEpsilon is how close a spring must be (in value and velocity) before
// it snaps onto its target.
const settleEpsilon = 1e-3

// channel eases a single scalar toward its target.
type channel struct {
	value    float64
	target   float64
	velocity float64
	curve    Curve
	tween    *gween.Tween
	spring   harmonica.Spring
	springDt float64
}

func (c *channel) jump(v float64) {
	c.value = v
	c.target = v
	c.velocity = 0
	c.tween = nil
	c.curve = Instant()
}

// retarget starts a transition from the current value. Springs keep their
// velocity so a retargeted spring does not stall.
func (c *channel) retarget(target float64, curve Curve) {
	c.target = target
	c.curve = curve
	c.tween = nil

	switch curve.Kind {
	case CurveTween:
		c.velocity = 0
		if curve.Duration <= 0 || curve.Ease == nil {
			c.value = target
			return
		}
		c.tween = gween.New(float32(c.value), float32(target), float32(curve.Duration.Seconds()), curve.Ease)
	case CurveSpring:
		c.springDt = 0
	default:
		c.value = target
		c.velocity = 0
	}
}

func (c *channel) advance(dt time.Duration) {
	if c.settled() || dt <= 0 {
		return
	}

	switch c.curve.Kind {
	case CurveTween:
		if c.tween == nil {
			c.value = c.target
			return
		}
		v, done := c.tween.Update(float32(dt.Seconds()))
		c.value = float64(v)
		if done {
			c.value = c.target
			c.tween = nil
		}
	case CurveSpring:
		secs := dt.Seconds()
		if secs != c.springDt {
			c.spring = harmonica.NewSpring(secs, c.curve.angularFrequency(), c.curve.Damping)
			c.springDt = secs
		}
		c.value, c.velocity = c.spring.Update(c.value, c.velocity, c.target)
		if math.Abs(c.value-c.target) < settleEpsilon && math.Abs(c.velocity) < settleEpsilon {
			c.value = c.target
			c.velocity = 0
		}
	default:
		c.value = c.target
		c.velocity = 0
	}
}

func (c *channel) settled() bool {
	return c.tween == nil && c.velocity == 0 && c.value == c.target
}

// Animator interpolates every field of a State between successive targets.
// The presentation layer calls Advance once per frame and reads Current.
type Animator struct {
	size     float64
	channels [FieldCount]channel
}

// NewAnimator starts at rest on s.
func NewAnimator(s State) *Animator {
	a := &Animator{}
	a.Reset(s)
	return a
}

// Reset places every channel on s without animating.
func (a *Animator) Reset(s State) {
	a.size = s.Size
	for f := Field(0); f < FieldCount; f++ {
		a.channels[f].jump(s.field(f))
	}
}

// SetSize changes the display diameter immediately.
func (a *Animator) SetSize(size float64) {
	a.size = size
}

// Apply starts a transition for every field the target writes.
func (a *Animator) Apply(t Target, c Curve) {
	for f := Field(0); f < FieldCount; f++ {
		if v, ok := t.Get(f); ok {
			a.channels[f].retarget(v, c)
		}
	}
}

// Advance moves every channel forward by dt.
func (a *Animator) Advance(dt time.Duration) {
	for f := range a.channels {
		a.channels[f].advance(dt)
	}
}

// Current is the interpolated state for this frame.
func (a *Animator) Current() State {
	s := State{Size: a.size}
	for f := Field(0); f < FieldCount; f++ {
		s.setField(f, a.channels[f].value)
	}
	return s
}

// Target is the state the animator is heading toward.
func (a *Animator) Target() State {
	s := State{Size: a.size}
	for f := Field(0); f < FieldCount; f++ {
		s.setField(f, a.channels[f].target)
	}
	return s
}

// Settled reports whether every channel has reached its target.
func (a *Animator) Settled() bool {
	for f := range a.channels {
		if !a.channels[f].settled() {
			return false
		}
	}
	return true
}

// curveOf returns the curve currently driving f.
func (a *Animator) curveOf(f Field) Curve {
	return a.channels[f].curve
}
