package deform

import (
	"fmt"
	"math"
	"time"

	"github.com/tanema/gween/ease"
)

// CurveKind selects how a channel travels to a new target.
type CurveKind int

const (
	CurveInstant CurveKind = iota
	CurveTween
	CurveSpring
)

// Curve describes the timing of a transition.
type Curve struct {
	Kind     CurveKind
	Name     string
	Duration time.Duration  // tween only
	Ease     ease.TweenFunc // tween only
	Response float64        // spring only, seconds per oscillation
	Damping  float64        // spring only, damping ratio
}

func (c Curve) String() string {
	switch c.Kind {
	case CurveTween:
		return fmt.Sprintf("%s(%s)", c.Name, c.Duration)
	case CurveSpring:
		return fmt.Sprintf("spring(%.2f,%.2f)", c.Response, c.Damping)
	}
	return "instant"
}

// Instant jumps straight to the target.
func Instant() Curve {
	return Curve{Kind: CurveInstant}
}

// EaseOut decelerates into the target.
func EaseOut(seconds float64) Curve {
	return tween("easeOut", seconds, ease.OutQuad)
}

// EaseInOut accelerates then decelerates.
func EaseInOut(seconds float64) Curve {
	return tween("easeInOut", seconds, ease.InOutQuad)
}

// ElasticOut overshoots the target once before settling.
func ElasticOut(seconds float64) Curve {
	return tween("elasticOut", seconds, elasticOut)
}

// Spring drives the value with a damped spring. response is the period of
// the undamped oscillation; damping is the damping ratio (1 = critical).
func Spring(response, damping float64) Curve {
	return Curve{Kind: CurveSpring, Name: "spring", Response: response, Damping: damping}
}

func tween(name string, seconds float64, fn ease.TweenFunc) Curve {
	return Curve{
		Kind:     CurveTween,
		Name:     name,
		Duration: time.Duration(seconds * float64(time.Second)),
		Ease:     fn,
	}
}

// angularFrequency converts a spring response into the frequency harmonica expects.
func (c Curve) angularFrequency() float64 {
	if c.Response <= 0 {
		return 2 * math.Pi
	}
	return 2 * math.Pi / c.Response
}

var elasticOut = CubicBezier(0.34, 1.56, 0.64, 1)

// CubicBezier builds an easing function from CSS-style control points.
func CubicBezier(x1, y1, x2, y2 float64) ease.TweenFunc {
	b := bezier{x1: x1, y1: y1, x2: x2, y2: y2}
	return func(t, begin, change, duration float32) float32 {
		if duration <= 0 {
			return begin + change
		}
		p := float64(t / duration)
		if p <= 0 {
			return begin
		}
		if p >= 1 {
			return begin + change
		}
		return begin + change*float32(b.at(p))
	}
}

type bezier struct {
	x1, y1, x2, y2 float64
}

func component(p1, p2, u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*u*p1 + 3*inv*u*u*p2 + u*u*u
}

func derivative(p1, p2, u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*p1 + 6*inv*u*(p2-p1) + 3*u*u*(1-p2)
}

// at returns y for the given x progress.
func (b bezier) at(x float64) float64 {
	u := x
	for i := 0; i < 8; i++ {
		dx := component(b.x1, b.x2, u) - x
		if math.Abs(dx) < 1e-6 {
			return component(b.y1, b.y2, u)
		}
		d := derivative(b.x1, b.x2, u)
		if math.Abs(d) < 1e-6 {
			break
		}
		u -= dx / d
	}

	// Newton stalled; bisect.
	lo, hi := 0.0, 1.0
	u = x
	for i := 0; i < 32; i++ {
		cx := component(b.x1, b.x2, u)
		if math.Abs(cx-x) < 1e-6 {
			break
		}
		if cx < x {
			lo = u
		} else {
			hi = u
		}
		u = (lo + hi) / 2
	}
	return component(b.y1, b.y2, u)
}
