package deform

import (
	"fmt"
	"time"

	"github.com/automoto/sphereballs/shared/gamemath"
)

// Transition moves a set of fields to new values along a curve.
type Transition struct {
	Target Target
	Curve  Curve
}

// FollowUp is a transition that starts after Delay.
type FollowUp struct {
	Delay      time.Duration
	Transition Transition
}

// Response is everything one gesture event asks of the controller.
type Response struct {
	Transitions []Transition
	FollowUps   []FollowUp
	Haptics     []Intensity
	Launch      *gamemath.Vec // launch velocity, Bouncy only
}

// Mask is the union of fields the immediate transitions write.
func (r Response) Mask() Mask {
	var m Mask
	for _, t := range r.Transitions {
		m |= t.Target.Mask()
	}
	return m
}

func (r *Response) move(t Target, c Curve) {
	r.Transitions = append(r.Transitions, Transition{Target: t, Curve: c})
}

func (r *Response) after(seconds float64, t Target, c Curve) {
	r.FollowUps = append(r.FollowUps, FollowUp{
		Delay:      time.Duration(seconds * float64(time.Second)),
		Transition: Transition{Target: t, Curve: c},
	})
}

func (r *Response) pulse(i Intensity) {
	r.Haptics = append(r.Haptics, i)
}

// Env is the context a responder reads while building a response.
type Env struct {
	State  State        // committed target when the event arrived
	Screen gamemath.Vec // screen width and height
	Rand   func(lo, hi float64) float64
}

func (e Env) uniform(lo, hi float64) float64 {
	if e.Rand == nil {
		return (lo + hi) / 2
	}
	return e.Rand(lo, hi)
}

// Responder is an archetype's response table.
type Responder interface {
	Archetype() Archetype
	Respond(ev Event, env Env) Response
}

// NewResponder returns the response table for a.
func NewResponder(a Archetype) (Responder, error) {
	switch a {
	case Soft:
		return softBall{}, nil
	case Elastic:
		return elasticBall{}, nil
	case Bouncy:
		return bouncyBall{}, nil
	case Liquid:
		return liquidBall{}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownArchetype, int(a))
}

// rest is the identity scale/compression target.
func rest() Target {
	return Target{}.Scale(1, 1).Compression(1)
}

type softBall struct{}

func (softBall) Archetype() Archetype { return Soft }

func (softBall) Respond(ev Event, _ Env) Response {
	var r Response
	switch e := ev.(type) {
	case Tap:
		r.move(Target{}.Scale(0.9, 0.9), EaseOut(0.3))
		r.after(0.3, Target{}.Scale(1, 1), ElasticOut(0.5))
	case PinchChanged:
		r.pulse(Light)
		s := gamemath.Clamp(e.Scale, 0.5, 1.5)
		r.move(Target{}.Scale(s, s).Compression(s), EaseInOut(0.1))
	case PinchEnded:
		r.move(rest(), ElasticOut(0.8))
	case DragChanged:
		r.move(Target{}.Offset(e.Translation.Scale(0.3)), Instant())
	case DragEnded:
		r.move(Target{}.Offset(gamemath.Vec{}), ElasticOut(0.6))
	case LongPressChanged:
		if e.Active {
			r.move(Target{}.Scale(0.7, 0.7).Compression(0.7), EaseInOut(0.5))
		} else {
			r.move(rest(), ElasticOut(1.0))
		}
	}
	return r
}

type elasticBall struct{}

func (elasticBall) Archetype() Archetype { return Elastic }

func (elasticBall) Respond(ev Event, _ Env) Response {
	var r Response
	switch e := ev.(type) {
	case Tap:
		r.move(Target{}.Scale(1.3, 0.8), Spring(0.4, 0.3))
		r.after(0.2, Target{}.Scale(1, 1), Spring(0.6, 0.4))
	case PinchChanged:
		sx := gamemath.Clamp(e.Scale, 0.3, 2.0)
		r.move(Target{}.Scale(sx, 2.0-sx), EaseInOut(0.1))
	case PinchEnded:
		r.move(Target{}.Scale(1, 1), Spring(0.5, 0.3))
	case DragChanged:
		stretch := e.Translation.Len() / 100
		r.move(Target{}.
			Offset(e.Translation.Scale(0.5)).
			Scale(1.0+stretch*0.3, 1.0-stretch*0.2), Instant())
	case DragEnded:
		r.move(Target{}.Offset(gamemath.Vec{}).Scale(1, 1), Spring(0.6, 0.4))
	case LongPressChanged:
		if e.Active {
			r.move(Target{}.Scale(1.5, 0.6), Spring(0.3, 0.5))
		} else {
			r.move(Target{}.Scale(1, 1), Spring(0.8, 0.3))
		}
	}
	return r
}

type liquidBall struct{}

func (liquidBall) Archetype() Archetype { return Liquid }

func (liquidBall) Respond(ev Event, _ Env) Response {
	var r Response
	switch e := ev.(type) {
	case Tap:
		r.move(Target{}.Compression(0.8), EaseInOut(0.4))
		r.after(0.4, Target{}.Compression(1), EaseOut(0.6))
	case PinchChanged:
		sx := gamemath.Clamp(e.Scale, 0.4, 1.8)
		r.move(Target{}.Scale(sx, 2.0-sx).Compression(sx), EaseInOut(0.2))
	case PinchEnded:
		r.move(rest(), EaseOut(1.0))
	case DragChanged:
		flow := e.Translation.Len() / 150
		r.move(Target{}.Offset(e.Translation.Scale(0.4)).Compression(1.0+flow), Instant())
	case DragEnded:
		// The liquid stays where it was dragged; only the flow relaxes.
		r.move(Target{}.Compression(1), EaseOut(0.8))
	case LongPressChanged:
		if e.Active {
			r.move(Target{}.Scale(1.3, 0.7).Compression(0.8), EaseInOut(0.6))
		} else {
			r.move(rest(), EaseOut(1.2))
		}
	}
	return r
}
