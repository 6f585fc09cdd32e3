package deform

import "github.com/automoto/sphereballs/shared/gamemath"

// Bounce trajectory tuning. The trajectory is a scripted two-phase
// transition: out to the bounce target, then back to rest.
const (
	bounceHeight      = -200.0
	bounceWidthFactor = 20.0
	bounceMarginX     = 50.0
	bounceMarginY     = 100.0
	bounceOutSeconds  = 2.0
	bounceReturnDelay = 1.0
)

// BounceLimits returns the largest offset a launched ball may reach on each
// axis: half the screen minus the ball radius and a fixed margin.
func BounceLimits(screen gamemath.Vec, size float64) gamemath.Vec {
	radius := size / 2
	maxX := screen.X/2 - radius - bounceMarginX
	maxY := screen.Y/2 - radius - bounceMarginY
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	return gamemath.Vec{X: maxX, Y: maxY}
}

// BounceTarget is the offset a launch with the given velocity travels to.
func BounceTarget(velocity, screen gamemath.Vec, size float64) gamemath.Vec {
	limits := BounceLimits(screen, size)
	return gamemath.Vec{
		X: gamemath.ClampAbs(velocity.X*bounceWidthFactor, limits.X),
		Y: gamemath.ClampAbs(bounceHeight, limits.Y),
	}
}

type bouncyBall struct{}

func (bouncyBall) Archetype() Archetype { return Bouncy }

func (b bouncyBall) Respond(ev Event, env Env) Response {
	var r Response
	switch e := ev.(type) {
	case Tap:
		r.pulse(Heavy)
		b.launch(&r, env, gamemath.V(env.uniform(-5, 5), -8))
	case PinchChanged:
		s := gamemath.Clamp(e.Scale, 0.6, 1.4)
		r.move(Target{}.Scale(s, s), EaseInOut(0.1))
	case PinchEnded:
		r.move(Target{}.Scale(1, 1), Spring(0.3, 0.6))
		b.launch(&r, env, gamemath.V(env.uniform(-3, 3), -5))
	case DragChanged:
		r.move(Target{}.Offset(e.Translation.Scale(0.8)), Instant())
	case DragEnded:
		b.launch(&r, env, e.Translation.Scale(0.1))
	case LongPressChanged:
		if e.Active {
			r.move(Target{}.Scale(0.8, 0.8), EaseInOut(0.3))
		} else {
			r.move(Target{}.Scale(1, 1), Spring(0.2, 0.4))
			b.launch(&r, env, gamemath.V(0, -12))
		}
	}
	return r
}

func (bouncyBall) launch(r *Response, env Env, velocity gamemath.Vec) {
	v := velocity
	r.Launch = &v
	r.move(Target{}.Offset(BounceTarget(velocity, env.Screen, env.State.Size)), EaseOut(bounceOutSeconds))
	r.pulse(Light)
	r.after(bounceReturnDelay, Target{}.Offset(gamemath.Vec{}), Spring(1.0, 0.6))
}
