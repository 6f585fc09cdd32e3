package systems

import (
	"math"
	"time"

	"github.com/automoto/sphereballs/components"
	cfg "github.com/automoto/sphereballs/config"
	"github.com/automoto/sphereballs/shared/deform"
	"github.com/automoto/sphereballs/shared/gamemath"
	"github.com/automoto/sphereballs/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FrameTime is the fixed simulation step.
func FrameTime() time.Duration {
	return time.Second / time.Duration(cfg.C.TPS)
}

// UpdateBall advances the deformation, the liquid wave and the hit box.
func UpdateBall(ecs *ecs.ECS) {
	dt := FrameTime()
	size := getPreferences(ecs).BallSize.Diameter()
	screen := gamemath.V(float64(cfg.C.Width), float64(cfg.C.Height))
	components.Ball.Each(ecs.World, func(e *donburi.Entry) {
		ball := components.Ball.Get(e)
		syncLayout(ball, size, screen)
		ball.Controller.Update(dt)
		ball.WavePhase = AdvancePhase(ball.WavePhase, dt, cfg.Ball.WavePeriod)

		syncHitBox(e, ball)
		updateBallState(e, ball.Controller.Phase())
	})
}

// AdvancePhase turns phase by one frame of a full turn per period.
func AdvancePhase(phase float64, dt, period time.Duration) float64 {
	if period <= 0 {
		return phase
	}
	return gamemath.Wrap(phase+2*math.Pi*dt.Seconds()/period.Seconds(), 2*math.Pi)
}

// syncLayout follows the size preference and the screen without touching
// the deformation in progress.
func syncLayout(ball *components.BallData, size float64, screen gamemath.Vec) {
	if size > 0 && ball.Controller.State().Size != size {
		ball.Controller.SetSize(size)
	}
	if rest := screen.Scale(0.5); ball.Rest != rest {
		ball.Rest = rest
		ball.Controller.SetScreen(screen)
	}
}

func syncHitBox(e *donburi.Entry, ball *components.BallData) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	c := ball.Center()
	rx, ry := ball.Radii()
	obj.X, obj.Y = c.X-rx, c.Y-ry
	obj.W, obj.H = math.Max(1, 2*rx), math.Max(1, 2*ry)
	obj.Update()
}

func updateBallState(e *donburi.Entry, phase deform.Phase) {
	if !e.HasComponent(components.State) {
		return
	}
	state := components.State.Get(e)
	if state.CurrentPhase != phase {
		state.PreviousPhase = state.CurrentPhase
		state.CurrentPhase = phase
		state.PhaseTimer = 0
		return
	}
	state.PhaseTimer++
}

// HitBall reports whether p lands on the ball. The resolv grid narrows the
// search, then the drawn ellipse decides.
func HitBall(ecs *ecs.ECS, p gamemath.Vec) bool {
	probeEntry, ok := components.Probe.First(ecs.World)
	if !ok {
		return false
	}
	probe := components.Probe.Get(probeEntry)
	probe.X, probe.Y = p.X, p.Y
	probe.Update()

	check := probe.Check(0, 0, tags.ResolvBall)
	if check == nil {
		return false
	}
	for _, obj := range check.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || !entry.HasComponent(components.Ball) {
			continue
		}
		ball := components.Ball.Get(entry)
		rx, ry := ball.Radii()
		if gamemath.InEllipse(p, ball.Center(), rx, ry) {
			return true
		}
	}
	return false
}

// GetBall returns the ball of the current scene.
func GetBall(ecs *ecs.ECS) (*components.BallData, bool) {
	entry, ok := components.Ball.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Ball.Get(entry), true
}

// IsIdle reports whether the ball is close enough to rest for the guide.
func IsIdle(s deform.State) bool {
	p := cfg.Play
	return math.Abs(s.OffsetX) < p.IdleOffset &&
		math.Abs(s.OffsetY) < p.IdleOffset &&
		math.Abs(s.ScaleX-1) < p.IdleScale
}
