package systems

import (
	"github.com/automoto/sphereballs/components"
	cfg "github.com/automoto/sphereballs/config"
	"github.com/automoto/sphereballs/shared/gamemath"
	"github.com/automoto/sphereballs/shared/gesture"
	"github.com/yohamta/donburi/ecs"
)

// NewGestureRecognizer builds a recognizer that only starts single pointer
// gestures on the ball of e.
func NewGestureRecognizer(e *ecs.ECS) *gesture.Recognizer {
	return gesture.New(cfg.Gesture, func(p gamemath.Vec) bool {
		return HitBall(e, p)
	})
}

// UpdateGesture turns this frame's pointers and actions into ball events.
// Must run after UpdateInput and before UpdateBall.
func UpdateGesture(ecs *ecs.ECS) {
	entry, ok := components.Gesture.First(ecs.World)
	if !ok {
		return
	}
	g := components.Gesture.Get(entry)
	ball, ok := GetBall(ecs)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)
	ctrl := ball.Controller

	if GetAction(input, cfg.ActionResetBall).JustPressed {
		for _, ev := range g.Recognizer.Reset() {
			ctrl.Handle(ev)
		}
		g.KeyPress = false
		ctrl.Reset()
		return
	}

	g.Events = g.Recognizer.Update(FrameTime(), input.Pointers, input.Wheel)
	for _, ev := range g.Events {
		ctrl.Handle(ev)
	}

	if GetAction(input, cfg.ActionTap).JustPressed {
		ctrl.HandleTap(ball.Center())
	}
	lp := GetAction(input, cfg.ActionLongPress)
	if lp.JustPressed && !g.KeyPress {
		g.KeyPress = true
		ctrl.HandleLongPress(true)
	}
	if lp.JustReleased && g.KeyPress {
		g.KeyPress = false
		ctrl.HandleLongPress(false)
	}
}
