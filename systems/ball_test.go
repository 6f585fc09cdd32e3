package systems

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/sphereballs/components"
	cfg "github.com/automoto/sphereballs/config"
	"github.com/automoto/sphereballs/shared/deform"
	"github.com/automoto/sphereballs/shared/gamemath"
	"github.com/automoto/sphereballs/shared/gesture"
	"github.com/automoto/sphereballs/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var phone = gamemath.V(390, 844)

func newPlayWorld(t *testing.T, a deform.Archetype) (*ecs.ECS, *components.BallData) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	spaceEntry := factory.CreateSpace(e, int(phone.X), int(phone.Y), 16, 16)
	space := components.Space.Get(spaceEntry)
	factory.CreateProbe(e, space)

	entry, err := factory.CreateBall(e, space, a, components.DefaultPreferences(), phone, nil)
	require.NoError(t, err)

	g := e.World.Entry(e.World.Create(components.Gesture))
	components.Gesture.SetValue(g, components.GestureData{Recognizer: NewGestureRecognizer(e)})

	UpdateBall(e)
	return e, components.Ball.Get(entry)
}

func TestHitBall(t *testing.T) {
	e, ball := newPlayWorld(t, deform.Soft)
	c := ball.Center()
	require.Equal(t, gamemath.V(195, 422), c)

	assert.True(t, HitBall(e, c))
	assert.True(t, HitBall(e, c.Add(gamemath.V(85, 0))))
	assert.False(t, HitBall(e, c.Add(gamemath.V(89, 89))), "corner of the box is outside the ball")
	assert.False(t, HitBall(e, gamemath.V(10, 10)))
}

func TestHitBoxFollowsDeformation(t *testing.T) {
	e, ball := newPlayWorld(t, deform.Soft)
	ball.Controller.HandleDrag(gamemath.V(100, 0), true)
	UpdateBall(e)

	// Soft drag moves the ball by 30% of the translation
	assert.True(t, HitBall(e, gamemath.V(195+30+85, 422)))
	assert.False(t, HitBall(e, gamemath.V(195-85, 422)))
}

func TestBallFollowsSizePreference(t *testing.T) {
	e, ball := newPlayWorld(t, deform.Soft)
	ball.Controller.HandleDrag(gamemath.V(100, 0), true)
	UpdateBall(e)

	p := components.DefaultPreferences()
	p.BallSize = cfg.SizeLarge
	entry := e.World.Entry(e.World.Create(components.Preferences))
	components.Preferences.SetValue(entry, p)
	UpdateBall(e)

	assert.Equal(t, 240.0, ball.Controller.State().Size)
	assert.InDelta(t, 30, ball.Controller.Target().OffsetX, 1e-9, "drag target kept")
	assert.True(t, HitBall(e, gamemath.V(195+30+110, 422)))
}

func frame(e *ecs.ECS, pointers ...gesture.Pointer) {
	input := getOrCreateInput(e)
	input.Pointers = append(input.Pointers[:0], pointers...)
	UpdateGesture(e)
	UpdateBall(e)
}

func TestTapOnBallSqueezesIt(t *testing.T) {
	e, ball := newPlayWorld(t, deform.Soft)
	frame(e, gesture.Pointer{ID: 1, Pos: ball.Center()})
	frame(e)

	assert.InDelta(t, 0.9, ball.Controller.Target().ScaleX, 1e-9)
	assert.Equal(t, 1, ball.Controller.Pending())
}

func TestTouchOffBallIsIgnored(t *testing.T) {
	e, ball := newPlayWorld(t, deform.Soft)
	frame(e, gesture.Pointer{ID: 1, Pos: gamemath.V(20, 800)})
	frame(e, gesture.Pointer{ID: 1, Pos: gamemath.V(120, 800)})
	frame(e)

	assert.Equal(t, deform.PhaseAtRest, ball.Controller.Phase())
	assert.Equal(t, deform.Identity().ScaleX, ball.Controller.Target().ScaleX)
}

func TestBallStateTracksPhase(t *testing.T) {
	e, ball := newPlayWorld(t, deform.Soft)
	entry, _ := components.Ball.First(e.World)
	state := components.State.Get(entry)

	ball.Controller.HandleLongPress(true)
	UpdateBall(e)
	assert.Equal(t, deform.PhaseActive, state.CurrentPhase)
	assert.Equal(t, deform.PhaseAtRest, state.PreviousPhase)
	assert.Zero(t, state.PhaseTimer)

	UpdateBall(e)
	assert.Equal(t, 1, state.PhaseTimer)
}

func TestAdvancePhase(t *testing.T) {
	p := AdvancePhase(0, time.Second, 4*time.Second)
	assert.InDelta(t, math.Pi/2, p, 1e-9)

	p = AdvancePhase(3*math.Pi/2, 2*time.Second, 4*time.Second)
	assert.InDelta(t, math.Pi/2, p, 1e-9, "wraps past a full turn")

	assert.Equal(t, 1.0, AdvancePhase(1, time.Second, 0))
}

func TestIsIdle(t *testing.T) {
	s := deform.Identity()
	assert.True(t, IsIdle(s))

	s.OffsetY = -6
	assert.False(t, IsIdle(s))

	s = deform.Identity()
	s.ScaleX = 1.15
	assert.False(t, IsIdle(s))

	s.ScaleX = 1.05
	s.ScaleY = 0.5 // only the horizontal scale counts
	assert.True(t, IsIdle(s))
}

func TestGuideLines(t *testing.T) {
	tests := []struct {
		a           deform.Archetype
		pinch, drag string
	}{
		{deform.Soft, "Pinch to compress", "Drag to move"},
		{deform.Elastic, "Pinch to stretch", "Drag to stretch"},
		{deform.Bouncy, "Pinch to compress", "Drag to launch"},
		{deform.Liquid, "Pinch to deform", "Drag to flow"},
	}
	for _, tt := range tests {
		t.Run(tt.a.String(), func(t *testing.T) {
			lines := GuideLines(tt.a)
			require.Len(t, lines, 4)
			assert.Equal(t, "Tap for ripple effect", lines[0])
			assert.Equal(t, tt.pinch, lines[1])
			assert.Equal(t, tt.drag, lines[2])
			assert.Equal(t, "Long press for deep interaction", lines[3])
		})
	}
}
