package deform

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/automoto/sphereballs/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestBounceLimits(t *testing.T) {
	tests := []struct {
		name   string
		screen gamemath.Vec
		size   float64
		want   gamemath.Vec
	}{
		{"phone", gamemath.V(390, 844), 180, gamemath.V(55, 232)},
		{"large ball", gamemath.V(390, 844), 240, gamemath.V(25, 202)},
		{"tiny screen", gamemath.V(100, 100), 180, gamemath.V(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BounceLimits(tt.screen, tt.size))
		})
	}
}

func TestBounceTargetStaysOnScreen(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 500; i++ {
		screen := gamemath.V(r.Float64()*1200, r.Float64()*1200)
		size := 40 + r.Float64()*300
		velocity := gamemath.V((r.Float64()-0.5)*1e6, (r.Float64()-0.5)*1e6)

		limits := BounceLimits(screen, size)
		target := BounceTarget(velocity, screen, size)
		assert.LessOrEqual(t, math.Abs(target.X), limits.X)
		assert.LessOrEqual(t, math.Abs(target.Y), limits.Y)
		assert.GreaterOrEqual(t, limits.X, 0.0)
		assert.GreaterOrEqual(t, limits.Y, 0.0)
	}
}

func TestBouncyLaunchSchedulesReturn(t *testing.T) {
	env := Env{State: Identity(), Screen: DefaultScreen}
	resp := bouncyBall{}.Respond(LongPressChanged{Active: false}, env)

	if assert.NotNil(t, resp.Launch) {
		assert.Equal(t, gamemath.V(0, -12), *resp.Launch)
	}
	if assert.Len(t, resp.FollowUps, 1) {
		fu := resp.FollowUps[0]
		assert.Equal(t, "spring(1.00,0.60)", fu.Transition.Curve.String())
		ox, ok := fu.Transition.Target.Get(FieldOffsetX)
		assert.True(t, ok)
		assert.Equal(t, 0.0, ox)
	}
	assert.Equal(t, []Intensity{Light}, resp.Haptics)
}

func TestEnvUniformWithoutRand(t *testing.T) {
	assert.Equal(t, 0.0, Env{}.uniform(-5, 5))
}
