package deform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCubicBezierEndpoints(t *testing.T) {
	fn := CubicBezier(0.34, 1.56, 0.64, 1)
	assert.Equal(t, float32(10), fn(0, 10, 5, 1))
	assert.Equal(t, float32(15), fn(1, 10, 5, 1))
	assert.Equal(t, float32(15), fn(2, 10, 5, 1))
	assert.Equal(t, float32(15), fn(0.5, 10, 5, 0))
}

func TestElasticOutOvershoots(t *testing.T) {
	peak := float32(0)
	for i := 1; i < 100; i++ {
		v := elasticOut(float32(i)/100, 0, 1, 1)
		if v > peak {
			peak = v
		}
	}
	assert.Greater(t, peak, float32(1.0))
	assert.Less(t, peak, float32(1.2))
}

func TestLinearBezierIsIdentity(t *testing.T) {
	fn := CubicBezier(1.0/3, 1.0/3, 2.0/3, 2.0/3)
	for _, p := range []float32{0.1, 0.25, 0.5, 0.9} {
		assert.InDelta(t, p, fn(p, 0, 1, 1), 1e-4)
	}
}

func TestCurveConstructors(t *testing.T) {
	assert.Equal(t, CurveInstant, Instant().Kind)

	c := EaseOut(0.3)
	assert.Equal(t, CurveTween, c.Kind)
	assert.Equal(t, 300*time.Millisecond, c.Duration)
	assert.Equal(t, "easeOut(300ms)", c.String())

	s := Spring(0.5, 0.3)
	assert.Equal(t, CurveSpring, s.Kind)
	assert.InDelta(t, 4*3.14159265, s.angularFrequency(), 1e-6)
	assert.Equal(t, "spring(0.50,0.30)", s.String())
}

func TestAnimatorTweenReachesTarget(t *testing.T) {
	a := NewAnimator(Identity())
	a.Apply(Target{}.Scale(2, 0.5), EaseInOut(0.2))
	assert.False(t, a.Settled())
	assert.Equal(t, 2.0, a.Target().ScaleX)

	for i := 0; i < 30; i++ {
		a.Advance(frame)
	}
	assert.True(t, a.Settled())
	assert.Equal(t, 2.0, a.Current().ScaleX)
	assert.Equal(t, 0.5, a.Current().ScaleY)
	assert.Equal(t, 1.0, a.Current().Compression, "unwritten fields stay put")
}

func TestAnimatorSpringOvershoots(t *testing.T) {
	a := NewAnimator(Identity())
	a.Apply(Target{}.With(FieldOffsetX, 100), Spring(0.5, 0.2))

	peak := 0.0
	for i := 0; i < 600; i++ {
		a.Advance(frame)
		if v := a.Current().OffsetX; v > peak {
			peak = v
		}
	}
	assert.Greater(t, peak, 100.0)
	assert.True(t, a.Settled())
	assert.Equal(t, 100.0, a.Current().OffsetX)
}

func TestAnimatorRetargetFromCurrent(t *testing.T) {
	a := NewAnimator(Identity())
	a.Apply(Target{}.Compression(0), EaseOut(1))
	for i := 0; i < 30; i++ {
		a.Advance(frame)
	}
	mid := a.Current().Compression
	assert.Less(t, mid, 1.0)

	a.Apply(Target{}.Compression(1), Instant())
	assert.Equal(t, 1.0, a.Current().Compression)
	assert.True(t, a.Settled())
	assert.Equal(t, "instant", a.curveOf(FieldCompression).String())
}
