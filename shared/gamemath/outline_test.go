package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInEllipse(t *testing.T) {
	c := V(100, 100)
	assert.True(t, InEllipse(V(100, 100), c, 50, 20))
	assert.True(t, InEllipse(V(149, 100), c, 50, 20))
	assert.False(t, InEllipse(V(100, 125), c, 50, 20))
	assert.False(t, InEllipse(V(100, 100), c, 0, 20))
}

func TestWaveOutline(t *testing.T) {
	pts := WaveOutline(nil, V(0, 0), 90, 5, 3, 0, 60, V(1, 1))
	assert.Len(t, pts, 60)
	for i, p := range pts {
		r := p.Len()
		assert.GreaterOrEqual(t, r, 85.0-1e-9, "point %d", i)
		assert.LessOrEqual(t, r, 95.0+1e-9, "point %d", i)
	}
	assert.InDelta(t, 90.0, pts[0].X, 1e-9, "sin(0) adds nothing at angle 0")
}

func TestWaveOutlineFlatWithoutAmplitude(t *testing.T) {
	pts := WaveOutline(nil, V(10, 10), 50, 0, 3, 1.2, 12, V(2, 1))
	for _, p := range pts {
		dx := (p.X - 10) / 100
		dy := (p.Y - 10) / 50
		assert.InDelta(t, 1.0, math.Hypot(dx, dy), 1e-9)
	}
}

func TestOrbitStaysInRange(t *testing.T) {
	for i := 0; i < 5; i++ {
		for phase := 0.0; phase < 2*math.Pi; phase += 0.3 {
			o := Orbit(i, phase, 20, 15)
			assert.LessOrEqual(t, math.Abs(o.X), 20.0)
			assert.LessOrEqual(t, math.Abs(o.Y), 15.0)
		}
	}
}

func TestWrap(t *testing.T) {
	assert.InDelta(t, 1.0, Wrap(5, 4), 1e-12)
	assert.InDelta(t, 3.0, Wrap(-1, 4), 1e-12)
	assert.Equal(t, 0.0, Wrap(3, 0))
}
