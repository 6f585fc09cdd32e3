package systems

import (
	"image/color"
	"testing"

	cfg "github.com/automoto/sphereballs/config"
	"github.com/automoto/sphereballs/shared/deform"
	"github.com/automoto/sphereballs/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func TestGradientStops(t *testing.T) {
	base := color.RGBA{R: 200, G: 100, B: 0, A: 255}

	soft := GradientStops(deform.Soft, base)
	assert.Equal(t, cfg.WithAlpha(base, 0.8), soft[0])
	assert.Equal(t, cfg.WithAlpha(base, 0.65), soft[1], "two stops get a midpoint")
	assert.Equal(t, cfg.WithAlpha(base, 0.5), soft[2])

	bouncy := GradientStops(deform.Bouncy, base)
	assert.Equal(t, base, bouncy[0])
	assert.Equal(t, cfg.WithAlpha(base, 0.8), bouncy[1])
	assert.Equal(t, base, bouncy[2])
}

func TestBallOutline(t *testing.T) {
	s := deform.Identity()
	c := gamemath.V(100, 100)

	pts := BallOutline(nil, c, s, 0, 0)
	require.Len(t, pts, cfg.Ball.WavePoints)
	for _, p := range pts {
		assert.InDelta(t, 90, p.Dist(c), 1e-9)
	}

	s.ScaleX, s.ScaleY = 1.5, 0.5
	pts = BallOutline(pts[:0], c, s, 0, 0)
	assert.InDelta(t, 100+135, pts[0].X, 1e-9, "first vertex sits on the +x axis")

	s.Rotation = 90
	pts = BallOutline(pts[:0], c, s, 0, 0)
	assert.InDelta(t, 100, pts[0].X, 1e-9)
	assert.InDelta(t, 100+135, pts[0].Y, 1e-9)
}

func TestPulseFor(t *testing.T) {
	assert.Equal(t, cfg.Haptics.Light, PulseFor(deform.Light))
	assert.Equal(t, cfg.Haptics.Medium, PulseFor(deform.Medium))
	assert.Equal(t, cfg.Haptics.Heavy, PulseFor(deform.Heavy))
	assert.Less(t, PulseFor(deform.Light).Magnitude, PulseFor(deform.Heavy).Magnitude)
}

func TestWrapText(t *testing.T) {
	face := basicfont.Face7x13

	assert.Equal(t, []string{"aaa bbb", "ccc"}, WrapText(face, "aaa bbb ccc", 50))
	assert.Equal(t, []string{"ab", "abcdefghijkl", "cd"}, WrapText(face, "ab abcdefghijkl cd", 50))
	assert.Empty(t, WrapText(face, "   ", 50))
}

func TestClickedIn(t *testing.T) {
	e, _ := newPlayWorld(t, deform.Soft)
	input := getOrCreateInput(e)

	input.Clicked = true
	input.PressPos = gamemath.V(15, 15)
	input.ClickPos = gamemath.V(20, 20)
	assert.True(t, ClickedIn(input, 10, 10, 20, 20))

	input.PressPos = gamemath.V(200, 400)
	assert.False(t, ClickedIn(input, 10, 10, 20, 20), "press started elsewhere")

	input.Clicked = false
	input.PressPos = gamemath.V(15, 15)
	assert.False(t, ClickedIn(input, 10, 10, 20, 20))
}
