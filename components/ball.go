package components

import (
	"image/color"

	"github.com/automoto/sphereballs/shared/deform"
	"github.com/automoto/sphereballs/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BallData is the interactive ball of a play scene.
type BallData struct {
	Controller *deform.Controller
	Archetype  deform.Archetype
	Color      color.RGBA
	Rest       gamemath.Vec // screen position of the ball at rest
	WavePhase  float64      // radians, drives the liquid outline and flow particles
}

var Ball = donburi.NewComponentType[BallData]()

// Center is where the ball is drawn this frame.
func (b *BallData) Center() gamemath.Vec {
	s := b.Controller.State()
	return b.Rest.Add(gamemath.V(s.OffsetX, s.OffsetY))
}

// Radii are the horizontal and vertical half-extents including scale.
func (b *BallData) Radii() (float64, float64) {
	s := b.Controller.State()
	r := s.Radius()
	return r * s.ScaleX, r * s.ScaleY
}
