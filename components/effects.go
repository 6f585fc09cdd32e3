package components

import (
	"github.com/automoto/sphereballs/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// AmbientParticleData is a soft glow drifting behind the ball.
type AmbientParticleData struct {
	Base   gamemath.Vec // rest position
	Radius float64
	Delay  float64 // seconds before the drift starts
	DriftX *gween.Sequence
	DriftY *gween.Sequence
	Offset gamemath.Vec // current drift
}

var AmbientParticle = donburi.NewComponentType[AmbientParticleData]()

// PulseData animates a button or card scale after it is pressed.
type PulseData struct {
	Tween *gween.Tween
	Scale float64
}

var Pulse = donburi.NewComponentType[PulseData]()
