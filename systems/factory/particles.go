package factory

import (
	"math/rand/v2"

	"github.com/automoto/sphereballs/archetypes"
	"github.com/automoto/sphereballs/components"
	cfg "github.com/automoto/sphereballs/config"
	"github.com/automoto/sphereballs/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// referenceScreen is the frame the ambient area is expressed in.
var referenceScreen = gamemath.V(390, 844)

// CreateAmbientParticles scatters the background glows. Each one drifts
// back and forth on its own eased sequence.
func CreateAmbientParticles(ecs *ecs.ECS, screen gamemath.Vec, rng *rand.Rand) {
	p := cfg.Play
	sx := screen.X / referenceScreen.X
	sy := screen.Y / referenceScreen.Y

	for i := 0; i < p.AmbientParticles; i++ {
		base := gamemath.V(
			between(rng, p.AmbientAreaMin[0], p.AmbientAreaMax[0])*sx,
			between(rng, p.AmbientAreaMin[1], p.AmbientAreaMax[1])*sy,
		)
		period := float32(between(rng, p.AmbientMinPeriod, p.AmbientMaxPeriod))
		dx := float32(between(rng, -p.AmbientDrift, p.AmbientDrift))
		dy := float32(between(rng, -p.AmbientDrift, p.AmbientDrift))

		e := archetypes.AmbientParticle.Spawn(ecs)
		components.AmbientParticle.SetValue(e, components.AmbientParticleData{
			Base:   base,
			Radius: between(rng, p.AmbientMinSize, p.AmbientMaxSize) / 2,
			Delay:  float64(i) * p.AmbientStagger,
			DriftX: drift(dx, period),
			DriftY: drift(dy, period),
		})
	}
}

func drift(amount, period float32) *gween.Sequence {
	return gween.NewSequence(
		gween.New(0, amount, period/2, ease.InOutQuad),
		gween.New(amount, 0, period/2, ease.InOutQuad),
	)
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}
