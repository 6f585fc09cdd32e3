package systems

import (
	"github.com/automoto/sphereballs/components"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances ambient drift and button pulses.
func UpdateEffects(ecs *ecs.ECS) {
	dt := float32(FrameTime().Seconds())
	updateAmbientParticles(ecs, dt)
	updatePulses(ecs, dt)
}

// updateAmbientParticles loops each glow's drift after its start delay
func updateAmbientParticles(ecs *ecs.ECS, dt float32) {
	components.AmbientParticle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.AmbientParticle.Get(e)
		if p.Delay > 0 {
			p.Delay -= float64(dt)
			return
		}
		p.Offset.X = float64(stepSequence(p.DriftX, dt))
		p.Offset.Y = float64(stepSequence(p.DriftY, dt))
	})
}

func updatePulses(ecs *ecs.ECS, dt float32) {
	components.Pulse.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Pulse.Get(e)
		if p.Tween == nil {
			p.Scale = 1
			return
		}
		v, done := p.Tween.Update(dt)
		p.Scale = float64(v)
		if done {
			p.Tween = nil
			p.Scale = 1
		}
	})
}

// stepSequence advances seq by dt and starts it over once it finishes.
func stepSequence(seq *gween.Sequence, dt float32) float32 {
	if seq == nil {
		return 0
	}
	v, _, done := seq.Update(dt)
	if done {
		seq.Reset()
	}
	return v
}
