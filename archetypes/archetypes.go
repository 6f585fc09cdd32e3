package archetypes

import (
	"github.com/automoto/sphereballs/components"
	cfg "github.com/automoto/sphereballs/config"
	"github.com/automoto/sphereballs/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ball = newArchetype(
		tags.Ball,
		components.Ball,
		components.Object,
		components.State,
	)
	Probe = newArchetype(
		components.Probe,
	)
	Space = newArchetype(
		components.Space,
	)
	Gesture = newArchetype(
		components.Gesture,
	)
	Preferences = newArchetype(
		components.Preferences,
	)
	AmbientParticle = newArchetype(
		tags.AmbientParticle,
		components.AmbientParticle,
	)
	SettingsMenu = newArchetype(
		components.SettingsMenu,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
