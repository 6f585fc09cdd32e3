package factory

import (
	"github.com/automoto/sphereballs/archetypes"
	"github.com/automoto/sphereballs/components"
	"github.com/automoto/sphereballs/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateProbe adds the 1x1 pointer object used for hit tests.
func CreateProbe(ecs *ecs.ECS, space *resolv.Space) *donburi.Entry {
	probe := archetypes.Probe.Spawn(ecs)
	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvPointer)
	obj.Data = probe
	space.Add(obj)
	components.Probe.SetValue(probe, components.ProbeData{Object: obj})
	return probe
}
