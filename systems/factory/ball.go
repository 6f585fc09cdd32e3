package factory

import (
	"fmt"

	"github.com/automoto/sphereballs/archetypes"
	"github.com/automoto/sphereballs/components"
	"github.com/automoto/sphereballs/logging"
	"github.com/automoto/sphereballs/shared/deform"
	"github.com/automoto/sphereballs/shared/gamemath"
	"github.com/automoto/sphereballs/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBall spawns the interactive ball at the center of the screen and
// registers its hit box in space.
func CreateBall(ecs *ecs.ECS, space *resolv.Space, a deform.Archetype, prefs components.PreferencesData, screen gamemath.Vec, haptics deform.Haptics) (*donburi.Entry, error) {
	size := prefs.BallSize.Diameter()
	ctrl, err := deform.NewController(a,
		deform.WithHaptics(haptics),
		deform.WithLogger(logging.Named("ball")),
		deform.WithScreen(screen),
		deform.WithSize(size),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s controller: %w", a, err)
	}

	ball := archetypes.Ball.Spawn(ecs)
	rest := screen.Scale(0.5)
	components.Ball.SetValue(ball, components.BallData{
		Controller: ctrl,
		Archetype:  a,
		Color:      prefs.BallColor.RGBA(),
		Rest:       rest,
	})

	obj := resolv.NewObject(rest.X-size/2, rest.Y-size/2, size, size, tags.ResolvBall)
	obj.Data = ball
	space.Add(obj)
	components.Object.SetValue(ball, components.ObjectData{Object: obj})
	components.State.SetValue(ball, components.StateData{})

	return ball, nil
}
