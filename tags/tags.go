package tags

import "github.com/yohamta/donburi"

var (
	Ball            = donburi.NewTag().SetName("Ball")
	AmbientParticle = donburi.NewTag().SetName("AmbientParticle")
)

// Resolv tags for pointer hit tests
const (
	ResolvBall    = "ball"
	ResolvPointer = "pointer"
)
