package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the hit test space of a scene.
var Space = donburi.NewComponentType[resolv.Space]()

// ProbeData is the 1x1 object moved under the pointer for hit tests.
type ProbeData struct {
	*resolv.Object
}

var Probe = donburi.NewComponentType[ProbeData]()
