package components

import (
	"github.com/automoto/sphereballs/shared/deform"
	"github.com/yohamta/donburi"
)

// HomeOption is one selectable row of the home screen.
type HomeOption struct {
	Archetype deform.Archetype
	Settings  bool // the settings row instead of a ball
}

// HomeData stores the current state of the home screen
type HomeData struct {
	SelectedIndex int
	Options       []HomeOption
}

var Home = donburi.NewComponentType[HomeData]()
