package components

import (
	"github.com/automoto/sphereballs/shared/deform"
	"github.com/yohamta/donburi"
)

// StateData tracks the ball's interaction phase across frames.
type StateData struct {
	CurrentPhase  deform.Phase
	PreviousPhase deform.Phase
	PhaseTimer    int // frames spent in the current phase
}

var State = donburi.NewComponentType[StateData]()
