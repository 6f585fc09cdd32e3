package components

import "github.com/yohamta/donburi"

// OnboardingData tracks the walkthrough page.
type OnboardingData struct {
	Page  int
	Pages int
	Done  bool
}

var Onboarding = donburi.NewComponentType[OnboardingData]()

// NextPage advances, stopping at the last page.
func (o *OnboardingData) NextPage() {
	if o.Page < o.Pages-1 {
		o.Page++
	}
}

// PreviousPage goes back, stopping at the first page.
func (o *OnboardingData) PreviousPage() {
	if o.Page > 0 {
		o.Page--
	}
}

// LastPage reports whether the final card is showing.
func (o *OnboardingData) LastPage() bool {
	return o.Page >= o.Pages-1
}
