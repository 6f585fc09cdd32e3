package scenes

import (
	"sync"

	cfg "github.com/automoto/sphereballs/config"
	"github.com/automoto/sphereballs/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OnboardingScene shows the first-launch walkthrough
type OnboardingScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewOnboardingScene(sc SceneChanger) *OnboardingScene {
	return &OnboardingScene{sceneChanger: sc}
}

func (obs *OnboardingScene) Update() {
	obs.once.Do(obs.configure)
	obs.ecs.Update()
}

func (obs *OnboardingScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.ThemeFor(systems.Preferences().DarkMode).Background)

	if obs.ecs == nil {
		return
	}
	obs.ecs.Draw(screen)
}

func (obs *OnboardingScene) configure() {
	obs.ecs = ecs.NewECS(donburi.NewWorld())

	createHomeScene := func() interface{} {
		return NewHomeScene(obs.sceneChanger)
	}

	obs.ecs.AddSystem(systems.UpdateInput)
	obs.ecs.AddSystem(systems.UpdateEffects)
	obs.ecs.AddSystem(systems.NewUpdateOnboarding(obs.sceneChanger, createHomeScene))

	obs.ecs.AddRenderer(cfg.Default, systems.DrawOnboarding)
}
