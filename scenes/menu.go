package scenes

import (
	"sync"

	cfg "github.com/automoto/sphereballs/config"
	"github.com/automoto/sphereballs/shared/deform"
	"github.com/automoto/sphereballs/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// HomeScene lists the four balls
type HomeScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewHomeScene creates a new home scene
func NewHomeScene(sc SceneChanger) *HomeScene {
	return &HomeScene{sceneChanger: sc}
}

func (hs *HomeScene) Update() {
	hs.once.Do(hs.configure)
	hs.ecs.Update()
}

func (hs *HomeScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.ThemeFor(systems.Preferences().DarkMode).Background)

	if hs.ecs == nil {
		return
	}
	hs.ecs.Draw(screen)
}

func (hs *HomeScene) configure() {
	hs.ecs = ecs.NewECS(donburi.NewWorld())

	createPlayScene := func(a deform.Archetype) interface{} {
		return NewPlayScene(hs.sceneChanger, a)
	}
	createSettingsScene := func() interface{} {
		return NewSettingsScene(hs.sceneChanger)
	}

	hs.ecs.AddSystem(systems.UpdateInput)
	hs.ecs.AddSystem(systems.NewUpdateHome(hs.sceneChanger, createPlayScene, createSettingsScene))

	hs.ecs.AddRenderer(cfg.Default, systems.DrawHome)
}

// FirstScene picks the launch scene from the preferences and debug flags.
func FirstScene(sc SceneChanger) interface{} {
	if cfg.Debug.Archetype != "" {
		if a, err := deform.ParseArchetype(cfg.Debug.Archetype); err == nil {
			return NewPlayScene(sc, a)
		}
	}
	if !systems.Preferences().OnboardingComplete && !cfg.Debug.SkipOnboarding {
		return NewOnboardingScene(sc)
	}
	return NewHomeScene(sc)
}
