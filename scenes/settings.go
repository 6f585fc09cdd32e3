package scenes

import (
	"sync"

	"github.com/automoto/sphereballs/archetypes"
	"github.com/automoto/sphereballs/components"
	cfg "github.com/automoto/sphereballs/config"
	"github.com/automoto/sphereballs/logging"
	"github.com/automoto/sphereballs/systems"
	"github.com/automoto/sphereballs/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// SettingsScene edits the preferences using ebitenui
type SettingsScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settingsUI   *ui.SettingsUI
	once         sync.Once
}

// NewSettingsScene creates a new settings scene
func NewSettingsScene(sc SceneChanger) *SettingsScene {
	return &SettingsScene{sceneChanger: sc}
}

func (ss *SettingsScene) Update() {
	ss.once.Do(ss.configure)

	ss.ecs.Update()
	if ss.settingsUI != nil {
		ss.settingsUI.Update()
	}
}

func (ss *SettingsScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.ThemeFor(systems.Preferences().DarkMode).Background)

	if ss.settingsUI == nil {
		return
	}
	ss.settingsUI.UI.Draw(screen)
}

func (ss *SettingsScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())

	menuEntry := archetypes.SettingsMenu.Spawn(ss.ecs)
	prefsEntry := archetypes.Preferences.Spawn(ss.ecs)
	components.Preferences.SetValue(prefsEntry, systems.Preferences())

	createHomeScene := func() interface{} {
		return NewHomeScene(ss.sceneChanger)
	}
	createOnboardingScene := func() interface{} {
		return NewOnboardingScene(ss.sceneChanger)
	}

	ss.ecs.AddSystem(systems.UpdateInput)
	ss.ecs.AddSystem(systems.NewUpdateSettingsMenu(ss.sceneChanger, createHomeScene, createOnboardingScene))

	settingsUI, err := ui.NewSettingsUI(
		components.SettingsMenu.Get(menuEntry),
		components.Preferences.Get(prefsEntry),
	)
	if err != nil {
		logging.L().Error("Could not build settings screen", zap.Error(err))
		return
	}
	ss.settingsUI = settingsUI
}
