package scenes

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/automoto/sphereballs/archetypes"
	"github.com/automoto/sphereballs/components"
	cfg "github.com/automoto/sphereballs/config"
	"github.com/automoto/sphereballs/logging"
	"github.com/automoto/sphereballs/shared/deform"
	"github.com/automoto/sphereballs/shared/gamemath"
	"github.com/automoto/sphereballs/systems"
	"github.com/automoto/sphereballs/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// PlayScene is the interactive screen for one ball
type PlayScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	archetype    deform.Archetype
	once         sync.Once
	failed       bool
}

func NewPlayScene(sc SceneChanger, a deform.Archetype) *PlayScene {
	return &PlayScene{sceneChanger: sc, archetype: a}
}

func (ps *PlayScene) Update() {
	ps.once.Do(ps.configure)
	if ps.failed {
		ps.sceneChanger.ChangeScene(NewHomeScene(ps.sceneChanger))
		return
	}
	ps.ecs.Update()
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.ThemeFor(systems.Preferences().DarkMode).Background)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlayScene) configure() {
	ps.ecs = ecs.NewECS(donburi.NewWorld())
	screen := gamemath.V(float64(cfg.C.Width), float64(cfg.C.Height))
	prefs := systems.Preferences()

	prefsEntry := archetypes.Preferences.Spawn(ps.ecs)
	components.Preferences.SetValue(prefsEntry, prefs)

	spaceEntry := factory.CreateSpace(ps.ecs, cfg.C.Width, cfg.C.Height, cfg.Ball.SpaceCellSize, cfg.Ball.SpaceCellSize)
	space := components.Space.Get(spaceEntry)
	factory.CreateProbe(ps.ecs, space)

	if _, err := factory.CreateBall(ps.ecs, space, ps.archetype, prefs, screen, systems.Haptics{}); err != nil {
		logging.L().Error("Could not create ball", zap.Stringer("archetype", ps.archetype), zap.Error(err))
		ps.failed = true
		return
	}

	gestureEntry := archetypes.Gesture.Spawn(ps.ecs)
	components.Gesture.SetValue(gestureEntry, components.GestureData{
		Recognizer: systems.NewGestureRecognizer(ps.ecs),
	})

	seed := uint64(time.Now().UnixNano())
	factory.CreateAmbientParticles(ps.ecs, screen, rand.New(rand.NewPCG(seed, seed>>1)))

	createHomeScene := func() interface{} {
		return NewHomeScene(ps.sceneChanger)
	}

	ps.ecs.AddSystem(systems.UpdateInput)
	ps.ecs.AddSystem(systems.NewUpdatePlay(ps.sceneChanger, createHomeScene))
	ps.ecs.AddSystem(systems.UpdateGesture)
	ps.ecs.AddSystem(systems.UpdateBall)
	ps.ecs.AddSystem(systems.UpdateEffects)

	ps.ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawAmbientParticles)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawBall)
	ps.ecs.AddRenderer(cfg.Overlay, systems.DrawPlayHUD)
	ps.ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	logging.L().Debug("play scene ready", zap.Stringer("archetype", ps.archetype),
		zap.String("color", string(prefs.BallColor)), zap.String("size", string(prefs.BallSize)))
}
