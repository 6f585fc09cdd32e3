package main

import (
	"image"
	"log"

	"github.com/automoto/sphereballs/assets"
	"github.com/automoto/sphereballs/config"
	"github.com/automoto/sphereballs/fonts"
	"github.com/automoto/sphereballs/logging"
	"github.com/automoto/sphereballs/scenes"
	"github.com/automoto/sphereballs/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.FirstScene(g).(Scene)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	_, fileErr := config.LoadFile(config.DefaultFile)

	level, levelErr := logging.ParseLevel(config.Debug.LogLevel)
	logger, err := logging.New(level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if fileErr != nil {
		logger.Warn("Could not load tuning file", zap.String("path", config.DefaultFile), zap.Error(fileErr))
	}
	if levelErr != nil {
		logger.Warn("Falling back to info logging", zap.Error(levelErr))
	}

	if err := fonts.LoadDefaults(config.UI.TitleFontSize, config.UI.NormalFontSize, config.UI.SmallFontSize); err != nil {
		logger.Warn("Could not load fonts", zap.Error(err))
	}
	if err := assets.LoadShaders(); err != nil {
		logger.Warn("Could not compile shaders, using flat fills", zap.Error(err))
	}

	// Initialize persistence and load saved preferences
	if err := systems.InitPersistence(); err != nil {
		logger.Warn("Could not initialize persistence", zap.Error(err))
	}
	systems.LoadPreferences()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		logger.Fatal("Game exited", zap.Error(err))
	}
}
