package systems

import (
	"github.com/automoto/sphereballs/components"
	cfg "github.com/automoto/sphereballs/config"
	"github.com/automoto/sphereballs/fonts"
	"github.com/automoto/sphereballs/shared/deform"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// GuideLines returns the interaction hints for an archetype.
func GuideLines(a deform.Archetype) []string {
	pinch := "Pinch to deform"
	switch a {
	case deform.Soft, deform.Bouncy:
		pinch = "Pinch to compress"
	case deform.Elastic:
		pinch = "Pinch to stretch"
	}

	drag := "Drag to move"
	switch a {
	case deform.Elastic:
		drag = "Drag to stretch"
	case deform.Bouncy:
		drag = "Drag to launch"
	case deform.Liquid:
		drag = "Drag to flow"
	}

	return []string{
		"Tap for ripple effect",
		pinch,
		drag,
		"Long press for deep interaction",
	}
}

// BackButtonRect is the hit area of the play scene's Back button.
func BackButtonRect() (x, y, w, h float64) {
	p := cfg.Play
	return p.BackMargin, (p.TopBarHeight - p.BackHeight) / 2, p.BackWidth, p.BackHeight
}

// DrawPlayHUD renders the title bar and, while the ball rests, the guide.
func DrawPlayHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	ball, ok := GetBall(ecs)
	if !ok {
		return
	}
	theme := cfg.ThemeFor(getPreferences(ecs).DarkMode)
	width := screen.Bounds().Dx()
	height := float64(screen.Bounds().Dy())

	// Title bar
	drawCentered(screen, ball.Archetype.String(), fonts.Heading.Get(), width/2, int(cfg.Play.TopBarHeight/2)+6, theme.Text)
	bx, by, bw, bh := BackButtonRect()
	vector.FillRect(screen, float32(bx), float32(by), float32(bw), float32(bh), cfg.WithAlpha(theme.Surface, 0.8), true)
	drawCentered(screen, cfg.Play.BackLabel, fonts.Body.Get(), int(bx+bw/2), int(by+bh/2)+6, theme.Text)

	if !IsIdle(ball.Controller.State()) {
		return
	}

	// Guide panel
	m := cfg.Play.GuideMargin
	gy := height - cfg.Play.GuideHeight - m
	vector.FillRect(screen, float32(m), float32(gy), float32(float64(width)-2*m), float32(cfg.Play.GuideHeight),
		cfg.WithAlpha(theme.Surface, 0.85), true)

	heading := fonts.Heading.Get()
	drawCentered(screen, cfg.Play.GuideTitle, heading, width/2, int(gy)+32, theme.Text)

	body := fonts.Body.Get()
	y := int(gy) + 32 + lineHeight(heading) + 8
	for _, line := range GuideLines(ball.Archetype) {
		text.Draw(screen, "- "+line, body, int(m)+24, y, theme.TextMuted)
		y += lineHeight(body) + 10
	}
}

// NewUpdatePlay handles the Back button and the back action of a play scene.
func NewUpdatePlay(sceneChanger SceneChanger, createHomeScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		syncPreferences(e)
		input := getOrCreateInput(e)
		back := GetAction(input, cfg.ActionMenuBack).JustPressed
		x, y, w, h := BackButtonRect()
		back = back || ClickedIn(input, x, y, w, h)
		if back {
			sceneChanger.ChangeScene(createHomeScene())
		}
	}
}

// syncPreferences copies the process-wide preferences into the scene.
func syncPreferences(e *ecs.ECS) *components.PreferencesData {
	entry, ok := components.Preferences.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Preferences))
	}
	p := components.Preferences.Get(entry)
	*p = Preferences()
	return p
}
