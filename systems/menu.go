package systems

import (
	"os"

	"github.com/automoto/sphereballs/components"
	cfg "github.com/automoto/sphereballs/config"
	"github.com/automoto/sphereballs/fonts"
	"github.com/automoto/sphereballs/shared/deform"
	"github.com/automoto/sphereballs/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateHome creates the home screen system with scene transition capability
func NewUpdateHome(sceneChanger SceneChanger, createPlayScene func(deform.Archetype) interface{}, createSettingsScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		home := GetOrCreateHome(e)
		input := getOrCreateInput(e)

		numOptions := len(home.Options)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			home.SelectedIndex = (home.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			home.SelectedIndex = (home.SelectedIndex + 1) % numOptions
		}

		chosen := -1
		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			chosen = home.SelectedIndex
		}
		for i := range home.Options {
			x, y, w, h := HomeOptionRect(i, home.Options[i], float64(cfg.C.Width))
			if ClickedIn(input, x, y, w, h) {
				chosen = i
				home.SelectedIndex = i
			}
		}
		if GetAction(input, cfg.ActionSettings).JustPressed {
			sceneChanger.ChangeScene(createSettingsScene())
			return
		}

		if chosen >= 0 {
			opt := home.Options[chosen]
			if opt.Settings {
				sceneChanger.ChangeScene(createSettingsScene())
				return
			}
			sceneChanger.ChangeScene(createPlayScene(opt.Archetype))
			return
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// HomeOptionRect is the hit area of a home row.
func HomeOptionRect(i int, opt components.HomeOption, width float64) (x, y, w, h float64) {
	m := cfg.Home
	if opt.Settings {
		w = width / 2
		return (width - w) / 2, m.SettingsY, w, m.SettingsHeight
	}
	return m.ItemMarginX, m.ListStartY + float64(i)*(m.ItemHeight+m.ItemGap), width - 2*m.ItemMarginX, m.ItemHeight
}

// DrawHome renders the archetype list
func DrawHome(e *ecs.ECS, screen *ebiten.Image) {
	home := GetOrCreateHome(e)
	prefs := getPreferences(e)
	theme := cfg.ThemeFor(prefs.DarkMode)
	ballColor := prefs.BallColor.RGBA()

	width := float64(screen.Bounds().Dx())
	screen.Fill(theme.Background)

	drawCentered(screen, cfg.Home.Title, fonts.Title.Get(), int(width/2), int(cfg.Home.TitleY), theme.Text)
	drawCentered(screen, cfg.Home.Subtitle, fonts.Body.Get(), int(width/2), int(cfg.Home.SubtitleY), theme.TextMuted)

	heading := fonts.Heading.Get()
	small := fonts.Small.Get()
	for i, opt := range home.Options {
		x, y, w, h := HomeOptionRect(i, opt, width)
		selected := i == home.SelectedIndex

		if opt.Settings {
			bg := cfg.WithAlpha(theme.Surface, 1)
			if selected {
				bg = cfg.Mix(theme.Surface, theme.Selected, 0.3)
			}
			vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), bg, true)
			drawCentered(screen, cfg.Home.SettingsLabel, fonts.Body.Get(), int(x+w/2), int(y+h/2)+6, theme.Text)
			continue
		}

		alpha := cfg.Home.CardAlphaNormal
		if selected {
			alpha = cfg.Home.CardAlphaSelected
		}
		card := cfg.Mix(theme.Surface, ballColor, float64(alpha)/255)
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), card, true)
		if selected {
			vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, theme.Selected, true)
		}

		// Preview of the ball in the chosen color
		r := h * 0.3
		center := gamemath.V(x+r+16, y+h/2)
		preview := deform.Identity()
		preview.Size = 2 * r
		if opt.Archetype.Shape() == deform.ShapeEllipse {
			preview.ScaleX, preview.ScaleY = 1.15, 0.85
		}
		amplitude := 0.0
		if opt.Archetype.Shape() == deform.ShapeWave {
			amplitude = cfg.Ball.WaveAmplitude * r / 90
		}
		outline = BallOutline(outline[:0], center, preview, amplitude, 0)
		fillOutline(screen, outline, center, GradientStops(opt.Archetype, ballColor), opt.Archetype.Style().Opacity)

		tx := int(center.X+r) + 16
		text.Draw(screen, opt.Archetype.String(), heading, tx, int(y+h/2)-4, theme.Text)
		text.Draw(screen, opt.Archetype.Description(), small, tx, int(y+h/2)+18, theme.TextMuted)
	}

	input := getOrCreateInput(e)
	hint := getMenuHint(input.LastInputMethod)
	drawCentered(screen, hint, small, int(width/2), screen.Bounds().Dy()-16, theme.TextMuted)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate   Cross: Select"
	case components.InputXbox:
		return "D-Pad: Navigate   A: Select"
	case components.InputTouch:
		return "Tap a ball to play"
	}
	return "Arrows: Navigate   Enter: Select   ,: Settings"
}

// GetOrCreateHome returns the singleton Home component, creating if needed
func GetOrCreateHome(e *ecs.ECS) *components.HomeData {
	if _, ok := components.Home.First(e.World); !ok {
		options := make([]components.HomeOption, 0, len(deform.Archetypes)+1)
		for _, a := range deform.Archetypes {
			options = append(options, components.HomeOption{Archetype: a})
		}
		options = append(options, components.HomeOption{Settings: true})

		ent := e.World.Entry(e.World.Create(components.Home))
		components.Home.SetValue(ent, components.HomeData{
			SelectedIndex: 0,
			Options:       options,
		})
	}

	ent, _ := components.Home.First(e.World)
	return components.Home.Get(ent)
}
