package systems

import (
	"math"

	"github.com/automoto/sphereballs/components"
	cfg "github.com/automoto/sphereballs/config"
	"github.com/automoto/sphereballs/fonts"
	"github.com/automoto/sphereballs/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// swipeDistance is the horizontal travel that flips a card.
const swipeDistance = 50

// onboardingLayout positions the walkthrough for a screen width.
type onboardingLayout struct {
	cardX, cardY, cardW, cardH float64
	dotsY                      float64
	buttonX, buttonY           float64
	buttonW, buttonH           float64
	skipX, skipY, skipW, skipH float64
}

func layoutOnboarding(width, height float64) onboardingLayout {
	o := cfg.Onboarding
	l := onboardingLayout{
		cardX: 24, cardY: 220, cardW: width - 48, cardH: o.CardHeight,
		buttonW: width - 64, buttonH: 52,
		skipW: 64, skipH: 36,
	}
	l.dotsY = l.cardY + l.cardH + 32
	l.buttonX = 32
	l.buttonY = math.Min(l.dotsY+48, height-l.buttonH-40)
	l.skipX, l.skipY = width-l.skipW-12, 16
	return l
}

// NewUpdateOnboarding pages through the cards and completes the walkthrough.
func NewUpdateOnboarding(sceneChanger SceneChanger, createHomeScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		ob := GetOrCreateOnboarding(e)
		input := getOrCreateInput(e)
		l := layoutOnboarding(float64(cfg.C.Width), float64(cfg.C.Height))

		page := ob.Page
		selected := GetAction(input, cfg.ActionMenuSelect).JustPressed
		if GetAction(input, cfg.ActionMenuRight).JustPressed || (selected && !ob.LastPage()) {
			ob.NextPage()
		}
		if GetAction(input, cfg.ActionMenuLeft).JustPressed {
			ob.PreviousPage()
		}
		if input.Clicked && PointerIn(input.PressPos, l.cardX, l.cardY, l.cardW, l.cardH) {
			dx := input.ClickPos.X - input.PressPos.X
			switch {
			case dx <= -swipeDistance:
				ob.NextPage()
			case dx >= swipeDistance:
				ob.PreviousPage()
			}
		}
		if ob.Page != page {
			startPulse(e)
		}

		done := (selected && page == ob.Page && ob.LastPage()) ||
			GetAction(input, cfg.ActionMenuBack).JustPressed ||
			ClickedIn(input, l.buttonX, l.buttonY, l.buttonW, l.buttonH) ||
			ClickedIn(input, l.skipX, l.skipY, l.skipW, l.skipH)
		if done && !ob.Done {
			ob.Done = true
			CompleteOnboarding()
			sceneChanger.ChangeScene(createHomeScene())
		}
	}
}

// CompleteOnboarding marks the walkthrough as seen and saves it.
func CompleteOnboarding() {
	p := Preferences()
	p.OnboardingComplete = true
	if err := SavePreferences(p); err == nil {
		logging.L().Info("Onboarding complete")
	}
}

func startPulse(e *ecs.ECS) {
	entry, ok := components.Pulse.First(e.World)
	if !ok {
		return
	}
	components.Pulse.SetValue(entry, components.PulseData{
		Tween: gween.New(0.94, 1, 0.25, ease.OutQuad),
		Scale: 0.94,
	})
}

// DrawOnboarding renders the current card, page dots and buttons.
func DrawOnboarding(e *ecs.ECS, screen *ebiten.Image) {
	ob := GetOrCreateOnboarding(e)
	theme := cfg.ThemeFor(getPreferences(e).DarkMode)
	o := cfg.Onboarding
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	l := layoutOnboarding(width, height)
	cx := int(width / 2)

	screen.Fill(theme.Background)
	drawCentered(screen, o.Title, fonts.Title.Get(), cx, 110, theme.Text)
	drawCentered(screen, o.Subtitle, fonts.Body.Get(), cx, 150, theme.TextMuted)

	if ob.Page >= 0 && ob.Page < len(o.Cards) {
		card := o.Cards[ob.Page]
		scale := 1.0
		if entry, ok := components.Pulse.First(e.World); ok {
			if s := components.Pulse.Get(entry).Scale; s > 0 {
				scale = s
			}
		}
		w, h := l.cardW*scale, l.cardH*scale
		x, y := l.cardX+(l.cardW-w)/2, l.cardY+(l.cardH-h)/2
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.Mix(theme.Surface, card.Color, 0.08), true)

		// Icon badge
		vector.FillCircle(screen, float32(width/2), float32(y+70), 40, cfg.WithAlpha(card.Color, 0.2), true)
		vector.FillCircle(screen, float32(width/2), float32(y+70), 24, card.Color, true)

		drawCentered(screen, card.Title, fonts.Heading.Get(), cx, int(y+150), theme.Text)
		body := fonts.Body.Get()
		ly := int(y + 185)
		for _, line := range WrapText(body, card.Description, int(w-48)) {
			drawCentered(screen, line, body, cx, ly, theme.TextMuted)
			ly += lineHeight(body)
		}
	}

	// Page dots
	n := len(o.Cards)
	startX := float32(width/2) - float32(n-1)*o.DotGap/2
	for i := 0; i < n; i++ {
		r := o.DotRadius
		clr := cfg.WithAlpha(theme.TextMuted, 0.3)
		if i == ob.Page {
			r *= 1.2
			clr = theme.Text
		}
		vector.FillCircle(screen, startX+float32(i)*o.DotGap, float32(l.dotsY), r, clr, true)
	}

	vector.FillRect(screen, float32(l.buttonX), float32(l.buttonY), float32(l.buttonW), float32(l.buttonH), theme.Accent, true)
	drawCentered(screen, o.ButtonLabel, fonts.Bold.Get(), cx, int(l.buttonY+l.buttonH/2)+6, cfg.White)
	drawCentered(screen, o.SkipLabel, fonts.Body.Get(), int(l.skipX+l.skipW/2), int(l.skipY+l.skipH/2)+6, theme.TextMuted)
}

// GetOrCreateOnboarding returns the singleton Onboarding component, creating if needed
func GetOrCreateOnboarding(e *ecs.ECS) *components.OnboardingData {
	entry, ok := components.Onboarding.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Onboarding, components.Pulse))
		components.Onboarding.SetValue(entry, components.OnboardingData{Pages: len(cfg.Onboarding.Cards)})
		components.Pulse.SetValue(entry, components.PulseData{Scale: 1})
	}
	return components.Onboarding.Get(entry)
}
