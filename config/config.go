package config

import (
	"image/color"
	"time"

	"github.com/automoto/sphereballs/shared/gesture"
	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in ascending order.
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// BallConfig contains ball rendering configuration values
type BallConfig struct {
	// Liquid outline
	WavePoints    int           // vertices in the wavy outline
	WaveLobes     float64       // sine lobes around the circumference
	WaveAmplitude float64       // pixels per unit of compression
	WavePeriod    time.Duration // one full phase turn

	// Liquid flow particles
	FlowParticles      int
	FlowParticleRadius float32
	FlowRangeX         float64
	FlowRangeY         float64
	FlowAlpha          float64

	// Glossy reflection
	ReflectionScale  float64 // relative to the ball
	ReflectionOffset float64 // fraction of size, up and left
	ReflectionAlpha  float64

	// Gradient stops per archetype (alpha multipliers, top-left to bottom-right)
	GradientStops map[string][]float64

	// Hit test grid cell size
	SpaceCellSize int
}

// HapticPulse is one vibration pulse.
type HapticPulse struct {
	Duration  time.Duration
	Magnitude float64 // 0..1
}

// HapticsConfig contains vibration configuration
type HapticsConfig struct {
	Enabled bool
	Light   HapticPulse
	Medium  HapticPulse
	Heavy   HapticPulse
}

// HomeConfig contains home screen configuration values
type HomeConfig struct {
	Title             string
	Subtitle          string
	TitleY            float64
	SubtitleY         float64
	ListStartY        float64
	ItemHeight        float64
	ItemGap           float64
	ItemMarginX       float64
	SettingsLabel     string
	SettingsY         float64
	SettingsHeight    float64
	CardAlphaSelected uint8
	CardAlphaNormal   uint8
}

// PlayConfig contains play screen configuration values
type PlayConfig struct {
	AmbientParticles   int
	AmbientMinSize     float64
	AmbientMaxSize     float64
	AmbientAreaMin     [2]float64 // x, y in a 390x844 reference frame
	AmbientAreaMax     [2]float64
	AmbientMinPeriod   float64 // seconds
	AmbientMaxPeriod   float64
	AmbientDrift       float64 // pixels
	AmbientStagger     float64 // seconds between particle starts
	AmbientAlpha       float64
	IdleOffset         float64 // |offset| below this counts as idle
	IdleScale          float64 // |scaleX - 1| below this counts as idle
	GuideTitle         string
	GuideHeight        float64
	GuideMargin        float64
	BackLabel          string
	BackWidth          float64
	BackHeight         float64
	BackMargin         float64
	TopBarHeight       float64
	BackgroundTintDark float64
	BackgroundTint     float64
}

// OnboardingCard is one page of the first-launch walkthrough.
type OnboardingCard struct {
	Title       string
	Description string
	Icon        string
	Color       color.RGBA
}

// OnboardingConfig contains onboarding configuration
type OnboardingConfig struct {
	Title       string
	Subtitle    string
	Cards       []OnboardingCard
	ButtonLabel string
	SkipLabel   string
	CardHeight  float64
	DotRadius   float32
	DotGap      float32
}

// UIConfig contains shared colors and font sizes
type UIConfig struct {
	Light Theme
	Dark  Theme

	TitleFontSize  float64
	NormalFontSize float64
	SmallFontSize  float64
}

// Theme is a color set for light or dark mode.
type Theme struct {
	Background color.RGBA
	Surface    color.RGBA
	Text       color.RGBA
	TextMuted  color.RGBA
	Accent     color.RGBA
	Selected   color.RGBA
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	ShowHitbox     bool // outline the ball's hit test rectangle
	ShowState      bool // print the deformation state on screen
	SkipOnboarding bool
	Archetype      string // jump straight into a play scene
	LogLevel       string
}

// Global configuration instances
var C *Config
var Ball BallConfig
var Gesture gesture.Config
var Haptics HapticsConfig
var Home HomeConfig
var Play PlayConfig
var Onboarding OnboardingConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	SystemGray = color.RGBA{R: 142, G: 142, B: 147, A: 255}
	Orange     = color.RGBA{R: 255, G: 149, B: 0, A: 255}
	Pink       = color.RGBA{R: 255, G: 45, B: 85, A: 255}
)

func init() {
	C = &Config{
		Width:  390,
		Height: 844,
		TPS:    60,
		Title:  "Stress Balls",
	}

	Ball = BallConfig{
		WavePoints:    60,
		WaveLobes:     3,
		WaveAmplitude: 5,
		WavePeriod:    4 * time.Second,

		FlowParticles:      5,
		FlowParticleRadius: 4,
		FlowRangeX:         20,
		FlowRangeY:         15,
		FlowAlpha:          0.3,

		ReflectionScale:  0.6,
		ReflectionOffset: 0.1,
		ReflectionAlpha:  0.4,

		GradientStops: map[string][]float64{
			"soft":    {0.8, 0.5},
			"elastic": {1.0, 0.7, 0.9},
			"bouncy":  {1.0, 0.8, 1.0},
			"liquid":  {0.9, 0.6, 0.8},
		},

		SpaceCellSize: 16,
	}

	Gesture = gesture.DefaultConfig()

	Haptics = HapticsConfig{
		Enabled: true,
		Light:   HapticPulse{Duration: 10 * time.Millisecond, Magnitude: 0.3},
		Medium:  HapticPulse{Duration: 20 * time.Millisecond, Magnitude: 0.6},
		Heavy:   HapticPulse{Duration: 35 * time.Millisecond, Magnitude: 1.0},
	}

	Home = HomeConfig{
		Title:             "Stress Balls",
		Subtitle:          "Choose your stress relief companion",
		TitleY:            110,
		SubtitleY:         150,
		ListStartY:        200,
		ItemHeight:        96,
		ItemGap:           16,
		ItemMarginX:       24,
		SettingsLabel:     "Settings",
		SettingsY:         760,
		SettingsHeight:    48,
		CardAlphaSelected: 70,
		CardAlphaNormal:   28,
	}

	Play = PlayConfig{
		AmbientParticles:   8,
		AmbientMinSize:     15,
		AmbientMaxSize:     40,
		AmbientAreaMin:     [2]float64{50, 100},
		AmbientAreaMax:     [2]float64{350, 700},
		AmbientMinPeriod:   4,
		AmbientMaxPeriod:   8,
		AmbientDrift:       24,
		AmbientStagger:     0.3,
		AmbientAlpha:       0.1,
		IdleOffset:         5,
		IdleScale:          0.1,
		GuideTitle:         "Interaction Guide",
		GuideHeight:        200,
		GuideMargin:        20,
		BackLabel:          "< Back",
		BackWidth:          88,
		BackHeight:         36,
		BackMargin:         12,
		TopBarHeight:       60,
		BackgroundTintDark: 0.15,
		BackgroundTint:     0.08,
	}

	Onboarding = OnboardingConfig{
		Title:    "Welcome to Stress Balls",
		Subtitle: "Your pocket stress relief companion",
		Cards: []OnboardingCard{
			{
				Title:       "Touch & Squeeze",
				Description: "Press and compress your stress ball to feel the satisfying resistance",
				Icon:        "hand.tap.fill",
				Color:       color.RGBA{R: 0, G: 122, B: 255, A: 255},
			},
			{
				Title:       "Stretch & Play",
				Description: "Drag and stretch elastic balls in any direction for endless fun",
				Icon:        "arrow.up.and.down.and.arrow.left.and.right",
				Color:       color.RGBA{R: 52, G: 199, B: 89, A: 255},
			},
			{
				Title:       "Relax & Unwind",
				Description: "Let the smooth animations and physics help you find your calm",
				Icon:        "heart.fill",
				Color:       color.RGBA{R: 175, G: 82, B: 222, A: 255},
			},
		},
		ButtonLabel: "Get Started",
		SkipLabel:   "Skip",
		CardHeight:  300,
		DotRadius:   5,
		DotGap:      22,
	}

	UI = UIConfig{
		Light: Theme{
			Background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
			Surface:    color.RGBA{R: 242, G: 242, B: 247, A: 255},
			Text:       color.RGBA{R: 0, G: 0, B: 0, A: 255},
			TextMuted:  color.RGBA{R: 110, G: 110, B: 115, A: 255},
			Accent:     color.RGBA{R: 0, G: 122, B: 255, A: 255},
			Selected:   color.RGBA{R: 0, G: 122, B: 255, A: 255},
		},
		Dark: Theme{
			Background: color.RGBA{R: 0, G: 0, B: 0, A: 255},
			Surface:    color.RGBA{R: 28, G: 28, B: 30, A: 255},
			Text:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
			TextMuted:  color.RGBA{R: 152, G: 152, B: 157, A: 255},
			Accent:     color.RGBA{R: 10, G: 132, B: 255, A: 255},
			Selected:   color.RGBA{R: 100, G: 180, B: 255, A: 255},
		},
		TitleFontSize:  30,
		NormalFontSize: 17,
		SmallFontSize:  13,
	}

	Debug = DebugConfig{
		LogLevel: "info",
	}
}

// ThemeFor returns the dark or light theme.
func ThemeFor(dark bool) Theme {
	if dark {
		return UI.Dark
	}
	return UI.Light
}

// WithAlpha returns c with its alpha scaled by a (0..1), premultiplied for ebiten.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a <= 0 {
		return color.RGBA{}
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// Mix linearly interpolates between two colors, t in 0..1.
func Mix(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}
