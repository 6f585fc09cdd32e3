package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

var (
	ErrUnknownColor = errors.New("unknown ball color")
	ErrUnknownSize  = errors.New("unknown ball size")
)

// BallColor is a palette entry. The string value is what gets persisted.
type BallColor string

const (
	ColorRed    BallColor = "Red"
	ColorBlue   BallColor = "Blue"
	ColorGreen  BallColor = "Green"
	ColorYellow BallColor = "Yellow"
	ColorPurple BallColor = "Purple"
	ColorGray   BallColor = "Gray"
)

// BallSize is a size preset. The string value is what gets persisted.
type BallSize string

const (
	SizeSmall  BallSize = "Small"
	SizeMedium BallSize = "Medium"
	SizeLarge  BallSize = "Large"
)

// SettingsConfig contains the preference choices offered on the settings screen
type SettingsConfig struct {
	Colors       []BallColor
	Palette      map[BallColor]color.RGBA
	Sizes        []BallSize
	Diameters    map[BallSize]float64
	DefaultColor BallColor
	DefaultSize  BallSize
	Version      string
	Title        string
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		Colors: []BallColor{ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorPurple, ColorGray},
		Palette: map[BallColor]color.RGBA{
			ColorRed:    {R: 0xFF, G: 0x3B, B: 0x30, A: 0xFF},
			ColorBlue:   {R: 0x00, G: 0x7A, B: 0xFF, A: 0xFF},
			ColorGreen:  {R: 0x34, G: 0xC7, B: 0x59, A: 0xFF},
			ColorYellow: {R: 0xFF, G: 0xCC, B: 0x00, A: 0xFF},
			ColorPurple: {R: 0xAF, G: 0x52, B: 0xDE, A: 0xFF},
			ColorGray:   {R: 0x8E, G: 0x8E, B: 0x93, A: 0xFF},
		},
		Sizes: []BallSize{SizeSmall, SizeMedium, SizeLarge},
		Diameters: map[BallSize]float64{
			SizeSmall:  120,
			SizeMedium: 180,
			SizeLarge:  240,
		},
		DefaultColor: ColorBlue,
		DefaultSize:  SizeMedium,
		Version:      "1.0.0",
		Title:        "Settings",
	}
}

// ParseBallColor matches a palette name case-insensitively.
func ParseBallColor(s string) (BallColor, error) {
	for _, c := range Settings.Colors {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}
	return Settings.DefaultColor, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// ParseBallSize matches a size preset case-insensitively.
func ParseBallSize(s string) (BallSize, error) {
	for _, sz := range Settings.Sizes {
		if strings.EqualFold(strings.TrimSpace(s), string(sz)) {
			return sz, nil
		}
	}
	return Settings.DefaultSize, fmt.Errorf("%w: %q", ErrUnknownSize, s)
}

// RGBA returns the display color, falling back to the default color.
func (c BallColor) RGBA() color.RGBA {
	if rgba, ok := Settings.Palette[c]; ok {
		return rgba
	}
	return Settings.Palette[Settings.DefaultColor]
}

// Next cycles to the following palette entry.
func (c BallColor) Next() BallColor {
	return cycle(Settings.Colors, c, 1)
}

// Prev cycles to the preceding palette entry.
func (c BallColor) Prev() BallColor {
	return cycle(Settings.Colors, c, -1)
}

// Diameter returns the ball diameter in pixels, falling back to the default size.
func (s BallSize) Diameter() float64 {
	if d, ok := Settings.Diameters[s]; ok {
		return d
	}
	return Settings.Diameters[Settings.DefaultSize]
}

// Next cycles to the following size preset.
func (s BallSize) Next() BallSize {
	return cycle(Settings.Sizes, s, 1)
}

// Prev cycles to the preceding size preset.
func (s BallSize) Prev() BallSize {
	return cycle(Settings.Sizes, s, -1)
}

// cycle steps through list from cur, wrapping at both ends. An unknown cur
// starts from the first entry.
func cycle[T comparable](list []T, cur T, step int) T {
	n := len(list)
	for i, v := range list {
		if v == cur {
			return list[((i+step)%n+n)%n]
		}
	}
	return list[0]
}
