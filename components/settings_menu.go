package components

import (
	cfg "github.com/automoto/sphereballs/config"
	"github.com/yohamta/donburi"
)

// PreferencesData is the user's persisted preferences.
type PreferencesData struct {
	BallColor          cfg.BallColor
	BallSize           cfg.BallSize
	DarkMode           bool
	OnboardingComplete bool
}

// DefaultPreferences returns the first-launch preferences.
func DefaultPreferences() PreferencesData {
	return PreferencesData{
		BallColor: cfg.Settings.DefaultColor,
		BallSize:  cfg.Settings.DefaultSize,
	}
}

// Preferences is the component holding the preferences a scene renders with.
var Preferences = donburi.NewComponentType[PreferencesData]()

// SettingsMenuOption represents rows of the settings screen
type SettingsMenuOption int

const (
	SettingsOptColor SettingsMenuOption = iota
	SettingsOptSize
	SettingsOptDarkMode
	SettingsOptResetOnboarding
	SettingsOptResetAll
	SettingsOptBack
)

// SettingsMenuData stores keyboard focus on the settings screen
type SettingsMenuData struct {
	SelectedOption SettingsMenuOption
	Dirty          bool // preferences changed since the last save
	Leave          bool // Back was clicked
}

var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
