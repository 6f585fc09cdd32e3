package systems

import (
	"fmt"

	"github.com/automoto/sphereballs/components"
	cfg "github.com/automoto/sphereballs/config"
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

// SettingsOptions lists the settings rows in display order.
var SettingsOptions = []components.SettingsMenuOption{
	components.SettingsOptColor,
	components.SettingsOptSize,
	components.SettingsOptDarkMode,
	components.SettingsOptResetOnboarding,
	components.SettingsOptResetAll,
	components.SettingsOptBack,
}

// AdjustSetting changes the value of a row. dir is +1 or -1 for cycling
// rows and ignored by toggles and actions. It reports whether p changed.
func AdjustSetting(p *components.PreferencesData, opt components.SettingsMenuOption, dir int) bool {
	before := *p
	switch opt {
	case components.SettingsOptColor:
		if dir < 0 {
			p.BallColor = p.BallColor.Prev()
		} else {
			p.BallColor = p.BallColor.Next()
		}
	case components.SettingsOptSize:
		if dir < 0 {
			p.BallSize = p.BallSize.Prev()
		} else {
			p.BallSize = p.BallSize.Next()
		}
	case components.SettingsOptDarkMode:
		p.DarkMode = !p.DarkMode
	case components.SettingsOptResetOnboarding:
		p.OnboardingComplete = false
	case components.SettingsOptResetAll:
		*p = components.DefaultPreferences()
	}
	return *p != before
}

// SettingLabel is the row title.
func SettingLabel(opt components.SettingsMenuOption) string {
	switch opt {
	case components.SettingsOptColor:
		return "Ball Color"
	case components.SettingsOptSize:
		return "Ball Size"
	case components.SettingsOptDarkMode:
		return "Dark Mode"
	case components.SettingsOptResetOnboarding:
		return "Reset Onboarding"
	case components.SettingsOptResetAll:
		return "Reset All Settings"
	case components.SettingsOptBack:
		return "Back"
	}
	return ""
}

// SettingValue is the current value shown next to a row.
func SettingValue(p components.PreferencesData, opt components.SettingsMenuOption) string {
	switch opt {
	case components.SettingsOptColor:
		return string(p.BallColor)
	case components.SettingsOptSize:
		return fmt.Sprintf("%s (%.0f)", p.BallSize, p.BallSize.Diameter())
	case components.SettingsOptDarkMode:
		if p.DarkMode {
			return "On"
		}
		return "Off"
	}
	return ""
}

// NewUpdateSettingsMenu drives the settings screen from keyboard and gamepad.
// Leaving saves the preferences and goes home, or to onboarding when it was reset.
func NewUpdateSettingsMenu(sceneChanger SceneChanger, createHomeScene, createOnboardingScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		settings := GetOrCreateSettingsMenu(e)
		prefs := syncPreferences(e)
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			settings.SelectedOption = components.SettingsMenuOption((int(settings.SelectedOption) - 1 + numSettingsOptions) % numSettingsOptions)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			settings.SelectedOption = components.SettingsMenuOption((int(settings.SelectedOption) + 1) % numSettingsOptions)
		}

		leave := GetAction(input, cfg.ActionMenuBack).JustPressed
		switch {
		case GetAction(input, cfg.ActionMenuLeft).JustPressed:
			settings.Dirty = ApplySetting(prefs, settings.SelectedOption, -1) || settings.Dirty
		case GetAction(input, cfg.ActionMenuRight).JustPressed:
			settings.Dirty = ApplySetting(prefs, settings.SelectedOption, 1) || settings.Dirty
		case GetAction(input, cfg.ActionMenuSelect).JustPressed:
			if settings.SelectedOption == components.SettingsOptBack {
				leave = true
			} else {
				settings.Dirty = ApplySetting(prefs, settings.SelectedOption, 1) || settings.Dirty
			}
		}

		if settings.Leave {
			leave = true
		}
		if !leave {
			return
		}
		settings.Leave = false
		LeaveSettings(settings)
		if Preferences().OnboardingComplete {
			sceneChanger.ChangeScene(createHomeScene())
			return
		}
		sceneChanger.ChangeScene(createOnboardingScene())
	}
}

// ApplySetting adjusts a row in p and mirrors it into the process-wide
// preferences. It reports whether a save is pending. Reset All clears the
// stored item right away.
func ApplySetting(p *components.PreferencesData, opt components.SettingsMenuOption, dir int) bool {
	if !AdjustSetting(p, opt, dir) {
		return false
	}
	if opt == components.SettingsOptResetAll {
		return ClearPreferences() != nil
	}
	SetPreferences(*p)
	return true
}

// LeaveSettings saves pending changes. Dirty stays set when the save fails.
func LeaveSettings(settings *components.SettingsMenuData) {
	if !settings.Dirty {
		return
	}
	if err := SavePreferences(Preferences()); err != nil {
		return
	}
	settings.Dirty = false
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	entry, ok := components.SettingsMenu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.SettingsMenu))
	}
	return components.SettingsMenu.Get(entry)
}
