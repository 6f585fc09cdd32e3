package systems

import (
	"errors"
	"testing"

	"github.com/automoto/sphereballs/components"
	cfg "github.com/automoto/sphereballs/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustSetting(t *testing.T) {
	tests := []struct {
		name    string
		opt     components.SettingsMenuOption
		dir     int
		start   func(p *components.PreferencesData)
		check   func(t *testing.T, p components.PreferencesData)
		changed bool
	}{
		{
			name:    "color forward",
			opt:     components.SettingsOptColor,
			dir:     1,
			check:   func(t *testing.T, p components.PreferencesData) { assert.Equal(t, cfg.ColorGreen, p.BallColor) },
			changed: true,
		},
		{
			name:    "color backward",
			opt:     components.SettingsOptColor,
			dir:     -1,
			check:   func(t *testing.T, p components.PreferencesData) { assert.Equal(t, cfg.ColorRed, p.BallColor) },
			changed: true,
		},
		{
			name:    "size forward",
			opt:     components.SettingsOptSize,
			dir:     1,
			check:   func(t *testing.T, p components.PreferencesData) { assert.Equal(t, cfg.SizeLarge, p.BallSize) },
			changed: true,
		},
		{
			name:    "dark mode toggles",
			opt:     components.SettingsOptDarkMode,
			check:   func(t *testing.T, p components.PreferencesData) { assert.True(t, p.DarkMode) },
			changed: true,
		},
		{
			name:  "reset onboarding",
			opt:   components.SettingsOptResetOnboarding,
			start: func(p *components.PreferencesData) { p.OnboardingComplete = true },
			check: func(t *testing.T, p components.PreferencesData) {
				assert.False(t, p.OnboardingComplete)
			},
			changed: true,
		},
		{
			name: "reset all",
			opt:  components.SettingsOptResetAll,
			start: func(p *components.PreferencesData) {
				p.BallColor = cfg.ColorYellow
				p.DarkMode = true
				p.OnboardingComplete = true
			},
			check: func(t *testing.T, p components.PreferencesData) {
				assert.Equal(t, components.DefaultPreferences(), p)
			},
			changed: true,
		},
		{
			name:  "reset all on defaults is a no-op",
			opt:   components.SettingsOptResetAll,
			check: func(t *testing.T, p components.PreferencesData) {},
		},
		{
			name:  "back changes nothing",
			opt:   components.SettingsOptBack,
			check: func(t *testing.T, p components.PreferencesData) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := components.DefaultPreferences()
			if tt.start != nil {
				tt.start(&p)
			}
			assert.Equal(t, tt.changed, AdjustSetting(&p, tt.opt, tt.dir))
			tt.check(t, p)
		})
	}
}

func TestSettingValue(t *testing.T) {
	p := components.DefaultPreferences()
	assert.Equal(t, "Blue", SettingValue(p, components.SettingsOptColor))
	assert.Equal(t, "Medium (180)", SettingValue(p, components.SettingsOptSize))
	assert.Equal(t, "Off", SettingValue(p, components.SettingsOptDarkMode))
	assert.Empty(t, SettingValue(p, components.SettingsOptBack))

	for _, opt := range SettingsOptions {
		assert.NotEmpty(t, SettingLabel(opt))
	}
	assert.Len(t, SettingsOptions, numSettingsOptions)
}

func TestLeaveSettingsSavesOnlyWhenDirty(t *testing.T) {
	s := newMemStore()
	useStore(t, s)

	menu := &components.SettingsMenuData{}
	LeaveSettings(menu)
	assert.Empty(t, s.items)

	p := Preferences()
	menu.Dirty = ApplySetting(&p, components.SettingsOptDarkMode, 1)
	LeaveSettings(menu)
	assert.False(t, menu.Dirty)
	assert.Contains(t, s.items, PreferencesKey)
	assert.True(t, DecodePreferences(s.items[PreferencesKey]).DarkMode)
}

func TestResetAllClearsStore(t *testing.T) {
	s := newMemStore()
	useStore(t, s)

	p := components.DefaultPreferences()
	p.DarkMode = true
	p.OnboardingComplete = true
	require.NoError(t, SavePreferences(p))

	menu := &components.SettingsMenuData{}
	menu.Dirty = ApplySetting(&p, components.SettingsOptResetAll, 1)

	assert.False(t, menu.Dirty)
	assert.Equal(t, components.DefaultPreferences(), p)
	assert.Equal(t, components.DefaultPreferences(), Preferences())
	assert.NotContains(t, s.items, PreferencesKey)
}

func TestLeaveSettingsKeepsDirtyOnSaveError(t *testing.T) {
	s := newMemStore()
	useStore(t, s)

	p := Preferences()
	menu := &components.SettingsMenuData{}
	menu.Dirty = ApplySetting(&p, components.SettingsOptColor, 1)
	require.True(t, menu.Dirty)

	s.saveErr = errors.New("disk full")
	LeaveSettings(menu)
	assert.True(t, menu.Dirty)
	assert.NotContains(t, s.items, PreferencesKey)

	s.saveErr = nil
	LeaveSettings(menu)
	assert.False(t, menu.Dirty)
	assert.Equal(t, p.BallColor, DecodePreferences(s.items[PreferencesKey]).BallColor)
}
