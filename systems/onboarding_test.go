package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteOnboardingPersistsFlag(t *testing.T) {
	s := newMemStore()
	useStore(t, s)

	p := Preferences()
	p.OnboardingComplete = false
	SetPreferences(p)

	CompleteOnboarding()

	assert.True(t, Preferences().OnboardingComplete)
	require.Contains(t, s.items, PreferencesKey)
	assert.Contains(t, string(s.items[PreferencesKey]), `"hasCompletedOnboarding":true`)
	assert.True(t, LoadPreferences().OnboardingComplete)
}

func TestCompleteOnboardingKeepsOtherPreferences(t *testing.T) {
	s := newMemStore()
	useStore(t, s)

	p := Preferences()
	p.DarkMode = true
	SetPreferences(p)

	CompleteOnboarding()

	saved := DecodePreferences(s.items[PreferencesKey])
	assert.True(t, saved.DarkMode)
	assert.True(t, saved.OnboardingComplete)
}
