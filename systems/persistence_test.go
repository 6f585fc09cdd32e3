package systems

import (
	"errors"
	"testing"

	"github.com/automoto/sphereballs/components"
	cfg "github.com/automoto/sphereballs/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items     map[string][]byte
	loadErr   error
	saveErr   error
	deleteErr error
}

func newMemStore() *memStore {
	return &memStore{items: map[string][]byte{}}
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

func (m *memStore) DeleteItem(key string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.items, key)
	return nil
}

func useStore(t *testing.T, s Store) {
	t.Helper()
	prev := currentStore()
	prevPrefs := Preferences()
	SetStore(s)
	t.Cleanup(func() {
		SetStore(prev)
		SetPreferences(prevPrefs)
	})
}

func TestDecodePreferences(t *testing.T) {
	defaults := components.DefaultPreferences()

	tests := []struct {
		name string
		data string
		want components.PreferencesData
	}{
		{
			name: "all keys",
			data: `{"ballColor":"Red","ballSize":"Large","isDarkMode":true,"hasCompletedOnboarding":true}`,
			want: components.PreferencesData{
				BallColor: cfg.ColorRed, BallSize: cfg.SizeLarge, DarkMode: true, OnboardingComplete: true,
			},
		},
		{
			name: "unknown color falls back",
			data: `{"ballColor":"Magenta","ballSize":"Small"}`,
			want: components.PreferencesData{BallColor: defaults.BallColor, BallSize: cfg.SizeSmall},
		},
		{
			name: "wrong types fall back per key",
			data: `{"ballColor":7,"ballSize":"Huge","isDarkMode":"yes","hasCompletedOnboarding":true}`,
			want: components.PreferencesData{
				BallColor: defaults.BallColor, BallSize: defaults.BallSize, OnboardingComplete: true,
			},
		},
		{
			name: "case insensitive",
			data: `{"ballColor":"purple","ballSize":"MEDIUM"}`,
			want: components.PreferencesData{BallColor: cfg.ColorPurple, BallSize: cfg.SizeMedium},
		},
		{
			name: "missing keys",
			data: `{}`,
			want: defaults,
		},
		{
			name: "not json",
			data: `ballColor=Red`,
			want: defaults,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodePreferences([]byte(tt.data)))
		})
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	s := newMemStore()
	useStore(t, s)

	want := components.PreferencesData{
		BallColor:          cfg.ColorGreen,
		BallSize:           cfg.SizeSmall,
		DarkMode:           true,
		OnboardingComplete: true,
	}
	require.NoError(t, SavePreferences(want))
	assert.JSONEq(t,
		`{"ballColor":"Green","ballSize":"Small","isDarkMode":true,"hasCompletedOnboarding":true}`,
		string(s.items[PreferencesKey]))

	SetPreferences(components.DefaultPreferences())
	assert.Equal(t, want, LoadPreferences())
	assert.Equal(t, want, Preferences())
}

func TestLoadPreferencesFallsBack(t *testing.T) {
	t.Run("no store", func(t *testing.T) {
		useStore(t, nil)
		assert.Equal(t, components.DefaultPreferences(), LoadPreferences())
	})

	t.Run("nothing saved", func(t *testing.T) {
		useStore(t, newMemStore())
		assert.Equal(t, components.DefaultPreferences(), LoadPreferences())
	})

	t.Run("load error", func(t *testing.T) {
		s := newMemStore()
		s.loadErr = errors.New("disk gone")
		useStore(t, s)
		assert.Equal(t, components.DefaultPreferences(), LoadPreferences())
	})
}

func TestSavePreferencesError(t *testing.T) {
	s := newMemStore()
	s.saveErr = errors.New("read-only")
	useStore(t, s)

	p := components.DefaultPreferences()
	p.DarkMode = true
	err := SavePreferences(p)
	require.Error(t, err)
	assert.ErrorIs(t, err, s.saveErr)
	assert.True(t, Preferences().DarkMode, "in-memory copy still updated")
}

func TestClearPreferences(t *testing.T) {
	s := newMemStore()
	useStore(t, s)

	p := components.DefaultPreferences()
	p.OnboardingComplete = true
	require.NoError(t, SavePreferences(p))
	require.NoError(t, ClearPreferences())

	assert.NotContains(t, s.items, PreferencesKey)
	assert.Equal(t, components.DefaultPreferences(), LoadPreferences())
}

func TestClearPreferencesError(t *testing.T) {
	s := newMemStore()
	useStore(t, s)

	p := components.DefaultPreferences()
	p.DarkMode = true
	require.NoError(t, SavePreferences(p))

	s.deleteErr = errors.New("read-only")
	err := ClearPreferences()
	require.Error(t, err)
	assert.ErrorIs(t, err, s.deleteErr)
	assert.Contains(t, s.items, PreferencesKey)
	assert.Equal(t, components.DefaultPreferences(), Preferences(), "in-memory copy still reset")
}
