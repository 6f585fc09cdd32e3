package systems

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/automoto/sphereballs/components"
	cfg "github.com/automoto/sphereballs/config"
	"github.com/automoto/sphereballs/logging"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// PreferencesKey is the gdata item holding the preferences.
const PreferencesKey = "preferences"

// Store is the part of gdata.Manager the preference layer needs.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
	DeleteItem(itemKey string) error
}

// SavedPreferences represents the preferences data stored on disk.
// Fields are raw so a bad value only costs that one key.
type SavedPreferences struct {
	BallColor              json.RawMessage `json:"ballColor,omitempty"`
	BallSize               json.RawMessage `json:"ballSize,omitempty"`
	IsDarkMode             json.RawMessage `json:"isDarkMode,omitempty"`
	HasCompletedOnboarding json.RawMessage `json:"hasCompletedOnboarding,omitempty"`
}

var (
	store       Store
	preferences = components.DefaultPreferences()
)

// InitPersistence opens the gdata manager for preference storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "sphereballs",
	})
	if err != nil {
		return fmt.Errorf("open preference store: %w", err)
	}
	SetStore(m)
	return nil
}

// SetStore replaces the preference store. nil disables persistence.
func SetStore(s Store) {
	store = s
}

func currentStore() Store {
	return store
}

// Preferences returns the process-wide preferences.
func Preferences() components.PreferencesData {
	return preferences
}

// SetPreferences replaces the process-wide preferences without saving.
func SetPreferences(p components.PreferencesData) {
	preferences = p
}

// LoadPreferences reads the stored preferences into the process-wide copy.
// Any failure leaves the affected keys at their defaults.
func LoadPreferences() components.PreferencesData {
	p := components.DefaultPreferences()
	s := currentStore()
	if s == nil {
		SetPreferences(p)
		return p
	}

	data, err := s.LoadItem(PreferencesKey)
	if err != nil {
		logging.L().Warn("Could not load preferences", zap.Error(err))
	} else if len(data) > 0 {
		p = DecodePreferences(data)
	}
	SetPreferences(p)
	return p
}

// SavePreferences stores p and makes it the process-wide copy.
func SavePreferences(p components.PreferencesData) error {
	SetPreferences(p)
	s := currentStore()
	if s == nil {
		return nil
	}

	data, err := EncodePreferences(p)
	if err != nil {
		logging.L().Warn("Could not serialize preferences", zap.Error(err))
		return err
	}
	if err := s.SaveItem(PreferencesKey, data); err != nil {
		logging.L().Warn("Could not save preferences", zap.Error(err))
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// ClearPreferences removes the stored preferences and restores defaults.
func ClearPreferences() error {
	p := components.DefaultPreferences()
	SetPreferences(p)
	s := currentStore()
	if s == nil {
		return nil
	}
	if err := s.DeleteItem(PreferencesKey); err != nil {
		logging.L().Warn("Could not clear preferences", zap.Error(err))
		return fmt.Errorf("clear preferences: %w", err)
	}
	return nil
}

// EncodePreferences serializes p with the stored key names.
func EncodePreferences(p components.PreferencesData) ([]byte, error) {
	return json.Marshal(struct {
		BallColor              string `json:"ballColor"`
		BallSize               string `json:"ballSize"`
		IsDarkMode             bool   `json:"isDarkMode"`
		HasCompletedOnboarding bool   `json:"hasCompletedOnboarding"`
	}{
		BallColor:              string(p.BallColor),
		BallSize:               string(p.BallSize),
		IsDarkMode:             p.DarkMode,
		HasCompletedOnboarding: p.OnboardingComplete,
	})
}

// DecodePreferences parses stored preferences. Missing or malformed keys
// keep their default value.
func DecodePreferences(data []byte) components.PreferencesData {
	p := components.DefaultPreferences()
	log := logging.Named("preferences")

	var saved SavedPreferences
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Warn("Could not parse saved preferences", zap.Error(err))
		return p
	}

	if s, ok := decodeString(saved.BallColor, "ballColor"); ok {
		c, err := cfg.ParseBallColor(s)
		if err != nil {
			log.Warn("Unknown ball color, using default", zap.String("value", s), zap.Error(err))
		}
		p.BallColor = c
	}
	if s, ok := decodeString(saved.BallSize, "ballSize"); ok {
		size, err := cfg.ParseBallSize(s)
		if err != nil {
			log.Warn("Unknown ball size, using default", zap.String("value", s), zap.Error(err))
		}
		p.BallSize = size
	}
	if b, ok := decodeBool(saved.IsDarkMode, "isDarkMode"); ok {
		p.DarkMode = b
	}
	if b, ok := decodeBool(saved.HasCompletedOnboarding, "hasCompletedOnboarding"); ok {
		p.OnboardingComplete = b
	}
	return p
}

var errWrongType = errors.New("wrong value type")

func decodeString(raw json.RawMessage, key string) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		logging.Named("preferences").Warn("Could not parse preference",
			zap.String("key", key), zap.Error(fmt.Errorf("%w: %w", errWrongType, err)))
		return "", false
	}
	return s, true
}

func decodeBool(raw json.RawMessage, key string) (bool, bool) {
	if len(raw) == 0 {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		logging.Named("preferences").Warn("Could not parse preference",
			zap.String("key", key), zap.Error(fmt.Errorf("%w: %w", errWrongType, err)))
		return false, false
	}
	return b, true
}
