package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the tuning file looked up next to the binary.
const DefaultFile = "sphereballs.yaml"

// File is the optional YAML tuning file. Zero values leave the built-in
// defaults alone.
type File struct {
	Window struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
		TPS    int `yaml:"tps"`
	} `yaml:"window"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Haptics struct {
		Enabled *bool `yaml:"enabled"`
	} `yaml:"haptics"`
	Debug struct {
		ShowHitbox     bool   `yaml:"showHitbox"`
		ShowState      bool   `yaml:"showState"`
		SkipOnboarding bool   `yaml:"skipOnboarding"`
		Archetype      string `yaml:"archetype"`
	} `yaml:"debug"`
}

// LoadYAML decodes a tuning file. An empty document is valid.
func LoadYAML(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode tuning file: %w", err)
	}
	return &f, nil
}

// LoadFile reads path and applies it to the global configuration. A missing
// file is not an error and returns (nil, nil).
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open tuning file: %w", err)
	}
	defer fh.Close()

	f, err := LoadYAML(fh)
	if err != nil {
		return nil, err
	}
	f.Apply()
	return f, nil
}

// Apply overlays the file onto the global configuration.
func (f *File) Apply() {
	if f.Window.Width > 0 {
		C.Width = f.Window.Width
	}
	if f.Window.Height > 0 {
		C.Height = f.Window.Height
	}
	if f.Window.TPS > 0 {
		C.TPS = f.Window.TPS
	}
	if f.Log.Level != "" {
		Debug.LogLevel = f.Log.Level
	}
	if f.Haptics.Enabled != nil {
		Haptics.Enabled = *f.Haptics.Enabled
	}
	Debug.ShowHitbox = Debug.ShowHitbox || f.Debug.ShowHitbox
	Debug.ShowState = Debug.ShowState || f.Debug.ShowState
	Debug.SkipOnboarding = Debug.SkipOnboarding || f.Debug.SkipOnboarding
	if f.Debug.Archetype != "" {
		Debug.Archetype = f.Debug.Archetype
	}
}
