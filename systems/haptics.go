package systems

import (
	cfg "github.com/automoto/sphereballs/config"
	"github.com/automoto/sphereballs/shared/deform"
	"github.com/hajimehoshi/ebiten/v2"
)

// Haptics vibrates the device and every connected gamepad.
// Platforms without vibration ignore the calls.
type Haptics struct{}

var _ deform.Haptics = Haptics{}

func (Haptics) Pulse(i deform.Intensity) {
	if !cfg.Haptics.Enabled {
		return
	}
	p := PulseFor(i)
	ebiten.Vibrate(&ebiten.VibrateOptions{
		Duration:  p.Duration,
		Magnitude: p.Magnitude,
	})

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, id := range gamepadIDs {
		ebiten.VibrateGamepad(id, &ebiten.VibrateGamepadOptions{
			Duration:        p.Duration,
			StrongMagnitude: p.Magnitude,
			WeakMagnitude:   p.Magnitude,
		})
	}
}

// PulseFor maps an intensity onto the configured vibration.
func PulseFor(i deform.Intensity) cfg.HapticPulse {
	switch i {
	case deform.Medium:
		return cfg.Haptics.Medium
	case deform.Heavy:
		return cfg.Haptics.Heavy
	}
	return cfg.Haptics.Light
}
