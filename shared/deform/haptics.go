package deform

// Intensity is the strength of a haptic pulse.
type Intensity int

const (
	Light Intensity = iota
	Medium
	Heavy
)

func (i Intensity) String() string {
	switch i {
	case Light:
		return "light"
	case Medium:
		return "medium"
	case Heavy:
		return "heavy"
	}
	return "unknown"
}

// Haptics receives fire-and-forget pulses. Implementations swallow every
// failure, including missing hardware.
type Haptics interface {
	Pulse(Intensity)
}

type noHaptics struct{}

func (noHaptics) Pulse(Intensity) {}
