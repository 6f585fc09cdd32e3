// Package deform maps gesture events onto ball deformation. It owns the
// archetype response tables, the tween channels that ease between targets and
// the follow-up scheduler. It must have zero dependencies on ebiten so the
// whole interaction model can be exercised headless.
package deform

// DefaultSize is the display diameter used until the preference layer sets one.
const DefaultSize = 180.0

// State holds the visual transform of a ball.
type State struct {
	Size        float64 // display diameter
	ScaleX      float64
	ScaleY      float64
	OffsetX     float64 // translation from rest position
	OffsetY     float64
	Rotation    float64 // degrees
	Compression float64 // archetype-specific squash/flow factor
}

// Identity returns the rest state at DefaultSize.
func Identity() State {
	return State{
		Size:        DefaultSize,
		ScaleX:      1.0,
		ScaleY:      1.0,
		Compression: 1.0,
	}
}

// Reset restores every field to its identity value except Size.
func (s *State) Reset() {
	size := s.Size
	*s = Identity()
	s.Size = size
}

// Radius is half the display diameter, ignoring scale.
func (s State) Radius() float64 {
	return s.Size / 2
}

// field returns the value of f.
func (s State) field(f Field) float64 {
	switch f {
	case FieldScaleX:
		return s.ScaleX
	case FieldScaleY:
		return s.ScaleY
	case FieldOffsetX:
		return s.OffsetX
	case FieldOffsetY:
		return s.OffsetY
	case FieldRotation:
		return s.Rotation
	case FieldCompression:
		return s.Compression
	}
	return 0
}

func (s *State) setField(f Field, v float64) {
	switch f {
	case FieldScaleX:
		s.ScaleX = v
	case FieldScaleY:
		s.ScaleY = v
	case FieldOffsetX:
		s.OffsetX = v
	case FieldOffsetY:
		s.OffsetY = v
	case FieldRotation:
		s.Rotation = v
	case FieldCompression:
		s.Compression = v
	}
}
