package deform

import "github.com/automoto/sphereballs/shared/gamemath"

// Field identifies one animatable parameter of State.
type Field int

const (
	FieldScaleX Field = iota
	FieldScaleY
	FieldOffsetX
	FieldOffsetY
	FieldRotation
	FieldCompression
	FieldCount // Must be last - used for array sizing
)

var fieldNames = [FieldCount]string{
	"scaleX", "scaleY", "offsetX", "offsetY", "rotation", "compression",
}

func (f Field) String() string {
	if f < 0 || f >= FieldCount {
		return "unknown"
	}
	return fieldNames[f]
}

// Mask is a set of fields.
type Mask uint8

// Has reports whether f is in the mask.
func (m Mask) Has(f Field) bool {
	return m&(1<<uint(f)) != 0
}

// Overlaps reports whether the two masks share a field.
func (m Mask) Overlaps(o Mask) bool {
	return m&o != 0
}

// Target is a partial State: only the fields in its mask are written.
// Methods return a modified copy so targets chain:
//
//	Target{}.Scale(0.9, 0.9).Compression(0.9)
type Target struct {
	values [FieldCount]float64
	mask   Mask
}

// With sets a single field.
func (t Target) With(f Field, v float64) Target {
	t.values[f] = v
	t.mask |= 1 << uint(f)
	return t
}

// Scale sets ScaleX and ScaleY.
func (t Target) Scale(x, y float64) Target {
	return t.With(FieldScaleX, x).With(FieldScaleY, y)
}

// Offset sets OffsetX and OffsetY.
func (t Target) Offset(v gamemath.Vec) Target {
	return t.With(FieldOffsetX, v.X).With(FieldOffsetY, v.Y)
}

// Compression sets the compression factor.
func (t Target) Compression(c float64) Target {
	return t.With(FieldCompression, c)
}

// Mask returns the set of fields the target writes.
func (t Target) Mask() Mask {
	return t.mask
}

// Get returns the value for f and whether the target writes it.
func (t Target) Get(f Field) (float64, bool) {
	return t.values[f], t.mask.Has(f)
}

// Empty reports whether the target writes nothing.
func (t Target) Empty() bool {
	return t.mask == 0
}

// Clamp limits every scale and compression field to b.
func (t Target) Clamp(b Bounds) Target {
	for f := Field(0); f < FieldCount; f++ {
		if !t.mask.Has(f) {
			continue
		}
		if r, ok := b.rangeFor(f); ok {
			t.values[f] = gamemath.Clamp(t.values[f], r.Min, r.Max)
		}
	}
	return t
}

// ApplyTo writes the target's fields into s.
func (t Target) ApplyTo(s *State) {
	for f := Field(0); f < FieldCount; f++ {
		if t.mask.Has(f) {
			s.setField(f, t.values[f])
		}
	}
}
