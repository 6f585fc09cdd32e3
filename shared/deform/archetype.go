package deform

import (
	"errors"
	"fmt"
	"strings"
)

// Archetype is one of the four ball behavior profiles.
type Archetype int

const (
	Soft Archetype = iota
	Elastic
	Bouncy
	Liquid
)

// Archetypes lists every archetype in display order.
var Archetypes = []Archetype{Soft, Elastic, Bouncy, Liquid}

var ErrUnknownArchetype = errors.New("unknown archetype")

// Shape is the outline a renderer draws for an archetype.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeEllipse
	ShapeWave
)

// VisualStyle carries the rendering hints of an archetype.
type VisualStyle struct {
	Opacity       float64
	HasGradient   bool
	HasReflection bool
	IsGlossy      bool
}

type archetypeInfo struct {
	label       string
	key         string
	description string
	icon        string
	shape       Shape
	style       VisualStyle
}

var archetypeTable = map[Archetype]archetypeInfo{
	Soft: {
		label:       "Soft Ball",
		key:         "soft",
		description: "Compressible and soothing",
		icon:        "circle.fill",
		shape:       ShapeCircle,
		style:       VisualStyle{Opacity: 0.8, HasGradient: true},
	},
	Elastic: {
		label:       "Elastic Ball",
		key:         "elastic",
		description: "Stretchable in all directions",
		icon:        "oval.fill",
		shape:       ShapeEllipse,
		style:       VisualStyle{Opacity: 1.0, HasGradient: true, HasReflection: true, IsGlossy: true},
	},
	Bouncy: {
		label:       "Bouncy Ball",
		key:         "bouncy",
		description: "Bounces off screen edges",
		icon:        "sportscourt.fill",
		shape:       ShapeCircle,
		style:       VisualStyle{Opacity: 1.0, HasGradient: true, HasReflection: true, IsGlossy: true},
	},
	Liquid: {
		label:       "Liquid Ball",
		key:         "liquid",
		description: "Flows like fluid",
		icon:        "drop.fill",
		shape:       ShapeWave,
		style:       VisualStyle{Opacity: 0.9, HasGradient: true},
	},
}

func (a Archetype) String() string {
	if info, ok := archetypeTable[a]; ok {
		return info.label
	}
	return fmt.Sprintf("Archetype(%d)", int(a))
}

// Key is the lower-case identifier used in config files and logs.
func (a Archetype) Key() string {
	return archetypeTable[a].key
}

func (a Archetype) Description() string {
	return archetypeTable[a].description
}

// Icon is a symbolic icon name for menus.
func (a Archetype) Icon() string {
	return archetypeTable[a].icon
}

func (a Archetype) Shape() Shape {
	return archetypeTable[a].shape
}

func (a Archetype) Style() VisualStyle {
	return archetypeTable[a].style
}

// ParseArchetype accepts either the key ("soft") or the label ("Soft Ball").
func ParseArchetype(s string) (Archetype, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	for _, a := range Archetypes {
		info := archetypeTable[a]
		if s == info.key || s == strings.ToLower(info.label) {
			return a, nil
		}
	}
	return Soft, fmt.Errorf("%w: %q", ErrUnknownArchetype, s)
}

// Range is a closed interval.
type Range struct {
	Min, Max float64
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Bounds are the per-archetype limits applied to every scale and compression
// value a responder produces.
type Bounds struct {
	ScaleX      Range
	ScaleY      Range
	Compression Range
}

func (b Bounds) rangeFor(f Field) (Range, bool) {
	switch f {
	case FieldScaleX:
		return b.ScaleX, true
	case FieldScaleY:
		return b.ScaleY, true
	case FieldCompression:
		return b.Compression, true
	}
	return Range{}, false
}

// Elastic and Liquid keep ScaleY == 2 - ScaleX while pinching, so their ScaleY
// range is the mirror of the ScaleX range.
var archetypeBounds = map[Archetype]Bounds{
	Soft: {
		ScaleX:      Range{0.5, 1.5},
		ScaleY:      Range{0.5, 1.5},
		Compression: Range{0.5, 1.5},
	},
	Elastic: {
		ScaleX:      Range{0.3, 2.0},
		ScaleY:      Range{0.0, 1.7},
		Compression: Range{1.0, 1.0},
	},
	Bouncy: {
		ScaleX:      Range{0.6, 1.4},
		ScaleY:      Range{0.6, 1.4},
		Compression: Range{1.0, 1.0},
	},
	Liquid: {
		ScaleX:      Range{0.4, 1.8},
		ScaleY:      Range{0.2, 1.6},
		Compression: Range{0.4, 3.0},
	},
}

// Bounds returns the clamp limits of the archetype.
func (a Archetype) Bounds() Bounds {
	return archetypeBounds[a]
}
