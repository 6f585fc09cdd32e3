package systems

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

// textWidth is the advance of s in pixels.
func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// drawCentered draws s with its baseline at y, centered on cx.
func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	text.Draw(screen, s, face, cx-textWidth(face, s)/2, y, clr)
}

// WrapText splits s into lines no wider than maxWidth. A single word wider
// than maxWidth gets a line of its own.
func WrapText(face font.Face, s string, maxWidth int) []string {
	var lines []string
	var line string
	for _, word := range strings.Fields(s) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line != "" && textWidth(face, candidate) > maxWidth {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// lineHeight is the distance between baselines of face.
func lineHeight(face font.Face) int {
	m := face.Metrics()
	return (m.Ascent + m.Descent).Ceil() + 2
}
