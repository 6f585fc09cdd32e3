package gamemath

import "math"

// InEllipse reports whether p lies inside the axis-aligned ellipse centered
// on c with radii rx and ry. Degenerate radii contain nothing.
func InEllipse(p, c Vec, rx, ry float64) bool {
	if rx <= 0 || ry <= 0 {
		return false
	}
	dx := (p.X - c.X) / rx
	dy := (p.Y - c.Y) / ry
	return dx*dx+dy*dy <= 1
}

// WaveRadius is the radius of a wavy outline at angle: the base radius plus
// a sine of the given number of lobes.
func WaveRadius(radius, amplitude, lobes, angle, phase float64) float64 {
	return radius + math.Sin(angle*lobes+phase)*amplitude
}

// WaveOutline appends the vertices of a closed wavy circle to dst. Scale
// stretches the outline per axis after the wave is applied.
func WaveOutline(dst []Vec, center Vec, radius, amplitude, lobes, phase float64, points int, scale Vec) []Vec {
	if points < 3 {
		points = 3
	}
	step := 2 * math.Pi / float64(points)
	for i := 0; i < points; i++ {
		angle := float64(i) * step
		r := WaveRadius(radius, amplitude, lobes, angle, phase)
		dst = append(dst, Vec{
			X: center.X + math.Cos(angle)*r*scale.X,
			Y: center.Y + math.Sin(angle)*r*scale.Y,
		})
	}
	return dst
}

// Orbit is the offset of the i-th flow particle inside a liquid ball.
func Orbit(i int, phase, rangeX, rangeY float64) Vec {
	return Vec{
		X: math.Sin(phase+float64(i)*0.5) * rangeX,
		Y: math.Cos(phase+float64(i)*0.7) * rangeY,
	}
}

// Wrap returns v modulo period in [0, period).
func Wrap(v, period float64) float64 {
	if period <= 0 {
		return 0
	}
	v = math.Mod(v, period)
	if v < 0 {
		v += period
	}
	return v
}
