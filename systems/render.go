package systems

import (
	"image/color"
	"math"

	"github.com/automoto/sphereballs/assets"
	"github.com/automoto/sphereballs/components"
	cfg "github.com/automoto/sphereballs/config"
	"github.com/automoto/sphereballs/shared/deform"
	"github.com/automoto/sphereballs/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	shaderRectOp = &ebiten.DrawRectShaderOptions{}
	shaderTriOp  = &ebiten.DrawTrianglesShaderOptions{}

	// Reused outline buffers
	outline  []gamemath.Vec
	vertices []ebiten.Vertex
	indices  []uint16
)

// DrawBackground fills the screen with the themed gradient and the soft
// glow in the ball color.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	prefs := getPreferences(ecs)
	theme := cfg.ThemeFor(prefs.DarkMode)
	base := prefs.BallColor.RGBA()
	screen.Fill(theme.Background)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if assets.GradientShader == nil {
		return
	}

	tint := cfg.Play.BackgroundTint
	last := cfg.WithAlpha(base, 0.03)
	if prefs.DarkMode {
		tint = cfg.Play.BackgroundTintDark
		last = cfg.WithAlpha(cfg.SystemGray, 0.2)
	}

	shaderRectOp.GeoM.Reset()
	shaderRectOp.Uniforms = map[string]any{
		"Color0": colorVec(theme.Background),
		"Color1": colorVec(cfg.WithAlpha(base, tint)),
		"Color2": colorVec(last),
		"Origin": []float32{0, 0},
		"Size":   []float32{float32(w), float32(h)},
	}
	screen.DrawRectShader(w, h, assets.GradientShader, shaderRectOp)

	drawGlow(screen, gamemath.V(float64(w)/2, float64(h)/2), 300, cfg.WithAlpha(base, 0.05))
}

// DrawAmbientParticles renders the drifting background glows.
func DrawAmbientParticles(ecs *ecs.ECS, screen *ebiten.Image) {
	base := getPreferences(ecs).BallColor.RGBA()
	clr := cfg.WithAlpha(base, cfg.Play.AmbientAlpha)
	components.AmbientParticle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.AmbientParticle.Get(e)
		drawGlow(screen, p.Base.Add(p.Offset), p.Radius, clr)
	})
}

func drawGlow(screen *ebiten.Image, c gamemath.Vec, r float64, clr color.RGBA) {
	if r <= 0 {
		return
	}
	if assets.RadialShader == nil {
		vector.FillCircle(screen, float32(c.X), float32(c.Y), float32(r), clr, true)
		return
	}
	shaderRectOp.GeoM.Reset()
	shaderRectOp.GeoM.Translate(c.X-r, c.Y-r)
	shaderRectOp.Uniforms = map[string]any{
		"Center": []float32{float32(c.X), float32(c.Y)},
		"Radius": float32(r),
		"Color":  colorVec(clr),
	}
	size := int(math.Ceil(2 * r))
	screen.DrawRectShader(size, size, assets.RadialShader, shaderRectOp)
}

// DrawBall renders the ball in its archetype's shape with the current
// deformation applied.
func DrawBall(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Ball.Each(ecs.World, func(e *donburi.Entry) {
		drawBall(screen, components.Ball.Get(e))
	})
}

func drawBall(screen *ebiten.Image, ball *components.BallData) {
	s := ball.Controller.State()
	style := ball.Archetype.Style()
	center := ball.Center()
	scale := gamemath.V(s.ScaleX, s.ScaleY)

	amplitude := 0.0
	if ball.Archetype.Shape() == deform.ShapeWave {
		amplitude = cfg.Ball.WaveAmplitude * s.Compression
	}
	outline = BallOutline(outline[:0], center, s, amplitude, ball.WavePhase)

	stops := GradientStops(ball.Archetype, ball.Color)
	fillOutline(screen, outline, center, stops, style.Opacity)

	if style.HasReflection {
		// Same shape, smaller, nudged toward the top-left
		shift := gamemath.V(-s.Size*cfg.Ball.ReflectionOffset*s.ScaleX, -s.Size*cfg.Ball.ReflectionOffset*s.ScaleY)
		shrunk := s
		shrunk.Size *= cfg.Ball.ReflectionScale
		outline = BallOutline(outline[:0], center.Add(shift), shrunk, amplitude*cfg.Ball.ReflectionScale, ball.WavePhase)
		highlight := [3]color.RGBA{cfg.WithAlpha(cfg.White, cfg.Ball.ReflectionAlpha), {}, {}}
		fillOutline(screen, outline, center.Add(shift), highlight, 1)
	}

	if ball.Archetype == deform.Liquid {
		clr := cfg.WithAlpha(ball.Color, cfg.Ball.FlowAlpha)
		for i := 0; i < cfg.Ball.FlowParticles; i++ {
			o := gamemath.Orbit(i, ball.WavePhase, cfg.Ball.FlowRangeX, cfg.Ball.FlowRangeY)
			p := center.Add(gamemath.V(o.X*scale.X, o.Y*scale.Y))
			vector.FillCircle(screen, float32(p.X), float32(p.Y), cfg.Ball.FlowParticleRadius, clr, true)
		}
	}
}

// BallOutline appends the screen-space outline of a ball centered on c.
func BallOutline(dst []gamemath.Vec, c gamemath.Vec, s deform.State, amplitude, phase float64) []gamemath.Vec {
	start := len(dst)
	dst = gamemath.WaveOutline(dst, c, s.Radius(), amplitude, cfg.Ball.WaveLobes, phase, cfg.Ball.WavePoints, gamemath.V(s.ScaleX, s.ScaleY))
	if s.Rotation != 0 {
		sin, cos := math.Sincos(s.Rotation * math.Pi / 180)
		for i := start; i < len(dst); i++ {
			d := dst[i].Sub(c)
			dst[i] = c.Add(gamemath.V(d.X*cos-d.Y*sin, d.X*sin+d.Y*cos))
		}
	}
	return dst
}

// GradientStops returns the three fill colors of an archetype, top-left to
// bottom-right.
func GradientStops(a deform.Archetype, base color.RGBA) [3]color.RGBA {
	alphas := cfg.Ball.GradientStops[a.Key()]
	var out [3]color.RGBA
	switch len(alphas) {
	case 0:
		return [3]color.RGBA{base, base, base}
	case 1:
		alphas = []float64{alphas[0], alphas[0], alphas[0]}
	case 2:
		alphas = []float64{alphas[0], (alphas[0] + alphas[1]) / 2, alphas[1]}
	}
	for i := range out {
		out[i] = cfg.WithAlpha(base, alphas[i])
	}
	return out
}

// fillOutline fans triangles from c over a star-shaped outline and shades
// them with the gradient shader.
func fillOutline(screen *ebiten.Image, pts []gamemath.Vec, c gamemath.Vec, stops [3]color.RGBA, opacity float64) {
	if len(pts) < 3 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	vertices = vertices[:0]
	indices = indices[:0]
	vertices = append(vertices, vertex(c, opacity))
	for i, p := range pts {
		vertices = append(vertices, vertex(p, opacity))
		next := i + 2
		if i == len(pts)-1 {
			next = 1
		}
		indices = append(indices, 0, uint16(i+1), uint16(next))
	}

	if assets.GradientShader == nil {
		mid := stops[1]
		for i := range vertices {
			vertices[i].ColorR = float32(mid.R) / 255
			vertices[i].ColorG = float32(mid.G) / 255
			vertices[i].ColorB = float32(mid.B) / 255
			vertices[i].ColorA = float32(mid.A) / 255 * float32(opacity)
		}
		screen.DrawTriangles(vertices, indices, whitePixel(), nil)
		return
	}

	shaderTriOp.Uniforms = map[string]any{
		"Color0": colorVec(stops[0]),
		"Color1": colorVec(stops[1]),
		"Color2": colorVec(stops[2]),
		"Origin": []float32{float32(minX), float32(minY)},
		"Size":   []float32{float32(math.Max(1, maxX-minX)), float32(math.Max(1, maxY-minY))},
	}
	screen.DrawTrianglesShader(vertices, indices, assets.GradientShader, shaderTriOp)
}

func vertex(p gamemath.Vec, opacity float64) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(p.X),
		DstY:   float32(p.Y),
		SrcX:   1,
		SrcY:   1,
		ColorR: 1,
		ColorG: 1,
		ColorB: 1,
		ColorA: float32(opacity),
	}
}

var pixel *ebiten.Image

func whitePixel() *ebiten.Image {
	if pixel == nil {
		pixel = ebiten.NewImage(3, 3)
		pixel.Fill(color.White)
	}
	return pixel
}

// colorVec converts a premultiplied color to a shader vec4.
func colorVec(c color.RGBA) []float32 {
	return []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

// getPreferences returns the scene's preferences, or the process-wide ones.
func getPreferences(ecs *ecs.ECS) components.PreferencesData {
	if entry, ok := components.Preferences.First(ecs.World); ok {
		return *components.Preferences.Get(entry)
	}
	return Preferences()
}
