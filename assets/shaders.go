package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// GradientShader fills the ball and the background with a diagonal gradient
	GradientShader *ebiten.Shader
	// RadialShader draws soft ambient particles
	RadialShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error
	if GradientShader, err = loadShader("shaders/gradient.kage"); err != nil {
		return err
	}
	if RadialShader, err = loadShader("shaders/radial.kage"); err != nil {
		return err
	}
	return nil
}

func loadShader(name string) (*ebiten.Shader, error) {
	src, err := shaderFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	return s, nil
}
