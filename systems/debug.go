package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/sphereballs/components"
	cfg "github.com/automoto/sphereballs/config"
	"github.com/automoto/sphereballs/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if cfg.Debug.ShowHitbox {
		drawHitboxes(ecs, screen)
	}
	if cfg.Debug.ShowState {
		drawBallState(ecs, screen)
	}
}

// drawHitboxes outlines every object in the hit test space
func drawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvBall) {
			c = color.RGBA{255, 0, 255, 255}
		}
		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}

func drawBallState(ecs *ecs.ECS, screen *ebiten.Image) {
	ball, ok := GetBall(ecs)
	if !ok {
		return
	}
	s := ball.Controller.State()
	t := ball.Controller.Target()
	msg := fmt.Sprintf(
		"%s %s pending=%d\nscale %.2f,%.2f -> %.2f,%.2f\noffset %.0f,%.0f -> %.0f,%.0f\ncompression %.2f -> %.2f\nTPS %.0f",
		ball.Archetype, ball.Controller.Phase(), ball.Controller.Pending(),
		s.ScaleX, s.ScaleY, t.ScaleX, t.ScaleY,
		s.OffsetX, s.OffsetY, t.OffsetX, t.OffsetY,
		s.Compression, t.Compression,
		ebiten.ActualTPS(),
	)
	ebitenutil.DebugPrintAt(screen, msg, 4, int(cfg.Play.TopBarHeight))
}
