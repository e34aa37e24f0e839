// internal/engine/renderer.go
package engine

import (
	"image"

	"go-endless-runner/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer wraps the frame target for one Draw call. Draw operations never
// mutate game state.
type Renderer struct {
	screen *ebiten.Image
}

func NewRenderer(screen *ebiten.Image) *Renderer {
	return &Renderer{screen: screen}
}

// Clear fills the given area with the background color.
func (r *Renderer) Clear(rect Rect) {
	vector.DrawFilledRect(r.screen,
		float32(rect.X), float32(rect.Y),
		float32(rect.Width), float32(rect.Height),
		config.BackgroundColor, false)
}

// DrawImage copies the source sub-rectangle of img to the destination
// rectangle. Source and destination are the same size, no scaling happens.
func (r *Renderer) DrawImage(img *ebiten.Image, source, destination Rect) {
	sub := img.SubImage(image.Rect(source.X, source.Y, source.Right(), source.Bottom())).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(destination.X), float64(destination.Y))
	r.screen.DrawImage(sub, op)
}

// DrawRect strokes a rectangle outline, used for collision-box debugging.
func (r *Renderer) DrawRect(rect Rect) {
	vector.StrokeRect(r.screen,
		float32(rect.X), float32(rect.Y),
		float32(rect.Width), float32(rect.Height),
		1, config.DebugBoxColor, false)
}
