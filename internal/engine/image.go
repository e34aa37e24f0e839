// internal/engine/image.go
package engine

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Image is a whole decoded image placed at a screen position. The handle is
// shared and never mutated; the position and bounding box scroll together.
type Image struct {
	image       *ebiten.Image
	position    Point
	boundingBox Rect
}

func NewImage(img *ebiten.Image, position Point) *Image {
	width, height := 0, 0
	if img != nil {
		bounds := img.Bounds()
		width, height = bounds.Dx(), bounds.Dy()
	}
	return NewSizedImage(img, position, width, height)
}

// NewSizedImage builds an Image with an explicit size. Simulation code only
// needs the bounding box, so tests pass a nil handle here.
func NewSizedImage(img *ebiten.Image, position Point, width, height int) *Image {
	return &Image{
		image:       img,
		position:    position,
		boundingBox: NewRect(position.X, position.Y, width, height),
	}
}

func (m *Image) Draw(r *Renderer) {
	r.DrawImage(m.image,
		NewRect(0, 0, m.boundingBox.Width, m.boundingBox.Height),
		m.boundingBox)
}

func (m *Image) BoundingBox() Rect {
	return m.boundingBox
}

func (m *Image) MoveHorizontally(distance int) {
	m.position.X += distance
	m.boundingBox.X += distance
}

func (m *Image) SetX(x int) {
	m.position.X = x
	m.boundingBox.X = x
}

func (m *Image) Right() int {
	return m.boundingBox.Right()
}

func (m *Image) Width() int {
	return m.boundingBox.Width
}
