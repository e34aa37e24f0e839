// internal/engine/sheet.go
package engine

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SheetRect mirrors one frame rectangle in the atlas JSON.
type SheetRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// SheetPoint mirrors the trimmed-sprite offset in the atlas JSON.
type SheetPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Cell describes a single named sprite inside a sheet.
type Cell struct {
	Frame            SheetRect  `json:"frame"`
	SpriteSourceSize SheetPoint `json:"spriteSourceSize"`
}

// Sheet is the decoded sprite-atlas description, keyed by sprite name.
type Sheet struct {
	Frames map[string]Cell `json:"frames"`
}

// Cell looks up a sprite by name.
func (s *Sheet) Cell(name string) (Cell, bool) {
	cell, ok := s.Frames[name]
	return cell, ok
}

// SpriteSheet couples a Sheet with its decoded atlas image. The handle is
// shared read-only between every platform that draws from it.
type SpriteSheet struct {
	sheet *Sheet
	image *ebiten.Image
}

func NewSpriteSheet(sheet *Sheet, image *ebiten.Image) *SpriteSheet {
	return &SpriteSheet{sheet: sheet, image: image}
}

func (s *SpriteSheet) Cell(name string) (Cell, bool) {
	return s.sheet.Cell(name)
}

func (s *SpriteSheet) Draw(r *Renderer, source, destination Rect) {
	r.DrawImage(s.image, source, destination)
}
