// internal/game/obstacle.go
package game

import (
	"go-endless-runner/internal/config"
	"go-endless-runner/internal/engine"
)

// Obstacle is the capability every obstacle kind offers. The kinds are fixed
// at design time: Barrier and Platform.
type Obstacle interface {
	// CheckIntersection may knock the player out or land it.
	CheckIntersection(player *Player)
	Draw(r *engine.Renderer)
	MoveHorizontally(distance int)
	// Right is the obstacle's rightmost x, used for pruning and the
	// generation timeline.
	Right() int
}

// Barrier is a single solid image. Touching it from any direction knocks
// the player out.
type Barrier struct {
	image *engine.Image
}

func NewBarrier(image *engine.Image) *Barrier {
	return &Barrier{image: image}
}

func (b *Barrier) CheckIntersection(player *Player) {
	if player.BoundingBox().Intersects(b.image.BoundingBox()) {
		player.KnockOut()
	}
}

func (b *Barrier) Draw(r *engine.Renderer) {
	b.image.Draw(r)
}

func (b *Barrier) MoveHorizontally(distance int) {
	b.image.MoveHorizontally(distance)
}

func (b *Barrier) Right() int {
	return b.image.Right()
}

// Platform is a row of atlas sprites with several bounding boxes: narrow
// end caps the player collides with and a wide middle it can land on.
type Platform struct {
	sheet         *engine.SpriteSheet
	sprites       []engine.Cell
	boundingBoxes []engine.Rect
	position      engine.Point
}

// NewPlatform resolves the sprite cells and shifts the relative bounding
// boxes to the platform's position. Unknown sprite names are skipped.
func NewPlatform(sheet *engine.SpriteSheet, position engine.Point, spriteNames []string, boundingBoxes []engine.Rect) *Platform {
	sprites := make([]engine.Cell, 0, len(spriteNames))
	for _, name := range spriteNames {
		if cell, ok := sheet.Cell(name); ok {
			sprites = append(sprites, cell)
		}
	}
	boxes := make([]engine.Rect, 0, len(boundingBoxes))
	for _, box := range boundingBoxes {
		boxes = append(boxes, engine.NewRect(
			box.X+position.X,
			box.Y+position.Y,
			box.Width,
			box.Height,
		))
	}
	return &Platform{
		sheet:         sheet,
		sprites:       sprites,
		boundingBoxes: boxes,
		position:      position,
	}
}

// CheckIntersection applies the landing tie-break on the first intersecting
// box: moving down and still above the platform top counts as a landing,
// anything else is a knock-out.
func (p *Platform) CheckIntersection(player *Player) {
	playerBox := player.BoundingBox()
	for _, box := range p.boundingBoxes {
		if !playerBox.Intersects(box) {
			continue
		}
		if player.VelocityY() > 0 && player.PosY() < p.position.Y {
			player.LandOn(box.Y)
		} else {
			player.KnockOut()
		}
		return
	}
}

func (p *Platform) Draw(r *engine.Renderer) {
	x := 0
	for _, sprite := range p.sprites {
		p.sheet.Draw(r,
			engine.NewRect(sprite.Frame.X, sprite.Frame.Y, sprite.Frame.W, sprite.Frame.H),
			engine.NewRect(p.position.X+x, p.position.Y, sprite.Frame.W, sprite.Frame.H),
		)
		x += sprite.Frame.W
	}
	if config.DebugDrawBoxes {
		for _, box := range p.boundingBoxes {
			r.DrawRect(box)
		}
	}
}

func (p *Platform) MoveHorizontally(distance int) {
	p.position.X += distance
	for i := range p.boundingBoxes {
		p.boundingBoxes[i].X += distance
	}
}

func (p *Platform) Right() int {
	if len(p.boundingBoxes) == 0 {
		return 0
	}
	return p.boundingBoxes[len(p.boundingBoxes)-1].Right()
}
