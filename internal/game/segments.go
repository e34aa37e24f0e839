// internal/game/segments.go
package game

import (
	"go-endless-runner/internal/engine"

	"github.com/hajimehoshi/ebiten/v2"
)

// A segment is a pre-composed cluster of obstacles placed as one unit.
// Offsets below are relative to the segment's left edge.
const (
	stoneOnGround = 546
	lowPlatform   = 400

	firstStoneOffset    = 150
	firstPlatformOffset = 200
	secondStoneOffset   = 350

	platformEdgeWidth  = 60
	platformWidth      = 384
	platformEdgeHeight = 54
	platformHeight     = 93
)

var floatingPlatformSprites = []string{"13.png", "14.png", "15.png"}

// floatingPlatformBoxes: two narrow end caps and a wide middle, so the
// player lands on the middle and collides on the ends.
func floatingPlatformBoxes() []engine.Rect {
	return []engine.Rect{
		engine.NewRect(0, 0, platformEdgeWidth, platformEdgeHeight),
		engine.NewRect(platformEdgeWidth, 0, platformWidth-platformEdgeWidth*2, platformHeight),
		engine.NewRect(platformWidth-platformEdgeWidth, 0, platformEdgeWidth, platformEdgeHeight),
	}
}

func createFloatingPlatform(sheet *engine.SpriteSheet, position engine.Point) *Platform {
	return NewPlatform(sheet, position, floatingPlatformSprites, floatingPlatformBoxes())
}

// stoneAndPlatform places a stone on the ground with a low platform behind
// it, starting at offsetX.
func stoneAndPlatform(stone *ebiten.Image, sheet *engine.SpriteSheet, offsetX int) []Obstacle {
	return []Obstacle{
		NewBarrier(engine.NewImage(stone, engine.Point{
			X: offsetX + firstStoneOffset,
			Y: stoneOnGround,
		})),
		createFloatingPlatform(sheet, engine.Point{
			X: offsetX + firstPlatformOffset,
			Y: lowPlatform,
		}),
	}
}

// platformAndStone mirrors the arrangement: the platform comes first and the
// stone waits underneath its far end.
func platformAndStone(stone *ebiten.Image, sheet *engine.SpriteSheet, offsetX int) []Obstacle {
	return []Obstacle{
		createFloatingPlatform(sheet, engine.Point{
			X: offsetX + firstPlatformOffset,
			Y: lowPlatform,
		}),
		NewBarrier(engine.NewImage(stone, engine.Point{
			X: offsetX + secondStoneOffset,
			Y: stoneOnGround,
		})),
	}
}

// segmentTemplate instantiates one segment at the given offset.
type segmentTemplate func(stone *ebiten.Image, sheet *engine.SpriteSheet, offsetX int) []Obstacle

// segmentCatalog is the closed set of templates the generator picks from.
var segmentCatalog = []segmentTemplate{
	stoneAndPlatform,
	platformAndStone,
}
