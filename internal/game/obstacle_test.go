// internal/game/obstacle_test.go
package game

import (
	"testing"

	"go-endless-runner/internal/config"
	"go-endless-runner/internal/engine"
)

// testTileSheet covers the three floating-platform sprites with made-up but
// consistent atlas coordinates.
func testTileSheet() *engine.SpriteSheet {
	frames := map[string]engine.Cell{
		"13.png": {Frame: engine.SheetRect{X: 0, Y: 0, W: 128, H: 93}},
		"14.png": {Frame: engine.SheetRect{X: 128, Y: 0, W: 128, H: 93}},
		"15.png": {Frame: engine.SheetRect{X: 256, Y: 0, W: 128, H: 93}},
	}
	return engine.NewSpriteSheet(&engine.Sheet{Frames: frames}, nil)
}

func TestBarrierKnocksOutOnContact(t *testing.T) {
	p := newTestPlayer()
	p.RunRight()
	box := p.BoundingBox()
	barrier := NewBarrier(engine.NewSizedImage(nil, engine.Point{X: box.X, Y: box.Y}, 50, 50))

	barrier.CheckIntersection(p)
	if p.state.tag != stateFalling {
		t.Errorf("tag = %d, want falling after hitting a barrier", p.state.tag)
	}
}

func TestBarrierIgnoresDistantPlayer(t *testing.T) {
	p := newTestPlayer()
	p.RunRight()
	barrier := NewBarrier(engine.NewSizedImage(nil, engine.Point{X: 5000, Y: config.Floor}, 50, 50))

	barrier.CheckIntersection(p)
	if p.state.tag != stateRunning {
		t.Errorf("tag = %d, want running", p.state.tag)
	}
}

func TestPlatformLandsDescendingPlayer(t *testing.T) {
	p := newTestPlayer()
	p.state = playerState{
		tag: stateJumping,
		ctx: playerContext{position: engine.Point{X: 38, Y: 300}, velocity: engine.Point{Y: 5}},
	}
	platform := createFloatingPlatform(testTileSheet(), engine.Point{X: 100, Y: 400})

	platform.CheckIntersection(p)
	if p.state.tag != stateRunning {
		t.Fatalf("tag = %d, want running after landing", p.state.tag)
	}
	if want := 400 - config.PlayerHeight; p.PosY() != want {
		t.Errorf("PosY = %d, want %d", p.PosY(), want)
	}
}

func TestPlatformKnocksOutAscendingPlayer(t *testing.T) {
	p := newTestPlayer()
	p.state = playerState{
		tag: stateJumping,
		ctx: playerContext{position: engine.Point{X: 38, Y: 450}, velocity: engine.Point{Y: -5}},
	}
	platform := createFloatingPlatform(testTileSheet(), engine.Point{X: 100, Y: 400})

	platform.CheckIntersection(p)
	if p.state.tag != stateFalling {
		t.Errorf("tag = %d, want falling after hitting the platform from below", p.state.tag)
	}
}

func TestPlatformKnocksOutPlayerBelowTop(t *testing.T) {
	p := newTestPlayer()
	p.state = playerState{
		tag: stateRunning,
		ctx: playerContext{position: engine.Point{X: 38, Y: 430}, velocity: engine.Point{Y: 5}},
	}
	platform := createFloatingPlatform(testTileSheet(), engine.Point{X: 100, Y: 400})

	platform.CheckIntersection(p)
	if p.state.tag != stateFalling {
		t.Errorf("tag = %d, want falling; descending below the top is not a landing", p.state.tag)
	}
}

func TestPlatformMoveShiftsEveryBox(t *testing.T) {
	platform := createFloatingPlatform(testTileSheet(), engine.Point{X: 100, Y: 400})
	before := make([]engine.Rect, len(platform.boundingBoxes))
	copy(before, platform.boundingBoxes)

	platform.MoveHorizontally(-30)
	if platform.position.X != 70 {
		t.Errorf("position.X = %d, want 70", platform.position.X)
	}
	for i, box := range platform.boundingBoxes {
		if box.X != before[i].X-30 {
			t.Errorf("box %d X = %d, want %d", i, box.X, before[i].X-30)
		}
		if box.Y != before[i].Y || box.Width != before[i].Width {
			t.Errorf("box %d changed shape: %+v", i, box)
		}
	}
}

func TestPlatformRightIsLastBoxEdge(t *testing.T) {
	platform := createFloatingPlatform(testTileSheet(), engine.Point{X: 100, Y: 400})
	if want := 100 + platformWidth; platform.Right() != want {
		t.Errorf("Right = %d, want %d", platform.Right(), want)
	}
}

func TestPlatformFirstBoxWinsTieBreak(t *testing.T) {
	// The left end cap is the first box; a descending player over it lands
	// on that box even when the middle box also intersects.
	p := newTestPlayer()
	p.state = playerState{
		tag: stateJumping,
		ctx: playerContext{position: engine.Point{X: 38, Y: 300}, velocity: engine.Point{Y: 5}},
	}
	platform := createFloatingPlatform(testTileSheet(), engine.Point{X: 100, Y: 400})

	platform.CheckIntersection(p)
	if want := platform.boundingBoxes[0].Y - config.PlayerHeight; p.PosY() != want {
		t.Errorf("PosY = %d, want %d from first intersecting box", p.PosY(), want)
	}
}
