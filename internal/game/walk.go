// internal/game/walk.go
package game

import (
	"go-endless-runner/internal/config"
	"go-endless-runner/internal/engine"
	"go-endless-runner/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// Walk is the world aggregate: the player, the live obstacles, the two
// scrolling backgrounds and the generation timeline.
type Walk struct {
	boy           *Player
	backgrounds   [2]*engine.Image
	obstacles     []Obstacle
	obstacleSheet *engine.SpriteSheet
	stone         *ebiten.Image
	timeline      int
	rng           *utils.PRNGService
}

// NewWalk seeds the world with one starting segment at offset zero.
func NewWalk(boy *Player, backgrounds [2]*engine.Image, obstacleSheet *engine.SpriteSheet, stone *ebiten.Image, rng *utils.PRNGService) *Walk {
	obstacles := stoneAndPlatform(stone, obstacleSheet, 0)
	return &Walk{
		boy:           boy,
		backgrounds:   backgrounds,
		obstacles:     obstacles,
		obstacleSheet: obstacleSheet,
		stone:         stone,
		timeline:      rightmost(obstacles),
		rng:           rng,
	}
}

// reset rebuilds the world for a new run: fresh Idle player, fresh starting
// obstacles, backgrounds kept where they are.
func (w *Walk) reset() *Walk {
	obstacles := stoneAndPlatform(w.stone, w.obstacleSheet, 0)
	return &Walk{
		boy:           w.boy.Reset(),
		backgrounds:   w.backgrounds,
		obstacles:     obstacles,
		obstacleSheet: w.obstacleSheet,
		stone:         w.stone,
		timeline:      rightmost(obstacles),
		rng:           w.rng,
	}
}

// Velocity is the world scroll speed: everything moves left as fast as the
// player runs right.
func (w *Walk) Velocity() int {
	return -w.boy.WalkingSpeed()
}

func (w *Walk) KnockedOut() bool {
	return w.boy.KnockedOut()
}

// generateNextSegment appends one randomly chosen segment past the timeline
// and advances the timeline to the new rightmost edge.
func (w *Walk) generateNextSegment() {
	template := segmentCatalog[w.rng.Intn(len(segmentCatalog))]
	next := template(w.stone, w.obstacleSheet, w.timeline+config.ObstacleBuffer)
	w.timeline = rightmost(next)
	w.obstacles = append(w.obstacles, next...)
}

func (w *Walk) Draw(r *engine.Renderer) {
	for _, background := range w.backgrounds {
		background.Draw(r)
	}
	w.boy.Draw(r)
	for _, obstacle := range w.obstacles {
		obstacle.Draw(r)
	}
}

func rightmost(obstacles []Obstacle) int {
	right := 0
	for _, obstacle := range obstacles {
		if obstacle.Right() > right {
			right = obstacle.Right()
		}
	}
	return right
}
