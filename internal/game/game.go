// internal/game/game.go
package game

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"go-endless-runner/internal/config"
	"go-endless-runner/internal/engine"
	"go-endless-runner/internal/event"
	"go-endless-runner/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
)

// ErrAlreadyInitialized is returned when Initialize is called twice on the
// same game instance.
var ErrAlreadyInitialized = errors.New("game is already initialized")

type lifecycleTag uint8

const (
	phaseReady lifecycleTag = iota
	phaseWalking
	phaseGameOver
)

// lifecycleState is one closed variant of the outer machine; every variant
// owns the same Walk.
type lifecycleState struct {
	tag  lifecycleTag
	walk *Walk
}

// WalkTheDog is the playable game. The zero phase is "not initialized";
// Initialize must be called exactly once before Update/Draw do anything.
type WalkTheDog struct {
	machine    *lifecycleState
	dispatcher *event.Dispatcher
	restart    <-chan struct{}
}

// NewWalkTheDog wires the game to the lifecycle event bus and the restart
// signal produced by the UI.
func NewWalkTheDog(dispatcher *event.Dispatcher, restart <-chan struct{}) *WalkTheDog {
	if dispatcher == nil {
		panic("dispatcher cannot be nil")
	}
	return &WalkTheDog{dispatcher: dispatcher, restart: restart}
}

// Initialize loads every asset concurrently and builds the Ready world.
func (g *WalkTheDog) Initialize() error {
	if g.machine != nil {
		return ErrAlreadyInitialized
	}

	audio := engine.NewAudio()

	var (
		playerSheet     *engine.Sheet
		tileSheet       *engine.Sheet
		playerImage     *ebiten.Image
		backgroundImage *ebiten.Image
		stoneImage      *ebiten.Image
		tilesImage      *ebiten.Image
		jumpSound       *engine.Sound
		backgroundMusic *engine.Sound
	)

	var eg errgroup.Group
	eg.Go(func() (err error) {
		playerSheet, err = engine.LoadSheet(filepath.Join("assets", "pix", "rhb.json"))
		return err
	})
	eg.Go(func() (err error) {
		playerImage, err = engine.LoadImage(filepath.Join("assets", "pix", "rhb.png"))
		return err
	})
	eg.Go(func() (err error) {
		backgroundImage, err = engine.LoadImage(filepath.Join("assets", "pix", "BG.png"))
		return err
	})
	eg.Go(func() (err error) {
		stoneImage, err = engine.LoadImage(filepath.Join("assets", "pix", "Stone.png"))
		return err
	})
	eg.Go(func() (err error) {
		tileSheet, err = engine.LoadSheet(filepath.Join("assets", "pix", "tiles.json"))
		return err
	})
	eg.Go(func() (err error) {
		tilesImage, err = engine.LoadImage(filepath.Join("assets", "pix", "tiles.png"))
		return err
	})
	eg.Go(func() (err error) {
		jumpSound, err = audio.LoadSound(filepath.Join("assets", "sound", "SFX_Jump_23.mp3"))
		return err
	})
	eg.Go(func() (err error) {
		backgroundMusic, err = audio.LoadSound(filepath.Join("assets", "sound", "background_song.mp3"))
		return err
	})
	if err := eg.Wait(); err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}

	if err := audio.PlayLooping(backgroundMusic); err != nil {
		log.Printf("error playing background music: %v", err)
	}

	boy := NewPlayer(playerSheet, playerImage, audio, jumpSound)
	obstacleSheet := engine.NewSpriteSheet(tileSheet, tilesImage)
	backgroundWidth := backgroundImage.Bounds().Dx()
	backgrounds := [2]*engine.Image{
		engine.NewImage(backgroundImage, engine.Point{X: 0, Y: 0}),
		engine.NewImage(backgroundImage, engine.Point{X: backgroundWidth, Y: 0}),
	}

	walk := NewWalk(boy, backgrounds, obstacleSheet, stoneImage, utils.NewPRNGService(0))
	g.machine = &lifecycleState{tag: phaseReady, walk: walk}
	return nil
}

// Update advances one tick. It owns all mutable state for the duration of
// the call; nothing here blocks.
func (g *WalkTheDog) Update(keys *engine.KeyState) {
	if g.machine == nil {
		return
	}
	next := g.transition(*g.machine, keys)
	g.machine = &next
}

func (g *WalkTheDog) transition(state lifecycleState, keys *engine.KeyState) lifecycleState {
	switch state.tag {
	case phaseReady:
		return g.updateReady(state, keys)
	case phaseWalking:
		return g.updateWalking(state, keys)
	default:
		return g.updateGameOver(state)
	}
}

func (g *WalkTheDog) updateReady(state lifecycleState, keys *engine.KeyState) lifecycleState {
	state.walk.boy.Update()
	if keys.IsPressed(ebiten.KeyArrowRight) {
		state.walk.boy.RunRight()
		state.tag = phaseWalking
	}
	return state
}

func (g *WalkTheDog) updateWalking(state lifecycleState, keys *engine.KeyState) lifecycleState {
	walk := state.walk
	if keys.IsPressed(ebiten.KeySpace) {
		walk.boy.Jump()
	}
	if keys.IsPressed(ebiten.KeyArrowDown) {
		walk.boy.Slide()
	}
	walk.boy.Update()

	velocity := walk.Velocity()

	first, second := walk.backgrounds[0], walk.backgrounds[1]
	first.MoveHorizontally(velocity)
	second.MoveHorizontally(velocity)
	if first.Right() < 0 {
		first.SetX(second.Right())
	}
	if second.Right() < 0 {
		second.SetX(first.Right())
	}

	// Move everything first, then prune, then collide: collisions run
	// against this tick's final positions and Draw never mutates state.
	for _, obstacle := range walk.obstacles {
		obstacle.MoveHorizontally(velocity)
	}
	kept := walk.obstacles[:0]
	for _, obstacle := range walk.obstacles {
		if obstacle.Right() > 0 {
			kept = append(kept, obstacle)
		}
	}
	walk.obstacles = kept
	for _, obstacle := range walk.obstacles {
		obstacle.CheckIntersection(walk.boy)
	}

	if walk.timeline < config.TimelineMinimum {
		walk.generateNextSegment()
	} else {
		// Obstacles scroll left, so the timeline has to track them.
		walk.timeline += velocity
	}

	if walk.KnockedOut() {
		g.dispatcher.Dispatch(event.Event{Type: event.GameOver})
		state.tag = phaseGameOver
	}
	return state
}

// updateGameOver polls the restart signal without blocking; with no signal
// pending the state is returned unchanged.
func (g *WalkTheDog) updateGameOver(state lifecycleState) lifecycleState {
	select {
	case <-g.restart:
		state.walk = state.walk.reset()
		state.tag = phaseReady
		g.dispatcher.Dispatch(event.Event{Type: event.NewGameStarted})
	default:
	}
	return state
}

// Draw renders the frame: clear, backgrounds, player, obstacles. The order
// is the same in every phase; GameOver keeps showing the frozen last frame.
func (g *WalkTheDog) Draw(r *engine.Renderer) {
	r.Clear(engine.NewRect(0, 0, config.ScreenWidth, config.ScreenHeight))
	if g.machine != nil {
		g.machine.walk.Draw(r)
	}
}
