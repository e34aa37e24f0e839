// internal/game/player.go
package game

import (
	"fmt"
	"log"

	"go-endless-runner/internal/config"
	"go-endless-runner/internal/engine"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	idleFrameName    = "Idle"
	runFrameName     = "Run"
	slidingFrameName = "Slide"
	jumpingFrameName = "Jump"
	fallingFrameName = "Dead"
)

// The sheet sprites are trimmed wider than the body; the collision box is
// shrunk by these insets.
const (
	boundingBoxXOffset     = 18
	boundingBoxYOffset     = 14
	boundingBoxWidthOffset = 28
)

// EventKind enumerates everything that can happen to the player.
type EventKind uint8

const (
	EventRun EventKind = iota
	EventSlide
	EventJump
	EventKnockOut
	EventLand
	EventUpdate
)

// Event is a player input or tick. Position carries the landing surface y
// for EventLand and is ignored otherwise.
type Event struct {
	Kind     EventKind
	Position int
}

// Land builds a landing event for the given surface y.
func Land(position int) Event {
	return Event{Kind: EventLand, Position: position}
}

type stateTag uint8

const (
	stateIdle stateTag = iota
	stateRunning
	stateSliding
	stateJumping
	stateFalling
	stateKnockedOut
)

// playerState is one closed variant of the avatar state machine: a tag plus
// the animation context owned exclusively by that state. Values are copied
// on every transition, so a transition replaces the state atomically.
type playerState struct {
	tag stateTag
	ctx playerContext
}

// transition is total over (tag, event): every unmatched pair returns the
// state unchanged.
func (s playerState) transition(event Event) playerState {
	switch {
	case s.tag == stateIdle && event.Kind == EventRun:
		return s.run()
	case s.tag == stateRunning && event.Kind == EventJump:
		return s.jump()
	case s.tag == stateRunning && event.Kind == EventSlide:
		return s.slide()
	case event.Kind == EventUpdate && s.tag != stateKnockedOut:
		return s.update()
	case event.Kind == EventKnockOut &&
		(s.tag == stateRunning || s.tag == stateJumping || s.tag == stateSliding):
		return s.knockOut()
	case event.Kind == EventLand &&
		(s.tag == stateRunning || s.tag == stateJumping || s.tag == stateSliding):
		return s.landOn(event.Position)
	default:
		return s
	}
}

func (s playerState) run() playerState {
	return playerState{tag: stateRunning, ctx: s.ctx.resetFrame().runRight()}
}

func (s playerState) jump() playerState {
	return playerState{
		tag: stateJumping,
		ctx: s.ctx.resetFrame().setVerticalVelocity(config.JumpSpeed).playJumpSound(),
	}
}

func (s playerState) slide() playerState {
	return playerState{tag: stateSliding, ctx: s.ctx.resetFrame()}
}

func (s playerState) knockOut() playerState {
	return playerState{tag: stateFalling, ctx: s.ctx.resetFrame().stop()}
}

// stand ends a slide once its frame budget ran out.
func (s playerState) stand() playerState {
	return playerState{tag: stateRunning, ctx: s.ctx.resetFrame()}
}

func (s playerState) landOn(position int) playerState {
	switch s.tag {
	case stateJumping:
		return playerState{tag: stateRunning, ctx: s.ctx.resetFrame().setOn(position)}
	case stateRunning:
		return playerState{tag: stateRunning, ctx: s.ctx.setOn(position)}
	case stateSliding:
		// Landing mid-slide keeps the slide going.
		return playerState{tag: stateSliding, ctx: s.ctx.setOn(position)}
	default:
		return s
	}
}

// update advances one physics tick. Jumping, Sliding and Falling have tick
// outcomes that are transitions of their own.
func (s playerState) update() playerState {
	switch s.tag {
	case stateIdle:
		s.ctx = s.ctx.update(config.IdleFrames)
		return s
	case stateRunning:
		s.ctx = s.ctx.update(config.RunningFrames)
		return s
	case stateJumping:
		s.ctx = s.ctx.update(config.JumpingFrames)
		if s.ctx.position.Y >= config.Floor {
			// Natural landing on the ground, no platform involved.
			return s.landOn(config.ScreenHeight)
		}
		return s
	case stateSliding:
		s.ctx = s.ctx.update(config.SlidingFrames)
		if s.ctx.frame >= config.SlidingFrames {
			return s.stand()
		}
		return s
	case stateFalling:
		s.ctx = s.ctx.update(config.FallingFrames)
		if s.ctx.frame >= config.FallingFrames {
			return playerState{tag: stateKnockedOut, ctx: s.ctx}
		}
		return s
	default:
		return s
	}
}

func (s playerState) frameName() string {
	switch s.tag {
	case stateIdle:
		return idleFrameName
	case stateRunning:
		return runFrameName
	case stateSliding:
		return slidingFrameName
	case stateJumping:
		return jumpingFrameName
	default:
		return fallingFrameName
	}
}

// playerContext is the animation context: frame counter, position, velocity
// and the shared jump-sound handles. Methods return modified copies.
type playerContext struct {
	frame     uint8
	position  engine.Point
	velocity  engine.Point
	audio     *engine.Audio
	jumpSound *engine.Sound
}

func (c playerContext) update(frameCount uint8) playerContext {
	if c.velocity.Y < config.TerminalVelocity {
		c.velocity.Y += config.Gravity
	}
	if c.frame < frameCount {
		c.frame++
	} else {
		c.frame = 0
	}
	c.position.Y += c.velocity.Y
	if c.position.Y > config.Floor {
		c.position.Y = config.Floor
	}
	return c
}

func (c playerContext) resetFrame() playerContext {
	c.frame = 0
	return c
}

func (c playerContext) setVerticalVelocity(y int) playerContext {
	c.velocity.Y = y
	return c
}

func (c playerContext) runRight() playerContext {
	c.velocity.X += config.RunningSpeed
	return c
}

func (c playerContext) stop() playerContext {
	c.velocity.X = 0
	return c
}

func (c playerContext) setOn(position int) playerContext {
	c.position.Y = position - config.PlayerHeight
	return c
}

func (c playerContext) playJumpSound() playerContext {
	if err := c.audio.Play(c.jumpSound); err != nil {
		log.Printf("error playing jump sound: %v", err)
	}
	return c
}

// Player is the avatar: the state machine plus its sprite sheet and image.
type Player struct {
	state playerState
	sheet *engine.Sheet
	image *ebiten.Image
}

func NewPlayer(sheet *engine.Sheet, image *ebiten.Image, audio *engine.Audio, jumpSound *engine.Sound) *Player {
	return &Player{
		state: playerState{
			tag: stateIdle,
			ctx: playerContext{
				position:  engine.Point{X: config.StartingPoint, Y: config.Floor},
				audio:     audio,
				jumpSound: jumpSound,
			},
		},
		sheet: sheet,
		image: image,
	}
}

// Reset builds a fresh Idle player reusing the loaded resources.
func (p *Player) Reset() *Player {
	return NewPlayer(p.sheet, p.image, p.state.ctx.audio, p.state.ctx.jumpSound)
}

func (p *Player) RunRight() {
	p.state = p.state.transition(Event{Kind: EventRun})
}

func (p *Player) Slide() {
	p.state = p.state.transition(Event{Kind: EventSlide})
}

func (p *Player) Jump() {
	p.state = p.state.transition(Event{Kind: EventJump})
}

func (p *Player) KnockOut() {
	p.state = p.state.transition(Event{Kind: EventKnockOut})
}

func (p *Player) LandOn(position int) {
	p.state = p.state.transition(Land(position))
}

func (p *Player) Update() {
	p.state = p.state.transition(Event{Kind: EventUpdate})
}

func (p *Player) KnockedOut() bool {
	return p.state.tag == stateKnockedOut
}

// FrameName is the sheet key of the current sprite. One sprite is shown for
// three physics ticks.
func (p *Player) FrameName() string {
	return fmt.Sprintf("%s (%d).png", p.state.frameName(), (p.state.ctx.frame/3)+1)
}

// currentCell panics when the computed frame name has no sheet entry: that
// means the frame-count constants and the shipped atlas are out of sync.
func (p *Player) currentCell() engine.Cell {
	cell, ok := p.sheet.Cell(p.FrameName())
	if !ok {
		panic(fmt.Sprintf("sprite %q not found in player sheet", p.FrameName()))
	}
	return cell
}

// DestinationBox is where the current sprite lands on screen.
func (p *Player) DestinationBox() engine.Rect {
	cell := p.currentCell()
	return engine.NewRect(
		p.state.ctx.position.X+cell.SpriteSourceSize.X,
		p.state.ctx.position.Y+cell.SpriteSourceSize.Y,
		cell.Frame.W,
		cell.Frame.H,
	)
}

// BoundingBox is the collision box, inset from the destination box.
func (p *Player) BoundingBox() engine.Rect {
	box := p.DestinationBox()
	box.X += boundingBoxXOffset
	box.Width -= boundingBoxWidthOffset
	box.Y += boundingBoxYOffset
	box.Height -= boundingBoxYOffset
	return box
}

func (p *Player) Draw(r *engine.Renderer) {
	cell := p.currentCell()
	r.DrawImage(p.image,
		engine.NewRect(cell.Frame.X, cell.Frame.Y, cell.Frame.W, cell.Frame.H),
		p.DestinationBox())
	if config.DebugDrawBoxes {
		r.DrawRect(p.BoundingBox())
	}
}

func (p *Player) PosY() int {
	return p.state.ctx.position.Y
}

func (p *Player) VelocityY() int {
	return p.state.ctx.velocity.Y
}

// WalkingSpeed is the player's horizontal speed; the world scrolls by its
// negation.
func (p *Player) WalkingSpeed() int {
	return p.state.ctx.velocity.X
}
