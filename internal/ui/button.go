// internal/ui/button.go
package ui

import (
	"image/color"

	"go-endless-runner/internal/config"
	"go-endless-runner/internal/engine"
	"go-endless-runner/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font"
)

const (
	buttonWidth  = 160
	buttonHeight = 48
	buttonLabel  = "New Game"
	bannerLabel  = "GAME OVER"
)

// RestartButton is the "new game" affordance shown on game over. It is the
// single producer of the restart signal: one signal per game-over episode,
// duplicate clicks are dropped.
type RestartButton struct {
	rect    engine.Rect
	face    font.Face
	signal  chan struct{}
	visible bool
	clicked bool
}

func NewRestartButton(face font.Face) *RestartButton {
	return &RestartButton{
		rect: engine.NewRect(
			(config.ScreenWidth-buttonWidth)/2,
			(config.ScreenHeight-buttonHeight)/2,
			buttonWidth,
			buttonHeight,
		),
		face:   face,
		signal: make(chan struct{}, 1),
	}
}

// Restart is the consumer end polled by the game once per GameOver tick.
func (b *RestartButton) Restart() <-chan struct{} {
	return b.signal
}

// OnEvent shows the button when the game ends and hides it again once a new
// game starts. Showing drains any stale signal left from a prior episode.
func (b *RestartButton) OnEvent(e event.Event) {
	switch e.Type {
	case event.GameOver:
		b.visible = true
		b.clicked = false
		select {
		case <-b.signal:
		default:
		}
	case event.NewGameStarted:
		b.visible = false
	}
}

// Update checks for a click (or Enter) and fires the one-shot signal. The
// send never blocks.
func (b *RestartButton) Update() {
	if !b.visible || b.clicked {
		return
	}
	pressed := inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if x >= b.rect.X && x < b.rect.Right() && y >= b.rect.Y && y < b.rect.Bottom() {
			pressed = true
		}
	}
	if !pressed {
		return
	}
	select {
	case b.signal <- struct{}{}:
		b.clicked = true
	default:
	}
}

func (b *RestartButton) Draw(screen *ebiten.Image) {
	if !b.visible {
		return
	}

	banner := text.BoundString(b.face, bannerLabel)
	text.Draw(screen, bannerLabel, b.face,
		(config.ScreenWidth-banner.Dx())/2,
		b.rect.Y-buttonHeight,
		color.RGBA{200, 30, 30, 255})

	vector.DrawFilledRect(screen,
		float32(b.rect.X), float32(b.rect.Y),
		float32(b.rect.Width), float32(b.rect.Height),
		color.RGBA{230, 230, 230, 255}, false)
	vector.StrokeRect(screen,
		float32(b.rect.X), float32(b.rect.Y),
		float32(b.rect.Width), float32(b.rect.Height),
		2, color.RGBA{60, 60, 60, 255}, false)

	label := text.BoundString(b.face, buttonLabel)
	text.Draw(screen, buttonLabel, b.face,
		b.rect.X+(b.rect.Width-label.Dx())/2,
		b.rect.Y+(b.rect.Height+label.Dy())/2,
		color.RGBA{20, 20, 30, 255})
}
