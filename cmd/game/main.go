// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"path/filepath"

	"go-endless-runner/internal/config"
	"go-endless-runner/internal/engine"
	"go-endless-runner/internal/event"
	"go-endless-runner/internal/game"
	"go-endless-runner/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

type App struct {
	game   *game.WalkTheDog
	button *ui.RestartButton
}

func (a *App) Update() error {
	a.button.Update()
	a.game.Update(engine.PollKeys())
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.game.Draw(engine.NewRenderer(screen))
	a.button.Draw(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	face, err := ui.LoadFace(filepath.Join("assets", "fonts", "kenney_future.ttf"), 24)
	if err != nil {
		log.Fatal(err)
	}

	dispatcher := event.NewDispatcher()
	button := ui.NewRestartButton(face)
	dispatcher.Subscribe(event.GameOver, button)
	dispatcher.Subscribe(event.NewGameStarted, button)

	g := game.NewWalkTheDog(dispatcher, button.Restart())
	if err := g.Initialize(); err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Walk the Dog")
	if err := ebiten.RunGame(&App{game: g, button: button}); err != nil {
		log.Fatal(err)
	}
}
