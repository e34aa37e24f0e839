// cmd/sheet_viewer_raylib/main.go
package main

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"

	"go-endless-runner/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Standalone atlas inspector: pages through the cells of a sprite sheet so
// bounding boxes and trim offsets can be checked against the texture.
func main() {
	const screenWidth = 1024
	const screenHeight = 640
	const zoom = 3

	sheetPath := filepath.Join("assets", "pix", "tiles.json")
	texturePath := filepath.Join("assets", "pix", "tiles.png")

	sheet, err := engine.LoadSheet(sheetPath)
	if err != nil {
		log.Fatal(err)
	}
	names := make([]string, 0, len(sheet.Frames))
	for name := range sheet.Frames {
		names = append(names, name)
	}
	sort.Strings(names)

	rl.InitWindow(screenWidth, screenHeight, "Sheet Viewer | Left/Right - Page")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	texture := rl.LoadTexture(texturePath)
	defer rl.UnloadTexture(texture)

	current := 0
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyRight) {
			current = (current + 1) % len(names)
		}
		if rl.IsKeyPressed(rl.KeyLeft) {
			current = (current + len(names) - 1) % len(names)
		}

		cell, _ := sheet.Cell(names[current])
		frame := rl.NewRectangle(
			float32(cell.Frame.X), float32(cell.Frame.Y),
			float32(cell.Frame.W), float32(cell.Frame.H),
		)

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(10, 10, 20, 255))

		// Full atlas on the left with the current cell outlined.
		rl.DrawTexture(texture, 20, 60, rl.White)
		rl.DrawRectangleLines(
			20+int32(cell.Frame.X), 60+int32(cell.Frame.Y),
			int32(cell.Frame.W), int32(cell.Frame.H),
			rl.Red,
		)

		// Zoomed copy of the current cell on the right.
		dest := rl.NewRectangle(
			float32(texture.Width)+60, 60,
			frame.Width*zoom, frame.Height*zoom,
		)
		rl.DrawTexturePro(texture, frame, dest, rl.NewVector2(0, 0), 0, rl.White)
		rl.DrawRectangleLines(
			int32(dest.X), int32(dest.Y),
			int32(dest.Width), int32(dest.Height),
			rl.Green,
		)

		caption := fmt.Sprintf("%d/%d  %s  frame=%dx%d at (%d,%d)  trim=(%d,%d)",
			current+1, len(names), names[current],
			cell.Frame.W, cell.Frame.H, cell.Frame.X, cell.Frame.Y,
			cell.SpriteSourceSize.X, cell.SpriteSourceSize.Y,
		)
		rl.DrawText(caption, 20, 20, 20, rl.RayWhite)

		rl.EndDrawing()
	}
}
