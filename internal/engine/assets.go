// internal/engine/assets.go
package engine

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// LoadImage decodes an image file into a GPU-backed handle.
func LoadImage(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	return img, nil
}

// LoadSheet reads a sprite-atlas description file.
func LoadSheet(path string) (*Sheet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite sheet file: %w", err)
	}
	var sheet Sheet
	if err := json.Unmarshal(raw, &sheet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sprite sheet %s: %w", path, err)
	}
	if len(sheet.Frames) == 0 {
		return nil, fmt.Errorf("sprite sheet %s has no frames", path)
	}
	return &sheet, nil
}
