// internal/engine/sheet_test.go
package engine

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleAtlas = `{
  "frames": {
    "Idle (1).png": {
      "frame": {"x": 0, "y": 0, "w": 160, "h": 136},
      "spriteSourceSize": {"x": 58, "y": 28, "w": 160, "h": 136}
    },
    "Run (1).png": {
      "frame": {"x": 160, "y": 0, "w": 160, "h": 136},
      "spriteSourceSize": {"x": 58, "y": 27, "w": 160, "h": 136}
    }
  }
}`

func writeSheet(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheet.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSheet(t *testing.T) {
	sheet, err := LoadSheet(writeSheet(t, sampleAtlas))
	if err != nil {
		t.Fatal(err)
	}
	cell, ok := sheet.Cell("Idle (1).png")
	if !ok {
		t.Fatal("cell not found")
	}
	if cell.Frame.W != 160 || cell.Frame.H != 136 {
		t.Errorf("frame = %dx%d, want 160x136", cell.Frame.W, cell.Frame.H)
	}
	if cell.SpriteSourceSize.X != 58 || cell.SpriteSourceSize.Y != 28 {
		t.Errorf("trim offset = (%d, %d), want (58, 28)",
			cell.SpriteSourceSize.X, cell.SpriteSourceSize.Y)
	}
	if _, ok := sheet.Cell("Dive (1).png"); ok {
		t.Error("lookup of a missing sprite succeeded")
	}
}

func TestLoadSheetRejectsBadInput(t *testing.T) {
	if _, err := LoadSheet(writeSheet(t, "not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
	if _, err := LoadSheet(writeSheet(t, `{"frames": {}}`)); err == nil {
		t.Error("expected error for an empty atlas")
	}
	if _, err := LoadSheet(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for a missing file")
	}
}
