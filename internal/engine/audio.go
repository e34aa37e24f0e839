// internal/engine/audio.go
package engine

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"go-endless-runner/internal/config"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
)

// Audio owns the process-wide playback context. Create it once.
type Audio struct {
	context *audio.Context
}

func NewAudio() *Audio {
	return &Audio{context: audio.NewContext(config.AudioSampleRate)}
}

// Sound is a fully decoded PCM clip, shared read-only after loading.
type Sound struct {
	data []byte
}

// LoadSound reads and decodes an MP3 file into memory.
func (a *Audio) LoadSound(path string) (*Sound, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound file: %w", err)
	}
	stream, err := mp3.DecodeWithSampleRate(config.AudioSampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return &Sound{data: data}, nil
}

// Play starts one fire-and-forget playback of the clip. Callers log the
// returned error and move on; sound is cosmetic, never game-state-bearing.
func (a *Audio) Play(sound *Sound) error {
	if a == nil || a.context == nil {
		return fmt.Errorf("audio context is not available")
	}
	if sound == nil || len(sound.data) == 0 {
		return fmt.Errorf("sound is not loaded")
	}
	player := a.context.NewPlayerFromBytes(sound.data)
	player.Play()
	return nil
}

// PlayLooping plays the clip on an endless loop, for background music.
func (a *Audio) PlayLooping(sound *Sound) error {
	if a == nil || a.context == nil {
		return fmt.Errorf("audio context is not available")
	}
	if sound == nil || len(sound.data) == 0 {
		return fmt.Errorf("sound is not loaded")
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(sound.data), int64(len(sound.data)))
	player, err := a.context.NewPlayer(loop)
	if err != nil {
		return fmt.Errorf("failed to create looping player: %w", err)
	}
	player.Play()
	return nil
}
