// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 600
	ScreenHeight = 600

	// Floor is the lowest allowed y for the player, i.e. ground level.
	Floor         = 479
	PlayerHeight  = ScreenHeight - Floor
	StartingPoint = -20

	// Frame budgets per animation. One sprite is shown for three physics
	// ticks, so a budget of 29 covers 10 sprites in the sheet.
	IdleFrames    = 29
	RunningFrames = 23
	JumpingFrames = 35
	SlidingFrames = 14
	FallingFrames = 29

	RunningSpeed     = 3
	JumpSpeed        = -27
	Gravity          = 1
	TerminalVelocity = 18

	// Obstacle generation: a new segment is placed once the rightmost
	// generated edge scrolls below TimelineMinimum.
	TimelineMinimum = 1000
	ObstacleBuffer  = 20

	AudioSampleRate = 44100
)

var (
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	DebugBoxColor   = color.RGBA{255, 0, 0, 255}

	// DebugDrawBoxes draws collision boxes on top of every sprite.
	DebugDrawBoxes = false
)
