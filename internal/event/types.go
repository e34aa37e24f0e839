// internal/event/types.go
package event

const (
	// GameOver fires when the player ends up knocked out.
	GameOver EventType = "GameOver"
	// NewGameStarted fires when a restart request has been honored.
	NewGameStarted EventType = "NewGameStarted"
)
