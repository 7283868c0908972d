// internal/component/game_state.go
package component

// Phase is the top-level simulation state.
type Phase int

const (
	NotStarted Phase = iota
	Running
	Paused
	GameOver
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}
