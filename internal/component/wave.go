// internal/component/wave.go
package component

// Wave is the wave manager's state.
type Wave struct {
	Number        int         // Current wave number, 0 before the first wave
	Queue         []EnemySpec // Enemies still to spawn, in order
	SpawnCooldown int         // Ticks until the next spawn
	InProgress    bool        // Set on wave start, cleared when the wave resolves
}
