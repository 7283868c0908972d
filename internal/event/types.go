// internal/event/types.go
package event

const (
	GameStarted   EventType = "GameStarted"
	GameReset     EventType = "GameReset"
	GameOver      EventType = "GameOver"
	PauseToggled  EventType = "PauseToggled"
	WaveStarted   EventType = "WaveStarted"
	EnemySpawned  EventType = "EnemySpawned"
	EnemyKilled   EventType = "EnemyKilled"
	EnemyEscaped  EventType = "EnemyEscaped"
	TowerPlaced   EventType = "TowerPlaced"
	TowerUpgraded EventType = "TowerUpgraded"
	TowerSold     EventType = "TowerSold"
	TowerFired    EventType = "TowerFired"
)
