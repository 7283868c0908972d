// internal/app/listener.go
package app

import (
	"log"

	"grid-tower-defense/internal/event"
)

// LogListener writes every event it receives to the standard logger.
// TowerFired is skipped unless Shots is set; it fires many times a second.
type LogListener struct {
	Shots bool
}

func (l *LogListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.WaveData:
		log.Printf("[Event] tick %d %s: wave %d, %d enemies, bonus %d", e.Tick, e.Type, data.Number, data.Enemies, data.Bonus)
	case event.EnemyData:
		log.Printf("[Event] tick %d %s: enemy %d (%s) health %.1f bounty %d", e.Tick, e.Type, data.ID, data.Type, data.Health, data.Bounty)
	case event.TowerData:
		log.Printf("[Event] tick %d %s: tower %d (%s) at %s level %d, money %d", e.Tick, e.Type, data.ID, data.Type, data.Position, data.Level, data.Money)
	case event.ShotData:
		if l.Shots {
			log.Printf("[Event] tick %d %s: tower %d hit enemy %d for %.2f", e.Tick, e.Type, data.Tower, data.Enemy, data.Damage)
		}
	default:
		log.Printf("[Event] tick %d %s %v", e.Tick, e.Type, e.Data)
	}
}
