// internal/system/wave.go
package system

import (
	"log"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/entity"
	"grid-tower-defense/internal/event"
	"grid-tower-defense/internal/utils"
)

// WaveSystem numbers waves, queues their enemies, paces spawning and starts
// the next wave when the current one resolves.
type WaveSystem struct {
	ecs             *entity.State
	balance         *defs.Balance
	rng             *utils.PRNGService
	economy         *EconomySystem
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.State, balance *defs.Balance, rng *utils.PRNGService, economy *EconomySystem, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		balance:         balance,
		rng:             rng,
		economy:         economy,
		eventDispatcher: eventDispatcher,
	}
}

// EnemyHealth scales a base health for the given wave: base × ceil(wave^1.3).
func EnemyHealth(base float64, wave int) float64 {
	return base * float64(utils.CeilPow(float64(wave), config.EnemyHealthExponent))
}

// EnemiesInWave is ceil(sqrt(wave)).
func EnemiesInWave(wave int) int {
	return utils.CeilSqrt(wave)
}

// SpawnCooldown is max(0, 10 − ceil(sqrt(queued))): the gap shrinks as the queue drains.
func SpawnCooldown(queued int) int {
	cooldown := config.SpawnCooldownBase - utils.CeilSqrt(queued)
	if cooldown < 0 {
		return 0
	}
	return cooldown
}

// StartWave advances the wave counter, pays the wave bonus and queues the
// wave's enemies behind anything still pending.
func (s *WaveSystem) StartWave() {
	wave := &s.ecs.Wave
	wave.Number++
	wave.InProgress = true

	bonus := wave.Number * config.WaveBonusPerNumber
	s.economy.Credit(bonus)

	count := EnemiesInWave(wave.Number)
	for i := 0; i < count; i++ {
		enemyType := s.rng.ChooseEnemy(s.balance.EnemyOrder)
		def, ok := s.balance.Enemy(enemyType)
		if !ok {
			log.Printf("[WaveSystem] no definition for enemy %s, skipping", enemyType)
			continue
		}
		wave.Queue = append(wave.Queue, component.EnemySpec{
			Type:   enemyType,
			Health: EnemyHealth(def.Health, wave.Number),
			Speed:  def.Speed,
			Bounty: def.Bounty,
		})
	}

	log.Printf("[WaveSystem] wave %d started: %d enemies, bonus %d", wave.Number, count, bonus)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Tick: s.ecs.Tick,
		Data: event.WaveData{Number: wave.Number, Enemies: count, Bonus: bonus},
	})
}

// Update runs once per tick: auto-advance on resolution, then at most one spawn.
func (s *WaveSystem) Update() {
	wave := &s.ecs.Wave

	// Resolution is edge-triggered through InProgress: the wave started here
	// always queues at least one enemy, so the condition cannot hold again
	// until that wave resolves too.
	if wave.InProgress && len(wave.Queue) == 0 && s.ecs.LiveEnemies() == 0 {
		wave.InProgress = false
		s.StartWave()
	}

	if len(wave.Queue) == 0 {
		return
	}
	if wave.SpawnCooldown > 0 {
		wave.SpawnCooldown--
		if wave.SpawnCooldown > 0 {
			return
		}
	}

	spec := wave.Queue[0]
	wave.Queue = wave.Queue[1:]
	wave.SpawnCooldown = SpawnCooldown(len(wave.Queue))
	s.spawnEnemy(spec)
}

func (s *WaveSystem) spawnEnemy(spec component.EnemySpec) *component.Enemy {
	entry := s.ecs.Path[0]
	enemy := &component.Enemy{
		ID:        s.ecs.NewEntity(),
		Type:      spec.Type,
		X:         float64(entry.X),
		Y:         float64(entry.Y),
		PathIndex: 1,
		Health:    spec.Health,
		MaxHealth: spec.Health,
		Speed:     spec.Speed,
		Bounty:    spec.Bounty,
		Wave:      s.ecs.Wave.Number,
	}
	s.ecs.Enemies = append(s.ecs.Enemies, enemy)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Tick: s.ecs.Tick,
		Data: event.EnemyData{ID: enemy.ID, Type: enemy.Type, Health: enemy.Health, Bounty: enemy.Bounty},
	})
	return enemy
}
