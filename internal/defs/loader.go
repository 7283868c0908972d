// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidBalance is returned when balance data fails validation.
var ErrInvalidBalance = errors.New("invalid balance")

// Balance is the full set of tower and enemy definitions a game runs with.
type Balance struct {
	Towers  map[TowerType]TowerDefinition
	Enemies map[EnemyType]EnemyDefinition
	// EnemyOrder is the draw order for random enemy selection.
	EnemyOrder []EnemyType
}

type balanceFile struct {
	Towers  []TowerDefinition `yaml:"towers"`
	Enemies []EnemyDefinition `yaml:"enemies"`
}

// DefaultBalance returns the built-in balance.
func DefaultBalance() *Balance {
	b, err := newBalance(DefaultTowers(), DefaultEnemies())
	if err != nil {
		panic(err) // built-in data is always valid
	}
	return b
}

// LoadBalance reads a YAML balance file. Entries it names replace the built-in
// definition for that type; types it omits keep their defaults.
func LoadBalance(path string) (*Balance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance file: %w", err)
	}
	return ParseBalance(data)
}

// ParseBalance decodes balance YAML on top of the built-in defaults.
func ParseBalance(data []byte) (*Balance, error) {
	var file balanceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse balance YAML: %w", err)
	}

	towers := DefaultTowers()
	for _, override := range file.Towers {
		if !override.Type.Valid() {
			return nil, fmt.Errorf("%w: tower type %d", ErrInvalidBalance, override.Type)
		}
		override.Color = towers[override.Type].Color
		towers[override.Type] = override
	}

	enemies := DefaultEnemies()
	for _, override := range file.Enemies {
		if !override.Type.Valid() {
			return nil, fmt.Errorf("%w: enemy type %d", ErrInvalidBalance, override.Type)
		}
		override.Color = enemies[override.Type].Color
		enemies[override.Type] = override
	}

	return newBalance(towers, enemies)
}

func newBalance(towers []TowerDefinition, enemies []EnemyDefinition) (*Balance, error) {
	b := &Balance{
		Towers:  make(map[TowerType]TowerDefinition, len(towers)),
		Enemies: make(map[EnemyType]EnemyDefinition, len(enemies)),
	}
	for _, def := range towers {
		b.Towers[def.Type] = def
	}
	for _, def := range enemies {
		if _, dup := b.Enemies[def.Type]; !dup {
			b.EnemyOrder = append(b.EnemyOrder, def.Type)
		}
		b.Enemies[def.Type] = def
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks every definition for values the simulation cannot run with.
func (b *Balance) Validate() error {
	for _, t := range TowerTypes {
		def, ok := b.Towers[t]
		if !ok {
			return fmt.Errorf("%w: missing tower %s", ErrInvalidBalance, t)
		}
		switch {
		case def.BaseCost <= 0:
			return fmt.Errorf("%w: tower %s base_cost must be > 0, got %d", ErrInvalidBalance, t, def.BaseCost)
		case def.PriceScale < 1:
			return fmt.Errorf("%w: tower %s price_scale must be >= 1, got %g", ErrInvalidBalance, t, def.PriceScale)
		case def.Damage <= 0:
			return fmt.Errorf("%w: tower %s damage must be > 0, got %g", ErrInvalidBalance, t, def.Damage)
		case def.Range <= 0:
			return fmt.Errorf("%w: tower %s range must be > 0, got %g", ErrInvalidBalance, t, def.Range)
		case def.ReloadInterval <= 0:
			return fmt.Errorf("%w: tower %s reload_interval must be > 0, got %g", ErrInvalidBalance, t, def.ReloadInterval)
		}
	}
	if len(b.EnemyOrder) == 0 {
		return fmt.Errorf("%w: no enemy types", ErrInvalidBalance)
	}
	for _, e := range b.EnemyOrder {
		def := b.Enemies[e]
		switch {
		case def.Health <= 0:
			return fmt.Errorf("%w: enemy %s health must be > 0, got %g", ErrInvalidBalance, e, def.Health)
		case def.Speed <= 0:
			return fmt.Errorf("%w: enemy %s speed must be > 0, got %g", ErrInvalidBalance, e, def.Speed)
		case def.Bounty < 0:
			return fmt.Errorf("%w: enemy %s bounty must be >= 0, got %d", ErrInvalidBalance, e, def.Bounty)
		}
	}
	return nil
}

// Tower returns the definition for t.
func (b *Balance) Tower(t TowerType) (TowerDefinition, bool) {
	def, ok := b.Towers[t]
	return def, ok
}

// Enemy returns the definition for e.
func (b *Balance) Enemy(e EnemyType) (EnemyDefinition, bool) {
	def, ok := b.Enemies[e]
	return def, ok
}
