// internal/defs/types.go
package defs

import "fmt"

// TowerType enumerates the placeable towers.
type TowerType uint8

const (
	TowerBasic TowerType = iota
	TowerSniper
	TowerCannon
	TowerRailcannon
)

// TowerTypes lists every tower type in selector order.
var TowerTypes = []TowerType{TowerBasic, TowerSniper, TowerCannon, TowerRailcannon}

func (t TowerType) String() string {
	switch t {
	case TowerBasic:
		return "basic"
	case TowerSniper:
		return "sniper"
	case TowerCannon:
		return "cannon"
	case TowerRailcannon:
		return "railcannon"
	default:
		return fmt.Sprintf("TowerType(%d)", uint8(t))
	}
}

// Valid reports whether t is one of the known tower types.
func (t TowerType) Valid() bool {
	return t <= TowerRailcannon
}

// ParseTowerType maps a name back to its TowerType.
func ParseTowerType(name string) (TowerType, error) {
	for _, t := range TowerTypes {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown tower type %q", name)
}

func (t TowerType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("unknown tower type %d", uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *TowerType) UnmarshalText(b []byte) error {
	parsed, err := ParseTowerType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// EnemyType enumerates the enemy kinds a wave can draw from.
type EnemyType uint8

const (
	EnemyGrunt EnemyType = iota
	EnemyFast
	EnemyTank
)

// EnemyTypes lists every enemy type.
var EnemyTypes = []EnemyType{EnemyGrunt, EnemyFast, EnemyTank}

func (e EnemyType) String() string {
	switch e {
	case EnemyGrunt:
		return "grunt"
	case EnemyFast:
		return "fast"
	case EnemyTank:
		return "tank"
	default:
		return fmt.Sprintf("EnemyType(%d)", uint8(e))
	}
}

// Valid reports whether e is one of the known enemy types.
func (e EnemyType) Valid() bool {
	return e <= EnemyTank
}

// ParseEnemyType maps a name back to its EnemyType.
func ParseEnemyType(name string) (EnemyType, error) {
	for _, e := range EnemyTypes {
		if e.String() == name {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown enemy type %q", name)
}

func (e EnemyType) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("unknown enemy type %d", uint8(e))
	}
	return []byte(e.String()), nil
}

func (e *EnemyType) UnmarshalText(b []byte) error {
	parsed, err := ParseEnemyType(string(b))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
