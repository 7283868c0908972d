package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultBalance(t *testing.T) {
	b := DefaultBalance()
	basic, ok := b.Tower(TowerBasic)
	if !ok {
		t.Fatal("basic tower missing")
	}
	if basic.BaseCost != 15 || basic.PriceScale != 1.4 || basic.Range != 3 {
		t.Errorf("unexpected basic tower %+v", basic)
	}
	if len(b.EnemyOrder) != len(EnemyTypes) {
		t.Errorf("expected %d enemy types, got %d", len(EnemyTypes), len(b.EnemyOrder))
	}
}

func TestLoadBalanceOverrides(t *testing.T) {
	yamlData := `
towers:
  - type: sniper
    base_cost: 25
    price_scale: 2
    damage: 4
    range: 8
    reload_interval: 2500
enemies:
  - type: tank
    health: 40
    speed: 0.25
    bounty: 20
`
	path := filepath.Join(t.TempDir(), "balance.yaml")
	if err := os.WriteFile(path, []byte(yamlData), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := LoadBalance(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sniper, _ := b.Tower(TowerSniper)
	if sniper.BaseCost != 25 || sniper.PriceScale != 2 || sniper.ReloadInterval != 2500 {
		t.Errorf("override not applied: %+v", sniper)
	}
	if sniper.Color != DefaultTowers()[TowerSniper].Color {
		t.Error("override should keep the default color")
	}
	tank, _ := b.Enemy(EnemyTank)
	if tank.Health != 40 || tank.Bounty != 20 {
		t.Errorf("override not applied: %+v", tank)
	}
	basic, _ := b.Tower(TowerBasic)
	if basic.BaseCost != 15 {
		t.Errorf("untouched tower changed: %+v", basic)
	}
}

func TestParseBalanceErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"malformed yaml", "towers: [", false},
		{"unknown tower", "towers:\n  - type: laser\n", false},
		{"zero cost", "towers:\n  - {type: basic, base_cost: 0, price_scale: 1.4, damage: 1, range: 3, reload_interval: 1000}\n", true},
		{"shrinking price", "towers:\n  - {type: basic, base_cost: 15, price_scale: 0.9, damage: 1, range: 3, reload_interval: 1000}\n", true},
		{"negative bounty", "enemies:\n  - {type: grunt, health: 10, speed: 1, bounty: -1}\n", true},
		{"zero speed", "enemies:\n  - {type: fast, health: 5, speed: 0, bounty: 3}\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBalance([]byte(tt.data))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.invalid && !errors.Is(err, ErrInvalidBalance) {
				t.Errorf("expected ErrInvalidBalance, got %v", err)
			}
		})
	}
}

func TestLoadBalanceMissingFile(t *testing.T) {
	if _, err := LoadBalance(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestParseTypes(t *testing.T) {
	for _, tt := range TowerTypes {
		got, err := ParseTowerType(tt.String())
		if err != nil || got != tt {
			t.Errorf("ParseTowerType(%q) = %v, %v", tt.String(), got, err)
		}
	}
	for _, et := range EnemyTypes {
		got, err := ParseEnemyType(et.String())
		if err != nil || got != et {
			t.Errorf("ParseEnemyType(%q) = %v, %v", et.String(), got, err)
		}
	}
	if _, err := ParseTowerType("laser"); err == nil {
		t.Error("expected error for unknown tower type")
	}
}
