package system

import (
	"errors"
	"testing"

	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/event"
	"grid-tower-defense/pkg/gridmap"
)

func TestPlaceTower(t *testing.T) {
	w := newTestWorld(t, 100, openRows...)
	p := gridmap.Point{X: 0, Y: 1}
	if w.state.Grid.At(p) != gridmap.Empty {
		t.Fatalf("expected %v to be empty", p)
	}
	if !w.towers.CanPlace(p, defs.TowerBasic) {
		t.Fatal("expected placement to be allowed")
	}

	tower, err := w.towers.Place(p, defs.TowerBasic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.economy.Money() != 85 {
		t.Errorf("expected money 85, got %d", w.economy.Money())
	}
	if w.state.Owned[defs.TowerBasic] != 1 {
		t.Errorf("expected 1 owned, got %d", w.state.Owned[defs.TowerBasic])
	}
	if w.state.Grid.At(p) != gridmap.Tower {
		t.Errorf("expected tile to become a tower, got %v", w.state.Grid.At(p))
	}
	if tower.Level != 1 || tower.Damage != 1 || tower.Range != 3 || tower.ReloadInterval != 1000 {
		t.Errorf("unexpected tower stats %+v", tower)
	}
	if w.count(event.TowerPlaced) != 1 {
		t.Errorf("expected one TowerPlaced event")
	}
}

func TestPlaceTowerRejected(t *testing.T) {
	rows := []string{
		".....",
		".....",
		"#....",
	}
	tests := []struct {
		name      string
		money     int
		point     gridmap.Point
		towerType defs.TowerType
		expected  error
	}{
		{"on path", 100, gridmap.Point{X: 1, Y: 0}, defs.TowerBasic, ErrTileNotEmpty},
		{"on rock", 100, gridmap.Point{X: 0, Y: 2}, defs.TowerBasic, ErrTileNotEmpty},
		{"outside grid", 100, gridmap.Point{X: 9, Y: 9}, defs.TowerBasic, gridmap.ErrOutOfBounds},
		{"too poor", 14, gridmap.Point{X: 0, Y: 1}, defs.TowerBasic, ErrInsufficientFunds},
		{"unknown type", 100, gridmap.Point{X: 0, Y: 1}, defs.TowerType(42), ErrUnknownTowerType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, tt.money, rows...)
			before := w.state.Grid.Clone()

			if w.towers.CanPlace(tt.point, tt.towerType) {
				t.Fatal("CanPlace should be false")
			}
			_, err := w.towers.Place(tt.point, tt.towerType)
			if !errors.Is(err, tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, err)
			}
			if w.economy.Money() != tt.money {
				t.Errorf("money changed to %d", w.economy.Money())
			}
			if w.state.Owned[tt.towerType] != 0 {
				t.Errorf("owned count changed")
			}
			for i := range before.Tiles {
				if before.Tiles[i] != w.state.Grid.Tiles[i] {
					t.Fatalf("grid changed at index %d", i)
				}
			}
		})
	}
}

func TestPlaceOnOccupiedTile(t *testing.T) {
	w := newTestWorld(t, 100, openRows...)
	p := gridmap.Point{X: 0, Y: 1}
	if _, err := w.towers.Place(p, defs.TowerBasic); err != nil {
		t.Fatal(err)
	}
	if _, err := w.towers.Place(p, defs.TowerSniper); !errors.Is(err, ErrTileNotEmpty) {
		t.Fatalf("expected ErrTileNotEmpty, got %v", err)
	}
	if w.economy.Money() != 85 {
		t.Errorf("expected money 85, got %d", w.economy.Money())
	}
}

func TestPricingIsMonotonic(t *testing.T) {
	rows := []string{
		"........",
		"........",
		"........",
	}
	w := newTestWorld(t, 10000, rows...)
	expected := []int{15, 21, 29, 41, 57, 80}

	placed := 0
	last := 0
	for y := 1; y < 3 && placed < len(expected); y++ {
		for x := 0; x < 7 && placed < len(expected); x++ {
			cost := w.towers.CurrentCost(defs.TowerBasic)
			if cost < last {
				t.Fatalf("cost decreased from %d to %d", last, cost)
			}
			if cost != expected[placed] {
				t.Errorf("placement %d: expected cost %d, got %d", placed, expected[placed], cost)
			}
			before := w.economy.Money()
			if _, err := w.towers.Place(gridmap.Point{X: x, Y: y}, defs.TowerBasic); err != nil {
				t.Fatalf("place %d: %v", placed, err)
			}
			if spent := before - w.economy.Money(); spent != cost {
				t.Errorf("placement %d: spent %d, expected %d", placed, spent, cost)
			}
			last = cost
			placed++
		}
	}
	if w.towers.CurrentCost(defs.TowerSniper) != 20 {
		t.Errorf("other types must keep their own price")
	}
}

func TestPlacedTowerKeepsStatsWhenBalanceChanges(t *testing.T) {
	w := newTestWorld(t, 100, openRows...)
	tower, err := w.towers.Place(gridmap.Point{X: 0, Y: 1}, defs.TowerBasic)
	if err != nil {
		t.Fatal(err)
	}
	def := w.balance.Towers[defs.TowerBasic]
	def.Damage = 99
	def.Range = 99
	w.balance.Towers[defs.TowerBasic] = def

	if tower.Damage != 1 || tower.Range != 3 {
		t.Errorf("placed tower changed with balance: %+v", tower)
	}
}

func TestUpgradeTower(t *testing.T) {
	w := newTestWorld(t, 100, openRows...)
	tower, err := w.towers.Place(gridmap.Point{X: 0, Y: 1}, defs.TowerBasic)
	if err != nil {
		t.Fatal(err)
	}

	// One basic owned: current cost 21, level 1 → floor(21 × 0.75 × 1).
	if cost := w.towers.UpgradeCost(tower); cost != 15 {
		t.Fatalf("expected upgrade cost 15, got %d", cost)
	}
	if !w.towers.CanUpgrade(tower) {
		t.Fatal("expected upgrade to be affordable")
	}
	if _, err := w.towers.Upgrade(tower.ID); err != nil {
		t.Fatal(err)
	}
	if w.economy.Money() != 70 {
		t.Errorf("expected money 70, got %d", w.economy.Money())
	}
	if tower.Level != 2 || tower.Damage != 1.5 {
		t.Errorf("unexpected level/damage %d/%v", tower.Level, tower.Damage)
	}
	if diff := tower.Range - 3.6; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected range 3.6, got %v", tower.Range)
	}
	if diff := tower.ReloadInterval - 800; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected reload 800, got %v", tower.ReloadInterval)
	}

	// Level 2 → floor(21 × 0.75 × 2) = 31.
	if cost := w.towers.UpgradeCost(tower); cost != 31 {
		t.Fatalf("expected upgrade cost 31, got %d", cost)
	}
	if _, err := w.towers.Upgrade(tower.ID); err != nil {
		t.Fatal(err)
	}
	if w.economy.Money() != 39 || tower.Level != 3 {
		t.Errorf("expected money 39 at level 3, got %d at %d", w.economy.Money(), tower.Level)
	}
	if w.count(event.TowerUpgraded) != 2 {
		t.Errorf("expected two TowerUpgraded events")
	}
}

func TestUpgradeRejected(t *testing.T) {
	w := newTestWorld(t, 20, openRows...)
	tower, err := w.towers.Place(gridmap.Point{X: 0, Y: 1}, defs.TowerBasic)
	if err != nil {
		t.Fatal(err)
	}
	if w.towers.CanUpgrade(tower) {
		t.Fatal("5 money must not cover a 15 upgrade")
	}
	if _, err := w.towers.Upgrade(tower.ID); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if tower.Level != 1 || tower.Damage != 1 || w.economy.Money() != 5 {
		t.Errorf("failed upgrade mutated state: %+v money=%d", tower, w.economy.Money())
	}
	if _, err := w.towers.Upgrade(9999); !errors.Is(err, ErrTowerNotFound) {
		t.Fatalf("expected ErrTowerNotFound, got %v", err)
	}
}

func TestSellTower(t *testing.T) {
	w := newTestWorld(t, 100, openRows...)
	p := gridmap.Point{X: 0, Y: 1}
	tower, err := w.towers.Place(p, defs.TowerBasic)
	if err != nil {
		t.Fatal(err)
	}

	if v := w.towers.SellValue(tower); v != 10 {
		t.Fatalf("expected sell value floor(21 × 0.5) = 10, got %d", v)
	}
	refund, err := w.towers.Sell(tower.ID)
	if err != nil {
		t.Fatal(err)
	}
	if refund != 10 || w.economy.Money() != 95 {
		t.Errorf("expected refund 10 and money 95, got %d and %d", refund, w.economy.Money())
	}
	if w.state.Owned[defs.TowerBasic] != 0 {
		t.Errorf("owned count not decremented")
	}
	if w.state.Grid.At(p) != gridmap.Empty {
		t.Errorf("tile not freed: %v", w.state.Grid.At(p))
	}
	if len(w.state.Towers) != 0 {
		t.Errorf("tower not removed")
	}
	if w.towers.CurrentCost(defs.TowerBasic) != 15 {
		t.Errorf("price should fall back to 15")
	}
	if _, err := w.towers.Sell(tower.ID); !errors.Is(err, ErrTowerNotFound) {
		t.Fatalf("expected ErrTowerNotFound on second sale, got %v", err)
	}
}
