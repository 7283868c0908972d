// internal/entity/state.go
package entity

import (
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/types"
	"grid-tower-defense/pkg/gridmap"
)

// State is the whole simulation: every system reads and writes it through an
// explicit reference, and only the game clock owns it.
type State struct {
	Tick    uint64
	NextID  types.EntityID
	Phase   component.Phase
	Grid    *gridmap.Grid
	Path    []gridmap.Point
	Towers  []*component.Tower // Placement order
	Enemies []*component.Enemy // Spawn order
	Economy component.Economy
	Wave    component.Wave
	Owned   map[defs.TowerType]int // Towers currently owned per type
}

// NewState creates an empty state for the given map.
func NewState(grid *gridmap.Grid, path []gridmap.Point, money int, baseHealth float64) *State {
	return &State{
		NextID: 1,
		Phase:  component.NotStarted,
		Grid:   grid,
		Path:   path,
		Economy: component.Economy{
			Money:      money,
			BaseHealth: baseHealth,
		},
		Owned: make(map[defs.TowerType]int),
	}
}

// NewEntity hands out the next unused ID.
func (s *State) NewEntity() types.EntityID {
	id := s.NextID
	s.NextID++
	return id
}

// TowerAt returns the tower standing on p.
func (s *State) TowerAt(p gridmap.Point) (*component.Tower, bool) {
	for _, t := range s.Towers {
		if t.Position == p {
			return t, true
		}
	}
	return nil, false
}

// Tower looks a tower up by ID.
func (s *State) Tower(id types.EntityID) (*component.Tower, bool) {
	for _, t := range s.Towers {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// RemoveTower drops the tower with the given ID, keeping placement order.
func (s *State) RemoveTower(id types.EntityID) bool {
	for i, t := range s.Towers {
		if t.ID == id {
			s.Towers = append(s.Towers[:i], s.Towers[i+1:]...)
			return true
		}
	}
	return false
}

// LiveEnemies counts enemies that are neither killed nor escaped.
func (s *State) LiveEnemies() int {
	n := 0
	for _, e := range s.Enemies {
		if !e.Removed {
			n++
		}
	}
	return n
}

// Enemy looks a live or removed-but-not-compacted enemy up by ID.
func (s *State) Enemy(id types.EntityID) (*component.Enemy, bool) {
	for _, e := range s.Enemies {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// CompactEnemies drops removed enemies from the live set, keeping spawn order.
func (s *State) CompactEnemies() {
	live := s.Enemies[:0]
	for _, e := range s.Enemies {
		if !e.Removed {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(s.Enemies); i++ {
		s.Enemies[i] = nil
	}
	s.Enemies = live
}
