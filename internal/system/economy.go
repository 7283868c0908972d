// internal/system/economy.go
package system

import (
	"errors"
	"fmt"
	"grid-tower-defense/internal/entity"
)

// ErrInsufficientFunds is returned when a purchase costs more than the player has.
var ErrInsufficientFunds = errors.New("insufficient funds")

// EconomySystem guards every change to money and base health.
type EconomySystem struct {
	ecs *entity.State
}

func NewEconomySystem(ecs *entity.State) *EconomySystem {
	return &EconomySystem{ecs: ecs}
}

// Money returns the current balance.
func (s *EconomySystem) Money() int {
	return s.ecs.Economy.Money
}

// BaseHealth returns the remaining base health.
func (s *EconomySystem) BaseHealth() float64 {
	return s.ecs.Economy.BaseHealth
}

// CanAfford reports whether amount can be debited.
func (s *EconomySystem) CanAfford(amount int) bool {
	return amount >= 0 && s.ecs.Economy.Money >= amount
}

// Debit removes amount from the balance, or fails without touching it.
func (s *EconomySystem) Debit(amount int) error {
	if amount < 0 {
		return fmt.Errorf("debit of negative amount %d", amount)
	}
	if !s.CanAfford(amount) {
		return fmt.Errorf("need %d, have %d: %w", amount, s.ecs.Economy.Money, ErrInsufficientFunds)
	}
	s.ecs.Economy.Money -= amount
	return nil
}

// Credit adds amount to the balance. Negative amounts are ignored.
func (s *EconomySystem) Credit(amount int) {
	if amount > 0 {
		s.ecs.Economy.Money += amount
	}
}

// DamageBase subtracts damage from base health, clamping at zero, and
// returns what is left.
func (s *EconomySystem) DamageBase(damage float64) float64 {
	if damage > 0 {
		s.ecs.Economy.BaseHealth -= damage
		if s.ecs.Economy.BaseHealth < 0 {
			s.ecs.Economy.BaseHealth = 0
		}
	}
	return s.ecs.Economy.BaseHealth
}

// IsDefeated reports whether the base has fallen.
func (s *EconomySystem) IsDefeated() bool {
	return s.ecs.Economy.BaseHealth <= 0
}
