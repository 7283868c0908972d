package system

import (
	"errors"
	"testing"
)

func TestEconomyDebitGuard(t *testing.T) {
	w := newTestWorld(t, 20, openRows...)

	if err := w.economy.Debit(15); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.economy.Money() != 5 {
		t.Fatalf("expected 5, got %d", w.economy.Money())
	}
	if err := w.economy.Debit(6); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if w.economy.Money() != 5 {
		t.Fatalf("failed debit changed money to %d", w.economy.Money())
	}
	if err := w.economy.Debit(-1); err == nil {
		t.Fatal("negative debit must fail")
	}
}

func TestEconomyCredit(t *testing.T) {
	w := newTestWorld(t, 0, openRows...)
	w.economy.Credit(7)
	w.economy.Credit(-3)
	if w.economy.Money() != 7 {
		t.Errorf("expected 7, got %d", w.economy.Money())
	}
}

func TestEconomyDamageBaseClamps(t *testing.T) {
	w := newTestWorld(t, 0, openRows...)
	if left := w.economy.DamageBase(40); left != 60 {
		t.Fatalf("expected 60 left, got %v", left)
	}
	if w.economy.IsDefeated() {
		t.Fatal("base should still stand")
	}
	if left := w.economy.DamageBase(75); left != 0 {
		t.Fatalf("expected clamp to 0, got %v", left)
	}
	if !w.economy.IsDefeated() {
		t.Fatal("base should have fallen")
	}
}
