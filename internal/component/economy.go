// internal/component/economy.go
package component

// Economy is the player's ledger.
type Economy struct {
	Money      int
	BaseHealth float64
}
