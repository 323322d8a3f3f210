// internal/system/economy.go
package system

import (
	"math"

	"go-wave-defense/internal/config"
	"go-wave-defense/internal/event"
)

// EconomyManager is the player's currency ledger. The balance never goes
// negative: spending fails instead. Every mutation dispatches a
// CurrencyChanged event carrying the new balance and the delta.
type EconomyManager struct {
	dispatcher *event.Dispatcher
	settings   config.EconomySettings

	balance     int
	totalEarned int
	totalSpent  int
}

// NewEconomyManager creates the ledger and subscribes it to wave
// completions, which trigger the wave bonus and optional interest.
func NewEconomyManager(dispatcher *event.Dispatcher, settings config.EconomySettings) *EconomyManager {
	em := &EconomyManager{
		dispatcher: dispatcher,
		settings:   settings,
	}
	dispatcher.Subscribe(event.WaveCompleted, em)
	return em
}

// Initialize resets the ledger to the starting amount. The starting amount
// counts as earned.
func (em *EconomyManager) Initialize(startingAmount int) {
	em.balance = startingAmount
	em.totalEarned = startingAmount
	em.totalSpent = 0
	em.notify(0)
}

// AddCurrency credits the ledger. Non-positive amounts are ignored.
func (em *EconomyManager) AddCurrency(amount int) {
	if amount <= 0 {
		return
	}
	em.balance += amount
	em.totalEarned += amount
	em.notify(amount)
}

// TrySpend debits the ledger when funds suffice. Insufficient funds are an
// expected outcome, reported through the return value, never an error.
// Non-positive amounts trivially succeed without touching state.
func (em *EconomyManager) TrySpend(amount int) bool {
	if amount <= 0 {
		return true
	}
	if em.balance < amount {
		return false
	}
	em.balance -= amount
	em.totalSpent += amount
	em.notify(-amount)
	return true
}

// CanAfford reports whether a spend of the given amount would succeed.
func (em *EconomyManager) CanAfford(amount int) bool {
	return em.balance >= amount
}

// Balance is the current amount on hand.
func (em *EconomyManager) Balance() int { return em.balance }

// TotalEarned is the cumulative amount ever credited.
func (em *EconomyManager) TotalEarned() int { return em.totalEarned }

// TotalSpent is the cumulative amount ever debited.
func (em *EconomyManager) TotalSpent() int { return em.totalSpent }

// CalculateWaveBonus scales the completion bonus with the wave number.
func (em *EconomyManager) CalculateWaveBonus(waveNumber int) int {
	return em.settings.WaveBonusBase + waveNumber*em.settings.WaveBonusIncrement
}

// CalculateInterest returns the capped interest on the current balance,
// or 0 when interest is disabled.
func (em *EconomyManager) CalculateInterest() int {
	if !em.settings.InterestEnabled {
		return 0
	}
	interest := int(math.Floor(float64(em.balance) * em.settings.InterestRate))
	if interest > em.settings.InterestCap {
		interest = em.settings.InterestCap
	}
	return interest
}

// OnEvent handles wave completion: the bonus lands first, then interest is
// computed on the post-bonus balance. Interest compounds on the bonus.
func (em *EconomyManager) OnEvent(e event.Event) {
	if e.Type != event.WaveCompleted {
		return
	}
	data, ok := e.Data.(event.WaveCompletedData)
	if !ok {
		return
	}
	em.AddCurrency(em.CalculateWaveBonus(data.Number))
	if interest := em.CalculateInterest(); interest > 0 {
		em.AddCurrency(interest)
	}
}

func (em *EconomyManager) notify(delta int) {
	em.dispatcher.Dispatch(event.Event{
		Type: event.CurrencyChanged,
		Data: event.CurrencyChangedData{Balance: em.balance, Delta: delta},
	})
}
