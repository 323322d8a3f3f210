// internal/damage/damage.go

// Package damage implements the numeric damage pipeline: armor mitigation,
// multipliers and critical hits. All functions are pure except the crit
// roll, which draws from an injected PRNG service.
package damage

import (
	"math"

	"go-wave-defense/internal/types"
	"go-wave-defense/internal/utils"
)

// ApplyArmor mitigates base damage with armor. True damage bypasses armor
// entirely. For any positive base the result never drops below 1, so high
// armor can slow an attacker down but never lock it out completely.
func ApplyArmor(base, armor int, damageType types.DamageType) int {
	if base <= 0 {
		return 0
	}
	if damageType == types.DamageTrue {
		return base
	}
	result := base - armor
	if result < 1 {
		result = 1
	}
	return result
}

// CalculateDamage applies the multiplier to the base first, then armor.
func CalculateDamage(base, armor int, multiplier float64, damageType types.DamageType) int {
	scaled := int(math.Round(float64(base) * multiplier))
	return ApplyArmor(scaled, armor, damageType)
}

// CalculateCriticalDamage scales base damage by the crit multiplier.
// No floor logic here; callers compose with ApplyArmor separately.
func CalculateCriticalDamage(base int, critMultiplier float64) int {
	return int(math.Round(float64(base) * critMultiplier))
}

// Calculator bundles the pure pipeline with a random source for crit rolls.
type Calculator struct {
	rng *utils.PRNGService
}

// NewCalculator creates a calculator using the given PRNG service.
func NewCalculator(rng *utils.PRNGService) *Calculator {
	return &Calculator{rng: rng}
}

// RollCritical returns true with the given probability. 0 never crits,
// 1 always does.
func (c *Calculator) RollCritical(chance float64) bool {
	return c.rng.Chance(chance)
}

// CalculateDamageWithCrit rolls a crit, scales the base on success, then
// applies armor. True damage bypasses armor whether or not it crits.
func (c *Calculator) CalculateDamageWithCrit(base, armor int, critChance, critMultiplier float64, damageType types.DamageType) (int, bool) {
	wasCritical := c.RollCritical(critChance)
	if wasCritical {
		base = CalculateCriticalDamage(base, critMultiplier)
	}
	return ApplyArmor(base, armor, damageType), wasCritical
}
