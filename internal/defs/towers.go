// internal/defs/towers.go
package defs

import (
	"go-wave-defense/internal/types"
)

// TowerType defines the category of a tower.
type TowerType string

const (
	TowerTypeAttack  TowerType = "ATTACK"
	TowerTypeSupport TowerType = "SUPPORT"
)

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Type   TowerType    `json:"type"`
	Cost   int          `json:"cost"`
	Combat *CombatStats `json:"combat,omitempty"`
	Aura   *AuraDef     `json:"aura,omitempty"`
}

// CombatStats contains parameters related to a tower's combat abilities.
type CombatStats struct {
	Damage         int              `json:"damage"`
	DamageType     types.DamageType `json:"damage_type"`
	FireRate       float64          `json:"fire_rate"` // shots per second
	Range          int              `json:"range"`     // in hexes
	CritChance     float64          `json:"crit_chance"`
	CritMultiplier float64          `json:"crit_multiplier"`
}

// AuraDef defines the properties of a support tower's aura.
type AuraDef struct {
	Radius   int            `json:"radius"` // in hexes
	BuffType types.BuffType `json:"buff_type"`
	Amount   float64        `json:"amount"` // additive bonus, 0.25 = +25%
}
