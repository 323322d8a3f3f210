// internal/component/buff.go
package component

import (
	"go-wave-defense/internal/types"

	"github.com/google/uuid"
)

// TowerBuff is one active bonus on a receiver. A receiver holds at most one
// buff per (type, source) pair; re-adding from the same source replaces it.
type TowerBuff struct {
	Type   types.BuffType
	Amount float64
	Source uuid.UUID
}

// BuffReceiver aggregates the active buffs on one tower into effective
// multipliers. A multiplier of 1.0 means no effect; buffs from different
// sources of the same type stack additively (1 + sum of amounts).
type BuffReceiver struct {
	Owner uuid.UUID

	buffs      []TowerBuff
	damageMult float64
	speedMult  float64
	rangeMult  float64
}

// NewBuffReceiver creates a receiver with identity multipliers.
func NewBuffReceiver(owner uuid.UUID) *BuffReceiver {
	r := &BuffReceiver{Owner: owner}
	r.recompute()
	return r
}

// AddBuff installs a buff, replacing any existing buff with the same
// (type, source) pair.
func (r *BuffReceiver) AddBuff(buffType types.BuffType, amount float64, source uuid.UUID) {
	for i := range r.buffs {
		if r.buffs[i].Type == buffType && r.buffs[i].Source == source {
			r.buffs[i].Amount = amount
			r.recompute()
			return
		}
	}
	r.buffs = append(r.buffs, TowerBuff{Type: buffType, Amount: amount, Source: source})
	r.recompute()
}

// RemoveBuffsFrom drops every buff granted by the given source.
func (r *BuffReceiver) RemoveBuffsFrom(source uuid.UUID) {
	kept := r.buffs[:0]
	for _, b := range r.buffs {
		if b.Source != source {
			kept = append(kept, b)
		}
	}
	r.buffs = kept
	r.recompute()
}

// ClearAllBuffs drops everything and returns to identity multipliers.
func (r *BuffReceiver) ClearAllBuffs() {
	r.buffs = r.buffs[:0]
	r.recompute()
}

// BuffCount reports the number of active buffs.
func (r *BuffReceiver) BuffCount() int {
	return len(r.buffs)
}

// DamageMultiplier is applied to a tower's base damage.
func (r *BuffReceiver) DamageMultiplier() float64 { return r.damageMult }

// AttackSpeedMultiplier scales how fast the fire cooldown drains.
func (r *BuffReceiver) AttackSpeedMultiplier() float64 { return r.speedMult }

// RangeMultiplier scales the tower's reach.
func (r *BuffReceiver) RangeMultiplier() float64 { return r.rangeMult }

func (r *BuffReceiver) recompute() {
	r.damageMult = 1.0
	r.speedMult = 1.0
	r.rangeMult = 1.0
	for _, b := range r.buffs {
		switch b.Type {
		case types.BuffDamage:
			r.damageMult += b.Amount
		case types.BuffAttackSpeed:
			r.speedMult += b.Amount
		case types.BuffRange:
			r.rangeMult += b.Amount
		}
	}
}
