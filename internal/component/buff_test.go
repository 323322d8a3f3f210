// internal/component/buff_test.go
package component

import (
	"math"
	"testing"

	"go-wave-defense/internal/types"

	"github.com/google/uuid"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestIdentityMultipliers(t *testing.T) {
	r := NewBuffReceiver(uuid.New())
	if !almostEqual(r.DamageMultiplier(), 1.0) ||
		!almostEqual(r.AttackSpeedMultiplier(), 1.0) ||
		!almostEqual(r.RangeMultiplier(), 1.0) {
		t.Errorf("fresh receiver multipliers = %v %v %v, want 1 1 1",
			r.DamageMultiplier(), r.AttackSpeedMultiplier(), r.RangeMultiplier())
	}
}

func TestDifferentSourcesStackAdditively(t *testing.T) {
	r := NewBuffReceiver(uuid.New())
	r.AddBuff(types.BuffDamage, 0.25, uuid.New())
	r.AddBuff(types.BuffDamage, 0.25, uuid.New())
	if !almostEqual(r.DamageMultiplier(), 1.5) {
		t.Errorf("DamageMultiplier = %v, want 1.5", r.DamageMultiplier())
	}
}

func TestSameSourceReplaces(t *testing.T) {
	r := NewBuffReceiver(uuid.New())
	source := uuid.New()
	r.AddBuff(types.BuffDamage, 0.25, source)
	r.AddBuff(types.BuffDamage, 0.25, source)
	if !almostEqual(r.DamageMultiplier(), 1.25) {
		t.Errorf("DamageMultiplier after re-add = %v, want 1.25", r.DamageMultiplier())
	}
	r.AddBuff(types.BuffDamage, 0.4, source)
	if !almostEqual(r.DamageMultiplier(), 1.4) {
		t.Errorf("DamageMultiplier after replace = %v, want 1.4", r.DamageMultiplier())
	}
	if r.BuffCount() != 1 {
		t.Errorf("BuffCount = %d, want 1", r.BuffCount())
	}
}

func TestTypesAreIndependent(t *testing.T) {
	r := NewBuffReceiver(uuid.New())
	source := uuid.New()
	r.AddBuff(types.BuffDamage, 0.25, source)
	r.AddBuff(types.BuffAttackSpeed, 0.3, source)
	r.AddBuff(types.BuffRange, 0.2, source)
	if !almostEqual(r.DamageMultiplier(), 1.25) {
		t.Errorf("DamageMultiplier = %v, want 1.25", r.DamageMultiplier())
	}
	if !almostEqual(r.AttackSpeedMultiplier(), 1.3) {
		t.Errorf("AttackSpeedMultiplier = %v, want 1.3", r.AttackSpeedMultiplier())
	}
	if !almostEqual(r.RangeMultiplier(), 1.2) {
		t.Errorf("RangeMultiplier = %v, want 1.2", r.RangeMultiplier())
	}
}

func TestRemoveBuffsFrom(t *testing.T) {
	r := NewBuffReceiver(uuid.New())
	keep := uuid.New()
	drop := uuid.New()
	r.AddBuff(types.BuffDamage, 0.25, keep)
	r.AddBuff(types.BuffDamage, 0.25, drop)
	r.AddBuff(types.BuffAttackSpeed, 0.3, drop)

	r.RemoveBuffsFrom(drop)
	if !almostEqual(r.DamageMultiplier(), 1.25) {
		t.Errorf("DamageMultiplier = %v, want 1.25", r.DamageMultiplier())
	}
	if !almostEqual(r.AttackSpeedMultiplier(), 1.0) {
		t.Errorf("AttackSpeedMultiplier = %v, want 1.0", r.AttackSpeedMultiplier())
	}
	if r.BuffCount() != 1 {
		t.Errorf("BuffCount = %d, want 1", r.BuffCount())
	}
}

func TestClearAllBuffs(t *testing.T) {
	r := NewBuffReceiver(uuid.New())
	r.AddBuff(types.BuffDamage, 0.25, uuid.New())
	r.AddBuff(types.BuffRange, 0.2, uuid.New())
	r.ClearAllBuffs()
	if r.BuffCount() != 0 {
		t.Errorf("BuffCount = %d, want 0", r.BuffCount())
	}
	if !almostEqual(r.DamageMultiplier(), 1.0) || !almostEqual(r.RangeMultiplier(), 1.0) {
		t.Error("multipliers not back to identity after ClearAllBuffs")
	}
}
