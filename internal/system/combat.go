// internal/system/combat.go
package system

import (
	"math"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/damage"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/hexmap"
)

// CombatSystem fires attack towers at the nearest enemy in range. A tower's
// effective damage, reach and firing cadence all pass through its buff
// receiver, so aura towers show up here as multiplied outputs.
type CombatSystem struct {
	world *entity.World
	calc  *damage.Calculator
}

func NewCombatSystem(world *entity.World, calc *damage.Calculator) *CombatSystem {
	return &CombatSystem{world: world, calc: calc}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, tower := range s.world.Towers {
		combat := tower.Combat
		if combat == nil || !tower.IsActive {
			continue
		}

		// Attack-speed buffs drain the cooldown faster instead of
		// shortening it, so a buff landing mid-cooldown still helps.
		if combat.FireCooldown > 0 {
			combat.FireCooldown -= deltaTime * tower.Buffs.AttackSpeedMultiplier()
			continue
		}

		reach := int(math.Round(float64(combat.Range) * tower.Buffs.RangeMultiplier()))
		target := s.findNearestEnemyInRange(tower, reach)
		if target == nil {
			continue
		}

		base := int(math.Round(float64(combat.Damage) * tower.Buffs.DamageMultiplier()))
		armor := armorAgainst(target, combat.DamageType)
		amount, _ := s.calc.CalculateDamageWithCrit(base, armor, combat.CritChance, combat.CritMultiplier, combat.DamageType)
		target.TakeDamage(amount)

		combat.FireCooldown = 1.0 / combat.FireRate
	}
}

func (s *CombatSystem) findNearestEnemyInRange(tower *component.Tower, reach int) *component.Enemy {
	var nearest *component.Enemy
	nearestDist := reach + 1
	for _, enemy := range s.world.Enemies {
		if !enemy.Alive() {
			continue
		}
		at, ok := enemyHex(enemy)
		if !ok {
			continue
		}
		d := tower.Hex.Distance(at)
		if d < nearestDist {
			nearestDist = d
			nearest = enemy
		}
	}
	return nearest
}

// enemyHex approximates the enemy's board cell by its current path node.
func enemyHex(enemy *component.Enemy) (hexmap.Hex, bool) {
	path := enemy.Path
	if len(path.Hexes) == 0 {
		return hexmap.Hex{}, false
	}
	if path.CurrentIndex < len(path.Hexes) {
		return path.Hexes[path.CurrentIndex], true
	}
	return path.Hexes[len(path.Hexes)-1], true
}

// armorAgainst picks the armor stat matching the damage type. True damage
// callers still go through ApplyArmor, which ignores whatever we return.
func armorAgainst(enemy *component.Enemy, damageType types.DamageType) int {
	switch damageType {
	case types.DamagePhysical:
		return enemy.Def.PhysicalArmor
	case types.DamageMagic:
		return enemy.Def.MagicalArmor
	default:
		return 0
	}
}
