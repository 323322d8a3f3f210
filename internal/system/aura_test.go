// internal/system/aura_test.go
package system

import (
	"testing"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/hexmap"

	"github.com/google/uuid"
)

func auraLibrary() *defs.Library {
	return &defs.Library{
		Enemies: map[string]defs.EnemyDefinition{},
		Towers: map[string]defs.TowerDefinition{
			"TOWER_ARROW": {
				ID: "TOWER_ARROW", Type: defs.TowerTypeAttack,
				Combat: &defs.CombatStats{Damage: 40, DamageType: types.DamagePhysical, FireRate: 1.5, Range: 3},
			},
			"TOWER_BANNER": {
				ID: "TOWER_BANNER", Type: defs.TowerTypeSupport,
				Aura: &defs.AuraDef{Radius: 2, BuffType: types.BuffDamage, Amount: 0.25},
			},
		},
		Waves: map[int]defs.WaveDefinition{},
	}
}

func placeTower(world *entity.World, defID string, hex hexmap.Hex, combat bool) *component.Tower {
	tower := &component.Tower{
		UID:      uuid.New(),
		DefID:    defID,
		Hex:      hex,
		IsActive: true,
	}
	tower.Buffs = component.NewBuffReceiver(tower.UID)
	if combat {
		tower.Combat = &component.Combat{Damage: 40, DamageType: types.DamagePhysical, FireRate: 1.5, Range: 3}
	}
	world.AddTower(tower)
	return tower
}

func TestAuraGrantsBuffInRange(t *testing.T) {
	world := entity.NewWorld()
	aura := NewAuraSystem(world, auraLibrary(), 0.4)

	placeTower(world, "TOWER_BANNER", hexmap.Hex{Q: 0, R: 0}, false)
	near := placeTower(world, "TOWER_ARROW", hexmap.Hex{Q: 1, R: 0}, true)
	far := placeTower(world, "TOWER_ARROW", hexmap.Hex{Q: 5, R: 0}, true)

	aura.Rescan()
	if got := near.Buffs.DamageMultiplier(); got != 1.25 {
		t.Errorf("in-range tower DamageMultiplier = %v, want 1.25", got)
	}
	if got := far.Buffs.DamageMultiplier(); got != 1.0 {
		t.Errorf("out-of-range tower DamageMultiplier = %v, want 1.0", got)
	}
}

func TestAuraCadence(t *testing.T) {
	world := entity.NewWorld()
	aura := NewAuraSystem(world, auraLibrary(), 0.4)
	placeTower(world, "TOWER_BANNER", hexmap.Hex{Q: 0, R: 0}, false)
	near := placeTower(world, "TOWER_ARROW", hexmap.Hex{Q: 1, R: 0}, true)

	// Below the interval nothing happens yet.
	aura.Update(0.2)
	if near.Buffs.BuffCount() != 0 {
		t.Error("aura applied before its interval elapsed")
	}
	aura.Update(0.25)
	if near.Buffs.BuffCount() != 1 {
		t.Error("aura not applied after the interval elapsed")
	}
}

func TestAuraRemovedWhenLeavingRange(t *testing.T) {
	world := entity.NewWorld()
	aura := NewAuraSystem(world, auraLibrary(), 0.4)
	placeTower(world, "TOWER_BANNER", hexmap.Hex{Q: 0, R: 0}, false)
	target := placeTower(world, "TOWER_ARROW", hexmap.Hex{Q: 1, R: 0}, true)

	aura.Rescan()
	if target.Buffs.BuffCount() != 1 {
		t.Fatal("buff not granted")
	}

	// Simulate the tower moving out of range (re-placed further away).
	target.Hex = hexmap.Hex{Q: 6, R: 0}
	aura.Rescan()
	if target.Buffs.BuffCount() != 0 {
		t.Errorf("buff survived leaving range: count %d", target.Buffs.BuffCount())
	}
}

func TestRepeatedRescanDoesNotStack(t *testing.T) {
	world := entity.NewWorld()
	aura := NewAuraSystem(world, auraLibrary(), 0.4)
	placeTower(world, "TOWER_BANNER", hexmap.Hex{Q: 0, R: 0}, false)
	target := placeTower(world, "TOWER_ARROW", hexmap.Hex{Q: 1, R: 0}, true)

	aura.Rescan()
	aura.Rescan()
	aura.Rescan()
	if got := target.Buffs.DamageMultiplier(); got != 1.25 {
		t.Errorf("DamageMultiplier after repeated rescans = %v, want 1.25", got)
	}
}

func TestTwoSourcesStack(t *testing.T) {
	world := entity.NewWorld()
	aura := NewAuraSystem(world, auraLibrary(), 0.4)
	placeTower(world, "TOWER_BANNER", hexmap.Hex{Q: 0, R: 0}, false)
	placeTower(world, "TOWER_BANNER", hexmap.Hex{Q: 2, R: 0}, false)
	target := placeTower(world, "TOWER_ARROW", hexmap.Hex{Q: 1, R: 0}, true)

	aura.Rescan()
	if got := target.Buffs.DamageMultiplier(); got != 1.5 {
		t.Errorf("DamageMultiplier with two banners = %v, want 1.5", got)
	}
}

func TestSupportTowersAreNotBuffed(t *testing.T) {
	world := entity.NewWorld()
	aura := NewAuraSystem(world, auraLibrary(), 0.4)
	placeTower(world, "TOWER_BANNER", hexmap.Hex{Q: 0, R: 0}, false)
	other := placeTower(world, "TOWER_BANNER", hexmap.Hex{Q: 1, R: 0}, false)

	aura.Rescan()
	if other.Buffs.BuffCount() != 0 {
		t.Error("a support tower received a buff")
	}
}

func TestRemoveSourceStripsEverywhere(t *testing.T) {
	world := entity.NewWorld()
	aura := NewAuraSystem(world, auraLibrary(), 0.4)
	banner := placeTower(world, "TOWER_BANNER", hexmap.Hex{Q: 0, R: 0}, false)
	a := placeTower(world, "TOWER_ARROW", hexmap.Hex{Q: 1, R: 0}, true)
	b := placeTower(world, "TOWER_ARROW", hexmap.Hex{Q: 0, R: 1}, true)

	aura.Rescan()
	aura.RemoveSource(banner.UID)
	if a.Buffs.BuffCount() != 0 || b.Buffs.BuffCount() != 0 {
		t.Errorf("buffs survived source removal: %d, %d", a.Buffs.BuffCount(), b.Buffs.BuffCount())
	}
}

func TestDisposeLeavesNoOrphanedBuffs(t *testing.T) {
	world := entity.NewWorld()
	aura := NewAuraSystem(world, auraLibrary(), 0.4)
	placeTower(world, "TOWER_BANNER", hexmap.Hex{Q: 0, R: 0}, false)
	placeTower(world, "TOWER_BANNER", hexmap.Hex{Q: 2, R: 0}, false)
	target := placeTower(world, "TOWER_ARROW", hexmap.Hex{Q: 1, R: 0}, true)

	aura.Rescan()
	aura.Dispose()
	if target.Buffs.BuffCount() != 0 {
		t.Errorf("buffs survived Dispose: %d", target.Buffs.BuffCount())
	}
	if target.Buffs.DamageMultiplier() != 1.0 {
		t.Errorf("DamageMultiplier after Dispose = %v, want 1.0", target.Buffs.DamageMultiplier())
	}
}

func TestInactiveSourceGrantsNothing(t *testing.T) {
	world := entity.NewWorld()
	aura := NewAuraSystem(world, auraLibrary(), 0.4)
	banner := placeTower(world, "TOWER_BANNER", hexmap.Hex{Q: 0, R: 0}, false)
	banner.IsActive = false
	target := placeTower(world, "TOWER_ARROW", hexmap.Hex{Q: 1, R: 0}, true)

	aura.Rescan()
	if target.Buffs.BuffCount() != 0 {
		t.Error("inactive support tower granted a buff")
	}
}
