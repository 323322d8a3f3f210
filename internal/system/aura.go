// internal/system/aura.go
package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/types"

	"github.com/google/uuid"
)

// AuraSystem is the broadcaster for support towers: on a coarse, fixed
// cadence it scans each aura's radius, grants the buff to attack towers
// that entered range and strips it from towers that left. Running slower
// than the frame tick is deliberate — aura membership changes rarely and
// the scan is the expensive part.
type AuraSystem struct {
	world   *entity.World
	library *defs.Library

	interval float64
	timer    float64

	// applied tracks, per source tower, which receivers currently hold its
	// buff. Needed to detect towers leaving range and to unwind everything
	// on teardown.
	applied map[uuid.UUID]map[types.EntityID]struct{}
}

func NewAuraSystem(world *entity.World, library *defs.Library, interval float64) *AuraSystem {
	return &AuraSystem{
		world:    world,
		library:  library,
		interval: interval,
		applied:  make(map[uuid.UUID]map[types.EntityID]struct{}),
	}
}

func (s *AuraSystem) Update(deltaTime float64) {
	s.timer += deltaTime
	if s.timer < s.interval {
		return
	}
	s.timer = 0
	s.Rescan()
}

// Rescan re-evaluates every aura immediately, regardless of the cadence
// timer. Called on tower placement and removal so membership never lags a
// full interval behind a board change.
func (s *AuraSystem) Rescan() {
	for _, source := range s.world.Towers {
		def, ok := s.library.Towers[source.DefID]
		if !ok || def.Aura == nil || !source.IsActive {
			continue
		}
		s.rescanSource(source, def.Aura)
	}
}

func (s *AuraSystem) rescanSource(source *component.Tower, aura *defs.AuraDef) {
	current := s.applied[source.UID]
	if current == nil {
		current = make(map[types.EntityID]struct{})
		s.applied[source.UID] = current
	}

	inRange := make(map[types.EntityID]struct{})
	for _, target := range s.world.TowersWithin(source.Hex, aura.Radius) {
		// Auras only boost towers that shoot.
		if target.Combat == nil || target.Buffs == nil {
			continue
		}
		inRange[target.ID] = struct{}{}
		// AddBuff replaces the same (type, source) pair, so re-granting to
		// a tower already in range is a no-op rather than a stack.
		target.Buffs.AddBuff(aura.BuffType, aura.Amount, source.UID)
	}

	for id := range current {
		if _, still := inRange[id]; still {
			continue
		}
		if target, exists := s.world.Towers[id]; exists && target.Buffs != nil {
			target.Buffs.RemoveBuffsFrom(source.UID)
		}
		delete(current, id)
	}
	for id := range inRange {
		current[id] = struct{}{}
	}
}

// RemoveSource strips the given source tower's buffs from every receiver it
// has ever granted one to. Must be called when a support tower is sold or
// destroyed so no orphaned buffs survive it.
func (s *AuraSystem) RemoveSource(source uuid.UUID) {
	for id := range s.applied[source] {
		if target, exists := s.world.Towers[id]; exists && target.Buffs != nil {
			target.Buffs.RemoveBuffsFrom(source)
		}
	}
	delete(s.applied, source)
}

// Dispose unwinds every aura the system has applied. Part of level
// teardown; runs synchronously before the system stops being ticked.
func (s *AuraSystem) Dispose() {
	for source := range s.applied {
		s.RemoveSource(source)
	}
}
