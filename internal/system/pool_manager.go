// internal/system/pool_manager.go
package system

import (
	"fmt"
	"log"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/pool"
)

// EnemyPoolManager owns one object pool per enemy archetype, created lazily
// on first request and prewarmed to the configured size.
type EnemyPoolManager struct {
	library *defs.Library
	pools   map[string]*pool.ObjectPool[*component.Enemy]
	prewarm int
}

func NewEnemyPoolManager(library *defs.Library, prewarm int) *EnemyPoolManager {
	return &EnemyPoolManager{
		library: library,
		pools:   make(map[string]*pool.ObjectPool[*component.Enemy]),
		prewarm: prewarm,
	}
}

// GetEnemy checks an instance out of the archetype's pool. The instance
// comes back fully reset; the caller runs Initialize on it. Unknown
// archetypes are a configuration error.
func (m *EnemyPoolManager) GetEnemy(archetypeID string) (*component.Enemy, *defs.EnemyDefinition, error) {
	def, ok := m.library.Enemies[archetypeID]
	if !ok {
		return nil, nil, fmt.Errorf("no enemy definition for archetype %q", archetypeID)
	}
	p := m.poolFor(archetypeID)
	return p.Get(), &def, nil
}

// ReturnEnemy puts an instance back into its archetype's pool. The
// archetype is captured before the pool's return hook wipes the instance.
// When the pool cannot be found the instance is discarded with a warning
// rather than leaked into the wrong free list.
func (m *EnemyPoolManager) ReturnEnemy(e *component.Enemy) {
	if e == nil {
		return
	}
	if e.Def == nil {
		log.Printf("pool manager: enemy has no archetype, discarding instance")
		return
	}
	p, ok := m.pools[e.Def.ID]
	if !ok {
		log.Printf("pool manager: no pool for archetype %q, discarding instance", e.Def.ID)
		e.Reset()
		return
	}
	p.Return(e)
}

// PrewarmPool grows the archetype's free list by n instances. Idempotent in
// the sense that repeated calls only ever add capacity.
func (m *EnemyPoolManager) PrewarmPool(archetypeID string, n int) {
	m.poolFor(archetypeID).Prewarm(n)
}

// ReturnAll forces every checked-out instance in every pool back to free.
// Used for level teardown.
func (m *EnemyPoolManager) ReturnAll() {
	for _, p := range m.pools {
		p.ReturnAll()
	}
}

// Stats reports free/active counts per archetype for diagnostics.
func (m *EnemyPoolManager) Stats() map[string][2]int {
	stats := make(map[string][2]int, len(m.pools))
	for id, p := range m.pools {
		stats[id] = [2]int{p.FreeCount(), p.ActiveCount()}
	}
	return stats
}

func (m *EnemyPoolManager) poolFor(archetypeID string) *pool.ObjectPool[*component.Enemy] {
	p, ok := m.pools[archetypeID]
	if !ok {
		p = pool.NewObjectPool(
			func() *component.Enemy { return &component.Enemy{} },
			nil,
			func(e *component.Enemy) { e.Reset() },
		)
		p.Prewarm(m.prewarm)
		m.pools[archetypeID] = p
	}
	return p
}
