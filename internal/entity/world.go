// internal/entity/world.go
package entity

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/hexmap"
)

// World is the registry of live entities. It owns no behavior; systems
// iterate and mutate it on the single simulation goroutine. Pooled enemies
// appear here only while they are checked out and alive on the board.
type World struct {
	GameTime float64
	NextID   types.EntityID
	Enemies  map[types.EntityID]*component.Enemy
	Towers   map[types.EntityID]*component.Tower
}

func NewWorld() *World {
	return &World{
		NextID:  1,
		Enemies: make(map[types.EntityID]*component.Enemy),
		Towers:  make(map[types.EntityID]*component.Tower),
	}
}

// NewEntityID hands out the next world handle. IDs are never reused within
// a session, so a stale ID can never address a recycled instance.
func (w *World) NewEntityID() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// AddTower registers a tower under a fresh entity ID.
func (w *World) AddTower(t *component.Tower) types.EntityID {
	id := w.NewEntityID()
	t.ID = id
	w.Towers[id] = t
	return id
}

// RemoveTower drops a tower from the registry.
func (w *World) RemoveTower(id types.EntityID) {
	delete(w.Towers, id)
}

// TowersWithin returns the towers within radius hexes of the given hex,
// excluding the hex itself (a tower does not buff itself).
func (w *World) TowersWithin(center hexmap.Hex, radius int) []*component.Tower {
	var result []*component.Tower
	for _, t := range w.Towers {
		if t.Hex == center {
			continue
		}
		if center.Distance(t.Hex) <= radius {
			result = append(result, t)
		}
	}
	return result
}
