// internal/system/movement.go
package system

import (
	"math"

	"go-wave-defense/internal/config"
	"go-wave-defense/internal/entity"
)

// MovementSystem advances live enemies along their paths. An enemy that
// steps past the last hex of its path has reached the exit volume.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, enemy := range s.world.Enemies {
		if !enemy.Alive() {
			continue
		}
		path := &enemy.Path
		if path.CurrentIndex >= len(path.Hexes) {
			// ReachExit retires the enemy through its listeners, which
			// removes it from the map; deleting during range is safe.
			enemy.ReachExit()
			continue
		}

		targetHex := path.Hexes[path.CurrentIndex]
		tx, ty := targetHex.ToPixel(config.HexSize)

		dx := tx - enemy.Pos.X
		dy := ty - enemy.Pos.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		moveDistance := enemy.Def.Speed * deltaTime

		if dist <= moveDistance {
			enemy.Pos.X = tx
			enemy.Pos.Y = ty
			path.CurrentIndex++
		} else {
			enemy.Pos.X += (dx / dist) * moveDistance
			enemy.Pos.Y += (dy / dist) * moveDistance
		}
	}
}
