// internal/component/tower.go
package component

import (
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/hexmap"

	"github.com/google/uuid"
)

// Tower is a placed tower. UID is stable for the tower's whole life and is
// what buffs use to identify their source; EntityID is the per-session
// world handle.
type Tower struct {
	ID       types.EntityID
	UID      uuid.UUID
	DefID    string
	Hex      hexmap.Hex
	IsActive bool
	Combat   *Combat
	Buffs    *BuffReceiver
}

// Combat drives an attack tower's firing.
type Combat struct {
	Damage         int
	DamageType     types.DamageType
	FireRate       float64 // shots per second
	FireCooldown   float64 // seconds until the next shot
	Range          int     // in hexes
	CritChance     float64
	CritMultiplier float64
}
