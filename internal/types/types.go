// internal/types/types.go
package types

// EntityID identifies a live entity within the world for one life.
// IDs are never reused within a session; pooled instances get a fresh ID
// on every checkout.
type EntityID uint64

// DamageType classifies how damage interacts with armor.
type DamageType string

const (
	DamagePhysical DamageType = "PHYSICAL"
	DamageMagic    DamageType = "MAGIC"
	DamageTrue     DamageType = "TRUE"
)

// BuffType classifies which tower output a buff multiplies.
type BuffType string

const (
	BuffDamage      BuffType = "DAMAGE"
	BuffAttackSpeed BuffType = "ATTACK_SPEED"
	BuffRange       BuffType = "RANGE"
)
