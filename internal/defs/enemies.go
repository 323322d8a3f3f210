// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
// Definitions are immutable once loaded; every live enemy references one.
type EnemyDefinition struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Health        int     `json:"health"`
	Speed         float64 `json:"speed"`
	PhysicalArmor int     `json:"physical_armor"`
	MagicalArmor  int     `json:"magical_armor"`
	ContactDamage int     `json:"contact_damage"`
	KillReward    int     `json:"kill_reward"`
	Flying        bool    `json:"flying"`
}
