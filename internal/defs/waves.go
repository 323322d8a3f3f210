// internal/defs/waves.go
package defs

// WaveDefinition describes one authored wave: which enemy it sends,
// how many, and how fast.
type WaveDefinition struct {
	Number        int     `json:"number"`
	EnemyID       string  `json:"enemy_id"`
	Count         int     `json:"count"`
	SpawnInterval float64 `json:"spawn_interval"` // seconds between spawns
}
