// internal/component/wave.go
package component

import "go-wave-defense/pkg/hexmap"

// Wave tracks the in-flight state of the current wave.
type Wave struct {
	Number         int
	EnemyID        string
	EnemiesToSpawn int
	SpawnTimer     float64
	SpawnInterval  float64
	GroundPath     []hexmap.Hex
}
