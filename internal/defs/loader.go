// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// Library holds every loaded definition, keyed by ID. It is built once at
// startup and handed to the game by reference; nothing mutates it afterwards.
type Library struct {
	Enemies map[string]EnemyDefinition
	Towers  map[string]TowerDefinition
	Waves   map[int]WaveDefinition
}

// LoadLibrary reads all three definition files and assembles the library.
func LoadLibrary(enemiesPath, towersPath, wavesPath string) (*Library, error) {
	enemies, err := LoadEnemyDefinitions(enemiesPath)
	if err != nil {
		return nil, err
	}
	towers, err := LoadTowerDefinitions(towersPath)
	if err != nil {
		return nil, err
	}
	waves, err := LoadWaveDefinitions(wavesPath)
	if err != nil {
		return nil, err
	}
	return &Library{Enemies: enemies, Towers: towers, Waves: waves}, nil
}

// LoadEnemyDefinitions reads the enemy configuration file into an ID-keyed map.
func LoadEnemyDefinitions(path string) (map[string]EnemyDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	library := make(map[string]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		library[def.ID] = def
	}
	return library, nil
}

// LoadTowerDefinitions reads the tower configuration file into an ID-keyed map.
func LoadTowerDefinitions(path string) (map[string]TowerDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	library := make(map[string]TowerDefinition, len(towerDefs))
	for _, def := range towerDefs {
		library[def.ID] = def
	}
	return library, nil
}

// LoadWaveDefinitions reads the wave patterns file into a number-keyed map.
func LoadWaveDefinitions(path string) (map[int]WaveDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wave definitions file: %w", err)
	}

	var waveDefs []WaveDefinition
	if err := json.Unmarshal(file, &waveDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wave definitions: %w", err)
	}

	library := make(map[int]WaveDefinition, len(waveDefs))
	for _, def := range waveDefs {
		library[def.Number] = def
	}
	return library, nil
}
