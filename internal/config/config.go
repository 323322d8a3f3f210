// internal/config/config.go
package config

const (
	HexSize   = 19.0
	MapRadius = 13

	BuildPhaseDuration = 30.0
	BaseLives          = 20
	MaxDeltaTime       = 0.06

	EnemiesPerWave          = 5
	EnemiesIncrementPerWave = 2
	InitialSpawnInterval    = 0.5
	MinSpawnInterval        = 0.1
	SpawnIntervalDecrement  = 0.02

	// Waves past the last authored pattern repeat this window.
	RepeatWaveFrom = 6
	RepeatWaveTo   = 10

	DefaultPoolPrewarm = 8

	// Aura re-evaluation runs on its own coarse cadence, not every frame.
	DefaultAuraInterval = 0.4

	DefaultStartingGold       = 150
	DefaultWaveBonusBase      = 50
	DefaultWaveBonusIncrement = 10
	DefaultInterestRate       = 0.05
	DefaultInterestCap        = 50
)
