// internal/event/types.go
package event

import "go-wave-defense/internal/types"

const (
	EnemySpawned       EventType = "EnemySpawned"
	EnemyKilled        EventType = "EnemyKilled"
	EnemyReachedEnd    EventType = "EnemyReachedEnd"
	AllEnemiesDefeated EventType = "AllEnemiesDefeated"
	DamageTaken        EventType = "DamageTaken"
	CurrencyChanged    EventType = "CurrencyChanged"
	LivesChanged       EventType = "LivesChanged"
	WaveStarted        EventType = "WaveStarted"
	WaveCompleted      EventType = "WaveCompleted"
	GameOver           EventType = "GameOver"
)

// Payloads are plain data so the HUD stream can marshal them as-is.

type EnemySpawnedData struct {
	Entity types.EntityID `json:"entity"`
	DefID  string         `json:"def_id"`
}

type EnemyKilledData struct {
	Entity types.EntityID `json:"entity"`
	DefID  string         `json:"def_id"`
	Reward int            `json:"reward"`
}

type EnemyReachedEndData struct {
	Entity types.EntityID `json:"entity"`
	DefID  string         `json:"def_id"`
	Damage int            `json:"damage"`
}

type AllEnemiesDefeatedData struct {
	Wave int `json:"wave"`
}

type DamageTakenData struct {
	Entity types.EntityID `json:"entity"`
	Amount int            `json:"amount"`
}

type CurrencyChangedData struct {
	Balance int `json:"balance"`
	Delta   int `json:"delta"`
}

type LivesChangedData struct {
	Lives int `json:"lives"`
	Delta int `json:"delta"`
}

type WaveStartedData struct {
	Number int `json:"number"`
}

type WaveCompletedData struct {
	Number int `json:"number"`
}
