// internal/system/wave.go
package system

import (
	"log"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"go-wave-defense/pkg/hexmap"
)

// Phase is the top-level game rhythm: build, then fight, then build again.
type Phase int

const (
	BuildPhase Phase = iota
	WavePhase
)

// WaveSystem drives the wave cycle. During the build phase it counts down
// to the next wave; during the wave phase it drains the spawn budget on an
// interval and, once the board is clear, declares the wave complete. The
// completion event is what triggers the economy's bonus and interest.
type WaveSystem struct {
	spawner    *EnemySpawner
	library    *defs.Library
	hexMap     *hexmap.HexMap
	dispatcher *event.Dispatcher

	phase      Phase
	buildTimer float64
	nextWave   int
	wave       *component.Wave
}

func NewWaveSystem(spawner *EnemySpawner, library *defs.Library, hexMap *hexmap.HexMap, dispatcher *event.Dispatcher) *WaveSystem {
	ws := &WaveSystem{
		spawner:    spawner,
		library:    library,
		hexMap:     hexMap,
		dispatcher: dispatcher,
		phase:      BuildPhase,
		buildTimer: config.BuildPhaseDuration,
		nextWave:   1,
	}
	dispatcher.Subscribe(event.AllEnemiesDefeated, ws)
	return ws
}

func (s *WaveSystem) Update(deltaTime float64) {
	switch s.phase {
	case BuildPhase:
		s.buildTimer -= deltaTime
		if s.buildTimer <= 0 {
			s.StartNextWave()
		}
	case WavePhase:
		if s.wave == nil || s.wave.EnemiesToSpawn <= 0 {
			return
		}
		s.wave.SpawnTimer += deltaTime
		if s.wave.SpawnTimer >= s.wave.SpawnInterval {
			s.wave.SpawnTimer = 0
			s.wave.EnemiesToSpawn--
			s.spawner.SpawnEnemy(s.wave.EnemyID, s.wave.GroundPath)
		}
	}
}

// StartNextWave begins the next wave immediately, skipping whatever is left
// of the build timer.
func (s *WaveSystem) StartNextWave() {
	wave := s.buildWave(s.nextWave)
	if wave == nil {
		// Stay in the build phase and retry shortly rather than wedging.
		s.buildTimer = 1.0
		return
	}
	s.wave = wave
	s.phase = WavePhase
	s.spawner.SetWave(wave.Number)
	s.dispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveStartedData{Number: wave.Number},
	})
}

// OnEvent watches for the board going empty. The wave is complete only when
// the spawn budget is also drained — the counter touches zero between
// slow spawns too, and those must not end the wave.
func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type != event.AllEnemiesDefeated {
		return
	}
	if s.phase != WavePhase || s.wave == nil || s.wave.EnemiesToSpawn > 0 {
		return
	}
	completed := s.wave.Number
	s.wave = nil
	s.phase = BuildPhase
	s.buildTimer = config.BuildPhaseDuration
	s.nextWave = completed + 1
	s.dispatcher.Dispatch(event.Event{
		Type: event.WaveCompleted,
		Data: event.WaveCompletedData{Number: completed},
	})
}

// CurrentPhase reports whether the game is building or fighting.
func (s *WaveSystem) CurrentPhase() Phase {
	return s.phase
}

// CurrentWave returns the in-flight wave, or nil during the build phase.
func (s *WaveSystem) CurrentWave() *component.Wave {
	return s.wave
}

// buildWave resolves the wave definition and the path for wave n. Waves
// past the authored set repeat the tail window with scaled-up counts and
// tightened spawn intervals.
func (s *WaveSystem) buildWave(n int) *component.Wave {
	def, ok := s.library.Waves[n]
	if !ok {
		window := config.RepeatWaveTo - config.RepeatWaveFrom + 1
		repeat := ((n - config.RepeatWaveFrom) % window) + config.RepeatWaveFrom
		def, ok = s.library.Waves[repeat]
		if !ok {
			log.Printf("wave system: no definition for wave %d or repeat %d", n, repeat)
			if def, ok = s.library.Waves[1]; !ok {
				return nil
			}
		}
	}

	count := def.Count
	interval := def.SpawnInterval
	if extra := n - def.Number; extra > 0 {
		count += extra * config.EnemiesIncrementPerWave
		interval -= float64(extra) * config.SpawnIntervalDecrement
		if interval < config.MinSpawnInterval {
			interval = config.MinSpawnInterval
		}
	}

	groundPath := hexmap.AStar(s.hexMap.Entry, s.hexMap.Exit, s.hexMap)
	if groundPath == nil {
		log.Printf("wave system: no path from entry to exit, wave %d not started", n)
		return nil
	}

	return &component.Wave{
		Number:         n,
		EnemyID:        def.EnemyID,
		EnemiesToSpawn: count,
		SpawnInterval:  interval,
		GroundPath:     groundPath,
	}
}
