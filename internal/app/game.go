// internal/app/game.go
package app

import (
	"fmt"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/damage"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/system"
	"go-wave-defense/internal/types"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/hexmap"

	"github.com/google/uuid"
)

// Game is the explicitly-wired registry of the whole simulation: one world,
// one dispatcher, one instance of every system. Nothing in the module is a
// package-level singleton; everything reaches its collaborators through
// this aggregate.
type Game struct {
	HexMap     *hexmap.HexMap
	World      *entity.World
	Dispatcher *event.Dispatcher
	Library    *defs.Library
	Rng        *utils.PRNGService

	Economy        *system.EconomyManager
	Pools          *system.EnemyPoolManager
	Spawner        *system.EnemySpawner
	WaveSystem     *system.WaveSystem
	MovementSystem *system.MovementSystem
	CombatSystem   *system.CombatSystem
	AuraSystem     *system.AuraSystem

	lives    int
	gameOver bool
}

// NewGame wires the simulation from a definition library and settings.
func NewGame(library *defs.Library, settings *config.Settings) *Game {
	world := entity.NewWorld()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Sim.Seed)
	hexMap := hexmap.NewHexMap(settings.Sim.MapRadius)

	g := &Game{
		HexMap:     hexMap,
		World:      world,
		Dispatcher: dispatcher,
		Library:    library,
		Rng:        rng,
		lives:      settings.Sim.Lives,
	}

	g.Economy = system.NewEconomyManager(dispatcher, settings.Economy)
	g.Economy.Initialize(settings.Economy.StartingGold)
	g.Pools = system.NewEnemyPoolManager(library, settings.Sim.PoolPrewarm)
	g.Spawner = system.NewEnemySpawner(world, g.Pools, g.Economy, g, hexMap, dispatcher)
	g.WaveSystem = system.NewWaveSystem(g.Spawner, library, hexMap, dispatcher)
	g.MovementSystem = system.NewMovementSystem(world)
	g.CombatSystem = system.NewCombatSystem(world, damage.NewCalculator(rng))
	g.AuraSystem = system.NewAuraSystem(world, library, settings.Sim.AuraInterval)

	return g
}

// Update advances the simulation by one tick. Per entity the order within a
// tick is fixed: spawning, movement (exit transitions), combat (damage,
// death, economy credit, pool return), then the aura cadence.
func (g *Game) Update(deltaTime float64) {
	if g.gameOver {
		return
	}
	g.World.GameTime += deltaTime
	g.WaveSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.AuraSystem.Update(deltaTime)
}

// ModifyLives adjusts the lives ledger and announces the change. Hitting
// zero ends the game exactly once.
func (g *Game) ModifyLives(delta int) {
	if g.gameOver {
		return
	}
	g.lives += delta
	if g.lives < 0 {
		g.lives = 0
	}
	g.Dispatcher.Dispatch(event.Event{
		Type: event.LivesChanged,
		Data: event.LivesChangedData{Lives: g.lives, Delta: delta},
	})
	if g.lives == 0 {
		g.gameOver = true
		g.Dispatcher.Dispatch(event.Event{Type: event.GameOver})
	}
}

// Lives reports the remaining player lives.
func (g *Game) Lives() int { return g.lives }

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.gameOver }

// PlaceTower buys and places a tower on the given hex. Placement fails when
// the hex cannot hold a tower, when it would seal the enemy path, or when
// funds are short.
func (g *Game) PlaceTower(defID string, hex hexmap.Hex) (*component.Tower, error) {
	def, ok := g.Library.Towers[defID]
	if !ok {
		return nil, fmt.Errorf("no tower definition for %q", defID)
	}
	tile, exists := g.HexMap.Tiles[hex]
	if !exists || !tile.CanPlaceTower || !tile.Passable {
		return nil, fmt.Errorf("hex %v cannot hold a tower", hex)
	}

	// A tower occupies its hex; never let a placement wall off the exit.
	g.HexMap.SetBlocked(hex, true)
	if hexmap.AStar(g.HexMap.Entry, g.HexMap.Exit, g.HexMap) == nil {
		g.HexMap.SetBlocked(hex, false)
		return nil, fmt.Errorf("placing on %v would block the path", hex)
	}

	if !g.Economy.TrySpend(def.Cost) {
		g.HexMap.SetBlocked(hex, false)
		return nil, fmt.Errorf("cannot afford tower %q (cost %d)", defID, def.Cost)
	}

	tower := &component.Tower{
		UID:      uuid.New(),
		DefID:    def.ID,
		Hex:      hex,
		IsActive: true,
	}
	tower.Buffs = component.NewBuffReceiver(tower.UID)
	if def.Combat != nil {
		tower.Combat = &component.Combat{
			Damage:         def.Combat.Damage,
			DamageType:     def.Combat.DamageType,
			FireRate:       def.Combat.FireRate,
			Range:          def.Combat.Range,
			CritChance:     def.Combat.CritChance,
			CritMultiplier: def.Combat.CritMultiplier,
		}
	}
	g.World.AddTower(tower)
	g.AuraSystem.Rescan()
	return tower, nil
}

// RemoveTower tears a tower down: its buffs are withdrawn from every
// receiver, its own receiver is cleared, and its hex opens up again.
func (g *Game) RemoveTower(id types.EntityID) {
	tower, ok := g.World.Towers[id]
	if !ok {
		return
	}
	g.AuraSystem.RemoveSource(tower.UID)
	if tower.Buffs != nil {
		tower.Buffs.ClearAllBuffs()
	}
	tower.IsActive = false
	g.World.RemoveTower(id)
	g.HexMap.SetBlocked(tower.Hex, false)
	g.AuraSystem.Rescan()
}

// Teardown synchronously unwinds the level: auras come off every receiver,
// every pooled enemy returns to its free list, and the counters zero out.
// Safe to call before the aggregate stops being ticked.
func (g *Game) Teardown() {
	g.AuraSystem.Dispose()
	for id := range g.World.Enemies {
		delete(g.World.Enemies, id)
	}
	g.Pools.ReturnAll()
	g.Spawner.Reset()
}
