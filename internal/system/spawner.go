// internal/system/spawner.go
package system

import (
	"log"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/pkg/hexmap"
)

// LivesModifier is the game-state collaborator that tracks player lives.
type LivesModifier interface {
	ModifyLives(delta int)
}

// EnemySpawner checks enemies out of the pools, walks them through their
// life, and settles the consequences: kill rewards into the economy, lives
// lost on leaks, and the instance back to its pool. It observes each
// spawned enemy for exactly one life.
type EnemySpawner struct {
	world      *entity.World
	pools      *EnemyPoolManager
	economy    *EconomyManager
	lives      LivesModifier
	hexMap     *hexmap.HexMap
	dispatcher *event.Dispatcher

	activeEnemies int
	currentWave   int
}

func NewEnemySpawner(
	world *entity.World,
	pools *EnemyPoolManager,
	economy *EconomyManager,
	lives LivesModifier,
	hexMap *hexmap.HexMap,
	dispatcher *event.Dispatcher,
) *EnemySpawner {
	return &EnemySpawner{
		world:      world,
		pools:      pools,
		economy:    economy,
		lives:      lives,
		hexMap:     hexMap,
		dispatcher: dispatcher,
	}
}

// SpawnEnemy places a pooled enemy of the given archetype at the board
// entry and sends it down the path. Ground enemies walk the provided path;
// flying ones take the straight line to the exit. Missing dependencies or
// an unknown archetype abort the spawn with a log line and a nil return —
// a bad spawn must never take down the tick loop.
func (s *EnemySpawner) SpawnEnemy(archetypeID string, groundPath []hexmap.Hex) *component.Enemy {
	if s.pools == nil || s.hexMap == nil {
		log.Printf("spawner: missing pool manager or map, cannot spawn %q", archetypeID)
		return nil
	}

	enemy, def, err := s.pools.GetEnemy(archetypeID)
	if err != nil {
		log.Printf("spawner: %v", err)
		return nil
	}

	path := groundPath
	if def.Flying {
		path = s.hexMap.Entry.LineTo(s.hexMap.Exit)
	}
	if len(path) == 0 {
		log.Printf("spawner: no path for archetype %q, discarding spawn", archetypeID)
		s.pools.ReturnEnemy(enemy)
		return nil
	}

	enemy.Initialize(s.world.NewEntityID(), def)
	x, y, _ := s.hexMap.SpawnPose(config.HexSize)
	enemy.Pos = component.Position{X: x, Y: y}
	enemy.Path = component.Path{Hexes: path}
	enemy.Subscribe(s)

	s.world.Enemies[enemy.ID] = enemy
	s.activeEnemies++
	s.dispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemySpawnedData{Entity: enemy.ID, DefID: def.ID},
	})
	return enemy
}

// OnDamageTaken forwards damage notifications to the outside world (HUD
// floating numbers and the like).
func (s *EnemySpawner) OnDamageTaken(e *component.Enemy, amount int) {
	s.dispatcher.Dispatch(event.Event{
		Type: event.DamageTaken,
		Data: event.DamageTakenData{Entity: e.ID, Amount: amount},
	})
}

// OnDeath credits the kill reward and retires the enemy.
func (s *EnemySpawner) OnDeath(e *component.Enemy) {
	reward := e.Def.KillReward
	s.economy.AddCurrency(reward)
	s.dispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyKilledData{Entity: e.ID, DefID: e.Def.ID, Reward: reward},
	})
	s.retire(e)
}

// OnExit debits player lives by the enemy's contact damage and retires it.
func (s *EnemySpawner) OnExit(e *component.Enemy) {
	contactDamage := e.Def.ContactDamage
	if s.lives != nil && contactDamage > 0 {
		s.lives.ModifyLives(-contactDamage)
	}
	s.dispatcher.Dispatch(event.Event{
		Type: event.EnemyReachedEnd,
		Data: event.EnemyReachedEndData{Entity: e.ID, DefID: e.Def.ID, Damage: contactDamage},
	})
	s.retire(e)
}

// retire removes a terminal enemy from the world and returns it to its
// pool. When the last active enemy retires, the all-defeated notification
// fires — once per time the counter touches zero.
func (s *EnemySpawner) retire(e *component.Enemy) {
	delete(s.world.Enemies, e.ID)
	s.activeEnemies--
	s.pools.ReturnEnemy(e)
	if s.activeEnemies == 0 {
		s.dispatcher.Dispatch(event.Event{
			Type: event.AllEnemiesDefeated,
			Data: event.AllEnemiesDefeatedData{Wave: s.currentWave},
		})
	}
}

// ActiveEnemies reports how many spawned enemies are still on the board.
func (s *EnemySpawner) ActiveEnemies() int {
	return s.activeEnemies
}

// SetWave records the wave number stamped onto all-defeated notifications.
func (s *EnemySpawner) SetWave(number int) {
	s.currentWave = number
}

// Reset zeroes the active counter between levels. It does not chase down
// enemies already in flight; callers tear those down first.
func (s *EnemySpawner) Reset() {
	s.activeEnemies = 0
}
