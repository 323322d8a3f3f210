// internal/component/enemy.go
package component

import (
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
)

// EnemyState tracks where an enemy is in its life.
type EnemyState int

const (
	EnemyUninitialized EnemyState = iota
	EnemyAlive
	EnemyDead
	EnemyExited
)

// EnemyListener observes one enemy's life. Exactly one of OnDeath/OnExit
// fires per life, and each fires at most once.
type EnemyListener interface {
	OnDamageTaken(e *Enemy, amount int)
	OnDeath(e *Enemy)
	OnExit(e *Enemy)
}

// Enemy is a pooled combat entity. Instances live in an object pool and are
// re-initialized on every checkout; all mutation happens on the single
// simulation goroutine.
type Enemy struct {
	ID    types.EntityID
	Def   *defs.EnemyDefinition
	State EnemyState

	Health int
	Pos    Position
	Path   Path

	listeners []EnemyListener
}

// Initialize readies a freshly checked-out instance for a new life. Valid
// only from the uninitialized state or a terminal state; calling it on a
// live enemy is a contract violation and is ignored. Subscribers from the
// previous life are always gone after Initialize.
func (e *Enemy) Initialize(id types.EntityID, def *defs.EnemyDefinition) {
	if e.State == EnemyAlive {
		return
	}
	e.ID = id
	e.Def = def
	e.Health = def.Health
	e.State = EnemyAlive
	e.Pos = Position{}
	e.Path = Path{}
	e.listeners = e.listeners[:0]
}

// Subscribe adds a listener for this life. Cleared on Initialize and Reset.
func (e *Enemy) Subscribe(l EnemyListener) {
	e.listeners = append(e.listeners, l)
}

// TakeDamage applies damage to a live enemy. The health floor is 0; hitting
// it transitions to the dead state and fires the death notification exactly
// once. Damage against a non-live enemy has no effect.
func (e *Enemy) TakeDamage(amount int) {
	if e.State != EnemyAlive {
		return
	}
	if amount < 0 {
		amount = 0
	}
	if amount > e.Health {
		amount = e.Health
	}
	e.Health -= amount
	for _, l := range e.listeners {
		l.OnDamageTaken(e, amount)
	}
	if e.Health == 0 {
		e.State = EnemyDead
		for _, l := range e.listeners {
			l.OnDeath(e)
		}
	}
}

// ReachExit transitions a live enemy to the exited state and fires the exit
// notification exactly once. No effect on non-live enemies.
func (e *Enemy) ReachExit() {
	if e.State != EnemyAlive {
		return
	}
	e.State = EnemyExited
	for _, l := range e.listeners {
		l.OnExit(e)
	}
}

// Alive reports whether the enemy can still take damage or exit.
func (e *Enemy) Alive() bool {
	return e.State == EnemyAlive
}

// Reset wipes the enemy back to the uninitialized state. This is the pool's
// return hook; after Reset the instance can sit on the free list
// indefinitely without holding references to its previous life.
func (e *Enemy) Reset() {
	e.ID = 0
	e.Def = nil
	e.Health = 0
	e.State = EnemyUninitialized
	e.Pos = Position{}
	e.Path = Path{}
	e.listeners = e.listeners[:0]
}
