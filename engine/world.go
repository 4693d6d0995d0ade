package engine

import (
	"sync"
	"time"

	"github.com/johndunne/defender-game/components"
	"github.com/johndunne/defender-game/core"
)

// World is the authoritative entity registry: every live player, enemy, and
// bullet lives here, addressed by generation-tagged handles. Slot indices are
// recycled only after explicit destruction, and the generation bump makes any
// stale handle fail Alive and store lookups instead of aliasing the new
// occupant.
type World struct {
	mu    sync.Mutex
	slots []slot
	free  []uint32

	// Typed component stores
	Positions *Store[components.PositionComponent]
	Players   *Store[components.PlayerComponent]
	Enemies   *Store[components.EnemyComponent]
	Bullets   *Store[components.BulletComponent]
	Deaths    *Store[components.MarkedForDeathComponent]

	systems []System
}

type slot struct {
	generation uint32
	alive      bool
}

// NewWorld creates an empty registry.
func NewWorld() *World {
	return &World{
		slots:     make([]slot, 0, 64),
		Positions: NewStore[components.PositionComponent](),
		Players:   NewStore[components.PlayerComponent](),
		Enemies:   NewStore[components.EnemyComponent](),
		Bullets:   NewStore[components.BulletComponent](),
		Deaths:    NewStore[components.MarkedForDeathComponent](),
	}
}

// CreateEntity reserves a handle, recycling a released slot when one exists.
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	if n := len(w.free); n > 0 {
		index := w.free[n-1]
		w.free = w.free[:n-1]
		w.slots[index].alive = true
		return core.NewEntity(index, w.slots[index].generation)
	}

	index := uint32(len(w.slots))
	// Generations start at 1 so a live handle never equals the zero Entity
	w.slots = append(w.slots, slot{generation: 1, alive: true})
	return core.NewEntity(index, 1)
}

// DestroyEntity removes the entity from every store and releases its slot.
// Systems must not call this mid-phase; they tag entities with
// MarkedForDeathComponent and let the cull system apply destructions at the
// end of the tick.
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	if !w.aliveLocked(e) {
		w.mu.Unlock()
		return
	}
	index := e.Index()
	w.slots[index].alive = false
	w.slots[index].generation++
	w.free = append(w.free, index)
	w.mu.Unlock()

	w.Positions.Remove(e)
	w.Players.Remove(e)
	w.Enemies.Remove(e)
	w.Bullets.Remove(e)
	w.Deaths.Remove(e)
}

// Alive reports whether the handle still refers to a live entity.
func (w *World) Alive(e core.Entity) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.aliveLocked(e)
}

func (w *World) aliveLocked(e core.Entity) bool {
	index := e.Index()
	if int(index) >= len(w.slots) {
		return false
	}
	s := w.slots[index]
	return s.alive && s.generation == e.Generation()
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	count := 0
	for _, s := range w.slots {
		if s.alive {
			count++
		}
	}
	return count
}

// AddSystem registers a system and keeps the list sorted by priority.
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of the registered systems in run order.
func (w *World) Systems() []System {
	w.mu.Lock()
	defer w.mu.Unlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update advances the world by one fixed step, running every system in
// priority order. A non-positive dt is a no-op tick: no movement, no aging,
// no spawns, no destructions.
func (w *World) Update(dt time.Duration) {
	if dt <= 0 {
		return
	}
	for _, system := range w.Systems() {
		system.Update(w, dt)
	}
}
