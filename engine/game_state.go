package engine

import "sync/atomic"

// GameState holds the session counters shared between systems and the
// presentation layer. Atomics let renderers read the score without
// synchronizing with the tick.
type GameState struct {
	score    atomic.Int64
	tickHits atomic.Int64
}

// NewGameState creates a zeroed state.
func NewGameState() *GameState {
	return &GameState{}
}

// Score returns the running total. It never decreases.
func (s *GameState) Score() int64 {
	return s.score.Load()
}

// AddScore adds n points. Negative deltas are a programmer error and are
// ignored to preserve the monotonic score invariant.
func (s *GameState) AddScore(n int64) {
	if n <= 0 {
		return
	}
	s.score.Add(n)
}

// AddTickHits records bullet-enemy hits resolved this tick.
func (s *GameState) AddTickHits(n int64) {
	if n <= 0 {
		return
	}
	s.tickHits.Add(n)
}

// TakeTickHits returns the hits recorded this tick and resets the counter.
func (s *GameState) TakeTickHits() int64 {
	return s.tickHits.Swap(0)
}
