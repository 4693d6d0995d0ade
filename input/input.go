// Package input defines the device-independent key state the simulation
// consumes. Frontends translate their native events (tcell key events,
// ebiten key polling) into Actions or Snapshots; the core never sees a
// device API.
package input

import "sync"

// Action is a semantic game action bound to some key.
type Action uint8

const (
	ActionNone Action = iota
	ActionRotateLeft
	ActionRotateRight
	ActionFire
	ActionQuit
)

// Snapshot is the key state for one simulation tick.
type Snapshot struct {
	RotateLeft  bool
	RotateRight bool
	Fire        bool
	Quit        bool
}

// Latch accumulates edge-triggered key events between ticks. Terminal
// frontends only see key-down events (with auto-repeat), so each press is
// latched and consumed by the next tick; Quit is sticky once requested.
type Latch struct {
	mu   sync.Mutex
	snap Snapshot
}

// Press records an action until the next Take.
func (l *Latch) Press(a Action) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch a {
	case ActionRotateLeft:
		l.snap.RotateLeft = true
	case ActionRotateRight:
		l.snap.RotateRight = true
	case ActionFire:
		l.snap.Fire = true
	case ActionQuit:
		l.snap.Quit = true
	}
}

// Take returns the accumulated snapshot and clears it for the next tick.
// Quit survives the clear: session termination cannot be lost to a race
// between the input goroutine and the tick.
func (l *Latch) Take() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := l.snap
	l.snap = Snapshot{Quit: l.snap.Quit}
	return out
}
