package components

// MarkedForDeathComponent tags an entity for destruction by the cull system.
// Tagging instead of destroying in place keeps the registry snapshot-stable
// for every system running earlier in the tick.
type MarkedForDeathComponent struct{}
