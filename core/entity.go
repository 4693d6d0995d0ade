package core

// Entity is a generation-tagged handle to a registry slot.
// The low 32 bits hold the slot index, the high 32 bits the slot generation.
// The zero value means "no entity": generations start at 1, so a live handle
// can never compare equal to 0.
type Entity uint64

// NewEntity packs a slot index and generation into a handle.
func NewEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index of the handle.
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation of the handle.
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}
