package ecs

import "strconv"

// Entity is an opaque handle to one object in a world: the low 32 bits
// are a storage slot, the high 32 bits the slot's generation. A handle
// to a destroyed object goes stale once the slot is recycled, because
// the recycled slot carries a bumped generation.
//
// The zero Entity is never issued and doubles as "no entity".
type Entity uint64

type entityID uint32
type generation uint32

const generationShift = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<generationShift | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> generationShift))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// Valid reports whether the handle refers to any entity at all. It does
// not check liveness; see IsAlive for that.
func (e Entity) Valid() bool {
	return e > 0
}
