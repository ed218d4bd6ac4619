// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore

// Handle stably references a slot in an Arena across Remove/Insert cycles.
// A Handle for a removed, since-reused slot fails Get/Remove (its
// generation no longer matches), rather than aliasing the new occupant.
type Handle struct {
	index      int
	generation uint32
}

// Valid reports whether h was ever issued by an Arena (the zero Handle is
// never issued, since generation starts at 1).
func (h Handle) Valid() bool { return h.generation != 0 }

type arenaSlot[T any] struct {
	value      T
	generation uint32
	occupied   bool
}

// Arena is a stable-key slot array: Insert returns a Handle
// good until that slot is explicitly Removed, insertion and removal do not
// invalidate any other live Handle, and a freed slot is reused by a later
// Insert — tracked with a free list of freed slot indices kept beside the
// slots, reused lowest-index-first so a Arena that fills and drains
// repeatedly does not grow unboundedly.
type Arena[T any] struct {
	_ noCopy

	slots Sequence[arenaSlot[T]]
	free  Sequence[int]
}

// NewArena returns an empty Arena with at least capacity preallocated.
func NewArena[T any](capacity int) *Arena[T] {
	a := &Arena[T]{}
	a.slots.Reserve(capacity)
	return a
}

// Len returns the number of occupied slots.
func (a *Arena[T]) Len() int { return a.slots.Len() - a.free.Len() }

// Insert stores value in a free slot (reusing the lowest free index first)
// or appends a new one, and returns a Handle for it.
func (a *Arena[T]) Insert(value T) Handle {
	if a.free.Len() > 0 {
		i := a.lowestFree()
		slot := &a.slots.Data()[i]
		slot.value = value
		slot.occupied = true
		return Handle{index: i, generation: slot.generation}
	}
	a.slots.PushBack(arenaSlot[T]{value: value, generation: 1, occupied: true})
	return Handle{index: a.slots.Len() - 1, generation: 1}
}

// lowestFree pops and returns the lowest index on the free list.
func (a *Arena[T]) lowestFree() int {
	d := a.free.Data()
	lo := 0
	for i := 1; i < len(d); i++ {
		if d[i] < d[lo] {
			lo = i
		}
	}
	idx := d[lo]
	a.free.RemoveAt(lo)
	return idx
}

// Get returns the value h references, or (zero, false) if h is stale or out
// of range.
func (a *Arena[T]) Get(h Handle) (T, bool) {
	var zero T
	if h.index < 0 || h.index >= a.slots.Len() {
		return zero, false
	}
	slot := &a.slots.Data()[h.index]
	if !slot.occupied || slot.generation != h.generation {
		return zero, false
	}
	return slot.value, true
}

// Set overwrites the value h references. Reports whether h was valid.
func (a *Arena[T]) Set(h Handle, value T) bool {
	if h.index < 0 || h.index >= a.slots.Len() {
		return false
	}
	slot := &a.slots.Data()[h.index]
	if !slot.occupied || slot.generation != h.generation {
		return false
	}
	slot.value = value
	return true
}

// Remove frees the slot h references, incrementing its generation so any
// outstanding copy of h is invalidated. Reports whether h was valid.
func (a *Arena[T]) Remove(h Handle) bool {
	if h.index < 0 || h.index >= a.slots.Len() {
		return false
	}
	slot := &a.slots.Data()[h.index]
	if !slot.occupied || slot.generation != h.generation {
		return false
	}
	var zero T
	slot.value = zero
	slot.occupied = false
	slot.generation++
	a.free.PushBack(h.index)
	return true
}

// Each calls fn for every occupied slot, stopping early if fn returns
// false.
func (a *Arena[T]) Each(fn func(Handle, T) bool) {
	for i, slot := range a.slots.Data() {
		if !slot.occupied {
			continue
		}
		if !fn(Handle{index: i, generation: slot.generation}, slot.value) {
			return
		}
	}
}
