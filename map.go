// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore

// ComparableToKey lets a caller look a Map entry up by a value that is not
// itself K — a borrowed view over a key, say — without first constructing
// an owning K. Equals compares the receiver against a stored key.
type ComparableToKey[K any] interface {
	Equals(K) bool
}

// Map is an insertion-ordered associative container: linear key/value pairs
// in a Sequence, searched by equality rather than hashed.
// Iteration order always matches insertion order, and a later insert of an
// existing key updates the value in place without reordering it — the
// property a hash map does not give you and this container exists for.
type Map[K comparable, V any] struct {
	_ noCopy

	pairs Sequence[pair[K, V]]
}

type pair[K comparable, V any] struct {
	Key K
	Val V
}

// NewMap returns an empty Map with at least capacity preallocated.
func NewMap[K comparable, V any](capacity int) *Map[K, V] {
	m := &Map[K, V]{}
	m.pairs.Reserve(capacity)
	return m
}

func (m *Map[K, V]) Len() int { return m.pairs.Len() }

func (m *Map[K, V]) indexOf(key K) int {
	d := m.pairs.Data()
	for i := range d {
		if d[i].Key == key {
			return i
		}
	}
	return -1
}

// Get returns the value for key, or (zero, false) if absent.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if i := m.indexOf(key); i >= 0 {
		return m.pairs.Data()[i].Val, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool { return m.indexOf(key) >= 0 }

// Set inserts key/val, or updates val in place if key is already present.
// Reports whether this was a new key. Equivalent to InsertOrOverwrite.
func (m *Map[K, V]) Set(key K, val V) bool {
	if i := m.indexOf(key); i >= 0 {
		m.pairs.Data()[i].Val = val
		return false
	}
	m.pairs.PushBack(pair[K, V]{Key: key, Val: val})
	return true
}

// InsertOrOverwrite inserts key/val, or updates val in place if key is
// already present. Reports whether this was a new key.
func (m *Map[K, V]) InsertOrOverwrite(key K, val V) bool { return m.Set(key, val) }

// InsertIfAbsent inserts key/val only if key is not already present.
// Reports whether the insert happened; an existing value for key is left
// untouched.
func (m *Map[K, V]) InsertIfAbsent(key K, val V) bool {
	if m.indexOf(key) >= 0 {
		return false
	}
	m.pairs.PushBack(pair[K, V]{Key: key, Val: val})
	return true
}

func (m *Map[K, V]) indexOfView(view ComparableToKey[K]) int {
	d := m.pairs.Data()
	for i := range d {
		if view.Equals(d[i].Key) {
			return i
		}
	}
	return -1
}

// GetByView looks a value up by any ComparableToKey[K], such as a borrowed
// view over a key, without constructing an owning K.
func (m *Map[K, V]) GetByView(view ComparableToKey[K]) (V, bool) {
	if i := m.indexOfView(view); i >= 0 {
		return m.pairs.Data()[i].Val, true
	}
	var zero V
	return zero, false
}

// ContainsView reports whether some stored key equals view.
func (m *Map[K, V]) ContainsView(view ComparableToKey[K]) bool {
	return m.indexOfView(view) >= 0
}

// Remove deletes key, preserving the relative order of the remaining
// entries. Reports whether key was present.
func (m *Map[K, V]) Remove(key K) bool {
	i := m.indexOf(key)
	if i < 0 {
		return false
	}
	m.pairs.RemoveAt(i)
	return true
}

func (m *Map[K, V]) Clear() { m.pairs.Clear() }

// Each calls fn for every key/value pair in insertion order, stopping early
// if fn returns false.
func (m *Map[K, V]) Each(fn func(K, V) bool) {
	for _, p := range m.pairs.Data() {
		if !fn(p.Key, p.Val) {
			return
		}
	}
}

// Keys returns every key, in insertion order.
func (m *Map[K, V]) Keys() []K {
	d := m.pairs.Data()
	out := make([]K, len(d))
	for i := range d {
		out[i] = d[i].Key
	}
	return out
}
