// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore

// StrongID wraps a uint64 with a phantom type tag, so two IDs issued for
// different domains don't compare or assign interchangeably even though
// both are plain integers underneath — Go's equivalent of a
// template-tagged ID type, expressed with a type parameter that is never
// instantiated with a value.
//
// Tag is never referenced by StrongID's methods; it exists purely to make
// StrongID[OrderTag] and StrongID[UserTag] distinct types at compile time.
type StrongID[Tag any] struct {
	value uint64
}

// NewStrongID wraps an existing integer value as a StrongID.
func NewStrongID[Tag any](value uint64) StrongID[Tag] { return StrongID[Tag]{value: value} }

// Value returns the wrapped integer.
func (id StrongID[Tag]) Value() uint64 { return id.value }

// IsZero reports whether id is the zero value (never issued by
// GenerateUniqueKey, which starts scanning at 1).
func (id StrongID[Tag]) IsZero() bool { return id.value == 0 }

// GenerateUniqueKey scans used for the lowest value starting at 1 that is
// not already a member, inserts it into used, and returns the StrongID for
// it. Unlike a bare monotonic counter, this can never collide with an ID
// that was constructed directly with NewStrongID and inserted into used by
// the caller, and it reuses a low value freed by a prior Set.Remove instead
// of leaving it permanently retired.
//
// Not safe for concurrent use on the same used without external
// synchronization, since the scan-then-insert is not atomic.
func GenerateUniqueKey[Tag any](used *Set[StrongID[Tag]]) StrongID[Tag] {
	for v := uint64(1); ; v++ {
		id := StrongID[Tag]{value: v}
		if !used.Contains(id) {
			used.Add(id)
			return id
		}
	}
}
