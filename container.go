// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore

// Container is the common shape Sequence, SmallSequence and BoundedSequence
// all satisfy, so code that only needs ordered contiguous storage — not a
// particular growth policy — can be written once against the interface.
type Container[T any] interface {
	// Len returns the number of elements currently stored.
	Len() int
	// Cap returns the number of elements storable without reallocating
	// (Sequence, SmallSequence) or without failing (BoundedSequence).
	Cap() int
	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool
	// Data returns the live elements as a slice. The slice aliases the
	// container's storage and is invalidated by any mutating operation.
	Data() []T
	// At returns the element at index i. Panics if i is out of range, the
	// same as a slice index.
	At(i int) T
	// Set overwrites the element at index i. Panics if i is out of range.
	Set(i int, v T)
	// PushBack appends v, growing if needed (Sequence, SmallSequence) or
	// failing if the container is already at capacity (BoundedSequence).
	PushBack(v T) bool
	// PopBack removes and returns the last element, or (zero, false) if
	// empty.
	PopBack() (T, bool)
	// PushFront inserts v at index 0, shifting existing elements right.
	PushFront(v T) bool
	// PopFront removes and returns the first element, or (zero, false) if
	// empty.
	PopFront() (T, bool)
	// InsertMove inserts the elements of src at index i, moving them out of
	// src (src's elements are reset to the zero value on success).
	InsertMove(i int, src []T) bool
	// Append appends src after the current last element, copying it.
	Append(src ...T) bool
	// AppendMove appends the elements of src, moving them out of src (src's
	// elements are reset to the zero value on success).
	AppendMove(src []T) bool
	// RemoveAll removes every element for which remove returns true,
	// compacting survivors in place. Returns the number removed.
	RemoveAll(remove func(T) bool) int
	// Reserve ensures capacity for at least n elements without changing
	// Len. Reports false if n exceeds a fixed upper bound (BoundedSequence)
	// and allocation would be required to satisfy it.
	Reserve(n int) bool
	// Resize sets Len to n, zeroing newly exposed elements when growing.
	Resize(n int) bool
	// ResizeUninitialized sets Len to n without initializing newly exposed
	// elements when growing — the caller must write them before reading.
	ResizeUninitialized(n int) bool
	// ShrinkToFit releases unused trailing capacity. For a SmallSequence
	// that has spilled to the heap, it moves elements back into inline
	// storage when they fit. A no-op (reports true) where there is nothing
	// to shrink (BoundedSequence, or an already-tight container).
	ShrinkToFit() bool
	// Clear removes every element without releasing storage.
	Clear()
}
