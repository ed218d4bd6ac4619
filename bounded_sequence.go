// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore

// BoundedSequence stores up to A's capacity elements inline and never
// allocates: an insert that would exceed that capacity fails (reports
// false) rather than spilling to the heap. It is the strict inline-only
// container for callers that must guarantee no allocation occurs, at the
// cost of a hard upper bound.
type BoundedSequence[T any, A any, PA interface {
	*A
	inlineArray[T]
}] struct {
	_ noCopy

	inline A
	n      int
}

var _ Container[int] = (*BoundedSequence[int, Inline8[int], *Inline8[int]])(nil)

func (s *BoundedSequence[T, A, PA]) Len() int      { return s.n }
func (s *BoundedSequence[T, A, PA]) Cap() int      { return PA(&s.inline).Cap() }
func (s *BoundedSequence[T, A, PA]) IsEmpty() bool { return s.n == 0 }
func (s *BoundedSequence[T, A, PA]) Data() []T     { return PA(&s.inline).storage()[:s.n] }
func (s *BoundedSequence[T, A, PA]) At(i int) T    { return s.Data()[i] }
func (s *BoundedSequence[T, A, PA]) Set(i int, v T) { s.Data()[i] = v }

func (s *BoundedSequence[T, A, PA]) PushBack(v T) bool {
	if s.n == PA(&s.inline).Cap() {
		return false
	}
	PA(&s.inline).storage()[s.n] = v
	s.n++
	return true
}

func (s *BoundedSequence[T, A, PA]) PopBack() (T, bool) {
	var zero T
	if s.n == 0 {
		return zero, false
	}
	s.n--
	d := PA(&s.inline).storage()
	v := d[s.n]
	d[s.n] = zero
	return v, true
}

// Insert inserts v at index i, failing if already at capacity.
func (s *BoundedSequence[T, A, PA]) Insert(i int, v T) bool {
	if i < 0 || i > s.n || s.n == PA(&s.inline).Cap() {
		return false
	}
	d := PA(&s.inline).storage()
	copy(d[i+1:s.n+1], d[i:s.n])
	d[i] = v
	s.n++
	return true
}

func (s *BoundedSequence[T, A, PA]) RemoveAt(i int) bool {
	if i < 0 || i >= s.n {
		return false
	}
	d := PA(&s.inline).storage()
	var zero T
	copy(d[i:s.n-1], d[i+1:s.n])
	d[s.n-1] = zero
	s.n--
	return true
}

func (s *BoundedSequence[T, A, PA]) Clear() {
	var zero T
	d := PA(&s.inline).storage()
	for i := 0; i < s.n; i++ {
		d[i] = zero
	}
	s.n = 0
}

func (s *BoundedSequence[T, A, PA]) PushFront(v T) bool { return s.Insert(0, v) }

func (s *BoundedSequence[T, A, PA]) PopFront() (T, bool) {
	var zero T
	if s.n == 0 {
		return zero, false
	}
	d := PA(&s.inline).storage()
	v := d[0]
	copy(d[0:s.n-1], d[1:s.n])
	d[s.n-1] = zero
	s.n--
	return v, true
}

// InsertMove inserts the elements of src at index i, moving them out of
// src (src's elements are reset to the zero value on success). Fails without modifying s if src
// would not fit within the fixed inline capacity.
func (s *BoundedSequence[T, A, PA]) InsertMove(i int, src []T) bool {
	n := len(src)
	if i < 0 || i > s.n || s.n+n > PA(&s.inline).Cap() {
		return false
	}
	if n == 0 {
		return true
	}
	d := PA(&s.inline).storage()
	copy(d[i+n:s.n+n], d[i:s.n])
	copy(d[i:i+n], src)
	s.n += n
	var zero T
	for j := range src {
		src[j] = zero
	}
	return true
}

// Append appends src after the current last element, copying it. Fails
// without modifying s if src would not fit within the fixed inline
// capacity.
func (s *BoundedSequence[T, A, PA]) Append(src ...T) bool {
	n := len(src)
	if s.n+n > PA(&s.inline).Cap() {
		return false
	}
	if n == 0 {
		return true
	}
	d := PA(&s.inline).storage()
	copy(d[s.n:s.n+n], src)
	s.n += n
	return true
}

// AppendMove appends the elements of src, moving them out of src (src's
// elements are reset to the zero value on success).
func (s *BoundedSequence[T, A, PA]) AppendMove(src []T) bool {
	return s.InsertMove(s.n, src)
}

// RemoveAll removes every element for which remove returns true, compacting
// survivors in place. Returns the number removed.
func (s *BoundedSequence[T, A, PA]) RemoveAll(remove func(T) bool) int {
	d := PA(&s.inline).storage()
	w := 0
	for r := 0; r < s.n; r++ {
		if !remove(d[r]) {
			d[w] = d[r]
			w++
		}
	}
	removed := s.n - w
	var zero T
	for i := w; i < s.n; i++ {
		d[i] = zero
	}
	s.n = w
	return removed
}

// Reserve reports whether n elements fit within the fixed inline capacity;
// BoundedSequence never allocates, so there is nothing to reserve.
func (s *BoundedSequence[T, A, PA]) Reserve(n int) bool {
	return n <= PA(&s.inline).Cap()
}

// ResizeUninitialized sets Len to n without initializing newly exposed
// elements when growing. Fails if n exceeds the fixed inline capacity.
func (s *BoundedSequence[T, A, PA]) ResizeUninitialized(n int) bool {
	if n < 0 || n > PA(&s.inline).Cap() {
		return false
	}
	s.n = n
	return true
}

// Resize sets Len to n, zeroing newly exposed elements when growing.
func (s *BoundedSequence[T, A, PA]) Resize(n int) bool {
	old := s.n
	if !s.ResizeUninitialized(n) {
		return false
	}
	if n > old {
		var zero T
		d := PA(&s.inline).storage()[old:n]
		for i := range d {
			d[i] = zero
		}
	}
	return true
}

// ShrinkToFit is a no-op: BoundedSequence's storage is a fixed inline
// array with no heap allocation to release.
func (s *BoundedSequence[T, A, PA]) ShrinkToFit() bool { return true }
