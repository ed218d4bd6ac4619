// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore

// Go generics have no const-generic array length, so SmallSequence and
// BoundedSequence take their inline capacity as a type parameter satisfying
// inlineArray rather than as an integer — the same shape of workaround the
// buffer-tier system this package grew out of used for a fixed set of
// concrete buffer sizes instead of one parameterized size. A concrete
// inline array type exposes its backing storage as a slice and reports its
// own capacity, so the segment engine never needs to know the length at
// compile time.
type inlineArray[T any] interface {
	// storage returns the array's full backing storage as a slice, valid
	// for exactly Cap() elements.
	storage() []T
	// Cap returns the array's fixed length.
	Cap() int
}

// Inline4 through Inline128 are the supported inline-capacity tiers. A
// caller needing a different capacity can define its own type satisfying
// inlineArray the same way.
type (
	Inline4[T any]   struct{ a [4]T }
	Inline8[T any]   struct{ a [8]T }
	Inline16[T any]  struct{ a [16]T }
	Inline32[T any]  struct{ a [32]T }
	Inline64[T any]  struct{ a [64]T }
	Inline128[T any] struct{ a [128]T }
)

func (s *Inline4[T]) storage() []T   { return s.a[:] }
func (s *Inline4[T]) Cap() int       { return len(s.a) }
func (s *Inline8[T]) storage() []T   { return s.a[:] }
func (s *Inline8[T]) Cap() int       { return len(s.a) }
func (s *Inline16[T]) storage() []T  { return s.a[:] }
func (s *Inline16[T]) Cap() int      { return len(s.a) }
func (s *Inline32[T]) storage() []T  { return s.a[:] }
func (s *Inline32[T]) Cap() int      { return len(s.a) }
func (s *Inline64[T]) storage() []T  { return s.a[:] }
func (s *Inline64[T]) Cap() int      { return len(s.a) }
func (s *Inline128[T]) storage() []T { return s.a[:] }
func (s *Inline128[T]) Cap() int     { return len(s.a) }
