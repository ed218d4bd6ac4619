// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package segcore is a contiguous-storage memory core: a family of
// containers built on a single uniform representation (the segment) that
// unifies heap-grown buffers, inline small-buffer optimizations, and
// virtual-memory-backed stable arrays behind one ownership and addressing
// discipline.
//
// # Layers
//
// Five parts compose the core, leaves first:
//
//	VirtualMemory        reserve/commit/decommit a page-aligned address range.
//	Allocator + registry per-scope, per-thread stacks of the current allocator.
//	segment              the shared heap storage engine.
//	Sequence family       Sequence, SmallSequence, BoundedSequence, Map, Set, Arena.
//	String family         String, StringView, per-encoding iterators, Builder.
//
// # Segments
//
// Sequence and the heap overflow of SmallSequence are built on the same
// segment engine (Map, Set and Arena are in turn built on Sequence). Small
// and bounded variants carry a fixed-size inline array (Inline4..Inline128);
// SmallSequence only touches the current Allocator once that array
// overflows, and BoundedSequence never does, failing instead. All three
// sequence variants satisfy Container[T]; code written against Container[T]
// cannot observe which representation backs a given value.
//
// # Memory dump
//
// segment stores its payload as an ordinary Go slice, which is not
// relocatable: copying a struct containing a segment's bytes elsewhere
// leaves its slice header pointing at the original backing array. The
// memory-dump workflow (BeginDump, DumpScope, LoadView, Materialize) is a
// separate, lower-level facility for callers building their own
// offset-addressed structures directly on top of VirtualAllocator, where
// every reference is a byte offset from the allocator's own stable base
// address rather than a Go pointer — the one representation that does
// survive being copied out and reinterpreted in place.
//
// # Concurrency
//
// The entire core is single-threaded per instance: segments, containers,
// strings, builders and VirtualMemory values are not internally
// synchronized. The process-wide allocator stack is the one piece of shared
// state and is guarded internally by a mutex; the thread-local stack is
// modeled explicitly via Scope rather than goroutine-local storage, since
// Go has none.
package segcore
