// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore

import (
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// PopGuard is returned by every Push and pairs it with exactly one Pop,
// the scoped-guard pattern preferred over raw push/pop calls that a caller
// could mismatch; PushGlobal/CurrentGlobal remain available directly for
// callers that want the C-style discipline verbatim.
type PopGuard struct {
	kind   AllocatorKind
	scope  *Scope // nil when kind == Global
	depth  int
	popped bool
}

// Pop restores the allocator stack to its state before the matching Push.
// Popping out of order (another Push/Pop interleaved without being undone)
// returns ErrUnbalancedPop and is also recorded in the registry's
// diagnostics (RegistryDiagnostics), rather than corrupting the stack — a
// library embedded in a long-running Go process is better served by a
// reported, recoverable error than silent corruption. Popping an
// already-popped guard is a no-op.
func (g *PopGuard) Pop() error {
	if g == nil || g.popped {
		return nil
	}
	g.popped = true
	if g.kind == Global {
		return popGlobal(g)
	}
	return g.scope.pop(g)
}

var (
	globalMu    sync.Mutex
	globalStack = []Allocator{NewGlobalAllocator()}

	diagMu   sync.Mutex
	diagErrs error
)

// PushGlobal pushes allocator onto the process-wide allocator stack.
func PushGlobal(allocator Allocator) *PopGuard {
	globalMu.Lock()
	globalStack = append(globalStack, allocator)
	depth := len(globalStack)
	globalMu.Unlock()
	return &PopGuard{kind: Global, depth: depth}
}

// CurrentGlobal returns the allocator at the top of the process-wide stack.
func CurrentGlobal() Allocator {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalStack[len(globalStack)-1]
}

func popGlobal(g *PopGuard) error {
	globalMu.Lock()
	defer globalMu.Unlock()
	if len(globalStack) != g.depth {
		err := fmt.Errorf("%w: global stack expected depth %d, found %d", ErrUnbalancedPop, g.depth, len(globalStack))
		recordImbalance(err)
		return err
	}
	globalStack = globalStack[:g.depth-1]
	return nil
}

// Scope models a thread-local allocator stack. Go has no first-class
// thread-local storage, so a Scope is an explicit value the caller threads
// through a single logical "thread" of execution (typically one goroutine,
// created at its entry point) rather than discovered implicitly from
// goroutine identity. A Scope must not be shared between concurrently
// running goroutines; doing so reintroduces the race a genuinely
// thread-local stack is free of by construction.
type Scope struct {
	_ noCopy

	stack []Allocator
}

// NewScope creates a thread-local allocator stack, its default top
// forwarding to the system allocator (NewThreadLocalAllocator).
func NewScope() *Scope {
	return &Scope{stack: []Allocator{NewThreadLocalAllocator()}}
}

// defaultScope backs Current(ThreadLocal) for code that never constructs
// its own Scope. It is effectively a second global stack in that case —
// documented, not hidden — since there is no implicit per-goroutine
// storage to fall back to.
var defaultScope = NewScope()

// Push pushes allocator onto this scope's stack.
func (s *Scope) Push(allocator Allocator) *PopGuard {
	s.stack = append(s.stack, allocator)
	return &PopGuard{kind: ThreadLocal, scope: s, depth: len(s.stack)}
}

// Current returns the allocator at the top of this scope's stack.
func (s *Scope) Current() Allocator {
	return s.stack[len(s.stack)-1]
}

func (s *Scope) pop(g *PopGuard) error {
	if len(s.stack) != g.depth {
		err := fmt.Errorf("%w: thread-local stack expected depth %d, found %d", ErrUnbalancedPop, g.depth, len(s.stack))
		recordImbalance(err)
		return err
	}
	s.stack = s.stack[:g.depth-1]
	return nil
}

// Current returns the allocator at the top of the requested stack. Global
// consults the process-wide stack; ThreadLocal consults defaultScope. To
// consult a specific Scope directly, call (*Scope).Current instead.
func Current(kind AllocatorKind) Allocator {
	if kind == Global {
		return CurrentGlobal()
	}
	return defaultScope.Current()
}

func recordImbalance(err error) {
	logger.Warn("segcore: allocator stack imbalance", zap.Error(err))
	diagMu.Lock()
	diagErrs = multierr.Append(diagErrs, err)
	diagMu.Unlock()
}

// RegistryDiagnostics returns every allocator-stack imbalance error
// observed so far, combined with multierr.Append, or nil if none occurred.
func RegistryDiagnostics() error {
	diagMu.Lock()
	defer diagMu.Unlock()
	return diagErrs
}

// ResetRegistryDiagnostics clears the accumulated diagnostics. Intended for
// test isolation between cases that deliberately exercise unbalanced pops.
func ResetRegistryDiagnostics() {
	diagMu.Lock()
	diagErrs = nil
	diagMu.Unlock()
}
