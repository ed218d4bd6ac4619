// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/segcore/segcore"
)

// TestVirtualAllocator_Suite uses testify's require package for the
// assertion-heavy, many-step allocator/registry interactions that read
// more clearly as a single linear narrative than as a table of t.Errorf
// checks — the style ehrlich-b-go-ublk's backend tests use for its own
// multi-step RAM-backend setup/teardown sequences.
func TestVirtualAllocator_Suite(t *testing.T) {
	a := segcore.NewVirtualAllocator(1 << 20)
	require.NotNil(t, a, "NewVirtualAllocator should succeed for a modest reservation")
	defer a.Close()

	p1, ok := a.Allocate(64, 8)
	require.True(t, ok)
	require.Equal(t, a.Base(), p1)
	require.Equal(t, 64, a.HighWater())

	p2, ok := a.Allocate(64, 8)
	require.True(t, ok)
	require.NotEqual(t, p1, p2)
	require.Equal(t, 128, a.HighWater())

	// Only the most recent allocation can be rolled back.
	a.Release(p2, 64)
	require.Equal(t, 64, a.HighWater())
	a.Release(p1, 64) // not the most recent anymore — no-op
	require.Equal(t, 64, a.HighWater())
}

func TestScope_Suite(t *testing.T) {
	segcore.ResetRegistryDiagnostics()
	scope := segcore.NewScope()

	g1 := scope.Push(segcore.NewFixedBufferAllocator(make([]byte, 32)))
	g2 := scope.Push(segcore.NewFixedBufferAllocator(make([]byte, 32)))

	err := g1.Pop()
	require.ErrorIs(t, err, segcore.ErrUnbalancedPop)
	require.Error(t, segcore.RegistryDiagnostics())

	require.NoError(t, g2.Pop())
	segcore.ResetRegistryDiagnostics()
}
