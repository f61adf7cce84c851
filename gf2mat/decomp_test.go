package gf2mat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSchedule2x2AgainstOracle(t *testing.T) {
	m, k, n := 50, 1024, 1024
	a, err := Random(m, k, newRandReader(11))
	require.NoError(t, err)
	b, err := Random(k, n, newRandReader(12))
	require.NoError(t, err)

	want := oracleMul(a, b)
	got := Zero(m, n)
	addmulRecurse(got, a, b, []AlgoDescriptor{Decomp2x2, M4RM})
	require.True(t, want.Equal(got))
}

func TestDecomp4x4AgainstOracle(t *testing.T) {
	// m must be a multiple of the cascade's total row-divisor (4, from the
	// two nested halvings addmulDecomp4x4 performs) - decompose truncates
	// m/dim rather than handling a remainder; remainder rows are the
	// driver's job (residual strip fix-up in driver.go), not this engine's.
	m, k, n := 36, 2048, 2048
	a, err := Random(m, k, newRandReader(21))
	require.NoError(t, err)
	b, err := Random(k, n, newRandReader(22))
	require.NoError(t, err)

	want := oracleMul(a, b)
	got := Zero(m, n)
	addmulRecurse(got, a, b, []AlgoDescriptor{Decomp4x4, M4RM})
	require.True(t, want.Equal(got))
}

// Regression: k is chosen so each A block of the 2x2 split is WindowAlign
// (16 bytes) wide; the B and C blocks are 64 bytes wide, because decompose
// splits rhs's padded 1024-bit MaxNCols rather than n. All of them are
// under an owning Matrix's Align (128-byte) row stride.
// decompose's scratch matrices must be allocated at the block's own
// width, not rounded up to Align, or the schedule's row-XORs read past
// the end of the narrower operand rows.
func TestSchedule2x2NarrowBlocksAgainstOracle(t *testing.T) {
	m, k, n := 10, 256, 256
	a, err := Random(m, k, newRandReader(41))
	require.NoError(t, err)
	b, err := Random(k, n, newRandReader(42))
	require.NoError(t, err)

	want := oracleMul(a, b)
	got := Zero(m, n)
	addmulRecurse(got, a, b, []AlgoDescriptor{Decomp2x2, M4RM})
	require.True(t, want.Equal(got))
}

// Regression: same as above but for the nested Decomp4x4 schedule, whose
// inner 2x2 halving produces blocks as narrow as WindowAlign bytes.
func TestDecomp4x4NarrowBlocksAgainstOracle(t *testing.T) {
	m, k, n := 20, 512, 512
	a, err := Random(m, k, newRandReader(43))
	require.NoError(t, err)
	b, err := Random(k, n, newRandReader(44))
	require.NoError(t, err)

	want := oracleMul(a, b)
	got := Zero(m, n)
	addmulRecurse(got, a, b, []AlgoDescriptor{Decomp4x4, M4RM})
	require.True(t, want.Equal(got))
}

func TestCascadeLongerThanNeededStillAgrees(t *testing.T) {
	// Total row-divisor is 4*2*2=16 across this cascade.
	m, k, n := 48, 4096, 4096
	a, err := Random(m, k, newRandReader(31))
	require.NoError(t, err)
	b, err := Random(k, n, newRandReader(32))
	require.NoError(t, err)

	want := oracleMul(a, b)
	got := Zero(m, n)
	addmulRecurse(got, a, b, []AlgoDescriptor{Decomp4x4, Decomp2x2, Decomp2x2, M4RM})
	require.True(t, want.Equal(got))
}

func TestAddmulRecurseUnwiredAlgoPanics(t *testing.T) {
	m := Zero(128, 128)
	a := Zero(128, 128)
	b := Zero(128, 128)
	require.Panics(t, func() {
		addmulRecurse(m, a, b, []AlgoDescriptor{Decomp3x3, M4RM})
	})
}

func TestAddmulRecurseNonIndependentTailPanics(t *testing.T) {
	m := Zero(128, 128)
	a := Zero(128, 128)
	b := Zero(128, 128)
	require.Panics(t, func() {
		addmulRecurse(m, a, b, []AlgoDescriptor{Decomp2x2})
	})
}
