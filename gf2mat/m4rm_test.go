package gf2mat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrayIndexIsInverseOfGrayCode(t *testing.T) {
	for i := 0; i < grayCodeLen; i++ {
		g := i ^ (i >> 1)
		require.Equal(t, uint8(i), grayIndex[g])
	}
}

func TestAddMulM4RMAgainstOracle(t *testing.T) {
	sizes := []struct{ m, k, n int }{
		{1, 1, 1}, {3, 5, 2}, {8, 8, 8}, {9, 17, 33}, {64, 64, 64}, {70, 130, 90},
	}
	for _, sz := range sizes {
		a, err := Random(sz.m, sz.k, newRandReader(uint64(sz.m*1000+sz.k)))
		require.NoError(t, err)
		b, err := Random(sz.k, sz.n, newRandReader(uint64(sz.k*1000+sz.n)))
		require.NoError(t, err)

		want := oracleMul(a, b)
		got := Zero(sz.m, sz.n)
		AddMulM4RM(got, a, b)
		require.True(t, want.Equal(got), "m=%d k=%d n=%d", sz.m, sz.k, sz.n)
	}
}

func TestAddMulM4RMAccumulates(t *testing.T) {
	a, err := Random(10, 10, newRandReader(7))
	require.NoError(t, err)
	b, err := Random(10, 10, newRandReader(8))
	require.NoError(t, err)

	once := Zero(10, 10)
	AddMulM4RM(once, a, b)

	twice := Zero(10, 10)
	AddMulM4RM(twice, a, b)
	AddMulM4RM(twice, a, b)

	// Accumulating the same product twice XORs it with itself: zero.
	require.True(t, twice.Equal(Zero(10, 10)))
	require.False(t, once.Equal(Zero(10, 10)))
}

// Regression: rhs is a Window narrower (32 bytes) than an owning Matrix's
// minimum Align (128-byte) row stride, exercised exactly as the driver's
// residual-strip fix-ups and the decomposition schedules use AddMulM4RM.
// The M4RM table must be built at rhs's own width, not rounded up to
// Align, or tabulate reads past the end of rhs's rows.
func TestAddMulM4RMNarrowWindowOperand(t *testing.T) {
	lhs, err := Random(40, 64, newRandReader(51))
	require.NoError(t, err)
	b, err := Random(64, 256, newRandReader(52))
	require.NoError(t, err)
	rhsWindow := b.Window(0, 0, 64, 2)
	require.Less(t, rhsWindow.NByteCols(), Align)

	tgt := Zero(40, 256)
	tgtWindow := tgt.WindowMut(0, 0, 40, 2)
	AddMulM4RM(tgtWindow, lhs, rhsWindow)

	want := oracleMul(lhs, b)
	require.True(t, want.Equal(tgt))
}

func TestAddMulM4RMZeroAbsorbing(t *testing.T) {
	zeroA := Zero(12, 20)
	b, err := Random(20, 9, newRandReader(3))
	require.NoError(t, err)
	c := Zero(12, 9)
	require.NoError(t, c.Set(1, 1, true))
	before := Zero(12, 9)
	require.NoError(t, before.Set(1, 1, true))

	AddMulM4RM(c, zeroA, b)
	require.True(t, c.Equal(before))
}
