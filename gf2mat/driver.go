package gf2mat

import "log/slog"

// StrassenCutoff is the minimum of (m, k, n), in bits, below which the
// driver runs plain M4RM instead of selecting a decomposition cascade.
const StrassenCutoff = 4096

// AddMul computes tgt ^= lhs*rhs, the checked top-level entry point:
// AddMul validates that the operand shapes are compatible with this
// accumulating multiply and returns IncompatibleMatricesError or
// DimMismatchError rather than corrupting memory. Once validated, the
// actual computation runs through the unchecked hot path, addMul.
func AddMul(tgt, lhs, rhs *Matrix) error {
	if lhs.NCols() != rhs.NRows() {
		return &IncompatibleMatricesError{ARows: lhs.NRows(), ACols: lhs.NCols(), BRows: rhs.NRows(), BCols: rhs.NCols()}
	}
	if tgt.NRows() != lhs.NRows() || tgt.NCols() != rhs.NCols() {
		return &DimMismatchError{ProdRows: lhs.NRows(), ProdCols: rhs.NCols(), TgtRows: tgt.NRows(), TgtCols: tgt.NCols()}
	}
	addMul(tgt, lhs, rhs)
	return nil
}

// waChunks converts a bit width into a WindowAlign-chunk count. Callers
// only ever invoke it on widths already known to be a multiple of
// 8*WindowAlign (MaxNCols of any matrix-like value, or a recurse-block
// boundary derived from one).
func waChunks(bits int) int { return bits / (8 * WindowAlign) }

// addMul is the unchecked hot-path driver (spec's top-level `addmul`):
// it picks an algorithm cascade based on min(m, k, n), runs it on the
// largest recurse-block-aligned interior, then fixes up the three
// residual strips (right columns, bottom rows, residual k) with plain
// M4RM. Preconditions: tgt.NRows() == lhs.NRows(), tgt.MaxNCols() ==
// rhs.MaxNCols(), lhs.MaxNCols() >= rhs.NRows(). Violating these is a
// programming error, same as AddMulM4RM.
func addMul(tgt WindowableMut, lhs, rhs Windowable) {
	m, k, n := lhs.NRows(), rhs.NRows(), rhs.MaxNCols()
	minDim := m
	if k < minDim {
		minDim = k
	}
	if n < minDim {
		minDim = n
	}

	if minDim < StrassenCutoff {
		slog.Debug("gf2mat: cascade selected", "min_dim", minDim, "cascade", "M4RM")
		AddMulM4RM(tgt, lhs, rhs)
		return
	}

	exp := 1
	for minDim>>uint(exp) > StrassenCutoff {
		exp++
	}
	recurseSz := (1 << uint(exp)) * WindowAlign * 8

	cascade := make([]AlgoDescriptor, 0, exp/2+exp%2+1)
	for i := 0; i < exp/2; i++ {
		cascade = append(cascade, Decomp4x4)
	}
	for i := 0; i < exp%2; i++ {
		cascade = append(cascade, Decomp2x2)
	}
	cascade = append(cascade, M4RM)
	slog.Debug("gf2mat: cascade selected", "min_dim", minDim, "exp", exp, "recurse_sz", recurseSz, "cascade", cascade)

	mm := m - m%recurseSz
	kk := k - k%recurseSz
	nn := n - n%recurseSz

	interiorTgt := tgt.WindowMut(0, 0, mm, waChunks(nn))
	interiorLhs := lhs.Window(0, 0, mm, waChunks(kk))
	interiorRhs := rhs.Window(0, 0, kk, waChunks(nn))
	addmulRecurse(interiorTgt, interiorLhs, interiorRhs, cascade)

	lhsWidthChunks := waChunks(lhs.MaxNCols())
	rhsWidthChunks := waChunks(rhs.MaxNCols())
	nnChunks := waChunks(nn)
	kkChunks := waChunks(kk)

	// Right strip: C[:, nn:] ^= A * B[:, nn:]
	if nRem := n - nn; nRem > 0 {
		tgtStrip := tgt.WindowMut(0, nnChunks, m, rhsWidthChunks-nnChunks)
		rhsStrip := rhs.Window(0, nnChunks, k, rhsWidthChunks-nnChunks)
		AddMulM4RM(tgtStrip, lhs, rhsStrip)
	}

	// Bottom strip: C[mm:, :nn] ^= A[mm:, :] * B[:, :nn]
	if mRem := m - mm; mRem > 0 {
		tgtStrip := tgt.WindowMut(mm, 0, mRem, nnChunks)
		lhsStrip := lhs.Window(mm, 0, mRem, lhsWidthChunks)
		rhsStrip := rhs.Window(0, 0, k, nnChunks)
		AddMulM4RM(tgtStrip, lhsStrip, rhsStrip)
	}

	// Residual-k accumulation onto the interior: C[:mm, :nn] ^= A[:mm, kk:] * B[kk:, :nn].
	// This intentionally re-accumulates onto the same interior rectangle
	// addmulRecurse already wrote, rather than a disjoint strip: the
	// interior call and this one are two separate addends of the same
	// sum, and GF(2) accumulation doesn't care in what order they land.
	if kRem := k - kk; kRem > 0 {
		tgtStrip := tgt.WindowMut(0, 0, mm, nnChunks)
		lhsStrip := lhs.Window(0, kkChunks, mm, lhsWidthChunks-kkChunks)
		rhsStrip := rhs.Window(kk, 0, kRem, nnChunks)
		AddMulM4RM(tgtStrip, lhsStrip, rhsStrip)
	}
}
