package gf2mat

import "fmt"

// scheduleFunc is the straight-line sequence of operand sums and recursive
// multiplies that implements one block-decomposition algorithm (e.g.
// Strassen's 7-multiply 2x2 schedule) in terms of a dim x dim grid of
// blocks and three reusable scratch matrices. algos is the remainder of
// the cascade: each recursive multiply the schedule performs must go
// through addmulRecurse(..., algos) so it can in turn be decomposed
// further or dispatched to the M4RM leaf.
type scheduleFunc func(c [][]WindowMut, a, b [][]Window, scratchMK, scratchMN, scratchKN WindowMut, algos []AlgoDescriptor)

// decompose implements the generic block-decomposition template: it
// splits lhs, rhs and tgt into a dim x dim grid of windows, allocates the
// three scratch matrices a schedule needs to hold intermediate operand
// sums and products, and runs sched over them.
//
// Preconditions: lhs.NRows(), rhs.NRows() and rhs.MaxNCols() are each
// divisible by dim, and the resulting per-block column counts are each
// divisible by 8*WindowAlign (so blocks land on WindowAlign-byte
// boundaries). The driver is responsible for only ever selecting a
// cascade that keeps this true; decompose itself does not check it.
func decompose(dim int, tgt WindowableMut, lhs, rhs Windowable, algos []AlgoDescriptor, sched scheduleFunc) {
	m, k, n := lhs.NRows(), rhs.NRows(), rhs.MaxNCols()
	mm, kk, nn := m/dim, k/dim, n/dim
	bk := kk / (8 * WindowAlign)
	bn := nn / (8 * WindowAlign)

	// Allocated at WindowAlign granularity, matching the byte width of the
	// aBlocks/bBlocks/cBlocks windows below exactly (bk/bn chunks), not an
	// owning Matrix's Align-rounded row stride - see zeroScratch.
	scratchMK := zeroScratch(mm, bk)
	scratchMN := zeroScratch(mm, bn)
	scratchKN := zeroScratch(kk, bn)

	aBlocks := Partition(lhs, dim, dim, mm, bk)
	bBlocks := Partition(rhs, dim, dim, kk, bn)
	cBlocks := PartitionMut(tgt, dim, dim, mm, bn)

	sched(cBlocks, aBlocks, bBlocks, scratchMK, scratchMN, scratchKN, algos)
}

// addmulRecurse computes tgt ^= lhs*rhs by popping the next descriptor off
// algos and dispatching to it. It is the single recursion point every
// decomposition schedule and the top-level driver go through, mirroring
// the Rust source's addmul_recurse.
func addmulRecurse(tgt WindowableMut, lhs, rhs Windowable, algos []AlgoDescriptor) {
	if len(algos) == 0 {
		panic("gf2mat: empty algorithm cascade")
	}
	algo, rest := algos[0], algos[1:]
	if len(rest) == 0 && !algo.IsIndependent() {
		panic(fmt.Sprintf("gf2mat: cascade ends in non-independent algorithm %v", algo))
	}
	switch algo {
	case M4RM:
		AddMulM4RM(tgt, lhs, rhs)
	case Decomp2x2:
		decompose(2, tgt, lhs, rhs, rest, schedule2x2)
	case Decomp4x4:
		addmulDecomp4x4(tgt, lhs, rhs, rest)
	case Decomp3x3, Decomp5x5:
		panic(fmt.Sprintf("gf2mat: %v has no wired schedule", algo))
	default:
		panic(fmt.Sprintf("gf2mat: unknown algorithm descriptor %v", algo))
	}
}
