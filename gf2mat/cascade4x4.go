package gf2mat

// addmulDecomp4x4 computes tgt ^= lhs*rhs using asymptotically fewer than
// the naive 4x4x4=64 recursive multiplies. Rather than deriving a
// separate fused 4x4 formula, it reaches the same multiply count as a
// direct 4x4 schedule by nesting the proven Decomp2x2 schedule two levels
// deep: the outer halving produces 7 multiplies at half size, and the
// remaining algos list is seeded with one extra Decomp2x2 so each of
// those 7 is itself halved again into 7 more, for 7*7=49 leaf multiplies
// at quarter size - fewer than 64, and built entirely from a schedule
// already verified correct at the 2x2 level.
func addmulDecomp4x4(tgt WindowableMut, lhs, rhs Windowable, algos []AlgoDescriptor) {
	inner := make([]AlgoDescriptor, 0, len(algos)+1)
	inner = append(inner, Decomp2x2)
	inner = append(inner, algos...)
	decompose(2, tgt, lhs, rhs, inner, schedule2x2)
}
