package gf2mat

// AlgoDescriptor names one stage of a multiplication cascade (spec.md's
// "algorithm cascade"): either the M4RM leaf kernel, or a block
// decomposition that recurses into the next stage of the cascade.
type AlgoDescriptor int

const (
	// M4RM is the Method-of-Four-Russians leaf kernel. It is the only
	// independent descriptor: it needs no further algorithm to recurse
	// into, so it must be the last entry of any cascade.
	M4RM AlgoDescriptor = iota
	// Decomp2x2 is the Strassen-style 2x2 block decomposition (7
	// recursive multiplies instead of the naive 8).
	Decomp2x2
	// Decomp3x3 is declared for completeness but has no wired schedule;
	// the driver never emits it.
	Decomp3x3
	// Decomp4x4 performs asymptotically fewer than the naive 4x4x4=64
	// recursive multiplies by nesting the Decomp2x2 schedule two levels
	// deep (49 leaf multiplies).
	Decomp4x4
	// Decomp5x5 is declared for completeness but has no wired schedule;
	// the driver never emits it.
	Decomp5x5
)

func (a AlgoDescriptor) String() string {
	switch a {
	case M4RM:
		return "M4RM"
	case Decomp2x2:
		return "Decomp2x2"
	case Decomp3x3:
		return "Decomp3x3"
	case Decomp4x4:
		return "Decomp4x4"
	case Decomp5x5:
		return "Decomp5x5"
	default:
		return "AlgoDescriptor(?)"
	}
}

// IsIndependent reports whether a needs no inner algorithm to recurse
// into. Only M4RM is independent; a cascade must end with it.
func (a AlgoDescriptor) IsIndependent() bool {
	return a == M4RM
}
