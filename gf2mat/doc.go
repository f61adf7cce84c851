// Package gf2mat implements dense matrix multiplication over GF(2), the
// field with two elements where addition is XOR and multiplication is AND.
//
// Matrices are stored bit-packed, row-major, least-significant-bit first
// within each byte, with each row padded to a multiple of an alignment
// constant. Sub-matrix windows share storage with their parent instead of
// copying, so the block-decomposition algorithms in this package can
// operate directly on the bytes of their operands.
//
// The entry point is AddMul, which computes C ^= A*B using a
// Method-of-Four-Russians base kernel below a size cutoff and a
// Strassen-style recursive cascade above it.
package gf2mat
