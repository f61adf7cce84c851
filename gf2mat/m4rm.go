package gf2mat

import "math/bits"

// tblSz is the fixed table height exponent for the M4RM kernel: each
// table built below has 2^tblSz = 256 rows, matching one input byte's
// worth of column bits. Changing it would require widening the
// byte-to-rank lookup (grayIndex) beyond a single byte.
const tblSz = 8

const grayCodeLen = 1 << tblSz

// grayIndex[v] is the rank of v within the standard reflected Gray-code
// sequence: grayIndex[i^(i>>1)] == i.
var grayIndex [grayCodeLen]uint8

// incBit[i] is the bit index whose flip turns the i-th Gray code into the
// (i+1)-th Gray code, for i in [0, grayCodeLen-1). Building the M4RM table
// row by row via incBit costs exactly one row-XOR per entry.
var incBit [grayCodeLen - 1]uint8

func init() {
	for i := 0; i < grayCodeLen; i++ {
		g := i ^ (i >> 1)
		grayIndex[g] = uint8(i)
	}
	for i := 0; i < grayCodeLen-1; i++ {
		gi := i ^ (i >> 1)
		gj := (i + 1) ^ ((i + 1) >> 1)
		incBit[i] = uint8(bits.TrailingZeros(uint(gi ^ gj)))
	}
}

// tabulate fills rows 1..2^k of tbl (row 0 must already be zero, and is
// never written) such that row g equals the XOR of those rows of src in
// [srcRow, srcRow+k) whose column-index bit is set in the Gray-code value
// of rank g. Each new row is built from the previous one by XOR-ing in a
// single row of src, which is the entire point of using a Gray code: table
// construction costs one row-XOR per table entry rather than one per
// (entry, set bit) pair.
func tabulate(tbl MatLikeMut, src MatLike, srcRow, k int) {
	n := 1 << uint(k)
	for i := 1; i < n; i++ {
		incIdx := int(incBit[i-1])
		tbl.AddRowRowFrom(src, srcRow+incIdx, i-1, i)
	}
}

// AddMulM4RM computes tgt ^= lhs*rhs using the Method of Four Russians.
// It processes rhs in vertical slices of up to tblSz=8 rows at a time: for
// each slice it builds a 2^r-row lookup table of partial row sums (r=8
// except possibly on the last slice), then for every row of lhs reads the
// byte spanning those same 8 columns, maps it through grayIndex to a table
// row index, and XORs that table row into the matching row of tgt.
//
// Preconditions: tgt.NRows() == lhs.NRows(), tgt.NChunkCols() ==
// rhs.NChunkCols(), lhs.MaxNCols() >= rhs.NRows(). tgt is accumulated
// into, never overwritten. Violating these preconditions is a programming
// error: like the rest of the hot path, this function does not validate
// its arguments.
func AddMulM4RM(tgt MatLikeMut, lhs, rhs MatLike) {
	// Built at WindowAlign granularity with exactly rhs's byte width,
	// rather than via Zero (which rounds up to Align=128): rhs is often a
	// WindowAlign-chunked window or residual strip narrower than one cache
	// line, and tabulate/AddRowFrom below require tbl's row width to match
	// rhs's (and hence tgt's) row width exactly.
	tbl := zeroScratch(grayCodeLen, rhs.NByteCols()/WindowAlign)
	nrows := rhs.NRows()
	for sliceStart := 0; sliceStart < nrows; sliceStart += tblSz {
		subSz := tblSz
		if nrows-sliceStart < tblSz {
			subSz = nrows - sliceStart
		}
		tabulate(tbl, rhs, sliceStart, subSz)

		byteIdx := sliceStart / 8
		for i := 0; i < lhs.NRows(); i++ {
			num := lhs.RowBytes(i)[byteIdx]
			tblRow := int(grayIndex[num])
			tgt.AddRowFrom(tbl, tblRow, i)
		}
	}
}
