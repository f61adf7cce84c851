package gf2mat

// Window is an immutable borrowed view over a rectangular sub-region of a
// larger matrix or window. It shares storage with its parent: taking a
// window never copies bits. Column offsets and widths are measured in
// WindowAlign-byte chunks, so ALIGN % WindowAlign == 0 must hold for the
// parent (checked once, in storage.go's init).
type Window struct{ dims }

// WindowMut is the mutable counterpart of Window: it grants exclusive
// write access to its rectangle. Callers are responsible for the
// aliasing discipline spec.md describes: at any instant, live mutable
// windows and live immutable windows into the same parent storage must
// cover pairwise-disjoint byte ranges. Partition/PartitionMut satisfy
// this by construction; ad-hoc overlapping WindowMut calls do not.
type WindowMut struct{ dims }

var (
	_ MatLike    = Window{}
	_ MatLike    = WindowMut{}
	_ MatLikeMut = WindowMut{}
)

// zeroScratch allocates a freestanding, zero-initialized WindowMut of
// nrows x (nChunkCols*WindowAlign) bits, packed at WindowAlign granularity
// with no Align (128-byte) row-stride padding - the scratch storage a
// decomposition schedule or the M4RM table needs when its row width must
// match a block or operand window exactly, rather than an owning Matrix's
// cache-line-rounded stride. Mirrors the Rust source's
// AlignedGF2Mat::<WINDOW_ALIGN> scratch allocations.
func zeroScratch(nrows, nChunkCols int) WindowMut {
	rowStride := nChunkCols * WindowAlign
	return WindowMut{dims{
		nrows:      nrows,
		nChunkCols: nChunkCols,
		rowStride:  rowStride,
		chunkBytes: WindowAlign,
		data:       make([]byte, nrows*rowStride),
	}}
}

// takeWindow computes the dims of a sub-window at the given offset.
// row and chunkCol are measured from the start of d: chunkCol in
// WindowAlign-byte units, row in whole rows. Precondition: the resulting
// rectangle fits inside d (row+nrows <= d.nrows, chunkCol+nChunkCols <=
// d.NByteCols()/WindowAlign).
func (d *dims) takeWindow(row, chunkCol, nrows, nChunkCols int) dims {
	byteOff := row*d.rowStride + chunkCol*WindowAlign
	nByteCols := nChunkCols * WindowAlign
	span := byteOff
	if nrows > 0 {
		span = byteOff + (nrows-1)*d.rowStride + nByteCols
	}
	return dims{
		nrows:      nrows,
		nChunkCols: nChunkCols,
		rowStride:  d.rowStride,
		chunkBytes: WindowAlign,
		data:       d.data[byteOff:span:span],
	}
}

// Window returns an immutable window of m at the given offset (chunkCol
// in WindowAlign-byte units).
func (m *Matrix) Window(row, chunkCol, nrows, nChunkCols int) Window {
	return Window{m.dims.takeWindow(row, chunkCol, nrows, nChunkCols)}
}

// WindowMut returns a mutable window of m at the given offset.
func (m *Matrix) WindowMut(row, chunkCol, nrows, nChunkCols int) WindowMut {
	return WindowMut{m.dims.takeWindow(row, chunkCol, nrows, nChunkCols)}
}

// Window returns an immutable sub-window of w.
func (w Window) Window(row, chunkCol, nrows, nChunkCols int) Window {
	return Window{w.dims.takeWindow(row, chunkCol, nrows, nChunkCols)}
}

// Window returns an immutable sub-window of a mutable window.
func (w WindowMut) Window(row, chunkCol, nrows, nChunkCols int) Window {
	return Window{w.dims.takeWindow(row, chunkCol, nrows, nChunkCols)}
}

// WindowMut returns a mutable sub-window of w.
func (w WindowMut) WindowMut(row, chunkCol, nrows, nChunkCols int) WindowMut {
	return WindowMut{w.dims.takeWindow(row, chunkCol, nrows, nChunkCols)}
}

// Windowable is implemented by anything a window can be carved out of:
// Matrix, Window and WindowMut.
type Windowable interface {
	MatLike
	Window(row, chunkCol, nrows, nChunkCols int) Window
}

// WindowableMut is implemented by anything a mutable window can be
// carved out of: Matrix and WindowMut.
type WindowableMut interface {
	MatLikeMut
	Windowable
	WindowMut(row, chunkCol, nrows, nChunkCols int) WindowMut
}

var (
	_ Windowable    = (*Matrix)(nil)
	_ Windowable    = Window{}
	_ Windowable    = WindowMut{}
	_ WindowableMut = (*Matrix)(nil)
	_ WindowableMut = WindowMut{}
)

// Partition splits src into a blockRows x blockCols grid of equally
// sized immutable windows, each rr rows by cc WindowAlign-chunks wide.
// Precondition: the rectangle (blockRows*rr) x (blockCols*cc*WindowAlign
// bits) fits inside src.
func Partition(src Windowable, blockRows, blockCols, rr, cc int) [][]Window {
	grid := make([][]Window, blockRows)
	for br := 0; br < blockRows; br++ {
		row := make([]Window, blockCols)
		for bc := 0; bc < blockCols; bc++ {
			row[bc] = src.Window(rr*br, cc*bc, rr, cc)
		}
		grid[br] = row
	}
	return grid
}

// PartitionMut splits src into a blockRows x blockCols grid of equally
// sized mutable windows. The grid cells are disjoint by construction, so
// they satisfy the no-overlapping-mutable-windows invariant automatically.
func PartitionMut(src WindowableMut, blockRows, blockCols, rr, cc int) [][]WindowMut {
	grid := make([][]WindowMut, blockRows)
	for br := 0; br < blockRows; br++ {
		row := make([]WindowMut, blockCols)
		for bc := 0; bc < blockCols; bc++ {
			row[bc] = src.WindowMut(rr*br, cc*bc, rr, cc)
		}
		grid[br] = row
	}
	return grid
}
