// Copyright © 2024-2025 The palign Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package align

// BandedTraceMatrix stores trace cells only for the diagonals
// lower <= col-row <= upper: cols x bandWidth linear storage instead
// of cols x rows. Coordinates outside the band read as empty cells
// and are never materialized.
type BandedTraceMatrix struct {
	rows, cols   int
	lower, upper int
	width        int
	cells        []TraceCell
}

// Rows returns the number of logical rows (|seq2|+1).
func (m *BandedTraceMatrix) Rows() int { return m.rows }

// Cols returns the number of logical columns (|seq1|+1).
func (m *BandedTraceMatrix) Cols() int { return m.cols }

func (m *BandedTraceMatrix) resize(rows, cols, lower, upper int) {
	m.rows, m.cols = rows, cols
	m.lower, m.upper = lower, upper
	m.width = upper - lower + 1
	n := cols * m.width
	if cap(m.cells) >= n {
		m.cells = m.cells[:n]
		for i := range m.cells {
			m.cells[i] = TraceCell{}
		}
		return
	}
	m.cells = make([]TraceCell, n)
}

// contains reports whether (row, col) lies inside the band.
func (m *BandedTraceMatrix) contains(row, col int) bool {
	d := col - row
	return d >= m.lower && d <= m.upper
}

// index maps an in-band coordinate to linear storage: within column
// col the band covers rows col-upper .. col-lower, so the offset of
// row inside the column block is row-(col-upper).
func (m *BandedTraceMatrix) index(row, col int) int {
	return col*m.width + row - (col - m.upper)
}

// At returns the trace cell at (row, col), the empty cell when the
// coordinate is outside the band.
func (m *BandedTraceMatrix) At(row, col int) TraceCell {
	if !m.contains(row, col) {
		return TraceCell{}
	}
	return m.cells[m.index(row, col)]
}

func (m *BandedTraceMatrix) set(row, col int, tc TraceCell) {
	m.cells[m.index(row, col)] = tc
}

// bandRowRange returns the in-matrix rows of column col covered by
// the band [lower, upper], clipped to [0, rows-1]. lo > hi means the
// column has no in-band cell.
func bandRowRange(col, lower, upper, rows int) (lo, hi int) {
	lo = col - upper
	if lo < 0 {
		lo = 0
	}
	hi = col - lower
	if hi > rows-1 {
		hi = rows - 1
	}
	return lo, hi
}
