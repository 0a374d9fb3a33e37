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

// resizeCells grows (reusing the backing array when possible) a cell
// slice to n entries.
func resizeCells(buf []Cell, n int) []Cell {
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]Cell, n)
}

// TraceMatrix is the full trace matrix: rows x cols direction cells
// in column-major linear storage. It lives for one alignment call
// and is reused across calls by the owning Aligner.
type TraceMatrix struct {
	rows, cols int
	cells      []TraceCell
}

// Rows returns the number of rows (|seq2|+1).
func (m *TraceMatrix) Rows() int { return m.rows }

// Cols returns the number of columns (|seq1|+1).
func (m *TraceMatrix) Cols() int { return m.cols }

func (m *TraceMatrix) resize(rows, cols int) {
	m.rows, m.cols = rows, cols
	n := rows * cols
	if cap(m.cells) >= n {
		m.cells = m.cells[:n]
		for i := range m.cells {
			m.cells[i] = TraceCell{}
		}
		return
	}
	m.cells = make([]TraceCell, n)
}

// At returns the trace cell at (row, col).
func (m *TraceMatrix) At(row, col int) TraceCell {
	return m.cells[col*m.rows+row]
}

func (m *TraceMatrix) set(row, col int, tc TraceCell) {
	m.cells[col*m.rows+row] = tc
}

// EqualTraceMatrix reports structural equality: same dimensions and
// equal cells at every coordinate. For tests only, not the hot path.
func EqualTraceMatrix(a, b interface {
	Rows() int
	Cols() int
	At(row, col int) TraceCell
}) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for col := 0; col < a.Cols(); col++ {
		for row := 0; row < a.Rows(); row++ {
			if a.At(row, col) != b.At(row, col) {
				return false
			}
		}
	}
	return true
}
