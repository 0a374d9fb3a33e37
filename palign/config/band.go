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

package config

// LowerDiagonal and UpperDiagonal are named single-field wrappers so
// band bounds cannot be swapped positionally at call sites.
type LowerDiagonal struct {
	Value int
}

// UpperDiagonal is the upper band bound, see LowerDiagonal.
type UpperDiagonal struct {
	Value int
}

// Band restricts the DP matrix to cells with
// Lower <= column-row <= Upper. Cells outside the band are treated
// as -infinity and never materialized.
type Band struct {
	Lower LowerDiagonal
	Upper UpperDiagonal
}

func (Band) id() ElementID { return IDBand }

// NewBand is a convenience constructor.
func NewBand(lower, upper int) Band {
	return Band{Lower: LowerDiagonal{lower}, Upper: UpperDiagonal{upper}}
}

// Width is the number of diagonals covered by the band.
func (b Band) Width() int {
	return b.Upper.Value - b.Lower.Value + 1
}

// Contains reports whether the cell (row, col) lies inside the band.
func (b Band) Contains(row, col int) bool {
	d := col - row
	return d >= b.Lower.Value && d <= b.Upper.Value
}

// validate rejects empty bands, and, for global alignment, bands
// excluding the mandatory origin or sink cell. A band that excludes
// these cells would silently yield a wrong answer, so it is an error
// instead.
func (b Band) validate(len1, len2 int, m Method) error {
	lo, hi := b.Lower.Value, b.Upper.Value
	if lo > hi {
		return newErrorf("invalid band: lower diagonal (%d) > upper diagonal (%d)", lo, hi)
	}
	if m.Local {
		return nil
	}
	if !m.FreeEndSeq1Leading && !m.FreeEndSeq2Leading {
		if lo > 0 || hi < 0 {
			return newErrorf("invalid band [%d, %d]: origin cell excluded for global alignment", lo, hi)
		}
	}
	if !m.FreeEndSeq1Trailing && !m.FreeEndSeq2Trailing {
		if d := len1 - len2; d < lo || d > hi {
			return newErrorf("invalid band [%d, %d]: sink cell on diagonal %d excluded for global alignment",
				lo, hi, d)
		}
	}
	return nil
}
