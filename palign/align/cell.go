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

import "math"

// minScore stands in for -infinity. Half of MinInt so one more
// addition of a gap constant cannot wrap around.
const minScore = math.MinInt / 2

// Cell is the affine DP triple at one matrix coordinate: the best
// score ending in a match/mismatch (M), ending with an open
// horizontal gap run (H), and ending with an open vertical gap
// run (V).
type Cell struct {
	M int
	H int
	V int
}

// infCell is the out-of-matrix (or out-of-band) neighbor.
var infCell = Cell{M: minScore, H: minScore, V: minScore}

// TraceCell carries a direction bitmask per DP state: M restricted
// to {diagonal, up, left}, H to {left, left-open}, V to
// {up, up-open}.
type TraceCell struct {
	M TraceDirections
	H TraceDirections
	V TraceDirections
}

// Coord is a DP matrix coordinate: Row indexes sequence 2 (plus
// one), Col indexes sequence 1 (plus one).
type Coord struct {
	Row int
	Col int
}
