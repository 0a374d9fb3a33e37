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

// recursion holds the per-cell affine gap recurrence constants,
// resolved once per alignment call.
//
//	H = max(left.H + extend, left.M + open)
//	V = max(up.V + extend, up.M + open)
//	M = max(diag.M + sub, H, V)
//
// Ties favor continuing an open gap run over opening a new one, and
// the diagonal over both gap directions.
type recursion struct {
	open   int // gap open constant, includes the first extension
	extend int // gap extension constant
	local  bool
}

// next computes the cell from its three neighbors and the
// substitution score, without trace information.
func (r recursion) next(diag, up, left Cell, sub int) Cell {
	h := left.M + r.open
	if he := left.H + r.extend; he >= h {
		h = he
	}
	v := up.M + r.open
	if ve := up.V + r.extend; ve >= v {
		v = ve
	}
	m := diag.M + sub
	if h > m {
		m = h
	}
	if v > m {
		m = v
	}
	if r.local && m < 0 {
		m = 0
	}
	return Cell{M: m, H: h, V: v}
}

// nextTrace is next plus direction bitmasks recording every tying
// origin.
func (r recursion) nextTrace(diag, up, left Cell, sub int) (Cell, TraceCell) {
	var tc TraceCell

	ho := left.M + r.open
	he := left.H + r.extend
	h := ho
	switch {
	case he > ho:
		h = he
		tc.H = TraceLeft
	case he < ho:
		tc.H = TraceLeftOpen
	default:
		h = he
		tc.H = TraceLeft | TraceLeftOpen
	}

	vo := up.M + r.open
	ve := up.V + r.extend
	v := vo
	switch {
	case ve > vo:
		v = ve
		tc.V = TraceUp
	case ve < vo:
		tc.V = TraceUpOpen
	default:
		v = ve
		tc.V = TraceUp | TraceUpOpen
	}

	m := diag.M + sub
	tc.M = TraceDiagonal
	if h > m {
		m = h
		tc.M = TraceLeft
	} else if h == m {
		tc.M |= TraceLeft
	}
	if v > m {
		m = v
		tc.M = TraceUp
	} else if v == m {
		tc.M |= TraceUp
	}

	if r.local && m < 0 {
		m = 0
		tc.M = TraceNone
	}

	return Cell{M: m, H: h, V: v}, tc
}
