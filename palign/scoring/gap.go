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

package scoring

// GapScheme is an affine gap cost model. A gap run of length n costs
// Open + n*Extend; the first gap character therefore costs
// Open + Extend. Open == 0 gives linear, per-position gap costs.
type GapScheme struct {
	Extend int // cost per gap position, usually negative
	Open   int // one-off cost for opening a run, 0 for linear gaps
}

// DefaultGapScheme is the linear, unit-cost model used by the
// edit-distance configuration.
var DefaultGapScheme = GapScheme{Extend: -1, Open: 0}

// DefaultBandedGapScheme is the affine default for banded alignment.
var DefaultBandedGapScheme = GapScheme{Extend: -1, Open: -10}

// OpenScore is the recurrence constant applied when a gap run starts:
// the open cost already includes one extension.
func (g GapScheme) OpenScore() int {
	return g.Open + g.Extend
}

// ExtendScore is the recurrence constant applied per extended position.
func (g GapScheme) ExtendScore() int {
	return g.Extend
}

// Score returns the total cost of a gap run of length n.
func (g GapScheme) Score(n int) int {
	if n <= 0 {
		return 0
	}
	return g.Open + n*g.Extend
}

// Linear reports whether the scheme has no opening cost.
func (g GapScheme) Linear() bool {
	return g.Open == 0
}
