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

import "sync"

// Alignment is a pair of equal-length gapped sequence rows plus the
// matching line between them ('|' for match, ' ' otherwise).
type Alignment struct {
	Seq1Row []byte
	Middle  []byte
	Seq2Row []byte
}

// Result holds the outcome of aligning one sequence pair. Which
// optional fields are filled follows the configured output
// selection. A Result owns no reference into DP state and stays
// valid after the matrices are reused.
type Result struct {
	Index int // pair index as submitted, for order recovery

	ID1 []byte
	ID2 []byte

	Score int

	End      Coord
	HasEnd   bool
	Begin    Coord
	HasBegin bool

	Alignment *Alignment

	Len     int // alignment length (0 unless traceback ran)
	Matches int
	Gaps    int
}

// Reset clears all values, keeping allocated buffers.
func (r *Result) Reset() {
	r.Index = 0
	r.ID1 = r.ID1[:0]
	r.ID2 = r.ID2[:0]
	r.Score = 0
	r.End = Coord{}
	r.HasEnd = false
	r.Begin = Coord{}
	r.HasBegin = false
	if r.Alignment != nil {
		r.Alignment.Seq1Row = r.Alignment.Seq1Row[:0]
		r.Alignment.Middle = r.Alignment.Middle[:0]
		r.Alignment.Seq2Row = r.Alignment.Seq2Row[:0]
	}
	r.Len = 0
	r.Matches = 0
	r.Gaps = 0
}

var poolResult = &sync.Pool{New: func() interface{} {
	return &Result{
		ID1: make([]byte, 0, 128),
		ID2: make([]byte, 0, 128),
	}
}}

// RecycleResult recycles a result object obtained from AlignPair.
func RecycleResult(r *Result) {
	if r != nil {
		poolResult.Put(r)
	}
}
