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

import (
	"math"

	"github.com/pkg/errors"

	"github.com/palign/palign/palign/config"
	"github.com/palign/palign/palign/scoring"
)

// Lanes is the number of sequence pairs one batch fill processes
// simultaneously.
const Lanes = 8

// minScore16 plays the role of minScore in the 16-bit lanes.
const minScore16 = math.MinInt16 / 2

// laneVec holds one DP value per lane.
type laneVec [Lanes]int16

// laneCell is the lane-vector counterpart of Cell.
type laneCell struct {
	M laneVec
	H laneVec
	V laneVec
}

// BatchAligner computes global alignment scores for up to Lanes
// sequence pairs in one interleaved DP fill, the way a SIMD engine
// packs independent alignments into vector registers. Shorter pairs
// are padded with the sentinel symbol, which scores as a match so
// padded tails stay on the main diagonal; each lane's score is read
// at that lane's own sink cell, so the padding never leaks into a
// reported score.
//
// The lanes hold int16 scores. Sequence lengths and scheme constants
// must keep every intermediate score above minScore16 in magnitude;
// with typical unit costs that allows sequences of several thousand
// residues.
type BatchAligner struct {
	scheme scoring.Scheme
	open   int16
	extend int16

	seq1 [Lanes][]byte
	seq2 [Lanes][]byte
	len1 [Lanes]int
	len2 [Lanes]int

	column []laneCell
}

// NewBatchAligner resolves a configuration into a lane engine. Only
// the strict global method without a band is supported; anything
// else falls back to the scalar Aligner.
func NewBatchAligner(cfg config.Config) (*BatchAligner, error) {
	scheme, err := cfg.EffectiveScoring()
	if err != nil {
		return nil, err
	}
	m := cfg.MethodOr(config.Method{})
	if m.Local || m.FreeEndSeq1Leading || m.FreeEndSeq1Trailing ||
		m.FreeEndSeq2Leading || m.FreeEndSeq2Trailing {
		return nil, errors.New("align: batch engine supports the global method only")
	}
	if _, ok := cfg.Band(); ok {
		return nil, errors.New("align: batch engine does not support banded fills")
	}
	gap := cfg.EffectiveGap()
	return &BatchAligner{
		scheme: scheme,
		open:   int16(gap.OpenScore()),
		extend: int16(gap.ExtendScore()),
	}, nil
}

// AlignBatch aligns up to Lanes pairs and returns their global
// scores in input order.
func (b *BatchAligner) AlignBatch(pairs []Pair) ([]int16, error) {
	n := len(pairs)
	if n == 0 {
		return nil, nil
	}
	if n > Lanes {
		return nil, errors.Errorf("align: batch of %d pairs exceeds %d lanes", n, Lanes)
	}

	var maxLen1, maxLen2 int
	for i, p := range pairs {
		b.len1[i] = len(p.Seq1)
		b.len2[i] = len(p.Seq2)
		if len(p.Seq1) > maxLen1 {
			maxLen1 = len(p.Seq1)
		}
		if len(p.Seq2) > maxLen2 {
			maxLen2 = len(p.Seq2)
		}
	}
	for l := 0; l < Lanes; l++ {
		if l < n {
			b.seq1[l] = padSequence(b.seq1[l], pairs[l].Seq1, maxLen1)
			b.seq2[l] = padSequence(b.seq2[l], pairs[l].Seq2, maxLen2)
		} else {
			// idle lanes run on pure padding
			b.len1[l] = -1
			b.len2[l] = -1
			b.seq1[l] = padSequence(b.seq1[l], nil, maxLen1)
			b.seq2[l] = padSequence(b.seq2[l], nil, maxLen2)
		}
	}

	rows, cols := maxLen2+1, maxLen1+1
	col := b.resizeColumn(rows)
	out := make([]int16, n)

	// column 0: vertical gap chain, identical in every lane
	col[0] = laneCell{
		M: broadcast(0),
		H: broadcast(minScore16),
		V: broadcast(minScore16),
	}
	for r := 1; r < rows; r++ {
		g := b.open + int16(r-1)*b.extend
		col[r] = laneCell{
			M: broadcast(g),
			H: broadcast(minScore16),
			V: broadcast(g),
		}
	}
	b.recordSinks(col, 0, out)

	var sub laneVec
	for c := 1; c < cols; c++ {
		diag := col[0]
		g := b.open + int16(c-1)*b.extend
		col[0] = laneCell{
			M: broadcast(g),
			H: broadcast(g),
			V: broadcast(minScore16),
		}
		for r := 1; r < rows; r++ {
			for l := 0; l < Lanes; l++ {
				sub[l] = int16(b.scheme.Score(b.seq1[l][c-1], b.seq2[l][r-1]))
			}
			left := col[r]
			cell := laneStep(diag, col[r-1], left, sub, b.open, b.extend)
			diag = left
			col[r] = cell
		}
		b.recordSinks(col, c, out)
	}

	return out, nil
}

// laneStep advances every lane by one cell, with the same tie policy
// as the scalar recursion: extension beats re-opening, diagonal
// beats both gap states.
func laneStep(diag, up, left laneCell, sub laneVec, open, extend int16) laneCell {
	var out laneCell
	for l := 0; l < Lanes; l++ {
		h := left.H[l] + extend
		if ho := left.M[l] + open; ho > h {
			h = ho
		}
		v := up.V[l] + extend
		if vo := up.M[l] + open; vo > v {
			v = vo
		}
		m := diag.M[l] + sub[l]
		if h > m {
			m = h
		}
		if v > m {
			m = v
		}
		out.M[l] = m
		out.H[l] = h
		out.V[l] = v
	}
	return out
}

// recordSinks copies the score of every lane whose sink cell lies in
// the just-finished column.
func (b *BatchAligner) recordSinks(col []laneCell, c int, out []int16) {
	for l := 0; l < len(out); l++ {
		if b.len1[l] == c {
			out[l] = col[b.len2[l]].M[l]
		}
	}
}

func (b *BatchAligner) resizeColumn(rows int) []laneCell {
	if cap(b.column) >= rows {
		b.column = b.column[:rows]
	} else {
		b.column = make([]laneCell, rows)
	}
	return b.column
}

func broadcast(v int16) laneVec {
	var lv laneVec
	for l := range lv {
		lv[l] = v
	}
	return lv
}

// padSequence copies seq into buf and extends it to length n with
// the padding sentinel.
func padSequence(buf, seq []byte, n int) []byte {
	buf = buf[:0]
	buf = append(buf, seq...)
	for len(buf) < n {
		buf = append(buf, scoring.PaddingSymbol)
	}
	return buf
}
