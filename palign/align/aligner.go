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
	"github.com/palign/palign/palign/config"
	"github.com/palign/palign/palign/scoring"
)

// Pair is one sequence pair to align. Sequences are referenced, not
// copied, for the duration of the call.
type Pair struct {
	ID1  []byte
	ID2  []byte
	Seq1 []byte
	Seq2 []byte
}

// Aligner runs pairwise alignments under one resolved configuration.
// Policies (scheme, gap constants, fill variant) are selected once at
// construction, not per cell. An Aligner owns reusable matrix
// buffers and must not be shared across goroutines; the
// configuration itself is read-only and may be.
type Aligner struct {
	cfg config.Config

	scheme   scoring.Scheme
	gap      scoring.GapScheme
	rec      recursion
	method   config.Method
	band     config.Band
	banded   bool
	output   config.Output
	onResult func(result interface{})

	// reusable buffers
	column []Cell
	tm     TraceMatrix
	btm    BandedTraceMatrix
}

// New resolves a configuration into an Aligner. Missing mandatory
// elements surface here as a *config.ConfigError, before any
// sequence is processed.
func New(cfg config.Config) (*Aligner, error) {
	scheme, err := cfg.EffectiveScoring()
	if err != nil {
		return nil, err
	}
	gap := cfg.EffectiveGap()
	method := cfg.MethodOr(config.Method{})
	band, banded := cfg.Band()
	onResult, _ := cfg.OnResult()

	return &Aligner{
		cfg:    cfg,
		scheme: scheme,
		gap:    gap,
		rec: recursion{
			open:   gap.OpenScore(),
			extend: gap.ExtendScore(),
			local:  method.Local,
		},
		method:   method,
		band:     band,
		banded:   banded,
		output:   cfg.OutputOr(config.DefaultOutput),
		onResult: onResult,
	}, nil
}

// AlignPair aligns one sequence pair and returns a pooled Result
// (recycle with RecycleResult). Band geometry is validated against
// the concrete lengths before any DP work; an invalid band aborts
// with a *config.ConfigError and no partial result.
func (a *Aligner) AlignPair(seq1, seq2 []byte) (*Result, error) {
	if err := a.cfg.Validate(len(seq1), len(seq2)); err != nil {
		return nil, err
	}

	needTrace := a.output.NeedsTrace()

	var opt optimum
	var src traceSource
	switch {
	case a.banded && needTrace:
		opt = a.fillBandedTrace(seq1, seq2)
		src = &a.btm
	case a.banded:
		opt = a.fillBandedScore(seq1, seq2)
	case needTrace:
		opt = a.fillTrace(seq1, seq2)
		src = &a.tm
	default:
		opt = a.fillScore(seq1, seq2)
	}

	r := poolResult.Get().(*Result)
	r.Reset()
	r.Score = opt.score
	if a.output&config.OutputEndPosition > 0 {
		r.End = Coord{Row: opt.row, Col: opt.col}
		r.HasEnd = true
	}

	if needTrace {
		var aln *Alignment
		if a.output&config.OutputAlignment > 0 {
			if r.Alignment == nil {
				r.Alignment = &Alignment{}
			}
			aln = r.Alignment
		}
		begin, length, matches, gaps := traceback(src, seq1, seq2, opt.row, opt.col, aln)
		if a.output&config.OutputBeginPosition > 0 {
			r.Begin = begin
			r.HasBegin = true
		}
		r.Len, r.Matches, r.Gaps = length, matches, gaps
	}

	return r, nil
}

// Align aligns a batch of pairs sequentially, returning one result
// per pair in input order. The configured on-result callback, if
// any, additionally receives each result as it is produced.
func (a *Aligner) Align(pairs []Pair) ([]*Result, error) {
	results := make([]*Result, len(pairs))
	for i, p := range pairs {
		r, err := a.AlignPair(p.Seq1, p.Seq2)
		if err != nil {
			return nil, err
		}
		r.Index = i
		r.ID1 = append(r.ID1, p.ID1...)
		r.ID2 = append(r.ID2, p.ID2...)
		results[i] = r
		if a.onResult != nil {
			a.onResult(r)
		}
	}
	return results, nil
}

// ---------------------------------------------------------------
// boundary initialization

// row0Cell is the initial cell of row 0 at column c >= 1: a
// horizontal gap run from the origin, or zero when leading gaps in
// sequence 2's row are free (and always zero for local alignment).
func (a *Aligner) row0Cell(c int) (Cell, TraceCell) {
	if a.method.Local || a.method.FreeEndSeq2Leading {
		return Cell{M: 0, H: minScore, V: minScore}, TraceCell{}
	}
	g := a.rec.open + (c-1)*a.rec.extend
	tc := TraceCell{M: TraceLeft}
	switch {
	case c == 1:
		tc.H = TraceLeftOpen
	case a.gap.Linear():
		// open and extension cost the same per step: both origins tie
		tc.H = TraceLeft | TraceLeftOpen
	default:
		tc.H = TraceLeft
	}
	return Cell{M: g, H: g, V: minScore}, tc
}

// col0Cell is the initial cell of column 0 at row r, the vertical
// counterpart of row0Cell. Row 0 of column 0 is the origin.
func (a *Aligner) col0Cell(r int) (Cell, TraceCell) {
	if r == 0 {
		return Cell{M: 0, H: minScore, V: minScore}, TraceCell{}
	}
	if a.method.Local || a.method.FreeEndSeq1Leading {
		return Cell{M: 0, H: minScore, V: minScore}, TraceCell{}
	}
	g := a.rec.open + (r-1)*a.rec.extend
	tc := TraceCell{M: TraceUp}
	switch {
	case r == 1:
		tc.V = TraceUpOpen
	case a.gap.Linear():
		tc.V = TraceUp | TraceUpOpen
	default:
		tc.V = TraceUp
	}
	return Cell{M: g, H: minScore, V: g}, tc
}

// ---------------------------------------------------------------
// unbanded fills

// fillScore runs the DP over the rolling single column: O(|seq2|)
// memory, no trace.
func (a *Aligner) fillScore(seq1, seq2 []byte) optimum {
	rows, cols := len(seq2)+1, len(seq1)+1
	col := resizeCells(a.column, rows)
	a.column = col
	m := a.method
	rec := a.rec
	opt := newOptimum()

	for r := 0; r < rows; r++ {
		col[r], _ = a.col0Cell(r)
	}
	if m.Local {
		opt.update(0, 0, 0)
	}
	if m.FreeEndSeq2Trailing {
		opt.update(col[rows-1].M, rows-1, 0)
	}

	for c := 1; c < cols; c++ {
		diag := col[0]
		col[0], _ = a.row0Cell(c)
		b1 := seq1[c-1]
		for r := 1; r < rows; r++ {
			left := col[r]
			cell := rec.next(diag, col[r-1], left, a.scheme.Score(b1, seq2[r-1]))
			diag = left
			col[r] = cell
			if m.Local {
				opt.update(cell.M, r, c)
			}
		}
		if m.FreeEndSeq2Trailing {
			opt.update(col[rows-1].M, rows-1, c)
		}
	}

	if m.FreeEndSeq1Trailing {
		for r := 0; r < rows; r++ {
			opt.update(col[r].M, r, cols-1)
		}
	}
	if !m.Local {
		opt.update(col[rows-1].M, rows-1, cols-1)
	}
	return opt
}

// fillTrace is fillScore plus a full trace matrix for traceback.
func (a *Aligner) fillTrace(seq1, seq2 []byte) optimum {
	rows, cols := len(seq2)+1, len(seq1)+1
	col := resizeCells(a.column, rows)
	a.column = col
	a.tm.resize(rows, cols)
	m := a.method
	rec := a.rec
	opt := newOptimum()

	for r := 0; r < rows; r++ {
		cell, tc := a.col0Cell(r)
		col[r] = cell
		a.tm.set(r, 0, tc)
	}
	if m.Local {
		opt.update(0, 0, 0)
	}
	if m.FreeEndSeq2Trailing {
		opt.update(col[rows-1].M, rows-1, 0)
	}

	for c := 1; c < cols; c++ {
		diag := col[0]
		cell0, tc0 := a.row0Cell(c)
		col[0] = cell0
		a.tm.set(0, c, tc0)
		b1 := seq1[c-1]
		for r := 1; r < rows; r++ {
			left := col[r]
			cell, tc := rec.nextTrace(diag, col[r-1], left, a.scheme.Score(b1, seq2[r-1]))
			diag = left
			col[r] = cell
			a.tm.set(r, c, tc)
			if m.Local {
				opt.update(cell.M, r, c)
			}
		}
		if m.FreeEndSeq2Trailing {
			opt.update(col[rows-1].M, rows-1, c)
		}
	}

	if m.FreeEndSeq1Trailing {
		for r := 0; r < rows; r++ {
			opt.update(col[r].M, r, cols-1)
		}
	}
	if !m.Local {
		opt.update(col[rows-1].M, rows-1, cols-1)
	}
	return opt
}

// ---------------------------------------------------------------
// banded fills

// fillBandedScore restricts the fill to the configured diagonal
// band. The first in-band cell of a column that does not start at
// row 0 has no vertical predecessor: it is seeded from its diagonal
// and left neighbors only, the out-of-band vertical state reading as
// -infinity.
func (a *Aligner) fillBandedScore(seq1, seq2 []byte) optimum {
	rows, cols := len(seq2)+1, len(seq1)+1
	lower, upper := a.band.Lower.Value, a.band.Upper.Value
	col := resizeCells(a.column, rows)
	a.column = col
	m := a.method
	rec := a.rec
	opt := newOptimum()

	prevLo, prevHi := bandRowRange(0, lower, upper, rows)
	for r := prevLo; r <= prevHi; r++ {
		col[r], _ = a.col0Cell(r)
	}
	if m.Local && prevLo == 0 {
		opt.update(0, 0, 0)
	}
	if m.FreeEndSeq2Trailing && prevHi == rows-1 {
		opt.update(col[rows-1].M, rows-1, 0)
	}

	for c := 1; c < cols; c++ {
		lo, hi := bandRowRange(c, lower, upper, rows)
		if lo > hi {
			prevLo, prevHi = 1, 0 // empty
			continue
		}

		var prevOld Cell
		if lo-1 >= prevLo && lo-1 <= prevHi {
			prevOld = col[lo-1]
		} else {
			prevOld = infCell
		}

		b1 := seq1[c-1]
		for r := lo; r <= hi; r++ {
			if r == 0 {
				prevOld = col[0]
				col[0], _ = a.row0Cell(c)
				continue
			}
			var old Cell
			if r >= prevLo && r <= prevHi {
				old = col[r]
			} else {
				old = infCell
			}
			up := infCell
			if r-1 >= lo {
				up = col[r-1]
			}
			cell := rec.next(prevOld, up, old, a.scheme.Score(b1, seq2[r-1]))
			prevOld = old
			col[r] = cell
			if m.Local {
				opt.update(cell.M, r, c)
			}
		}

		if m.FreeEndSeq2Trailing && hi == rows-1 {
			opt.update(col[rows-1].M, rows-1, c)
		}
		prevLo, prevHi = lo, hi
	}

	if m.FreeEndSeq1Trailing {
		lo, hi := bandRowRange(cols-1, lower, upper, rows)
		for r := lo; r <= hi; r++ {
			opt.update(col[r].M, r, cols-1)
		}
	}
	if !m.Local && a.band.Contains(rows-1, cols-1) {
		opt.update(col[rows-1].M, rows-1, cols-1)
	}
	return opt
}

// fillBandedTrace is fillBandedScore plus the banded trace matrix.
func (a *Aligner) fillBandedTrace(seq1, seq2 []byte) optimum {
	rows, cols := len(seq2)+1, len(seq1)+1
	lower, upper := a.band.Lower.Value, a.band.Upper.Value
	col := resizeCells(a.column, rows)
	a.column = col
	a.btm.resize(rows, cols, lower, upper)
	m := a.method
	rec := a.rec
	opt := newOptimum()

	prevLo, prevHi := bandRowRange(0, lower, upper, rows)
	for r := prevLo; r <= prevHi; r++ {
		cell, tc := a.col0Cell(r)
		col[r] = cell
		a.btm.set(r, 0, tc)
	}
	if m.Local && prevLo == 0 {
		opt.update(0, 0, 0)
	}
	if m.FreeEndSeq2Trailing && prevHi == rows-1 {
		opt.update(col[rows-1].M, rows-1, 0)
	}

	for c := 1; c < cols; c++ {
		lo, hi := bandRowRange(c, lower, upper, rows)
		if lo > hi {
			prevLo, prevHi = 1, 0
			continue
		}

		var prevOld Cell
		if lo-1 >= prevLo && lo-1 <= prevHi {
			prevOld = col[lo-1]
		} else {
			prevOld = infCell
		}

		b1 := seq1[c-1]
		for r := lo; r <= hi; r++ {
			if r == 0 {
				prevOld = col[0]
				cell0, tc0 := a.row0Cell(c)
				col[0] = cell0
				a.btm.set(0, c, tc0)
				continue
			}
			var old Cell
			if r >= prevLo && r <= prevHi {
				old = col[r]
			} else {
				old = infCell
			}
			up := infCell
			if r-1 >= lo {
				up = col[r-1]
			}
			cell, tc := rec.nextTrace(prevOld, up, old, a.scheme.Score(b1, seq2[r-1]))
			prevOld = old
			col[r] = cell
			a.btm.set(r, c, tc)
			if m.Local {
				opt.update(cell.M, r, c)
			}
		}

		if m.FreeEndSeq2Trailing && hi == rows-1 {
			opt.update(col[rows-1].M, rows-1, c)
		}
		prevLo, prevHi = lo, hi
	}

	if m.FreeEndSeq1Trailing {
		lo, hi := bandRowRange(cols-1, lower, upper, rows)
		for r := lo; r <= hi; r++ {
			opt.update(col[r].M, r, cols-1)
		}
	}
	if !m.Local && a.band.Contains(rows-1, cols-1) {
		opt.update(col[rows-1].M, rows-1, cols-1)
	}
	return opt
}
