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
	"bytes"
	"testing"

	"github.com/palign/palign/palign/config"
	"github.com/palign/palign/palign/scoring"
)

func mustAligner(t *testing.T, elems ...config.Element) *Aligner {
	t.Helper()
	a, err := New(config.Must(elems...))
	if err != nil {
		t.Fatalf("new aligner: %s", err)
	}
	return a
}

func mustAlign(t *testing.T, a *Aligner, seq1, seq2 string) *Result {
	t.Helper()
	r, err := a.AlignPair([]byte(seq1), []byte(seq2))
	if err != nil {
		t.Fatalf("align %q vs %q: %s", seq1, seq2, err)
	}
	return r
}

func TestGlobalEditIdentical(t *testing.T) {
	a := mustAligner(t, config.Edit{}, config.OutputAll)
	r := mustAlign(t, a, "AC", "AC")
	defer RecycleResult(r)

	if r.Score != 0 {
		t.Errorf("score: got %d, want 0", r.Score)
	}
	if string(r.Alignment.Seq1Row) != "AC" || string(r.Alignment.Seq2Row) != "AC" {
		t.Errorf("alignment: got %q / %q", r.Alignment.Seq1Row, r.Alignment.Seq2Row)
	}
	if string(r.Alignment.Middle) != "||" {
		t.Errorf("middle: got %q", r.Alignment.Middle)
	}
	if r.Gaps != 0 || r.Matches != 2 || r.Len != 2 {
		t.Errorf("counts: len %d, matches %d, gaps %d", r.Len, r.Matches, r.Gaps)
	}
	if !r.HasBegin || r.Begin != (Coord{0, 0}) {
		t.Errorf("begin: got %+v", r.Begin)
	}
	if !r.HasEnd || r.End != (Coord{2, 2}) {
		t.Errorf("end: got %+v", r.End)
	}
}

// Aligning an empty sequence against k residues costs one gap run:
// open + k * extension.
func TestGlobalEmptyAgainstFull(t *testing.T) {
	a := mustAligner(t,
		config.Scoring{Scheme: scoring.MatchMismatch{Match: 4, Mismatch: -5}},
		config.Gap{Scheme: scoring.GapScheme{Open: -10, Extend: -1}},
	)

	r := mustAlign(t, a, "", "ACGT")
	if r.Score != -14 {
		t.Errorf("empty seq1: got %d, want -14", r.Score)
	}
	RecycleResult(r)

	r = mustAlign(t, a, "ACGT", "")
	if r.Score != -14 {
		t.Errorf("empty seq2: got %d, want -14", r.Score)
	}
	RecycleResult(r)

	r = mustAlign(t, a, "", "")
	if r.Score != 0 || r.End != (Coord{0, 0}) {
		t.Errorf("both empty: score %d, end %+v", r.Score, r.End)
	}
	RecycleResult(r)
}

// Edit-distance search of a short query as an infix of text windows:
// both ends of the query row are free, so leading and trailing text
// is skipped without penalty.
func TestSemiGlobalInfixSearch(t *testing.T) {
	a := mustAligner(t, config.Edit{}, config.SemiGlobalSeq1, config.OutputAll)

	cases := []struct {
		window string
		score  int
	}{
		{"CGCTGTCTG", 0},  // exact GCT at offset 1
		{"CGATGTCAG", -1}, // best infix is GAT, one substitution
		{"GCT", 0},
	}
	for _, c := range cases {
		r := mustAlign(t, a, "GCT", c.window)
		if r.Score != c.score {
			t.Errorf("GCT vs %q: got %d, want %d", c.window, r.Score, c.score)
		}
		RecycleResult(r)
	}

	r := mustAlign(t, a, "GCT", "CGCTGTCTG")
	defer RecycleResult(r)
	if r.Begin != (Coord{Row: 1, Col: 0}) || r.End != (Coord{Row: 4, Col: 3}) {
		t.Errorf("infix coordinates: begin %+v, end %+v", r.Begin, r.End)
	}
	if string(r.Alignment.Seq1Row) != "GCT" || string(r.Alignment.Seq2Row) != "GCT" {
		t.Errorf("infix alignment: %q / %q", r.Alignment.Seq1Row, r.Alignment.Seq2Row)
	}
}

func TestLocalSmithWaterman(t *testing.T) {
	a := mustAligner(t,
		config.Local,
		config.Scoring{Scheme: scoring.MatchMismatch{Match: 3, Mismatch: -3}},
		config.Gap{Scheme: scoring.GapScheme{Open: 0, Extend: -2}},
		config.OutputAll,
	)
	r := mustAlign(t, a, "GGTTGACTA", "TGTTACGG")
	defer RecycleResult(r)

	if r.Score != 13 {
		t.Errorf("score: got %d, want 13", r.Score)
	}
	if string(r.Alignment.Seq1Row) != "GTTGAC" || string(r.Alignment.Seq2Row) != "GTT-AC" {
		t.Errorf("alignment: %q / %q", r.Alignment.Seq1Row, r.Alignment.Seq2Row)
	}
	if r.Matches != 5 || r.Gaps != 1 || r.Len != 6 {
		t.Errorf("counts: len %d, matches %d, gaps %d", r.Len, r.Matches, r.Gaps)
	}
	if r.Begin != (Coord{Row: 1, Col: 1}) || r.End != (Coord{Row: 6, Col: 7}) {
		t.Errorf("coordinates: begin %+v, end %+v", r.Begin, r.End)
	}
}

func TestDeterminism(t *testing.T) {
	a := mustAligner(t, config.Edit{}, config.OutputAll)
	s1, s2 := "ACGTTGCAACGT", "AGTTACAACGGT"

	first := mustAlign(t, a, s1, s2)
	row1 := string(first.Alignment.Seq1Row)
	row2 := string(first.Alignment.Seq2Row)
	score := first.Score
	RecycleResult(first)

	// same aligner reuses its matrix buffers
	for i := 0; i < 3; i++ {
		r := mustAlign(t, a, s1, s2)
		if r.Score != score ||
			string(r.Alignment.Seq1Row) != row1 ||
			string(r.Alignment.Seq2Row) != row2 {
			t.Fatalf("run %d differs: score %d, %q / %q", i, r.Score, r.Alignment.Seq1Row, r.Alignment.Seq2Row)
		}
		RecycleResult(r)
	}
}

// A band containing the optimal path must reproduce the unbanded
// score and alignment.
func TestBandedMatchesUnbanded(t *testing.T) {
	pairs := [][2]string{
		{"ACGTACGTAC", "ACGTCCGTAC"}, // one substitution
		{"ACGTACGTA", "ACGTCGTA"},    // one deletion
		{"GATTACA", "GATTACA"},
	}

	unbanded := mustAligner(t, config.Edit{}, config.OutputAll)
	banded := mustAligner(t, config.Edit{}, config.NewBand(-2, 2), config.OutputAll)

	for _, p := range pairs {
		want := mustAlign(t, unbanded, p[0], p[1])
		got := mustAlign(t, banded, p[0], p[1])

		if got.Score != want.Score {
			t.Errorf("%q vs %q: banded score %d, unbanded %d", p[0], p[1], got.Score, want.Score)
		}
		if !bytes.Equal(got.Alignment.Seq1Row, want.Alignment.Seq1Row) ||
			!bytes.Equal(got.Alignment.Seq2Row, want.Alignment.Seq2Row) {
			t.Errorf("%q vs %q: banded alignment %q / %q, unbanded %q / %q",
				p[0], p[1],
				got.Alignment.Seq1Row, got.Alignment.Seq2Row,
				want.Alignment.Seq1Row, want.Alignment.Seq2Row)
		}
		RecycleResult(want)
		RecycleResult(got)
	}
}

func TestBandValidationPerPair(t *testing.T) {
	// diagonal of the sink is len1-len2 = 5, outside [-2, 2]
	a := mustAligner(t, config.Edit{}, config.NewBand(-2, 2))
	_, err := a.AlignPair([]byte("ACGTACGTACGTACG"), []byte("ACGTACGTAC"))
	if err == nil {
		t.Fatal("expected band validation error")
	}
	if !config.IsConfigError(err) {
		t.Errorf("unexpected error type: %s", err)
	}
}

// Stripping gap symbols from the aligned rows must reconstruct the
// consumed slices of the inputs, and the alignment length must equal
// consumed1 + consumed2 - #diagonal steps.
func TestTracebackRoundTrip(t *testing.T) {
	cases := []struct {
		method config.Method
		s1, s2 string
	}{
		{config.Global, "ACGTTGCA", "AGTTACA"},
		{config.Global, "TTTTCCCC", "CCCCTTTT"},
		{config.SemiGlobalSeq1, "GCT", "CGCTGTCTG"},
		{config.SemiGlobalSeq2, "CGCTGTCTG", "GCT"},
		{config.Local, "GGTTGACTA", "TGTTACGG"},
	}

	for _, c := range cases {
		a := mustAligner(t,
			c.method,
			config.Scoring{Scheme: scoring.MatchMismatch{Match: 2, Mismatch: -2}},
			config.Gap{Scheme: scoring.GapScheme{Open: -3, Extend: -1}},
			config.OutputAll,
		)
		r := mustAlign(t, a, c.s1, c.s2)

		got1 := stripGaps(r.Alignment.Seq1Row)
		got2 := stripGaps(r.Alignment.Seq2Row)
		want1 := c.s1[r.Begin.Col:r.End.Col]
		want2 := c.s2[r.Begin.Row:r.End.Row]
		if string(got1) != want1 || string(got2) != want2 {
			t.Errorf("%s %q vs %q: rows strip to %q / %q, want %q / %q",
				c.method, c.s1, c.s2, got1, got2, want1, want2)
		}

		diag := r.Len - r.Gaps
		if r.Len != len(want1)+len(want2)-diag {
			t.Errorf("%s %q vs %q: length identity violated: len %d, consumed %d+%d, diag %d",
				c.method, c.s1, c.s2, r.Len, len(want1), len(want2), diag)
		}
		if len(r.Alignment.Seq1Row) != r.Len ||
			len(r.Alignment.Middle) != r.Len ||
			len(r.Alignment.Seq2Row) != r.Len {
			t.Errorf("%s %q vs %q: row lengths differ from Len %d",
				c.method, c.s1, c.s2, r.Len)
		}
		RecycleResult(r)
	}
}

func stripGaps(row []byte) []byte {
	out := make([]byte, 0, len(row))
	for _, b := range row {
		if b != '-' {
			out = append(out, b)
		}
	}
	return out
}

func TestAlignPreservesOrder(t *testing.T) {
	a := mustAligner(t, config.Edit{})
	pairs := []Pair{
		{ID1: []byte("a"), ID2: []byte("b"), Seq1: []byte("ACGT"), Seq2: []byte("ACGT")},
		{ID1: []byte("c"), ID2: []byte("d"), Seq1: []byte("ACGT"), Seq2: []byte("ACCT")},
		{ID1: []byte("e"), ID2: []byte("f"), Seq1: []byte("ACGT"), Seq2: []byte("AT")},
	}
	results, err := a.Align(pairs)
	if err != nil {
		t.Fatal(err)
	}
	wantScores := []int{0, -1, -2}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("result %d: index %d", i, r.Index)
		}
		if r.Score != wantScores[i] {
			t.Errorf("result %d: score %d, want %d", i, r.Score, wantScores[i])
		}
		if string(r.ID1) != string(pairs[i].ID1) {
			t.Errorf("result %d: id %q", i, r.ID1)
		}
		RecycleResult(r)
	}
}
