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
	"fmt"
	"testing"

	"github.com/palign/palign/palign/config"
)

// testPairs builds n deterministic pairs: pair i carries i
// substitutions, so its edit score is -i.
func testPairs(n int) []Pair {
	pairs := make([]Pair, n)
	for i := 0; i < n; i++ {
		s1 := make([]byte, n)
		s2 := make([]byte, n)
		for j := 0; j < n; j++ {
			s1[j] = "ACGT"[j%4]
			if j < i {
				s2[j] = 'N'
			} else {
				s2[j] = s1[j]
			}
		}
		pairs[i] = Pair{
			ID1:  []byte(fmt.Sprintf("q%d", i)),
			ID2:  []byte(fmt.Sprintf("t%d", i)),
			Seq1: s1,
			Seq2: s2,
		}
	}
	return pairs
}

func TestAlignPairsSequential(t *testing.T) {
	pairs := testPairs(16)
	results, err := AlignPairs(config.Must(config.Edit{}), pairs, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range results {
		if r == nil {
			t.Fatalf("result %d missing", i)
		}
		if r.Index != i || r.Score != -i {
			t.Errorf("result %d: index %d, score %d", i, r.Index, r.Score)
		}
		if string(r.ID1) != fmt.Sprintf("q%d", i) {
			t.Errorf("result %d: id %q", i, r.ID1)
		}
		RecycleResult(r)
	}
}

func TestAlignPairsParallel(t *testing.T) {
	pairs := testPairs(64)
	cfg := config.Must(config.Edit{})

	want, err := AlignPairs(cfg, pairs, &SequentialExecutor{})
	if err != nil {
		t.Fatal(err)
	}
	got, err := AlignPairs(cfg, pairs, NewParallelExecutor(4))
	if err != nil {
		t.Fatal(err)
	}

	for i := range pairs {
		if got[i] == nil {
			t.Fatalf("result %d missing", i)
		}
		if got[i].Score != want[i].Score || got[i].Index != i {
			t.Errorf("result %d: parallel score %d index %d, sequential score %d",
				i, got[i].Score, got[i].Index, want[i].Score)
		}
		RecycleResult(want[i])
		RecycleResult(got[i])
	}
}

func TestAlignPairsCallback(t *testing.T) {
	pairs := testPairs(8)
	var seen []int
	cfg := config.Must(config.Edit{}, config.OnResult{Fn: func(result interface{}) {
		seen = append(seen, result.(*Result).Index)
	}})

	results, err := AlignPairs(cfg, pairs, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != len(pairs) {
		t.Fatalf("callback fired %d times for %d pairs", len(seen), len(pairs))
	}
	// sequential execution delivers in input order
	for i, idx := range seen {
		if idx != i {
			t.Errorf("delivery %d: index %d", i, idx)
		}
	}
	for _, r := range results {
		RecycleResult(r)
	}
}

func TestAlignPairsError(t *testing.T) {
	// sink diagonal lies outside the band for every pair
	cfg := config.Must(config.Edit{}, config.NewBand(-1, 1))
	pairs := []Pair{{Seq1: []byte("ACGTACGT"), Seq2: []byte("AC")}}

	if _, err := AlignPairs(cfg, pairs, nil); err == nil {
		t.Error("sequential: expected error")
	}
	if _, err := AlignPairs(cfg, pairs, NewParallelExecutor(2)); err == nil {
		t.Error("parallel: expected error")
	}
}

func TestAlignPairsMissingScheme(t *testing.T) {
	if _, err := AlignPairs(config.Must(), testPairs(1), nil); err == nil {
		t.Error("expected error for missing scoring scheme")
	}
}
