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

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/twotwotwo/sorts"

	"github.com/palign/palign/palign/align"
	"github.com/palign/palign/palign/config"
)

func TestParseMethod(t *testing.T) {
	m, err := parseMethod("global", "")
	if err != nil || m != config.Global {
		t.Errorf("global: %+v, %s", m, err)
	}

	m, err = parseMethod("local", "")
	if err != nil || !m.Local {
		t.Errorf("local: %+v, %s", m, err)
	}

	m, err = parseMethod("global", "q5,q3")
	if err != nil || m != config.SemiGlobalSeq1 {
		t.Errorf("free query ends: %+v, %s", m, err)
	}

	m, err = parseMethod("global", "t5, t3")
	if err != nil || m != config.SemiGlobalSeq2 {
		t.Errorf("free target ends with space: %+v, %s", m, err)
	}

	if _, err = parseMethod("glocal", ""); err == nil {
		t.Error("invalid mode accepted")
	}
	if _, err = parseMethod("local", "q5"); err == nil {
		t.Error("free ends accepted for local mode")
	}
	if _, err = parseMethod("global", "x5"); err == nil {
		t.Error("invalid free end accepted")
	}
}

func TestMakePairs(t *testing.T) {
	q := []*seqRecord{{ID: []byte("q1"), Seq: []byte("AC")}, {ID: []byte("q2"), Seq: []byte("GT")}}
	s := []*seqRecord{{ID: []byte("t1"), Seq: []byte("ACGT")}}

	pairs, err := makePairs(q, s)
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs", len(pairs))
	}
	if string(pairs[1].ID1) != "q2" || string(pairs[1].ID2) != "t1" {
		t.Errorf("pair 1: %q vs %q", pairs[1].ID1, pairs[1].ID2)
	}

	if _, err = makePairs(q, append(s, s...)); err != nil {
		t.Errorf("2 vs 2: %s", err)
	}
	s3 := append(append([]*seqRecord{}, s...), s...)
	s3 = append(s3, s...)
	if _, err = makePairs(q, s3); err == nil {
		t.Error("2 vs 3 accepted")
	}
}

func TestLoadProfile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "params.toml")
	data := []byte("match = 5\nmismatch = -4\nmode = \"local\"\nband-low = -3\n")
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatal(err)
	}

	var prof profile
	if err := loadProfile(file, &prof); err != nil {
		t.Fatal(err)
	}
	if prof.Match == nil || *prof.Match != 5 {
		t.Errorf("match: %v", prof.Match)
	}
	if prof.Mismatch == nil || *prof.Mismatch != -4 {
		t.Errorf("mismatch: %v", prof.Mismatch)
	}
	if prof.Mode == nil || *prof.Mode != "local" {
		t.Errorf("mode: %v", prof.Mode)
	}
	if prof.BandLow == nil || *prof.BandLow != -3 {
		t.Errorf("band-low: %v", prof.BandLow)
	}
	if prof.GapOpen != nil {
		t.Errorf("gap-open should be absent: %v", prof.GapOpen)
	}

	if err := loadProfile(filepath.Join(t.TempDir(), "missing.toml"), &prof); err == nil {
		t.Error("missing file accepted")
	}
}

func TestSortByScore(t *testing.T) {
	results := []*align.Result{
		{Index: 0, Score: -2},
		{Index: 1, Score: 5},
		{Index: 2, Score: 5},
		{Index: 3, Score: 0},
	}
	sorts.Quicksort(byScore(results))

	wantIndexes := []int{1, 2, 3, 0}
	for i, r := range results {
		if r.Index != wantIndexes[i] {
			t.Errorf("position %d: index %d, want %d", i, r.Index, wantIndexes[i])
		}
	}
}
