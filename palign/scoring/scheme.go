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

// Package scoring provides substitution schemes and gap cost models
// for pairwise sequence alignment.
package scoring

// Scheme scores a pair of symbols. Implementations must be pure:
// no state mutation, deterministic for a given pair.
type Scheme interface {
	Score(a, b byte) int
}

// MatchMismatch is the 2-parameter substitution scheme.
type MatchMismatch struct {
	Match    int
	Mismatch int
}

// DefaultMatchMismatch is the default nucleotide scheme,
// same values as the simple scheme in BLASTN-like tools.
var DefaultMatchMismatch = MatchMismatch{Match: 1, Mismatch: -1}

// Score returns Match if a equals b (case-sensitive), Mismatch otherwise.
// Padding symbols always score as a match.
func (s MatchMismatch) Score(a, b byte) int {
	if a == b || IsPadding(a) || IsPadding(b) {
		return s.Match
	}
	return s.Mismatch
}

// Hamming is the stateless equality scheme: 0 for equal symbols,
// -1 otherwise. It ignores alphabet semantics entirely.
type Hamming struct{}

// Score implements Scheme.
func (Hamming) Score(a, b byte) int {
	if a == b {
		return 0
	}
	return -1
}

// MatrixScheme is a full substitution matrix indexed by symbol ranks.
type MatrixScheme struct {
	Matrix [NumRanks][NumRanks]int
}

// Score implements Scheme.
func (s *MatrixScheme) Score(a, b byte) int {
	return s.Matrix[base2rank[a]][base2rank[b]]
}

// Set sets the score for one symbol pair, on both triangles.
func (s *MatrixScheme) Set(a, b byte, score int) {
	s.Matrix[base2rank[a]][base2rank[b]] = score
	s.Matrix[base2rank[b]][base2rank[a]] = score
}

// NewMatrixScheme creates a substitution matrix from uniform
// match/mismatch scores. Entries can be refined with Set afterwards.
func NewMatrixScheme(match, mismatch int) *MatrixScheme {
	s := &MatrixScheme{}
	for i := 0; i < NumRanks; i++ {
		for j := 0; j < NumRanks; j++ {
			if i == j {
				s.Matrix[i][j] = match
			} else {
				s.Matrix[i][j] = mismatch
			}
		}
	}
	return s
}
