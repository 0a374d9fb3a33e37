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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHammingSymmetry(t *testing.T) {
	h := Hamming{}
	symbols := []byte("ACGTNacgt-")
	for _, a := range symbols {
		for _, b := range symbols {
			assert.Equal(t, h.Score(a, b), h.Score(b, a), "score(%c,%c)", a, b)
			if a == b {
				assert.Equal(t, 0, h.Score(a, b))
			} else {
				assert.Equal(t, -1, h.Score(a, b))
			}
		}
	}
}

func TestMatchMismatch(t *testing.T) {
	s := MatchMismatch{Match: 4, Mismatch: -5}
	assert.Equal(t, -5, s.Score('A', 'C'))
	assert.Equal(t, 4, s.Score('A', 'A'))
	assert.Equal(t, s.Score('G', 'T'), s.Score('T', 'G'))

	// padding positions always score as a match
	assert.Equal(t, 4, s.Score(PaddingSymbol, 'C'))
	assert.Equal(t, 4, s.Score('G', PaddingSymbol|'x'))
}

func TestMatrixScheme(t *testing.T) {
	s := NewMatrixScheme(4, -5)
	assert.Equal(t, 4, s.Score('A', 'A'))
	assert.Equal(t, 4, s.Score('a', 'A'))
	assert.Equal(t, -5, s.Score('A', 'C'))

	// transition vs transversion refinement
	s.Set('A', 'G', -2)
	assert.Equal(t, -2, s.Score('A', 'G'))
	assert.Equal(t, -2, s.Score('G', 'A'))
	assert.Equal(t, -5, s.Score('A', 'T'))
}

func TestGapSchemeLinear(t *testing.T) {
	g := GapScheme{Extend: -2, Open: 0}
	assert.True(t, g.Linear())
	for n := 0; n <= 10; n++ {
		assert.Equal(t, n*-2, g.Score(n), "n=%d", n)
	}
	assert.Equal(t, -2, g.OpenScore())
}

func TestGapSchemeAffine(t *testing.T) {
	g := GapScheme{Extend: -1, Open: -10}
	assert.Equal(t, 0, g.Score(0))
	assert.Equal(t, -11, g.Score(1))
	assert.Equal(t, -13, g.Score(3))
	assert.Equal(t, -11, g.OpenScore())
	assert.Equal(t, -1, g.ExtendScore())
}

func TestRank(t *testing.T) {
	assert.Equal(t, uint8(0), Rank('A'))
	assert.Equal(t, uint8(0), Rank('a'))
	assert.Equal(t, uint8(3), Rank('U'))
	assert.Equal(t, Rank('N'), Rank('*'), "unknown bytes rank as N")
	assert.True(t, IsPadding(PaddingSymbol))
	assert.False(t, IsPadding('A'))
}
