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

// NumRanks is the size of the rank space used by MatrixScheme:
// A, C, G, T/U, plus 11 IUPAC ambiguity codes and N.
const NumRanks = 16

// PaddingSymbol marks padding positions in lane-batched alignment.
// Any symbol byte with the top bit set is treated as padding and
// scores as a match against everything, so padded tails of short
// sequences in a batch never influence which lane holds the optimum.
const PaddingSymbol byte = 0x80

// IsPadding reports whether b is a padding symbol.
func IsPadding(b byte) bool {
	return b&0x80 > 0
}

// base2rank maps nucleotide bytes (upper and lower case) to ranks
// 0-15. Unknown bytes map to the rank of 'N'.
var base2rank = [256]uint8{
	'A': 0, 'a': 0,
	'C': 1, 'c': 1,
	'G': 2, 'g': 2,
	'T': 3, 't': 3, 'U': 3, 'u': 3,
	'R': 4, 'r': 4, // A/G
	'Y': 5, 'y': 5, // C/T
	'S': 6, 's': 6, // G/C
	'W': 7, 'w': 7, // A/T
	'K': 8, 'k': 8, // G/T
	'M': 9, 'm': 9, // A/C
	'B': 10, 'b': 10,
	'D': 11, 'd': 11,
	'H': 12, 'h': 12,
	'V': 13, 'v': 13,
	'N': 14, 'n': 14,
	'-': 15, '.': 15,
}

func init() {
	n := base2rank['N']
	for i := 0; i < 256; i++ {
		switch byte(i) {
		case 'A', 'a', 'C', 'c', 'G', 'g', 'T', 't', 'U', 'u',
			'R', 'r', 'Y', 'y', 'S', 's', 'W', 'w', 'K', 'k', 'M', 'm',
			'B', 'b', 'D', 'd', 'H', 'h', 'V', 'v', 'N', 'n', '-', '.':
		default:
			base2rank[i] = n
		}
	}
}

// Rank returns the rank (0..NumRanks-1) of a nucleotide byte.
func Rank(b byte) uint8 {
	return base2rank[b]
}
