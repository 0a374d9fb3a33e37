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

// traceSource is any trace matrix the traceback can walk: the full
// matrix or the banded one.
type traceSource interface {
	At(row, col int) TraceCell
}

const (
	stateM = iota // in a match/mismatch cell
	stateH        // inside a horizontal gap run
	stateV        // inside a vertical gap run
)

// traceback walks backward from (row, col) along the recorded
// direction bits and reconstructs the aligned pair into aln (skipped
// when aln is nil). It returns the begin coordinate and the
// alignment length, match count and gap count.
//
// The walk is a three-state machine over the per-cell (M, H, V)
// masks. Ties are resolved canonically: diagonal > up > left when
// leaving a match state, and a gap run is continued rather than
// re-opened when both bits are set. Re-running on the same matrix
// and start coordinate always yields the same alignment.
func traceback(tm traceSource, s1, s2 []byte, row, col int, aln *Alignment) (begin Coord, length, matches, gaps int) {
	state := stateM

walk:
	for {
		tc := tm.At(row, col)

		switch state {
		case stateM:
			if row == 0 && col == 0 {
				break walk
			}
			m := tc.M
			switch {
			case m == TraceNone:
				// local terminal, or a free-end boundary cell
				break walk
			case m&TraceDiagonal > 0:
				a, b := s1[col-1], s2[row-1]
				if aln != nil {
					aln.Seq1Row = append(aln.Seq1Row, a)
					aln.Seq2Row = append(aln.Seq2Row, b)
					if a == b {
						aln.Middle = append(aln.Middle, '|')
					} else {
						aln.Middle = append(aln.Middle, ' ')
					}
				}
				if a == b {
					matches++
				}
				length++
				row--
				col--
			case m&TraceUp > 0:
				state = stateV
			case m&TraceLeft > 0:
				state = stateH
			default:
				break walk
			}

		case stateV:
			if aln != nil {
				aln.Seq1Row = append(aln.Seq1Row, '-')
				aln.Middle = append(aln.Middle, ' ')
				aln.Seq2Row = append(aln.Seq2Row, s2[row-1])
			}
			length++
			gaps++
			cont := tc.V&TraceUp > 0
			row--
			if !cont {
				state = stateM
			}

		case stateH:
			if aln != nil {
				aln.Seq1Row = append(aln.Seq1Row, s1[col-1])
				aln.Middle = append(aln.Middle, ' ')
				aln.Seq2Row = append(aln.Seq2Row, '-')
			}
			length++
			gaps++
			cont := tc.H&TraceLeft > 0
			col--
			if !cont {
				state = stateM
			}
		}
	}

	if aln != nil {
		reverseBytes(aln.Seq1Row)
		reverseBytes(aln.Middle)
		reverseBytes(aln.Seq2Row)
	}

	return Coord{Row: row, Col: col}, length, matches, gaps
}

func reverseBytes(s []byte) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
