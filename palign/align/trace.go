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

import "strings"

// TraceDirections records which neighbor(s) a DP value was derived
// from. Bits are combinable so exact ties keep every tying direction;
// the traceback walk picks one canonical direction
// (diagonal > up > left, and continuing a gap run before opening one).
type TraceDirections uint8

const (
	TraceNone     TraceDirections = 0
	TraceDiagonal TraceDirections = 1 << iota
	TraceUp                       // vertical gap run continued
	TraceUpOpen                   // vertical gap run opened
	TraceLeft                     // horizontal gap run continued
	TraceLeftOpen                 // horizontal gap run opened
)

func (t TraceDirections) String() string {
	if t == TraceNone {
		return "×"
	}
	var parts []string
	if t&TraceDiagonal > 0 {
		parts = append(parts, "↖")
	}
	if t&TraceUp > 0 {
		parts = append(parts, "↑")
	}
	if t&TraceUpOpen > 0 {
		parts = append(parts, "↑o")
	}
	if t&TraceLeft > 0 {
		parts = append(parts, "←")
	}
	if t&TraceLeftOpen > 0 {
		parts = append(parts, "←o")
	}
	return strings.Join(parts, "|")
}
