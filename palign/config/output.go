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

package config

// Output selects which fields of the alignment result are computed.
// Requesting the begin position or the alignment itself switches the
// engine from the O(min(n,m))-memory rolling column to a full trace
// matrix.
type Output uint8

const (
	OutputScore Output = 1 << iota
	OutputEndPosition
	OutputBeginPosition
	OutputAlignment
)

// OutputAll requests every result field.
const OutputAll = OutputScore | OutputEndPosition | OutputBeginPosition | OutputAlignment

// DefaultOutput is used when no output element is configured.
const DefaultOutput = OutputScore | OutputEndPosition

func (Output) id() ElementID { return IDOutput }

// NeedsTrace reports whether this selection requires a trace matrix.
func (o Output) NeedsTrace() bool {
	return o&(OutputBeginPosition|OutputAlignment) > 0
}
