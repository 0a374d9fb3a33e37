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

// Method selects the alignment method: global (Needleman-Wunsch) or
// local (Smith-Waterman), with four independent free-end-gap flags
// for semi-global variants. The flags name the sequence whose
// alignment row may carry unpenalized gaps at that end.
//
// The zero value is strict global alignment.
type Method struct {
	Local bool

	FreeEndSeq1Leading  bool
	FreeEndSeq1Trailing bool
	FreeEndSeq2Leading  bool
	FreeEndSeq2Trailing bool
}

func (Method) id() ElementID { return IDMethod }

// Global is strict global alignment, all end gaps penalized.
var Global = Method{}

// Local is local alignment; end-gap flags are ignored.
var Local = Method{Local: true}

// SemiGlobalSeq1 leaves both ends of sequence 1 unpenalized:
// sequence 2 is aligned as an infix of sequence 1's row.
var SemiGlobalSeq1 = Method{FreeEndSeq1Leading: true, FreeEndSeq1Trailing: true}

// SemiGlobalSeq2 leaves both ends of sequence 2 unpenalized.
var SemiGlobalSeq2 = Method{FreeEndSeq2Leading: true, FreeEndSeq2Trailing: true}

func (m Method) String() string {
	if m.Local {
		return "local"
	}
	if m.FreeEndSeq1Leading || m.FreeEndSeq1Trailing ||
		m.FreeEndSeq2Leading || m.FreeEndSeq2Trailing {
		return "semi-global"
	}
	return "global"
}
