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
	"runtime"
	"sync"

	"github.com/palign/palign/palign/config"
)

// AlignFunc aligns one sequence pair.
type AlignFunc func(seq1, seq2 []byte) (*Result, error)

// Executor decides how submitted alignments run: in place on the
// calling goroutine, or fanned out over workers. Implementations
// must invoke the per-call delegate exactly once per successful
// alignment and never concurrently with itself.
type Executor interface {
	// Execute submits one alignment. The index tags the produced
	// result for order recovery.
	Execute(fn AlignFunc, index int, seq1, seq2 []byte, delegate func(*Result))

	// Wait blocks until all submitted alignments finished and
	// returns the first error encountered, if any.
	Wait() error
}

// SequentialExecutor runs every alignment immediately on the calling
// goroutine. After the first error, further submissions are dropped.
type SequentialExecutor struct {
	err error
}

func (e *SequentialExecutor) Execute(fn AlignFunc, index int, seq1, seq2 []byte, delegate func(*Result)) {
	if e.err != nil {
		return
	}
	r, err := fn(seq1, seq2)
	if err != nil {
		e.err = err
		return
	}
	r.Index = index
	delegate(r)
}

func (e *SequentialExecutor) Wait() error { return e.err }

// ParallelExecutor fans alignments out over a bounded set of worker
// goroutines. Submission blocks while all tokens are taken, so at
// most `threads` alignments are in flight. Delegates run under an
// internal lock and never overlap. Completion order is unspecified;
// use the result index to restore input order.
type ParallelExecutor struct {
	tokens chan int
	wg     sync.WaitGroup

	mu  sync.Mutex
	err error
}

// NewParallelExecutor returns an executor with the given number of
// workers, defaulting to the number of CPUs when threads <= 0.
func NewParallelExecutor(threads int) *ParallelExecutor {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	return &ParallelExecutor{tokens: make(chan int, threads)}
}

func (e *ParallelExecutor) Execute(fn AlignFunc, index int, seq1, seq2 []byte, delegate func(*Result)) {
	e.wg.Add(1)
	e.tokens <- 1
	go func() {
		defer e.wg.Done()
		defer func() { <-e.tokens }()

		r, err := fn(seq1, seq2)

		e.mu.Lock()
		defer e.mu.Unlock()
		if err != nil {
			if e.err == nil {
				e.err = err
			}
			return
		}
		if e.err != nil {
			RecycleResult(r)
			return
		}
		r.Index = index
		delegate(r)
	}()
}

func (e *ParallelExecutor) Wait() error {
	e.wg.Wait()
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

// AlignPairs aligns all pairs under one configuration through the
// given executor (sequential when nil) and returns the results in
// input order. Each worker draws a private Aligner from a pool, so
// matrix buffers are reused across pairs without sharing. The
// configured on-result callback observes results in completion
// order, which for a parallel executor need not be input order.
func AlignPairs(cfg config.Config, pairs []Pair, exec Executor) ([]*Result, error) {
	if exec == nil {
		exec = &SequentialExecutor{}
	}

	first, err := New(cfg)
	if err != nil {
		return nil, err
	}
	pool := &sync.Pool{New: func() interface{} {
		a, _ := New(cfg) // cfg already validated above
		return a
	}}
	pool.Put(first)

	onResult, _ := cfg.OnResult()

	fn := func(seq1, seq2 []byte) (*Result, error) {
		a := pool.Get().(*Aligner)
		defer pool.Put(a)
		return a.AlignPair(seq1, seq2)
	}

	results := make([]*Result, len(pairs))
	for i, p := range pairs {
		p := p
		exec.Execute(fn, i, p.Seq1, p.Seq2, func(r *Result) {
			r.ID1 = append(r.ID1, p.ID1...)
			r.ID2 = append(r.ID2, p.ID2...)
			results[r.Index] = r
			if onResult != nil {
				onResult(r)
			}
		})
	}

	if err := exec.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
