// Package batch evaluates operation vectors against a secpmath engine using a
// pool of parallel workers.
package batch

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/mahdiidarabi/secp256k1-ecrecover/internal/vectors"
	"github.com/mahdiidarabi/secp256k1-ecrecover/pkg/secpmath"
)

// Result is the outcome of evaluating one vector.
type Result struct {
	Vector *vectors.Vector
	Output Output
	Err    error

	// Checked is true when the vector carried an expectation.
	Checked bool
	Pass    bool
}

// Summary counts results by outcome.
type Summary struct {
	Total     int
	Passed    int
	Failed    int
	Unchecked int
}

// Summarize counts the results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case !r.Checked:
			s.Unchecked++
		case r.Pass:
			s.Passed++
		default:
			s.Failed++
		}
	}
	return s
}

// workItem is a vector with its position in the input.
type workItem struct {
	index  int
	vector *vectors.Vector
}

// Run evaluates vecs using parallel workers and returns one result per vector
// in input order.
//
// Args:
//   - ctx: Cancelling stops dispatch of remaining vectors
//   - engine: Engine shared by all workers
//   - vecs: Vectors to evaluate
//   - numWorkers: Number of parallel workers (0 = auto-detect based on CPU cores)
//
// Returns:
//   - Results in input order, or ctx.Err() when cancelled before completion
func Run(ctx context.Context, engine *secpmath.Engine, vecs []*vectors.Vector, numWorkers int) ([]Result, error) {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(vecs) && len(vecs) > 0 {
		numWorkers = len(vecs)
	}
	log.Debugf("Evaluating %d vectors with %d workers", len(vecs), numWorkers)

	results := make([]Result, len(vecs))
	workChan := make(chan workItem, numWorkers*10)

	var evaluated int64

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(ctx, engine, workChan, results, &evaluated, workerID)
		}(i)
	}

	go func() {
		defer close(workChan)
		for i, v := range vecs {
			select {
			case <-ctx.Done():
				return
			case workChan <- workItem{index: i, vector: v}:
			}
		}
	}()

	wg.Wait()

	n := atomic.LoadInt64(&evaluated)
	log.Debugf("Evaluated %d of %d vectors", n, len(vecs))
	if int(n) < len(vecs) {
		if err := ctx.Err(); err != nil {
			return results, err
		}
	}
	return results, nil
}

// worker processes work items until the channel closes or ctx is done.  Each
// worker writes only to the result slots of the items it receives.
func worker(
	ctx context.Context,
	engine *secpmath.Engine,
	workChan <-chan workItem,
	results []Result,
	evaluated *int64,
	workerID int,
) {
	for {
		select {
		case <-ctx.Done():
			return
		case work, ok := <-workChan:
			if !ok || ctx.Err() != nil {
				return
			}

			results[work.index] = Check(engine, work.vector)
			atomic.AddInt64(evaluated, 1)
			if r := results[work.index]; r.Checked && !r.Pass {
				log.Tracef("worker %d: vector %d (%s) failed", workerID,
					work.vector.Source, work.vector.Op)
			}
		}
	}
}

// Check evaluates a single vector and compares it against its expectation.
func Check(engine *secpmath.Engine, v *vectors.Vector) Result {
	out, err := Evaluate(engine, v.Op, v.Args)
	r := Result{Vector: v, Output: out, Err: err}

	switch {
	case v.ExpectError != "":
		r.Checked = true
		r.Pass = err != nil && errors.Is(err, secpmath.ErrorKind(v.ExpectError))
	case len(v.Expect) > 0:
		r.Checked = true
		r.Pass = err == nil && out.Matches(v.Expect)
	}
	return r
}
