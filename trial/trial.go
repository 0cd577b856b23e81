// Package trial runs timed lookup trials and reports their results.
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package trial

import (
	"fmt"
	"io"
	"time"

	"github.com/NVIDIA/keyspeed/cmn/cos"
	"github.com/NVIDIA/keyspeed/cmn/mono"
)

// Sink receives the last pass sum of every trial so the compiler cannot
// eliminate the lookup loops.
var Sink uint64

type (
	Result struct {
		Label   string
		Elapsed time.Duration
	}
	Runner struct {
		results []Result
		total   uint64
	}
)

// Run executes the pass `iters` times, strictly sequentially, and appends the
// elapsed wall-clock time under the given label. Each pass returns the sum of
// the payloads it found; sums are folded into the grand total.
func (r *Runner) Run(label string, iters int, pass func() uint64) {
	var (
		last, acc uint64
		started   = mono.NanoTime()
	)
	for range iters {
		last = pass()
		acc += last
	}
	elapsed := mono.Since(started)
	Sink = last
	r.total += acc
	r.results = append(r.results, Result{Label: label, Elapsed: elapsed})
}

// Report prints one line per trial, in run order, followed by the grand total.
func (r *Runner) Report(w io.Writer) {
	for _, res := range r.results {
		fmt.Fprintf(w, "%s timing: %s\n", res.Label, cos.FormatMilli(res.Elapsed))
	}
	fmt.Fprintf(w, "grand total: %s\n", cos.FormatBigI64(int64(r.total)))
}

func (r *Runner) Total() uint64 { return r.total }

func (r *Runner) Results() []Result { return r.results }
