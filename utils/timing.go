package utils

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Verbose controls whether timing summaries are printed.
// Set to false to suppress output.
var Verbose = true

// Output is the writer where timing summaries are printed.
// Defaults to os.Stdout.
var Output io.Writer = os.Stdout

// OpTimings collects per-operation latencies for the homomorphic hot paths
// (encrypt, accumulate, rotate, remove, ...).
type OpTimings struct {
	samples map[string][]float64 // milliseconds
}

// NewOpTimings returns an empty collector.
func NewOpTimings() *OpTimings {
	return &OpTimings{samples: make(map[string][]float64)}
}

// Record adds one latency sample for op.
func (t *OpTimings) Record(op string, d time.Duration) {
	t.samples[op] = append(t.samples[op], DurationMS(d))
}

// Time measures f and records it under op.
func (t *OpTimings) Time(op string, f func()) {
	start := time.Now()
	f()
	t.Record(op, time.Since(start))
}

// Summary prints per-operation count, mean, standard deviation, min and max.
// Respects the Verbose flag - does nothing if Verbose is false.
func (t *OpTimings) Summary() {
	if !Verbose {
		return
	}
	ops := make([]string, 0, len(t.samples))
	for op := range t.samples {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	fmt.Fprintln(Output, "\n=== OPERATION TIMINGS (ms) ===")
	for _, op := range ops {
		xs := t.samples[op]
		fmt.Fprintf(Output, "  %-24s n=%-4d mean=%-10.3f std=%-10.3f min=%-10.3f max=%.3f\n",
			op, len(xs), stat.Mean(xs, nil), stat.StdDev(xs, nil), floats.Min(xs), floats.Max(xs))
	}
}

// DurationMS converts any time.Duration to milliseconds as float64.
func DurationMS(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1_000_000.0
}
