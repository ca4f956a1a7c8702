package utils

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDurationMS(t *testing.T) {
	require.Equal(t, 1.5, DurationMS(1500*time.Microsecond))
}

func TestOpTimingsSummary(t *testing.T) {
	var buf bytes.Buffer
	oldOut, oldVerbose := Output, Verbose
	Output, Verbose = &buf, true
	defer func() { Output, Verbose = oldOut, oldVerbose }()

	tm := NewOpTimings()
	tm.Record("encrypt", 2*time.Millisecond)
	tm.Record("encrypt", 4*time.Millisecond)
	tm.Time("rotate", func() {})
	tm.Summary()

	out := buf.String()
	require.Contains(t, out, "encrypt")
	require.Contains(t, out, "rotate")
	require.Contains(t, out, "n=2")
}

func TestSummaryRespectsVerbose(t *testing.T) {
	var buf bytes.Buffer
	oldOut, oldVerbose := Output, Verbose
	Output, Verbose = &buf, false
	defer func() { Output, Verbose = oldOut, oldVerbose }()

	tm := NewOpTimings()
	tm.Record("encrypt", time.Millisecond)
	tm.Summary()

	require.Zero(t, buf.Len(), "no output expected with Verbose=false")
}
