package bfvwrapper

import "sync"

// DefaultLogN is the ring degree of the shared per-process context.
const DefaultLogN = 13

var (
	defaultOnce sync.Once
	defaultCtx  *HeContext
	defaultErr  error
)

// Default returns the process-wide context, constructing it on first use.
// Concurrent first calls are serialized by the init-once guard, so a process
// can never end up with two divergent default lineages.
func Default() (*HeContext, error) {
	defaultOnce.Do(func() {
		defaultCtx, defaultErr = NewHeContext(DefaultLogN)
	})
	return defaultCtx, defaultErr
}
