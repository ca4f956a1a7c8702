package bfvwrapper

import "github.com/tuneinsight/lattigo/v5/core/rlwe"

// TraceFunc receives a label and the decrypted leading slots of an
// intermediate ciphertext. Tracing decrypts, so a hook must only ever be
// installed in development or tests, never in production.
type TraceFunc func(label string, slots []int64)

// SetTrace installs fn as the tracing hook; nil disables tracing. When no
// hook is installed, mutation paths perform no decryption at all.
func (he *HeContext) SetTrace(fn TraceFunc) {
	he.trace = fn
}

// TraceCt reports the first n slots of ct to the installed hook, if any.
func (he *HeContext) TraceCt(label string, ct *rlwe.Ciphertext, n int) {
	if he.trace == nil {
		return
	}
	values, err := he.Algebra().Decrypt(ct)
	if err != nil {
		return
	}
	if n > len(values) {
		n = len(values)
	}
	he.trace(label, values[:n])
}
