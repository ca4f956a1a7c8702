package bfvwrapper

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v5/core/rlwe"
	"github.com/tuneinsight/lattigo/v5/he/heint"
)

// Algebra is the ciphertext-algebra surface the engine packages build on:
// slot-wise addition and multiplication, cyclic slot rotation, and the
// encrypt/decrypt boundary. Every method is pure: inputs are never mutated
// and results are freshly allocated ciphertexts.
type Algebra struct {
	he *HeContext
}

// Algebra returns the adapter bound to this context.
func (he *HeContext) Algebra() Algebra {
	return Algebra{he: he}
}

// AddCt adds two ciphertexts slot-wise.
func (a Algebra) AddCt(ct0, ct1 *rlwe.Ciphertext) (*rlwe.Ciphertext, error) {
	return a.he.Evaluator.AddNew(ct0, ct1)
}

// AddPlain adds a plaintext vector slot-wise.
func (a Algebra) AddPlain(ct *rlwe.Ciphertext, values []int64) (*rlwe.Ciphertext, error) {
	return a.he.Evaluator.AddNew(ct, values)
}

// MulPlain multiplies slot-wise by a plaintext vector, typically a 0/1 mask.
// Each call draws on the ciphertext's multiplicative budget.
func (a Algebra) MulPlain(ct *rlwe.Ciphertext, values []uint64) (*rlwe.Ciphertext, error) {
	return a.he.Evaluator.MulNew(ct, values)
}

// MulCt multiplies two ciphertexts slot-wise, relinearizing the result.
func (a Algebra) MulCt(ct0, ct1 *rlwe.Ciphertext) (*rlwe.Ciphertext, error) {
	return a.he.Evaluator.MulRelinNew(ct0, ct1)
}

// Rotate cyclically rotates the slots left by k (right for negative k),
// composing the shift from the provisioned power-of-two rotation keys: one
// key switch per set bit of |k|.
func (a Algebra) Rotate(ct *rlwe.Ciphertext, k int) (*rlwe.Ciphertext, error) {
	slots := a.he.Slots()
	sign := 1
	if k < 0 {
		sign, k = -1, -k
	}
	k %= slots

	out := ct
	var err error
	for step := 1; k > 0; step <<= 1 {
		if k&1 == 1 {
			if out, err = a.he.Evaluator.RotateColumnsNew(out, sign*step); err != nil {
				return nil, fmt.Errorf("cannot Rotate: %w", err)
			}
		}
		k >>= 1
	}
	if out == ct {
		out = ct.CopyNew()
	}
	return out, nil
}

// Encrypt encodes values into slots [0, len(values)) of a fresh plaintext,
// zero elsewhere, and encrypts it under the context's public key. Encryption
// is probabilistic: two encryptions of equal values are never bit-identical,
// only decryption-equivalent.
func (a Algebra) Encrypt(values []int64) (*rlwe.Ciphertext, error) {
	pt := heint.NewPlaintext(a.he.Params, a.he.Params.MaxLevel())
	if err := a.he.Encoder.Encode(values, pt); err != nil {
		return nil, fmt.Errorf("cannot Encrypt: %w", err)
	}
	return a.he.Encryptor.EncryptNew(pt)
}

// Decrypt returns the decoded slot contents, one signed integer per slot of
// the logical capacity.
func (a Algebra) Decrypt(ct *rlwe.Ciphertext) ([]int64, error) {
	pt := a.he.Decryptor.DecryptNew(ct)
	values := make([]int64, a.he.Params.MaxSlots())
	if err := a.he.Encoder.Decode(pt, values); err != nil {
		return nil, fmt.Errorf("cannot Decrypt: %w", err)
	}
	return values[:a.he.Slots()], nil
}
