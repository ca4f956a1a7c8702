// Package bfvwrapper wraps the lattigo integer scheme (heint, BGV/BFV) behind
// a single context object that owns the scheme parameters and every key
// derived from them. One HeContext corresponds to one trust boundary: every
// ciphertext produced under it is decryptable and rotatable only under this
// exact key lineage. Two contexts built from "identical" parameters are not
// interchangeable, so the context is created once and threaded explicitly
// through every operation.
package bfvwrapper

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v5/core/rlwe"
	"github.com/tuneinsight/lattigo/v5/he/heint"
)

// HeContext holds the parameters, key material and the encoder, encryptor,
// decryptor and evaluator built from them. All fields are read-only after
// construction; the one mutable piece of state is the trace hook installed
// via SetTrace.
type HeContext struct {
	Params    heint.Parameters
	Encoder   *heint.Encoder
	Encryptor *rlwe.Encryptor
	Decryptor *rlwe.Decryptor
	Evaluator *heint.Evaluator

	Sk  *rlwe.SecretKey
	Pk  *rlwe.PublicKey
	Rlk *rlwe.RelinearizationKey
	Gks []*rlwe.GaloisKey

	trace TraceFunc
}

// parametersLiteral returns the scheme parameters for a given ring degree.
//
// The plaintext modulus must satisfy p = 1 mod 2N for slot packing to work;
// 65537 = 2^16 + 1 satisfies this for every ring degree up to 2^15. The
// moduli chain gives a nominal multiplicative depth of two, which is enough
// for one interior slot removal before a refresh.
func parametersLiteral(logN int) (heint.ParametersLiteral, error) {
	switch logN {
	case 12:
		return heint.ParametersLiteral{
			LogN:             12,
			LogQ:             []int{45, 45, 45},
			LogP:             []int{45},
			PlaintextModulus: 65537,
		}, nil
	case 13:
		return heint.ParametersLiteral{
			LogN:             13,
			LogQ:             []int{54, 54, 54},
			LogP:             []int{55},
			PlaintextModulus: 65537,
		}, nil
	case 14:
		// 268369921 = 1 mod 2^15, supports signed values up to ~±134M.
		return heint.ParametersLiteral{
			LogN:             14,
			LogQ:             []int{60, 55, 55},
			LogP:             []int{60},
			PlaintextModulus: 268369921,
		}, nil
	case 15:
		return heint.ParametersLiteral{
			LogN:             15,
			LogQ:             []int{60, 55, 55, 55},
			LogP:             []int{60, 60},
			PlaintextModulus: 268369921,
		}, nil
	default:
		return heint.ParametersLiteral{}, fmt.Errorf("%w: unsupported logN %d (want 12-15)", ErrParameter, logN)
	}
}

// NewHeContext builds a fresh context with new key material for the given
// ring degree. It fails with ErrParameter if the scheme parameters are
// cryptographically inconsistent.
func NewHeContext(logN int) (*HeContext, error) {
	lit, err := parametersLiteral(logN)
	if err != nil {
		return nil, err
	}
	params, err := heint.NewParametersFromLiteral(lit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParameter, err)
	}
	kgen := rlwe.NewKeyGenerator(params)
	sk, pk := kgen.GenKeyPairNew()
	return newHeContextFromKeys(params, sk, pk), nil
}

// newHeContextFromKeys assembles a context around an existing key pair,
// regenerating the evaluation keys (relinearization plus rotations) from the
// secret key. Rotation keys cover the offsets the slot editor composes its
// shifts from: powers of two up to half the slot capacity, and negatives.
func newHeContextFromKeys(params heint.Parameters, sk *rlwe.SecretKey, pk *rlwe.PublicKey) *HeContext {
	kgen := rlwe.NewKeyGenerator(params)
	rlk := kgen.GenRelinearizationKeyNew(sk)

	var gks []*rlwe.GaloisKey
	for step := 1; step < params.MaxSlots()/2; step <<= 1 {
		gks = append(gks,
			kgen.GenGaloisKeyNew(params.GaloisElement(step), sk),
			kgen.GenGaloisKeyNew(params.GaloisElement(-step), sk))
	}
	gks = append(gks, kgen.GenGaloisKeyNew(params.GaloisElementForRowRotation(), sk))

	evk := rlwe.NewMemEvaluationKeySet(rlk, gks...)

	return &HeContext{
		Params:    params,
		Encoder:   heint.NewEncoder(params),
		Encryptor: rlwe.NewEncryptor(params, pk),
		Decryptor: rlwe.NewDecryptor(params, sk),
		Evaluator: heint.NewEvaluator(params, evk),
		Sk:        sk,
		Pk:        pk,
		Rlk:       rlk,
		Gks:       gks,
	}
}

// Slots returns the logical slot capacity of one ciphertext. The integer
// encoder packs values into a 2 x N/2 matrix and column rotations act
// cyclically within each row, so the engine uses the first row only: that
// keeps Rotate a clean cyclic shift over the whole capacity.
func (he *HeContext) Slots() int {
	return he.Params.MaxSlots() / 2
}

// Depth returns the nominal multiplicative budget of a fresh ciphertext.
func (he *HeContext) Depth() int {
	return he.Params.MaxLevel()
}

// Refresh decrypts and re-encrypts ct under the same lineage, resetting its
// multiplicative budget. It needs the secret key, so it is only available
// inside the trust boundary that owns the context.
func (he *HeContext) Refresh(ct *rlwe.Ciphertext) (*rlwe.Ciphertext, error) {
	pt := he.Decryptor.DecryptNew(ct)
	values := make([]int64, he.Params.MaxSlots())
	if err := he.Encoder.Decode(pt, values); err != nil {
		return nil, fmt.Errorf("cannot Refresh: %w", err)
	}
	fresh := heint.NewPlaintext(he.Params, he.Params.MaxLevel())
	if err := he.Encoder.Encode(values, fresh); err != nil {
		return nil, fmt.Errorf("cannot Refresh: %w", err)
	}
	return he.Encryptor.EncryptNew(fresh)
}
