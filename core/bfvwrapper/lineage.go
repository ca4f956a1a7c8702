package bfvwrapper

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a hex-encoded blake2b-256 digest of the serialized
// parameters and public key. Two contexts share a fingerprint only if they
// share the exact key lineage; rebuilding "the same" parameters with fresh
// keys yields a different fingerprint. The keystore persists it next to the
// keys and verifies it on load.
func (he *HeContext) Fingerprint() (string, error) {
	pb, err := he.Params.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("cannot Fingerprint: %w", err)
	}
	kb, err := he.Pk.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("cannot Fingerprint: %w", err)
	}
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	h.Write(pb)
	h.Write(kb)
	return hex.EncodeToString(h.Sum(nil)), nil
}
