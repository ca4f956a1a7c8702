// Package transport moves engine-serialized ciphertexts across byte and
// text boundaries. Armoring is plain base64, a storage convenience for
// text-oriented columns and logs, not cryptographic logic.
package transport

import (
	"encoding/base64"
	"fmt"

	"github.com/tuneinsight/lattigo/v5/core/rlwe"

	"github.com/hpdic/hermes/core/bfvwrapper"
)

// Armor encodes engine-serialized bytes as base64 text.
func Armor(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Unarmor decodes base64 text back to engine-serialized bytes.
func Unarmor(text string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("transport: invalid armor: %w", err)
	}
	return data, nil
}

// MarshalCiphertext serializes a ciphertext with the engine's binary format.
func MarshalCiphertext(ct *rlwe.Ciphertext) ([]byte, error) {
	return ct.MarshalBinary()
}

// UnmarshalCiphertext rebuilds a ciphertext from engine-serialized bytes.
// The result is only meaningful under the context lineage that produced it;
// the bytes carry no lineage identity of their own. Corrupt bytes fail with
// an error, never a crash: this is the one boundary that ingests data from
// outside the process.
func UnmarshalCiphertext(data []byte) (*rlwe.Ciphertext, error) {
	ct := &rlwe.Ciphertext{}
	if err := bfvwrapper.UnmarshalBlob(ct, data); err != nil {
		return nil, fmt.Errorf("transport: corrupt ciphertext: %w", err)
	}
	return ct, nil
}

// ExportCiphertext serializes and armors in one step.
func ExportCiphertext(ct *rlwe.Ciphertext) (string, error) {
	data, err := MarshalCiphertext(ct)
	if err != nil {
		return "", err
	}
	return Armor(data), nil
}

// ImportCiphertext unarmors and deserializes in one step.
func ImportCiphertext(text string) (*rlwe.Ciphertext, error) {
	data, err := Unarmor(text)
	if err != nil {
		return nil, err
	}
	return UnmarshalCiphertext(data)
}
