package bfvwrapper

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tuneinsight/lattigo/v5/core/rlwe"
	"github.com/tuneinsight/lattigo/v5/he/heint"
)

// Store is the byte-oriented persistence contract for key material. The blob
// format is owned by the engine's serialization; the store only moves named
// byte slices.
type Store interface {
	Save(name string, data []byte) error
	Load(name string) ([]byte, error)
}

// DirStore persists blobs as files under a directory.
type DirStore struct {
	Dir string
}

func (s DirStore) Save(name string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.Dir, name), data, 0o600)
}

func (s DirStore) Load(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrKeyLoad, name, err)
	}
	return data, nil
}

// Blob names under a store. Evaluation keys are not persisted: they are
// regenerated from the secret key on load.
const (
	blobParams    = "hermes_params.bin"
	blobLineage   = "hermes_lineage.txt"
	blobSecretKey = "hermes_sec.key"
	blobPublicKey = "hermes_pub.key"
)

// SaveKeys persists the context's parameters, lineage fingerprint and key
// pair.
func SaveKeys(he *HeContext, store Store) error {
	pb, err := he.Params.MarshalBinary()
	if err != nil {
		return fmt.Errorf("cannot SaveKeys: params: %w", err)
	}
	if err := store.Save(blobParams, pb); err != nil {
		return fmt.Errorf("cannot SaveKeys: params: %w", err)
	}

	fp, err := he.Fingerprint()
	if err != nil {
		return fmt.Errorf("cannot SaveKeys: %w", err)
	}
	if err := store.Save(blobLineage, []byte(fp)); err != nil {
		return fmt.Errorf("cannot SaveKeys: lineage: %w", err)
	}

	sb, err := he.Sk.MarshalBinary()
	if err != nil {
		return fmt.Errorf("cannot SaveKeys: secret key: %w", err)
	}
	if err := store.Save(blobSecretKey, sb); err != nil {
		return fmt.Errorf("cannot SaveKeys: secret key: %w", err)
	}

	kb, err := he.Pk.MarshalBinary()
	if err != nil {
		return fmt.Errorf("cannot SaveKeys: public key: %w", err)
	}
	if err := store.Save(blobPublicKey, kb); err != nil {
		return fmt.Errorf("cannot SaveKeys: public key: %w", err)
	}
	return nil
}

// LoadHeContext rebuilds a context from persisted key material and verifies
// the stored lineage fingerprint against the rebuilt one. A mismatch means
// the blobs were produced under a different lineage and fails with
// ErrContextMismatch before any ciphertext can be touched with wrong keys.
func LoadHeContext(store Store) (*HeContext, error) {
	pb, err := store.Load(blobParams)
	if err != nil {
		return nil, err
	}
	var params heint.Parameters
	if err := UnmarshalBlob(&params, pb); err != nil {
		return nil, fmt.Errorf("%w: params: %v", ErrKeyLoad, err)
	}

	sb, err := store.Load(blobSecretKey)
	if err != nil {
		return nil, err
	}
	sk := &rlwe.SecretKey{}
	if err := UnmarshalBlob(sk, sb); err != nil {
		return nil, fmt.Errorf("%w: secret key: %v", ErrKeyLoad, err)
	}

	kb, err := store.Load(blobPublicKey)
	if err != nil {
		return nil, err
	}
	pk := &rlwe.PublicKey{}
	if err := UnmarshalBlob(pk, kb); err != nil {
		return nil, fmt.Errorf("%w: public key: %v", ErrKeyLoad, err)
	}

	he := newHeContextFromKeys(params, sk, pk)

	want, err := store.Load(blobLineage)
	if err != nil {
		return nil, err
	}
	got, err := he.Fingerprint()
	if err != nil {
		return nil, err
	}
	if string(want) != got {
		return nil, fmt.Errorf("%w: stored %s, rebuilt %s", ErrContextMismatch, want, got)
	}
	return he, nil
}
