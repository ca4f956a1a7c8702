package bfvwrapper

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo/v5/core/rlwe"
)

func TestKeystoreRoundTrip(t *testing.T) {
	he := testHe(t)
	store := DirStore{Dir: t.TempDir()}

	require.NoError(t, SaveKeys(he, store))

	loaded, err := LoadHeContext(store)
	require.NoError(t, err)

	fp, err := he.Fingerprint()
	require.NoError(t, err)
	fpLoaded, err := loaded.Fingerprint()
	require.NoError(t, err)
	require.Equal(t, fp, fpLoaded, "loaded context must rebuild the same lineage")

	// Ciphertexts cross between the original and the reloaded context.
	ct, err := he.Algebra().Encrypt([]int64{1000, 2000})
	require.NoError(t, err)
	decoded, err := loaded.Algebra().Decrypt(ct)
	require.NoError(t, err)
	require.Equal(t, []int64{1000, 2000}, decoded[:2])
}

func TestKeystoreMissingBlobs(t *testing.T) {
	_, err := LoadHeContext(DirStore{Dir: t.TempDir()})
	require.ErrorIs(t, err, ErrKeyLoad)
}

func TestKeystoreCorruptBlobs(t *testing.T) {
	he := testHe(t)

	// Damaging any single blob must surface as ErrKeyLoad, not a crash, even
	// though the engine's decoders panic on malformed length prefixes.
	for _, blob := range []string{blobParams, blobSecretKey, blobPublicKey} {
		store := DirStore{Dir: t.TempDir()}
		require.NoError(t, SaveKeys(he, store))
		require.NoError(t, store.Save(blob, []byte("not a key")))

		_, err := LoadHeContext(store)
		require.ErrorIs(t, err, ErrKeyLoad, "blob %s", blob)
	}
}

func TestUnmarshalBlobRecoversDecodePanics(t *testing.T) {
	he := testHe(t)

	ct, err := he.Algebra().Encrypt([]int64{1, 2, 3})
	require.NoError(t, err)
	data, err := ct.MarshalBinary()
	require.NoError(t, err)

	// A truncated prefix of a valid serialization drives the decoder into
	// out-of-range slice allocations.
	var out rlwe.Ciphertext
	require.Error(t, UnmarshalBlob(&out, data[:len(data)/2]))
	require.Error(t, UnmarshalBlob(&out, []byte("garbage")))

	require.NoError(t, UnmarshalBlob(&out, data))
	decoded, err := he.Algebra().Decrypt(&out)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, decoded[:3])
}

func TestKeystoreLineageMismatch(t *testing.T) {
	he := testHe(t)
	store := DirStore{Dir: t.TempDir()}
	require.NoError(t, SaveKeys(he, store))

	// A lineage recorded by some other boundary must be rejected even though
	// every key blob individually parses.
	other, err := NewHeContext(12)
	require.NoError(t, err)
	fpOther, err := other.Fingerprint()
	require.NoError(t, err)
	require.NoError(t, store.Save(blobLineage, []byte(fpOther)))

	_, err = LoadHeContext(store)
	require.ErrorIs(t, err, ErrContextMismatch)
}
