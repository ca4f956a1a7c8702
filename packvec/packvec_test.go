package packvec

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hpdic/hermes/core/bfvwrapper"
)

var (
	testOnce sync.Once
	testCtx  *bfvwrapper.HeContext
)

func testHe(t *testing.T) *bfvwrapper.HeContext {
	t.Helper()
	testOnce.Do(func() {
		var err error
		testCtx, err = bfvwrapper.NewHeContext(12)
		if err != nil {
			panic(err)
		}
	})
	return testCtx
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	he := testHe(t)

	cases := [][]int64{
		{},
		{42},
		{1000, 2000, 1500},
		{-1, 0, 1, -32000, 32000},
	}
	for _, values := range cases {
		ct, err := Encode(he, values)
		require.NoError(t, err)
		decoded, err := Decode(he, ct, len(values))
		require.NoError(t, err)
		require.Len(t, decoded, len(values))
		if len(values) > 0 {
			require.Equal(t, values, decoded)
		}
	}
}

func TestEncodeFullCapacity(t *testing.T) {
	he := testHe(t)

	values := make([]int64, he.Slots())
	for i := range values {
		values[i] = int64(i)
	}
	ct, err := Encode(he, values)
	require.NoError(t, err)
	decoded, err := Decode(he, ct, len(values))
	require.NoError(t, err)
	require.Equal(t, values, decoded)
}

func TestEncodeOverCapacity(t *testing.T) {
	he := testHe(t)

	values := make([]int64, he.Slots()+1)
	_, err := Encode(he, values)

	var capErr CapacityError
	require.ErrorAs(t, err, &capErr)
	require.Equal(t, he.Slots()+1, capErr.Len)
	require.Equal(t, he.Slots(), capErr.Slots)
}

func TestDecodeLengthIsCallerTruth(t *testing.T) {
	he := testHe(t)

	ct, err := Encode(he, []int64{7, 8})
	require.NoError(t, err)

	// Too-short length truncates, too-long length exposes zero padding;
	// neither is detected internally.
	short, err := Decode(he, ct, 1)
	require.NoError(t, err)
	require.Equal(t, []int64{7}, short)

	long, err := Decode(he, ct, 4)
	require.NoError(t, err)
	require.Equal(t, []int64{7, 8, 0, 0}, long)
}

func TestDecodeLengthOutOfRange(t *testing.T) {
	he := testHe(t)

	ct, err := Encode(he, []int64{1})
	require.NoError(t, err)

	_, err = Decode(he, ct, -1)
	require.Error(t, err)
	_, err = Decode(he, ct, he.Slots()+1)
	require.Error(t, err)
}

func TestScalarRoundTrip(t *testing.T) {
	he := testHe(t)

	ct, err := EncodeScalar(he, -12345)
	require.NoError(t, err)
	v, err := DecodeScalar(he, ct)
	require.NoError(t, err)
	require.Equal(t, int64(-12345), v)
}

func TestAddScalarLeavesInputIntact(t *testing.T) {
	he := testHe(t)

	ct, err := EncodeScalar(he, 5)
	require.NoError(t, err)

	out, err := AddScalar(he, ct, 37)
	require.NoError(t, err)
	v, err := DecodeScalar(he, out)
	require.NoError(t, err)
	require.Equal(t, int64(42), v)

	v, err = DecodeScalar(he, ct)
	require.NoError(t, err)
	require.Equal(t, int64(5), v)
}

func TestMulScalars(t *testing.T) {
	he := testHe(t)

	a, err := EncodeScalar(he, 6)
	require.NoError(t, err)
	b, err := EncodeScalar(he, -7)
	require.NoError(t, err)

	product, err := MulScalars(he, a, b)
	require.NoError(t, err)
	v, err := DecodeScalar(he, product)
	require.NoError(t, err)
	require.Equal(t, int64(-42), v)
}
