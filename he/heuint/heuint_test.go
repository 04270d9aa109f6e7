package heuint

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mathisbot/homomorph/core/phe"
	"github.com/mathisbot/homomorph/utils/sampling"
)

var flagParamString = flag.String("params", "", "specify the test cryptographic parameters as a JSON string. Overrides the default test parameters.")

var testParametersLiteral = []phe.ParametersLiteral{
	{N: 4, D: 12, DP: 3, Delta: 1, Tau: 6},
	{N: 4, D: 24, DP: 3, Delta: 2, Tau: 6},
	phe.ExampleParametersUint8,
	// too shallow for an addition, but fresh encryptions decrypt correctly
	phe.ExampleParametersShallow,
}

func testString(params phe.Parameters, opname string) string {
	return fmt.Sprintf("%s/%s", opname, params)
}

type testContext struct {
	params phe.Parameters
	sk     *phe.SecretKey
	pk     *phe.PublicKey
	enc    *Encryptor
	dec    *Decryptor
}

func newTestContext(params phe.Parameters) (tc *testContext, err error) {

	tc = &testContext{params: params}

	tc.sk, tc.pk = phe.NewKeyGenerator(params).WithSeed([]byte("heuint test keys")).GenKeyPairNew()

	var prng sampling.PRNG
	if prng, err = sampling.NewKeyedPRNG([]byte("heuint test subsets")); err != nil {
		return nil, err
	}

	tc.enc = NewEncryptor(params, tc.pk).WithPRNG(prng)
	tc.dec = NewDecryptor(params, tc.sk)

	return
}

func TestHEUint(t *testing.T) {

	var err error

	paramsLiterals := testParametersLiteral

	if *flagParamString != "" {
		var jsonParams phe.ParametersLiteral
		if err = json.Unmarshal([]byte(*flagParamString), &jsonParams); err != nil {
			t.Fatal(err)
		}
		paramsLiterals = []phe.ParametersLiteral{jsonParams} // the custom test suite reads the parameters from the -params flag
	}

	for _, paramsLit := range paramsLiterals {

		var params phe.Parameters
		if params, err = phe.NewParametersFromLiteral(paramsLit); err != nil {
			t.Fatal(err)
		}

		tc, err := newTestContext(params)
		require.NoError(t, err)

		for _, testSet := range []func(tc *testContext, t *testing.T){
			testEncryptDecrypt,
			testWithKey,
			testSubsetReuse,
			testErrors,
			testMarshaller,
		} {
			testSet(tc, t)
		}
	}

	testBitDecomposition(t)
}

// testValues returns every N-bit value for small N, and a sample of
// N-bit values including the extremes otherwise.
func testValues(params phe.Parameters) (values []uint64) {

	maxValue := params.MaxPlaintext()

	if params.N() <= 8 {
		for x := uint64(0); x <= maxValue; x++ {
			values = append(values, x)
		}
		return
	}

	prng, err := sampling.NewKeyedPRNG([]byte("heuint test values"))
	if err != nil {
		panic(err)
	}

	values = []uint64{0, 1, maxValue - 1, maxValue}
	for i := 0; i < 64; i++ {
		values = append(values, sampling.RandUint64N(prng, maxValue))
	}

	return
}

func testEncryptDecrypt(tc *testContext, t *testing.T) {

	params := tc.params

	t.Run(testString(params, "Encryptor/RoundTrip"), func(t *testing.T) {

		for _, x := range testValues(params) {

			ct, err := tc.enc.EncryptNew(x)
			require.NoError(t, err)
			require.Equal(t, params.N(), ct.Len())

			have, err := tc.dec.DecryptNew(ct)
			require.NoError(t, err)
			require.Equal(t, x, have)
		}
	})

	t.Run(testString(params, "Encryptor/ShallowCopy"), func(t *testing.T) {

		enc, dec := tc.enc.ShallowCopy(), tc.dec.ShallowCopy()

		x := params.MaxPlaintext() / 3

		ct, err := enc.EncryptNew(x)
		require.NoError(t, err)

		have, err := dec.DecryptNew(ct)
		require.NoError(t, err)
		require.Equal(t, x, have)
	})
}

func testWithKey(tc *testContext, t *testing.T) {

	params := tc.params

	t.Run(testString(params, "Encryptor/WithKey"), func(t *testing.T) {

		sk, pk := phe.NewKeyGenerator(params).WithSeed([]byte("heuint other keys")).GenKeyPairNew()

		enc := tc.enc.WithKey(pk)
		dec := tc.dec.WithKey(sk)

		x := params.MaxPlaintext() - 1

		ct, err := enc.EncryptNew(x)
		require.NoError(t, err)

		have, err := dec.DecryptNew(ct)
		require.NoError(t, err)
		require.Equal(t, x, have)

		// the receivers keep their own keys
		ct, err = tc.enc.EncryptNew(x)
		require.NoError(t, err)

		have, err = tc.dec.DecryptNew(ct)
		require.NoError(t, err)
		require.Equal(t, x, have)
	})
}

func testSubsetReuse(tc *testContext, t *testing.T) {

	params := tc.params

	t.Run(testString(params, "Encryptor/SubsetReuse"), func(t *testing.T) {

		u := tc.enc.SampleSubset()

		// alternating bits, most significant first: 1, 0, 1, 0, ...
		var x uint64
		for i := 0; i < params.N(); i++ {
			x = x<<1 | uint64((i+1)&1)
		}

		ct, err := tc.enc.EncryptWithSubsetNew(x, u)
		require.NoError(t, err)

		// with a single subset, equal bits have equal encryptions
		for i := 2; i < ct.Len(); i++ {
			require.True(t, ct.Value[i].Equal(&ct.Value[i-2]))
		}

		have, err := tc.dec.DecryptNew(ct)
		require.NoError(t, err)
		require.Equal(t, x, have)

		bit, err := tc.enc.EncryptBitNew(1, u)
		require.NoError(t, err)
		require.True(t, ct.Value[0].Equal(bit))
	})
}

func testErrors(tc *testContext, t *testing.T) {

	params := tc.params

	t.Run(testString(params, "Encryptor/OutOfRange"), func(t *testing.T) {

		if params.N() == 64 {
			t.Skip("every uint64 fits on 64 bits")
		}

		_, err := tc.enc.EncryptNew(params.MaxPlaintext() + 1)
		require.ErrorIs(t, err, ErrPlaintextOutOfRange)

		_, err = tc.enc.EncryptNew(^uint64(0))
		require.ErrorIs(t, err, ErrPlaintextOutOfRange)
	})

	t.Run(testString(params, "Encryptor/InvalidSubset"), func(t *testing.T) {
		_, err := tc.enc.EncryptWithSubsetNew(1, phe.Subset{params.Tau()})
		require.ErrorIs(t, err, phe.ErrInvalidSubset)
	})

	t.Run(testString(params, "Decryptor/WidthMismatch"), func(t *testing.T) {

		ct, err := tc.enc.EncryptNew(1)
		require.NoError(t, err)

		_, err = tc.dec.DecryptNew(&Ciphertext{Value: ct.Value[1:]})
		require.ErrorIs(t, err, ErrWidthMismatch)

		wide := NewCiphertext(&ct.Value[0])
		wide.Value = append(wide.Value, ct.Value...)
		_, err = tc.dec.DecryptNew(wide)
		require.ErrorIs(t, err, ErrWidthMismatch)
	})
}

func testMarshaller(tc *testContext, t *testing.T) {

	params := tc.params

	t.Run(testString(params, "Marshaller/Ciphertext"), func(t *testing.T) {

		x := params.MaxPlaintext() >> 1

		ct, err := tc.enc.EncryptNew(x)
		require.NoError(t, err)

		data, err := ct.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, data, ct.BinarySize())

		have := new(Ciphertext)
		require.NoError(t, have.UnmarshalBinary(data))
		require.True(t, ct.Equal(have))

		buf := new(bytes.Buffer)
		_, err = ct.WriteTo(buf)
		require.NoError(t, err)

		have = new(Ciphertext)
		_, err = have.ReadFrom(buf)
		require.NoError(t, err)

		y, err := tc.dec.DecryptNew(have)
		require.NoError(t, err)
		require.Equal(t, x, y)
	})

	t.Run(testString(params, "Marshaller/ShallowCopy"), func(t *testing.T) {

		ct0, err := tc.enc.EncryptNew(1)
		require.NoError(t, err)

		ct1, err := tc.enc.EncryptNew(params.MaxPlaintext())
		require.NoError(t, err)

		data, err := ct1.MarshalBinary()
		require.NoError(t, err)

		cpy := ct0.CopyNew()
		shallow := *ct0
		require.NoError(t, shallow.UnmarshalBinary(data))
		require.True(t, shallow.Equal(ct1))

		// decoding into a shallow copy leaves the original ciphertext untouched
		require.True(t, ct0.Equal(cpy))
	})

	t.Run(testString(params, "Ciphertext/CopyNew"), func(t *testing.T) {

		ct, err := tc.enc.EncryptNew(1)
		require.NoError(t, err)

		cpy := ct.CopyNew()
		require.True(t, ct.Equal(cpy))

		cpy.Value[0].Value.Coeffs = append(cpy.Value[0].Value.Coeffs, 1)
		require.False(t, ct.Equal(cpy))
	})
}

func testBitDecomposition(t *testing.T) {

	t.Run("BitDecompose", func(t *testing.T) {
		require.Equal(t, []uint64{0, 0, 1, 1}, BitDecompose(3, 4))
		require.Equal(t, []uint64{1, 0, 0, 0}, BitDecompose(8, 4))
		require.Equal(t, []uint64{0, 1}, BitDecompose(5, 2))
		require.Empty(t, BitDecompose(5, 0))
		require.Len(t, BitDecompose(^uint64(0), 64), 64)
	})

	t.Run("BitRecompose", func(t *testing.T) {
		require.Equal(t, uint64(8), BitRecompose([]uint64{1, 0, 0, 0}))
		require.Equal(t, uint64(0), BitRecompose(nil))
		for _, x := range []uint64{0, 1, 42, 1 << 63, ^uint64(0)} {
			require.Equal(t, x, BitRecompose(BitDecompose(x, 64)))
		}
	})
}
