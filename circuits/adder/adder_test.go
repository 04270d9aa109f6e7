package adder

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mathisbot/homomorph/core/phe"
	"github.com/mathisbot/homomorph/he/heuint"
	"github.com/mathisbot/homomorph/ring"
	"github.com/mathisbot/homomorph/utils/sampling"
)

var testParametersLiteral = []phe.ParametersLiteral{
	{N: 4, D: 12, DP: 3, Delta: 1, Tau: 6},
	{N: 4, D: 24, DP: 3, Delta: 2, Tau: 6},
	phe.ExampleParametersUint8,
}

func testString(params phe.Parameters, opname string) string {
	return fmt.Sprintf("%s/%s", opname, params)
}

type testContext struct {
	params phe.Parameters
	sk     *phe.SecretKey
	enc    *heuint.Encryptor
	dec    *heuint.Decryptor
	eval   *Evaluator
}

func newTestContext(params phe.Parameters) (tc *testContext, err error) {

	tc = &testContext{params: params}

	var pk *phe.PublicKey
	tc.sk, pk = phe.NewKeyGenerator(params).WithSeed([]byte("adder test keys")).GenKeyPairNew()

	var prng sampling.PRNG
	if prng, err = sampling.NewKeyedPRNG([]byte("adder test subsets")); err != nil {
		return nil, err
	}

	tc.enc = heuint.NewEncryptor(params, pk).WithPRNG(prng)
	tc.dec = heuint.NewDecryptor(params, tc.sk)
	tc.eval = NewEvaluator(params)

	return
}

func (tc *testContext) encrypt(t *testing.T, x uint64) *heuint.Ciphertext {
	ct, err := tc.enc.EncryptNew(x)
	require.NoError(t, err)
	return ct
}

func (tc *testContext) decrypt(t *testing.T, ct *heuint.Ciphertext) uint64 {
	x, err := tc.dec.DecryptNew(ct)
	require.NoError(t, err)
	return x
}

func (tc *testContext) decryptBit(t *testing.T, ct *phe.Ciphertext) uint64 {
	bit, err := tc.dec.DecryptBit(ct)
	require.NoError(t, err)
	return bit
}

func TestAdder(t *testing.T) {

	for _, paramsLit := range testParametersLiteral {

		params, err := phe.NewParametersFromLiteral(paramsLit)
		require.NoError(t, err)

		tc, err := newTestContext(params)
		require.NoError(t, err)

		for _, testSet := range []func(tc *testContext, t *testing.T){
			testFullAdder,
			testAddNew,
			testAddWithCarryNew,
			testErrors,
			testNoiseBound,
		} {
			testSet(tc, t)
		}
	}

	testExamples(t)
	testSimulateNoiseDegree(t)
	testCheckDepth(t)
}

// testPairs returns every pair of N-bit values for small N, and a sample
// of pairs including the extremes otherwise.
func testPairs(params phe.Parameters) (pairs [][2]uint64) {

	maxValue := params.MaxPlaintext()

	if params.N() <= 4 {
		for x := uint64(0); x <= maxValue; x++ {
			for y := uint64(0); y <= maxValue; y++ {
				pairs = append(pairs, [2]uint64{x, y})
			}
		}
		return
	}

	prng, err := sampling.NewKeyedPRNG([]byte("adder test pairs"))
	if err != nil {
		panic(err)
	}

	pairs = [][2]uint64{
		{0, 0},
		{maxValue, 1},
		{maxValue, maxValue},
		{maxValue >> 1, maxValue>>1 + 1},
		{1, maxValue - 1},
	}

	for i := 0; i < 32; i++ {
		pairs = append(pairs, [2]uint64{sampling.RandUint64N(prng, maxValue), sampling.RandUint64N(prng, maxValue)})
	}

	return
}

func testFullAdder(tc *testContext, t *testing.T) {

	params := tc.params

	t.Run(testString(params, "FullAdder/TruthTable"), func(t *testing.T) {

		pheEnc := tc.enc.Encryptor

		for _, a := range []uint64{0, 1} {
			for _, b := range []uint64{0, 1} {
				for _, c := range []uint64{0, 1} {

					ca, err := pheEnc.EncryptBitFreshNew(a)
					require.NoError(t, err)
					cb, err := pheEnc.EncryptBitFreshNew(b)
					require.NoError(t, err)
					cc, err := pheEnc.EncryptBitFreshNew(c)
					require.NoError(t, err)

					sum, cout := tc.eval.FullAdder(ca, cb, cc)

					require.Equal(t, (a+b+c)&1, tc.decryptBit(t, sum), "%d + %d + %d", a, b, c)
					require.Equal(t, (a+b+c)>>1, tc.decryptBit(t, cout), "%d + %d + %d", a, b, c)
				}
			}
		}
	})

	t.Run(testString(params, "FullAdder/ZeroCarry"), func(t *testing.T) {

		ca, err := tc.enc.EncryptBitFreshNew(1)
		require.NoError(t, err)

		// with the unencrypted zero as carry, the carry out is the AND
		sum, cout := tc.eval.FullAdder(ca, ca, phe.NewEvaluator().Zero())
		require.Equal(t, uint64(0), tc.decryptBit(t, sum))
		require.Equal(t, uint64(1), tc.decryptBit(t, cout))
	})
}

func testAddNew(tc *testContext, t *testing.T) {

	params := tc.params
	mask := params.MaxPlaintext()

	t.Run(testString(params, "AddNew"), func(t *testing.T) {

		for _, pair := range testPairs(params) {

			x, y := pair[0], pair[1]

			ct, err := tc.eval.AddNew(tc.encrypt(t, x), tc.encrypt(t, y))
			require.NoError(t, err)
			require.Equal(t, params.N(), ct.Len())

			// overflow wraps around modulo 2^N
			require.Equal(t, (x+y)&mask, tc.decrypt(t, ct), "%d + %d", x, y)
		}
	})

	t.Run(testString(params, "AddNew/Immutability"), func(t *testing.T) {

		op0, op1 := tc.encrypt(t, 1), tc.encrypt(t, mask)
		cpy0, cpy1 := op0.CopyNew(), op1.CopyNew()

		_, err := tc.eval.ShallowCopy().AddNew(op0, op1)
		require.NoError(t, err)

		require.True(t, op0.Equal(cpy0))
		require.True(t, op1.Equal(cpy1))
	})
}

func testAddWithCarryNew(tc *testContext, t *testing.T) {

	params := tc.params
	mask := params.MaxPlaintext()

	t.Run(testString(params, "AddWithCarryNew"), func(t *testing.T) {

		for _, pair := range testPairs(params)[:16] {

			x, y := pair[0], pair[1]

			ct, carry, err := tc.eval.AddWithCarryNew(tc.encrypt(t, x), tc.encrypt(t, y))
			require.NoError(t, err)

			require.Equal(t, (x+y)&mask, tc.decrypt(t, ct), "%d + %d", x, y)
			require.Equal(t, (x+y)>>params.N(), tc.decryptBit(t, carry), "%d + %d", x, y)
		}
	})
}

func testErrors(tc *testContext, t *testing.T) {

	params := tc.params

	t.Run(testString(params, "AddNew/WidthMismatch"), func(t *testing.T) {

		ct := tc.encrypt(t, 1)
		short := &heuint.Ciphertext{Value: ct.Value[1:]}

		_, err := tc.eval.AddNew(ct, short)
		require.ErrorIs(t, err, heuint.ErrWidthMismatch)

		_, _, err = tc.eval.AddWithCarryNew(short, ct)
		require.ErrorIs(t, err, heuint.ErrWidthMismatch)
	})
}

func testNoiseBound(tc *testContext, t *testing.T) {

	params := tc.params

	t.Run(testString(params, "SimulateNoiseDegree/Bound"), func(t *testing.T) {

		sumBound, carryBound := SimulateNoiseDegree(params)

		noise := func(ct *phe.Ciphertext) int {
			rem, err := ring.Mod(ct.Value, tc.sk.Value, phe.CoefficientModulus)
			require.NoError(t, err)
			return rem.Degree()
		}

		maxValue := params.MaxPlaintext()

		for _, pair := range [][2]uint64{{maxValue, maxValue}, {maxValue, 1}, {maxValue >> 1, 1}} {

			ct, carry, err := tc.eval.AddWithCarryNew(tc.encrypt(t, pair[0]), tc.encrypt(t, pair[1]))
			require.NoError(t, err)

			for i := range ct.Value {
				require.LessOrEqual(t, noise(&ct.Value[i]), sumBound)
			}

			require.LessOrEqual(t, noise(carry), carryBound)
		}
	})
}

func testExamples(t *testing.T) {

	params, err := phe.NewParametersFromLiteral(testParametersLiteral[0])
	require.NoError(t, err)
	require.Equal(t, 4, params.N())

	tc, err := newTestContext(params)
	require.NoError(t, err)

	for _, tt := range []struct {
		x, y, want uint64
	}{
		{3, 5, 8},  // 0011 + 0101 = 1000
		{15, 1, 0}, // 1111 + 0001 = 1 0000
		{0, 0, 0},
		{6, 9, 15},
	} {
		t.Run(testString(params, fmt.Sprintf("Examples/%d+%d", tt.x, tt.y)), func(t *testing.T) {
			ct, err := tc.eval.AddNew(tc.encrypt(t, tt.x), tc.encrypt(t, tt.y))
			require.NoError(t, err)
			require.Equal(t, tt.want, tc.decrypt(t, ct))
		})
	}
}

func testSimulateNoiseDegree(t *testing.T) {

	t.Run("SimulateNoiseDegree/ClosedForm", func(t *testing.T) {

		for _, n := range []int{1, 2, 4, 8, 16, 64} {
			for _, delta := range []int{1, 2, 5} {

				params, err := phe.NewParameters(n, 24, 4, delta, 8)
				require.NoError(t, err)

				sum, carry := SimulateNoiseDegree(params)

				if n == 1 {
					require.Equal(t, delta, sum, "N=%d delta=%d", n, delta)
				} else {
					require.Equal(t, 3*delta*n-4*delta, sum, "N=%d delta=%d", n, delta)
				}

				require.Equal(t, 3*delta*n-delta, carry, "N=%d delta=%d", n, delta)
			}
		}
	})
}

func testCheckDepth(t *testing.T) {

	t.Run("CheckDepth", func(t *testing.T) {

		for _, paramsLit := range []phe.ParametersLiteral{
			testParametersLiteral[0],
			phe.ExampleParametersUint8,
			phe.ExampleParametersUint16,
		} {
			params, err := phe.NewParametersFromLiteral(paramsLit)
			require.NoError(t, err)
			require.NoError(t, CheckDepth(params), params.String())
		}

		params, err := phe.NewParametersFromLiteral(phe.ExampleParametersShallow)
		require.NoError(t, err)
		require.ErrorIs(t, CheckDepth(params), phe.ErrDepthExceeded)

		// the shallow parameters still support fresh encryptions
		require.True(t, phe.NewNoiseSimulator(params).Decryptable(params.FreshNoiseDegree()))
	})
}
