package q64fixed

import (
	"math"
	"strconv"
	"testing"

	"github.com/ericlagergren/decimal"
)

// decPrec is the working precision for oracle computations: comfortably
// beyond the ~38-39 significant decimal digits a Q64.64 value can carry.
const decPrec = 60

func decu(i uint64) *decimal.Big { return decimal.WithPrecision(decPrec).SetUint64(i) }
func deci(i int64) *decimal.Big  { return decimal.WithPrecision(decPrec).SetMantScale(i, 0) }

// decTwoPow64 is 2^64 as an exact decimal, built from MaxUint64+1 rather than
// through exponentiation, so construction only relies on SetUint64/Add.
var decTwoPow64 = decimal.WithPrecision(decPrec).Add(decu(math.MaxUint64), deci(1))

// decimalOf returns the decimal value of the raw (hi, lo) Q64.64 pair, the
// same construction the teacher's testdata files use for their own
// decimal-scaled types (decHi*2^64 + decLo), then divided by 2^64 to undo
// the Q64.64 binary scale.
func decimalOf(hi int64, lo uint64) *decimal.Big {
	decHi := deci(hi)
	decLo := decu(lo)
	decHi = decHi.Mul(decHi, decTwoPow64)
	raw := decimal.WithPrecision(decPrec).Add(decHi, decLo)
	return decimal.WithPrecision(decPrec).Quo(raw, decTwoPow64)
}

func (v Fixed) toDecimal() *decimal.Big {
	return decimalOf(int64(v.hi), v.lo)
}

func decimalToFloat(t *testing.T, d *decimal.Big) float64 {
	t.Helper()
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		t.Fatalf("parse decimal %v: %v", d, err)
	}
	return f
}

func TestOracleAddMatchesDecimal(t *testing.T) {
	cases := []struct{ a, b int64 }{
		{1, 2}, {100, -50}, {-7, -8}, {0, 0}, {1 << 40, -(1 << 39)},
	}
	for _, c := range cases {
		a := FromInt64(c.a)
		b := FromInt64(c.b)
		got := a.Add(b)

		wantDec := decimal.WithPrecision(decPrec).Add(a.toDecimal(), b.toDecimal())
		want := FromInt64(c.a + c.b)
		if !got.Eq(want) {
			t.Errorf("%d+%d = %v, want %v", c.a, c.b, got, want)
		}
		if got.toDecimal().Cmp(wantDec) != 0 {
			t.Errorf("%d+%d decimal mismatch: got %v, want %v", c.a, c.b, got.toDecimal(), wantDec)
		}
	}
}

func TestOracleMulAgreesWithDecimal(t *testing.T) {
	cases := []struct{ a, b float64 }{
		{1.5, 2.5}, {-3.25, 4.0}, {0.1, 0.1}, {123.456, 0.001}, {-0.5, -0.5},
	}
	for _, c := range cases {
		a := FromFloat64(c.a)
		b := FromFloat64(c.b)
		got := a.Mul(b)

		wantDec := decimal.WithPrecision(decPrec).Mul(a.toDecimal(), b.toDecimal())
		wantF := decimalToFloat(t, wantDec)

		gotF := got.ToFloat64()
		if diff := math.Abs(gotF - wantF); diff > 1e-6 {
			t.Errorf("%v*%v = %v (%.9f), want ~%.9f (decimal oracle)", c.a, c.b, got, gotF, wantF)
		}
	}
}

func TestOracleDivAgreesWithDecimal(t *testing.T) {
	cases := []struct{ a, b float64 }{
		{10, 4}, {-7, 2}, {1, 3}, {22, 7}, {-100, -8},
	}
	for _, c := range cases {
		a := FromFloat64(c.a)
		b := FromFloat64(c.b)
		got := a.Div(b)

		wantDec := decimal.WithPrecision(decPrec).Quo(a.toDecimal(), b.toDecimal())
		wantF := decimalToFloat(t, wantDec)

		gotF := got.ToFloat64()
		if diff := math.Abs(gotF - wantF); diff > 1e-6 {
			t.Errorf("%v/%v = %v (%.9f), want ~%.9f (decimal oracle)", c.a, c.b, got, gotF, wantF)
		}
	}
}

func TestOracleDecimalRoundTrip(t *testing.T) {
	for _, f := range []float64{0, 1, -1, 0.5, 123.456, -987.654} {
		v := FromFloat64(f)
		d := v.toDecimal()
		back := FromFloat64(decimalToFloat(t, d))
		diff := back.Sub(v)
		if diff.IsNeg() {
			diff = diff.Neg()
		}
		if diff.Cmp(Fixed{hi: 0, lo: 1 << 20}) > 0 {
			t.Errorf("decimal round trip for %v diverged: %v -> %v -> %v", f, v, d, back)
		}
	}
}
