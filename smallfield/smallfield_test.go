package smallfield

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-mersenne/pkg/util/assert"
)

func TestField_Add(t *testing.T) {
	f := New(1<<31 - 1) // Mersenne31

	var i, j, m big.Int

	m.SetUint64(uint64(f.modulus))

	for range 10000 {
		a := rand.Uint32N(f.modulus)
		b := rand.Uint32N(f.modulus)

		i.SetUint64(uint64(a)).
			Add(&i, j.SetUint64(uint64(b))).
			Mod(&i, &m)

		x := f.Add(f.NewElement(uint64(a)), f.NewElement(uint64(b)))

		assert.Equal(t, i.Uint64(), x[0])
	}
}

func TestField_Mul(t *testing.T) {
	f := New(1<<31 - 1) // Mersenne31

	var i, j, m big.Int

	m.SetUint64(uint64(f.modulus))

	for range 10000 {
		a := rand.Uint32N(f.modulus)
		b := rand.Uint32N(f.modulus)

		i.SetUint64(uint64(a)).
			Mul(&i, j.SetUint64(uint64(b))).
			Mod(&i, &m)

		x := f.Mul(f.NewElement(uint64(a)), f.NewElement(uint64(b)))

		assert.Equal(t, i.Uint64(), x[0])
	}
}

func TestField_Inverse(t *testing.T) {
	f := New(1<<31 - 1) // Mersenne31

	var i, m big.Int

	m.SetUint64(uint64(f.modulus))

	for range 10000 {
		a := 1 + rand.Uint32N(f.modulus-1)

		i.SetUint64(uint64(a)).
			ModInverse(&i, &m)

		x := f.Inverse(f.NewElement(uint64(a)))

		assert.Equal(t, i.Uint64(), x[0], "inverse of %d", a)

		// the Euclidean inverse must agree with Fermat exponentiation
		assert.Equal(t, x, f.Pow(f.NewElement(uint64(a)), uint64(f.modulus-2)))
	}
}

func TestField_InverseZero(t *testing.T) {
	for _, modulus := range []uint32{7, 251, 1<<31 - 1} {
		f := New(modulus)

		assert.Equal(t, f.Zero(), f.Inverse(f.Zero()))
	}
}

func TestField_InverseLaw(t *testing.T) {
	f := New(7)

	for a := uint64(1); a < 7; a++ {
		x := f.NewElement(a)

		assert.Equal(t, f.One(), f.Mul(x, f.Inverse(x)), "inverse law fails for %d", a)
	}
}

func TestField_Pow(t *testing.T) {
	f := New(1<<31 - 1) // Mersenne31

	var i, e, m big.Int

	m.SetUint64(uint64(f.modulus))

	for range 1000 {
		a := rand.Uint32N(f.modulus)
		n := rand.Uint64N(1 << 40)

		i.SetUint64(uint64(a)).
			Exp(&i, e.SetUint64(n), &m)

		x := f.Pow(f.NewElement(uint64(a)), n)

		assert.Equal(t, i.Uint64(), x[0], "pow(%d, %d)", a, n)
	}
}

func TestField_PowZeroExponent(t *testing.T) {
	f := New(7)

	// the zero exponent yields one for every base, including zero
	for a := uint64(0); a < 7; a++ {
		assert.Equal(t, f.One(), f.Pow(f.NewElement(a), 0))
	}
}

func TestField_NegZero(t *testing.T) {
	f := New(7)

	// -0 is 0, not the modulus
	assert.Equal(t, f.Zero(), f.Neg(f.Zero()))

	for a := uint64(1); a < 7; a++ {
		x := f.NewElement(a)

		assert.Equal(t, uint32(7-a), f.Neg(x)[0])
		assert.Equal(t, f.Zero(), f.Add(x, f.Neg(x)))
	}
}

func TestField_Closure(t *testing.T) {
	f := New(7)

	for a := uint64(0); a < 7; a++ {
		for b := uint64(0); b < 7; b++ {
			x := f.NewElement(a)
			y := f.NewElement(b)

			assert.True(t, f.Add(x, y)[0] < 7, "add(%d, %d) out of range", a, b)
			assert.True(t, f.Sub(x, y)[0] < 7, "sub(%d, %d) out of range", a, b)
			assert.True(t, f.Mul(x, y)[0] < 7, "mul(%d, %d) out of range", a, b)
		}
	}
}

func TestField_Identities(t *testing.T) {
	f := New(7)

	for a := uint64(0); a < 7; a++ {
		x := f.NewElement(a)

		assert.Equal(t, x, f.Add(x, f.Zero()))
		assert.Equal(t, x, f.Mul(x, f.One()))
	}
}

func TestField_ToyLiterals(t *testing.T) {
	f := New(7)

	a := f.NewElement(3)
	b := f.NewElement(5)

	assert.Equal(t, f.NewElement(1), f.Add(a, b))
	assert.Equal(t, f.NewElement(1), f.Mul(a, b))
	assert.Equal(t, f.NewElement(5), f.Inverse(a))
	assert.Equal(t, f.NewElement(2), f.Div(a, b))
}

func TestField_Div(t *testing.T) {
	f := New(7)

	for a := uint64(0); a < 7; a++ {
		for b := uint64(0); b < 7; b++ {
			x := f.NewElement(a)
			y := f.NewElement(b)

			assert.Equal(t, f.Mul(x, f.Inverse(y)), f.Div(x, y))
		}
	}

	// division by zero yields zero, not a fault
	assert.Equal(t, f.Zero(), f.Div(f.NewElement(3), f.Zero()))
}

func TestField_NewElementFromInt64(t *testing.T) {
	f := New(7)

	assert.Equal(t, f.NewElement(4), f.NewElementFromInt64(-3))
	assert.Equal(t, f.Zero(), f.NewElementFromInt64(-7))
	assert.Equal(t, f.NewElement(3), f.NewElementFromInt64(10))
}

// residues returns the set of nonzero quadratic residues of f, by squaring
// every element.
func residues(f Field) map[Element]struct{} {
	res := make(map[Element]struct{})

	for a := uint64(1); a < uint64(f.modulus); a++ {
		x := f.NewElement(a)
		res[f.Mul(x, x)] = struct{}{}
	}

	return res
}

func TestField_Sqrt(t *testing.T) {
	for _, modulus := range []uint32{7, 251} {
		f := New(modulus)

		for r := range residues(f) {
			s := f.Sqrt(r)

			assert.Equal(t, r, f.Mul(s, s), "sqrt(%s) is not a root mod %d", r, modulus)
		}

		assert.Equal(t, f.Zero(), f.Sqrt(f.Zero()))
	}
}

func TestField_SqrtRandom(t *testing.T) {
	f := New(1<<31 - 1) // Mersenne31

	for range 1000 {
		x := f.NewElement(rand.Uint64())
		r := f.Mul(x, x)
		s := f.Sqrt(r)

		assert.Equal(t, r, f.Mul(s, s))
	}
}

func TestField_SqrtPanics(t *testing.T) {
	f := New(13) // 13 ≡ 1 (mod 4)

	assert.Panics(t, func() { f.Sqrt(f.NewElement(4)) })
}

func TestField_BytesRoundTrip(t *testing.T) {
	f := New(7)

	for a := uint64(0); a < 7; a++ {
		x := f.NewElement(a)
		buf := f.Bytes(x)

		// four bytes regardless of the modulus bit-width
		assert.Equal(t, [4]byte{byte(a), 0, 0, 0}, buf)

		y, err := f.FromBytes(buf[:])
		assert.NoError(t, err)
		assert.Equal(t, x, y)
	}
}

func TestField_BytesRoundTripRandom(t *testing.T) {
	f := New(1<<31 - 1) // Mersenne31

	for range 10000 {
		x := f.NewElement(rand.Uint64())
		buf := f.Bytes(x)

		y, err := f.FromBytes(buf[:])
		assert.NoError(t, err)
		assert.Equal(t, x, y)
	}
}

func TestField_FromBytesLength(t *testing.T) {
	f := New(7)

	_, err := f.FromBytes([]byte{1, 2, 3})
	assert.Error(t, err)

	_, err = f.FromBytes([]byte{1, 2, 3, 4, 5})
	assert.Error(t, err)
}

func TestNew_Panics(t *testing.T) {
	assert.Panics(t, func() { New(0) })
	assert.Panics(t, func() { New(1) })
	assert.Panics(t, func() { New(1 << 31) })
}
