// Package smallfield implements arithmetic over prime fields whose modulus
// fits in 31 bits, such as the Mersenne prime 2³¹ - 1. Elements are canonical
// residues; every operation returns a new value and never mutates its
// operands, so values may be shared freely across goroutines.
package smallfield

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"strconv"
)

// Element of a prime order field, stored as its canonical residue in [0, p).
type Element [1]uint32 // defined as an array to prevent mistaken use of arithmetic operators, or naive assignments.

// A Field of prime order, less than 2³¹.
type Field struct {
	modulus uint32
	sqrtExp uint32 // (modulus+1)/4 when modulus ≡ 3 (mod 4), otherwise 0
}

// New returns the field of the given prime order.
func New(modulus uint32) Field {
	if modulus < 2 {
		panic("modulus too small")
	}

	if modulus >= 1<<31 {
		panic("modulus too large") // need at least one bit of "slack"
	}

	f := Field{modulus: modulus}
	if modulus%4 == 3 {
		f.sqrtExp = (modulus + 1) / 4
	}

	return f
}

// Modulus returns the order of f.
func (f Field) Modulus() uint32 {
	return f.modulus
}

// NewElement returns an element of the field f corresponding to the natural
// number x, reduced on entry.
func (f Field) NewElement(x uint64) Element {
	return Element{uint32(x % uint64(f.modulus))}
}

// NewElementFromInt64 returns an element of the field f corresponding to the
// integer x. Negative values reduce into [0, p).
func (f Field) NewElementFromInt64(x int64) Element {
	m := int64(f.modulus)

	x %= m
	if x < 0 {
		x += m
	}

	return Element{uint32(x)}
}

// Zero is the additive identity.
func (f Field) Zero() Element {
	return Element{}
}

// One is the multiplicative identity.
func (f Field) One() Element {
	return f.NewElement(1)
}

// Add x0 + x1 + xRest[0] + xRest[1] + ...
func (f Field) Add(x0, x1 Element, xRest ...Element) Element {
	res := x0[0] + x1[0]
	if res >= f.modulus {
		res -= f.modulus
	}

	for _, e := range xRest {
		res += e[0]
		if res >= f.modulus {
			res -= f.modulus
		}
	}

	return Element{res}
}

// Sub x0 - x1 - xRest[0] - xRest[1] - ...
func (f Field) Sub(x0, x1 Element, xRest ...Element) Element {
	const negMask uint32 = 1 << 31

	res := x0[0] - x1[0]
	if res&negMask != 0 {
		res += f.modulus
	}

	for _, e := range xRest {
		res -= e[0]
		if res&negMask != 0 {
			res += f.modulus
		}
	}

	return Element{res}
}

// Neg -x. The zero element maps to itself, not to the modulus.
func (f Field) Neg(x Element) Element {
	if x[0] == 0 {
		return x
	}

	return Element{f.modulus - x[0]}
}

// Double 2x.
func (f Field) Double(x Element) Element {
	return f.Add(x, x)
}

func (f Field) mul(a, b Element) Element {
	return Element{uint32(uint64(a[0]) * uint64(b[0]) % uint64(f.modulus))}
}

// Mul x0 * x1 * xRest[0] * xRest[1] * ...
func (f Field) Mul(x0, x1 Element, xRest ...Element) Element {
	res := f.mul(x0, x1)
	for _, e := range xRest {
		res = f.mul(res, e)
	}

	return res
}

// Pow x^e by binary square-and-multiply. The zero exponent yields One for
// every base, including zero.
func (f Field) Pow(x Element, e uint64) Element {
	res := f.One()

	for base := x; e > 0; e >>= 1 {
		if e&1 == 1 {
			res = f.mul(res, base)
		}

		base = f.mul(base, base)
	}

	return res
}

// Inverse x⁻¹, or 0 if x = 0. Zero has no inverse; returning zero keeps the
// operation total, and the extension field inversion relies on it. Callers
// expecting x * Inverse(x) = 1 must handle x = 0 themselves.
func (f Field) Inverse(x Element) Element {
	if x[0] == 0 {
		return x
	}

	// extended Euclidean algorithm on (modulus, x)
	var (
		t, newT int64 = 0, 1
		r, newR int64 = int64(f.modulus), int64(x[0])
	)

	for newR != 0 {
		q := r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}

	if t < 0 {
		t += int64(f.modulus)
	}

	return Element{uint32(t)}
}

// Div x / y, computed as x * Inverse(y). Division by zero yields zero under
// the Inverse convention rather than faulting.
func (f Field) Div(x, y Element) Element {
	return f.mul(x, f.Inverse(y))
}

// Sqrt returns x^((p+1)/4), which is a square root of x whenever x is a
// quadratic residue. For a non-residue the result is unspecified; callers
// needing certainty must square the result and compare against x. Panics
// unless the modulus is congruent to 3 mod 4, the only case in which the
// exponent shortcut is valid.
func (f Field) Sqrt(x Element) Element {
	if f.sqrtExp == 0 {
		panic(fmt.Sprintf("sqrt requires a modulus congruent to 3 mod 4, have %d", f.modulus))
	}

	return f.Pow(x, uint64(f.sqrtExp))
}

// Equal reports whether x0 and x1 are the same element.
func (f Field) Equal(x0, x1 Element) bool {
	return x0 == x1
}

// Cmp compares the numerical values of x0 and x1.
func (f Field) Cmp(x0, x1 Element) int {
	return cmp.Compare(x0[0], x1[0])
}

// ToUint32 returns the numerical value of x.
func (f Field) ToUint32(x Element) uint32 {
	return x[0]
}

// Bytes returns the little-endian encoding of x. The width is fixed at four
// bytes regardless of the bit-width of the modulus.
func (f Field) Bytes(x Element) [4]byte {
	var buf [4]byte

	binary.LittleEndian.PutUint32(buf[:], x[0])

	return buf
}

// FromBytes decodes a four-byte little-endian buffer, reducing the value on
// entry.
func (f Field) FromBytes(buf []byte) (Element, error) {
	if len(buf) != 4 {
		return Element{}, fmt.Errorf("invalid element encoding: expected 4 bytes, got %d", len(buf))
	}

	return f.NewElement(uint64(binary.LittleEndian.Uint32(buf))), nil
}

func (x Element) String() string {
	return strconv.FormatUint(uint64(x[0]), 10)
}
