// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package extensions implements the degree-4 extension of a smallfield prime
// field, built as a tower of two quadratic extensions: first F_p[i] with
// i² = -1, then a further quadratic extension by j with j² = -(1 + t·i) for a
// fixed tower constant t. Every operation decomposes into a bounded number of
// base field operations and touches one level of the tower at a time.
package extensions

import (
	"fmt"

	"github.com/consensys/go-mersenne/smallfield"
)

// E4 is an element of the quartic extension: the tuple (c0, c1, c2, c3) of
// base field elements, read as the two halves L = c0 + c1·i and
// R = c2 + c3·i of the pair L + R·j. Like smallfield.Element it is a passive
// value with structural equality.
type E4 [4]smallfield.Element

// A Field is the quartic extension of a base prime field. The tower constant
// is an intrinsic parameter of the field definition, fixed per instantiation;
// it is not derivable from the modulus and must come from the field's
// specification.
type Field struct {
	base smallfield.Field
	t    smallfield.Element // j² = -(1 + t·i)
}

// New returns the quartic extension of base with the given tower constant.
func New(base smallfield.Field, towerConstant uint64) Field {
	return Field{base: base, t: base.NewElement(towerConstant)}
}

// Base returns the underlying prime field.
func (f Field) Base() smallfield.Field {
	return f.base
}

// NewElement embeds the natural number x as the element (x, 0, 0, 0).
func (f Field) NewElement(x uint64) E4 {
	return f.FromBase(f.base.NewElement(x))
}

// FromBase embeds a base field element as (x, 0, 0, 0).
func (f Field) FromBase(x smallfield.Element) E4 {
	var z E4

	z[0] = x

	return z
}

// FromUint64s builds an element from its four coordinates, each reduced on
// entry. Any other coordinate count is a construction error.
func (f Field) FromUint64s(coords []uint64) (E4, error) {
	var z E4

	if len(coords) != len(z) {
		return z, fmt.Errorf("invalid coordinate count: expected 4, got %d", len(coords))
	}

	for i, c := range coords {
		z[i] = f.base.NewElement(c)
	}

	return z, nil
}

// Zero is the additive identity.
func (f Field) Zero() E4 {
	return E4{}
}

// One is the multiplicative identity (1, 0, 0, 0).
func (f Field) One() E4 {
	return f.NewElement(1)
}

// Add x0 + x1 + xRest[0] + xRest[1] + ..., coordinate-wise.
func (f Field) Add(x0, x1 E4, xRest ...E4) E4 {
	var z E4

	for i := range z {
		z[i] = f.base.Add(x0[i], x1[i])
	}

	for _, e := range xRest {
		for i := range z {
			z[i] = f.base.Add(z[i], e[i])
		}
	}

	return z
}

// Sub x0 - x1 - xRest[0] - xRest[1] - ..., coordinate-wise.
func (f Field) Sub(x0, x1 E4, xRest ...E4) E4 {
	var z E4

	for i := range z {
		z[i] = f.base.Sub(x0[i], x1[i])
	}

	for _, e := range xRest {
		for i := range z {
			z[i] = f.base.Sub(z[i], e[i])
		}
	}

	return z
}

// Neg -x, coordinate-wise.
func (f Field) Neg(x E4) E4 {
	var z E4

	for i := range z {
		z[i] = f.base.Neg(x[i])
	}

	return z
}

// mulPair is the Gaussian product (a + b·i)(c + d·i) = (ac - bd) + (ad + bc)·i
// over the base field.
func (f Field) mulPair(a, b, c, d smallfield.Element) (smallfield.Element, smallfield.Element) {
	return f.base.Sub(f.base.Mul(a, c), f.base.Mul(b, d)),
		f.base.Add(f.base.Mul(a, d), f.base.Mul(b, c))
}

func (f Field) mul(x, y E4) E4 {
	// four Gaussian partial products of the operand halves
	ll0, ll1 := f.mulPair(x[0], x[1], y[0], y[1])
	lr0, lr1 := f.mulPair(x[0], x[1], y[2], y[3])
	rl0, rl1 := f.mulPair(x[2], x[3], y[0], y[1])
	rr0, rr1 := f.mulPair(x[2], x[3], y[2], y[3])

	// fold RR back into the L level: j² = -(1 + t·i)
	return E4{
		f.base.Sub(ll0, f.base.Sub(rr0, f.base.Mul(rr1, f.t))),
		f.base.Sub(ll1, f.base.Add(rr1, f.base.Mul(rr0, f.t))),
		f.base.Add(lr0, rl0),
		f.base.Add(lr1, rl1),
	}
}

// Mul x0 * x1 * xRest[0] * xRest[1] * ...
func (f Field) Mul(x0, x1 E4, xRest ...E4) E4 {
	res := f.mul(x0, x1)
	for _, e := range xRest {
		res = f.mul(res, e)
	}

	return res
}

// MulByElement multiplies every coordinate of x by the base field element c,
// avoiding the general tower product.
func (f Field) MulByElement(x E4, c smallfield.Element) E4 {
	var z E4

	for i := range z {
		z[i] = f.base.Mul(x[i], c)
	}

	return z
}

// MulByUint64 multiplies every coordinate of x by c, reduced on entry.
func (f Field) MulByUint64(x E4, c uint64) E4 {
	return f.MulByElement(x, f.base.NewElement(c))
}

// Square x².
func (f Field) Square(x E4) E4 {
	return f.mul(x, x)
}

// Exp x^e by recursive halving: x^e = x^(e mod 2) · (x²)^(e/2). The zero
// exponent yields One for every base, including zero.
func (f Field) Exp(x E4, e uint64) E4 {
	switch e {
	case 0:
		return f.One()
	case 1:
		return x
	case 2:
		return f.mul(x, x)
	}

	return f.mul(f.Exp(x, e%2), f.Exp(f.mul(x, x), e/2))
}

// Inverse x⁻¹ via the quartic norm. With x = L + R·j, multiplying by the
// conjugate L - R·j lands in the quadratic subfield:
//
//	(L + R·j)(L - R·j) = L² - R²·j² = L² + R²·(1 + t·i)
//
// That Gaussian pair is inverted through its own norm d0² + d1², and the
// conjugate is scaled by the result. A zero input flows through a zero norm
// and, under the base field convention that Inverse(0) = 0, yields the zero
// element rather than an error.
func (f Field) Inverse(x E4) E4 {
	b := f.base

	// R² as a Gaussian pair
	r20 := b.Sub(b.Mul(x[2], x[2]), b.Mul(x[3], x[3]))
	r21 := b.Double(b.Mul(x[2], x[3]))

	// denominator pair L² + R²·(1 + t·i)
	d0 := b.Sub(b.Add(b.Sub(b.Mul(x[0], x[0]), b.Mul(x[1], x[1])), r20), b.Mul(f.t, r21))
	d1 := b.Add(b.Double(b.Mul(x[0], x[1])), r21, b.Mul(f.t, r20))

	// invert the pair through its norm
	invNorm := b.Inverse(b.Add(b.Mul(d0, d0), b.Mul(d1, d1)))
	id0 := b.Mul(d0, invNorm)
	id1 := b.Neg(b.Mul(d1, invNorm))

	return E4{
		b.Sub(b.Mul(x[0], id0), b.Mul(x[1], id1)),
		b.Add(b.Mul(x[0], id1), b.Mul(x[1], id0)),
		b.Sub(b.Mul(x[3], id1), b.Mul(x[2], id0)),
		b.Neg(b.Add(b.Mul(x[2], id1), b.Mul(x[3], id0))),
	}
}

// Div x / y. When the three non-leading coordinates of y are zero, y acts as
// a base field scalar and the full tower inversion is skipped. Division by
// zero yields zero under the Inverse convention rather than faulting.
func (f Field) Div(x, y E4) E4 {
	var zero smallfield.Element

	if y[1] == zero && y[2] == zero && y[3] == zero {
		return f.MulByElement(x, f.base.Inverse(y[0]))
	}

	return f.mul(x, f.Inverse(y))
}

// IsZero reports whether x is the zero element.
func (f Field) IsZero(x E4) bool {
	return x == E4{}
}

// Equal reports whether x and y are the same element.
func (f Field) Equal(x, y E4) bool {
	return x == y
}

// Bytes returns the 16-byte little-endian encoding of x: four consecutive
// 4-byte limbs in coordinate order c0, c1, c2, c3.
func (f Field) Bytes(x E4) [16]byte {
	var buf [16]byte

	for i, c := range x {
		b := f.base.Bytes(c)
		copy(buf[4*i:], b[:])
	}

	return buf
}

// FromBytes decodes a 16-byte little-endian buffer produced by Bytes.
func (f Field) FromBytes(buf []byte) (E4, error) {
	var z E4

	if len(buf) != 16 {
		return z, fmt.Errorf("invalid element encoding: expected 16 bytes, got %d", len(buf))
	}

	for i := range z {
		c, err := f.base.FromBytes(buf[4*i : 4*i+4])
		if err != nil {
			return E4{}, err
		}

		z[i] = c
	}

	return z, nil
}

func (x E4) String() string {
	return fmt.Sprintf("(%s, %s, %s, %s)", x[0], x[1], x[2], x[3])
}
