package bls12_377

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element wraps fr.Element so that the scalar field of BLS12-377 can be used
// through the field.Field interface.
type Element struct {
	fr.Element
}

// Field is the descriptor for the BLS12-377 scalar field. It carries no
// state; the modulus is fixed by gnark-crypto.
type Field struct{}

// NewElement returns the element corresponding to x.
func (Field) NewElement(x uint64) Element {
	return Element{fr.NewElement(x)}
}

// Zero is the additive identity.
func (Field) Zero() Element {
	return Element{}
}

// One is the multiplicative identity.
func (Field) One() Element {
	var one fr.Element
	one.SetOne()

	return Element{one}
}

// Add x0 + x1 + xRest[0] + xRest[1] + ...
func (Field) Add(x0, x1 Element, xRest ...Element) Element {
	var res fr.Element

	res.Add(&x0.Element, &x1.Element)

	for _, e := range xRest {
		res.Add(&res, &e.Element)
	}

	return Element{res}
}

// Sub x0 - x1 - xRest[0] - xRest[1] - ...
func (Field) Sub(x0, x1 Element, xRest ...Element) Element {
	var res fr.Element

	res.Sub(&x0.Element, &x1.Element)

	for _, e := range xRest {
		res.Sub(&res, &e.Element)
	}

	return Element{res}
}

// Neg -x
func (Field) Neg(x Element) Element {
	var res fr.Element

	res.Neg(&x.Element)

	return Element{res}
}

// Mul x0 * x1 * xRest[0] * xRest[1] * ...
func (Field) Mul(x0, x1 Element, xRest ...Element) Element {
	var res fr.Element

	res.Mul(&x0.Element, &x1.Element)

	for _, e := range xRest {
		res.Mul(&res, &e.Element)
	}

	return Element{res}
}

// Inverse x⁻¹, or 0 if x = 0.
func (Field) Inverse(x Element) Element {
	var res fr.Element

	res.Inverse(&x.Element)

	return Element{res}
}

// Equal reports whether x and y are the same element.
func (Field) Equal(x, y Element) bool {
	return x.Element.Equal(&y.Element)
}
