package bls12_377

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/consensys/go-mersenne/pkg/util/assert"
)

func TestField_Arithmetic(t *testing.T) {
	var f Field

	two := f.NewElement(2)
	three := f.NewElement(3)

	assert.True(t, f.Equal(f.NewElement(5), f.Add(two, three)))
	assert.True(t, f.Equal(f.NewElement(6), f.Mul(two, three)))
	assert.True(t, f.Equal(f.NewElement(1), f.Sub(three, two)))
	assert.True(t, f.Equal(f.Zero(), f.Add(two, f.Neg(two))))

	// variadic forms fold left
	assert.True(t, f.Equal(f.NewElement(24), f.Mul(two, three, f.NewElement(4))))
	assert.True(t, f.Equal(f.NewElement(9), f.Add(two, three, f.NewElement(4))))
}

func TestField_Inverse(t *testing.T) {
	var f Field

	var a fr.Element
	a.MustSetRandom()

	x := Element{a}
	if f.Equal(x, f.Zero()) {
		t.Skip("drew zero")
	}

	assert.True(t, f.Equal(f.One(), f.Mul(x, f.Inverse(x))))

	// gnark-crypto follows the same zero convention as smallfield
	assert.True(t, f.Equal(f.Zero(), f.Inverse(f.Zero())))
}
