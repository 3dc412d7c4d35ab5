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

// Package circle implements the group of points on the unit circle
// x² + y² = 1 over an arbitrary field. It is an ordinary consumer of the
// field API: the group law needs nothing beyond Add, Sub and Mul.
package circle

import (
	"github.com/consensys/go-mersenne/field"
)

// Point on the unit circle, with coordinates in the field F.
type Point[E any] struct {
	X, Y E
}

// Identity is the group identity (1, 0).
func Identity[E any](f field.Field[E]) Point[E] {
	return Point[E]{X: f.One(), Y: f.Zero()}
}

// Add p + q = (x1·x2 - y1·y2, x1·y2 + x2·y1).
func Add[E any](f field.Field[E], p, q Point[E]) Point[E] {
	return Point[E]{
		X: f.Sub(f.Mul(p.X, q.X), f.Mul(p.Y, q.Y)),
		Y: f.Add(f.Mul(p.X, q.Y), f.Mul(q.X, p.Y)),
	}
}

// Double 2p = (2x² - 1, 2xy).
func Double[E any](f field.Field[E], p Point[E]) Point[E] {
	two := f.NewElement(2)

	return Point[E]{
		X: f.Sub(f.Mul(two, p.X, p.X), f.One()),
		Y: f.Mul(two, p.X, p.Y),
	}
}

// Neg -p = (x, -y), the inverse of p under the group law.
func Neg[E any](f field.Field[E], p Point[E]) Point[E] {
	return Point[E]{X: p.X, Y: f.Neg(p.Y)}
}

// ScalarMul n·p by binary double-and-add.
func ScalarMul[E any](f field.Field[E], p Point[E], n uint64) Point[E] {
	res := Identity(f)

	for q := p; n > 0; n >>= 1 {
		if n&1 == 1 {
			res = Add(f, res, q)
		}

		q = Double(f, q)
	}

	return res
}

// IsOnCircle reports whether x² + y² = 1.
func IsOnCircle[E any](f field.Field[E], p Point[E]) bool {
	return f.Equal(f.Add(f.Mul(p.X, p.X), f.Mul(p.Y, p.Y)), f.One())
}
