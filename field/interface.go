package field

// A Field of prime or prime-power order, presented as a descriptor whose
// methods operate on passive element values of type E. Implementations are
// pure: no method mutates its operands.
type Field[E any] interface {
	NewElement(x uint64) E      // NewElement returns the element corresponding to x, reduced on entry.
	Zero() E                    // Zero is the additive identity.
	One() E                     // One is the multiplicative identity.
	Add(x0, x1 E, xRest ...E) E // Add x0 + x1 + ...
	Sub(x0, x1 E, xRest ...E) E // Sub x0 - x1 - ...
	Neg(x E) E                  // Neg -x
	Mul(x0, x1 E, xRest ...E) E // Mul x0 * x1 * ...
	Inverse(x E) E              // Inverse x⁻¹, or 0 if x = 0.
	Equal(x, y E) bool          // Equal reports whether x and y are the same element.
}
