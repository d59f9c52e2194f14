package arith

import (
	"github.com/cronokirby/saferith"
)

// Modulus wraps a saferith.Modulus for a group ℤₙˣ whose order is unknown.
//
// The factorization of n is, by assumption, known to nobody, so no CRT
// shortcut applies; what the wrapper adds is exponentiation with signed
// exponents, needed by the verifier for terms of the form E⁻ᶜ.
type Modulus struct {
	*saferith.Modulus
}

// ModulusFromN creates a wrapper around a given modulus n.
// The modulus is not copied.
func ModulusFromN(n *saferith.Modulus) *Modulus {
	return &Modulus{Modulus: n}
}

// Exp returns xᵉ (mod n).
func (n *Modulus) Exp(x, e *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).Exp(x, e, n.Modulus)
}

// ExpI returns xᵉ (mod n) for a signed exponent.
//
// Raising to a negative power is not a native group operation: it is defined
// as x⁻ᵉ = (x⁻¹ mod n)ᵉ, so we exponentiate by |e| and invert the result.
// x must be a unit mod n, otherwise the inverse does not exist.
func (n *Modulus) ExpI(x *saferith.Nat, e *saferith.Int) *saferith.Nat {
	y := n.Exp(x, e.Abs())
	inverted := new(saferith.Nat).ModInverse(y, n.Modulus)
	y.CondAssign(e.IsNegative(), inverted)
	return y
}

// IsValidNatModN checks that ints are in [1, …, N-1], and coprime to N.
func IsValidNatModN(N *saferith.Modulus, ints ...*saferith.Nat) bool {
	for _, i := range ints {
		if i == nil {
			return false
		}
		if _, _, lt := i.CmpMod(N); lt != 1 {
			return false
		}
		if i.IsUnit(N) != 1 {
			return false
		}
	}
	return true
}
