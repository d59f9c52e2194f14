package sample

import (
	"fmt"
	"io"

	"github.com/cronokirby/saferith"
)

const maxIterations = 255

var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

var natOne = new(saferith.Nat).SetUint64(1)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

// ModN samples an element of ℤₙ.
func ModN(rand io.Reader, n *saferith.Modulus) *saferith.Nat {
	out := new(saferith.Nat)
	buf := make([]byte, (n.BitLen()+7)/8)
	for {
		mustReadBits(rand, buf)
		out.SetBytes(buf)
		_, _, lt := out.CmpMod(n)
		if lt == 1 {
			break
		}
	}
	return out
}

// InRange samples uniformly from the inclusive range [lo, hi].
// Requires lo ≤ hi.
func InRange(rand io.Reader, lo, hi *saferith.Nat) *saferith.Nat {
	width := new(saferith.Nat).Sub(hi, lo, -1)
	width.Add(width, natOne, -1)
	out := ModN(rand, saferith.ModulusFromNat(width))
	return out.Add(out, lo, -1)
}

// Witness samples uniformly from [1, 2^shift•bound − 1].
//
// With shift = l+t and bound = b this is the range of the ephemeral witness
// w: wide enough relative to x that w + c•x statistically hides x, while a
// prover not knowing x still fails except with probability 2⁻ᵗ.
func Witness(rand io.Reader, shift int, bound *saferith.Nat) *saferith.Nat {
	hi := new(saferith.Nat).Mul(bound, pow2(shift), -1)
	hi.Sub(hi, natOne, -1)
	return InRange(rand, natOne, hi)
}

// BlindingWitness samples uniformly from [1, 2^shift•N − 1], the range of
// the ephemeral blinding n_i, with shift = l+t+s_i.
func BlindingWitness(rand io.Reader, shift int, n *saferith.Modulus) *saferith.Nat {
	return Witness(rand, shift, n.Nat())
}

// pow2 returns 2^shift.
func pow2(shift int) *saferith.Nat {
	bytes := make([]byte, shift/8+1)
	bytes[0] = 1 << (shift % 8)
	return new(saferith.Nat).SetBytes(bytes)
}
