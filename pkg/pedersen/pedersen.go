package pedersen

import (
	"fmt"
	"io"

	"github.com/cronokirby/saferith"

	"github.com/ferrarif1/zkrangeproof/internal/params"
	"github.com/ferrarif1/zkrangeproof/pkg/math/arith"
)

type Error string

const (
	ErrNilFields    Error = "contains nil field"
	ErrNotValidModN Error = "generators must be in [1,…,N-1] and coprime to N"
)

func (e Error) Error() string {
	return fmt.Sprintf("pedersen: %s", string(e))
}

// Parameters holds the group under which both commitments are formed:
// a composite modulus N whose factorization nobody knows, and two generator
// pairs (g₁, h₁), (g₂, h₂) with mutually unknown discrete logarithms.
//
// The commitments are E = g₁ˣ h₁^r₁ (mod N) and F = g₂ˣ h₂^r₂ (mod N).
// Parameters come from an external setup procedure; this package trusts the
// discrete-log assumption without re-verifying it, since no local check
// could.
type Parameters struct {
	n              *arith.Modulus
	g1, h1, g2, h2 *saferith.Nat
}

// New returns a new set of parameters.
// Assumes ValidateParameters(n, g1, h1, g2, h2) returns nil.
func New(n *arith.Modulus, g1, h1, g2, h2 *saferith.Nat) *Parameters {
	return &Parameters{
		n:  n,
		g1: g1,
		h1: h1,
		g2: g2,
		h2: h2,
	}
}

// ValidateParameters returns an error if any of the following is true:
// - n or a generator is nil.
// - a generator is not in [1, …, n-1].
// - a generator is not coprime to n.
func ValidateParameters(n *saferith.Modulus, g1, h1, g2, h2 *saferith.Nat) error {
	if n == nil || g1 == nil || h1 == nil || g2 == nil || h2 == nil {
		return ErrNilFields
	}
	// gᵢ, hᵢ ∈ ℤₙˣ
	if !arith.IsValidNatModN(n, g1, h1, g2, h2) {
		return ErrNotValidModN
	}
	return nil
}

// Validate checks the receiver with ValidateParameters.
func (p *Parameters) Validate() error {
	if p == nil || p.n == nil {
		return ErrNilFields
	}
	return ValidateParameters(p.n.Modulus, p.g1, p.h1, p.g2, p.h2)
}

// N is the composite modulus shared by both commitments.
func (p *Parameters) N() *saferith.Modulus { return p.n.Modulus }

// NArith exposes the modulus with signed-exponent arithmetic.
func (p *Parameters) NArith() *arith.Modulus { return p.n }

func (p *Parameters) G1() *saferith.Nat { return p.g1 }
func (p *Parameters) H1() *saferith.Nat { return p.h1 }
func (p *Parameters) G2() *saferith.Nat { return p.g2 }
func (p *Parameters) H2() *saferith.Nat { return p.h2 }

// CommitFirst computes E = g₁ˣ h₁ʳ (mod N).
//
// x and r are taken as saferith.Int because they stay secret; the commitment
// produced hides them and can be shared.
func (p *Parameters) CommitFirst(x, r *saferith.Int) *saferith.Nat {
	return p.commit(p.g1, p.h1, x, r)
}

// CommitSecond computes F = g₂ˣ h₂ʳ (mod N).
func (p *Parameters) CommitSecond(x, r *saferith.Int) *saferith.Nat {
	return p.commit(p.g2, p.h2, x, r)
}

func (p *Parameters) commit(g, h *saferith.Nat, x, r *saferith.Int) *saferith.Nat {
	gx := p.n.ExpI(g, x)
	hr := p.n.ExpI(h, r)
	return gx.ModMul(gx, hr, p.n.Modulus)
}

// WriteTo implements io.WriterTo, for use within hash.Hash.
func (p *Parameters) WriteTo(w io.Writer) (int64, error) {
	if p == nil {
		return 0, io.ErrUnexpectedEOF
	}
	nAll := int64(0)
	buf := make([]byte, params.BytesIntModN)

	// write N, g₁, h₁, g₂, h₂
	for _, i := range []*saferith.Nat{p.n.Nat(), p.g1, p.h1, p.g2, p.h2} {
		i.FillBytes(buf)
		n, err := w.Write(buf)
		nAll += int64(n)
		if err != nil {
			return nAll, err
		}
	}
	return nAll, nil
}

// Domain implements hash.WriterToWithDomain, and separates this type within hash.Hash.
func (Parameters) Domain() string {
	return "Pedersen Parameters"
}
