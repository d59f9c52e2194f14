// Package zkeq implements a non-interactive proof that two Pedersen-style
// commitments under different generator pairs hide the same value.
//
// The protocol is described in section 2.2 of:
// Fabrice Boudot, Efficient Proofs that a Committed Number Lies in an Interval.
package zkeq

import (
	"errors"
	"io"
	"math/big"

	"github.com/cronokirby/saferith"

	"github.com/ferrarif1/zkrangeproof/internal/params"
	"github.com/ferrarif1/zkrangeproof/pkg/hash"
	"github.com/ferrarif1/zkrangeproof/pkg/math/arith"
	"github.com/ferrarif1/zkrangeproof/pkg/math/sample"
	"github.com/ferrarif1/zkrangeproof/pkg/pedersen"
)

// ErrVerificationFailed is returned for every invalid proof.
// It deliberately carries no detail about which check failed.
var ErrVerificationFailed = errors.New("zkeq: verification failed")

type (
	Public struct {
		// E = g₁ˣ h₁^r₁ (mod N)
		E *big.Int
		// F = g₂ˣ h₂^r₂ (mod N)
		F *big.Int

		Aux *pedersen.Parameters
	}
	Private struct {
		// X is the committed value. Soundness assumes 0 ≤ x < RangeBound;
		// that bound is the committer's obligation and is not checked here,
		// since clamping or rejecting would change the statement being proved.
		X *saferith.Int

		// R1, R2 are the blinding factors of E and F.
		R1, R2 *saferith.Int
	}
)

// Schema fixes the statistical parameters of the proof.
//
// Prover and verifier deployments must use the same schema; a mismatch
// breaks soundness silently, and the verifier alone has no way to detect it.
type Schema struct {
	// SoundnessBits is t.
	SoundnessBits int
	// HidingBits is l.
	HidingBits int
	// S1, S2 are the blinding expansion parameters of each commitment's setup.
	S1, S2 int
	// RangeBound is b, the exclusive upper bound on the committed value.
	RangeBound *saferith.Nat
}

// DefaultSchema returns the deployment defaults: t = 128, l = 40,
// s₁ = s₂ = 80, b = 2²⁵⁶.
func DefaultSchema() *Schema {
	b := new(big.Int).Lsh(big.NewInt(1), params.RangeBits)
	return &Schema{
		SoundnessBits: params.SoundnessParam,
		HidingBits:    params.HidingParam,
		S1:            params.BlindingParam,
		S2:            params.BlindingParam,
		RangeBound:    new(saferith.Nat).SetBig(b, params.RangeBits+1),
	}
}

// Proof is the transmitted tuple (c, D, D₁, D₂).
//
// The responses D, D₁, D₂ are sums over the integers and are never reduced
// mod N: the soundness argument needs their full precision, so reduction
// must not be introduced as an optimization.
type Proof struct {
	C  *big.Int
	D  *big.Int
	D1 *big.Int
	D2 *big.Int
}

// IsValid performs the structural checks that need no arithmetic.
func (p *Proof) IsValid() bool {
	if p == nil || p.C == nil || p.D == nil || p.D1 == nil || p.D2 == nil {
		return false
	}
	if p.C.Sign() < 0 || p.C.BitLen() > params.ChallengeBits {
		return false
	}
	return true
}

// NewProof proves that public.E and public.F commit to the same value
// private.X.
//
// rand must be a cryptographically secure source; it is injected per call so
// concurrent provers can each bring their own (or share one wrapped in
// pool.LockedReader). The completed proof always verifies against the E, F
// derived from the same private values.
func NewProof(rand io.Reader, h *hash.Hash, schema *Schema, public Public, private Private) (*Proof, error) {
	if err := public.Aux.Validate(); err != nil {
		return nil, err
	}

	lt := schema.HidingBits + schema.SoundnessBits
	w := sample.Witness(rand, lt, schema.RangeBound)
	n1 := sample.BlindingWitness(rand, lt+schema.S1, public.Aux.N())
	n2 := sample.BlindingWitness(rand, lt+schema.S2, public.Aux.N())

	return proveWith(h, public, private, w, n1, n2), nil
}

// proveWith completes the proof for fixed ephemeral witnesses.
// Split out so tests can drive it with known w, n₁, n₂.
func proveWith(h *hash.Hash, public Public, private Private, w, n1, n2 *saferith.Nat) *Proof {
	n := public.Aux.NArith()

	// W₁ = g₁ʷ h₁ⁿ¹ (mod N)
	W1 := n.Exp(public.Aux.G1(), w)
	W1.ModMul(W1, n.Exp(public.Aux.H1(), n1), n.Modulus)
	// W₂ = g₂ʷ h₂ⁿ² (mod N)
	W2 := n.Exp(public.Aux.G2(), w)
	W2.ModMul(W2, n.Exp(public.Aux.H2(), n2), n.Modulus)

	c := challenge(h, W1.Big(), W2.Big())
	cInt := new(saferith.Int).SetNat(c)

	// D = w + c•x, D₁ = n₁ + c•r₁, D₂ = n₂ + c•r₂, over ℤ.
	d := new(saferith.Int).Mul(cInt, private.X, -1)
	d.Add(d, new(saferith.Int).SetNat(w), -1)
	d1 := new(saferith.Int).Mul(cInt, private.R1, -1)
	d1.Add(d1, new(saferith.Int).SetNat(n1), -1)
	d2 := new(saferith.Int).Mul(cInt, private.R2, -1)
	d2.Add(d2, new(saferith.Int).SetNat(n2), -1)

	return &Proof{
		C:  c.Big(),
		D:  d.Big(),
		D1: d1.Big(),
		D2: d2.Big(),
	}
}

// Verify checks the proof against the public commitments. A nil result means
// the proof is accepted. Verification is pure: it may be repeated and is
// safe to run concurrently, each call with its own fresh hash.
func (p *Proof) Verify(h *hash.Hash, public Public) error {
	if err := public.Aux.Validate(); err != nil {
		return err
	}
	if !p.IsValid() {
		return ErrVerificationFailed
	}
	// E and F must be units mod N. This in particular rejects E = 0 or
	// F = 0 before any arithmetic: 0⁻ᶜ does not exist.
	if public.E == nil || public.F == nil || public.E.Sign() != 1 || public.F.Sign() != 1 {
		return ErrVerificationFailed
	}
	n := public.Aux.NArith()
	e := new(saferith.Nat).SetBig(public.E, public.E.BitLen())
	f := new(saferith.Nat).SetBig(public.F, public.F.BitLen())
	if !arith.IsValidNatModN(n.Modulus, e, f) {
		return ErrVerificationFailed
	}

	c := new(saferith.Nat).SetBig(p.C, p.C.BitLen())
	cNeg := new(saferith.Int).SetNat(c)
	cNeg.Neg(1)

	d := new(saferith.Int).SetBig(p.D, p.D.BitLen())
	d1 := new(saferith.Int).SetBig(p.D1, p.D1.BitLen())
	d2 := new(saferith.Int).SetBig(p.D2, p.D2.BitLen())

	// W₁' = g₁ᴰ h₁ᴰ¹ E⁻ᶜ (mod N)
	//     = g₁^(w + cx - cx) h₁^(n₁ + c•r₁ - c•r₁) when E opens to (x, r₁).
	W1 := n.ExpI(public.Aux.G1(), d)
	W1.ModMul(W1, n.ExpI(public.Aux.H1(), d1), n.Modulus)
	W1.ModMul(W1, n.ExpI(e, cNeg), n.Modulus)
	// W₂' = g₂ᴰ h₂ᴰ² F⁻ᶜ (mod N)
	W2 := n.ExpI(public.Aux.G2(), d)
	W2.ModMul(W2, n.ExpI(public.Aux.H2(), d2), n.Modulus)
	W2.ModMul(W2, n.ExpI(f, cNeg), n.Modulus)

	// Any mismatch in x, r₁ or r₂ leaves a residual exponent in W₁' or W₂',
	// and the rederived challenge then disagrees with c.
	if challenge(h, W1.Big(), W2.Big()).Eq(c) != 1 {
		return ErrVerificationFailed
	}
	return nil
}

// challenge derives c = H(W₁, W₂) as a 2t-bit integer.
// t is half the digest length, accounting for collisions in H.
func challenge(h *hash.Hash, W1, W2 *big.Int) *saferith.Nat {
	_ = h.WriteAny(W1, W2)
	buf := make([]byte, params.ChallengeBytes)
	_, _ = io.ReadFull(h.Digest(), buf)
	return new(saferith.Nat).SetBytes(buf)
}
