// Command example commits to the same value under two generator pairs and
// proves, without revealing it, that both commitments hide that value.
//
// The modulus and generators here stand in for the output of the external
// trusted setup; a real deployment receives them from that procedure and
// never learns the factorization.
package main

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/cronokirby/saferith"

	"github.com/ferrarif1/zkrangeproof/pkg/hash"
	"github.com/ferrarif1/zkrangeproof/pkg/math/arith"
	"github.com/ferrarif1/zkrangeproof/pkg/math/sample"
	"github.com/ferrarif1/zkrangeproof/pkg/pedersen"
	zkeq "github.com/ferrarif1/zkrangeproof/pkg/zk/eq"
)

const (
	hexP = "D08769E92F80F7FDFB85EC02AFFDAED0FDE2782070757F191DCDC4D108110AC1E31C07FC253B5F7B91C5D9F203AA0572D3F2062A3D2904C535C6ACCA7D5674E1C2640720E762C72B66931F483C2D910908CF02EA6723A0CBBB1016CA696C38FEAC59B31E40584C8141889A11F7A38F5B17811D11F42CD15B8470F11C6183802B"
	hexQ = "C21239C3484FC3C8409F40A9A22FABFFE26CA10C27506E3E017C2EC8C4B98D7A6D30DED0686869884BE9BAD27F5241B7313F73D19E9E4B384FABF9554B5BB4D517CBAC0268420C63D545612C9ADABEEDF20F94244E7F8F2080B0C675AC98D97C580D43375F999B1AC127EC580B89B2D302EF33DD5FD8474A241B0398F6088CA7"
)

func setup(rand io.Reader) (*pedersen.Parameters, error) {
	p, err := new(saferith.Nat).SetHex(hexP)
	if err != nil {
		return nil, err
	}
	q, err := new(saferith.Nat).SetHex(hexQ)
	if err != nil {
		return nil, err
	}
	nNat := new(saferith.Nat).Mul(p, q, -1)
	n := arith.ModulusFromN(saferith.ModulusFromNat(nNat))

	// Random squares; nobody knows the discrete logs relating them.
	gen := func() *saferith.Nat {
		for {
			v := sample.ModN(rand, n.Modulus)
			v.ModMul(v, v, n.Modulus)
			if arith.IsValidNatModN(n.Modulus, v) {
				return v
			}
		}
	}
	aux := pedersen.New(n, gen(), gen(), gen(), gen())
	return aux, aux.Validate()
}

func main() {
	schema := zkeq.DefaultSchema()

	aux, err := setup(rand.Reader)
	if err != nil {
		panic(err)
	}

	// The committed value: any x with 0 ≤ x < 2²⁵⁶.
	buf := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		panic(err)
	}
	x := new(saferith.Int).SetNat(new(saferith.Nat).SetBytes(buf))
	r1 := new(saferith.Int).SetNat(sample.BlindingWitness(rand.Reader, schema.S1, aux.N()))
	r2 := new(saferith.Int).SetNat(sample.BlindingWitness(rand.Reader, schema.S2, aux.N()))

	public := zkeq.Public{
		E:   aux.CommitFirst(x, r1).Big(),
		F:   aux.CommitSecond(x, r2).Big(),
		Aux: aux,
	}

	proof, err := zkeq.NewProof(rand.Reader, hash.New(), schema, public, zkeq.Private{X: x, R1: r1, R2: r2})
	if err != nil {
		panic(err)
	}

	if err := proof.Verify(hash.New(), public); err != nil {
		panic(err)
	}
	fmt.Println("proof accepted: both commitments hide the same value")
}
