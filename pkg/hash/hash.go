package hash

import (
	"fmt"
	"io"
	"math/big"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"

	"github.com/ferrarif1/zkrangeproof/internal/params"
)

// An xof is a hash function with extendable output. Both roles must agree on
// the construction; beyond that, any collision-resistant xof works, which is
// why the concrete choice is hidden behind this seam.
type xof interface {
	io.Writer
	Digest() io.Reader
	Clone() xof
}

type blake3XOF struct {
	h *blake3.Hasher
}

func (x blake3XOF) Write(p []byte) (int, error) { return x.h.Write(p) }
func (x blake3XOF) Digest() io.Reader           { return x.h.Digest() }
func (x blake3XOF) Clone() xof                  { return blake3XOF{h: x.h.Clone()} }

type shakeXOF struct {
	h sha3.ShakeHash
}

func (x shakeXOF) Write(p []byte) (int, error) { return x.h.Write(p) }

// Digest clones the state first: reading a ShakeHash consumes it, while the
// blake3 digest does not, and the two must behave alike.
func (x shakeXOF) Digest() io.Reader { return x.h.Clone() }
func (x shakeXOF) Clone() xof        { return shakeXOF{h: x.h.Clone()} }

// Hash is the hash function used to derive Fiat–Shamir challenges.
//
// A fresh Hash must be supplied for every proof or verification; prover and
// verifier obtain matching challenges because both construct it the same way.
type Hash struct {
	h xof
}

// New creates a Hash backed by BLAKE3.
func New() *Hash {
	return &Hash{h: blake3XOF{h: blake3.New()}}
}

// NewSHAKE creates a Hash backed by cSHAKE128 with the given customization
// string. Deployments that cannot use BLAKE3 can agree on this construction
// instead; the proof logic is indifferent to the choice.
func NewSHAKE(tag string) *Hash {
	return &Hash{h: shakeXOF{h: sha3.NewCShake128(nil, []byte(tag))}}
}

// Digest returns a reader for the current output of the function.
//
// This finalizes the absorbed input and returns what is essentially a stream
// of random bytes, without consuming the hash state.
func (hash *Hash) Digest() io.Reader {
	return hash.h.Digest()
}

// Sum returns ChallengeBytes bytes of the current hash state. For a
// different length, read from Digest directly.
func (hash *Hash) Sum() []byte {
	out := make([]byte, params.ChallengeBytes)
	if _, err := io.ReadFull(hash.Digest(), out); err != nil {
		panic(fmt.Sprintf("hash.Sum: internal hash failure: %v", err))
	}
	return out
}

// WriteAny absorbs many different data types into the hash state.
//
// Currently supported types:
//
//   - []byte
//   - *big.Int
//   - WriterToWithDomain
//
// The first two get a domain of their own; the last one brings its own.
func (hash *Hash) WriteAny(data ...interface{}) error {
	var err error
	for _, d := range data {
		switch t := d.(type) {
		case []byte:
			err = writeWithDomain(hash.h, BytesWithDomain{
				TheDomain: "[]byte",
				Bytes:     t,
			})
			if err != nil {
				return fmt.Errorf("hash.Hash: write []byte: %w", err)
			}
		case *big.Int:
			if t == nil {
				return fmt.Errorf("hash.Hash: write *big.Int: nil")
			}
			bytes := make([]byte, params.BytesIntModN)
			if t.BitLen() <= params.BitsIntModN && t.Sign() == 1 {
				t.FillBytes(bytes)
			} else {
				bytes, err = t.GobEncode()
				if err != nil {
					return fmt.Errorf("hash.Hash: GobEncode: %w", err)
				}
			}
			err = writeWithDomain(hash.h, BytesWithDomain{
				TheDomain: "big.Int",
				Bytes:     bytes,
			})
			if err != nil {
				return fmt.Errorf("hash.Hash: write *big.Int: %w", err)
			}
		case WriterToWithDomain:
			if err = writeWithDomain(hash.h, t); err != nil {
				return fmt.Errorf("hash.Hash: write io.WriterTo: %w", err)
			}
		default:
			panic("hash.Hash: unsupported type")
		}
	}
	return nil
}

// Clone returns a copy of the Hash in its current state.
func (hash *Hash) Clone() *Hash {
	return &Hash{h: hash.h.Clone()}
}
