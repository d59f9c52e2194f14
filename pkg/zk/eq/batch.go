package zkeq

import (
	"golang.org/x/sync/errgroup"

	"github.com/ferrarif1/zkrangeproof/pkg/hash"
)

// VerifyMany checks a batch of proofs concurrently, one goroutine per proof.
// The hash is cloned before each goroutine starts, so its state is never
// shared. The first failure is returned; nil means every proof was accepted.
func VerifyMany(h *hash.Hash, publics []Public, proofs []*Proof) error {
	if len(publics) != len(proofs) {
		return ErrVerificationFailed
	}
	var g errgroup.Group
	for i := range proofs {
		i := i
		hi := h.Clone()
		g.Go(func() error {
			return proofs[i].Verify(hi, publics[i])
		})
	}
	return g.Wait()
}
