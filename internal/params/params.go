package params

const (
	// SoundnessParam is t: a cheating prover convinces the verifier with
	// probability at most 2⁻ᵗ. It is half the challenge digest length.
	SoundnessParam = 128
	// HidingParam is l: the responses are statistically within 2⁻ˡ of a
	// distribution independent of the committed value.
	HidingParam = 40
	// BlindingParam is s: the blinding expansion of a commitment, i.e. the
	// blinding factor of a commitment is drawn below 2ˢ•N.
	BlindingParam = 80
	// RangeBits bounds the committed value: 0 ≤ x < 2^RangeBits.
	// 2²⁵⁶ is the largest word the surrounding range-proof system commits to.
	RangeBits = 256

	// ChallengeBits is the width of the Fiat–Shamir challenge, 2t.
	ChallengeBits  = 2 * SoundnessParam
	ChallengeBytes = ChallengeBits / 8

	// BitsIntModN is the encoding width used when hashing residues mod N.
	BitsIntModN  = 2048
	BytesIntModN = BitsIntModN / 8
)
