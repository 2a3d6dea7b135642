package api

import (
	"crypto/subtle"
	"encoding/hex"

	"github.com/bwesterb/go-ristretto"
	"github.com/gtank/merlin"
	"golang.org/x/xerrors"
)

const CompactProofSize = 2 * ScalarSize

// Relation declares the statement X = x*G and Y = x*H for one secret x.
// Label domain-separates the transcript, so prover and verifier must agree on it.
type Relation struct {
	Label string
	G     *ristretto.Point
	H     *ristretto.Point
	X     *ristretto.Point
	Y     *ristretto.Point
}

type CompactProof struct {
	Challenge *ristretto.Scalar
	Response  *ristretto.Scalar
}

func (r *Relation) transcript() *merlin.Transcript {
	t := dleqDomainSep(InitialTranscript(r.Label))
	AppendPoint("G", r.G, t)
	AppendPoint("H", r.H, t)
	AppendPoint("X", r.X, t)
	AppendPoint("Y", r.Y, t)
	return t
}

func (r *Relation) challenge(A, B *ristretto.Point) *ristretto.Scalar {
	t := r.transcript()
	AppendPoint("A", A, t)
	AppendPoint("B", B, t)
	return ChallengeScalar("c", t)
}

// Prove produces s = k + c*x with c bound to the statement and commitments.
func (r *Relation) Prove(x *ristretto.Scalar) *CompactProof {
	k := randomScalar()
	defer k.SetZero()

	var A, B ristretto.Point
	A.ScalarMult(r.G, k)
	B.ScalarMult(r.H, k)
	c := r.challenge(&A, &B)

	var s, cx ristretto.Scalar
	s.Add(k, cx.Mul(c, x))
	return &CompactProof{Challenge: c, Response: &s}
}

// Verify recomputes A = s*G - c*X and B = s*H - c*Y, then the challenge.
func (r *Relation) Verify(proof *CompactProof) error {
	if proof == nil || proof.Challenge == nil || proof.Response == nil {
		return xerrors.Errorf("%s: empty proof: %w", r.Label, ErrProofInvalid)
	}
	var negC ristretto.Scalar
	negC.Neg(proof.Challenge)
	A := doubleScalarMul(proof.Response, r.G, &negC, r.X)
	B := doubleScalarMul(proof.Response, r.H, &negC, r.Y)
	c := r.challenge(A, B)
	if subtle.ConstantTimeCompare(c.Bytes(), proof.Challenge.Bytes()) != 1 {
		return xerrors.Errorf("%s: %w", r.Label, ErrProofInvalid)
	}
	return nil
}

func (p *CompactProof) Bytes() []byte {
	buf := make([]byte, 0, CompactProofSize)
	buf = append(buf, p.Challenge.Bytes()...)
	return append(buf, p.Response.Bytes()...)
}

func (p *CompactProof) String() string {
	return hex.EncodeToString(p.Bytes())
}

func CompactProofFromBytes(data []byte) (*CompactProof, error) {
	if len(data) != CompactProofSize {
		return nil, xerrors.Errorf("proof size %d: %w", len(data), ErrScalarFormat)
	}
	c, err := ScalarFromBytes(data[:ScalarSize])
	if err != nil {
		return nil, err
	}
	s, err := ScalarFromBytes(data[ScalarSize:])
	if err != nil {
		return nil, err
	}
	return &CompactProof{Challenge: c, Response: s}, nil
}
