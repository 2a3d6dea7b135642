package api

import (
	"github.com/bwesterb/go-ristretto"
	"golang.org/x/xerrors"
)

func decryptionRelation(public *ristretto.Point, ct *Ciphertext, share *ristretto.Point) *Relation {
	return &Relation{
		Label: DECRYPTION_LABEL,
		G:     basePoint(),
		H:     ct.C1,
		X:     public,
		Y:     share,
	}
}

// PartialDecryptionAndProof removes the holder's share sk*C1 from every C2 and
// proves the share was computed with the secret behind PublicKey(sk). C1 is
// left untouched for the other key holder; the remaining key becomes PK - sk*B.
func PartialDecryptionAndProof(randomized []*Ciphertext, private *ristretto.Scalar) ([]*Ciphertext, []*CompactProof) {
	return sequential.PartialDecryptionAndProof(randomized, private)
}

func (p *Protocol) PartialDecryptionAndProof(randomized []*Ciphertext, private *ristretto.Scalar) ([]*Ciphertext, []*CompactProof) {
	public := PublicKey(private)
	decrypted := make([]*Ciphertext, len(randomized))
	proofs := make([]*CompactProof, len(randomized))
	p.forEach(len(randomized), func(i int) {
		decrypted[i], proofs[i] = partialDecryptOne(randomized[i], private, public)
	})
	p.log.Debug().Int("size", len(decrypted)).Int("workers", p.workers).Msg("partially decrypted checks")
	return decrypted, proofs
}

func partialDecryptOne(ct *Ciphertext, private *ristretto.Scalar, public *ristretto.Point) (*Ciphertext, *CompactProof) {
	var share, c2, remaining ristretto.Point
	share.ScalarMult(ct.C1, private)

	decrypted := &Ciphertext{
		PK: remaining.Sub(ct.PK, public),
		C1: ct.C1,
		C2: c2.Sub(ct.C2, &share),
	}
	proof := decryptionRelation(public, ct, &share).Prove(private)
	return decrypted, proof
}

// Plaintexts returns the message points of ciphertexts that every key holder
// has partially decrypted.
func Plaintexts(ciphertexts []*Ciphertext) ([]*ristretto.Point, error) {
	points := make([]*ristretto.Point, len(ciphertexts))
	for i, ct := range ciphertexts {
		if !ct.complete() || !isIdentity(ct.PK) {
			return nil, xerrors.Errorf("plaintext %d: %w", i, ErrNotFullyDecrypted)
		}
		points[i] = ct.C2
	}
	return points, nil
}
