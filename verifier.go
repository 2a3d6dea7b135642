package api

import (
	"github.com/bwesterb/go-ristretto"
	"golang.org/x/xerrors"
)

func VerifyRandomizationProofs(original, randomized []*Ciphertext, proofs []*CompactProof) (bool, error) {
	return sequential.VerifyRandomizationProofs(original, randomized, proofs)
}

func VerifyRandomizationProofsEach(original, randomized []*Ciphertext, proofs []*CompactProof) ([]bool, error) {
	return sequential.VerifyRandomizationProofsEach(original, randomized, proofs)
}

func VerifyPartialDecryptionProofs(public *ristretto.Point, ciphertexts, partialDecryptions []*Ciphertext, proofs []*CompactProof) (bool, error) {
	return sequential.VerifyPartialDecryptionProofs(public, ciphertexts, partialDecryptions, proofs)
}

func VerifyPartialDecryptionProofsEach(public *ristretto.Point, ciphertexts, partialDecryptions []*Ciphertext, proofs []*CompactProof) ([]bool, error) {
	return sequential.VerifyPartialDecryptionProofsEach(public, ciphertexts, partialDecryptions, proofs)
}

// VerifyRandomizationProofs accepts the batch only if every index verifies.
// All indices are checked; the result does not say which one failed.
func (p *Protocol) VerifyRandomizationProofs(original, randomized []*Ciphertext, proofs []*CompactProof) (bool, error) {
	results, err := p.VerifyRandomizationProofsEach(original, randomized, proofs)
	if err != nil {
		return false, err
	}
	ok := all(results)
	if !ok {
		p.log.Warn().Int("size", len(results)).Msg("randomization proofs rejected")
	}
	return ok, nil
}

func (p *Protocol) VerifyRandomizationProofsEach(original, randomized []*Ciphertext, proofs []*CompactProof) ([]bool, error) {
	if len(original) != len(randomized) || len(original) != len(proofs) {
		return nil, xerrors.Errorf("verify randomization: %d original, %d randomized, %d proofs: %w",
			len(original), len(randomized), len(proofs), ErrLengthMismatch)
	}
	results := make([]bool, len(original))
	p.forEach(len(original), func(i int) {
		results[i] = verifyRandomization(original[i], randomized[i], proofs[i])
	})
	return results, nil
}

func verifyRandomization(original, randomized *Ciphertext, proof *CompactProof) bool {
	if !original.complete() || !randomized.complete() {
		return false
	}
	if !original.PK.Equals(randomized.PK) {
		return false
	}
	// a zero randomizer would turn any check into a pass
	if isIdentity(randomized.C1) {
		return false
	}
	return randomizationRelation(original, randomized).Verify(proof) == nil
}

func (p *Protocol) VerifyPartialDecryptionProofs(public *ristretto.Point, ciphertexts, partialDecryptions []*Ciphertext, proofs []*CompactProof) (bool, error) {
	results, err := p.VerifyPartialDecryptionProofsEach(public, ciphertexts, partialDecryptions, proofs)
	if err != nil {
		return false, err
	}
	ok := all(results)
	if !ok {
		p.log.Warn().Int("size", len(results)).Msg("partial decryption proofs rejected")
	}
	return ok, nil
}

func (p *Protocol) VerifyPartialDecryptionProofsEach(public *ristretto.Point, ciphertexts, partialDecryptions []*Ciphertext, proofs []*CompactProof) ([]bool, error) {
	if len(ciphertexts) != len(partialDecryptions) || len(ciphertexts) != len(proofs) {
		return nil, xerrors.Errorf("verify partial decryption: %d ciphertexts, %d decryptions, %d proofs: %w",
			len(ciphertexts), len(partialDecryptions), len(proofs), ErrLengthMismatch)
	}
	results := make([]bool, len(ciphertexts))
	p.forEach(len(ciphertexts), func(i int) {
		results[i] = verifyPartialDecryption(public, ciphertexts[i], partialDecryptions[i], proofs[i])
	})
	return results, nil
}

func verifyPartialDecryption(public *ristretto.Point, ct, decrypted *Ciphertext, proof *CompactProof) bool {
	if public == nil || !ct.complete() || !decrypted.complete() {
		return false
	}
	if !ct.C1.Equals(decrypted.C1) {
		return false
	}
	var remaining, share ristretto.Point
	if !decrypted.PK.Equals(remaining.Sub(ct.PK, public)) {
		return false
	}
	share.Sub(ct.C2, decrypted.C2)
	return decryptionRelation(public, ct, &share).Verify(proof) == nil
}

func all(results []bool) bool {
	ok := true
	for _, r := range results {
		ok = ok && r
	}
	return ok
}
