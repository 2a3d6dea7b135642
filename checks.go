package api

import (
	"github.com/bwesterb/go-ristretto"
	"golang.org/x/xerrors"
)

// ComputeChecks returns Enc(checks[i]) - encryptedHashes[i] for every index.
// A check passes when its plaintext is the identity.
func ComputeChecks(sharedPK *ristretto.Point, encryptedHashes []*Ciphertext, vectorChecks []*ristretto.Scalar) ([]*Ciphertext, error) {
	return sequential.ComputeChecks(sharedPK, encryptedHashes, vectorChecks)
}

func (p *Protocol) ComputeChecks(sharedPK *ristretto.Point, encryptedHashes []*Ciphertext, vectorChecks []*ristretto.Scalar) ([]*Ciphertext, error) {
	if len(encryptedHashes) != len(vectorChecks) {
		return nil, xerrors.Errorf("compute checks: %d hashes, %d checks: %w", len(encryptedHashes), len(vectorChecks), ErrLengthMismatch)
	}
	if sharedPK == nil {
		return nil, xerrors.Errorf("compute checks: no shared key: %w", ErrKeyMismatch)
	}
	for i, h := range encryptedHashes {
		if !h.complete() || !h.PK.Equals(sharedPK) {
			return nil, xerrors.Errorf("compute checks: hash %d: %w", i, ErrKeyMismatch)
		}
		if vectorChecks[i] == nil {
			return nil, xerrors.Errorf("compute checks: check %d: %w", i, ErrScalarFormat)
		}
	}

	out := make([]*Ciphertext, len(vectorChecks))
	p.forEach(len(vectorChecks), func(i int) {
		// keys were checked above, Sub cannot fail
		out[i], _ = EncryptScalar(sharedPK, vectorChecks[i]).Sub(encryptedHashes[i])
	})
	p.log.Debug().Int("size", len(out)).Msg("computed encrypted checks")
	return out, nil
}
