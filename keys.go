package api

import (
	"github.com/bwesterb/go-ristretto"
)

// GenerateKeys returns a fresh key share. The secret never leaves its holder.
func GenerateKeys() (*ristretto.Scalar, *ristretto.Point) {
	private := randomScalar()
	return private, PublicKey(private)
}

func PublicKey(private *ristretto.Scalar) *ristretto.Point {
	var point ristretto.Point
	return point.ScalarMultBase(private)
}

// CombinePublicKeys returns the two-party threshold key pk1 + pk2. Its secret
// sk1 + sk2 is never materialized.
func CombinePublicKeys(pk1, pk2 *ristretto.Point) *ristretto.Point {
	var r ristretto.Point
	return r.Add(pk1, pk2)
}

// Zeroize clears a secret key share at the end of a session.
func Zeroize(private *ristretto.Scalar) {
	if private != nil {
		private.SetZero()
	}
}
