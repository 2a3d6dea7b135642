package api

import (
	"crypto/subtle"

	"github.com/bwesterb/go-ristretto"
)

// CheckTests reports whether every decrypted check is the identity. It stops
// at the first failing index, so its running time depends on that position.
func CheckTests(finalDecryption []*ristretto.Point) bool {
	return sequential.checkTestsEarlyExit(finalDecryption)
}

// CheckTestsConstantTime scans every element and reveals only the overall
// result.
func CheckTestsConstantTime(finalDecryption []*ristretto.Point) bool {
	zero := identity().Bytes()
	ok := 1
	for _, p := range finalDecryption {
		if p == nil {
			ok = 0
			continue
		}
		ok &= subtle.ConstantTimeCompare(p.Bytes(), zero)
	}
	return ok == 1
}

// CheckTests applies the configured decision policy.
func (p *Protocol) CheckTests(finalDecryption []*ristretto.Point) bool {
	if p.constantTime {
		return CheckTestsConstantTime(finalDecryption)
	}
	return p.checkTestsEarlyExit(finalDecryption)
}

func (p *Protocol) checkTestsEarlyExit(finalDecryption []*ristretto.Point) bool {
	for i, point := range finalDecryption {
		if point == nil || !isIdentity(point) {
			p.log.Debug().Int("index", i).Msg("check failed")
			return false
		}
	}
	return true
}
