package api

import (
	"encoding/binary"

	"github.com/bwesterb/go-ristretto"
	"github.com/dchest/blake2b"
)

const (
	CHECK_VALUE_DOMAIN_TAG  = "thcheck_check_value"
	BATCH_DIGEST_DOMAIN_TAG = "thcheck_batch_digest"
)

func CheckValueFromUint64(v uint64) *ristretto.Scalar {
	return uint64ToScalar(v)
}

// HashCheckValue maps an arbitrary integrity signal (a build fingerprint, a
// package signature) to a scalar. The name keeps different checks apart.
func HashCheckValue(name string, value []byte) *ristretto.Scalar {
	hash := blake2b.New512()
	hash.Write([]byte(CHECK_VALUE_DOMAIN_TAG))
	var size [8]byte
	binary.LittleEndian.PutUint64(size[:], uint64(len(name)))
	hash.Write(size[:])
	hash.Write([]byte(name))
	hash.Write(value)

	var key [64]byte
	copy(key[:], hash.Sum(nil))
	var hs ristretto.Scalar
	return hs.SetReduced(&key)
}
