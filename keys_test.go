package api

import (
	"encoding/hex"
	"testing"

	"github.com/bwesterb/go-ristretto"
	"github.com/stretchr/testify/assert"
)

func TestGenerateKeys(t *testing.T) {
	assert := assert.New(t)

	private, public := GenerateKeys()
	assert.Equal(hex.EncodeToString(PublicKey(private).Bytes()), hex.EncodeToString(public.Bytes()))

	other, _ := GenerateKeys()
	assert.False(private.Equals(other))
}

func TestCombinePublicKeys(t *testing.T) {
	assert := assert.New(t)

	for i := 0; i < 8; i++ {
		sk1, pk1 := GenerateKeys()
		sk2, pk2 := GenerateKeys()
		assert.True(CombinePublicKeys(pk1, pk2).Equals(CombinePublicKeys(pk2, pk1)))

		var sum ristretto.Scalar
		sum.Add(sk1, sk2)
		assert.True(CombinePublicKeys(pk1, pk2).Equals(PublicKey(&sum)))
	}
}

func TestZeroize(t *testing.T) {
	assert := assert.New(t)

	private, _ := GenerateKeys()
	Zeroize(private)
	var zero ristretto.Scalar
	assert.True(private.Equals(zero.SetZero()))
	Zeroize(nil)
}
