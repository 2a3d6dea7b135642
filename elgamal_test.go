package api

import (
	"errors"
	"testing"

	"github.com/bwesterb/go-ristretto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scalars(values ...uint64) []*ristretto.Scalar {
	out := make([]*ristretto.Scalar, len(values))
	for i, v := range values {
		out[i] = uint64ToScalar(v)
	}
	return out
}

func encodePoint(v uint64) *ristretto.Point {
	var p ristretto.Point
	return p.ScalarMultBase(uint64ToScalar(v))
}

func TestEncrypt(t *testing.T) {
	assert := assert.New(t)

	private, public := GenerateKeys()
	ct := EncryptScalar(public, uint64ToScalar(42))
	assert.True(ct.PK.Equals(public))
	assert.True(ct.Decrypt(private).Equals(encodePoint(42)))

	other := EncryptScalar(public, uint64ToScalar(42))
	assert.False(ct.C1.Equals(other.C1))
}

func TestEncryptInput(t *testing.T) {
	assert := assert.New(t)

	sk1, pk1 := GenerateKeys()
	sk2, pk2 := GenerateKeys()
	shared := CombinePublicKeys(pk1, pk2)

	values := scalars(3, 1, 4, 1, 5)
	cts := EncryptInput(shared, values)
	assert.Len(cts, len(values))

	var sum ristretto.Scalar
	sum.Add(sk1, sk2)
	for i, ct := range cts {
		assert.True(ct.Decrypt(&sum).Equals(encodePoint([]uint64{3, 1, 4, 1, 5}[i])))
		assert.False(ct.Decrypt(sk1).Equals(encodePoint([]uint64{3, 1, 4, 1, 5}[i])))
	}

	assert.Len(EncryptInput(shared, nil), 0)
}

func TestCiphertextHomomorphism(t *testing.T) {
	assert := assert.New(t)

	private, public := GenerateKeys()
	a := EncryptScalar(public, uint64ToScalar(9))
	b := EncryptScalar(public, uint64ToScalar(4))

	diff, err := a.Sub(b)
	require.Nil(t, err)
	assert.True(diff.Decrypt(private).Equals(encodePoint(5)))

	scaled := a.Mul(uint64ToScalar(3))
	assert.True(scaled.PK.Equals(public))
	assert.True(scaled.Decrypt(private).Equals(encodePoint(27)))

	zero, err := a.Sub(a)
	require.Nil(t, err)
	assert.True(isIdentity(zero.Decrypt(private)))

	_, otherPublic := GenerateKeys()
	_, err = a.Sub(EncryptScalar(otherPublic, uint64ToScalar(9)))
	assert.True(errors.Is(err, ErrKeyMismatch))
}

func TestCiphertextBytes(t *testing.T) {
	assert := assert.New(t)

	_, public := GenerateKeys()
	ct := EncryptScalar(public, uint64ToScalar(7))
	data := ct.Bytes()
	assert.Len(data, CiphertextSize)

	decoded, err := CiphertextFromBytes(data)
	require.Nil(t, err)
	assert.True(ct.Equals(decoded))
	assert.Equal(ct.String(), decoded.String())

	_, err = CiphertextFromBytes(data[:CiphertextSize-1])
	assert.True(errors.Is(err, ErrPointDecompression))

	bad := append([]byte{}, data...)
	for i := PointSize; i < 2*PointSize; i++ {
		bad[i] = 0xff
	}
	_, err = CiphertextFromBytes(bad)
	assert.True(errors.Is(err, ErrPointDecompression))
}
