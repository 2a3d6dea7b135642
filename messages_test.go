package api

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestEncryptedCheckBatch(t *testing.T) {
	assert := assert.New(t)

	_, public := GenerateKeys()
	batch := &EncryptedCheckBatch{Session: NewSessionID(), Ciphertexts: EncryptInput(public, scalars(5, 7))}
	data, err := batch.MarshalBinary()
	require.Nil(t, err)

	var decoded EncryptedCheckBatch
	require.Nil(t, decoded.UnmarshalBinary(data))
	assert.Equal(batch.Session, decoded.Session)
	require.Len(t, decoded.Ciphertexts, 2)
	for i := range batch.Ciphertexts {
		assert.True(batch.Ciphertexts[i].Equals(decoded.Ciphertexts[i]))
	}
	assert.Equal(batch.Digest(), decoded.Digest())

	other := &EncryptedCheckBatch{Session: NewSessionID(), Ciphertexts: batch.Ciphertexts}
	assert.NotEqual(batch.Digest(), other.Digest())

	var empty EncryptedCheckBatch
	assert.Nil(empty.UnmarshalBinary(nil))
	assert.Len(empty.Ciphertexts, 0)
}

func TestRandomizedBatch(t *testing.T) {
	assert := assert.New(t)

	_, public := GenerateKeys()
	original := EncryptInput(public, scalars(5, 7, 9))
	randomized, proofs := RandomizeAndProve(original)
	batch := &RandomizedBatch{Session: NewSessionID(), Ciphertexts: randomized, Proofs: proofs}
	data, err := batch.MarshalBinary()
	require.Nil(t, err)

	var decoded RandomizedBatch
	require.Nil(t, decoded.UnmarshalBinary(data))
	ok, err := VerifyRandomizationProofs(original, decoded.Ciphertexts, decoded.Proofs)
	assert.Nil(err)
	assert.True(ok)

	batch.Proofs = proofs[:2]
	_, err = batch.MarshalBinary()
	assert.True(errors.Is(err, ErrLengthMismatch))

	truncated := marshalBatch(batch.Session, randomized, proofs[:2])
	assert.True(errors.Is(decoded.UnmarshalBinary(truncated), ErrLengthMismatch))

	var encrypted EncryptedCheckBatch
	assert.True(errors.Is(encrypted.UnmarshalBinary(data), ErrMalformedMessage))
}

func TestPartialDecryptionBatch(t *testing.T) {
	assert := assert.New(t)

	private, public := GenerateKeys()
	randomized, _ := RandomizeAndProve(EncryptInput(public, scalars(1)))
	partial, proofs := PartialDecryptionAndProof(randomized, private)
	batch := &PartialDecryptionBatch{Session: NewSessionID(), Ciphertexts: partial, Proofs: proofs}
	data, err := batch.MarshalBinary()
	require.Nil(t, err)

	var decoded PartialDecryptionBatch
	require.Nil(t, decoded.UnmarshalBinary(data))
	ok, err := VerifyPartialDecryptionProofs(public, randomized, decoded.Ciphertexts, decoded.Proofs)
	assert.Nil(err)
	assert.True(ok)
	assert.Equal(batch.Digest(), decoded.Digest())

	decoded.Proofs = nil
	_, err = decoded.MarshalBinary()
	assert.True(errors.Is(err, ErrLengthMismatch))
}

func TestUnmarshalBatchMalformed(t *testing.T) {
	assert := assert.New(t)

	_, public := GenerateKeys()
	ct := EncryptScalar(public, uint64ToScalar(3))
	var batch EncryptedCheckBatch

	// truncated frame
	data := marshalBatch(NewSessionID(), []*Ciphertext{ct}, nil)
	assert.True(errors.Is(batch.UnmarshalBinary(data[:len(data)-1]), ErrMalformedMessage))

	// bad session id
	var bad []byte
	bad = protowire.AppendTag(bad, fieldSession, protowire.BytesType)
	bad = protowire.AppendString(bad, "not-an-xid")
	assert.True(errors.Is(batch.UnmarshalBinary(bad), ErrMalformedMessage))

	// short ciphertext
	bad = protowire.AppendTag(nil, fieldCiphertexts, protowire.BytesType)
	bad = protowire.AppendBytes(bad, ct.Bytes()[:CiphertextSize-1])
	assert.True(errors.Is(batch.UnmarshalBinary(bad), ErrPointDecompression))

	// invalid point
	bad = protowire.AppendTag(nil, fieldCiphertexts, protowire.BytesType)
	bad = protowire.AppendBytes(bad, bytes.Repeat([]byte{0xff}, CiphertextSize))
	assert.True(errors.Is(batch.UnmarshalBinary(bad), ErrPointDecompression))

	// non-canonical proof scalar
	var proofs RandomizedBatch
	bad = protowire.AppendTag(nil, fieldProofs, protowire.BytesType)
	bad = protowire.AppendBytes(bad, bytes.Repeat([]byte{0xff}, CompactProofSize))
	assert.True(errors.Is(proofs.UnmarshalBinary(bad), ErrScalarFormat))

	// unknown varint fields are skipped
	skip := protowire.AppendTag(nil, 9, protowire.VarintType)
	skip = protowire.AppendVarint(skip, 300)
	skip = append(skip, data...)
	assert.Nil(batch.UnmarshalBinary(skip))
	assert.Len(batch.Ciphertexts, 1)
}
