package api

import (
	"github.com/rs/xid"
	"golang.org/x/crypto/sha3"
	"golang.org/x/xerrors"
	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers shared by every batch frame.
const (
	fieldSession     protowire.Number = 1
	fieldCiphertexts protowire.Number = 2
	fieldProofs      protowire.Number = 3
)

// EncryptedCheckBatch carries encrypted check values or encrypted checks
// between the parties.
type EncryptedCheckBatch struct {
	Session     string
	Ciphertexts []*Ciphertext
}

// RandomizedBatch carries randomized checks with their randomization proofs.
type RandomizedBatch struct {
	Session     string
	Ciphertexts []*Ciphertext
	Proofs      []*CompactProof
}

// PartialDecryptionBatch carries partially decrypted checks with their
// decryption proofs.
type PartialDecryptionBatch struct {
	Session     string
	Ciphertexts []*Ciphertext
	Proofs      []*CompactProof
}

func NewSessionID() string {
	return xid.New().String()
}

func (b *EncryptedCheckBatch) MarshalBinary() ([]byte, error) {
	return marshalBatch(b.Session, b.Ciphertexts, nil), nil
}

func (b *EncryptedCheckBatch) UnmarshalBinary(data []byte) error {
	session, cts, proofs, err := unmarshalBatch(data)
	if err != nil {
		return err
	}
	if len(proofs) != 0 {
		return xerrors.Errorf("encrypted batch with %d proofs: %w", len(proofs), ErrMalformedMessage)
	}
	b.Session, b.Ciphertexts = session, cts
	return nil
}

func (b *EncryptedCheckBatch) Digest() []byte {
	return batchDigest(b.Session, b.Ciphertexts, nil)
}

func (b *RandomizedBatch) MarshalBinary() ([]byte, error) {
	if len(b.Ciphertexts) != len(b.Proofs) {
		return nil, xerrors.Errorf("randomized batch: %d ciphertexts, %d proofs: %w", len(b.Ciphertexts), len(b.Proofs), ErrLengthMismatch)
	}
	return marshalBatch(b.Session, b.Ciphertexts, b.Proofs), nil
}

func (b *RandomizedBatch) UnmarshalBinary(data []byte) error {
	session, cts, proofs, err := unmarshalBatch(data)
	if err != nil {
		return err
	}
	if len(cts) != len(proofs) {
		return xerrors.Errorf("randomized batch: %d ciphertexts, %d proofs: %w", len(cts), len(proofs), ErrLengthMismatch)
	}
	b.Session, b.Ciphertexts, b.Proofs = session, cts, proofs
	return nil
}

func (b *RandomizedBatch) Digest() []byte {
	return batchDigest(b.Session, b.Ciphertexts, b.Proofs)
}

func (b *PartialDecryptionBatch) MarshalBinary() ([]byte, error) {
	if len(b.Ciphertexts) != len(b.Proofs) {
		return nil, xerrors.Errorf("partial decryption batch: %d ciphertexts, %d proofs: %w", len(b.Ciphertexts), len(b.Proofs), ErrLengthMismatch)
	}
	return marshalBatch(b.Session, b.Ciphertexts, b.Proofs), nil
}

func (b *PartialDecryptionBatch) UnmarshalBinary(data []byte) error {
	session, cts, proofs, err := unmarshalBatch(data)
	if err != nil {
		return err
	}
	if len(cts) != len(proofs) {
		return xerrors.Errorf("partial decryption batch: %d ciphertexts, %d proofs: %w", len(cts), len(proofs), ErrLengthMismatch)
	}
	b.Session, b.Ciphertexts, b.Proofs = session, cts, proofs
	return nil
}

func (b *PartialDecryptionBatch) Digest() []byte {
	return batchDigest(b.Session, b.Ciphertexts, b.Proofs)
}

func marshalBatch(session string, cts []*Ciphertext, proofs []*CompactProof) []byte {
	var buf []byte
	if session != "" {
		buf = protowire.AppendTag(buf, fieldSession, protowire.BytesType)
		buf = protowire.AppendString(buf, session)
	}
	for _, ct := range cts {
		buf = protowire.AppendTag(buf, fieldCiphertexts, protowire.BytesType)
		buf = protowire.AppendBytes(buf, ct.Bytes())
	}
	for _, p := range proofs {
		buf = protowire.AppendTag(buf, fieldProofs, protowire.BytesType)
		buf = protowire.AppendBytes(buf, p.Bytes())
	}
	return buf
}

func unmarshalBatch(data []byte) (string, []*Ciphertext, []*CompactProof, error) {
	var session string
	var cts []*Ciphertext
	var proofs []*CompactProof
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return "", nil, nil, xerrors.Errorf("tag: %v: %w", protowire.ParseError(n), ErrMalformedMessage)
		}
		data = data[n:]

		if typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return "", nil, nil, xerrors.Errorf("field %d: %v: %w", num, protowire.ParseError(n), ErrMalformedMessage)
			}
			data = data[n:]
			continue
		}
		value, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return "", nil, nil, xerrors.Errorf("field %d: %v: %w", num, protowire.ParseError(n), ErrMalformedMessage)
		}
		data = data[n:]

		switch num {
		case fieldSession:
			if _, err := xid.FromString(string(value)); err != nil {
				return "", nil, nil, xerrors.Errorf("session %q: %w", value, ErrMalformedMessage)
			}
			session = string(value)
		case fieldCiphertexts:
			ct, err := CiphertextFromBytes(value)
			if err != nil {
				return "", nil, nil, err
			}
			cts = append(cts, ct)
		case fieldProofs:
			proof, err := CompactProofFromBytes(value)
			if err != nil {
				return "", nil, nil, err
			}
			proofs = append(proofs, proof)
		}
	}
	return session, cts, proofs, nil
}

func batchDigest(session string, cts []*Ciphertext, proofs []*CompactProof) []byte {
	h := sha3.New256()
	h.Write([]byte(BATCH_DIGEST_DOMAIN_TAG))
	h.Write(marshalBatch(session, cts, proofs))
	return h.Sum(nil)
}
