package api

import (
	"encoding/hex"

	"github.com/bwesterb/go-ristretto"
	"golang.org/x/xerrors"
)

const CiphertextSize = 3 * PointSize

// Ciphertext is an additive ElGamal pair under PK:
//
//	C1 = k*B, C2 = M + k*PK, M = C2 - sk*C1
type Ciphertext struct {
	PK *ristretto.Point
	C1 *ristretto.Point
	C2 *ristretto.Point
}

// complete reports whether c carries its key and both components. Decoded
// ciphertexts always do; hand-built ones may not.
func (c *Ciphertext) complete() bool {
	return c != nil && c.PK != nil && c.C1 != nil && c.C2 != nil
}

func Encrypt(pk, message *ristretto.Point) *Ciphertext {
	k := randomScalar()
	defer k.SetZero()

	var c1, c2, shared ristretto.Point
	c1.ScalarMultBase(k)
	c2.Add(message, shared.ScalarMult(pk, k))
	return &Ciphertext{PK: pk, C1: &c1, C2: &c2}
}

// EncryptScalar encrypts the point encoding v*B of a check value.
func EncryptScalar(pk *ristretto.Point, v *ristretto.Scalar) *Ciphertext {
	var m ristretto.Point
	return Encrypt(pk, m.ScalarMultBase(v))
}

// EncryptInput encrypts each value independently, preserving order.
func EncryptInput(pk *ristretto.Point, values []*ristretto.Scalar) []*Ciphertext {
	return sequential.EncryptInput(pk, values)
}

func (p *Protocol) EncryptInput(pk *ristretto.Point, values []*ristretto.Scalar) []*Ciphertext {
	out := make([]*Ciphertext, len(values))
	p.forEach(len(values), func(i int) {
		out[i] = EncryptScalar(pk, values[i])
	})
	p.log.Debug().Int("size", len(values)).Msg("encrypted input")
	return out
}

// Mul scales both components, yielding a ciphertext of r*M under the same key.
func (c *Ciphertext) Mul(r *ristretto.Scalar) *Ciphertext {
	var c1, c2 ristretto.Point
	return &Ciphertext{
		PK: c.PK,
		C1: c1.ScalarMult(c.C1, r),
		C2: c2.ScalarMult(c.C2, r),
	}
}

// Sub returns an encryption of the plaintext difference. Both sides must be
// under the same public key.
func (c *Ciphertext) Sub(other *Ciphertext) (*Ciphertext, error) {
	if !c.PK.Equals(other.PK) {
		return nil, xerrors.Errorf("subtract: %w", ErrKeyMismatch)
	}
	var c1, c2 ristretto.Point
	return &Ciphertext{
		PK: c.PK,
		C1: c1.Sub(c.C1, other.C1),
		C2: c2.Sub(c.C2, other.C2),
	}, nil
}

func (c *Ciphertext) Decrypt(private *ristretto.Scalar) *ristretto.Point {
	var m, d ristretto.Point
	return m.Sub(c.C2, d.ScalarMult(c.C1, private))
}

func (c *Ciphertext) Equals(other *Ciphertext) bool {
	return c.PK.Equals(other.PK) && c.C1.Equals(other.C1) && c.C2.Equals(other.C2)
}

func (c *Ciphertext) Bytes() []byte {
	buf := make([]byte, 0, CiphertextSize)
	buf = append(buf, c.PK.Bytes()...)
	buf = append(buf, c.C1.Bytes()...)
	return append(buf, c.C2.Bytes()...)
}

func (c *Ciphertext) String() string {
	return hex.EncodeToString(c.Bytes())
}

func CiphertextFromBytes(data []byte) (*Ciphertext, error) {
	if len(data) != CiphertextSize {
		return nil, xerrors.Errorf("ciphertext size %d: %w", len(data), ErrPointDecompression)
	}
	points := make([]*ristretto.Point, 3)
	for i := range points {
		p, err := PointFromBytes(data[i*PointSize : (i+1)*PointSize])
		if err != nil {
			return nil, err
		}
		points[i] = p
	}
	return &Ciphertext{PK: points[0], C1: points[1], C2: points[2]}, nil
}
