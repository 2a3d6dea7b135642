package api

import (
	"crypto/subtle"
	"encoding/binary"
	"encoding/hex"

	"github.com/bwesterb/go-ristretto"
	"golang.org/x/xerrors"
)

const (
	ScalarSize = 32
	PointSize  = 32
)

func uint64ToScalar(i uint64) *ristretto.Scalar {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[:], i)
	var s ristretto.Scalar
	return s.SetBytes(&buf)
}

func randomScalar() *ristretto.Scalar {
	var s ristretto.Scalar
	for {
		s.Rand()
		if s.IsNonZeroI() == 1 {
			return &s
		}
	}
}

func basePoint() *ristretto.Point {
	var b ristretto.Point
	return b.SetBase()
}

func identity() *ristretto.Point {
	var p ristretto.Point
	return p.SetZero()
}

func isIdentity(p *ristretto.Point) bool {
	return p.Equals(identity())
}

// SetBytes reduces its input, so a canonical encoding is one that survives
// the round trip unchanged.
func isCanonicalScalar(buf *[32]byte) bool {
	var s ristretto.Scalar
	var out [32]byte
	s.SetBytes(buf).BytesInto(&out)
	return subtle.ConstantTimeCompare(buf[:], out[:]) == 1
}

func ScalarFromBytes(data []byte) (*ristretto.Scalar, error) {
	if len(data) != ScalarSize {
		return nil, xerrors.Errorf("scalar size %d: %w", len(data), ErrScalarFormat)
	}
	var buf [32]byte
	copy(buf[:], data)
	if !isCanonicalScalar(&buf) {
		return nil, xerrors.Errorf("scalar %s not reduced: %w", hex.EncodeToString(data), ErrScalarFormat)
	}
	var s ristretto.Scalar
	return s.SetBytes(&buf), nil
}

func PointFromBytes(data []byte) (*ristretto.Point, error) {
	if len(data) != PointSize {
		return nil, xerrors.Errorf("point size %d: %w", len(data), ErrPointDecompression)
	}
	var buf [32]byte
	copy(buf[:], data)
	var p ristretto.Point
	if !p.SetBytes(&buf) {
		return nil, xerrors.Errorf("point %s: %w", hex.EncodeToString(data), ErrPointDecompression)
	}
	return &p, nil
}

func HexToScalar(h string) (*ristretto.Scalar, error) {
	buf, err := hex.DecodeString(h)
	if err != nil {
		return nil, xerrors.Errorf("scalar hex: %w", ErrScalarFormat)
	}
	return ScalarFromBytes(buf)
}

func HexToPoint(h string) (*ristretto.Point, error) {
	buf, err := hex.DecodeString(h)
	if err != nil {
		return nil, xerrors.Errorf("point hex: %w", ErrPointDecompression)
	}
	return PointFromBytes(buf)
}

// s1*P1 + s2*P2
func doubleScalarMul(s1 *ristretto.Scalar, p1 *ristretto.Point, s2 *ristretto.Scalar, p2 *ristretto.Point) *ristretto.Point {
	var p, t1, t2 ristretto.Point
	t1.ScalarMult(p1, s1)
	t2.ScalarMult(p2, s2)
	return p.Add(&t1, &t2)
}
