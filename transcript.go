package api

import (
	"github.com/bwesterb/go-ristretto"
	"github.com/gtank/merlin"
)

const (
	RANDOMIZATION_LABEL = "CorrectRandomization"
	DECRYPTION_LABEL    = "CorrectDecryption"
)

func InitialTranscript(label string) *merlin.Transcript {
	return merlin.NewTranscript(label)
}

func dleqDomainSep(t *merlin.Transcript) *merlin.Transcript {
	appendBytes([]byte("dom-sep"), []byte("dleq v1"), t)
	return t
}

func appendBytes(label, message []byte, t *merlin.Transcript) {
	t.AppendMessage(label, message)
}

func AppendPoint(label string, p *ristretto.Point, t *merlin.Transcript) {
	t.AppendMessage([]byte(label), p.Bytes())
}

// ChallengeScalar reduces 64 transcript bytes into a scalar.
func ChallengeScalar(label string, t *merlin.Transcript) *ristretto.Scalar {
	data := t.ExtractBytes([]byte(label), 64)
	var buf [64]byte
	copy(buf[:], data)
	var s ristretto.Scalar
	return s.SetReduced(&buf)
}
