package api

import "errors"

var (
	ErrLengthMismatch     = errors.New("length mismatch")
	ErrKeyMismatch        = errors.New("ciphertext public key mismatch")
	ErrPointDecompression = errors.New("invalid point encoding")
	ErrScalarFormat       = errors.New("invalid scalar encoding")
	ErrProofInvalid       = errors.New("proof verification failed")
	ErrMalformedMessage   = errors.New("malformed message")
	ErrNotFullyDecrypted  = errors.New("ciphertext not fully decrypted")
)
