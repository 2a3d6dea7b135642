package main

import (
	"encoding/hex"

	api "github.com/MixinNetwork/threshold-check"
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"
)

type Report struct {
	Session string
	Size    int
	Passed  bool
}

type wire interface {
	MarshalBinary() ([]byte, error)
	UnmarshalBinary([]byte) error
}

// hop stands in for the transport: every message crosses it encoded.
func hop(in, out wire) error {
	data, err := in.MarshalBinary()
	if err != nil {
		return err
	}
	return out.UnmarshalBinary(data)
}

// simulate runs both roles in process. The client encrypts what it observed
// and later applies its key share; the server combines the expected values,
// randomizes, applies its share last and decides.
func simulate(protocol *api.Protocol, scenario *Scenario, logger zerolog.Logger) (*Report, error) {
	observed, expected := scenario.vectors()

	clientPrivate, clientPublic := api.GenerateKeys()
	defer api.Zeroize(clientPrivate)
	serverPrivate, serverPublic := api.GenerateKeys()
	defer api.Zeroize(serverPrivate)
	shared := api.CombinePublicKeys(clientPublic, serverPublic)
	session := api.NewSessionID()
	log := logger.With().Str("session", session).Logger()

	// client -> server
	encrypted := &api.EncryptedCheckBatch{Session: session, Ciphertexts: protocol.EncryptInput(shared, observed)}
	var received api.EncryptedCheckBatch
	err := hop(encrypted, &received)
	if err != nil {
		return nil, err
	}
	log.Info().Str("digest", hex.EncodeToString(received.Digest())).Msg("server received encrypted input")

	checks, err := protocol.ComputeChecks(shared, received.Ciphertexts, expected)
	if err != nil {
		return nil, err
	}
	randomized, proofs := protocol.RandomizeAndProve(checks)

	// server -> client
	var clientChecks api.EncryptedCheckBatch
	err = hop(&api.EncryptedCheckBatch{Session: session, Ciphertexts: checks}, &clientChecks)
	if err != nil {
		return nil, err
	}
	var clientRandomized api.RandomizedBatch
	err = hop(&api.RandomizedBatch{Session: session, Ciphertexts: randomized, Proofs: proofs}, &clientRandomized)
	if err != nil {
		return nil, err
	}
	ok, err := protocol.VerifyRandomizationProofs(clientChecks.Ciphertexts, clientRandomized.Ciphertexts, clientRandomized.Proofs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, xerrors.Errorf("client: randomization: %w", api.ErrProofInvalid)
	}
	partial, partialProofs := protocol.PartialDecryptionAndProof(clientRandomized.Ciphertexts, clientPrivate)

	// client -> server
	var serverPartial api.PartialDecryptionBatch
	err = hop(&api.PartialDecryptionBatch{Session: session, Ciphertexts: partial, Proofs: partialProofs}, &serverPartial)
	if err != nil {
		return nil, err
	}
	ok, err = protocol.VerifyPartialDecryptionProofs(clientPublic, randomized, serverPartial.Ciphertexts, serverPartial.Proofs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, xerrors.Errorf("server: partial decryption: %w", api.ErrProofInvalid)
	}
	final, _ := protocol.PartialDecryptionAndProof(serverPartial.Ciphertexts, serverPrivate)
	points, err := api.Plaintexts(final)
	if err != nil {
		return nil, err
	}

	passed := protocol.CheckTests(points)
	log.Info().Int("size", len(points)).Bool("passed", passed).Msg("attestation decided")
	return &Report{Session: session, Size: len(points), Passed: passed}, nil
}
