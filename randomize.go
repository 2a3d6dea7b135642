package api

func randomizationRelation(original, randomized *Ciphertext) *Relation {
	return &Relation{
		Label: RANDOMIZATION_LABEL,
		G:     original.C1,
		H:     original.C2,
		X:     randomized.C1,
		Y:     randomized.C2,
	}
}

// RandomizeAndProve scales every ciphertext by a fresh secret r_i and proves,
// per element, that both components were scaled by the same r_i.
func RandomizeAndProve(encryptedChecks []*Ciphertext) ([]*Ciphertext, []*CompactProof) {
	return sequential.RandomizeAndProve(encryptedChecks)
}

func (p *Protocol) RandomizeAndProve(encryptedChecks []*Ciphertext) ([]*Ciphertext, []*CompactProof) {
	randomized := make([]*Ciphertext, len(encryptedChecks))
	proofs := make([]*CompactProof, len(encryptedChecks))
	p.forEach(len(encryptedChecks), func(i int) {
		randomized[i], proofs[i] = randomizeOne(encryptedChecks[i])
	})
	p.log.Debug().Int("size", len(randomized)).Int("workers", p.workers).Msg("randomized encrypted checks")
	return randomized, proofs
}

func randomizeOne(ct *Ciphertext) (*Ciphertext, *CompactProof) {
	r := randomScalar()
	defer r.SetZero()

	randomized := ct.Mul(r)
	proof := randomizationRelation(ct, randomized).Prove(r)
	return randomized, proof
}
