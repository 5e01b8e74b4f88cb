// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package oblivfib

import (
	"github.com/tuneinsight/lattigo/v6/core/rlwe"
)

// SecretKey is the client key. It never leaves the data owner: it is required
// for decryption and for deriving the other keys, and for nothing else.
type SecretKey struct {
	sk *rlwe.SecretKey
}

// PublicKey allows encrypting domain values without access to the secret key.
type PublicKey struct {
	pk *rlwe.PublicKey
}

// EvaluationKey enables homomorphic operations (relinearization after
// ciphertext multiplication) without revealing plaintexts. It is generated
// once, handed to the evaluating party, and never mutated afterwards.
type EvaluationKey struct {
	evk rlwe.EvaluationKeySet
}

// KeyGenerator generates the key material for a parameter set.
type KeyGenerator struct {
	params Parameters
	kgen   *rlwe.KeyGenerator
}

// NewKeyGenerator creates a new key generator.
func NewKeyGenerator(params Parameters) *KeyGenerator {
	return &KeyGenerator{
		params: params,
		kgen:   rlwe.NewKeyGenerator(params.Parameters),
	}
}

// GenSecretKey generates a fresh secret key.
func (kg *KeyGenerator) GenSecretKey() *SecretKey {
	return &SecretKey{sk: kg.kgen.GenSecretKeyNew()}
}

// GenPublicKey derives the encryption key from a secret key.
func (kg *KeyGenerator) GenPublicKey(sk *SecretKey) *PublicKey {
	return &PublicKey{pk: kg.kgen.GenPublicKeyNew(sk.sk)}
}

// GenKeyPair generates a secret key and its public key.
func (kg *KeyGenerator) GenKeyPair() (*SecretKey, *PublicKey) {
	sk := kg.GenSecretKey()
	return sk, kg.GenPublicKey(sk)
}

// GenEvaluationKey derives the evaluation key from a secret key.
func (kg *KeyGenerator) GenEvaluationKey(sk *SecretKey) *EvaluationKey {
	rlk := kg.kgen.GenRelinearizationKeyNew(sk.sk)
	return &EvaluationKey{evk: rlwe.NewMemEvaluationKeySet(rlk)}
}
