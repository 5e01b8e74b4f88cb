// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package oblivfib

import "errors"

// Common errors.
var (
	ErrIndexOutOfRange   = errors.New("index exceeds the evaluation bound")
	ErrValueOutOfDomain  = errors.New("value exceeds the plaintext domain")
	ErrForeignCiphertext = errors.New("ciphertext was not produced by this scheme")
	ErrTableMismatch     = errors.New("index and fibonacci tables have different lengths")
	ErrEmptyTable        = errors.New("table must hold at least two entries")
)

// EncryptedValue is an opaque handle to an encrypted domain value. Its
// concrete type belongs to the capability that produced it and must never be
// inspected by the evaluation strategies.
type EncryptedValue interface{}

// EncryptedBit is an opaque handle to an encrypted comparison result. It is
// consumed only by Select and is never decrypted by the evaluation core.
type EncryptedBit interface{}

// Capability is the minimal homomorphic surface consumed by the oblivious
// evaluation core. All methods operate on ciphertexts only; none of them
// requires the secret key. Implementations carry their own key material, so a
// capability handle can be threaded explicitly through the call graph instead
// of living in process-global state.
//
// Every operation must have cost and output shape independent of the
// plaintexts inside its operands; the obliviousness of the evaluation
// strategies rests on that contract.
type Capability interface {
	// Encrypt encrypts a domain value under the public key.
	Encrypt(value uint64) (EncryptedValue, error)
	// Add returns an encryption of a+b mod Modulus().
	Add(a, b EncryptedValue) (EncryptedValue, error)
	// Eq returns an encrypted 1 if a and b hold the same value, encrypted 0
	// otherwise.
	Eq(a, b EncryptedValue) (EncryptedBit, error)
	// Select returns a re-encryption of a if cond holds 1, of b if it holds 0.
	Select(cond EncryptedBit, a, b EncryptedValue) (EncryptedValue, error)
	// Modulus returns the size t of the plaintext domain Z_t.
	Modulus() uint64
}

// Decrypter recovers plaintexts from encrypted values. It is the only
// interface that touches the secret key and is owned by the data-owner side
// of a run, never by the evaluation core.
type Decrypter interface {
	Decrypt(v EncryptedValue) (uint64, error)
}

// Forker is implemented by capabilities whose handles are not safe for
// concurrent use. Fork returns an independent handle sharing the same key
// material, suitable for use from another goroutine.
type Forker interface {
	Fork() Capability
}
