// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package oblivfib

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v6/core/rlwe"
	"github.com/tuneinsight/lattigo/v6/schemes/bgv"
)

// Decryptor recovers plaintext values with the secret key. It implements
// Decrypter and stays on the data-owner side of a run.
type Decryptor struct {
	encoder   *bgv.Encoder
	decryptor *rlwe.Decryptor
}

// NewDecryptor creates a new decryptor from the secret key.
func NewDecryptor(params Parameters, sk *SecretKey) *Decryptor {
	return &Decryptor{
		encoder:   bgv.NewEncoder(params.Parameters),
		decryptor: rlwe.NewDecryptor(params.Parameters, sk.sk),
	}
}

// Decrypt recovers the domain value in slot 0 of v.
func (dec *Decryptor) Decrypt(v EncryptedValue) (uint64, error) {
	c, ok := v.(*Ciphertext)
	if !ok {
		return 0, fmt.Errorf("decrypt: %w", ErrForeignCiphertext)
	}

	pt := dec.decryptor.DecryptNew(c.ct)

	values := make([]uint64, 1)
	if err := dec.encoder.Decode(pt, values); err != nil {
		return 0, fmt.Errorf("decode: %w", err)
	}

	return values[0], nil
}
