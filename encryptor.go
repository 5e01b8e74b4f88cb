// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package oblivfib

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v6/core/rlwe"
	"github.com/tuneinsight/lattigo/v6/schemes/bgv"
)

// Encryptor encrypts domain values under the public key.
type Encryptor struct {
	params    Parameters
	encoder   *bgv.Encoder
	encryptor *rlwe.Encryptor
}

// NewEncryptor creates a new encryptor from the public key.
func NewEncryptor(params Parameters, pk *PublicKey) *Encryptor {
	return &Encryptor{
		params:    params,
		encoder:   bgv.NewEncoder(params.Parameters),
		encryptor: rlwe.NewEncryptor(params.Parameters, pk.pk),
	}
}

// Encrypt encrypts value into slot 0 of a fresh ciphertext.
func (enc *Encryptor) Encrypt(value uint64) (EncryptedValue, error) {
	if value >= PlaintextModulus {
		return nil, fmt.Errorf("encrypt %d: %w", value, ErrValueOutOfDomain)
	}

	pt := bgv.NewPlaintext(enc.params.Parameters, enc.params.MaxLevel())
	if err := enc.encoder.Encode([]uint64{value}, pt); err != nil {
		return nil, fmt.Errorf("encode %d: %w", value, err)
	}

	ct, err := enc.encryptor.EncryptNew(pt)
	if err != nil {
		return nil, fmt.Errorf("encrypt %d: %w", value, err)
	}

	return &Ciphertext{ct: ct}, nil
}

// Modulus returns the size of the plaintext domain.
func (enc *Encryptor) Modulus() uint64 {
	return PlaintextModulus
}

// ShallowCopy creates a copy of the encryptor that shares the key material
// but owns its internal buffers, for use from another goroutine.
func (enc *Encryptor) ShallowCopy() *Encryptor {
	return &Encryptor{
		params:    enc.params,
		encoder:   enc.encoder.ShallowCopy(),
		encryptor: enc.encryptor.ShallowCopy(),
	}
}
