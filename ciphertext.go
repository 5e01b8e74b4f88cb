// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package oblivfib

import (
	"github.com/tuneinsight/lattigo/v6/core/rlwe"
)

// Ciphertext is an encrypted domain value under the BGV scheme, with the
// value carried in slot 0. It satisfies EncryptedValue.
type Ciphertext struct {
	ct *rlwe.Ciphertext
}

// BitCiphertext is an encrypted comparison result (0 or 1 in slot 0). It
// satisfies EncryptedBit. Keeping it a distinct type prevents comparison
// results from being fed back into arithmetic by accident.
type BitCiphertext struct {
	ct *rlwe.Ciphertext
}

// Level returns the remaining modulus level of the ciphertext.
func (c *Ciphertext) Level() int {
	return c.ct.Level()
}
