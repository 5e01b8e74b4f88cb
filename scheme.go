// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package oblivfib

// Scheme bundles an Encryptor and an Evaluator into a single Capability
// handle for the evaluating party. It holds no secret key.
type Scheme struct {
	*Encryptor
	*Evaluator
}

var (
	_ Capability = (*Scheme)(nil)
	_ Forker     = (*Scheme)(nil)
)

// NewScheme creates the evaluating-party capability from the public key
// material.
func NewScheme(params Parameters, pk *PublicKey, evk *EvaluationKey) *Scheme {
	return &Scheme{
		Encryptor: NewEncryptor(params, pk),
		Evaluator: NewEvaluator(params, evk),
	}
}

// Fork returns an independent handle sharing the same key material, for use
// from another goroutine.
func (s *Scheme) Fork() Capability {
	return &Scheme{
		Encryptor: s.Encryptor.ShallowCopy(),
		Evaluator: s.Evaluator.ShallowCopy(),
	}
}
