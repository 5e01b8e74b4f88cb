// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package oblivfib

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v6/schemes/bgv"
)

// Evaluator performs homomorphic operations on encrypted domain values. It
// needs the evaluation key but never the secret key.
//
// Every operation executes the same ciphertext-level work regardless of the
// plaintexts involved: Add is a single homomorphic addition, Eq is a fixed
// chain of sixteen squarings, Select is a single multiplication plus an
// addition. Nothing branches on encrypted content.
type Evaluator struct {
	params Parameters
	eval   *bgv.Evaluator
}

// NewEvaluator creates a new evaluator from the evaluation key.
func NewEvaluator(params Parameters, evk *EvaluationKey) *Evaluator {
	return &Evaluator{
		params: params,
		eval:   bgv.NewEvaluator(params.Parameters, evk.evk),
	}
}

func asCiphertext(v EncryptedValue) (*Ciphertext, error) {
	c, ok := v.(*Ciphertext)
	if !ok {
		return nil, ErrForeignCiphertext
	}
	return c, nil
}

// Add returns an encryption of a+b mod t. Addition consumes no level.
func (ev *Evaluator) Add(a, b EncryptedValue) (EncryptedValue, error) {
	ca, err := asCiphertext(a)
	if err != nil {
		return nil, fmt.Errorf("add: %w", err)
	}
	cb, err := asCiphertext(b)
	if err != nil {
		return nil, fmt.Errorf("add: %w", err)
	}

	ct, err := ev.eval.AddNew(ca.ct, cb.ct)
	if err != nil {
		return nil, fmt.Errorf("add: %w", err)
	}
	return &Ciphertext{ct: ct}, nil
}

// Eq returns an encrypted 1 if a and b hold the same value, encrypted 0
// otherwise, via Fermat's little theorem: for prime t and d = a-b,
// d^(t-1) is 0 when d = 0 and 1 otherwise, so the result is 1 - d^(t-1).
// With t-1 = 2^16 the exponentiation is sixteen squarings, each followed by
// a rescale, so the test costs a fixed sixteen levels for any operands.
func (ev *Evaluator) Eq(a, b EncryptedValue) (EncryptedBit, error) {
	ca, err := asCiphertext(a)
	if err != nil {
		return nil, fmt.Errorf("eq: %w", err)
	}
	cb, err := asCiphertext(b)
	if err != nil {
		return nil, fmt.Errorf("eq: %w", err)
	}

	z, err := ev.eval.SubNew(ca.ct, cb.ct)
	if err != nil {
		return nil, fmt.Errorf("eq: sub: %w", err)
	}

	for i := 0; i < eqDepth; i++ {
		z, err = ev.eval.MulRelinNew(z, z)
		if err != nil {
			return nil, fmt.Errorf("eq: square %d: %w", i, err)
		}
		if err = ev.eval.Rescale(z, z); err != nil {
			return nil, fmt.Errorf("eq: rescale %d: %w", i, err)
		}
	}

	// 1 - z computed as (z - 1) * (t - 1), a scalar negation that costs no
	// level.
	zm, err := ev.eval.SubNew(z, uint64(1))
	if err != nil {
		return nil, fmt.Errorf("eq: shift: %w", err)
	}
	bit, err := ev.eval.MulNew(zm, PlaintextModulus-1)
	if err != nil {
		return nil, fmt.Errorf("eq: negate: %w", err)
	}

	return &BitCiphertext{ct: bit}, nil
}

// Select returns a re-encryption of a if cond holds 1, of b if it holds 0,
// computed as cond*(a-b) + b. One multiplication, one level.
func (ev *Evaluator) Select(cond EncryptedBit, a, b EncryptedValue) (EncryptedValue, error) {
	bc, ok := cond.(*BitCiphertext)
	if !ok {
		return nil, fmt.Errorf("select: %w", ErrForeignCiphertext)
	}
	ca, err := asCiphertext(a)
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	cb, err := asCiphertext(b)
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}

	d, err := ev.eval.SubNew(ca.ct, cb.ct)
	if err != nil {
		return nil, fmt.Errorf("select: sub: %w", err)
	}

	m, err := ev.eval.MulRelinNew(bc.ct, d)
	if err != nil {
		return nil, fmt.Errorf("select: mul: %w", err)
	}
	if err = ev.eval.Rescale(m, m); err != nil {
		return nil, fmt.Errorf("select: rescale: %w", err)
	}

	out, err := ev.eval.AddNew(m, cb.ct)
	if err != nil {
		return nil, fmt.Errorf("select: add: %w", err)
	}
	return &Ciphertext{ct: out}, nil
}

// ShallowCopy creates a copy of the evaluator that shares the key material
// but owns its internal buffers, for use from another goroutine.
func (ev *Evaluator) ShallowCopy() *Evaluator {
	return &Evaluator{
		params: ev.params,
		eval:   ev.eval.ShallowCopy(),
	}
}
