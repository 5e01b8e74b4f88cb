// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package oblivfib

import (
	"fmt"
	"sync"
)

// OpCounts records how many times each capability operation ran. Two runs
// over different inputs must produce identical counts for the evaluation to
// be oblivious at the operation level.
type OpCounts struct {
	Encrypt uint64
	Add     uint64
	Eq      uint64
	Select  uint64
}

// ClearScheme is a cleartext stand-in for the homomorphic capability. Values
// stay unencrypted; the arithmetic is plain modular arithmetic. It exists to
// test the evaluation strategies fast and to audit their operation traces,
// which a real scheme makes invisible by construction.
type ClearScheme struct {
	modulus uint64

	mu     sync.Mutex
	counts OpCounts
}

var (
	_ Capability = (*ClearScheme)(nil)
	_ Decrypter  = (*ClearScheme)(nil)
	_ Forker     = (*ClearScheme)(nil)
)

type clearValue struct{ v uint64 }

type clearBit struct{ b uint64 }

// NewClearScheme creates a cleartext capability over Z_modulus.
func NewClearScheme(modulus uint64) *ClearScheme {
	return &ClearScheme{modulus: modulus}
}

// Encrypt wraps value without encrypting it.
func (s *ClearScheme) Encrypt(value uint64) (EncryptedValue, error) {
	if value >= s.modulus {
		return nil, fmt.Errorf("encrypt %d: %w", value, ErrValueOutOfDomain)
	}
	s.count(func(c *OpCounts) { c.Encrypt++ })
	return &clearValue{v: value}, nil
}

// Add returns a+b mod modulus.
func (s *ClearScheme) Add(a, b EncryptedValue) (EncryptedValue, error) {
	ca, cb, err := s.pair(a, b)
	if err != nil {
		return nil, fmt.Errorf("add: %w", err)
	}
	s.count(func(c *OpCounts) { c.Add++ })
	return &clearValue{v: (ca.v + cb.v) % s.modulus}, nil
}

// Eq returns a wrapped 1 if a and b hold the same value, 0 otherwise.
func (s *ClearScheme) Eq(a, b EncryptedValue) (EncryptedBit, error) {
	ca, cb, err := s.pair(a, b)
	if err != nil {
		return nil, fmt.Errorf("eq: %w", err)
	}
	s.count(func(c *OpCounts) { c.Eq++ })
	if ca.v == cb.v {
		return &clearBit{b: 1}, nil
	}
	return &clearBit{b: 0}, nil
}

// Select returns a if cond holds 1, b if it holds 0.
func (s *ClearScheme) Select(cond EncryptedBit, a, b EncryptedValue) (EncryptedValue, error) {
	bc, ok := cond.(*clearBit)
	if !ok {
		return nil, fmt.Errorf("select: %w", ErrForeignCiphertext)
	}
	ca, cb, err := s.pair(a, b)
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	s.count(func(c *OpCounts) { c.Select++ })
	// Same mux arithmetic as the encrypted backend rather than a branch.
	d := (ca.v + s.modulus - cb.v) % s.modulus
	return &clearValue{v: (bc.b*d + cb.v) % s.modulus}, nil
}

// Decrypt unwraps a value.
func (s *ClearScheme) Decrypt(v EncryptedValue) (uint64, error) {
	cv, ok := v.(*clearValue)
	if !ok {
		return 0, fmt.Errorf("decrypt: %w", ErrForeignCiphertext)
	}
	return cv.v, nil
}

// Modulus returns the size of the plaintext domain.
func (s *ClearScheme) Modulus() uint64 {
	return s.modulus
}

// Fork returns the scheme itself: the cleartext capability is safe for
// concurrent use, and sharing the handle keeps the operation counts global.
func (s *ClearScheme) Fork() Capability {
	return s
}

// Counts returns a snapshot of the operation counters.
func (s *ClearScheme) Counts() OpCounts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts
}

// ResetCounts zeroes the operation counters.
func (s *ClearScheme) ResetCounts() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts = OpCounts{}
}

func (s *ClearScheme) count(f func(*OpCounts)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(&s.counts)
}

func (s *ClearScheme) pair(a, b EncryptedValue) (*clearValue, *clearValue, error) {
	ca, ok := a.(*clearValue)
	if !ok {
		return nil, nil, ErrForeignCiphertext
	}
	cb, ok := b.(*clearValue)
	if !ok {
		return nil, nil, ErrForeignCiphertext
	}
	return ca, cb, nil
}
