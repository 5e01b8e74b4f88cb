// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package oblivfib

import "fmt"

// Strategy evaluates F(index) over an encrypted index without learning it.
//
// Implementations must be oblivious: for a fixed bound, every evaluation
// performs the same operations in the same order and touches table entries
// in the same sequence, whatever value the index ciphertext holds.
type Strategy interface {
	// Name identifies the strategy in reports and logs.
	Name() string
	// Evaluate returns an encryption of F(v) where v is the value inside
	// index. v must be within the bound the strategy was built for; a larger
	// v silently yields the last candidate examined, it is never detected
	// here because detecting it would require decrypting.
	Evaluate(c Capability, index EncryptedValue) (EncryptedValue, error)
}

// Recurrence computes F(index) by running the Fibonacci recurrence over
// ciphertexts. Two encrypted registers advance through the sequence; at each
// step an equality test against the step number multiplexes the freshly
// computed term into the result. Every index costs the full sweep to the
// bound.
type Recurrence struct {
	indexes Table
}

var _ Strategy = (*Recurrence)(nil)

// NewRecurrence creates the recurrence strategy over an index table built
// with BuildIndexTable. The table must cover at least indices 0 and 1.
func NewRecurrence(indexes Table) (*Recurrence, error) {
	if len(indexes) < 2 {
		return nil, fmt.Errorf("recurrence: %w", ErrEmptyTable)
	}
	return &Recurrence{indexes: indexes}, nil
}

// Name implements Strategy.
func (r *Recurrence) Name() string { return "recurrence" }

// Evaluate implements Strategy.
func (r *Recurrence) Evaluate(c Capability, index EncryptedValue) (EncryptedValue, error) {
	a, err := c.Encrypt(0)
	if err != nil {
		return nil, fmt.Errorf("recurrence: seed F(0): %w", err)
	}
	b, err := c.Encrypt(1)
	if err != nil {
		return nil, fmt.Errorf("recurrence: seed F(1): %w", err)
	}

	// Covers indices 0 and 1: pick F(0) if index is 0, F(1) otherwise. For
	// larger indices the value is a placeholder the loop overwrites.
	isZero, err := c.Eq(index, r.indexes[0])
	if err != nil {
		return nil, fmt.Errorf("recurrence: eq 0: %w", err)
	}
	result, err := c.Select(isZero, a, b)
	if err != nil {
		return nil, fmt.Errorf("recurrence: select 0: %w", err)
	}

	for i := 2; i < len(r.indexes); i++ {
		next, err := c.Add(a, b)
		if err != nil {
			return nil, fmt.Errorf("recurrence: step %d: add: %w", i, err)
		}
		a, b = b, next

		hit, err := c.Eq(index, r.indexes[i])
		if err != nil {
			return nil, fmt.Errorf("recurrence: step %d: eq: %w", i, err)
		}
		result, err = c.Select(hit, next, result)
		if err != nil {
			return nil, fmt.Errorf("recurrence: step %d: select: %w", i, err)
		}
	}

	return result, nil
}

// Lookup computes F(index) by folding a multiplexer chain over a precomputed
// encrypted Fibonacci table. The table build is paid once; each query is then
// one equality test and one select per entry, with no additions.
type Lookup struct {
	indexes Table
	fib     Table
}

var _ Strategy = (*Lookup)(nil)

// NewLookup creates the lookup strategy over tables built with
// BuildIndexTable and BuildFibonacciTable at the same bound.
func NewLookup(indexes, fib Table) (*Lookup, error) {
	if len(indexes) != len(fib) {
		return nil, fmt.Errorf("lookup: %d indexes, %d values: %w", len(indexes), len(fib), ErrTableMismatch)
	}
	if len(indexes) < 2 {
		return nil, fmt.Errorf("lookup: %w", ErrEmptyTable)
	}
	return &Lookup{indexes: indexes, fib: fib}, nil
}

// Name implements Strategy.
func (l *Lookup) Name() string { return "lookup" }

// Evaluate implements Strategy.
func (l *Lookup) Evaluate(c Capability, index EncryptedValue) (EncryptedValue, error) {
	result := l.fib[0]
	for i := 1; i < len(l.indexes); i++ {
		hit, err := c.Eq(index, l.indexes[i])
		if err != nil {
			return nil, fmt.Errorf("lookup: entry %d: eq: %w", i, err)
		}
		result, err = c.Select(hit, l.fib[i], result)
		if err != nil {
			return nil, fmt.Errorf("lookup: entry %d: select: %w", i, err)
		}
	}
	return result, nil
}
