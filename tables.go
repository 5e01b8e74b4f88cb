// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package oblivfib

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Table is an ordered list of encrypted domain values. Entry i of an index
// table holds an encryption of i; entry i of a Fibonacci table holds an
// encryption of F(i).
type Table []EncryptedValue

// BuildIndexTable encrypts 0..bound into a table. The entries are what an
// encrypted query index is compared against, one equality test per entry, so
// the table length fixes the work of a query.
func BuildIndexTable(c Capability, bound int) (Table, error) {
	values := make([]uint64, bound+1)
	for i := range values {
		values[i] = uint64(i)
	}
	return buildTable(c, values)
}

// BuildFibonacciTable encrypts F(0)..F(bound) into a table for the lookup
// strategy. The sequence is reduced mod the capability's modulus before
// encryption, matching what repeated homomorphic addition would produce.
func BuildFibonacciTable(c Capability, bound int) (Table, error) {
	return buildTable(c, FibonacciSequence(bound, c.Modulus()))
}

// buildTable encrypts values in parallel. Workers write straight into their
// strided slice positions, so the table order matches the input order no
// matter how the goroutines are scheduled.
func buildTable(c Capability, values []uint64) (Table, error) {
	table := make(Table, len(values))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(values) {
		workers = len(values)
	}

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		wc := c
		if f, ok := c.(Forker); ok {
			wc = f.Fork()
		}
		g.Go(func() error {
			for i := w; i < len(values); i += workers {
				ct, err := wc.Encrypt(values[i])
				if err != nil {
					return fmt.Errorf("table entry %d: %w", i, err)
				}
				table[i] = ct
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return table, nil
}
