// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

// Package oblivfib evaluates the Fibonacci recurrence at an encrypted index
// without ever branching on it.
//
// The index, every intermediate value, and the result stay encrypted end to
// end. Both evaluation strategies execute the same sequence of homomorphic
// operations for every possible index: the operation count and the order in
// which table entries are touched never depend on the secret, which is what
// makes the evaluation oblivious.
//
// The homomorphic primitives (encrypt, add, equality, select) are consumed
// through the Capability interface, so any backend offering constant-shape
// versions of these operations can be substituted. The production backend in
// this package is built on the BGV scheme from tuneinsight/lattigo:
//   - values live in Z_t with t = 65537, encoded in slot 0
//   - equality uses the Fermat identity 1 - (x-y)^(t-1)
//   - select is ciphertext multiplexing cond*(a-b) + b
//
// Two strategies are provided. Recurrence recomputes the sequence
// homomorphically on every query (O(bound) additions on the critical path).
// Lookup trades those additions for a precomputed encrypted table, paying the
// additions once at setup and amortizing them across queries.
package oblivfib
