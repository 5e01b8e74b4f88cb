// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package oblivfib

// FibonacciSequence returns F(0)..F(bound) reduced mod modulus.
//
// The reduction uses the same wraparound arithmetic as the encrypted domain,
// so a table built by encrypting this sequence is bit-identical to one derived
// by homomorphic addition. A negative bound yields an empty sequence.
func FibonacciSequence(bound int, modulus uint64) []uint64 {
	if bound < 0 {
		return nil
	}
	seq := make([]uint64, bound+1)
	a, b := uint64(0), uint64(1)
	for i := range seq {
		seq[i] = a
		a, b = b, (a+b)%modulus
	}
	return seq
}

// Fibonacci returns F(n) mod modulus. It is the correctness oracle the
// encrypted results are checked against.
func Fibonacci(n int, modulus uint64) uint64 {
	a, b := uint64(0), uint64(1)
	for i := 0; i < n; i++ {
		a, b = b, (a+b)%modulus
	}
	return a
}
