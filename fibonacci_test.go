// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package oblivfib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFibonacci(t *testing.T) {
	cases := []struct {
		n    int
		want uint64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{10, 55},
		{24, 46368},
		{25, 9488}, // 75025 mod 65537
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Fibonacci(tc.n, PlaintextModulus), "F(%d)", tc.n)
	}
}

func TestFibonacciSequence(t *testing.T) {
	seq := FibonacciSequence(10, PlaintextModulus)
	require.Len(t, seq, 11)
	require.Equal(t, []uint64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55}, seq)

	require.Nil(t, FibonacciSequence(-1, PlaintextModulus))
	require.Equal(t, []uint64{0}, FibonacciSequence(0, PlaintextModulus))
}

func TestFibonacciSequenceWraparound(t *testing.T) {
	seq := FibonacciSequence(25, PlaintextModulus)
	for n, want := range seq {
		require.Equal(t, want, Fibonacci(n, PlaintextModulus), "F(%d)", n)
	}
	require.Equal(t, uint64(9488), seq[25])
}
