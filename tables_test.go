// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package oblivfib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildIndexTable(t *testing.T) {
	s := NewClearScheme(PlaintextModulus)

	table, err := BuildIndexTable(s, 24)
	require.NoError(t, err)
	require.Len(t, table, 25)

	for i, entry := range table {
		v, err := s.Decrypt(entry)
		require.NoError(t, err)
		require.Equal(t, uint64(i), v, "entry %d", i)
	}

	require.Equal(t, uint64(25), s.Counts().Encrypt)
}

func TestBuildFibonacciTable(t *testing.T) {
	s := NewClearScheme(PlaintextModulus)

	table, err := BuildFibonacciTable(s, 25)
	require.NoError(t, err)
	require.Len(t, table, 26)

	want := FibonacciSequence(25, PlaintextModulus)
	for i, entry := range table {
		v, err := s.Decrypt(entry)
		require.NoError(t, err)
		require.Equal(t, want[i], v, "entry %d", i)
	}
}
