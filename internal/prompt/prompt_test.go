// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadIndexRepromptsUntilValid(t *testing.T) {
	in := strings.NewReader("abc\n-1\n25\n24\n")
	var out bytes.Buffer

	n, err := ReadIndex(in, &out, 24)
	require.NoError(t, err)
	require.Equal(t, 24, n)

	require.Equal(t, 3, strings.Count(out.String(), "Invalid input."))
	require.Contains(t, out.String(), "Enter a number (0-24): ")
}

func TestReadIndexAcceptsWhitespace(t *testing.T) {
	in := strings.NewReader("  7 \n")
	var out bytes.Buffer

	n, err := ReadIndex(in, &out, 10)
	require.NoError(t, err)
	require.Equal(t, 7, n)
}

func TestReadIndexEOF(t *testing.T) {
	in := strings.NewReader("nope\n")
	var out bytes.Buffer

	_, err := ReadIndex(in, &out, 10)
	require.ErrorIs(t, err, io.EOF)
}
