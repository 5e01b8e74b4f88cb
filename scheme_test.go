// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package oblivfib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParametersValidation(t *testing.T) {
	_, err := NewParametersFromLiteral(ParametersLiteral{Bound: 0})
	require.Error(t, err)
	_, err = NewParametersFromLiteral(ParametersLiteral{Bound: MaxBound + 1})
	require.Error(t, err)

	params, err := NewParametersFromLiteral(ParametersLiteral{LogN: 12, Bound: 3})
	require.NoError(t, err)
	require.Equal(t, 3, params.Bound())
	require.Equal(t, PlaintextModulus, params.PlaintextModulus())
}

func testScheme(t *testing.T, bound int) (*Scheme, *Decryptor) {
	t.Helper()
	params, err := NewParametersFromLiteral(ParametersLiteral{LogN: 12, Bound: bound})
	require.NoError(t, err)

	kgen := NewKeyGenerator(params)
	sk, pk := kgen.GenKeyPair()
	evk := kgen.GenEvaluationKey(sk)
	return NewScheme(params, pk, evk), NewDecryptor(params, sk)
}

func TestBGVRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("homomorphic test")
	}
	scheme, dec := testScheme(t, 2)

	for _, v := range []uint64{0, 1, 55, PlaintextModulus - 1} {
		ct, err := scheme.Encrypt(v)
		require.NoError(t, err)
		got, err := dec.Decrypt(ct)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}

	_, err := scheme.Encrypt(PlaintextModulus)
	require.ErrorIs(t, err, ErrValueOutOfDomain)
}

func TestBGVOperations(t *testing.T) {
	if testing.Short() {
		t.Skip("homomorphic test")
	}
	scheme, dec := testScheme(t, 2)

	a, err := scheme.Encrypt(65000)
	require.NoError(t, err)
	b, err := scheme.Encrypt(1000)
	require.NoError(t, err)

	sum, err := scheme.Add(a, b)
	require.NoError(t, err)
	v, err := dec.Decrypt(sum)
	require.NoError(t, err)
	require.Equal(t, uint64(66000%65537), v)

	// Equal operands select the first branch, unequal the second.
	same, err := scheme.Eq(a, a)
	require.NoError(t, err)
	sel, err := scheme.Select(same, a, b)
	require.NoError(t, err)
	v, err = dec.Decrypt(sel)
	require.NoError(t, err)
	require.Equal(t, uint64(65000), v)

	diff, err := scheme.Eq(a, b)
	require.NoError(t, err)
	sel, err = scheme.Select(diff, a, b)
	require.NoError(t, err)
	v, err = dec.Decrypt(sel)
	require.NoError(t, err)
	require.Equal(t, uint64(1000), v)
}

func TestBGVForeignCiphertext(t *testing.T) {
	if testing.Short() {
		t.Skip("homomorphic test")
	}
	scheme, dec := testScheme(t, 2)

	clear := NewClearScheme(PlaintextModulus)
	foreign, err := clear.Encrypt(1)
	require.NoError(t, err)

	own, err := scheme.Encrypt(1)
	require.NoError(t, err)

	_, err = scheme.Add(own, foreign)
	require.ErrorIs(t, err, ErrForeignCiphertext)
	_, err = dec.Decrypt(foreign)
	require.ErrorIs(t, err, ErrForeignCiphertext)
}

func TestSessionQuery(t *testing.T) {
	if testing.Short() {
		t.Skip("homomorphic test")
	}
	session, err := NewSession(Config{Bound: 4, LogN: 12})
	require.NoError(t, err)

	for n := 0; n <= 4; n++ {
		res, err := session.Query(n)
		require.NoError(t, err)
		require.Equal(t, Fibonacci(n, PlaintextModulus), res.Expected)
		require.Equal(t, res.Expected, res.Recurrence, "recurrence F(%d)", n)
		require.Equal(t, res.Expected, res.Lookup, "lookup F(%d)", n)
	}

	_, err = session.Query(5)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = session.Query(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	v, elapsed, err := session.Evaluate(StrategyLookup, 3)
	require.NoError(t, err)
	require.Equal(t, uint64(2), v)
	require.Positive(t, elapsed)

	_, _, err = session.Evaluate("bisection", 3)
	require.Error(t, err)
	_, _, err = session.Evaluate(StrategyRecurrence, 5)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSessionRepeat(t *testing.T) {
	if testing.Short() {
		t.Skip("homomorphic test")
	}
	session, err := NewSession(Config{Bound: 2, LogN: 12})
	require.NoError(t, err)

	timings, err := session.Repeat(1, 2)
	require.NoError(t, err)
	require.Equal(t, 2, timings.Recurrence.Runs)
	require.Equal(t, 2, timings.Lookup.Runs)
	require.Positive(t, timings.Recurrence.Mean)
	require.Positive(t, timings.Lookup.Mean)

	_, err = session.Repeat(1, 0)
	require.Error(t, err)
}
