// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package oblivfib

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v6/schemes/bgv"
)

const (
	// PlaintextModulus is the prime t of the encrypted domain Z_t. It is the
	// smallest NTT-friendly prime above 2^16, so the domain holds every value
	// a 16-bit register would, and t-1 is a power of two, which makes the
	// Fermat equality x^(t-1) a pure squaring chain.
	PlaintextModulus uint64 = 65537

	// eqDepth is the multiplicative depth of one homomorphic equality test:
	// log2(PlaintextModulus - 1) squarings.
	eqDepth = 16

	// MaxBound is the largest usable index bound: F(24) = 46368 is the last
	// Fibonacci number below PlaintextModulus, so indices above 24 would wrap.
	MaxBound = 24

	// DefaultLogN is the default ring degree exponent.
	DefaultLogN = 13
)

// Parameters bundles the BGV parameter set with the index bound it was sized
// for. The moduli chain length is a function of the bound: one level per
// squaring of the equality chain plus one per select folded into the result.
type Parameters struct {
	bgv.Parameters
	bound int
}

// ParametersLiteral is a user-friendly parameter specification.
//
// The resulting sets are sized for multiplicative depth, not for a production
// security margin: at the default ring degree the moduli chain is far larger
// than a 128-bit-secure configuration would allow. They are meant for
// experimentation with the oblivious evaluation circuit.
type ParametersLiteral struct {
	// LogN is log2 of the ring degree. Zero selects DefaultLogN.
	LogN int
	// Bound is the largest index the evaluation must support, in [1, MaxBound].
	Bound int
}

// circuitDepth returns the multiplicative depth of a full query at the given
// bound: the equality chain runs at full depth in every iteration, and each
// of the bound+1 selects consumes one more level of the accumulated result.
func circuitDepth(bound int) int {
	return eqDepth + bound + 3
}

// NewParametersFromLiteral creates Parameters sized for the requested bound.
func NewParametersFromLiteral(lit ParametersLiteral) (Parameters, error) {
	if lit.Bound < 1 || lit.Bound > MaxBound {
		return Parameters{}, fmt.Errorf("bound must be in [1, %d], got %d", MaxBound, lit.Bound)
	}

	logN := lit.LogN
	if logN == 0 {
		logN = DefaultLogN
	}

	// First prime oversized for fresh-ciphertext headroom, one 45-bit prime
	// per level after that.
	logQ := make([]int, circuitDepth(lit.Bound)+1)
	logQ[0] = 55
	for i := 1; i < len(logQ); i++ {
		logQ[i] = 45
	}

	params, err := bgv.NewParametersFromLiteral(bgv.ParametersLiteral{
		LogN:             logN,
		LogQ:             logQ,
		LogP:             []int{61},
		PlaintextModulus: PlaintextModulus,
	})
	if err != nil {
		return Parameters{}, fmt.Errorf("bgv parameters: %w", err)
	}

	return Parameters{Parameters: params, bound: lit.Bound}, nil
}

// Bound returns the largest index this parameter set supports.
func (p Parameters) Bound() int {
	return p.bound
}
