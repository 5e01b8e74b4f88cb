// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package oblivfib

import (
	"errors"
	"fmt"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/luxfi/oblivfib/internal/tablecache"
)

// Config configures a Session.
type Config struct {
	// Bound is the largest query index, in [1, MaxBound]. Zero selects 10.
	Bound int
	// LogN is log2 of the ring degree. Zero selects DefaultLogN.
	LogN int
}

// DefaultBound is the bound a zero Config selects.
const DefaultBound = 10

// Strategy names accepted by Evaluate.
const (
	StrategyRecurrence = "recurrence"
	StrategyLookup     = "lookup"
)

type tablePair struct {
	indexes Table
	fib     Table
}

// Session owns one complete oblivious-evaluation setup: parameters sized for
// the bound, a fresh key set, the evaluating-party capability and a cache of
// the precomputed tables both strategies draw from. The secret key stays
// inside the session; strategies only ever see the Capability surface.
type Session struct {
	params    Parameters
	scheme    *Scheme
	decryptor *Decryptor
	tables    *tablecache.Cache[tablePair]

	// KeyGenTime and TableTime record the one-off setup costs.
	KeyGenTime time.Duration
	TableTime  time.Duration
}

// Result reports one query evaluated by both strategies.
type Result struct {
	Index      int
	Expected   uint64
	Recurrence uint64
	Lookup     uint64

	EncryptTime    time.Duration
	RecurrenceTime time.Duration
	LookupTime     time.Duration
}

// NewSession generates keys and precomputes the strategy tables for the
// configured bound.
func NewSession(cfg Config) (*Session, error) {
	bound := cfg.Bound
	if bound == 0 {
		bound = DefaultBound
	}

	params, err := NewParametersFromLiteral(ParametersLiteral{LogN: cfg.LogN, Bound: bound})
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	start := time.Now()
	kgen := NewKeyGenerator(params)
	sk, pk := kgen.GenKeyPair()
	evk := kgen.GenEvaluationKey(sk)
	keyGenTime := time.Since(start)

	s := &Session{
		params:     params,
		scheme:     NewScheme(params, pk, evk),
		decryptor:  NewDecryptor(params, sk),
		tables:     tablecache.New[tablePair](),
		KeyGenTime: keyGenTime,
	}

	// Warm the cache so queries never pay the table build.
	start = time.Now()
	if _, err := s.tablePair(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.TableTime = time.Since(start)

	return s, nil
}

// Params returns the parameter set the session runs on.
func (s *Session) Params() Parameters {
	return s.params
}

// tablePair returns the cached tables for the session bound, building and
// caching them on first use.
func (s *Session) tablePair() (tablePair, error) {
	bound := s.params.Bound()

	pair, err := s.tables.Load(bound)
	if err == nil {
		return pair, nil
	}
	if !errors.Is(err, tablecache.ErrNotFound) {
		return tablePair{}, err
	}

	if pair.indexes, err = BuildIndexTable(s.scheme, bound); err != nil {
		return tablePair{}, fmt.Errorf("index table: %w", err)
	}
	if pair.fib, err = BuildFibonacciTable(s.scheme, bound); err != nil {
		return tablePair{}, fmt.Errorf("fibonacci table: %w", err)
	}
	s.tables.Store(bound, pair)
	return pair, nil
}

func (s *Session) strategy(name string) (Strategy, error) {
	pair, err := s.tablePair()
	if err != nil {
		return nil, err
	}
	switch name {
	case StrategyRecurrence:
		return NewRecurrence(pair.indexes)
	case StrategyLookup:
		return NewLookup(pair.indexes, pair.fib)
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

// encryptIndex checks the bound on the plaintext side and encrypts the
// index. Once encrypted nothing in the pipeline can tell it is out of range.
func (s *Session) encryptIndex(n int) (EncryptedValue, error) {
	if n < 0 || n > s.params.Bound() {
		return nil, fmt.Errorf("index %d with bound %d: %w", n, s.params.Bound(), ErrIndexOutOfRange)
	}
	return s.scheme.Encrypt(uint64(n))
}

// Evaluate runs a single strategy over a fresh encryption of n, decrypts the
// result and checks it against the cleartext oracle.
func (s *Session) Evaluate(name string, n int) (uint64, time.Duration, error) {
	strat, err := s.strategy(name)
	if err != nil {
		return 0, 0, fmt.Errorf("evaluate: %w", err)
	}

	index, err := s.encryptIndex(n)
	if err != nil {
		return 0, 0, fmt.Errorf("evaluate: %w", err)
	}

	start := time.Now()
	ct, err := strat.Evaluate(s.scheme, index)
	if err != nil {
		return 0, 0, fmt.Errorf("evaluate: %s: %w", name, err)
	}
	elapsed := time.Since(start)

	v, err := s.decryptor.Decrypt(ct)
	if err != nil {
		return 0, 0, fmt.Errorf("evaluate: decrypt %s: %w", name, err)
	}
	if want := Fibonacci(n, PlaintextModulus); v != want {
		return v, elapsed, fmt.Errorf("evaluate: %s returned %d for F(%d), want %d", name, v, n, want)
	}
	return v, elapsed, nil
}

// Query evaluates F(n) with both strategies, decrypts the results and checks
// them against the cleartext oracle.
func (s *Session) Query(n int) (*Result, error) {
	rec, err := s.strategy(StrategyRecurrence)
	if err != nil {
		return nil, fmt.Errorf("query %d: %w", n, err)
	}
	look, err := s.strategy(StrategyLookup)
	if err != nil {
		return nil, fmt.Errorf("query %d: %w", n, err)
	}

	start := time.Now()
	index, err := s.encryptIndex(n)
	if err != nil {
		return nil, fmt.Errorf("query %d: %w", n, err)
	}
	encryptTime := time.Since(start)

	res := &Result{
		Index:       n,
		Expected:    Fibonacci(n, PlaintextModulus),
		EncryptTime: encryptTime,
	}

	start = time.Now()
	recCt, err := rec.Evaluate(s.scheme, index)
	if err != nil {
		return nil, fmt.Errorf("query %d: %s: %w", n, rec.Name(), err)
	}
	res.RecurrenceTime = time.Since(start)

	start = time.Now()
	lookCt, err := look.Evaluate(s.scheme, index)
	if err != nil {
		return nil, fmt.Errorf("query %d: %s: %w", n, look.Name(), err)
	}
	res.LookupTime = time.Since(start)

	if res.Recurrence, err = s.decryptor.Decrypt(recCt); err != nil {
		return nil, fmt.Errorf("query %d: decrypt %s: %w", n, rec.Name(), err)
	}
	if res.Lookup, err = s.decryptor.Decrypt(lookCt); err != nil {
		return nil, fmt.Errorf("query %d: decrypt %s: %w", n, look.Name(), err)
	}

	if res.Recurrence != res.Expected {
		return res, fmt.Errorf("query %d: %s returned %d, want %d", n, rec.Name(), res.Recurrence, res.Expected)
	}
	if res.Lookup != res.Expected {
		return res, fmt.Errorf("query %d: %s returned %d, want %d", n, look.Name(), res.Lookup, res.Expected)
	}

	return res, nil
}

// TimingSummary condenses repeated query timings.
type TimingSummary struct {
	Runs   int
	Mean   time.Duration
	Median time.Duration
	StdDev time.Duration
}

// Timings aggregates the per-strategy summaries of a repeated run.
type Timings struct {
	Recurrence TimingSummary
	Lookup     TimingSummary
}

// Repeat runs Query(n) runs times, reusing the cached tables, and
// summarizes the per-strategy timings.
func (s *Session) Repeat(n, runs int) (*Timings, error) {
	if runs < 1 {
		return nil, fmt.Errorf("repeat: need at least one run, got %d", runs)
	}

	recDurs := make([]float64, runs)
	lookDurs := make([]float64, runs)
	for i := 0; i < runs; i++ {
		res, err := s.Query(n)
		if err != nil {
			return nil, fmt.Errorf("repeat: run %d: %w", i, err)
		}
		recDurs[i] = float64(res.RecurrenceTime)
		lookDurs[i] = float64(res.LookupTime)
	}

	rec, err := summarize(recDurs)
	if err != nil {
		return nil, fmt.Errorf("repeat: %w", err)
	}
	look, err := summarize(lookDurs)
	if err != nil {
		return nil, fmt.Errorf("repeat: %w", err)
	}
	return &Timings{Recurrence: rec, Lookup: look}, nil
}

func summarize(durs []float64) (TimingSummary, error) {
	mean, err := stats.Mean(durs)
	if err != nil {
		return TimingSummary{}, err
	}
	median, err := stats.Median(durs)
	if err != nil {
		return TimingSummary{}, err
	}
	stddev, err := stats.StandardDeviation(durs)
	if err != nil {
		return TimingSummary{}, err
	}
	return TimingSummary{
		Runs:   len(durs),
		Mean:   time.Duration(mean),
		Median: time.Duration(median),
		StdDev: time.Duration(stddev),
	}, nil
}
