// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

// Command oblivfib evaluates Fibonacci numbers over encrypted indices and
// reports what each strategy cost.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/luxfi/oblivfib"
	"github.com/luxfi/oblivfib/internal/prompt"
)

var (
	flagBound      int
	flagLogN       int
	flagIndex      int
	flagRepeat     int
	flagStrategy   string
	flagCPUProfile string
	flagMemProfile string
)

func main() {
	root := &cobra.Command{
		Use:   "oblivfib",
		Short: "Oblivious Fibonacci evaluation over homomorphic encryption",
		Long: `oblivfib encrypts a query index under BGV, evaluates F(index) with two
oblivious strategies (the iterative recurrence and a precomputed table
lookup), decrypts the results and checks them against a cleartext oracle.

The evaluating side never sees the index: for a fixed bound every query
performs the identical sequence of homomorphic operations.`,
		RunE: run,
	}

	root.Flags().IntVar(&flagBound, "bound", oblivfib.DefaultBound, fmt.Sprintf("largest query index, at most %d", oblivfib.MaxBound))
	root.Flags().IntVar(&flagLogN, "logn", 0, "log2 of the ring degree (0 = default)")
	root.Flags().IntVar(&flagIndex, "index", -1, "query index; negative prompts on stdin")
	root.Flags().IntVar(&flagRepeat, "repeat", 0, "re-run the query this many times and print timing statistics")
	root.Flags().StringVar(&flagStrategy, "strategy", "both",
		fmt.Sprintf("evaluation strategy: %s, %s or both", oblivfib.StrategyRecurrence, oblivfib.StrategyLookup))
	root.Flags().StringVar(&flagCPUProfile, "cpuprofile", "", "write a CPU profile to this file")
	root.Flags().StringVar(&flagMemProfile, "memprofile", "", "write a heap profile to this file")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log.SetFlags(0)

	profiler := oblivfib.NewProfiler(flagCPUProfile, flagMemProfile)
	if err := profiler.Start(); err != nil {
		return err
	}
	defer func() {
		if err := profiler.Stop(); err != nil {
			log.Printf("profiler: %v", err)
		}
	}()

	log.Printf("generating keys and tables (bound %d)...", flagBound)
	session, err := oblivfib.NewSession(oblivfib.Config{Bound: flagBound, LogN: flagLogN})
	if err != nil {
		return err
	}
	log.Printf("keygen %v, tables %v", session.KeyGenTime, session.TableTime)

	n := flagIndex
	if n < 0 {
		if n, err = prompt.ReadIndex(os.Stdin, os.Stdout, flagBound); err != nil {
			return err
		}
	}

	if flagStrategy != "both" {
		v, elapsed, err := session.Evaluate(flagStrategy, n)
		if err != nil {
			return err
		}
		fmt.Printf("F(%d) = %d (%s, %v)\n", n, v, flagStrategy, elapsed)
		return nil
	}

	res, err := session.Query(n)
	if err != nil {
		return err
	}

	fmt.Printf("F(%d) = %d\n", res.Index, res.Expected)
	fmt.Printf("  recurrence: %d in %v\n", res.Recurrence, res.RecurrenceTime)
	fmt.Printf("  lookup:     %d in %v\n", res.Lookup, res.LookupTime)

	if flagRepeat > 0 {
		log.Printf("repeating query %d times...", flagRepeat)
		t, err := session.Repeat(n, flagRepeat)
		if err != nil {
			return err
		}
		fmt.Printf("recurrence: mean %v, median %v, stddev %v over %d runs\n",
			t.Recurrence.Mean, t.Recurrence.Median, t.Recurrence.StdDev, t.Recurrence.Runs)
		fmt.Printf("lookup:     mean %v, median %v, stddev %v over %d runs\n",
			t.Lookup.Mean, t.Lookup.Median, t.Lookup.StdDev, t.Lookup.Runs)
	}

	return nil
}
