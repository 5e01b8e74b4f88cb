// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

// Package prompt reads a query index interactively, reprompting until the
// input parses and falls within the bound.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadIndex prompts on w for an index in [0, bound] and reads lines from r
// until one parses as an integer in range. It returns an error only when r
// is exhausted or unreadable; malformed and out-of-range lines trigger a
// reprompt instead.
func ReadIndex(r io.Reader, w io.Writer, bound int) (int, error) {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprintf(w, "Enter a number (0-%d): ", bound)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("read index: %w", err)
			}
			return 0, fmt.Errorf("read index: %w", io.EOF)
		}

		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || n < 0 || n > bound {
			fmt.Fprintf(w, "Invalid input. Please enter a number between 0 and %d.\n", bound)
			continue
		}
		return n, nil
	}
}
