// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

// Package tablecache provides in-memory caching of precomputed encrypted
// tables, keyed by the evaluation bound they were built for. Entries live
// for the process lifetime only; ciphertexts are never persisted.
package tablecache

import (
	"errors"
	"sync"
)

// Common errors.
var (
	ErrNotFound = errors.New("no tables cached for this bound")
)

// Cache is a mutex-guarded bound-to-tables map. T is the table bundle type
// of the caller; the cache never inspects it.
type Cache[T any] struct {
	mu      sync.RWMutex
	entries map[int]T
}

// New creates an empty cache.
func New[T any]() *Cache[T] {
	return &Cache[T]{entries: make(map[int]T)}
}

// Load returns the tables cached for bound.
func (c *Cache[T]) Load(bound int) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tables, ok := c.entries[bound]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return tables, nil
}

// Store caches tables for bound, replacing any previous entry.
func (c *Cache[T]) Store(bound int, tables T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[bound] = tables
}

// Len returns the number of cached entries.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
