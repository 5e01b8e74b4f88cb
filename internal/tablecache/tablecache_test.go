// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package tablecache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCacheLoadStore(t *testing.T) {
	c := New[[]uint64]()

	_, err := c.Load(10)
	require.ErrorIs(t, err, ErrNotFound)

	c.Store(10, []uint64{0, 1, 1, 2})
	got, err := c.Load(10)
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 1, 1, 2}, got)
	require.Equal(t, 1, c.Len())

	// Replaces.
	c.Store(10, []uint64{5})
	got, err = c.Load(10)
	require.NoError(t, err)
	require.Equal(t, []uint64{5}, got)
	require.Equal(t, 1, c.Len())
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int]()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Store(i, i*i)
			v, err := c.Load(i)
			require.NoError(t, err)
			require.Equal(t, i*i, v)
		}()
	}
	wg.Wait()
	require.Equal(t, 16, c.Len())
}
