// Copyright (c) 2026, The Seedtone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache provides a caller-injected memoization decorator for
// the pure color operations. The core packages never hold caches of
// their own; callers that want memoization wrap calls with [Memoize]
// and supply whatever cache policy suits them.
package cache

// Cache is the minimal key-value store [Memoize] decorates with.
// Implementations may evict at will; Memoize only requires that Get
// returns what a previous Add stored, if anything.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Add(key K, value V)
}

// MapCache is an unbounded [Cache] backed by a plain map. It is not
// safe for concurrent use; wrap it or supply a different Cache when
// calls race.
type MapCache[K comparable, V any] map[K]V

func (m MapCache[K, V]) Get(key K) (V, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapCache[K, V]) Add(key K, value V) {
	m[key] = value
}

// Memoize wraps a pure single-argument function with the given
// cache. The function must be referentially transparent: identical
// input always yields an identical result.
func Memoize[K comparable, V any](c Cache[K, V], fn func(K) V) func(K) V {
	return func(key K) V {
		if v, ok := c.Get(key); ok {
			return v
		}
		v := fn(key)
		c.Add(key, v)
		return v
	}
}

// Memoize2 is [Memoize] for two-argument functions, keyed by a
// comparable pair.
func Memoize2[K1, K2 comparable, V any](c Cache[Pair[K1, K2], V], fn func(K1, K2) V) func(K1, K2) V {
	return func(k1 K1, k2 K2) V {
		key := Pair[K1, K2]{k1, k2}
		if v, ok := c.Get(key); ok {
			return v
		}
		v := fn(k1, k2)
		c.Add(key, v)
		return v
	}
}

// Pair is a comparable two-field composite key.
type Pair[A, B comparable] struct {
	First  A
	Second B
}
