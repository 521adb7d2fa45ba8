package primehash

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// HashFunc maps a key to a non-negative integer. It must be deterministic for
// the lifetime of a table, the table reduces its result modulo capacity.
type HashFunc[K comparable] func(K) uint64

type options[K comparable] struct {
	hashFunc HashFunc[K]
	onResize func(from, to int)
}

type Option[K comparable] func(o *options[K])

// Override default hash function.
func WithHashFunc[K comparable](f HashFunc[K]) Option[K] {
	return func(o *options[K]) {
		o.hashFunc = f
	}
}

// Registers a callback invoked after every completed resize with the old and
// the new capacity.
func WithResizeHook[K comparable](f func(from, to int)) Option[K] {
	return func(o *options[K]) {
		o.onResize = f
	}
}

func buildOptions[K comparable](opts []Option[K]) options[K] {
	var o options[K]
	for _, opt := range opts {
		opt(&o)
	}

	if o.hashFunc == nil {
		o.hashFunc = MakeDefaultHashFunc[K]()
	}

	return o
}

func MakeDefaultHashFunc[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()

	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// Sums the code points of the key. Anagrams always collide.
func CharSumHash(key string) uint64 {
	var h uint64
	for _, r := range key {
		h += uint64(r)
	}

	return h
}

// Sums the code points of the key, each weighted by its 1-based position.
func WeightedCharSumHash(key string) uint64 {
	var (
		h   uint64
		pos uint64
	)

	for _, r := range key {
		pos++
		h += pos * uint64(r)
	}

	return h
}

func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}
