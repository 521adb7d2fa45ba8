package primehash

import "iter"

// The chained table doubles before an insert once it holds as many entries
// as buckets.
const chainMaxLoad = 1.0

// ChainMap is a hash map resolving collisions with separate chaining: every
// bucket of a prime-sized array is a singly linked list.
// It's not safe for concurrent use.
type ChainMap[K comparable, V any] struct {
	buckets []bucket[K, V]
	size    int

	hashFunc HashFunc[K]
	onResize func(from, to int)

	emptyV V
}

// Returns a new chained map. The capacity is rounded up to the next prime.
func NewChain[K comparable, V any](capacity int, opts ...Option[K]) *ChainMap[K, V] {
	o := buildOptions(opts)

	return &ChainMap[K, V]{
		buckets:  make([]bucket[K, V], NextPrime(capacity)),
		hashFunc: o.hashFunc,
		onResize: o.onResize,
	}
}

func (m *ChainMap[K, V]) bucketOf(key K) *bucket[K, V] {
	return &m.buckets[m.hashFunc(key)%uint64(len(m.buckets))]
}

// Puts a key in the map, replacing the value of an existing key.
// The replaced entry is unlinked and the new one goes to the head of its
// bucket. The table doubles first once the load factor reaches 1.
func (m *ChainMap[K, V]) Put(key K, value V) {
	if m.TableLoad() >= chainMaxLoad {
		m.ResizeTable(2 * len(m.buckets))
	}

	b := m.bucketOf(key)
	if b.remove(key) {
		m.size--
	}

	b.insert(key, value)
	m.size++
}

func (m *ChainMap[K, V]) Get(key K) (V, bool) {
	n := m.bucketOf(key).find(key)
	if n == nil {
		return m.emptyV, false
	}

	return n.value, true
}

func (m *ChainMap[K, V]) ContainsKey(key K) bool {
	return m.bucketOf(key).find(key) != nil
}

// Removes a key from the map. Absent keys are ignored.
func (m *ChainMap[K, V]) Remove(key K) {
	if m.bucketOf(key).remove(key) {
		m.size--
	}
}

// Removes every entry, keeping the capacity.
func (m *ChainMap[K, V]) Clear() {
	m.buckets = make([]bucket[K, V], len(m.buckets))
	m.size = 0
}

// Rehashes the map into the next prime capacity >= capacity.
// Nothing happens if capacity is less than 1. The map keeps growing while
// entries are reinserted if the new capacity is too small to hold them.
func (m *ChainMap[K, V]) ResizeTable(capacity int) {
	if capacity < 1 {
		return
	}

	pairs := m.KeysAndValues()

	if !IsPrime(capacity) {
		capacity = NextPrime(capacity)
	}

	from := len(m.buckets)
	m.buckets = make([]bucket[K, V], capacity)
	m.size = 0

	for _, p := range pairs {
		m.Put(p.Key, p.Value)
	}

	if m.onResize != nil {
		m.onResize(from, len(m.buckets))
	}
}

func (m *ChainMap[K, V]) Size() int {
	return m.size
}

func (m *ChainMap[K, V]) Capacity() int {
	return len(m.buckets)
}

func (m *ChainMap[K, V]) TableLoad() float64 {
	return float64(m.size) / float64(len(m.buckets))
}

// Returns the number of buckets with an empty list.
func (m *ChainMap[K, V]) EmptyBuckets() int {
	var n int
	for i := range m.buckets {
		if m.buckets[i].length == 0 {
			n++
		}
	}

	return n
}

// Returns all entries in bucket order, then list order within a bucket.
func (m *ChainMap[K, V]) KeysAndValues() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, m.size)
	for k, v := range m.All() {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}

	return pairs
}

// Returns an iterator over all entries in bucket order, then list order.
func (m *ChainMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.buckets {
			for n := m.buckets[i].head; n != nil; n = n.next {
				if !yield(n.key, n.value) {
					return
				}
			}
		}
	}
}

func (m *ChainMap[K, V]) Stats() Stats {
	stats := Stats{
		Size:         m.size,
		Capacity:     len(m.buckets),
		Load:         m.TableLoad(),
		EmptyBuckets: m.EmptyBuckets(),
	}

	for i := range m.buckets {
		stats.LongestChain = max(stats.LongestChain, m.buckets[i].length)
	}

	return stats
}
