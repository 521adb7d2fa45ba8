package primehash

import "iter"

// OpenMap is a hash map resolving collisions with open addressing and
// quadratic probing over a prime-sized slot array.
// Removed entries leave tombstones behind, which are dropped on the next
// resize or by Compact. It's not safe for concurrent use.
type OpenMap[K comparable, V any] struct {
	table[K, V]
}

// Returns a new open addressing map. The capacity is rounded up to the next prime.
func NewOpen[K comparable, V any](capacity int, opts ...Option[K]) *OpenMap[K, V] {
	var m OpenMap[K, V]
	m.init(capacity, opts...)

	return &m
}

// Puts a key in the map, replacing the value of an existing key.
// The table doubles first if it's at least half full.
func (m *OpenMap[K, V]) Put(key K, value V) {
	m.put(key, value)
}

func (m *OpenMap[K, V]) Get(key K) (V, bool) {
	return m.get(key)
}

func (m *OpenMap[K, V]) ContainsKey(key K) bool {
	return m.find(key) >= 0
}

// Removes a key from the map. Absent keys are ignored.
func (m *OpenMap[K, V]) Remove(key K) {
	m.delete(key)
}

// Removes every entry, keeping the capacity.
func (m *OpenMap[K, V]) Clear() {
	m.reset()
}

// Rehashes the map into the next prime capacity >= capacity.
// Nothing happens if capacity is less than the current size.
func (m *OpenMap[K, V]) ResizeTable(capacity int) {
	m.resize(capacity)
}

// Rehashes the map in place, dropping all tombstones.
func (m *OpenMap[K, V]) Compact() {
	m.resize(len(m.slots))
}

func (m *OpenMap[K, V]) Size() int {
	return m.size
}

func (m *OpenMap[K, V]) Capacity() int {
	return len(m.slots)
}

func (m *OpenMap[K, V]) TableLoad() float64 {
	return m.load()
}

// Returns the number of slots not holding a live entry, tombstones included.
func (m *OpenMap[K, V]) EmptyBuckets() int {
	return len(m.slots) - m.size
}

// Returns all live entries in slot order.
func (m *OpenMap[K, V]) KeysAndValues() []Pair[K, V] {
	return m.pairs()
}

// Returns a one-shot cursor over the live entries in slot order.
func (m *OpenMap[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{slots: m.slots}
}

// Returns an iterator over the live entries in slot order.
func (m *OpenMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.slots {
			s := &m.slots[i]
			if s.live() && !yield(s.key, s.value) {
				return
			}
		}
	}
}

func (m *OpenMap[K, V]) Stats() Stats {
	return Stats{
		Size:         m.size,
		Capacity:     len(m.slots),
		Load:         m.load(),
		EmptyBuckets: m.EmptyBuckets(),
		Tombstones:   m.countSlots(slotTombstone),
	}
}
