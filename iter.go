package primehash

// Iterator walks the live entries of an OpenMap in slot order.
// It is exhausted once it passes the last slot and can't be rewound.
// Mutating the map while iterating is not supported.
type Iterator[K comparable, V any] struct {
	slots []slot[K, V]
	pos   int
}

// Returns the next live entry, or false once the iterator is exhausted.
func (it *Iterator[K, V]) Next() (K, V, bool) {
	for it.pos < len(it.slots) {
		s := &it.slots[it.pos]
		it.pos++

		if s.live() {
			return s.key, s.value, true
		}
	}

	var (
		k K
		v V
	)

	return k, v, false
}
