package primehash

type node[K comparable, V any] struct {
	key   K
	value V
	next  *node[K, V]
}

// bucket is a singly linked list of entries hashed to the same index.
// It doesn't check for duplicate keys, ChainMap does.
type bucket[K comparable, V any] struct {
	head   *node[K, V]
	length int
}

// Inserts a new node at the head of the list.
func (b *bucket[K, V]) insert(key K, value V) {
	b.head = &node[K, V]{key: key, value: value, next: b.head}
	b.length++
}

func (b *bucket[K, V]) find(key K) *node[K, V] {
	for n := b.head; n != nil; n = n.next {
		if n.key == key {
			return n
		}
	}

	return nil
}

// Unlinks the first node holding key. Returns false if there's none.
func (b *bucket[K, V]) remove(key K) bool {
	for link := &b.head; *link != nil; link = &(*link).next {
		if (*link).key == key {
			*link = (*link).next
			b.length--

			return true
		}
	}

	return false
}
