package primehash

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	// A slot that held an entry which was removed. It keeps probe chains
	// intact until the next rehash.
	slotTombstone
)

// slot is one bucket of the open addressing table.
// key and value are meaningful only while the slot is occupied.
type slot[K comparable, V any] struct {
	state slotState
	key   K
	value V
}

func (s *slot[K, V]) live() bool {
	return s.state == slotOccupied
}

func (s *slot[K, V]) holds(key K) bool {
	return s.state == slotOccupied && s.key == key
}

// Pair is a key-value pair extracted from a table.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}
