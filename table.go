package primehash

// The open addressing table doubles before an insert once it's half full.
// Together with a prime capacity this guarantees quadratic probing always
// reaches a free slot.
const openMaxLoad = 0.5

type table[K comparable, V any] struct {
	slots []slot[K, V]
	size  int

	hashFunc HashFunc[K]
	onResize func(from, to int)

	emptyV V
}

func (t *table[K, V]) init(capacity int, opts ...Option[K]) {
	o := buildOptions(opts)

	t.hashFunc = o.hashFunc
	t.onResize = o.onResize
	t.slots = make([]slot[K, V], NextPrime(capacity))
}

func (t *table[K, V]) home(key K) uint64 {
	return t.hashFunc(key) % uint64(len(t.slots))
}

// Returns the i-th index of the quadratic probe sequence starting at home.
func (t *table[K, V]) probe(home, i uint64) int {
	return int((home + i*i) % uint64(len(t.slots)))
}

// For a prime capacity n, i in [0, n/2] covers every distinct position the
// quadratic sequence can reach. Past that it only revisits slots.
func (t *table[K, V]) probeLimit() uint64 {
	return uint64(len(t.slots))/2 + 1
}

func (t *table[K, V]) load() float64 {
	return float64(t.size) / float64(len(t.slots))
}

// Returns the index of the live slot holding key, or -1.
func (t *table[K, V]) find(key K) int {
	home := t.home(key)

	for i, limit := uint64(0), t.probeLimit(); i < limit; i++ {
		idx := t.probe(home, i)
		s := &t.slots[idx]

		if s.state == slotEmpty {
			return -1
		}

		if s.holds(key) {
			return idx
		}
	}

	return -1
}

func (t *table[K, V]) get(key K) (V, bool) {
	idx := t.find(key)
	if idx < 0 {
		return t.emptyV, false
	}

	return t.slots[idx].value, true
}

func (t *table[K, V]) put(key K, value V) {
	if t.load() >= openMaxLoad {
		t.resize(2 * len(t.slots))
	}

	var (
		home   = t.home(key)
		target = -1
	)

	for i, limit := uint64(0), t.probeLimit(); i < limit; i++ {
		idx := t.probe(home, i)
		s := &t.slots[idx]

		// Overwrite in place, the size doesn't change.
		if s.holds(key) {
			s.value = value
			return
		}

		// Cache first reusable slot, but keep walking: a live copy of the
		// key may still sit past a tombstone.
		if target < 0 && !s.live() {
			target = idx
		}

		if s.state == slotEmpty {
			break
		}
	}

	if target < 0 {
		// Every reachable slot is live. The load factor rules this out,
		// but growing is the only way out if it ever happens.
		t.resize(2 * len(t.slots))
		t.put(key, value)

		return
	}

	t.slots[target] = slot[K, V]{state: slotOccupied, key: key, value: value}
	t.size++
}

func (t *table[K, V]) delete(key K) bool {
	idx := t.find(key)
	if idx < 0 {
		return false
	}

	// Mark as tombstone rather than empty to preserve the probe chain.
	t.slots[idx] = slot[K, V]{state: slotTombstone}
	t.size--

	return true
}

func (t *table[K, V]) reset() {
	clear(t.slots)
	t.size = 0
}

// Rebuilds the table with the given capacity, rounded up to a prime, and
// reinserts every live entry. Declined if the entries wouldn't fit.
func (t *table[K, V]) resize(capacity int) {
	if capacity < t.size {
		return
	}

	pairs := t.pairs()

	if !IsPrime(capacity) {
		capacity = NextPrime(capacity)
	}

	from := len(t.slots)
	t.slots = make([]slot[K, V], capacity)
	t.size = 0

	for _, p := range pairs {
		t.put(p.Key, p.Value)
	}

	if t.onResize != nil {
		t.onResize(from, len(t.slots))
	}
}

func (t *table[K, V]) pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, t.size)
	for i := range t.slots {
		if s := &t.slots[i]; s.live() {
			pairs = append(pairs, Pair[K, V]{Key: s.key, Value: s.value})
		}
	}

	return pairs
}

func (t *table[K, V]) countSlots(state slotState) int {
	var n int
	for i := range t.slots {
		if t.slots[i].state == state {
			n++
		}
	}

	return n
}
