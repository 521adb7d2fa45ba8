package primehash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable[K comparable, V any](capacity int, opts ...Option[K]) *table[K, V] {
	var tt table[K, V]
	tt.init(capacity, opts...)

	return &tt
}

func TestTable_init(t *testing.T) {
	tt := newTable[string, int](20)

	require.Len(t, tt.slots, 23)
	require.Zero(t, tt.size)
	require.NotNil(t, tt.hashFunc)
	require.Equal(t, 23, tt.countSlots(slotEmpty))
}

func TestTable_probe(t *testing.T) {
	tt := newTable[string, int](23)

	want := []int{0, 1, 4, 9, 16, 2, 13, 3, 18, 12, 8, 6}
	for i, idx := range want {
		require.Equal(t, idx, tt.probe(0, uint64(i)))
	}

	require.Equal(t, uint64(12), tt.probeLimit())
	require.Equal(t, (5+4)%23, tt.probe(5, 2))
}

func TestTable_put_Collisions(t *testing.T) {
	tt := newTable[string, string](23, WithHashFunc(constHash[string](0)))

	tt.put("A", "foo") // Slot 0
	tt.put("B", "bar") // Slot 1 (via probe)
	tt.put("C", "lol") // Slot 4 (via probe)

	require.True(t, tt.slots[0].holds("A"))
	require.True(t, tt.slots[1].holds("B"))
	require.True(t, tt.slots[4].holds("C"))
	require.Equal(t, 3, tt.size)
}

func TestTable_put_Tombstones(t *testing.T) {
	tt := newTable[string, string](23, WithHashFunc(constHash[string](0)))

	tt.put("A", "foo")
	tt.put("B", "bar")
	tt.put("C", "lol")

	// Delete the "bridge" element
	require.True(t, tt.delete("B"))
	require.Equal(t, slotTombstone, tt.slots[1].state)
	require.Equal(t, 2, tt.size)

	// Verify we can still find "C" even though there's a hole at "B"
	v, ok := tt.get("C")
	require.True(t, ok, "Probe chain broken: could not find 'C' after deleting 'B'")
	require.Equal(t, "lol", v)

	// Overwriting "C" must not land in B's tombstone and leave a stale copy behind.
	tt.put("C", "kek")
	require.Equal(t, 2, tt.size)
	require.Equal(t, slotTombstone, tt.slots[1].state)
	require.True(t, tt.slots[4].holds("C"))

	v, ok = tt.get("C")
	require.True(t, ok)
	require.Equal(t, "kek", v)

	// A new key reuses the tombstone.
	tt.put("D", "new")
	require.Equal(t, 3, tt.size)
	require.True(t, tt.slots[1].holds("D"))
	require.Zero(t, tt.countSlots(slotTombstone))
}

func TestTable_put_Overwrite(t *testing.T) {
	tt := newTable[string, int](23)

	tt.put("foo", 1)
	tt.put("foo", 2)

	v, ok := tt.get("foo")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, tt.size)
	assert.Equal(t, 1, tt.countSlots(slotOccupied))
}

func TestTable_put_GrowsAtHalfLoad(t *testing.T) {
	tt := newTable[int, int](5, WithHashFunc[int](identityHash))

	// 2/5 < 0.5, 3/5 >= 0.5
	for i := range 3 {
		tt.put(i, i)
	}
	require.Len(t, tt.slots, 5)

	tt.put(3, 3)
	require.Len(t, tt.slots, 11)
	require.Equal(t, 4, tt.size)

	for i := range 4 {
		v, ok := tt.get(i)
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestTable_put_FullProbeChain(t *testing.T) {
	// With every key colliding the table still accepts entries up to
	// the load factor, the quadratic sequence reaches enough slots.
	tt := newTable[int, int](23, WithHashFunc(constHash[int](7)))

	for i := range 11 {
		tt.put(i, i)
	}
	require.Len(t, tt.slots, 23)

	for i := range 11 {
		v, ok := tt.get(i)
		require.True(t, ok)
		require.Equal(t, i, v)
	}

	_, ok := tt.get(100)
	require.False(t, ok)
}

func TestTable_find_AllTombstones(t *testing.T) {
	tt := newTable[int, int](7, WithHashFunc(constHash[int](0)))

	tt.put(1, 1)
	tt.put(2, 2)
	tt.put(3, 3)

	// Leave no empty slot on the probe sequence of home 0.
	for i := range 4 {
		tt.slots[tt.probe(0, uint64(i))] = slot[int, int]{state: slotTombstone}
	}
	tt.size = 0

	require.Equal(t, -1, tt.find(1))

	tt.put(9, 9)
	require.True(t, tt.slots[0].holds(9))
	require.Equal(t, 1, tt.size)
}

func TestTable_delete(t *testing.T) {
	tt := newTable[string, int](11)

	require.False(t, tt.delete("foo"))

	tt.put("foo", 1)
	require.True(t, tt.delete("foo"))
	require.False(t, tt.delete("foo"))
	require.Zero(t, tt.size)
	require.Equal(t, 1, tt.countSlots(slotTombstone))
}

func TestTable_resize(t *testing.T) {
	tt := newTable[int, int](11)

	for i := range 5 {
		tt.put(i, i*10)
	}
	require.True(t, tt.delete(0))

	// Smaller than size, declined.
	tt.resize(3)
	require.Len(t, tt.slots, 11)
	require.Equal(t, 1, tt.countSlots(slotTombstone))

	tt.resize(40)
	require.Len(t, tt.slots, 41)
	require.Equal(t, 4, tt.size)
	require.Zero(t, tt.countSlots(slotTombstone))

	for i := 1; i < 5; i++ {
		v, ok := tt.get(i)
		require.True(t, ok)
		require.Equal(t, i*10, v)
	}
}

func TestTable_resize_Prime(t *testing.T) {
	tt := newTable[int, int](11)

	// Already prime capacities are taken as they are.
	tt.resize(2)
	require.Len(t, tt.slots, 2)

	tt.resize(0)
	require.Len(t, tt.slots, 3)

	tt.resize(-1)
	require.Len(t, tt.slots, 3)
}

func TestTable_reset(t *testing.T) {
	tt := newTable[int, int](11)

	for i := range 5 {
		tt.put(i, i)
	}
	tt.delete(1)
	tt.reset()

	require.Zero(t, tt.size)
	require.Len(t, tt.slots, 11)
	require.Equal(t, 11, tt.countSlots(slotEmpty))
}
