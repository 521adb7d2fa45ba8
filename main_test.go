package primehash

import "strconv"

// Sends every key to the same home slot.
func constHash[K comparable](h uint64) HashFunc[K] {
	return func(K) uint64 {
		return h
	}
}

func identityHash(k int) uint64 {
	return uint64(k)
}

func genKeys[K comparable](start, end int) []K {
	keys := make([]K, 0, end-start)
	for i := start; i < end; i++ {
		var k any
		switch any(*new(K)).(type) {
		case int:
			k = i
		case uint64:
			k = uint64(i)
		case string:
			k = "key" + strconv.Itoa(i)
		default:
			panic("not reached")
		}

		keys = append(keys, k.(K))
	}

	return keys
}
