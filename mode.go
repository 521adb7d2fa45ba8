package primehash

// Initial capacity of the frequency table used by FindMode.
const modeTableCapacity = 11

// Returns the most frequent items and their frequency, counting with a
// ChainMap. Ties are reported in the order their count reached the maximum,
// not in input or sorted order. An empty input yields (nil, 0).
func FindMode[K comparable](items []K, opts ...Option[K]) ([]K, int) {
	var (
		counts = NewChain[K, int](modeTableCapacity, opts...)
		mode   []K
		freq   int
	)

	for _, item := range items {
		count, _ := counts.Get(item)
		count++
		counts.Put(item, count)

		switch {
		case count > freq:
			mode = append(mode[:0], item)
			freq = count
		case count == freq:
			mode = append(mode, item)
		}
	}

	return mode, freq
}
