package primehash

type Stats struct {
	Size         int
	Capacity     int
	Load         float64
	EmptyBuckets int

	// Open addressing only.
	Tombstones int

	// Chaining only.
	LongestChain int
}
