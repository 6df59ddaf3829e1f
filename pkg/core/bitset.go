package core

// bitset is a fixed-capacity visited-marker set for node IDs.
// One bit per node keeps traversal bookkeeping at nodeCount/8 bytes,
// which matters when the engine targets graphs with millions of nodes.
type bitset struct {
	buckets []uint64
}

func newBitset(capacity int) *bitset {
	numBuckets := (capacity >> 6) + 1 // >> 6 == / 64
	return &bitset{
		buckets: make([]uint64, numBuckets),
	}
}

func (bs *bitset) add(n int32) {
	// n & 63 == n % 64
	bs.buckets[n>>6] |= 1 << (uint32(n) & 63)
}

func (bs *bitset) has(n int32) bool {
	return (bs.buckets[n>>6] & (1 << (uint32(n) & 63))) != 0
}
