package fs

import "github.com/cespare/xxhash/v2"

// ContentHash computes the XXHash of data.
func ContentHash(data []byte) uint64 {
	return xxhash.Sum64(data)
}
