package ports

// ChecksumCache persists prefetched checksums between runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=checksum_cache.go -destination=mocks/mock_checksum_cache.go -package=mocks
type ChecksumCache interface {
	// Load reads the cache stored at path and makes it the write target.
	Load(path string) error
	// Get returns the checksum stored under key.
	Get(key string) (string, bool)
	// Put stores the checksum and persists the cache.
	Put(key, checksum string) error
}
