package ports

import "context"

// Prefetcher computes content checksums of remote sources.
//
//go:generate go run go.uber.org/mock/mockgen -source=prefetcher.go -destination=mocks/mock_prefetcher.go -package=mocks
type Prefetcher interface {
	// Prefetch returns the SRI sha256 of the git tree at url and rev.
	Prefetch(ctx context.Context, url, rev string) (string, error)
}
