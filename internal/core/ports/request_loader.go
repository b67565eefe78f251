package ports

import "go.trai.ch/nixcrate/internal/core/domain"

// RequestLoader defines the interface for reading resolve requests.
//
//go:generate go run go.uber.org/mock/mockgen -source=request_loader.go -destination=mocks/mock_request_loader.go -package=mocks
type RequestLoader interface {
	// Load decodes and validates the request document at path.
	Load(path string) (*domain.ResolveRequest, error)
}
