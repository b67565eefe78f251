package ports

import "go.trai.ch/nixcrate/internal/core/domain"

// FeatureResolver computes the packages, edges and features a request enables.
//
//go:generate go run go.uber.org/mock/mockgen -source=feature_resolver.go -destination=mocks/mock_feature_resolver.go -package=mocks
type FeatureResolver interface {
	Resolve(req *domain.ResolveRequest) (*domain.Resolution, error)
}
