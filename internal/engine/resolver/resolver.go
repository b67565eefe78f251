// Package resolver computes which packages, dependency edges and features a
// set of initial requests enables on the build and host platforms.
package resolver

import (
	"go.trai.ch/nixcrate/internal/core/domain"
	"go.trai.ch/nixcrate/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FeatureResolver = (*Resolver)(nil)

// Resolver runs the activation worklist to a fixpoint.
type Resolver struct {
	logger ports.Logger
}

// New creates a Resolver.
func New(logger ports.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve enables every initial request as a host package and follows
// dependency edges, feature implications and target blocks until no request
// produces new state. Packages or dependency targets missing from the request
// are skipped.
func (r *Resolver) Resolve(req *domain.ResolveRequest) (*domain.Resolution, error) {
	if req == nil {
		return nil, zerr.Wrap(domain.ErrInvalidRequest, "resolve request is nil")
	}

	s := newState(req, r.logger)
	for _, initial := range req.Initial {
		s.push(enablePackage{
			id:     initial.PackageID,
			role:   domain.RoleHost,
			useDev: initial.UseDevDependencies,
		})
		for _, feature := range initial.Features {
			s.push(enableFeature{
				id:      initial.PackageID,
				role:    domain.RoleHost,
				feature: feature,
			})
		}
	}

	s.run()
	return s.resolution(), nil
}
