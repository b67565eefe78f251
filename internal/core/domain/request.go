package domain

// PackageRequest asks for a package with a feature selection. The package
// enters resolution as a host package.
type PackageRequest struct {
	PackageID          PackageID `json:"package-id" validate:"required"`
	Features           []string  `json:"features"`
	UseDevDependencies bool      `json:"use-dev-dependencies"`
}

// ResolveRequest is the complete input to a resolution.
type ResolveRequest struct {
	BuildPlatform RawPlatform           `json:"buildPlatform"`
	HostPlatform  RawPlatform           `json:"hostPlatform"`
	Packages      map[PackageID]Package `json:"packages" validate:"dive"`
	Initial       []PackageRequest      `json:"initial" validate:"dive"`
	// Roots names the workspace members conditions are computed for. When
	// empty, the packages of the initial requests are used.
	Roots []PackageID `json:"roots,omitempty"`
}

// RootIDs returns the distinct explicit roots, or the distinct initial
// packages, in request order.
func (r *ResolveRequest) RootIDs() []PackageID {
	ids := r.Roots
	if len(ids) == 0 {
		ids = make([]PackageID, 0, len(r.Initial))
		for _, req := range r.Initial {
			ids = append(ids, req.PackageID)
		}
	}
	seen := NewSet[PackageID]()
	var roots []PackageID
	for _, id := range ids {
		if seen.Add(id) {
			roots = append(roots, id)
		}
	}
	return roots
}

// WithInitial returns a shallow copy of r resolving the given requests instead.
func (r *ResolveRequest) WithInitial(initial ...PackageRequest) *ResolveRequest {
	clone := *r
	clone.Initial = initial
	return &clone
}

// DependencyGraph maps a package to its dependencies keyed by platform config.
type DependencyGraph map[PackageID]map[string][]PackageID

// Targets returns every dependency of id across all configs, sorted and distinct.
func (g DependencyGraph) Targets(id PackageID) []PackageID {
	seen := NewSet[PackageID]()
	for _, deps := range g[id] {
		for _, dep := range deps {
			seen.Add(dep)
		}
	}
	return seen.Sorted(ComparePackageIDs)
}

// Resolution is the outcome of a resolve request.
type Resolution struct {
	Dependencies      DependencyGraph        `json:"dependencies"`
	BuildDependencies DependencyGraph        `json:"buildDependencies"`
	DevDependencies   DependencyGraph        `json:"devDependencies"`
	Features          map[PackageID][]string `json:"features"`
}

// ByKind returns the graph for kind.
func (r *Resolution) ByKind(kind DepKind) DependencyGraph {
	switch kind {
	case DepKindBuild:
		return r.BuildDependencies
	case DepKindDev:
		return r.DevDependencies
	default:
		return r.Dependencies
	}
}

// PackageIDs returns every package the resolution touched, sorted.
func (r *Resolution) PackageIDs() []PackageID {
	seen := NewSet[PackageID]()
	for id := range r.Features {
		seen.Add(id)
	}
	for _, kind := range DepKinds {
		graph := r.ByKind(kind)
		for id := range graph {
			seen.Add(id)
			for _, dep := range graph.Targets(id) {
				seen.Add(dep)
			}
		}
	}
	return seen.Sorted(ComparePackageIDs)
}

// EnabledFeatures returns the enabled features of id as a set.
func (r *Resolution) EnabledFeatures(id PackageID) Set[string] {
	return NewSet(r.Features[id]...)
}
