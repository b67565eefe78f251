// Package optionality derives, for every dependency edge and feature of a
// resolved build, the condition over root packages and root features under
// which the item is needed.
package optionality

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/nixcrate/internal/core/domain"
	"go.trai.ch/nixcrate/internal/core/ports"
	"go.trai.ch/zerr"
)

// Engine queries a FeatureResolver once per root and once per root feature
// and attributes every enabled item to the selections that enable it.
type Engine struct {
	resolver ports.FeatureResolver
	logger   ports.Logger
}

// NewEngine creates an Engine backed by resolver.
func NewEngine(resolver ports.FeatureResolver, logger ports.Logger) *Engine {
	return &Engine{resolver: resolver, logger: logger}
}

// Result holds the simplified optionality of every item.
type Result struct {
	// Universe resolves every root with all of its features and dev dependencies.
	Universe *domain.Resolution
	Roots    []domain.PackageID
	Packages map[domain.PackageID]*domain.PackageOptionality
}

// Compute resolves the roots of req and returns the simplified optionality
// of every item reachable from them.
func (e *Engine) Compute(req *domain.ResolveRequest) (*Result, error) {
	roots := req.RootIDs()
	if len(roots) == 0 {
		return nil, zerr.Wrap(domain.ErrNoRootPackages, "nothing to compute conditions for")
	}

	packages := domain.NewPackageSet(req.Packages)
	everything := make([]domain.PackageRequest, 0, len(roots))
	for _, root := range roots {
		pkg, ok := packages.Get(root)
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownRoot, "cannot compute conditions"), "root", string(root))
		}
		everything = append(everything, domain.PackageRequest{
			PackageID:          root,
			Features:           AllFeatures(pkg),
			UseDevDependencies: true,
		})
	}

	universe, err := e.resolver.Resolve(req.WithInitial(everything...))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve all root features")
	}

	items := make(map[domain.PackageID]*domain.PackageOptionality)
	visit(items, universe, func(domain.Optionality) {})

	// Reasons are keyed by display name, so roots sharing a name count once.
	names := domain.NewSet[string]()
	for _, root := range roots {
		name := packages.DisplayName(root)
		names.Add(name)

		res, err := e.resolver.Resolve(req.WithInitial(domain.PackageRequest{
			PackageID:          root,
			UseDevDependencies: true,
		}))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to resolve root"), "root", string(root))
		}
		visit(items, res, func(o domain.Optionality) { o.MarkRequiredBy(name) })

		pkg, _ := packages.Get(root)
		for _, feature := range AllFeatures(pkg) {
			e.logger.Debug(fmt.Sprintf("resolving %s/%s", name, feature))
			res, err := e.resolver.Resolve(req.WithInitial(domain.PackageRequest{
				PackageID:          root,
				Features:           []string{feature},
				UseDevDependencies: true,
			}))
			if err != nil {
				err = zerr.With(zerr.Wrap(err, "failed to resolve root feature"), "root", string(root))
				return nil, zerr.With(err, "feature", feature)
			}
			rf := domain.RootFeature{Root: name, Feature: feature}
			visit(items, res, func(o domain.Optionality) { o.MarkActivatedBy(rf) })
		}
	}

	for _, p := range items {
		simplify(p, names.Len())
	}

	e.logger.Debug(fmt.Sprintf("computed conditions for %d packages from %d roots", len(items), len(roots)))
	return &Result{Universe: universe, Roots: roots, Packages: items}, nil
}

// DependencyCondition renders the condition of the edge from id to key.
// Items never seen by any resolution render as false.
func (r *Result) DependencyCondition(id domain.PackageID, key domain.DependencyKey, variable string) domain.Condition {
	if p, ok := r.Packages[id]; ok {
		if o, ok := p.Dependencies[key]; ok {
			return o.Condition(variable)
		}
	}
	return domain.Never{}
}

// FeatureCondition renders the condition of feature on id.
func (r *Result) FeatureCondition(id domain.PackageID, feature, variable string) domain.Condition {
	if p, ok := r.Packages[id]; ok {
		if o, ok := p.Features[feature]; ok {
			return o.Condition(variable)
		}
	}
	return domain.Never{}
}

// AllFeatures lists every feature a package can be asked for: its declared
// features, its optional dependencies and "default", sorted.
func AllFeatures(pkg *domain.Package) []string {
	names := pkg.Manifest.OptionalDependencyNames()
	for name := range pkg.Manifest.Features {
		names.Add(name)
	}
	names.Add("default")
	return names.Sorted(strings.Compare)
}

// visit applies mark to every feature and dependency edge res enables,
// creating items on first sight.
func visit(items map[domain.PackageID]*domain.PackageOptionality, res *domain.Resolution, mark func(domain.Optionality)) {
	itemsOf := func(id domain.PackageID) *domain.PackageOptionality {
		p, ok := items[id]
		if !ok {
			p = domain.NewPackageOptionality()
			items[id] = p
		}
		return p
	}

	for _, id := range slices.Sorted(maps.Keys(res.Features)) {
		p := itemsOf(id)
		for _, feature := range res.Features[id] {
			mark(p.Feature(feature))
		}
	}
	for _, kind := range domain.DepKinds {
		graph := res.ByKind(kind)
		for _, id := range slices.Sorted(maps.Keys(graph)) {
			p := itemsOf(id)
			for _, dep := range graph.Targets(id) {
				mark(p.Dependency(domain.DependencyKey{ID: dep, Kind: kind}))
			}
		}
	}
}
