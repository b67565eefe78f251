package resolver

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/nixcrate/internal/core/cfg"
	"go.trai.ch/nixcrate/internal/core/domain"
	"go.trai.ch/nixcrate/internal/core/ports"
)

// request is a unit of work on the queue.
type request interface {
	apply(s *state)
}

type enablePackage struct {
	id     domain.PackageID
	role   domain.Role
	useDev bool
}

type enableFeature struct {
	id      domain.PackageID
	role    domain.Role
	feature string
}

func (r enablePackage) apply(s *state) { s.enablePackage(r) }
func (r enableFeature) apply(s *state) { s.enableFeature(r) }

// dependents holds the dependency targets of one package, split by role.
type dependents struct {
	host  domain.Set[domain.PackageID]
	build domain.Set[domain.PackageID]
}

func (d *dependents) add(role domain.Role, id domain.PackageID) bool {
	if role == domain.RoleBuild {
		return d.build.Add(id)
	}
	return d.host.Add(id)
}

type state struct {
	packages  *domain.PackageSet
	platforms [2]*domain.Platform
	logger    ports.Logger

	queue        []request
	seenPackages domain.Set[enablePackage]
	seenFeatures domain.Set[enableFeature]

	edges    [3]map[domain.PackageID]*dependents
	features map[domain.PackageID]domain.Set[string]

	predicates map[string]cfg.Expr
}

func newState(req *domain.ResolveRequest, logger ports.Logger) *state {
	s := &state{
		packages:     domain.NewPackageSet(req.Packages),
		logger:       logger,
		seenPackages: domain.NewSet[enablePackage](),
		seenFeatures: domain.NewSet[enableFeature](),
		features:     make(map[domain.PackageID]domain.Set[string]),
		predicates:   make(map[string]cfg.Expr),
	}
	s.platforms[domain.RoleHost] = domain.NewPlatform(req.HostPlatform)
	s.platforms[domain.RoleBuild] = domain.NewPlatform(req.BuildPlatform)
	for kind := range s.edges {
		s.edges[kind] = make(map[domain.PackageID]*dependents)
	}
	return s
}

// push enqueues r unless an identical request was seen before.
func (s *state) push(r request) {
	switch req := r.(type) {
	case enablePackage:
		if !s.seenPackages.Add(req) {
			return
		}
	case enableFeature:
		if !s.seenFeatures.Add(req) {
			return
		}
	}
	s.queue = append(s.queue, r)
}

func (s *state) run() {
	for len(s.queue) > 0 {
		r := s.queue[0]
		s.queue = s.queue[1:]
		r.apply(s)
	}
}

func (s *state) enablePackage(req enablePackage) {
	pkg, ok := s.packages.Get(req.id)
	if !ok {
		s.logger.Debug(fmt.Sprintf("skipping unknown package %s", req.id))
		return
	}
	s.enabledFeatures(req.id)

	for _, kind := range domain.DepKinds {
		if kind != domain.DepKindDev || req.useDev {
			s.dependentsOf(kind, req.id)
		}
	}

	s.enableDeps(req, pkg.Manifest.TargetDeps)
	for _, key := range slices.Sorted(maps.Keys(pkg.Manifest.Target)) {
		if s.targetApplies(req.id, req.role, key) {
			s.enableDeps(req, pkg.Manifest.Target[key])
		}
	}
}

// enableDeps enables the non-optional dependencies of one manifest section group.
func (s *state) enableDeps(req enablePackage, deps domain.TargetDeps) {
	for _, kind := range domain.DepKinds {
		if kind == domain.DepKindDev && !req.useDev {
			continue
		}
		specs := deps.ByKind(kind)
		for _, name := range slices.Sorted(maps.Keys(specs)) {
			spec := specs[name]
			if spec.Optional {
				continue
			}
			dep, ok := s.lookup(req.id, name)
			if !ok {
				continue
			}
			role := s.effectiveRole(kind, req.role, dep)
			s.addEdge(kind, req.id, role, dep)
			s.requestFeatures(dep, role, spec, "")
		}
	}
}

func (s *state) enableFeature(req enableFeature) {
	pkg, ok := s.packages.Get(req.id)
	if !ok {
		s.logger.Debug(fmt.Sprintf("skipping feature %q of unknown package %s", req.feature, req.id))
		return
	}

	depName, depFeature, isDep := s.splitFeature(req.id, req.feature)
	recorded := req.feature
	if isDep {
		recorded = depName
	}
	s.enabledFeatures(req.id).Add(recorded)

	for _, next := range pkg.Manifest.Features[req.feature] {
		s.push(enableFeature{id: req.id, role: req.role, feature: next})
	}

	if !isDep {
		return
	}
	dep, ok := s.lookup(req.id, depName)
	if !ok {
		return
	}

	s.enableOptional(req, pkg.Manifest.TargetDeps, depName, dep, depFeature)
	for _, key := range slices.Sorted(maps.Keys(pkg.Manifest.Target)) {
		if s.targetApplies(req.id, req.role, key) {
			s.enableOptional(req, pkg.Manifest.Target[key], depName, dep, depFeature)
		}
	}
}

// enableOptional activates the dependency declared as name in deps for the
// requesting role and for the build role.
func (s *state) enableOptional(req enableFeature, deps domain.TargetDeps, name string, dep domain.PackageID, depFeature string) {
	for _, kind := range []domain.DepKind{domain.DepKindNormal, domain.DepKindBuild} {
		spec, ok := deps.ByKind(kind)[name]
		if !ok {
			continue
		}
		roles := []domain.Role{
			s.effectiveRole(kind, req.role, dep),
			s.effectiveRole(kind, req.role.ToBuild(), dep),
		}
		for _, role := range slices.Compact(roles) {
			s.addEdge(kind, req.id, role, dep)
			s.requestFeatures(dep, role, spec, depFeature)
		}
	}
}

// splitFeature reports whether feature names a dependency of id, either as
// "dep/feature" or as the bare local name of a dependency.
func (s *state) splitFeature(id domain.PackageID, feature string) (string, string, bool) {
	if i := strings.IndexByte(feature, '/'); i > 0 && i < len(feature)-1 {
		return feature[:i], feature[i+1:], true
	}
	if _, ok := s.packages.Lookup(id, feature); ok {
		return feature, "", true
	}
	return "", "", false
}

func (s *state) addEdge(kind domain.DepKind, from domain.PackageID, role domain.Role, to domain.PackageID) {
	if s.dependentsOf(kind, from).add(role, to) {
		s.push(enablePackage{id: to, role: role})
	}
}

func (s *state) requestFeatures(dep domain.PackageID, role domain.Role, spec domain.DepSpec, extra string) {
	if spec.DefaultFeatures {
		s.push(enableFeature{id: dep, role: role, feature: "default"})
	}
	for _, feature := range spec.Features {
		s.push(enableFeature{id: dep, role: role, feature: feature})
	}
	if extra != "" {
		s.push(enableFeature{id: dep, role: role, feature: extra})
	}
}

// effectiveRole shifts build dependencies and code generators to the build role.
func (s *state) effectiveRole(kind domain.DepKind, role domain.Role, dep domain.PackageID) domain.Role {
	if kind == domain.DepKindBuild || s.packages.IsCodeGenerator(dep) {
		return role.ToBuild()
	}
	return role
}

func (s *state) lookup(owner domain.PackageID, name string) (domain.PackageID, bool) {
	dep, ok := s.packages.Lookup(owner, name)
	if !ok || !s.packages.Has(dep) {
		return "", false
	}
	return dep, true
}

// targetApplies evaluates a target block key for the platform of role. The
// key matches either the platform's literal config or a cfg predicate, which
// sees the package's currently enabled features.
func (s *state) targetApplies(id domain.PackageID, role domain.Role, key string) bool {
	platform := s.platforms[role]
	if key == platform.Config {
		return true
	}
	expr, ok := s.predicate(key)
	if !ok {
		return false
	}
	return cfg.Eval(expr, cfg.Target{Platform: platform, Features: s.features[id]})
}

func (s *state) predicate(key string) (cfg.Expr, bool) {
	if expr, ok := s.predicates[key]; ok {
		return expr, expr != nil
	}
	expr, err := cfg.ParseTarget(key)
	if err != nil {
		s.logger.Debug(fmt.Sprintf("ignoring target block: %v", err))
		s.predicates[key] = nil
		return nil, false
	}
	s.predicates[key] = expr
	return expr, true
}

func (s *state) dependentsOf(kind domain.DepKind, id domain.PackageID) *dependents {
	d, ok := s.edges[kind][id]
	if !ok {
		d = &dependents{
			host:  domain.NewSet[domain.PackageID](),
			build: domain.NewSet[domain.PackageID](),
		}
		s.edges[kind][id] = d
	}
	return d
}

func (s *state) enabledFeatures(id domain.PackageID) domain.Set[string] {
	set, ok := s.features[id]
	if !ok {
		set = domain.NewSet[string]()
		s.features[id] = set
	}
	return set
}

func (s *state) resolution() *domain.Resolution {
	res := &domain.Resolution{
		Dependencies:      s.graph(domain.DepKindNormal),
		BuildDependencies: s.graph(domain.DepKindBuild),
		DevDependencies:   s.graph(domain.DepKindDev),
		Features:          make(map[domain.PackageID][]string, len(s.features)),
	}
	for id, set := range s.features {
		res.Features[id] = set.Sorted(strings.Compare)
	}
	return res
}

// graph keys each package's targets by platform config. When build and host
// share a config their targets are merged.
func (s *state) graph(kind domain.DepKind) domain.DependencyGraph {
	build := s.platforms[domain.RoleBuild].Config
	host := s.platforms[domain.RoleHost].Config

	out := make(domain.DependencyGraph, len(s.edges[kind]))
	for id, d := range s.edges[kind] {
		if build == host {
			merged := maps.Clone(d.build)
			maps.Copy(merged, d.host)
			out[id] = map[string][]domain.PackageID{host: merged.Sorted(domain.ComparePackageIDs)}
			continue
		}
		out[id] = map[string][]domain.PackageID{
			build: d.build.Sorted(domain.ComparePackageIDs),
			host:  d.host.Sorted(domain.ComparePackageIDs),
		}
	}
	return out
}
