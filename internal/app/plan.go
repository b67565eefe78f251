package app

import (
	"maps"
	"slices"

	"go.trai.ch/nixcrate/internal/core/domain"
	"go.trai.ch/nixcrate/internal/engine/optionality"
)

// BuildPlan assembles the plan for every package the roots can reach.
// Sources are copied so that checksums can be filled in without touching req.
func BuildPlan(req *domain.ResolveRequest, result *optionality.Result, rootFeaturesVar string) *domain.Plan {
	packages := domain.NewPackageSet(req.Packages)

	ids := domain.NewSet(result.Universe.PackageIDs()...)
	roots := make([]string, 0, len(result.Roots))
	for _, root := range result.Roots {
		ids.Add(root)
		roots = append(roots, packages.DisplayName(root))
	}

	plan := &domain.Plan{
		BuildPlatform: req.BuildPlatform.Config,
		HostPlatform:  req.HostPlatform.Config,
		Roots:         roots,
		Packages:      []domain.PlannedPackage{},
	}

	for _, id := range ids.Sorted(domain.ComparePackageIDs) {
		pkg, ok := packages.Get(id)
		if !ok {
			continue
		}
		planned := domain.PlannedPackage{
			ID:           id,
			Name:         packages.DisplayName(id),
			Version:      pkg.Version,
			ProcMacro:    pkg.Manifest.Lib.ProcMacro,
			Features:     []domain.PlannedFeature{},
			Dependencies: []domain.PlannedDependency{},
		}
		if pkg.Source != nil {
			source := *pkg.Source
			planned.Source = &source
		}

		features := slices.Clone(result.Universe.Features[id])
		slices.Sort(features)
		for _, feature := range features {
			planned.Features = append(planned.Features, domain.PlannedFeature{
				Name:      feature,
				Condition: result.FeatureCondition(id, feature, rootFeaturesVar).Render(),
			})
		}

		for _, kind := range domain.DepKinds {
			for _, dep := range result.Universe.ByKind(kind).Targets(id) {
				names := packages.TomlNames(id, dep)
				key := domain.DependencyKey{ID: dep, Kind: kind}
				planned.Dependencies = append(planned.Dependencies, domain.PlannedDependency{
					ID:        dep,
					Kind:      kind,
					TomlNames: names,
					Platforms: platformsOf(&pkg.Manifest, names, kind),
					Condition: result.DependencyCondition(id, key, rootFeaturesVar).Render(),
				})
			}
		}

		plan.Packages = append(plan.Packages, planned)
	}

	return plan
}

// platformsOf lists the target blocks declaring any of names under kind. A
// dependency also declared outside target blocks is unconditional and yields nil.
func platformsOf(manifest *domain.Manifest, names []string, kind domain.DepKind) []string {
	declares := func(deps map[string]domain.DepSpec) bool {
		for _, name := range names {
			if _, ok := deps[name]; ok {
				return true
			}
		}
		return false
	}

	if declares(manifest.ByKind(kind)) {
		return nil
	}

	var platforms []string
	for _, key := range slices.Sorted(maps.Keys(manifest.Target)) {
		if declares(manifest.Target[key].ByKind(kind)) {
			platforms = append(platforms, key)
		}
	}
	return platforms
}

// ConditionRow is one feature or dependency edge with its condition.
type ConditionRow struct {
	Package   domain.PackageID `json:"package"`
	Item      string           `json:"item"`
	Condition string           `json:"condition"`
}

// ConditionTable flattens the conditions of plan in plan order.
func ConditionTable(plan *domain.Plan) []ConditionRow {
	var rows []ConditionRow
	for _, pkg := range plan.Packages {
		for _, feature := range pkg.Features {
			rows = append(rows, ConditionRow{
				Package:   pkg.ID,
				Item:      "feature " + feature.Name,
				Condition: feature.Condition,
			})
		}
		for _, dep := range pkg.Dependencies {
			rows = append(rows, ConditionRow{
				Package:   pkg.ID,
				Item:      dep.Kind.String() + " " + string(dep.ID),
				Condition: dep.Condition,
			})
		}
	}
	return rows
}
