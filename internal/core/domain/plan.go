package domain

// Plan is the generated build plan consumed by the nix side.
type Plan struct {
	// Version is the nixcrate version that wrote the plan.
	Version       string           `json:"nixcrateVersion" yaml:"nixcrateVersion"`
	BuildPlatform string           `json:"buildPlatform" yaml:"buildPlatform"`
	HostPlatform  string           `json:"hostPlatform" yaml:"hostPlatform"`
	Roots         []string         `json:"roots" yaml:"roots"`
	Profiles      map[string]any   `json:"profiles,omitempty" yaml:"profiles,omitempty"`
	Packages      []PlannedPackage `json:"packages" yaml:"packages"`
}

// PlannedPackage is one package of the plan.
type PlannedPackage struct {
	ID           PackageID           `json:"id" yaml:"id"`
	Name         string              `json:"name" yaml:"name"`
	Version      string              `json:"version,omitempty" yaml:"version,omitempty"`
	Source       *Source             `json:"source,omitempty" yaml:"source,omitempty"`
	ProcMacro    bool                `json:"procMacro,omitempty" yaml:"procMacro,omitempty"`
	Features     []PlannedFeature    `json:"features" yaml:"features"`
	Dependencies []PlannedDependency `json:"dependencies" yaml:"dependencies"`
}

// PlannedFeature is a feature with the condition enabling it.
type PlannedFeature struct {
	Name      string `json:"name" yaml:"name"`
	Condition string `json:"condition" yaml:"condition"`
}

// PlannedDependency is a dependency edge with the condition enabling it.
type PlannedDependency struct {
	ID   PackageID `json:"id" yaml:"id"`
	Kind DepKind   `json:"kind" yaml:"kind"`
	// TomlNames are the local names the owner uses for the dependency.
	TomlNames []string `json:"tomlNames" yaml:"tomlNames"`
	// Platforms lists the target blocks declaring the dependency. It is
	// empty when the dependency is declared unconditionally.
	Platforms []string `json:"platforms,omitempty" yaml:"platforms,omitempty"`
	Condition string   `json:"condition" yaml:"condition"`
}
