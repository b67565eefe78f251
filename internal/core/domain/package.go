package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// PackageID is an opaque package identifier, typically "name version (source)".
type PackageID string

// Name returns the leading name component of the identifier.
func (id PackageID) Name() string {
	name, _, _ := strings.Cut(string(id), " ")
	return name
}

// ComparePackageIDs orders identifiers lexically.
func ComparePackageIDs(a, b PackageID) int {
	return strings.Compare(string(a), string(b))
}

// DepKind is the section of a manifest a dependency is declared in.
type DepKind uint8

const (
	DepKindNormal DepKind = iota
	DepKindBuild
	DepKindDev
)

// DepKinds lists every kind in declaration order.
var DepKinds = []DepKind{DepKindNormal, DepKindBuild, DepKindDev}

// String returns the manifest name of the kind.
func (k DepKind) String() string {
	switch k {
	case DepKindBuild:
		return "build"
	case DepKindDev:
		return "dev"
	default:
		return "normal"
	}
}

// MarshalText encodes the kind by name.
func (k DepKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *DepKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "normal", "":
		*k = DepKindNormal
	case "build":
		*k = DepKindBuild
	case "dev":
		*k = DepKindDev
	default:
		return &ParseError{Subject: "dependency kind", Err: errors.New("unknown kind " + strconv.Quote(string(text)))}
	}
	return nil
}

// DepSpec is a manifest dependency declaration. The plain string form only
// names a version requirement and decodes to the defaults.
type DepSpec struct {
	Optional        bool
	Features        []string
	DefaultFeatures bool
}

// UnmarshalJSON accepts either a version string or a detailed table.
func (s *DepSpec) UnmarshalJSON(data []byte) error {
	*s = DepSpec{DefaultFeatures: true}

	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '"' {
		var version string
		return json.Unmarshal(trimmed, &version)
	}

	var detailed struct {
		Optional        bool     `json:"optional"`
		Features        []string `json:"features"`
		DefaultFeatures *bool    `json:"default-features"`
	}
	if err := json.Unmarshal(data, &detailed); err != nil {
		return err
	}

	s.Optional = detailed.Optional
	s.Features = detailed.Features
	if detailed.DefaultFeatures != nil {
		s.DefaultFeatures = *detailed.DefaultFeatures
	}
	return nil
}

// TargetDeps holds the dependency sections of a manifest or of a target block.
type TargetDeps struct {
	Dependencies      map[string]DepSpec `json:"dependencies"`
	BuildDependencies map[string]DepSpec `json:"build-dependencies"`
	DevDependencies   map[string]DepSpec `json:"dev-dependencies"`
}

// ByKind returns the section for kind.
func (t TargetDeps) ByKind(kind DepKind) map[string]DepSpec {
	switch kind {
	case DepKindBuild:
		return t.BuildDependencies
	case DepKindDev:
		return t.DevDependencies
	default:
		return t.Dependencies
	}
}

// Lib is the [lib] section of a manifest.
type Lib struct {
	ProcMacro bool
}

// UnmarshalJSON accepts both proc-macro and proc_macro spellings.
func (l *Lib) UnmarshalJSON(data []byte) error {
	var raw struct {
		Dashed     *bool `json:"proc-macro"`
		Underscore *bool `json:"proc_macro"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.Dashed != nil:
		l.ProcMacro = *raw.Dashed
	case raw.Underscore != nil:
		l.ProcMacro = *raw.Underscore
	}
	return nil
}

// Manifest is the subset of a package manifest the resolver reads.
type Manifest struct {
	Lib Lib `json:"lib"`
	TargetDeps
	// Target maps a platform predicate or literal config name to extra sections.
	Target   map[string]TargetDeps `json:"target"`
	Features map[string][]string   `json:"features"`
}

// OptionalDependencyNames returns the local names of every optional dependency
// across all sections and target blocks.
func (m *Manifest) OptionalDependencyNames() Set[string] {
	names := NewSet[string]()
	collect := func(deps TargetDeps) {
		for _, kind := range DepKinds {
			for name, spec := range deps.ByKind(kind) {
				if spec.Optional {
					names.Add(name)
				}
			}
		}
	}
	collect(m.TargetDeps)
	for _, block := range m.Target {
		collect(block)
	}
	return names
}

// Dependency is a resolved edge from the lock graph: a target package and
// the local names it is referred to by.
type Dependency struct {
	PackageID PackageID `json:"package-id" validate:"required"`
	TomlNames []string  `json:"toml-names"`
}

// SourceKind is where a package's sources come from.
type SourceKind string

const (
	SourceRegistry SourceKind = "registry"
	SourceGit      SourceKind = "git"
	SourcePath     SourceKind = "path"
)

// Source locates a package's sources for the generated plan.
type Source struct {
	Kind     SourceKind `json:"kind" validate:"omitempty,oneof=registry git path"`
	URL      string     `json:"url,omitempty"`
	Rev      string     `json:"rev,omitempty"`
	Checksum string     `json:"checksum,omitempty"`
}

// Package is one node of the lock graph.
type Package struct {
	Name         string       `json:"name,omitempty"`
	Version      string       `json:"version,omitempty"`
	Source       *Source      `json:"source,omitempty"`
	Dependencies []Dependency `json:"dependencies" validate:"dive"`
	Manifest     Manifest     `json:"cargo-manifest"`
}
