package domain

import (
	"iter"
	"slices"
)

// PackageSet is an immutable arena over the lock graph with a reverse index
// from local dependency names to package identifiers.
type PackageSet struct {
	ids      []PackageID
	packages map[PackageID]*Package
	names    map[PackageID]map[string]PackageID
}

// NewPackageSet indexes packages. The input map is not retained.
func NewPackageSet(packages map[PackageID]Package) *PackageSet {
	s := &PackageSet{
		ids:      make([]PackageID, 0, len(packages)),
		packages: make(map[PackageID]*Package, len(packages)),
		names:    make(map[PackageID]map[string]PackageID, len(packages)),
	}
	for id, pkg := range packages {
		s.ids = append(s.ids, id)
		s.packages[id] = &pkg

		byName := make(map[string]PackageID)
		for _, dep := range pkg.Dependencies {
			for _, name := range dep.TomlNames {
				byName[name] = dep.PackageID
			}
		}
		s.names[id] = byName
	}
	slices.SortFunc(s.ids, ComparePackageIDs)
	return s
}

// Len returns the number of packages.
func (s *PackageSet) Len() int {
	return len(s.ids)
}

// Get returns the package for id.
func (s *PackageSet) Get(id PackageID) (*Package, bool) {
	pkg, ok := s.packages[id]
	return pkg, ok
}

// Has reports whether id is part of the set.
func (s *PackageSet) Has(id PackageID) bool {
	_, ok := s.packages[id]
	return ok
}

// All iterates over the packages in identifier order.
func (s *PackageSet) All() iter.Seq2[PackageID, *Package] {
	return func(yield func(PackageID, *Package) bool) {
		for _, id := range s.ids {
			if !yield(id, s.packages[id]) {
				return
			}
		}
	}
}

// Lookup resolves the local name owner uses for a dependency. The returned
// identifier may be absent from the set when the lock graph is incomplete.
func (s *PackageSet) Lookup(owner PackageID, tomlName string) (PackageID, bool) {
	id, ok := s.names[owner][tomlName]
	return id, ok
}

// TomlNames returns the local names owner uses for dep, sorted.
func (s *PackageSet) TomlNames(owner, dep PackageID) []string {
	var names []string
	for name, id := range s.names[owner] {
		if id == dep {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// IsCodeGenerator reports whether id is a procedural-macro package.
func (s *PackageSet) IsCodeGenerator(id PackageID) bool {
	pkg, ok := s.packages[id]
	return ok && pkg.Manifest.Lib.ProcMacro
}

// DisplayName returns the declared package name, falling back to the
// leading component of the identifier.
func (s *PackageSet) DisplayName(id PackageID) string {
	if pkg, ok := s.packages[id]; ok && pkg.Name != "" {
		return pkg.Name
	}
	return id.Name()
}
