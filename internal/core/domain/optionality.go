package domain

import (
	"fmt"
	"strings"
)

// RootFeature names a feature of a root package.
type RootFeature struct {
	Root    string
	Feature string
}

// String returns "root/feature".
func (rf RootFeature) String() string {
	return rf.Root + "/" + rf.Feature
}

// CompareRootFeatures orders by root, then feature.
func CompareRootFeatures(a, b RootFeature) int {
	if c := strings.Compare(a.Root, b.Root); c != 0 {
		return c
	}
	return strings.Compare(a.Feature, b.Feature)
}

// Optionality records why an item is part of the build. It is either
// Required or *Optional and only ever grows: nothing turns Required back
// into Optional.
type Optionality interface {
	// MarkRequiredBy records that root needs the item with no features.
	MarkRequiredBy(root string)
	// MarkActivatedBy records that the root feature enables the item.
	MarkActivatedBy(rf RootFeature)
	// Equal reports whether both values carry the same reasons.
	Equal(other Optionality) bool
	// Condition renders the reasons against the root feature set variable.
	Condition(rootFeaturesVar string) Condition
	isOptionality()
}

// Required items are built unconditionally.
type Required struct{}

// MarkRequiredBy does nothing: a required item stays required.
func (Required) MarkRequiredBy(string) {}

// MarkActivatedBy does nothing: a required item stays required.
func (Required) MarkActivatedBy(RootFeature) {}

// Condition always renders true.
func (Required) Condition(string) Condition { return Always{} }

// Equal reports whether other is Required too.
func (Required) Equal(other Optionality) bool { _, ok := other.(Required); return ok }

func (Required) isOptionality() {}

// Optional items are built when one of the recorded reasons holds.
type Optional struct {
	RequiredBy  Set[string]
	ActivatedBy Set[RootFeature]
}

// NewOptional returns an Optional with no reasons.
func NewOptional() *Optional {
	return &Optional{
		RequiredBy:  NewSet[string](),
		ActivatedBy: NewSet[RootFeature](),
	}
}

// MarkRequiredBy records that root needs the item without any feature.
func (o *Optional) MarkRequiredBy(root string) {
	o.RequiredBy.Add(root)
}

// MarkActivatedBy is ignored when the feature's root already requires the
// item unconditionally.
func (o *Optional) MarkActivatedBy(rf RootFeature) {
	if o.RequiredBy.Has(rf.Root) {
		return
	}
	o.ActivatedBy.Add(rf)
}

// Equal reports whether other is Optional with the same reasons.
func (o *Optional) Equal(other Optionality) bool {
	opt, ok := other.(*Optional)
	if !ok {
		return false
	}
	return o.RequiredBy.Equal(opt.RequiredBy) && o.ActivatedBy.Equal(opt.ActivatedBy)
}

// Condition lists feature activations first, then unconditional roots.
func (o *Optional) Condition(rootFeaturesVar string) Condition {
	clauses := make([]Condition, 0, o.ActivatedBy.Len()+o.RequiredBy.Len())
	for _, rf := range o.ActivatedBy.Sorted(CompareRootFeatures) {
		clauses = append(clauses, membership(rootFeaturesVar, rf.String()))
	}
	for _, root := range o.RequiredBy.Sorted(strings.Compare) {
		clauses = append(clauses, membership(rootFeaturesVar, root))
	}
	return Or(clauses...)
}

func (*Optional) isOptionality() {}

func membership(variable, key string) Clause {
	return Clause(fmt.Sprintf("%s ? %s", variable, NixString(key)))
}

// DependencyKey identifies a dependency item of a package.
type DependencyKey struct {
	ID   PackageID
	Kind DepKind
}

// CompareDependencyKeys orders by package, then kind.
func CompareDependencyKeys(a, b DependencyKey) int {
	if c := ComparePackageIDs(a.ID, b.ID); c != 0 {
		return c
	}
	return int(a.Kind) - int(b.Kind)
}

// PackageOptionality holds the optionality of every item of one package.
type PackageOptionality struct {
	Dependencies map[DependencyKey]Optionality
	Features     map[string]Optionality
}

// NewPackageOptionality returns an empty item table.
func NewPackageOptionality() *PackageOptionality {
	return &PackageOptionality{
		Dependencies: make(map[DependencyKey]Optionality),
		Features:     make(map[string]Optionality),
	}
}

// Dependency returns the optionality of key, creating an empty Optional.
func (p *PackageOptionality) Dependency(key DependencyKey) Optionality {
	o, ok := p.Dependencies[key]
	if !ok {
		o = NewOptional()
		p.Dependencies[key] = o
	}
	return o
}

// Feature returns the optionality of name, creating an empty Optional.
func (p *PackageOptionality) Feature(name string) Optionality {
	o, ok := p.Features[name]
	if !ok {
		o = NewOptional()
		p.Features[name] = o
	}
	return o
}
