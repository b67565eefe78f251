package domain

import "strings"

// Condition is a boolean expression over the root feature selection of the
// consuming build, rendered as a nix expression.
type Condition interface {
	Render() string
	isCondition()
}

// Always is the condition that always holds.
type Always struct{}

// Never is the condition that never holds.
type Never struct{}

// Clause is a single pre-rendered test.
type Clause string

// AnyOf holds when at least one member holds.
type AnyOf []Condition

// AllOf holds when every member holds.
type AllOf []Condition

// Render returns "true".
func (Always) Render() string { return "true" }

// Render returns "false".
func (Never) Render() string { return "false" }

// Render returns the clause verbatim.
func (c Clause) Render() string { return string(c) }

// Render joins the alternatives with ||.
func (c AnyOf) Render() string { return join(c, " || ") }

// Render joins the conjuncts with &&.
func (c AllOf) Render() string { return join(c, " && ") }

func (Always) isCondition() {}
func (Never) isCondition()  {}
func (Clause) isCondition() {}
func (AnyOf) isCondition()  {}
func (AllOf) isCondition()  {}

func join(conds []Condition, sep string) string {
	parts := make([]string, len(conds))
	for i, c := range conds {
		parts[i] = c.Render()
	}
	return "(" + strings.Join(parts, sep) + ")"
}

// Or combines conditions into a disjunction. Always absorbs, Never drops out,
// and a single remaining member is returned as is.
func Or(conds ...Condition) Condition {
	var kept AnyOf
	for _, c := range conds {
		switch c.(type) {
		case Always:
			return Always{}
		case Never:
			continue
		default:
			kept = append(kept, c)
		}
	}
	switch len(kept) {
	case 0:
		return Never{}
	case 1:
		return kept[0]
	default:
		return kept
	}
}

// And combines conditions into a conjunction. Never absorbs, Always drops
// out, and a single remaining member is returned as is.
func And(conds ...Condition) Condition {
	var kept AllOf
	for _, c := range conds {
		switch c.(type) {
		case Never:
			return Never{}
		case Always:
			continue
		default:
			kept = append(kept, c)
		}
	}
	switch len(kept) {
	case 0:
		return Always{}
	case 1:
		return kept[0]
	default:
		return kept
	}
}
