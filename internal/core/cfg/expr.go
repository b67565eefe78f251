// Package cfg parses and evaluates conditional-compilation predicates such
// as cfg(all(unix, target_arch = "x86_64")).
package cfg

import "strings"

// Expr is a parsed predicate.
type Expr interface {
	String() string
	isExpr()
}

// Name is a bare atom such as unix.
type Name struct {
	Name string
}

// KeyValue is an atom of the form key = "value". Value holds the literal
// contents with escapes intact.
type KeyValue struct {
	Key   string
	Value string
}

// All holds when every member holds. An empty All holds.
type All struct {
	Exprs []Expr
}

// Any holds when some member holds. An empty Any does not hold.
type Any struct {
	Exprs []Expr
}

// Not negates its operand.
type Not struct {
	Expr Expr
}

// String renders the name.
func (n Name) String() string { return n.Name }

// String renders key = "value".
func (kv KeyValue) String() string { return kv.Key + ` = "` + kv.Value + `"` }

// String renders all(...).
func (a All) String() string { return "all(" + joinExprs(a.Exprs) + ")" }

// String renders any(...).
func (a Any) String() string { return "any(" + joinExprs(a.Exprs) + ")" }

// String renders not(...).
func (n Not) String() string { return "not(" + n.Expr.String() + ")" }

func (Name) isExpr()     {}
func (KeyValue) isExpr() {}
func (All) isExpr()      {}
func (Any) isExpr()      {}
func (Not) isExpr()      {}

func joinExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
