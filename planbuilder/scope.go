// Package planbuilder implements quill's Binder: the component that turns
// a parsed ast.Statement into a logical plan.Plan and an output Scope.
package planbuilder

import (
	"github.com/quilldb/quill/ast"
	"github.com/quilldb/quill/sqlerrors"
)

// Variable is one column slot within a Scope: an optional schema/table
// qualification, a name, and (for synthetic columns introduced by
// aggregation) the AST expression it originated from, used for
// de-duplicating later references to the same aggregate call.
type Variable struct {
	Schema    string // "" when unqualified
	Table     string // "" when unqualified
	HasPrefix bool
	Name      string
	Origin    ast.Expr // nil when the Variable has no originating expression
}

// Scope is an ordered list of Variables visible at a bind point. A
// Variable's position equals the column index a Column ScalarExpr
// referencing it must carry.
type Scope []*Variable

// Extend concatenates s with other, used when composing left-deep joins.
func (s Scope) Extend(other Scope) Scope {
	out := make(Scope, 0, len(s)+len(other))
	out = append(out, s...)
	out = append(out, other...)
	return out
}

// ResolveColumn resolves a (possibly qualified) identifier path against s:
// 1-part matches by name only, 2-part matches table+name, 3-part matches
// schema+table+name. Zero matches is reported as "not
// found"; more than one is "ambiguous".
func (s Scope) ResolveColumn(parts []string) (int, error) {
	var matches []int
	switch len(parts) {
	case 1:
		name := parts[0]
		for i, v := range s {
			if v.Name == name {
				matches = append(matches, i)
			}
		}
	case 2:
		table, name := parts[0], parts[1]
		for i, v := range s {
			if v.HasPrefix && v.Table == table && v.Name == name {
				matches = append(matches, i)
			}
		}
	case 3:
		schema, table, name := parts[0], parts[1], parts[2]
		for i, v := range s {
			if v.HasPrefix && v.Schema == schema && v.Table == table && v.Name == name {
				matches = append(matches, i)
			}
		}
	default:
		return 0, sqlerrors.ErrPlanner.New("invalid qualified column name")
	}

	switch len(matches) {
	case 0:
		return 0, sqlerrors.ErrPlanner.New("column not found: " + joinParts(parts))
	case 1:
		return matches[0], nil
	default:
		return 0, sqlerrors.ErrPlanner.New("ambiguous column name: " + joinParts(parts))
	}
}

// ResolveExpr looks for a Variable whose Origin is structurally equal to
// expr, returning its index. This is how an aggregate call in a SELECT
// list gets rewritten to a reference to the aggregate's output column in a
// group scope.
func (s Scope) ResolveExpr(expr ast.Expr) (int, bool) {
	for i, v := range s {
		if v.Origin != nil && exprEqual(v.Origin, expr) {
			return i, true
		}
	}
	return 0, false
}

func joinParts(parts []string) string {
	out := parts[0]
	for _, p := range parts[1:] {
		out += "." + p
	}
	return out
}

func exprEqual(a, b ast.Expr) bool {
	switch av := a.(type) {
	case *ast.ColumnRef:
		bv, ok := b.(*ast.ColumnRef)
		if !ok || len(av.Parts) != len(bv.Parts) {
			return false
		}
		for i := range av.Parts {
			if av.Parts[i] != bv.Parts[i] {
				return false
			}
		}
		return true
	case *ast.Literal:
		bv, ok := b.(*ast.Literal)
		return ok && av.Value.Equal(bv.Value)
	case *ast.FuncCall:
		bv, ok := b.(*ast.FuncCall)
		if !ok || av.Name != bv.Name || av.Star != bv.Star || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !exprEqual(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
