package planbuilder

import (
	"strings"

	"github.com/quilldb/quill/ast"
	"github.com/quilldb/quill/expression"
	"github.com/quilldb/quill/expression/aggregation"
	"github.com/quilldb/quill/sqlerrors"
)

// bindScalar binds an AST expression against scope into an unresolved
// ScalarExpr. It first tries Scope.ResolveExpr: this is how an aggregate
// call (or a non-column GROUP BY key) in the SELECT/HAVING list gets
// rewritten into a reference to its synthetic output column rather than
// re-bound from scratch.
func bindScalar(scope Scope, e ast.Expr) (expression.ScalarExpr, error) {
	if idx, ok := scope.ResolveExpr(e); ok {
		return expression.Column{Index: idx}, nil
	}

	switch v := e.(type) {
	case *ast.ColumnRef:
		idx, err := scope.ResolveColumn(v.Parts)
		if err != nil {
			return nil, err
		}
		return expression.Column{Index: idx}, nil

	case *ast.Literal:
		return expression.Literal{Value: v.Value}, nil

	case *ast.FuncCall:
		args := v.Args
		if v.Star {
			args = nil
		}
		bound := make([]expression.ScalarExpr, len(args))
		for i, a := range args {
			b, err := bindScalar(scope, a)
			if err != nil {
				return nil, err
			}
			bound[i] = b
		}
		return expression.FunctionCall{Name: v.Name, Args: bound}, nil

	default:
		return nil, sqlerrors.ErrUnknown.New("unhandled AST expression variant")
	}
}

// isAggregateCall reports whether fc names a registered aggregate
// function.
func isAggregateCall(fc *ast.FuncCall) bool {
	return aggregation.Default().Candidates(strings.ToLower(fc.Name)) != nil
}

// aggregateRef is one detected aggregate call: Origin is the exact AST node
// (preserving Star) used for later structural matching via
// Scope.ResolveExpr; FuncName/Args are the normalized call used to build
// the plan's AggregateCall (count(*) rewritten to count() with no args).
type aggregateRef struct {
	Origin   *ast.FuncCall
	FuncName string
	Args     []ast.Expr
}

// detectAggregates walks every expression in exprs, collecting (in
// first-seen order, de-duplicated structurally) every call to a built-in
// aggregate function.
func detectAggregates(exprs ...ast.Expr) []*aggregateRef {
	var found []*aggregateRef
	var walk func(e ast.Expr)
	walk = func(e ast.Expr) {
		if e == nil {
			return
		}
		fc, ok := e.(*ast.FuncCall)
		if !ok {
			return
		}
		if isAggregateCall(fc) {
			for _, existing := range found {
				if exprEqual(existing.Origin, fc) {
					return
				}
			}
			args := fc.Args
			name := strings.ToLower(fc.Name)
			if fc.Star {
				args = nil
			}
			found = append(found, &aggregateRef{Origin: fc, FuncName: name, Args: args})
			return
		}
		for _, a := range fc.Args {
			walk(a)
		}
	}
	for _, e := range exprs {
		walk(e)
	}
	return found
}
