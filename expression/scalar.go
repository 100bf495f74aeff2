// Package expression implements quill's unresolved ScalarExpr tree, the
// typed Expression tree produced by type checking, and the overload
// resolution / implicit-cast insertion that binds one to the other. The
// scalar and aggregate function registries live in the sibling packages
// expression/function and expression/aggregation.
package expression

import "github.com/quilldb/quill/types"

// ScalarExpr is the Binder's unresolved expression tree: a bare Column
// index, a Literal Datum, or a named FunctionCall over further ScalarExprs.
type ScalarExpr interface{ scalarExpr() }

// Column references a Scope Variable by its position.
type Column struct{ Index int }

func (Column) scalarExpr() {}

// Literal is a constant Datum appearing in the expression.
type Literal struct{ Value types.Value }

func (Literal) scalarExpr() {}

// FunctionCall names a scalar function and its (unresolved) arguments.
type FunctionCall struct {
	Name string
	Args []ScalarExpr
}

func (FunctionCall) scalarExpr() {}
