// Package sqlerrors defines quill's error taxonomy using the Kind/New idiom
// from gopkg.in/src-d/go-errors.v1: a package-scoped errors.Kind per
// category, instantiated with .New(format, args...) at the failure site.
package sqlerrors

import errors "gopkg.in/src-d/go-errors.v1"

var (
	// ErrParse wraps failures from the (external) AST provider.
	ErrParse = errors.NewKind("parse error: %s")

	// ErrPlanner wraps binder failures: missing tables/columns, ambiguous
	// names, unsupported constructs, wrong INSERT arity, invalid qualified
	// names.
	ErrPlanner = errors.NewKind("planner error: %s")

	// ErrCatalog wraps catalog mutation failures: schema/table already
	// exists or missing, ambiguous table, overload miss.
	ErrCatalog = errors.NewKind("catalog error: %s")

	// ErrType wraps unknown AST data types encountered while binding DDL.
	ErrType = errors.NewKind("type error: %s")

	// ErrRuntime wraps executor failures: missing storage, index out of
	// range during evaluation.
	ErrRuntime = errors.NewKind("runtime error: %s")

	// ErrUnknown wraps violated internal invariants.
	ErrUnknown = errors.NewKind("internal error: %s")
)
