package expression

import (
	"github.com/quilldb/quill/expression/aggregation"
	"github.com/quilldb/quill/expression/function"
	"github.com/quilldb/quill/sqlerrors"
	"github.com/quilldb/quill/types"
)

// ColumnTypeResolver answers the one question the type checker needs about
// its surrounding input schema: what type does Column(index) have.
type ColumnTypeResolver interface {
	ResolveColumnType(index int) (types.Type, error)
}

// TypeCheck turns an unresolved ScalarExpr into a typed Expression,
// resolving scalar function overloads and inserting implicit casts where
// the chosen overload's declared parameter type differs from the
// argument's actual type.
func TypeCheck(ctx ColumnTypeResolver, expr ScalarExpr) (Expression, error) {
	return typeCheck(ctx, function.Default(), expr)
}

func typeCheck(ctx ColumnTypeResolver, registry *function.Registry, expr ScalarExpr) (Expression, error) {
	switch e := expr.(type) {
	case Column:
		t, err := ctx.ResolveColumnType(e.Index)
		if err != nil {
			return nil, err
		}
		return NewColumnExpr(e.Index, t), nil

	case Literal:
		return NewLiteralExpr(e.Value), nil

	case FunctionCall:
		args := make([]Expression, len(e.Args))
		argTypes := make([]types.Type, len(e.Args))
		for i, a := range e.Args {
			typed, err := typeCheck(ctx, registry, a)
			if err != nil {
				return nil, err
			}
			args[i] = typed
			argTypes[i] = typed.Type()
		}

		candidates := registry.Candidates(e.Name)
		if candidates == nil {
			return nil, sqlerrors.ErrCatalog.New("unknown function: " + e.Name)
		}

		overload, wrapped := resolveScalarOverload(candidates, argTypes, args)
		if overload == nil {
			return nil, sqlerrors.ErrCatalog.New("cannot find overload of function with given types: " + e.Name)
		}
		return NewFunctionExpr(overload, wrapped), nil

	default:
		return nil, sqlerrors.ErrUnknown.New("unhandled ScalarExpr variant")
	}
}

// resolveScalarOverload implements stable, first-match overload resolution
// with implicit-cast wrapping.
func resolveScalarOverload(candidates []*function.Overload, argTypes []types.Type, args []Expression) (*function.Overload, []Expression) {
	for _, cand := range candidates {
		if len(cand.ArgTypes) != len(argTypes) {
			continue
		}
		ok := true
		for i, paramType := range cand.ArgTypes {
			if paramType == types.Any {
				continue
			}
			if argTypes[i] == paramType {
				continue
			}
			if !types.CanCast(argTypes[i], paramType) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		wrapped := make([]Expression, len(args))
		for i, paramType := range cand.ArgTypes {
			if paramType == types.Any || argTypes[i] == paramType {
				wrapped[i] = args[i]
				continue
			}
			wrapped[i] = insertCast(args[i], paramType)
		}
		return cand, wrapped
	}
	return nil, nil
}

// insertCast wraps arg in the builtin cast function targeting paramType.
func insertCast(arg Expression, paramType types.Type) Expression {
	name, ok := function.CastFunctionName(paramType)
	if !ok {
		return arg
	}
	castOverload := function.Default().Candidates(name)[0]
	return NewFunctionExpr(castOverload, []Expression{arg})
}

// AggregateTypeCheck resolves name/args against the aggregate registry. It
// deliberately mirrors TypeCheck's matching rule but does NOT insert
// implicit casts on its arguments: an aggregate accumulates over many
// rows, so silently casting a mismatched argument would change its
// numeric behavior across the whole group rather than once.
func AggregateTypeCheck(ctx ColumnTypeResolver, name string, args []ScalarExpr) (*aggregation.Overload, []Expression, error) {
	typed := make([]Expression, len(args))
	argTypes := make([]types.Type, len(args))
	for i, a := range args {
		e, err := TypeCheck(ctx, a)
		if err != nil {
			return nil, nil, err
		}
		typed[i] = e
		argTypes[i] = e.Type()
	}

	candidates := aggregation.Default().Candidates(name)
	if candidates == nil {
		return nil, nil, sqlerrors.ErrCatalog.New("unknown aggregate function: " + name)
	}

	for _, cand := range candidates {
		if len(cand.ArgTypes) != len(argTypes) {
			continue
		}
		ok := true
		for i, paramType := range cand.ArgTypes {
			if paramType == types.Any {
				continue
			}
			if argTypes[i] == paramType {
				continue
			}
			if !types.CanCast(argTypes[i], paramType) {
				ok = false
				break
			}
		}
		if ok {
			return cand, typed, nil
		}
	}
	return nil, nil, sqlerrors.ErrCatalog.New("cannot find overload of aggregate function with given types: " + name)
}
