package expression

import (
	"github.com/quilldb/quill/expression/function"
	"github.com/quilldb/quill/sqlerrors"
	"github.com/quilldb/quill/types"
)

// Expression is the typed tree produced by type checking: every node
// carries its resolved return Type.
type Expression interface {
	// Type returns the expression's resolved type.
	Type() types.Type
	// Eval evaluates the expression against row.
	Eval(row types.Row) (types.Value, error)
}

// ColumnExpr reads one positional field of the input row.
type ColumnExpr struct {
	Index int
	Typ   types.Type
}

func NewColumnExpr(index int, typ types.Type) *ColumnExpr { return &ColumnExpr{Index: index, Typ: typ} }

func (c *ColumnExpr) Type() types.Type { return c.Typ }

func (c *ColumnExpr) Eval(row types.Row) (types.Value, error) {
	if c.Index < 0 || c.Index >= len(row) {
		return types.Value{}, sqlerrors.ErrRuntime.New("column index out of range")
	}
	return row[c.Index], nil
}

// LiteralExpr is a constant Datum.
type LiteralExpr struct {
	Value types.Value
}

func NewLiteralExpr(v types.Value) *LiteralExpr { return &LiteralExpr{Value: v} }

func (l *LiteralExpr) Type() types.Type { return l.Value.Type() }

func (l *LiteralExpr) Eval(types.Row) (types.Value, error) { return l.Value, nil }

// FunctionExpr is a resolved scalar function call over typed arguments
// (which may themselves be cast-insertion FunctionExprs).
type FunctionExpr struct {
	Overload *function.Overload
	Args     []Expression
}

func NewFunctionExpr(overload *function.Overload, args []Expression) *FunctionExpr {
	return &FunctionExpr{Overload: overload, Args: args}
}

func (f *FunctionExpr) Type() types.Type { return f.Overload.RetType }

func (f *FunctionExpr) Eval(row types.Row) (types.Value, error) {
	args := make([]types.Value, len(f.Args))
	for i, a := range f.Args {
		v, err := a.Eval(row)
		if err != nil {
			return types.Value{}, err
		}
		args[i] = v
	}
	return f.Overload.Behavior(args), nil
}
