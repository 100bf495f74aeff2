package rowexec

import (
	"github.com/quilldb/quill/expression"
	"github.com/quilldb/quill/sql"
	"github.com/quilldb/quill/types"
)

// filterExecutor pulls from input until pred evaluates truthy. A non-Boolean
// result is coerced to Boolean via the cast table; Null, or a value that
// does not cast to Boolean, counts as false rather than erroring.
type filterExecutor struct {
	pred  expression.Expression
	input Executor
}

func newFilterExecutor(pred expression.Expression, input Executor) *filterExecutor {
	return &filterExecutor{pred: pred, input: input}
}

func (e *filterExecutor) Next(ctx *sql.Context) (types.Row, error) {
	for {
		row, err := e.input.Next(ctx)
		if err != nil {
			return nil, err
		}
		v, err := e.pred.Eval(row)
		if err != nil {
			return nil, err
		}
		if truthy(v) {
			return row, nil
		}
	}
}

func (e *filterExecutor) Close(ctx *sql.Context) error { return e.input.Close(ctx) }

// truthy coerces v to Boolean per the cast table; Null or an uncastable
// value is false.
func truthy(v types.Value) bool {
	b := v.Cast(types.Boolean)
	return b.Type() == types.Boolean && b.Bool()
}
