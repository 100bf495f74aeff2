package rowexec

import (
	"github.com/quilldb/quill/expression"
	"github.com/quilldb/quill/sql"
	"github.com/quilldb/quill/types"
)

// mapExecutor pulls one row from input, evaluates scalars against it, and
// extends the row with their results.
type mapExecutor struct {
	scalars []expression.Expression
	input   Executor
}

func newMapExecutor(scalars []expression.Expression, input Executor) *mapExecutor {
	return &mapExecutor{scalars: scalars, input: input}
}

func (e *mapExecutor) Next(ctx *sql.Context) (types.Row, error) {
	row, err := e.input.Next(ctx)
	if err != nil {
		return nil, err
	}
	extra := make([]types.Value, len(e.scalars))
	for i, s := range e.scalars {
		v, err := s.Eval(row)
		if err != nil {
			return nil, err
		}
		extra[i] = v
	}
	return row.Extend(extra...), nil
}

func (e *mapExecutor) Close(ctx *sql.Context) error { return e.input.Close(ctx) }
