package rowexec

import (
	"github.com/quilldb/quill/sql"
	"github.com/quilldb/quill/types"
)

// projectExecutor pulls one row from input and narrows it to indices.
type projectExecutor struct {
	indices []int
	input   Executor
}

func newProjectExecutor(indices []int, input Executor) *projectExecutor {
	return &projectExecutor{indices: indices, input: input}
}

func (e *projectExecutor) Next(ctx *sql.Context) (types.Row, error) {
	row, err := e.input.Next(ctx)
	if err != nil {
		return nil, err
	}
	return row.Project(e.indices), nil
}

func (e *projectExecutor) Close(ctx *sql.Context) error { return e.input.Close(ctx) }
