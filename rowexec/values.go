package rowexec

import (
	"io"

	"github.com/quilldb/quill/sql"
	"github.com/quilldb/quill/types"
)

// valuesExecutor returns a queued list of rows one at a time. It backs
// Explain (one text row), ShowTables (one row per table), and every
// statement kind that yields no rows at all.
type valuesExecutor struct {
	rows []types.Row
	idx  int
}

func newValuesExecutor(rows []types.Row) *valuesExecutor {
	return &valuesExecutor{rows: rows}
}

func (e *valuesExecutor) Next(ctx *sql.Context) (types.Row, error) {
	if e.idx >= len(e.rows) {
		return nil, io.EOF
	}
	row := e.rows[e.idx]
	e.idx++
	return row, nil
}

func (e *valuesExecutor) Close(ctx *sql.Context) error { return nil }
