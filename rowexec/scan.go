package rowexec

import (
	"io"

	"github.com/quilldb/quill/sql"
	"github.com/quilldb/quill/storage"
	"github.com/quilldb/quill/types"
)

// scanExecutor iterates a HeapTable through an internal ScanState cursor,
// yielding rows in insertion order.
type scanExecutor struct {
	table *storage.HeapTable
	state *storage.ScanState
}

func newScanExecutor(table *storage.HeapTable) *scanExecutor {
	return &scanExecutor{table: table, state: storage.NewScanState()}
}

func (e *scanExecutor) Next(ctx *sql.Context) (types.Row, error) {
	row, ok := e.table.Scan(e.state)
	if !ok {
		return nil, io.EOF
	}
	return row, nil
}

func (e *scanExecutor) Close(ctx *sql.Context) error { return nil }
