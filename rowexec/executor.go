// Package rowexec implements quill's executor builder and the pull-based,
// Volcano-style operator tree it produces. Executors are constructed
// already primed to iterate rather than requiring a separate open step,
// and signal end-of-stream by returning io.EOF from Next.
package rowexec

import (
	"github.com/quilldb/quill/sql"
	"github.com/quilldb/quill/sqlerrors"
	"github.com/quilldb/quill/types"
)

// Executor is one pull-based operator. Next yields the next row or io.EOF;
// Close releases any resources and is best-effort even after a prior error.
type Executor interface {
	Next(ctx *sql.Context) (types.Row, error)
	Close(ctx *sql.Context) error
}

// schemaResolver adapts a types.Schema into the expression.ColumnTypeResolver
// the type checker needs.
type schemaResolver struct{ schema types.Schema }

func (r schemaResolver) ResolveColumnType(index int) (types.Type, error) {
	if index < 0 || index >= len(r.schema) {
		return types.Never, sqlerrors.ErrRuntime.New("column index out of range")
	}
	return r.schema[index].Type, nil
}
