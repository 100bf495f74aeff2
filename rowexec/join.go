package rowexec

import (
	"io"

	"github.com/quilldb/quill/sql"
	"github.com/quilldb/quill/types"
)

// nestedLoopJoinExecutor is the only join strategy: the
// inner (right) child is fully drained once at construction time, the
// outer (left) child streams. On each Next, it emits outer⧺inner[cursor++];
// when the cursor reaches the end, the current outer row is discarded and
// the next outer row is pulled. Always a left-deep cross product; join
// predicates are applied by a Filter stacked above.
type nestedLoopJoinExecutor struct {
	left  Executor
	inner []types.Row

	outer     types.Row
	haveOuter bool
	cursor    int
}

func newNestedLoopJoinExecutor(ctx *sql.Context, left, right Executor) (*nestedLoopJoinExecutor, error) {
	var inner []types.Row
	for {
		row, err := right.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			right.Close(ctx)
			return nil, err
		}
		inner = append(inner, row)
	}
	if err := right.Close(ctx); err != nil {
		return nil, err
	}
	return &nestedLoopJoinExecutor{left: left, inner: inner}, nil
}

func (e *nestedLoopJoinExecutor) Next(ctx *sql.Context) (types.Row, error) {
	for {
		if !e.haveOuter {
			row, err := e.left.Next(ctx)
			if err != nil {
				return nil, err
			}
			e.outer = row
			e.haveOuter = true
			e.cursor = 0
		}
		if e.cursor >= len(e.inner) {
			e.haveOuter = false
			continue
		}
		innerRow := e.inner[e.cursor]
		e.cursor++
		return e.outer.Extend(innerRow...), nil
	}
}

func (e *nestedLoopJoinExecutor) Close(ctx *sql.Context) error { return e.left.Close(ctx) }
