package plan

import "github.com/quilldb/quill/types"

// DMLJob is the closed set of row-mutating operations a DML Plan node can
// perform.
type DMLJob interface{ dmlJob() }

// InsertJob appends Rows to (Schema, Table).
type InsertJob struct {
	Schema string
	Table  string
	Rows   []types.Row
}

func (InsertJob) dmlJob() {}
