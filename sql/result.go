package sql

import "github.com/quilldb/quill/types"

// ResultKind distinguishes SELECT results (Query) from every other
// statement (Execute) — a client uses this to choose its response format.
type ResultKind int

const (
	Query ResultKind = iota
	Execute
)

// FieldFormat is the wire rendering format advertised for every column.
// quill only ever advertises Text.
const FieldFormat = "Text"

// FieldInfo describes one output column as the client interface sees it:
// all columns are advertised as textual/VARCHAR regardless of their
// internal Type.
type FieldInfo struct {
	Name   string
	Type   string
	Format string
}

// NewFieldInfo builds the FieldInfo for a named output column.
func NewFieldInfo(name string) FieldInfo {
	return FieldInfo{Name: name, Type: "VARCHAR", Format: FieldFormat}
}

// QueryResult is what Session.ExecuteStatement returns.
type QueryResult struct {
	Fields []FieldInfo
	Data   []types.Row
	Kind   ResultKind
}
