// Package plan implements quill's logical Plan: the tagged variant the
// Binder produces and the Executor builder (package rowexec) consumes.
package plan

import "github.com/quilldb/quill/expression"

// Plan is one logical operator. Children returns its logical inputs in
// left-to-right order for plans that have any.
type Plan interface {
	plan()
	Children() []Plan
}

// Get is a base-table scan target.
type Get struct {
	Schema string
	Table  string
}

func (*Get) plan()                 {}
func (*Get) Children() []Plan      { return nil }

// Filter keeps only input rows for which Pred evaluates truthy.
type Filter struct {
	Pred  expression.ScalarExpr
	Input Plan
}

func (*Filter) plan()            {}
func (f *Filter) Children() []Plan { return []Plan{f.Input} }

// Map extends every input row with the evaluated Scalars.
type Map struct {
	Scalars []expression.ScalarExpr
	Input   Plan
}

func (*Map) plan()            {}
func (m *Map) Children() []Plan { return []Plan{m.Input} }

// Project narrows every input row to the given column indices, in order.
type Project struct {
	Indices []int
	Input   Plan
}

func (*Project) plan()            {}
func (p *Project) Children() []Plan { return []Plan{p.Input} }

// Join is the (always cross-product) concatenation of Left and Right rows;
// join predicates are represented by a Filter stacked above.
type Join struct {
	Left, Right Plan
}

func (*Join) plan()            {}
func (j *Join) Children() []Plan { return []Plan{j.Left, j.Right} }

// AggregateCall is one `fn_name(args)` appearing in an Aggregate node.
type AggregateCall struct {
	FuncName string
	Args     []expression.ScalarExpr
}

// Aggregate groups Input rows by GroupBy and computes Aggregates per group
// (or, when GroupBy is empty, exactly one group over the whole input:
// scalar aggregation).
type Aggregate struct {
	GroupBy    []expression.ScalarExpr
	Aggregates []AggregateCall
	Input      Plan
}

func (*Aggregate) plan()            {}
func (a *Aggregate) Children() []Plan { return []Plan{a.Input} }

// Explain carries the pre-rendered textual form of another Plan as the sole
// output row; binding recursively binds the inner statement and stringifies
// its Plan immediately, so Explain itself has no children.
type Explain struct {
	Text string
}

func (*Explain) plan()            {}
func (*Explain) Children() []Plan { return nil }

// Use switches the session's current schema.
type Use struct {
	Schema string
}

func (*Use) plan()            {}
func (*Use) Children() []Plan { return nil }

// DDL wraps a catalog/storage-mutating job.
type DDL struct {
	Job DDLJob
}

func (*DDL) plan()            {}
func (*DDL) Children() []Plan { return nil }

// DML wraps a row-mutating job.
type DML struct {
	Job DMLJob
}

func (*DML) plan()            {}
func (*DML) Children() []Plan { return nil }
