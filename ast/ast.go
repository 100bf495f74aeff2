// Package ast defines the statement shapes the Binder consumes. It models
// the boundary a real SQL lexer/parser would produce — deliberately
// excluded from this module's scope — scoped exactly to the supported
// statement surface. Nodes are a closed, tagged set of concrete structs
// implementing marker interfaces, the same shape vitess/pg_query-style
// parsers hand off to a binder.
package ast

import "github.com/quilldb/quill/types"

// Statement is any top-level parsed statement.
type Statement interface{ statement() }

// Expr is any scalar expression appearing in a parsed statement.
type Expr interface{ expr() }

// TableExpr is anything that can appear in a FROM clause.
type TableExpr interface{ tableExpr() }

// ColumnRef is a possibly-qualified identifier path, most specific part
// last: ["a"] for "a", ["t","a"] for "t.a", ["s","t","a"] for "s.t.a".
type ColumnRef struct {
	Parts []string
}

func (*ColumnRef) expr() {}

// Literal is a constant value appearing directly in the statement text.
type Literal struct {
	Value types.Value
}

func (*Literal) expr() {}

// FuncCall is a named function invocation; Star represents the special
// `count(*)` spelling (empty Args, not the same as `count()`).
type FuncCall struct {
	Name string
	Args []Expr
	Star bool
}

func (*FuncCall) expr() {}

// TableName is a possibly-qualified base table reference, optionally
// aliased.
type TableName struct {
	Schema string // empty: unqualified, resolved against the current schema
	Table  string
	Alias  string // empty: no alias
}

func (*TableName) tableExpr() {}

// JoinKind distinguishes the join forms the binder supports.
type JoinKind int

const (
	// InnerJoin is `JOIN ... [ON expr]`; a nil On is equivalent to CrossJoin.
	InnerJoin JoinKind = iota
	CrossJoin
)

// Join is a two-sided FROM item; On is nil for CrossJoin and for
// `INNER JOIN` with no ON clause.
type Join struct {
	Left, Right TableExpr
	Kind        JoinKind
	On          Expr
}

func (*Join) tableExpr() {}

// Derived is a subquery used as a FROM item, always aliased.
type Derived struct {
	Subquery *Select
	Alias    string
}

func (*Derived) tableExpr() {}

// SelectItem is one entry of a SELECT list.
type SelectItem struct {
	// Wildcard, when true, represents `*` or `qualifier.*`; Expr/Alias are
	// unused in that case.
	Wildcard          bool
	WildcardQualifier string

	Expr  Expr
	Alias string // empty: unaliased: gets "?column?" unless Expr is a ColumnRef
}

// Select is a SELECT statement; From is nil for a FROM-less SELECT (binds
// to the `dual` pseudo-table).
type Select struct {
	SelectList []SelectItem
	From       []TableExpr
	Where      Expr
	GroupBy    []Expr
	Having     Expr
}

func (*Select) statement() {}

// ColumnType is the AST-level spelling of a column's declared data type,
// prior to translation via the Type conversion table.
type ColumnType int

const (
	ColInt ColumnType = iota
	ColVarchar
	ColBoolean
	// ColUnknown carries the raw, unrecognized type name for error
	// reporting; binding it is a TypeError.
	ColUnknown
)

// ColumnDef is one column in a CREATE TABLE statement.
type ColumnDef struct {
	Name     string
	DataType ColumnType
	RawType  string // only meaningful when DataType == ColUnknown
	Nullable bool
}

// CreateSchema is `CREATE SCHEMA name`.
type CreateSchema struct{ Name string }

func (*CreateSchema) statement() {}

// DropSchema is `DROP SCHEMA name, ...`.
type DropSchema struct{ Names []string }

func (*DropSchema) statement() {}

// CreateTable is `CREATE TABLE [schema.]table (columns...)`.
type CreateTable struct {
	Schema  string // empty: current schema
	Table   string
	Columns []ColumnDef
}

func (*CreateTable) statement() {}

// DropTable is `DROP TABLE [schema.]table, ...`.
type DropTable struct{ Tables []TableName }

func (*DropTable) statement() {}

// ShowTables is `SHOW TABLES [FROM schema]`.
type ShowTables struct{ Schema string } // empty: current schema

func (*ShowTables) statement() {}

// Use is `USE schema`.
type Use struct{ Schema string }

func (*Use) statement() {}

// Explain is `EXPLAIN stmt`.
type Explain struct{ Inner Statement }

func (*Explain) statement() {}

// Insert is `INSERT INTO [schema.]table VALUES (...), ...`; each row is a
// list of literal-only value expressions — the binder requires each value
// to already be a literal.
type Insert struct {
	Table TableName
	Rows  [][]Expr
}

func (*Insert) statement() {}
