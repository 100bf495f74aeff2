package planbuilder

import (
	"github.com/quilldb/quill/ast"
	"github.com/quilldb/quill/catalog"
	"github.com/quilldb/quill/plan"
	"github.com/quilldb/quill/sql"
	"github.com/quilldb/quill/sqlerrors"
	"github.com/quilldb/quill/types"
)

// Bind turns a parsed ast.Statement into a logical plan.Plan and the Scope
// describing its output columns. Every statement kind reachable from
// quill's supported surface is dispatched here.
func Bind(ctx *sql.Context, stmt ast.Statement) (plan.Plan, Scope, error) {
	switch s := stmt.(type) {
	case *ast.CreateSchema:
		return &plan.DDL{Job: plan.CreateSchemaJob{Name: s.Name}}, nil, nil

	case *ast.DropSchema:
		return &plan.DDL{Job: plan.DropSchemasJob{Names: s.Names}}, nil, nil

	case *ast.CreateTable:
		def, err := bindCreateTable(ctx, s)
		if err != nil {
			return nil, nil, err
		}
		return &plan.DDL{Job: plan.CreateTableJob{Schema: ctx.ResolveSchema(s.Schema), Table: def}}, nil, nil

	case *ast.DropTable:
		tables := make([]catalog.QualifiedTable, len(s.Tables))
		for i, t := range s.Tables {
			tables[i] = catalog.QualifiedTable{Schema: ctx.ResolveSchema(t.Schema), Table: t.Table}
		}
		return &plan.DDL{Job: plan.DropTablesJob{Tables: tables}}, nil, nil

	case *ast.ShowTables:
		return &plan.DDL{Job: plan.ShowTablesJob{Schema: ctx.ResolveSchema(s.Schema)}}, nil, nil

	case *ast.Use:
		return &plan.Use{Schema: s.Schema}, nil, nil

	case *ast.Explain:
		innerPlan, _, err := Bind(ctx, s.Inner)
		if err != nil {
			return nil, nil, err
		}
		return &plan.Explain{Text: plan.Stringify(innerPlan)}, nil, nil

	case *ast.Insert:
		return bindInsert(ctx, s)

	case *ast.Select:
		return bindSelect(ctx, s)

	default:
		return nil, nil, sqlerrors.ErrPlanner.New("unsupported statement")
	}
}

// columnTypeOf translates an AST-level column type spelling into the
// runtime type lattice. An unrecognized spelling is a TypeError, not a
// planner error.
func columnTypeOf(ct ast.ColumnType, raw string) (types.Type, error) {
	switch ct {
	case ast.ColInt:
		return types.Int, nil
	case ast.ColVarchar:
		return types.String, nil
	case ast.ColBoolean:
		return types.Boolean, nil
	default:
		return types.Never, sqlerrors.ErrType.New("unknown column type: " + raw)
	}
}

func bindCreateTable(ctx *sql.Context, s *ast.CreateTable) (*catalog.TableDefinition, error) {
	cols := make([]catalog.ColumnDefinition, len(s.Columns))
	for i, c := range s.Columns {
		t, err := columnTypeOf(c.DataType, c.RawType)
		if err != nil {
			return nil, err
		}
		cols[i] = catalog.ColumnDefinition{Name: c.Name, Type: t, Nullable: c.Nullable}
	}
	return &catalog.TableDefinition{Name: s.Table, Columns: cols}, nil
}

// bindInsert binds an INSERT statement: every value must already be a
// literal, every row must carry exactly len(columns) values, and each
// literal is cast to its column's declared type before being stored.
func bindInsert(ctx *sql.Context, s *ast.Insert) (plan.Plan, Scope, error) {
	schema := ctx.ResolveSchema(s.Table.Schema)
	def, err := ctx.Catalog.Table(schema, s.Table.Table)
	if err != nil {
		return nil, nil, err
	}

	rows := make([]types.Row, len(s.Rows))
	for i, values := range s.Rows {
		if len(values) != len(def.Columns) {
			return nil, nil, sqlerrors.ErrPlanner.New("insert arity mismatch")
		}
		row := make(types.Row, len(values))
		for j, v := range values {
			lit, ok := v.(*ast.Literal)
			if !ok {
				return nil, nil, sqlerrors.ErrPlanner.New("insert values must be literals")
			}
			row[j] = lit.Value.Cast(def.Columns[j].Type)
		}
		rows[i] = row
	}

	return &plan.DML{Job: plan.InsertJob{Schema: schema, Table: s.Table.Table, Rows: rows}}, nil, nil
}
