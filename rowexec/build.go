package rowexec

import (
	"github.com/quilldb/quill/expression"
	"github.com/quilldb/quill/plan"
	"github.com/quilldb/quill/sql"
	"github.com/quilldb/quill/sqlerrors"
	"github.com/quilldb/quill/types"
)

// Build walks p bottom-up, producing an already-primed Executor together
// with its output Schema.
func Build(ctx *sql.Context, p plan.Plan) (Executor, types.Schema, error) {
	switch n := p.(type) {
	case *plan.Get:
		return buildGet(ctx, n)
	case *plan.Filter:
		return buildFilter(ctx, n)
	case *plan.Map:
		return buildMap(ctx, n)
	case *plan.Project:
		return buildProject(ctx, n)
	case *plan.Join:
		return buildJoin(ctx, n)
	case *plan.Aggregate:
		return buildAggregate(ctx, n)
	case *plan.Explain:
		return buildExplain(n)
	case *plan.Use:
		return buildUse(ctx, n)
	case *plan.DDL:
		return buildDDL(ctx, n)
	case *plan.DML:
		return buildDML(ctx, n)
	default:
		return nil, nil, sqlerrors.ErrUnknown.New("unhandled plan node")
	}
}

func buildGet(ctx *sql.Context, n *plan.Get) (Executor, types.Schema, error) {
	def, err := ctx.Catalog.Table(n.Schema, n.Table)
	if err != nil {
		return nil, nil, err
	}
	table, err := ctx.Storage.Get(n.Schema, n.Table)
	if err != nil {
		return nil, nil, err
	}
	return newScanExecutor(table), def.Schema(), nil
}

func buildFilter(ctx *sql.Context, n *plan.Filter) (Executor, types.Schema, error) {
	input, schema, err := Build(ctx, n.Input)
	if err != nil {
		return nil, nil, err
	}
	pred, err := expression.TypeCheck(schemaResolver{schema}, n.Pred)
	if err != nil {
		return nil, nil, err
	}
	return newFilterExecutor(pred, input), schema, nil
}

func buildMap(ctx *sql.Context, n *plan.Map) (Executor, types.Schema, error) {
	input, schema, err := Build(ctx, n.Input)
	if err != nil {
		return nil, nil, err
	}
	resolver := schemaResolver{schema}
	scalars := make([]expression.Expression, len(n.Scalars))
	for i, s := range n.Scalars {
		typed, err := expression.TypeCheck(resolver, s)
		if err != nil {
			return nil, nil, err
		}
		scalars[i] = typed
	}
	extCols := make([]*types.Column, len(scalars))
	for i, s := range scalars {
		extCols[i] = &types.Column{Name: "?column?", Type: s.Type(), Nullable: true}
	}
	return newMapExecutor(scalars, input), schema.Extend(extCols...), nil
}

func buildProject(ctx *sql.Context, n *plan.Project) (Executor, types.Schema, error) {
	input, schema, err := Build(ctx, n.Input)
	if err != nil {
		return nil, nil, err
	}
	return newProjectExecutor(n.Indices, input), schema.Project(n.Indices), nil
}

func buildJoin(ctx *sql.Context, n *plan.Join) (Executor, types.Schema, error) {
	left, leftSchema, err := Build(ctx, n.Left)
	if err != nil {
		return nil, nil, err
	}
	right, rightSchema, err := Build(ctx, n.Right)
	if err != nil {
		return nil, nil, err
	}
	exec, err := newNestedLoopJoinExecutor(ctx, left, right)
	if err != nil {
		return nil, nil, err
	}
	return exec, leftSchema.Extend(rightSchema...), nil
}

func buildAggregate(ctx *sql.Context, n *plan.Aggregate) (Executor, types.Schema, error) {
	input, schema, err := Build(ctx, n.Input)
	if err != nil {
		return nil, nil, err
	}
	resolver := schemaResolver{schema}

	groupBy := make([]expression.Expression, len(n.GroupBy))
	for i, g := range n.GroupBy {
		typed, err := expression.TypeCheck(resolver, g)
		if err != nil {
			return nil, nil, err
		}
		groupBy[i] = typed
	}

	calls := make([]*boundAggregateCall, len(n.Aggregates))
	for i, call := range n.Aggregates {
		overload, args, err := expression.AggregateTypeCheck(resolver, call.FuncName, call.Args)
		if err != nil {
			return nil, nil, err
		}
		calls[i] = &boundAggregateCall{overload: overload, args: args}
	}

	// The output schema follows the executor's actual emitted rows: group-by
	// column types followed by aggregate return types.
	outSchema := make(types.Schema, 0, len(groupBy)+len(calls))
	for _, g := range groupBy {
		outSchema = append(outSchema, &types.Column{Name: "?column?", Type: g.Type(), Nullable: true})
	}
	for _, c := range calls {
		outSchema = append(outSchema, &types.Column{Name: "?column?", Type: c.overload.RetType, Nullable: true})
	}

	return newHashAggregateExecutor(groupBy, calls, input), outSchema, nil
}

func buildExplain(n *plan.Explain) (Executor, types.Schema, error) {
	schema := types.Schema{{Name: "QUERY PLAN", Type: types.String, Nullable: false}}
	rows := []types.Row{types.NewRow(types.NewString(n.Text))}
	return newValuesExecutor(rows), schema, nil
}

func buildUse(ctx *sql.Context, n *plan.Use) (Executor, types.Schema, error) {
	ctx.CurrentSchema = n.Schema
	return newValuesExecutor(nil), types.Schema{}, nil
}

func buildDDL(ctx *sql.Context, n *plan.DDL) (Executor, types.Schema, error) {
	switch job := n.Job.(type) {
	case plan.CreateSchemaJob:
		if err := ctx.Catalog.CreateSchema(job.Name); err != nil {
			return nil, nil, err
		}
		return newValuesExecutor(nil), types.Schema{}, nil

	case plan.DropSchemasJob:
		for _, name := range job.Names {
			ctx.Storage.DropSchema(name)
		}
		if err := ctx.Catalog.DropSchemas(job.Names); err != nil {
			return nil, nil, err
		}
		return newValuesExecutor(nil), types.Schema{}, nil

	case plan.CreateTableJob:
		if err := ctx.Catalog.CreateTable(job.Schema, job.Table); err != nil {
			return nil, nil, err
		}
		ctx.Storage.CreateTable(job.Schema, job.Table.Name)
		return newValuesExecutor(nil), types.Schema{}, nil

	case plan.DropTablesJob:
		for _, t := range job.Tables {
			ctx.Storage.DropTable(t.Schema, t.Table)
		}
		if err := ctx.Catalog.DropTables(job.Tables); err != nil {
			return nil, nil, err
		}
		return newValuesExecutor(nil), types.Schema{}, nil

	case plan.ShowTablesJob:
		names, err := ctx.Catalog.ShowTables(job.Schema)
		if err != nil {
			return nil, nil, err
		}
		rows := make([]types.Row, len(names))
		for i, name := range names {
			rows[i] = types.NewRow(types.NewString(name))
		}
		schema := types.Schema{{Name: "table_name", Type: types.String, Nullable: false}}
		return newValuesExecutor(rows), schema, nil

	default:
		return nil, nil, sqlerrors.ErrUnknown.New("unhandled DDL job")
	}
}

func buildDML(ctx *sql.Context, n *plan.DML) (Executor, types.Schema, error) {
	switch job := n.Job.(type) {
	case plan.InsertJob:
		table, err := ctx.Storage.Get(job.Schema, job.Table)
		if err != nil {
			return nil, nil, err
		}
		for _, row := range job.Rows {
			table.Insert(row)
		}
		return newValuesExecutor(nil), types.Schema{}, nil
	default:
		return nil, nil, sqlerrors.ErrUnknown.New("unhandled DML job")
	}
}
