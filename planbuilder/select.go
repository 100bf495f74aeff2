package planbuilder

import (
	"github.com/quilldb/quill/ast"
	"github.com/quilldb/quill/catalog"
	"github.com/quilldb/quill/expression"
	"github.com/quilldb/quill/plan"
	"github.com/quilldb/quill/sql"
	"github.com/quilldb/quill/sqlerrors"
)

const anonymousColumn = "?column?"

// bindSelect implements SELECT binding, the heart of the Binder.
func bindSelect(ctx *sql.Context, sel *ast.Select) (plan.Plan, Scope, error) {
	fromPlan, fromScope, err := bindFrom(ctx, sel.From)
	if err != nil {
		return nil, nil, err
	}

	if sel.Where != nil {
		pred, err := bindScalar(fromScope, sel.Where)
		if err != nil {
			return nil, nil, err
		}
		fromPlan = &plan.Filter{Pred: pred, Input: fromPlan}
	}

	items, err := expandSelectList(sel.SelectList, fromScope)
	if err != nil {
		return nil, nil, err
	}

	walkTargets := make([]ast.Expr, 0, len(items)+1)
	for _, it := range items {
		walkTargets = append(walkTargets, it.expr)
	}
	if sel.Having != nil {
		walkTargets = append(walkTargets, sel.Having)
	}
	aggregateRefs := detectAggregates(walkTargets...)

	var groupScope Scope
	currentPlan := fromPlan

	switch {
	case len(sel.GroupBy) > 0:
		groupScope, currentPlan, err = bindGroupBy(fromScope, fromPlan, sel.GroupBy, aggregateRefs)
		if err != nil {
			return nil, nil, err
		}
	case len(aggregateRefs) > 0:
		groupScope, currentPlan, err = bindGroupBy(fromScope, fromPlan, nil, aggregateRefs)
		if err != nil {
			return nil, nil, err
		}
	default:
		groupScope = fromScope
	}

	if sel.Having != nil {
		pred, err := bindScalar(groupScope, sel.Having)
		if err != nil {
			return nil, nil, err
		}
		currentPlan = &plan.Filter{Pred: pred, Input: currentPlan}
	}

	var mapScalars []expression.ScalarExpr
	indices := make([]int, len(items))
	outScope := make(Scope, len(items))
	for i, it := range items {
		bound, err := bindScalar(groupScope, it.expr)
		if err != nil {
			return nil, nil, err
		}
		if col, ok := bound.(expression.Column); ok {
			indices[i] = col.Index
		} else {
			mapScalars = append(mapScalars, bound)
			indices[i] = len(groupScope) + len(mapScalars) - 1
		}
		outScope[i] = &Variable{Name: it.alias}
	}

	if len(mapScalars) > 0 {
		currentPlan = &plan.Map{Scalars: mapScalars, Input: currentPlan}
	}
	currentPlan = &plan.Project{Indices: indices, Input: currentPlan}

	return currentPlan, outScope, nil
}

// bindGroupBy builds the group scope and plan.Aggregate node shared by the
// GROUP BY and scalar-aggregation cases. keyExprs is nil for scalar
// aggregation.
func bindGroupBy(fromScope Scope, input plan.Plan, keyExprs []ast.Expr, aggregateRefs []*aggregateRef) (Scope, plan.Plan, error) {
	groupScope := make(Scope, 0, len(keyExprs)+len(aggregateRefs))
	boundKeys := make([]expression.ScalarExpr, 0, len(keyExprs))

	for _, key := range keyExprs {
		bound, err := bindScalar(fromScope, key)
		if err != nil {
			return nil, nil, err
		}
		boundKeys = append(boundKeys, bound)

		if col, ok := key.(*ast.ColumnRef); ok {
			idx, err := fromScope.ResolveColumn(col.Parts)
			if err != nil {
				return nil, nil, err
			}
			v := *fromScope[idx]
			groupScope = append(groupScope, &v)
		} else {
			groupScope = append(groupScope, &Variable{Name: anonymousColumn, Origin: key})
		}
	}

	calls := make([]plan.AggregateCall, len(aggregateRefs))
	for i, ref := range aggregateRefs {
		boundArgs := make([]expression.ScalarExpr, len(ref.Args))
		for j, a := range ref.Args {
			b, err := bindScalar(fromScope, a)
			if err != nil {
				return nil, nil, err
			}
			boundArgs[j] = b
		}
		calls[i] = plan.AggregateCall{FuncName: ref.FuncName, Args: boundArgs}
		groupScope = append(groupScope, &Variable{Name: anonymousColumn, Origin: ref.Origin})
	}

	return groupScope, &plan.Aggregate{GroupBy: boundKeys, Aggregates: calls, Input: input}, nil
}

type selectItem struct {
	expr  ast.Expr
	alias string
}

// expandSelectList expands wildcards against fromScope and assigns default
// aliases.
func expandSelectList(items []ast.SelectItem, fromScope Scope) ([]selectItem, error) {
	var out []selectItem
	for _, item := range items {
		if !item.Wildcard {
			alias := item.Alias
			if alias == "" {
				if col, ok := item.Expr.(*ast.ColumnRef); ok {
					alias = col.Parts[len(col.Parts)-1]
				} else {
					alias = anonymousColumn
				}
			}
			out = append(out, selectItem{expr: item.Expr, alias: alias})
			continue
		}

		matched := false
		for _, v := range fromScope {
			if item.WildcardQualifier != "" && !(v.HasPrefix && v.Table == item.WildcardQualifier) {
				continue
			}
			matched = true
			out = append(out, selectItem{expr: variableColumnRef(v), alias: v.Name})
		}
		if item.WildcardQualifier != "" && !matched {
			return nil, sqlerrors.ErrPlanner.New("unknown table qualifier in wildcard: " + item.WildcardQualifier)
		}
	}
	return out, nil
}

func variableColumnRef(v *Variable) *ast.ColumnRef {
	var parts []string
	if v.HasPrefix {
		if v.Schema != "" {
			parts = append(parts, v.Schema)
		}
		parts = append(parts, v.Table)
	}
	parts = append(parts, v.Name)
	return &ast.ColumnRef{Parts: parts}
}

// bindFrom binds sel.From, reducing multiple comma-separated items into a
// left-deep cross-join tree.
func bindFrom(ctx *sql.Context, from []ast.TableExpr) (plan.Plan, Scope, error) {
	if len(from) == 0 {
		return &plan.Get{Schema: "system", Table: "dual"}, Scope{}, nil
	}

	p, scope, err := bindTableExpr(ctx, from[0])
	if err != nil {
		return nil, nil, err
	}
	for _, te := range from[1:] {
		rp, rscope, err := bindTableExpr(ctx, te)
		if err != nil {
			return nil, nil, err
		}
		p = &plan.Join{Left: p, Right: rp}
		scope = scope.Extend(rscope)
	}
	return p, scope, nil
}

func bindTableExpr(ctx *sql.Context, te ast.TableExpr) (plan.Plan, Scope, error) {
	switch t := te.(type) {
	case *ast.TableName:
		schema := ctx.ResolveSchema(t.Schema)
		table, err := ctx.Catalog.Table(schema, t.Table)
		if err != nil {
			return nil, nil, err
		}
		scope := tableScope(schema, t.Table, t.Alias, table)
		return &plan.Get{Schema: schema, Table: t.Table}, scope, nil

	case *ast.Join:
		leftPlan, leftScope, err := bindTableExpr(ctx, t.Left)
		if err != nil {
			return nil, nil, err
		}
		rightPlan, rightScope, err := bindTableExpr(ctx, t.Right)
		if err != nil {
			return nil, nil, err
		}
		joined := leftScope.Extend(rightScope)
		p := plan.Plan(&plan.Join{Left: leftPlan, Right: rightPlan})
		if t.Kind == ast.InnerJoin && t.On != nil {
			pred, err := bindScalar(joined, t.On)
			if err != nil {
				return nil, nil, err
			}
			p = &plan.Filter{Pred: pred, Input: p}
		}
		return p, joined, nil

	case *ast.Derived:
		innerPlan, innerScope, err := bindSelect(ctx, t.Subquery)
		if err != nil {
			return nil, nil, err
		}
		aliased := make(Scope, len(innerScope))
		for i, v := range innerScope {
			aliased[i] = &Variable{HasPrefix: true, Table: t.Alias, Name: v.Name}
		}
		return innerPlan, aliased, nil

	default:
		return nil, nil, sqlerrors.ErrPlanner.New("unsupported FROM item")
	}
}

func tableScope(schema, table, alias string, def *catalog.TableDefinition) Scope {
	prefixTable := table
	prefixSchema := schema
	if alias != "" {
		prefixTable = alias
		prefixSchema = ""
	}
	scope := make(Scope, len(def.Columns))
	for i, col := range def.Columns {
		scope[i] = &Variable{
			HasPrefix: true,
			Schema:    prefixSchema,
			Table:     prefixTable,
			Name:      col.Name,
		}
	}
	return scope
}
