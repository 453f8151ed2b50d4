// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hartmut/reprise/ent/lifecycleevent"
	"github.com/hartmut/reprise/ent/predicate"
)

// LifecycleEventQuery is the builder for querying LifecycleEvent entities.
type LifecycleEventQuery struct {
	config
	ctx        *QueryContext
	order      []lifecycleevent.OrderOption
	inters     []Interceptor
	predicates []predicate.LifecycleEvent
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the LifecycleEventQuery builder.
func (leq *LifecycleEventQuery) Where(ps ...predicate.LifecycleEvent) *LifecycleEventQuery {
	leq.predicates = append(leq.predicates, ps...)
	return leq
}

// Limit the number of records to be returned by this query.
func (leq *LifecycleEventQuery) Limit(limit int) *LifecycleEventQuery {
	leq.ctx.Limit = &limit
	return leq
}

// Offset to start from.
func (leq *LifecycleEventQuery) Offset(offset int) *LifecycleEventQuery {
	leq.ctx.Offset = &offset
	return leq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (leq *LifecycleEventQuery) Unique(unique bool) *LifecycleEventQuery {
	leq.ctx.Unique = &unique
	return leq
}

// Order specifies how the records should be ordered.
func (leq *LifecycleEventQuery) Order(o ...lifecycleevent.OrderOption) *LifecycleEventQuery {
	leq.order = append(leq.order, o...)
	return leq
}

// First returns the first LifecycleEvent entity from the query.
// Returns a *NotFoundError when no LifecycleEvent was found.
func (leq *LifecycleEventQuery) First(ctx context.Context) (*LifecycleEvent, error) {
	nodes, err := leq.Limit(1).All(setContextOp(ctx, leq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{lifecycleevent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (leq *LifecycleEventQuery) FirstX(ctx context.Context) *LifecycleEvent {
	node, err := leq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first LifecycleEvent ID from the query.
// Returns a *NotFoundError when no LifecycleEvent ID was found.
func (leq *LifecycleEventQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = leq.Limit(1).IDs(setContextOp(ctx, leq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{lifecycleevent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (leq *LifecycleEventQuery) FirstIDX(ctx context.Context) int {
	id, err := leq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single LifecycleEvent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one LifecycleEvent entity is found.
// Returns a *NotFoundError when no LifecycleEvent entities are found.
func (leq *LifecycleEventQuery) Only(ctx context.Context) (*LifecycleEvent, error) {
	nodes, err := leq.Limit(2).All(setContextOp(ctx, leq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{lifecycleevent.Label}
	default:
		return nil, &NotSingularError{lifecycleevent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (leq *LifecycleEventQuery) OnlyX(ctx context.Context) *LifecycleEvent {
	node, err := leq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only LifecycleEvent ID in the query.
// Returns a *NotSingularError when more than one LifecycleEvent ID is found.
// Returns a *NotFoundError when no entities are found.
func (leq *LifecycleEventQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = leq.Limit(2).IDs(setContextOp(ctx, leq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{lifecycleevent.Label}
	default:
		err = &NotSingularError{lifecycleevent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (leq *LifecycleEventQuery) OnlyIDX(ctx context.Context) int {
	id, err := leq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of LifecycleEvents.
func (leq *LifecycleEventQuery) All(ctx context.Context) ([]*LifecycleEvent, error) {
	ctx = setContextOp(ctx, leq.ctx, ent.OpQueryAll)
	if err := leq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*LifecycleEvent, *LifecycleEventQuery]()
	return withInterceptors[[]*LifecycleEvent](ctx, leq, qr, leq.inters)
}

// AllX is like All, but panics if an error occurs.
func (leq *LifecycleEventQuery) AllX(ctx context.Context) []*LifecycleEvent {
	nodes, err := leq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of LifecycleEvent IDs.
func (leq *LifecycleEventQuery) IDs(ctx context.Context) (ids []int, err error) {
	if leq.ctx.Unique == nil && leq.path != nil {
		leq.Unique(true)
	}
	ctx = setContextOp(ctx, leq.ctx, ent.OpQueryIDs)
	if err = leq.Select(lifecycleevent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (leq *LifecycleEventQuery) IDsX(ctx context.Context) []int {
	ids, err := leq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (leq *LifecycleEventQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, leq.ctx, ent.OpQueryCount)
	if err := leq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, leq, querierCount[*LifecycleEventQuery](), leq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (leq *LifecycleEventQuery) CountX(ctx context.Context) int {
	count, err := leq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (leq *LifecycleEventQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, leq.ctx, ent.OpQueryExist)
	switch _, err := leq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (leq *LifecycleEventQuery) ExistX(ctx context.Context) bool {
	exist, err := leq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the LifecycleEventQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (leq *LifecycleEventQuery) Clone() *LifecycleEventQuery {
	if leq == nil {
		return nil
	}
	return &LifecycleEventQuery{
		config:     leq.config,
		ctx:        leq.ctx.Clone(),
		order:      append([]lifecycleevent.OrderOption{}, leq.order...),
		inters:     append([]Interceptor{}, leq.inters...),
		predicates: append([]predicate.LifecycleEvent{}, leq.predicates...),
		// clone intermediate query.
		sql:  leq.sql.Clone(),
		path: leq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.LifecycleEvent.Query().
//		GroupBy(lifecycleevent.FieldSequence).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (leq *LifecycleEventQuery) GroupBy(field string, fields ...string) *LifecycleEventGroupBy {
	leq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &LifecycleEventGroupBy{build: leq}
	grbuild.flds = &leq.ctx.Fields
	grbuild.label = lifecycleevent.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//	}
//
//	client.LifecycleEvent.Query().
//		Select(lifecycleevent.FieldSequence).
//		Scan(ctx, &v)
func (leq *LifecycleEventQuery) Select(fields ...string) *LifecycleEventSelect {
	leq.ctx.Fields = append(leq.ctx.Fields, fields...)
	sbuild := &LifecycleEventSelect{LifecycleEventQuery: leq}
	sbuild.label = lifecycleevent.Label
	sbuild.flds, sbuild.scan = &leq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a LifecycleEventSelect configured with the given aggregations.
func (leq *LifecycleEventQuery) Aggregate(fns ...AggregateFunc) *LifecycleEventSelect {
	return leq.Select().Aggregate(fns...)
}

func (leq *LifecycleEventQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range leq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, leq); err != nil {
				return err
			}
		}
	}
	for _, f := range leq.ctx.Fields {
		if !lifecycleevent.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if leq.path != nil {
		prev, err := leq.path(ctx)
		if err != nil {
			return err
		}
		leq.sql = prev
	}
	return nil
}

func (leq *LifecycleEventQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*LifecycleEvent, error) {
	var (
		nodes = []*LifecycleEvent{}
		_spec = leq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*LifecycleEvent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &LifecycleEvent{config: leq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, leq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (leq *LifecycleEventQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := leq.querySpec()
	_spec.Node.Columns = leq.ctx.Fields
	if len(leq.ctx.Fields) > 0 {
		_spec.Unique = leq.ctx.Unique != nil && *leq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, leq.driver, _spec)
}

func (leq *LifecycleEventQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(lifecycleevent.Table, lifecycleevent.Columns, sqlgraph.NewFieldSpec(lifecycleevent.FieldID, field.TypeInt))
	_spec.From = leq.sql
	if unique := leq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if leq.path != nil {
		_spec.Unique = true
	}
	if fields := leq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lifecycleevent.FieldID)
		for i := range fields {
			if fields[i] != lifecycleevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := leq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := leq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := leq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := leq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (leq *LifecycleEventQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(leq.driver.Dialect())
	t1 := builder.Table(lifecycleevent.Table)
	columns := leq.ctx.Fields
	if len(columns) == 0 {
		columns = lifecycleevent.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if leq.sql != nil {
		selector = leq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if leq.ctx.Unique != nil && *leq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range leq.predicates {
		p(selector)
	}
	for _, p := range leq.order {
		p(selector)
	}
	if offset := leq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := leq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// LifecycleEventGroupBy is the group-by builder for LifecycleEvent entities.
type LifecycleEventGroupBy struct {
	selector
	build *LifecycleEventQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (legb *LifecycleEventGroupBy) Aggregate(fns ...AggregateFunc) *LifecycleEventGroupBy {
	legb.fns = append(legb.fns, fns...)
	return legb
}

// Scan applies the selector query and scans the result into the given value.
func (legb *LifecycleEventGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, legb.build.ctx, ent.OpQueryGroupBy)
	if err := legb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LifecycleEventQuery, *LifecycleEventGroupBy](ctx, legb.build, legb, legb.build.inters, v)
}

func (legb *LifecycleEventGroupBy) sqlScan(ctx context.Context, root *LifecycleEventQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(legb.fns))
	for _, fn := range legb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*legb.flds)+len(legb.fns))
		for _, f := range *legb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*legb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := legb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// LifecycleEventSelect is the builder for selecting fields of LifecycleEvent entities.
type LifecycleEventSelect struct {
	*LifecycleEventQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (les *LifecycleEventSelect) Aggregate(fns ...AggregateFunc) *LifecycleEventSelect {
	les.fns = append(les.fns, fns...)
	return les
}

// Scan applies the selector query and scans the result into the given value.
func (les *LifecycleEventSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, les.ctx, ent.OpQuerySelect)
	if err := les.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LifecycleEventQuery, *LifecycleEventSelect](ctx, les.LifecycleEventQuery, les, les.inters, v)
}

func (les *LifecycleEventSelect) sqlScan(ctx context.Context, root *LifecycleEventQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(les.fns))
	for _, fn := range les.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*les.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := les.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
