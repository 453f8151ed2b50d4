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
	"github.com/hartmut/reprise/ent/predicate"
	"github.com/hartmut/reprise/ent/scheduledsession"
)

// ScheduledSessionQuery is the builder for querying ScheduledSession entities.
type ScheduledSessionQuery struct {
	config
	ctx        *QueryContext
	order      []scheduledsession.OrderOption
	inters     []Interceptor
	predicates []predicate.ScheduledSession
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ScheduledSessionQuery builder.
func (ssq *ScheduledSessionQuery) Where(ps ...predicate.ScheduledSession) *ScheduledSessionQuery {
	ssq.predicates = append(ssq.predicates, ps...)
	return ssq
}

// Limit the number of records to be returned by this query.
func (ssq *ScheduledSessionQuery) Limit(limit int) *ScheduledSessionQuery {
	ssq.ctx.Limit = &limit
	return ssq
}

// Offset to start from.
func (ssq *ScheduledSessionQuery) Offset(offset int) *ScheduledSessionQuery {
	ssq.ctx.Offset = &offset
	return ssq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ssq *ScheduledSessionQuery) Unique(unique bool) *ScheduledSessionQuery {
	ssq.ctx.Unique = &unique
	return ssq
}

// Order specifies how the records should be ordered.
func (ssq *ScheduledSessionQuery) Order(o ...scheduledsession.OrderOption) *ScheduledSessionQuery {
	ssq.order = append(ssq.order, o...)
	return ssq
}

// First returns the first ScheduledSession entity from the query.
// Returns a *NotFoundError when no ScheduledSession was found.
func (ssq *ScheduledSessionQuery) First(ctx context.Context) (*ScheduledSession, error) {
	nodes, err := ssq.Limit(1).All(setContextOp(ctx, ssq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{scheduledsession.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ssq *ScheduledSessionQuery) FirstX(ctx context.Context) *ScheduledSession {
	node, err := ssq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ScheduledSession ID from the query.
// Returns a *NotFoundError when no ScheduledSession ID was found.
func (ssq *ScheduledSessionQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = ssq.Limit(1).IDs(setContextOp(ctx, ssq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{scheduledsession.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ssq *ScheduledSessionQuery) FirstIDX(ctx context.Context) int {
	id, err := ssq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ScheduledSession entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ScheduledSession entity is found.
// Returns a *NotFoundError when no ScheduledSession entities are found.
func (ssq *ScheduledSessionQuery) Only(ctx context.Context) (*ScheduledSession, error) {
	nodes, err := ssq.Limit(2).All(setContextOp(ctx, ssq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{scheduledsession.Label}
	default:
		return nil, &NotSingularError{scheduledsession.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ssq *ScheduledSessionQuery) OnlyX(ctx context.Context) *ScheduledSession {
	node, err := ssq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ScheduledSession ID in the query.
// Returns a *NotSingularError when more than one ScheduledSession ID is found.
// Returns a *NotFoundError when no entities are found.
func (ssq *ScheduledSessionQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = ssq.Limit(2).IDs(setContextOp(ctx, ssq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{scheduledsession.Label}
	default:
		err = &NotSingularError{scheduledsession.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ssq *ScheduledSessionQuery) OnlyIDX(ctx context.Context) int {
	id, err := ssq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ScheduledSessions.
func (ssq *ScheduledSessionQuery) All(ctx context.Context) ([]*ScheduledSession, error) {
	ctx = setContextOp(ctx, ssq.ctx, ent.OpQueryAll)
	if err := ssq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ScheduledSession, *ScheduledSessionQuery]()
	return withInterceptors[[]*ScheduledSession](ctx, ssq, qr, ssq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ssq *ScheduledSessionQuery) AllX(ctx context.Context) []*ScheduledSession {
	nodes, err := ssq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ScheduledSession IDs.
func (ssq *ScheduledSessionQuery) IDs(ctx context.Context) (ids []int, err error) {
	if ssq.ctx.Unique == nil && ssq.path != nil {
		ssq.Unique(true)
	}
	ctx = setContextOp(ctx, ssq.ctx, ent.OpQueryIDs)
	if err = ssq.Select(scheduledsession.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ssq *ScheduledSessionQuery) IDsX(ctx context.Context) []int {
	ids, err := ssq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ssq *ScheduledSessionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ssq.ctx, ent.OpQueryCount)
	if err := ssq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ssq, querierCount[*ScheduledSessionQuery](), ssq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ssq *ScheduledSessionQuery) CountX(ctx context.Context) int {
	count, err := ssq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ssq *ScheduledSessionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ssq.ctx, ent.OpQueryExist)
	switch _, err := ssq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ssq *ScheduledSessionQuery) ExistX(ctx context.Context) bool {
	exist, err := ssq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ScheduledSessionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ssq *ScheduledSessionQuery) Clone() *ScheduledSessionQuery {
	if ssq == nil {
		return nil
	}
	return &ScheduledSessionQuery{
		config:     ssq.config,
		ctx:        ssq.ctx.Clone(),
		order:      append([]scheduledsession.OrderOption{}, ssq.order...),
		inters:     append([]Interceptor{}, ssq.inters...),
		predicates: append([]predicate.ScheduledSession{}, ssq.predicates...),
		// clone intermediate query.
		sql:  ssq.sql.Clone(),
		path: ssq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		SessionID string `json:"session_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ScheduledSession.Query().
//		GroupBy(scheduledsession.FieldSessionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (ssq *ScheduledSessionQuery) GroupBy(field string, fields ...string) *ScheduledSessionGroupBy {
	ssq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ScheduledSessionGroupBy{build: ssq}
	grbuild.flds = &ssq.ctx.Fields
	grbuild.label = scheduledsession.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		SessionID string `json:"session_id,omitempty"`
//	}
//
//	client.ScheduledSession.Query().
//		Select(scheduledsession.FieldSessionID).
//		Scan(ctx, &v)
func (ssq *ScheduledSessionQuery) Select(fields ...string) *ScheduledSessionSelect {
	ssq.ctx.Fields = append(ssq.ctx.Fields, fields...)
	sbuild := &ScheduledSessionSelect{ScheduledSessionQuery: ssq}
	sbuild.label = scheduledsession.Label
	sbuild.flds, sbuild.scan = &ssq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ScheduledSessionSelect configured with the given aggregations.
func (ssq *ScheduledSessionQuery) Aggregate(fns ...AggregateFunc) *ScheduledSessionSelect {
	return ssq.Select().Aggregate(fns...)
}

func (ssq *ScheduledSessionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ssq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ssq); err != nil {
				return err
			}
		}
	}
	for _, f := range ssq.ctx.Fields {
		if !scheduledsession.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if ssq.path != nil {
		prev, err := ssq.path(ctx)
		if err != nil {
			return err
		}
		ssq.sql = prev
	}
	return nil
}

func (ssq *ScheduledSessionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ScheduledSession, error) {
	var (
		nodes = []*ScheduledSession{}
		_spec = ssq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ScheduledSession).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ScheduledSession{config: ssq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ssq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (ssq *ScheduledSessionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ssq.querySpec()
	_spec.Node.Columns = ssq.ctx.Fields
	if len(ssq.ctx.Fields) > 0 {
		_spec.Unique = ssq.ctx.Unique != nil && *ssq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ssq.driver, _spec)
}

func (ssq *ScheduledSessionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(scheduledsession.Table, scheduledsession.Columns, sqlgraph.NewFieldSpec(scheduledsession.FieldID, field.TypeInt))
	_spec.From = ssq.sql
	if unique := ssq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ssq.path != nil {
		_spec.Unique = true
	}
	if fields := ssq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduledsession.FieldID)
		for i := range fields {
			if fields[i] != scheduledsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := ssq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ssq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ssq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ssq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ssq *ScheduledSessionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ssq.driver.Dialect())
	t1 := builder.Table(scheduledsession.Table)
	columns := ssq.ctx.Fields
	if len(columns) == 0 {
		columns = scheduledsession.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ssq.sql != nil {
		selector = ssq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ssq.ctx.Unique != nil && *ssq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range ssq.predicates {
		p(selector)
	}
	for _, p := range ssq.order {
		p(selector)
	}
	if offset := ssq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ssq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ScheduledSessionGroupBy is the group-by builder for ScheduledSession entities.
type ScheduledSessionGroupBy struct {
	selector
	build *ScheduledSessionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (ssgb *ScheduledSessionGroupBy) Aggregate(fns ...AggregateFunc) *ScheduledSessionGroupBy {
	ssgb.fns = append(ssgb.fns, fns...)
	return ssgb
}

// Scan applies the selector query and scans the result into the given value.
func (ssgb *ScheduledSessionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ssgb.build.ctx, ent.OpQueryGroupBy)
	if err := ssgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ScheduledSessionQuery, *ScheduledSessionGroupBy](ctx, ssgb.build, ssgb, ssgb.build.inters, v)
}

func (ssgb *ScheduledSessionGroupBy) sqlScan(ctx context.Context, root *ScheduledSessionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(ssgb.fns))
	for _, fn := range ssgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*ssgb.flds)+len(ssgb.fns))
		for _, f := range *ssgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*ssgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ssgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ScheduledSessionSelect is the builder for selecting fields of ScheduledSession entities.
type ScheduledSessionSelect struct {
	*ScheduledSessionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (sss *ScheduledSessionSelect) Aggregate(fns ...AggregateFunc) *ScheduledSessionSelect {
	sss.fns = append(sss.fns, fns...)
	return sss
}

// Scan applies the selector query and scans the result into the given value.
func (sss *ScheduledSessionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, sss.ctx, ent.OpQuerySelect)
	if err := sss.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ScheduledSessionQuery, *ScheduledSessionSelect](ctx, sss.ScheduledSessionQuery, sss, sss.inters, v)
}

func (sss *ScheduledSessionSelect) sqlScan(ctx context.Context, root *ScheduledSessionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(sss.fns))
	for _, fn := range sss.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*sss.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := sss.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
