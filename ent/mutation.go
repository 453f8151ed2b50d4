// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hartmut/reprise/ent/lifecycleevent"
	"github.com/hartmut/reprise/ent/practiceevent"
	"github.com/hartmut/reprise/ent/predicate"
	"github.com/hartmut/reprise/ent/scheduledsession"
	"github.com/hartmut/reprise/ent/snapshot"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLifecycleEvent   = "LifecycleEvent"
	TypePracticeEvent    = "PracticeEvent"
	TypeScheduledSession = "ScheduledSession"
	TypeSnapshot         = "Snapshot"
)

// LifecycleEventMutation represents an operation that mutates the LifecycleEvent nodes in the graph.
type LifecycleEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	profile_id       *string
	section_id       *string
	from_state       *int
	addfrom_state    *int
	to_state         *int
	addto_state      *int
	suppressed       *bool
	tau              *float64
	addtau           *float64
	interval_days    *int
	addinterval_days *int
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LifecycleEvent, error)
	predicates       []predicate.LifecycleEvent
}

var _ ent.Mutation = (*LifecycleEventMutation)(nil)

// lifecycleeventOption allows management of the mutation configuration using functional options.
type lifecycleeventOption func(*LifecycleEventMutation)

// newLifecycleEventMutation creates new mutation for the LifecycleEvent entity.
func newLifecycleEventMutation(c config, op Op, opts ...lifecycleeventOption) *LifecycleEventMutation {
	m := &LifecycleEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLifecycleEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLifecycleEventID sets the ID field of the mutation.
func withLifecycleEventID(id int) lifecycleeventOption {
	return func(m *LifecycleEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LifecycleEvent
		)
		m.oldValue = func(ctx context.Context) (*LifecycleEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LifecycleEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLifecycleEvent sets the old LifecycleEvent of the mutation.
func withLifecycleEvent(node *LifecycleEvent) lifecycleeventOption {
	return func(m *LifecycleEventMutation) {
		m.oldValue = func(context.Context) (*LifecycleEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LifecycleEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LifecycleEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LifecycleEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LifecycleEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LifecycleEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LifecycleEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LifecycleEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LifecycleEvent entity.
// If the LifecycleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifecycleEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LifecycleEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LifecycleEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LifecycleEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LifecycleEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LifecycleEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LifecycleEvent entity.
// If the LifecycleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifecycleEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LifecycleEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProfileID sets the "profile_id" field.
func (m *LifecycleEventMutation) SetProfileID(s string) {
	m.profile_id = &s
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *LifecycleEventMutation) ProfileID() (r string, exists bool) {
	v := m.profile_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the LifecycleEvent entity.
// If the LifecycleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifecycleEventMutation) OldProfileID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *LifecycleEventMutation) ResetProfileID() {
	m.profile_id = nil
}

// SetSectionID sets the "section_id" field.
func (m *LifecycleEventMutation) SetSectionID(s string) {
	m.section_id = &s
}

// SectionID returns the value of the "section_id" field in the mutation.
func (m *LifecycleEventMutation) SectionID() (r string, exists bool) {
	v := m.section_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionID returns the old "section_id" field's value of the LifecycleEvent entity.
// If the LifecycleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifecycleEventMutation) OldSectionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionID: %w", err)
	}
	return oldValue.SectionID, nil
}

// ResetSectionID resets all changes to the "section_id" field.
func (m *LifecycleEventMutation) ResetSectionID() {
	m.section_id = nil
}

// SetFromState sets the "from_state" field.
func (m *LifecycleEventMutation) SetFromState(i int) {
	m.from_state = &i
	m.addfrom_state = nil
}

// FromState returns the value of the "from_state" field in the mutation.
func (m *LifecycleEventMutation) FromState() (r int, exists bool) {
	v := m.from_state
	if v == nil {
		return
	}
	return *v, true
}

// OldFromState returns the old "from_state" field's value of the LifecycleEvent entity.
// If the LifecycleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifecycleEventMutation) OldFromState(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromState: %w", err)
	}
	return oldValue.FromState, nil
}

// AddFromState adds i to the "from_state" field.
func (m *LifecycleEventMutation) AddFromState(i int) {
	if m.addfrom_state != nil {
		*m.addfrom_state += i
	} else {
		m.addfrom_state = &i
	}
}

// AddedFromState returns the value that was added to the "from_state" field in this mutation.
func (m *LifecycleEventMutation) AddedFromState() (r int, exists bool) {
	v := m.addfrom_state
	if v == nil {
		return
	}
	return *v, true
}

// ResetFromState resets all changes to the "from_state" field.
func (m *LifecycleEventMutation) ResetFromState() {
	m.from_state = nil
	m.addfrom_state = nil
}

// SetToState sets the "to_state" field.
func (m *LifecycleEventMutation) SetToState(i int) {
	m.to_state = &i
	m.addto_state = nil
}

// ToState returns the value of the "to_state" field in the mutation.
func (m *LifecycleEventMutation) ToState() (r int, exists bool) {
	v := m.to_state
	if v == nil {
		return
	}
	return *v, true
}

// OldToState returns the old "to_state" field's value of the LifecycleEvent entity.
// If the LifecycleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifecycleEventMutation) OldToState(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToState: %w", err)
	}
	return oldValue.ToState, nil
}

// AddToState adds i to the "to_state" field.
func (m *LifecycleEventMutation) AddToState(i int) {
	if m.addto_state != nil {
		*m.addto_state += i
	} else {
		m.addto_state = &i
	}
}

// AddedToState returns the value that was added to the "to_state" field in this mutation.
func (m *LifecycleEventMutation) AddedToState() (r int, exists bool) {
	v := m.addto_state
	if v == nil {
		return
	}
	return *v, true
}

// ResetToState resets all changes to the "to_state" field.
func (m *LifecycleEventMutation) ResetToState() {
	m.to_state = nil
	m.addto_state = nil
}

// SetSuppressed sets the "suppressed" field.
func (m *LifecycleEventMutation) SetSuppressed(b bool) {
	m.suppressed = &b
}

// Suppressed returns the value of the "suppressed" field in the mutation.
func (m *LifecycleEventMutation) Suppressed() (r bool, exists bool) {
	v := m.suppressed
	if v == nil {
		return
	}
	return *v, true
}

// OldSuppressed returns the old "suppressed" field's value of the LifecycleEvent entity.
// If the LifecycleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifecycleEventMutation) OldSuppressed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuppressed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuppressed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuppressed: %w", err)
	}
	return oldValue.Suppressed, nil
}

// ResetSuppressed resets all changes to the "suppressed" field.
func (m *LifecycleEventMutation) ResetSuppressed() {
	m.suppressed = nil
}

// SetTau sets the "tau" field.
func (m *LifecycleEventMutation) SetTau(f float64) {
	m.tau = &f
	m.addtau = nil
}

// Tau returns the value of the "tau" field in the mutation.
func (m *LifecycleEventMutation) Tau() (r float64, exists bool) {
	v := m.tau
	if v == nil {
		return
	}
	return *v, true
}

// OldTau returns the old "tau" field's value of the LifecycleEvent entity.
// If the LifecycleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifecycleEventMutation) OldTau(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTau is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTau requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTau: %w", err)
	}
	return oldValue.Tau, nil
}

// AddTau adds f to the "tau" field.
func (m *LifecycleEventMutation) AddTau(f float64) {
	if m.addtau != nil {
		*m.addtau += f
	} else {
		m.addtau = &f
	}
}

// AddedTau returns the value that was added to the "tau" field in this mutation.
func (m *LifecycleEventMutation) AddedTau() (r float64, exists bool) {
	v := m.addtau
	if v == nil {
		return
	}
	return *v, true
}

// ResetTau resets all changes to the "tau" field.
func (m *LifecycleEventMutation) ResetTau() {
	m.tau = nil
	m.addtau = nil
}

// SetIntervalDays sets the "interval_days" field.
func (m *LifecycleEventMutation) SetIntervalDays(i int) {
	m.interval_days = &i
	m.addinterval_days = nil
}

// IntervalDays returns the value of the "interval_days" field in the mutation.
func (m *LifecycleEventMutation) IntervalDays() (r int, exists bool) {
	v := m.interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalDays returns the old "interval_days" field's value of the LifecycleEvent entity.
// If the LifecycleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LifecycleEventMutation) OldIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalDays: %w", err)
	}
	return oldValue.IntervalDays, nil
}

// AddIntervalDays adds i to the "interval_days" field.
func (m *LifecycleEventMutation) AddIntervalDays(i int) {
	if m.addinterval_days != nil {
		*m.addinterval_days += i
	} else {
		m.addinterval_days = &i
	}
}

// AddedIntervalDays returns the value that was added to the "interval_days" field in this mutation.
func (m *LifecycleEventMutation) AddedIntervalDays() (r int, exists bool) {
	v := m.addinterval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalDays resets all changes to the "interval_days" field.
func (m *LifecycleEventMutation) ResetIntervalDays() {
	m.interval_days = nil
	m.addinterval_days = nil
}

// Where appends a list predicates to the LifecycleEventMutation builder.
func (m *LifecycleEventMutation) Where(ps ...predicate.LifecycleEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LifecycleEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LifecycleEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LifecycleEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LifecycleEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LifecycleEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LifecycleEvent).
func (m *LifecycleEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LifecycleEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, lifecycleevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, lifecycleevent.FieldTimestamp)
	}
	if m.profile_id != nil {
		fields = append(fields, lifecycleevent.FieldProfileID)
	}
	if m.section_id != nil {
		fields = append(fields, lifecycleevent.FieldSectionID)
	}
	if m.from_state != nil {
		fields = append(fields, lifecycleevent.FieldFromState)
	}
	if m.to_state != nil {
		fields = append(fields, lifecycleevent.FieldToState)
	}
	if m.suppressed != nil {
		fields = append(fields, lifecycleevent.FieldSuppressed)
	}
	if m.tau != nil {
		fields = append(fields, lifecycleevent.FieldTau)
	}
	if m.interval_days != nil {
		fields = append(fields, lifecycleevent.FieldIntervalDays)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LifecycleEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lifecycleevent.FieldSequence:
		return m.Sequence()
	case lifecycleevent.FieldTimestamp:
		return m.Timestamp()
	case lifecycleevent.FieldProfileID:
		return m.ProfileID()
	case lifecycleevent.FieldSectionID:
		return m.SectionID()
	case lifecycleevent.FieldFromState:
		return m.FromState()
	case lifecycleevent.FieldToState:
		return m.ToState()
	case lifecycleevent.FieldSuppressed:
		return m.Suppressed()
	case lifecycleevent.FieldTau:
		return m.Tau()
	case lifecycleevent.FieldIntervalDays:
		return m.IntervalDays()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LifecycleEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lifecycleevent.FieldSequence:
		return m.OldSequence(ctx)
	case lifecycleevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case lifecycleevent.FieldProfileID:
		return m.OldProfileID(ctx)
	case lifecycleevent.FieldSectionID:
		return m.OldSectionID(ctx)
	case lifecycleevent.FieldFromState:
		return m.OldFromState(ctx)
	case lifecycleevent.FieldToState:
		return m.OldToState(ctx)
	case lifecycleevent.FieldSuppressed:
		return m.OldSuppressed(ctx)
	case lifecycleevent.FieldTau:
		return m.OldTau(ctx)
	case lifecycleevent.FieldIntervalDays:
		return m.OldIntervalDays(ctx)
	}
	return nil, fmt.Errorf("unknown LifecycleEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LifecycleEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lifecycleevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case lifecycleevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case lifecycleevent.FieldProfileID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case lifecycleevent.FieldSectionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionID(v)
		return nil
	case lifecycleevent.FieldFromState:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromState(v)
		return nil
	case lifecycleevent.FieldToState:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToState(v)
		return nil
	case lifecycleevent.FieldSuppressed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuppressed(v)
		return nil
	case lifecycleevent.FieldTau:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTau(v)
		return nil
	case lifecycleevent.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalDays(v)
		return nil
	}
	return fmt.Errorf("unknown LifecycleEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LifecycleEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, lifecycleevent.FieldSequence)
	}
	if m.addfrom_state != nil {
		fields = append(fields, lifecycleevent.FieldFromState)
	}
	if m.addto_state != nil {
		fields = append(fields, lifecycleevent.FieldToState)
	}
	if m.addtau != nil {
		fields = append(fields, lifecycleevent.FieldTau)
	}
	if m.addinterval_days != nil {
		fields = append(fields, lifecycleevent.FieldIntervalDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LifecycleEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lifecycleevent.FieldSequence:
		return m.AddedSequence()
	case lifecycleevent.FieldFromState:
		return m.AddedFromState()
	case lifecycleevent.FieldToState:
		return m.AddedToState()
	case lifecycleevent.FieldTau:
		return m.AddedTau()
	case lifecycleevent.FieldIntervalDays:
		return m.AddedIntervalDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LifecycleEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lifecycleevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case lifecycleevent.FieldFromState:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFromState(v)
		return nil
	case lifecycleevent.FieldToState:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddToState(v)
		return nil
	case lifecycleevent.FieldTau:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTau(v)
		return nil
	case lifecycleevent.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalDays(v)
		return nil
	}
	return fmt.Errorf("unknown LifecycleEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LifecycleEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LifecycleEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LifecycleEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LifecycleEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LifecycleEventMutation) ResetField(name string) error {
	switch name {
	case lifecycleevent.FieldSequence:
		m.ResetSequence()
		return nil
	case lifecycleevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case lifecycleevent.FieldProfileID:
		m.ResetProfileID()
		return nil
	case lifecycleevent.FieldSectionID:
		m.ResetSectionID()
		return nil
	case lifecycleevent.FieldFromState:
		m.ResetFromState()
		return nil
	case lifecycleevent.FieldToState:
		m.ResetToState()
		return nil
	case lifecycleevent.FieldSuppressed:
		m.ResetSuppressed()
		return nil
	case lifecycleevent.FieldTau:
		m.ResetTau()
		return nil
	case lifecycleevent.FieldIntervalDays:
		m.ResetIntervalDays()
		return nil
	}
	return fmt.Errorf("unknown LifecycleEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LifecycleEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LifecycleEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LifecycleEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LifecycleEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LifecycleEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LifecycleEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LifecycleEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LifecycleEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LifecycleEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LifecycleEvent edge %s", name)
}

// PracticeEventMutation represents an operation that mutates the PracticeEvent nodes in the graph.
type PracticeEventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	sequence              *int64
	addsequence           *int64
	timestamp             *time.Time
	profile_id            *string
	section_id            *string
	piece_id              *string
	performance           *string
	score                 *float64
	addscore              *float64
	repetitions           *int
	addrepetitions        *int
	execution_failures    *int
	addexecution_failures *int
	memory_failures       *int
	addmemory_failures    *int
	deleted               *bool
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*PracticeEvent, error)
	predicates            []predicate.PracticeEvent
}

var _ ent.Mutation = (*PracticeEventMutation)(nil)

// practiceeventOption allows management of the mutation configuration using functional options.
type practiceeventOption func(*PracticeEventMutation)

// newPracticeEventMutation creates new mutation for the PracticeEvent entity.
func newPracticeEventMutation(c config, op Op, opts ...practiceeventOption) *PracticeEventMutation {
	m := &PracticeEventMutation{
		config:        c,
		op:            op,
		typ:           TypePracticeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPracticeEventID sets the ID field of the mutation.
func withPracticeEventID(id int) practiceeventOption {
	return func(m *PracticeEventMutation) {
		var (
			err   error
			once  sync.Once
			value *PracticeEvent
		)
		m.oldValue = func(ctx context.Context) (*PracticeEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PracticeEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPracticeEvent sets the old PracticeEvent of the mutation.
func withPracticeEvent(node *PracticeEvent) practiceeventOption {
	return func(m *PracticeEventMutation) {
		m.oldValue = func(context.Context) (*PracticeEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PracticeEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PracticeEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PracticeEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PracticeEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PracticeEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *PracticeEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *PracticeEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *PracticeEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *PracticeEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *PracticeEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *PracticeEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *PracticeEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *PracticeEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProfileID sets the "profile_id" field.
func (m *PracticeEventMutation) SetProfileID(s string) {
	m.profile_id = &s
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *PracticeEventMutation) ProfileID() (r string, exists bool) {
	v := m.profile_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldProfileID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *PracticeEventMutation) ResetProfileID() {
	m.profile_id = nil
}

// SetSectionID sets the "section_id" field.
func (m *PracticeEventMutation) SetSectionID(s string) {
	m.section_id = &s
}

// SectionID returns the value of the "section_id" field in the mutation.
func (m *PracticeEventMutation) SectionID() (r string, exists bool) {
	v := m.section_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionID returns the old "section_id" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldSectionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionID: %w", err)
	}
	return oldValue.SectionID, nil
}

// ResetSectionID resets all changes to the "section_id" field.
func (m *PracticeEventMutation) ResetSectionID() {
	m.section_id = nil
}

// SetPieceID sets the "piece_id" field.
func (m *PracticeEventMutation) SetPieceID(s string) {
	m.piece_id = &s
}

// PieceID returns the value of the "piece_id" field in the mutation.
func (m *PracticeEventMutation) PieceID() (r string, exists bool) {
	v := m.piece_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPieceID returns the old "piece_id" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldPieceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPieceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPieceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPieceID: %w", err)
	}
	return oldValue.PieceID, nil
}

// ClearPieceID clears the value of the "piece_id" field.
func (m *PracticeEventMutation) ClearPieceID() {
	m.piece_id = nil
	m.clearedFields[practiceevent.FieldPieceID] = struct{}{}
}

// PieceIDCleared returns if the "piece_id" field was cleared in this mutation.
func (m *PracticeEventMutation) PieceIDCleared() bool {
	_, ok := m.clearedFields[practiceevent.FieldPieceID]
	return ok
}

// ResetPieceID resets all changes to the "piece_id" field.
func (m *PracticeEventMutation) ResetPieceID() {
	m.piece_id = nil
	delete(m.clearedFields, practiceevent.FieldPieceID)
}

// SetPerformance sets the "performance" field.
func (m *PracticeEventMutation) SetPerformance(s string) {
	m.performance = &s
}

// Performance returns the value of the "performance" field in the mutation.
func (m *PracticeEventMutation) Performance() (r string, exists bool) {
	v := m.performance
	if v == nil {
		return
	}
	return *v, true
}

// OldPerformance returns the old "performance" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldPerformance(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerformance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerformance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerformance: %w", err)
	}
	return oldValue.Performance, nil
}

// ResetPerformance resets all changes to the "performance" field.
func (m *PracticeEventMutation) ResetPerformance() {
	m.performance = nil
}

// SetScore sets the "score" field.
func (m *PracticeEventMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *PracticeEventMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *PracticeEventMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *PracticeEventMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *PracticeEventMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetRepetitions sets the "repetitions" field.
func (m *PracticeEventMutation) SetRepetitions(i int) {
	m.repetitions = &i
	m.addrepetitions = nil
}

// Repetitions returns the value of the "repetitions" field in the mutation.
func (m *PracticeEventMutation) Repetitions() (r int, exists bool) {
	v := m.repetitions
	if v == nil {
		return
	}
	return *v, true
}

// OldRepetitions returns the old "repetitions" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldRepetitions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepetitions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepetitions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepetitions: %w", err)
	}
	return oldValue.Repetitions, nil
}

// AddRepetitions adds i to the "repetitions" field.
func (m *PracticeEventMutation) AddRepetitions(i int) {
	if m.addrepetitions != nil {
		*m.addrepetitions += i
	} else {
		m.addrepetitions = &i
	}
}

// AddedRepetitions returns the value that was added to the "repetitions" field in this mutation.
func (m *PracticeEventMutation) AddedRepetitions() (r int, exists bool) {
	v := m.addrepetitions
	if v == nil {
		return
	}
	return *v, true
}

// ResetRepetitions resets all changes to the "repetitions" field.
func (m *PracticeEventMutation) ResetRepetitions() {
	m.repetitions = nil
	m.addrepetitions = nil
}

// SetExecutionFailures sets the "execution_failures" field.
func (m *PracticeEventMutation) SetExecutionFailures(i int) {
	m.execution_failures = &i
	m.addexecution_failures = nil
}

// ExecutionFailures returns the value of the "execution_failures" field in the mutation.
func (m *PracticeEventMutation) ExecutionFailures() (r int, exists bool) {
	v := m.execution_failures
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionFailures returns the old "execution_failures" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldExecutionFailures(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionFailures: %w", err)
	}
	return oldValue.ExecutionFailures, nil
}

// AddExecutionFailures adds i to the "execution_failures" field.
func (m *PracticeEventMutation) AddExecutionFailures(i int) {
	if m.addexecution_failures != nil {
		*m.addexecution_failures += i
	} else {
		m.addexecution_failures = &i
	}
}

// AddedExecutionFailures returns the value that was added to the "execution_failures" field in this mutation.
func (m *PracticeEventMutation) AddedExecutionFailures() (r int, exists bool) {
	v := m.addexecution_failures
	if v == nil {
		return
	}
	return *v, true
}

// ResetExecutionFailures resets all changes to the "execution_failures" field.
func (m *PracticeEventMutation) ResetExecutionFailures() {
	m.execution_failures = nil
	m.addexecution_failures = nil
}

// SetMemoryFailures sets the "memory_failures" field.
func (m *PracticeEventMutation) SetMemoryFailures(i int) {
	m.memory_failures = &i
	m.addmemory_failures = nil
}

// MemoryFailures returns the value of the "memory_failures" field in the mutation.
func (m *PracticeEventMutation) MemoryFailures() (r int, exists bool) {
	v := m.memory_failures
	if v == nil {
		return
	}
	return *v, true
}

// OldMemoryFailures returns the old "memory_failures" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldMemoryFailures(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemoryFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemoryFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemoryFailures: %w", err)
	}
	return oldValue.MemoryFailures, nil
}

// AddMemoryFailures adds i to the "memory_failures" field.
func (m *PracticeEventMutation) AddMemoryFailures(i int) {
	if m.addmemory_failures != nil {
		*m.addmemory_failures += i
	} else {
		m.addmemory_failures = &i
	}
}

// AddedMemoryFailures returns the value that was added to the "memory_failures" field in this mutation.
func (m *PracticeEventMutation) AddedMemoryFailures() (r int, exists bool) {
	v := m.addmemory_failures
	if v == nil {
		return
	}
	return *v, true
}

// ResetMemoryFailures resets all changes to the "memory_failures" field.
func (m *PracticeEventMutation) ResetMemoryFailures() {
	m.memory_failures = nil
	m.addmemory_failures = nil
}

// SetDeleted sets the "deleted" field.
func (m *PracticeEventMutation) SetDeleted(b bool) {
	m.deleted = &b
}

// Deleted returns the value of the "deleted" field in the mutation.
func (m *PracticeEventMutation) Deleted() (r bool, exists bool) {
	v := m.deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldDeleted returns the old "deleted" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeleted: %w", err)
	}
	return oldValue.Deleted, nil
}

// ResetDeleted resets all changes to the "deleted" field.
func (m *PracticeEventMutation) ResetDeleted() {
	m.deleted = nil
}

// Where appends a list predicates to the PracticeEventMutation builder.
func (m *PracticeEventMutation) Where(ps ...predicate.PracticeEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PracticeEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PracticeEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PracticeEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PracticeEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PracticeEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PracticeEvent).
func (m *PracticeEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PracticeEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.sequence != nil {
		fields = append(fields, practiceevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, practiceevent.FieldTimestamp)
	}
	if m.profile_id != nil {
		fields = append(fields, practiceevent.FieldProfileID)
	}
	if m.section_id != nil {
		fields = append(fields, practiceevent.FieldSectionID)
	}
	if m.piece_id != nil {
		fields = append(fields, practiceevent.FieldPieceID)
	}
	if m.performance != nil {
		fields = append(fields, practiceevent.FieldPerformance)
	}
	if m.score != nil {
		fields = append(fields, practiceevent.FieldScore)
	}
	if m.repetitions != nil {
		fields = append(fields, practiceevent.FieldRepetitions)
	}
	if m.execution_failures != nil {
		fields = append(fields, practiceevent.FieldExecutionFailures)
	}
	if m.memory_failures != nil {
		fields = append(fields, practiceevent.FieldMemoryFailures)
	}
	if m.deleted != nil {
		fields = append(fields, practiceevent.FieldDeleted)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PracticeEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case practiceevent.FieldSequence:
		return m.Sequence()
	case practiceevent.FieldTimestamp:
		return m.Timestamp()
	case practiceevent.FieldProfileID:
		return m.ProfileID()
	case practiceevent.FieldSectionID:
		return m.SectionID()
	case practiceevent.FieldPieceID:
		return m.PieceID()
	case practiceevent.FieldPerformance:
		return m.Performance()
	case practiceevent.FieldScore:
		return m.Score()
	case practiceevent.FieldRepetitions:
		return m.Repetitions()
	case practiceevent.FieldExecutionFailures:
		return m.ExecutionFailures()
	case practiceevent.FieldMemoryFailures:
		return m.MemoryFailures()
	case practiceevent.FieldDeleted:
		return m.Deleted()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PracticeEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case practiceevent.FieldSequence:
		return m.OldSequence(ctx)
	case practiceevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case practiceevent.FieldProfileID:
		return m.OldProfileID(ctx)
	case practiceevent.FieldSectionID:
		return m.OldSectionID(ctx)
	case practiceevent.FieldPieceID:
		return m.OldPieceID(ctx)
	case practiceevent.FieldPerformance:
		return m.OldPerformance(ctx)
	case practiceevent.FieldScore:
		return m.OldScore(ctx)
	case practiceevent.FieldRepetitions:
		return m.OldRepetitions(ctx)
	case practiceevent.FieldExecutionFailures:
		return m.OldExecutionFailures(ctx)
	case practiceevent.FieldMemoryFailures:
		return m.OldMemoryFailures(ctx)
	case practiceevent.FieldDeleted:
		return m.OldDeleted(ctx)
	}
	return nil, fmt.Errorf("unknown PracticeEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case practiceevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case practiceevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case practiceevent.FieldProfileID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case practiceevent.FieldSectionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionID(v)
		return nil
	case practiceevent.FieldPieceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPieceID(v)
		return nil
	case practiceevent.FieldPerformance:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerformance(v)
		return nil
	case practiceevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case practiceevent.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepetitions(v)
		return nil
	case practiceevent.FieldExecutionFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionFailures(v)
		return nil
	case practiceevent.FieldMemoryFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemoryFailures(v)
		return nil
	case practiceevent.FieldDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeleted(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PracticeEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, practiceevent.FieldSequence)
	}
	if m.addscore != nil {
		fields = append(fields, practiceevent.FieldScore)
	}
	if m.addrepetitions != nil {
		fields = append(fields, practiceevent.FieldRepetitions)
	}
	if m.addexecution_failures != nil {
		fields = append(fields, practiceevent.FieldExecutionFailures)
	}
	if m.addmemory_failures != nil {
		fields = append(fields, practiceevent.FieldMemoryFailures)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PracticeEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case practiceevent.FieldSequence:
		return m.AddedSequence()
	case practiceevent.FieldScore:
		return m.AddedScore()
	case practiceevent.FieldRepetitions:
		return m.AddedRepetitions()
	case practiceevent.FieldExecutionFailures:
		return m.AddedExecutionFailures()
	case practiceevent.FieldMemoryFailures:
		return m.AddedMemoryFailures()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case practiceevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case practiceevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case practiceevent.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRepetitions(v)
		return nil
	case practiceevent.FieldExecutionFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecutionFailures(v)
		return nil
	case practiceevent.FieldMemoryFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMemoryFailures(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PracticeEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(practiceevent.FieldPieceID) {
		fields = append(fields, practiceevent.FieldPieceID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PracticeEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PracticeEventMutation) ClearField(name string) error {
	switch name {
	case practiceevent.FieldPieceID:
		m.ClearPieceID()
		return nil
	}
	return fmt.Errorf("unknown PracticeEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PracticeEventMutation) ResetField(name string) error {
	switch name {
	case practiceevent.FieldSequence:
		m.ResetSequence()
		return nil
	case practiceevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case practiceevent.FieldProfileID:
		m.ResetProfileID()
		return nil
	case practiceevent.FieldSectionID:
		m.ResetSectionID()
		return nil
	case practiceevent.FieldPieceID:
		m.ResetPieceID()
		return nil
	case practiceevent.FieldPerformance:
		m.ResetPerformance()
		return nil
	case practiceevent.FieldScore:
		m.ResetScore()
		return nil
	case practiceevent.FieldRepetitions:
		m.ResetRepetitions()
		return nil
	case practiceevent.FieldExecutionFailures:
		m.ResetExecutionFailures()
		return nil
	case practiceevent.FieldMemoryFailures:
		m.ResetMemoryFailures()
		return nil
	case practiceevent.FieldDeleted:
		m.ResetDeleted()
		return nil
	}
	return fmt.Errorf("unknown PracticeEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PracticeEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PracticeEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PracticeEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PracticeEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PracticeEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PracticeEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PracticeEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PracticeEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PracticeEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PracticeEvent edge %s", name)
}

// ScheduledSessionMutation represents an operation that mutates the ScheduledSession nodes in the graph.
type ScheduledSessionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	session_id           *string
	profile_id           *string
	section_id           *string
	piece_id             *string
	scheduled_date       *time.Time
	status               *scheduledsession.Status
	estimated_minutes    *int
	addestimated_minutes *int
	tau                  *float64
	addtau               *float64
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*ScheduledSession, error)
	predicates           []predicate.ScheduledSession
}

var _ ent.Mutation = (*ScheduledSessionMutation)(nil)

// scheduledsessionOption allows management of the mutation configuration using functional options.
type scheduledsessionOption func(*ScheduledSessionMutation)

// newScheduledSessionMutation creates new mutation for the ScheduledSession entity.
func newScheduledSessionMutation(c config, op Op, opts ...scheduledsessionOption) *ScheduledSessionMutation {
	m := &ScheduledSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduledSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduledSessionID sets the ID field of the mutation.
func withScheduledSessionID(id int) scheduledsessionOption {
	return func(m *ScheduledSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduledSession
		)
		m.oldValue = func(ctx context.Context) (*ScheduledSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduledSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduledSession sets the old ScheduledSession of the mutation.
func withScheduledSession(node *ScheduledSession) scheduledsessionOption {
	return func(m *ScheduledSessionMutation) {
		m.oldValue = func(context.Context) (*ScheduledSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduledSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduledSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduledSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduledSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduledSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ScheduledSessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ScheduledSessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ScheduledSession entity.
// If the ScheduledSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledSessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ScheduledSessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetProfileID sets the "profile_id" field.
func (m *ScheduledSessionMutation) SetProfileID(s string) {
	m.profile_id = &s
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *ScheduledSessionMutation) ProfileID() (r string, exists bool) {
	v := m.profile_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the ScheduledSession entity.
// If the ScheduledSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledSessionMutation) OldProfileID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *ScheduledSessionMutation) ResetProfileID() {
	m.profile_id = nil
}

// SetSectionID sets the "section_id" field.
func (m *ScheduledSessionMutation) SetSectionID(s string) {
	m.section_id = &s
}

// SectionID returns the value of the "section_id" field in the mutation.
func (m *ScheduledSessionMutation) SectionID() (r string, exists bool) {
	v := m.section_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionID returns the old "section_id" field's value of the ScheduledSession entity.
// If the ScheduledSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledSessionMutation) OldSectionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionID: %w", err)
	}
	return oldValue.SectionID, nil
}

// ResetSectionID resets all changes to the "section_id" field.
func (m *ScheduledSessionMutation) ResetSectionID() {
	m.section_id = nil
}

// SetPieceID sets the "piece_id" field.
func (m *ScheduledSessionMutation) SetPieceID(s string) {
	m.piece_id = &s
}

// PieceID returns the value of the "piece_id" field in the mutation.
func (m *ScheduledSessionMutation) PieceID() (r string, exists bool) {
	v := m.piece_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPieceID returns the old "piece_id" field's value of the ScheduledSession entity.
// If the ScheduledSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledSessionMutation) OldPieceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPieceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPieceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPieceID: %w", err)
	}
	return oldValue.PieceID, nil
}

// ClearPieceID clears the value of the "piece_id" field.
func (m *ScheduledSessionMutation) ClearPieceID() {
	m.piece_id = nil
	m.clearedFields[scheduledsession.FieldPieceID] = struct{}{}
}

// PieceIDCleared returns if the "piece_id" field was cleared in this mutation.
func (m *ScheduledSessionMutation) PieceIDCleared() bool {
	_, ok := m.clearedFields[scheduledsession.FieldPieceID]
	return ok
}

// ResetPieceID resets all changes to the "piece_id" field.
func (m *ScheduledSessionMutation) ResetPieceID() {
	m.piece_id = nil
	delete(m.clearedFields, scheduledsession.FieldPieceID)
}

// SetScheduledDate sets the "scheduled_date" field.
func (m *ScheduledSessionMutation) SetScheduledDate(t time.Time) {
	m.scheduled_date = &t
}

// ScheduledDate returns the value of the "scheduled_date" field in the mutation.
func (m *ScheduledSessionMutation) ScheduledDate() (r time.Time, exists bool) {
	v := m.scheduled_date
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledDate returns the old "scheduled_date" field's value of the ScheduledSession entity.
// If the ScheduledSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledSessionMutation) OldScheduledDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledDate: %w", err)
	}
	return oldValue.ScheduledDate, nil
}

// ResetScheduledDate resets all changes to the "scheduled_date" field.
func (m *ScheduledSessionMutation) ResetScheduledDate() {
	m.scheduled_date = nil
}

// SetStatus sets the "status" field.
func (m *ScheduledSessionMutation) SetStatus(s scheduledsession.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScheduledSessionMutation) Status() (r scheduledsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScheduledSession entity.
// If the ScheduledSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledSessionMutation) OldStatus(ctx context.Context) (v scheduledsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScheduledSessionMutation) ResetStatus() {
	m.status = nil
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (m *ScheduledSessionMutation) SetEstimatedMinutes(i int) {
	m.estimated_minutes = &i
	m.addestimated_minutes = nil
}

// EstimatedMinutes returns the value of the "estimated_minutes" field in the mutation.
func (m *ScheduledSessionMutation) EstimatedMinutes() (r int, exists bool) {
	v := m.estimated_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedMinutes returns the old "estimated_minutes" field's value of the ScheduledSession entity.
// If the ScheduledSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledSessionMutation) OldEstimatedMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedMinutes: %w", err)
	}
	return oldValue.EstimatedMinutes, nil
}

// AddEstimatedMinutes adds i to the "estimated_minutes" field.
func (m *ScheduledSessionMutation) AddEstimatedMinutes(i int) {
	if m.addestimated_minutes != nil {
		*m.addestimated_minutes += i
	} else {
		m.addestimated_minutes = &i
	}
}

// AddedEstimatedMinutes returns the value that was added to the "estimated_minutes" field in this mutation.
func (m *ScheduledSessionMutation) AddedEstimatedMinutes() (r int, exists bool) {
	v := m.addestimated_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedMinutes resets all changes to the "estimated_minutes" field.
func (m *ScheduledSessionMutation) ResetEstimatedMinutes() {
	m.estimated_minutes = nil
	m.addestimated_minutes = nil
}

// SetTau sets the "tau" field.
func (m *ScheduledSessionMutation) SetTau(f float64) {
	m.tau = &f
	m.addtau = nil
}

// Tau returns the value of the "tau" field in the mutation.
func (m *ScheduledSessionMutation) Tau() (r float64, exists bool) {
	v := m.tau
	if v == nil {
		return
	}
	return *v, true
}

// OldTau returns the old "tau" field's value of the ScheduledSession entity.
// If the ScheduledSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledSessionMutation) OldTau(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTau is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTau requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTau: %w", err)
	}
	return oldValue.Tau, nil
}

// AddTau adds f to the "tau" field.
func (m *ScheduledSessionMutation) AddTau(f float64) {
	if m.addtau != nil {
		*m.addtau += f
	} else {
		m.addtau = &f
	}
}

// AddedTau returns the value that was added to the "tau" field in this mutation.
func (m *ScheduledSessionMutation) AddedTau() (r float64, exists bool) {
	v := m.addtau
	if v == nil {
		return
	}
	return *v, true
}

// ResetTau resets all changes to the "tau" field.
func (m *ScheduledSessionMutation) ResetTau() {
	m.tau = nil
	m.addtau = nil
}

// Where appends a list predicates to the ScheduledSessionMutation builder.
func (m *ScheduledSessionMutation) Where(ps ...predicate.ScheduledSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduledSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduledSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduledSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduledSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduledSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduledSession).
func (m *ScheduledSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduledSessionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session_id != nil {
		fields = append(fields, scheduledsession.FieldSessionID)
	}
	if m.profile_id != nil {
		fields = append(fields, scheduledsession.FieldProfileID)
	}
	if m.section_id != nil {
		fields = append(fields, scheduledsession.FieldSectionID)
	}
	if m.piece_id != nil {
		fields = append(fields, scheduledsession.FieldPieceID)
	}
	if m.scheduled_date != nil {
		fields = append(fields, scheduledsession.FieldScheduledDate)
	}
	if m.status != nil {
		fields = append(fields, scheduledsession.FieldStatus)
	}
	if m.estimated_minutes != nil {
		fields = append(fields, scheduledsession.FieldEstimatedMinutes)
	}
	if m.tau != nil {
		fields = append(fields, scheduledsession.FieldTau)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduledSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scheduledsession.FieldSessionID:
		return m.SessionID()
	case scheduledsession.FieldProfileID:
		return m.ProfileID()
	case scheduledsession.FieldSectionID:
		return m.SectionID()
	case scheduledsession.FieldPieceID:
		return m.PieceID()
	case scheduledsession.FieldScheduledDate:
		return m.ScheduledDate()
	case scheduledsession.FieldStatus:
		return m.Status()
	case scheduledsession.FieldEstimatedMinutes:
		return m.EstimatedMinutes()
	case scheduledsession.FieldTau:
		return m.Tau()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduledSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scheduledsession.FieldSessionID:
		return m.OldSessionID(ctx)
	case scheduledsession.FieldProfileID:
		return m.OldProfileID(ctx)
	case scheduledsession.FieldSectionID:
		return m.OldSectionID(ctx)
	case scheduledsession.FieldPieceID:
		return m.OldPieceID(ctx)
	case scheduledsession.FieldScheduledDate:
		return m.OldScheduledDate(ctx)
	case scheduledsession.FieldStatus:
		return m.OldStatus(ctx)
	case scheduledsession.FieldEstimatedMinutes:
		return m.OldEstimatedMinutes(ctx)
	case scheduledsession.FieldTau:
		return m.OldTau(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduledSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scheduledsession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case scheduledsession.FieldProfileID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case scheduledsession.FieldSectionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionID(v)
		return nil
	case scheduledsession.FieldPieceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPieceID(v)
		return nil
	case scheduledsession.FieldScheduledDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledDate(v)
		return nil
	case scheduledsession.FieldStatus:
		v, ok := value.(scheduledsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scheduledsession.FieldEstimatedMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedMinutes(v)
		return nil
	case scheduledsession.FieldTau:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTau(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduledSessionMutation) AddedFields() []string {
	var fields []string
	if m.addestimated_minutes != nil {
		fields = append(fields, scheduledsession.FieldEstimatedMinutes)
	}
	if m.addtau != nil {
		fields = append(fields, scheduledsession.FieldTau)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduledSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scheduledsession.FieldEstimatedMinutes:
		return m.AddedEstimatedMinutes()
	case scheduledsession.FieldTau:
		return m.AddedTau()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scheduledsession.FieldEstimatedMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedMinutes(v)
		return nil
	case scheduledsession.FieldTau:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTau(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduledSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scheduledsession.FieldPieceID) {
		fields = append(fields, scheduledsession.FieldPieceID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduledSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduledSessionMutation) ClearField(name string) error {
	switch name {
	case scheduledsession.FieldPieceID:
		m.ClearPieceID()
		return nil
	}
	return fmt.Errorf("unknown ScheduledSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduledSessionMutation) ResetField(name string) error {
	switch name {
	case scheduledsession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case scheduledsession.FieldProfileID:
		m.ResetProfileID()
		return nil
	case scheduledsession.FieldSectionID:
		m.ResetSectionID()
		return nil
	case scheduledsession.FieldPieceID:
		m.ResetPieceID()
		return nil
	case scheduledsession.FieldScheduledDate:
		m.ResetScheduledDate()
		return nil
	case scheduledsession.FieldStatus:
		m.ResetStatus()
		return nil
	case scheduledsession.FieldEstimatedMinutes:
		m.ResetEstimatedMinutes()
		return nil
	case scheduledsession.FieldTau:
		m.ResetTau()
		return nil
	}
	return fmt.Errorf("unknown ScheduledSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduledSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduledSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduledSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduledSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduledSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduledSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduledSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScheduledSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduledSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScheduledSession edge %s", name)
}

// SnapshotMutation represents an operation that mutates the Snapshot nodes in the graph.
type SnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *int
	profile_id    *string
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	data          *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Snapshot, error)
	predicates    []predicate.Snapshot
}

var _ ent.Mutation = (*SnapshotMutation)(nil)

// snapshotOption allows management of the mutation configuration using functional options.
type snapshotOption func(*SnapshotMutation)

// newSnapshotMutation creates new mutation for the Snapshot entity.
func newSnapshotMutation(c config, op Op, opts ...snapshotOption) *SnapshotMutation {
	m := &SnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSnapshotID sets the ID field of the mutation.
func withSnapshotID(id int) snapshotOption {
	return func(m *SnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *Snapshot
		)
		m.oldValue = func(ctx context.Context) (*Snapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Snapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSnapshot sets the old Snapshot of the mutation.
func withSnapshot(node *Snapshot) snapshotOption {
	return func(m *SnapshotMutation) {
		m.oldValue = func(context.Context) (*Snapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Snapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfileID sets the "profile_id" field.
func (m *SnapshotMutation) SetProfileID(s string) {
	m.profile_id = &s
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *SnapshotMutation) ProfileID() (r string, exists bool) {
	v := m.profile_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldProfileID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *SnapshotMutation) ResetProfileID() {
	m.profile_id = nil
}

// SetSequence sets the "sequence" field.
func (m *SnapshotMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SnapshotMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SnapshotMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SnapshotMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SnapshotMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SnapshotMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SnapshotMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SnapshotMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetData sets the "data" field.
func (m *SnapshotMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *SnapshotMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *SnapshotMutation) ResetData() {
	m.data = nil
}

// Where appends a list predicates to the SnapshotMutation builder.
func (m *SnapshotMutation) Where(ps ...predicate.Snapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Snapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Snapshot).
func (m *SnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SnapshotMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.profile_id != nil {
		fields = append(fields, snapshot.FieldProfileID)
	}
	if m.sequence != nil {
		fields = append(fields, snapshot.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, snapshot.FieldTimestamp)
	}
	if m.data != nil {
		fields = append(fields, snapshot.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldProfileID:
		return m.ProfileID()
	case snapshot.FieldSequence:
		return m.Sequence()
	case snapshot.FieldTimestamp:
		return m.Timestamp()
	case snapshot.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case snapshot.FieldProfileID:
		return m.OldProfileID(ctx)
	case snapshot.FieldSequence:
		return m.OldSequence(ctx)
	case snapshot.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case snapshot.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown Snapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldProfileID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case snapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case snapshot.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case snapshot.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, snapshot.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Snapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SnapshotMutation) ResetField(name string) error {
	switch name {
	case snapshot.FieldProfileID:
		m.ResetProfileID()
		return nil
	case snapshot.FieldSequence:
		m.ResetSequence()
		return nil
	case snapshot.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case snapshot.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Snapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Snapshot edge %s", name)
}
