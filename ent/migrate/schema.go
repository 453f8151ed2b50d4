// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LifecycleEventsColumns holds the columns for the "lifecycle_events" table.
	LifecycleEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeString},
		{Name: "section_id", Type: field.TypeString},
		{Name: "from_state", Type: field.TypeInt},
		{Name: "to_state", Type: field.TypeInt},
		{Name: "suppressed", Type: field.TypeBool, Default: false},
		{Name: "tau", Type: field.TypeFloat64, Default: 0},
		{Name: "interval_days", Type: field.TypeInt, Default: 0},
	}
	// LifecycleEventsTable holds the schema information for the "lifecycle_events" table.
	LifecycleEventsTable = &schema.Table{
		Name:       "lifecycle_events",
		Columns:    LifecycleEventsColumns,
		PrimaryKey: []*schema.Column{LifecycleEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lifecycleevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LifecycleEventsColumns[1]},
			},
			{
				Name:    "lifecycleevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LifecycleEventsColumns[2]},
			},
			{
				Name:    "lifecycleevent_section_id",
				Unique:  false,
				Columns: []*schema.Column{LifecycleEventsColumns[4]},
			},
		},
	}
	// PracticeEventsColumns holds the columns for the "practice_events" table.
	PracticeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeString},
		{Name: "section_id", Type: field.TypeString},
		{Name: "piece_id", Type: field.TypeString, Nullable: true},
		{Name: "performance", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "repetitions", Type: field.TypeInt},
		{Name: "execution_failures", Type: field.TypeInt},
		{Name: "memory_failures", Type: field.TypeInt},
		{Name: "deleted", Type: field.TypeBool, Default: false},
	}
	// PracticeEventsTable holds the schema information for the "practice_events" table.
	PracticeEventsTable = &schema.Table{
		Name:       "practice_events",
		Columns:    PracticeEventsColumns,
		PrimaryKey: []*schema.Column{PracticeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practiceevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[1]},
			},
			{
				Name:    "practiceevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[2]},
			},
			{
				Name:    "practiceevent_section_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[4]},
			},
			{
				Name:    "practiceevent_profile_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[3]},
			},
		},
	}
	// ScheduledSessionsColumns holds the columns for the "scheduled_sessions" table.
	ScheduledSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "profile_id", Type: field.TypeString},
		{Name: "section_id", Type: field.TypeString},
		{Name: "piece_id", Type: field.TypeString, Nullable: true},
		{Name: "scheduled_date", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"Planned", "Completed"}, Default: "Planned"},
		{Name: "estimated_minutes", Type: field.TypeInt},
		{Name: "tau", Type: field.TypeFloat64},
	}
	// ScheduledSessionsTable holds the schema information for the "scheduled_sessions" table.
	ScheduledSessionsTable = &schema.Table{
		Name:       "scheduled_sessions",
		Columns:    ScheduledSessionsColumns,
		PrimaryKey: []*schema.Column{ScheduledSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scheduledsession_section_id_status",
				Unique:  false,
				Columns: []*schema.Column{ScheduledSessionsColumns[3], ScheduledSessionsColumns[6]},
			},
			{
				Name:    "scheduledsession_profile_id",
				Unique:  false,
				Columns: []*schema.Column{ScheduledSessionsColumns[2]},
			},
			{
				Name:    "scheduledsession_scheduled_date",
				Unique:  false,
				Columns: []*schema.Column{ScheduledSessionsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "profile_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_profile_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1], SnapshotsColumns[3]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LifecycleEventsTable,
		PracticeEventsTable,
		ScheduledSessionsTable,
		SnapshotsTable,
	}
)

func init() {
}
