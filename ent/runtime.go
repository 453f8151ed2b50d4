// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/hartmut/reprise/ent/lifecycleevent"
	"github.com/hartmut/reprise/ent/practiceevent"
	"github.com/hartmut/reprise/ent/scheduledsession"
	"github.com/hartmut/reprise/ent/schema"
	"github.com/hartmut/reprise/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	lifecycleeventMixin := schema.LifecycleEvent{}.Mixin()
	lifecycleeventMixinFields0 := lifecycleeventMixin[0].Fields()
	_ = lifecycleeventMixinFields0
	lifecycleeventFields := schema.LifecycleEvent{}.Fields()
	_ = lifecycleeventFields
	// lifecycleeventDescTimestamp is the schema descriptor for timestamp field.
	lifecycleeventDescTimestamp := lifecycleeventMixinFields0[1].Descriptor()
	// lifecycleevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lifecycleevent.DefaultTimestamp = lifecycleeventDescTimestamp.Default.(func() time.Time)
	// lifecycleeventDescProfileID is the schema descriptor for profile_id field.
	lifecycleeventDescProfileID := lifecycleeventFields[0].Descriptor()
	// lifecycleevent.ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	lifecycleevent.ProfileIDValidator = lifecycleeventDescProfileID.Validators[0].(func(string) error)
	// lifecycleeventDescSectionID is the schema descriptor for section_id field.
	lifecycleeventDescSectionID := lifecycleeventFields[1].Descriptor()
	// lifecycleevent.SectionIDValidator is a validator for the "section_id" field. It is called by the builders before save.
	lifecycleevent.SectionIDValidator = lifecycleeventDescSectionID.Validators[0].(func(string) error)
	// lifecycleeventDescSuppressed is the schema descriptor for suppressed field.
	lifecycleeventDescSuppressed := lifecycleeventFields[4].Descriptor()
	// lifecycleevent.DefaultSuppressed holds the default value on creation for the suppressed field.
	lifecycleevent.DefaultSuppressed = lifecycleeventDescSuppressed.Default.(bool)
	// lifecycleeventDescTau is the schema descriptor for tau field.
	lifecycleeventDescTau := lifecycleeventFields[5].Descriptor()
	// lifecycleevent.DefaultTau holds the default value on creation for the tau field.
	lifecycleevent.DefaultTau = lifecycleeventDescTau.Default.(float64)
	// lifecycleeventDescIntervalDays is the schema descriptor for interval_days field.
	lifecycleeventDescIntervalDays := lifecycleeventFields[6].Descriptor()
	// lifecycleevent.DefaultIntervalDays holds the default value on creation for the interval_days field.
	lifecycleevent.DefaultIntervalDays = lifecycleeventDescIntervalDays.Default.(int)
	practiceeventMixin := schema.PracticeEvent{}.Mixin()
	practiceeventMixinFields0 := practiceeventMixin[0].Fields()
	_ = practiceeventMixinFields0
	practiceeventFields := schema.PracticeEvent{}.Fields()
	_ = practiceeventFields
	// practiceeventDescTimestamp is the schema descriptor for timestamp field.
	practiceeventDescTimestamp := practiceeventMixinFields0[1].Descriptor()
	// practiceevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	practiceevent.DefaultTimestamp = practiceeventDescTimestamp.Default.(func() time.Time)
	// practiceeventDescProfileID is the schema descriptor for profile_id field.
	practiceeventDescProfileID := practiceeventFields[0].Descriptor()
	// practiceevent.ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	practiceevent.ProfileIDValidator = practiceeventDescProfileID.Validators[0].(func(string) error)
	// practiceeventDescSectionID is the schema descriptor for section_id field.
	practiceeventDescSectionID := practiceeventFields[1].Descriptor()
	// practiceevent.SectionIDValidator is a validator for the "section_id" field. It is called by the builders before save.
	practiceevent.SectionIDValidator = practiceeventDescSectionID.Validators[0].(func(string) error)
	// practiceeventDescPerformance is the schema descriptor for performance field.
	practiceeventDescPerformance := practiceeventFields[3].Descriptor()
	// practiceevent.PerformanceValidator is a validator for the "performance" field. It is called by the builders before save.
	practiceevent.PerformanceValidator = practiceeventDescPerformance.Validators[0].(func(string) error)
	// practiceeventDescDeleted is the schema descriptor for deleted field.
	practiceeventDescDeleted := practiceeventFields[8].Descriptor()
	// practiceevent.DefaultDeleted holds the default value on creation for the deleted field.
	practiceevent.DefaultDeleted = practiceeventDescDeleted.Default.(bool)
	scheduledsessionFields := schema.ScheduledSession{}.Fields()
	_ = scheduledsessionFields
	// scheduledsessionDescSessionID is the schema descriptor for session_id field.
	scheduledsessionDescSessionID := scheduledsessionFields[0].Descriptor()
	// scheduledsession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	scheduledsession.SessionIDValidator = scheduledsessionDescSessionID.Validators[0].(func(string) error)
	// scheduledsessionDescProfileID is the schema descriptor for profile_id field.
	scheduledsessionDescProfileID := scheduledsessionFields[1].Descriptor()
	// scheduledsession.ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	scheduledsession.ProfileIDValidator = scheduledsessionDescProfileID.Validators[0].(func(string) error)
	// scheduledsessionDescSectionID is the schema descriptor for section_id field.
	scheduledsessionDescSectionID := scheduledsessionFields[2].Descriptor()
	// scheduledsession.SectionIDValidator is a validator for the "section_id" field. It is called by the builders before save.
	scheduledsession.SectionIDValidator = scheduledsessionDescSectionID.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescProfileID is the schema descriptor for profile_id field.
	snapshotDescProfileID := snapshotFields[0].Descriptor()
	// snapshot.ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	snapshot.ProfileIDValidator = snapshotDescProfileID.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
