// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/emissary-bot/emissary/ent/approval"
	"github.com/emissary-bot/emissary/ent/auditevent"
	"github.com/emissary-bot/emissary/ent/chatpreference"
	"github.com/emissary-bot/emissary/ent/deadletter"
	"github.com/emissary-bot/emissary/ent/job"
	"github.com/emissary-bot/emissary/ent/message"
	"github.com/emissary-bot/emissary/ent/processedupdate"
	"github.com/emissary-bot/emissary/ent/schema"
	"github.com/emissary-bot/emissary/ent/session"
	"github.com/emissary-bot/emissary/ent/userpreference"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	approvalFields := schema.Approval{}.Fields()
	_ = approvalFields
	// approvalDescCreatedAt is the schema descriptor for created_at field.
	approvalDescCreatedAt := approvalFields[16].Descriptor()
	// approval.DefaultCreatedAt holds the default value on creation for the created_at field.
	approval.DefaultCreatedAt = approvalDescCreatedAt.Default.(func() time.Time)
	auditeventFields := schema.AuditEvent{}.Fields()
	_ = auditeventFields
	// auditeventDescCreatedAt is the schema descriptor for created_at field.
	auditeventDescCreatedAt := auditeventFields[8].Descriptor()
	// auditevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditevent.DefaultCreatedAt = auditeventDescCreatedAt.Default.(func() time.Time)
	chatpreferenceFields := schema.ChatPreference{}.Fields()
	_ = chatpreferenceFields
	// chatpreferenceDescUpdatedAt is the schema descriptor for updated_at field.
	chatpreferenceDescUpdatedAt := chatpreferenceFields[4].Descriptor()
	// chatpreference.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chatpreference.DefaultUpdatedAt = chatpreferenceDescUpdatedAt.Default.(func() time.Time)
	// chatpreference.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chatpreference.UpdateDefaultUpdatedAt = chatpreferenceDescUpdatedAt.UpdateDefault.(func() time.Time)
	deadletterFields := schema.DeadLetter{}.Fields()
	_ = deadletterFields
	// deadletterDescCreatedAt is the schema descriptor for created_at field.
	deadletterDescCreatedAt := deadletterFields[6].Descriptor()
	// deadletter.DefaultCreatedAt holds the default value on creation for the created_at field.
	deadletter.DefaultCreatedAt = deadletterDescCreatedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescPriority is the schema descriptor for priority field.
	jobDescPriority := jobFields[4].Descriptor()
	// job.DefaultPriority holds the default value on creation for the priority field.
	job.DefaultPriority = jobDescPriority.Default.(int)
	// jobDescRunAt is the schema descriptor for run_at field.
	jobDescRunAt := jobFields[5].Descriptor()
	// job.DefaultRunAt holds the default value on creation for the run_at field.
	job.DefaultRunAt = jobDescRunAt.Default.(func() time.Time)
	// jobDescAttempts is the schema descriptor for attempts field.
	jobDescAttempts := jobFields[6].Descriptor()
	// job.DefaultAttempts holds the default value on creation for the attempts field.
	job.DefaultAttempts = jobDescAttempts.Default.(int)
	// jobDescMaxAttempts is the schema descriptor for max_attempts field.
	jobDescMaxAttempts := jobFields[7].Descriptor()
	// job.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	job.DefaultMaxAttempts = jobDescMaxAttempts.Default.(int)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[10].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[11].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[5].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	processedupdateFields := schema.ProcessedUpdate{}.Fields()
	_ = processedupdateFields
	// processedupdateDescReceivedAt is the schema descriptor for received_at field.
	processedupdateDescReceivedAt := processedupdateFields[3].Descriptor()
	// processedupdate.DefaultReceivedAt holds the default value on creation for the received_at field.
	processedupdate.DefaultReceivedAt = processedupdateDescReceivedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescThreadID is the schema descriptor for thread_id field.
	sessionDescThreadID := sessionFields[3].Descriptor()
	// session.DefaultThreadID holds the default value on creation for the thread_id field.
	session.DefaultThreadID = sessionDescThreadID.Default.(int64)
	// sessionDescLastMessageAt is the schema descriptor for last_message_at field.
	sessionDescLastMessageAt := sessionFields[5].Descriptor()
	// session.DefaultLastMessageAt holds the default value on creation for the last_message_at field.
	session.DefaultLastMessageAt = sessionDescLastMessageAt.Default.(func() time.Time)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[6].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	userpreferenceFields := schema.UserPreference{}.Fields()
	_ = userpreferenceFields
	// userpreferenceDescNetwork is the schema descriptor for network field.
	userpreferenceDescNetwork := userpreferenceFields[3].Descriptor()
	// userpreference.DefaultNetwork holds the default value on creation for the network field.
	userpreference.DefaultNetwork = userpreferenceDescNetwork.Default.(string)
	// userpreferenceDescUpdatedAt is the schema descriptor for updated_at field.
	userpreferenceDescUpdatedAt := userpreferenceFields[5].Descriptor()
	// userpreference.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userpreference.DefaultUpdatedAt = userpreferenceDescUpdatedAt.Default.(func() time.Time)
	// userpreference.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userpreference.UpdateDefaultUpdatedAt = userpreferenceDescUpdatedAt.UpdateDefault.(func() time.Time)
}
