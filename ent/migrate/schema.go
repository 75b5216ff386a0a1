// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApprovalsColumns holds the columns for the "approvals" table.
	ApprovalsColumns = []*schema.Column{
		{Name: "approval_id", Type: field.TypeString, Unique: true},
		{Name: "callback_token", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "chat_id", Type: field.TypeInt64},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "tool_call_id", Type: field.TypeString},
		{Name: "tool_input", Type: field.TypeJSON},
		{Name: "risk_level", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}},
		{Name: "risk_confidence", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"requested", "approved", "denied", "expired", "failed"}, Default: "requested"},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "decided_by", Type: field.TypeInt64, Nullable: true},
		{Name: "decided_at", Type: field.TypeTime, Nullable: true},
		{Name: "prompt_message_id", Type: field.TypeInt64, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ApprovalsTable holds the schema information for the "approvals" table.
	ApprovalsTable = &schema.Table{
		Name:       "approvals",
		Columns:    ApprovalsColumns,
		PrimaryKey: []*schema.Column{ApprovalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "approval_callback_token",
				Unique:  true,
				Columns: []*schema.Column{ApprovalsColumns[1]},
			},
			{
				Name:    "approval_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ApprovalsColumns[10], ApprovalsColumns[11]},
			},
			{
				Name:    "approval_session_id_status",
				Unique:  false,
				Columns: []*schema.Column{ApprovalsColumns[2], ApprovalsColumns[10]},
			},
		},
	}
	// AuditEventsColumns holds the columns for the "audit_events" table.
	AuditEventsColumns = []*schema.Column{
		{Name: "audit_event_id", Type: field.TypeString, Unique: true},
		{Name: "seq", Type: field.TypeInt64, Unique: true},
		{Name: "actor_type", Type: field.TypeString},
		{Name: "actor_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString},
		{Name: "hash_chain", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditEventsTable holds the schema information for the "audit_events" table.
	AuditEventsTable = &schema.Table{
		Name:       "audit_events",
		Columns:    AuditEventsColumns,
		PrimaryKey: []*schema.Column{AuditEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditevent_seq",
				Unique:  true,
				Columns: []*schema.Column{AuditEventsColumns[1]},
			},
			{
				Name:    "auditevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[8]},
			},
			{
				Name:    "auditevent_event_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[4], AuditEventsColumns[8]},
			},
			{
				Name:    "auditevent_correlation_id",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[6]},
			},
		},
	}
	// ChatPreferencesColumns holds the columns for the "chat_preferences" table.
	ChatPreferencesColumns = []*schema.Column{
		{Name: "chat_id", Type: field.TypeInt64, Increment: true},
		{Name: "response_style", Type: field.TypeEnum, Nullable: true, Enums: []string{"concise", "detailed"}},
		{Name: "risk_profile", Type: field.TypeEnum, Nullable: true, Enums: []string{"cautious", "balanced", "advanced"}},
		{Name: "network", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ChatPreferencesTable holds the schema information for the "chat_preferences" table.
	ChatPreferencesTable = &schema.Table{
		Name:       "chat_preferences",
		Columns:    ChatPreferencesColumns,
		PrimaryKey: []*schema.Column{ChatPreferencesColumns[0]},
	}
	// DeadLettersColumns holds the columns for the "dead_letters" table.
	DeadLettersColumns = []*schema.Column{
		{Name: "dead_letter_id", Type: field.TypeString, Unique: true},
		{Name: "queue", Type: field.TypeString},
		{Name: "job_id", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "reason", Type: field.TypeString},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DeadLettersTable holds the schema information for the "dead_letters" table.
	DeadLettersTable = &schema.Table{
		Name:       "dead_letters",
		Columns:    DeadLettersColumns,
		PrimaryKey: []*schema.Column{DeadLettersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "deadletter_queue_created_at",
				Unique:  false,
				Columns: []*schema.Column{DeadLettersColumns[1], DeadLettersColumns[6]},
			},
			{
				Name:    "deadletter_job_id",
				Unique:  false,
				Columns: []*schema.Column{DeadLettersColumns[2]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "queue", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "dead"}, Default: "pending"},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "run_at", Type: field.TypeTime},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 5},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_queue_status_run_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[3], JobsColumns[5]},
			},
			{
				Name:    "job_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[3], JobsColumns[10]},
			},
			{
				Name:    "job_pod_id_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[9], JobsColumns[3]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"system", "user", "assistant", "tool"}},
		{Name: "parts", Type: field.TypeJSON},
		{Name: "correlation_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[1], MessagesColumns[5]},
			},
			{
				Name:    "message_correlation_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[4]},
			},
		},
	}
	// ProcessedUpdatesColumns holds the columns for the "processed_updates" table.
	ProcessedUpdatesColumns = []*schema.Column{
		{Name: "update_id", Type: field.TypeInt64, Increment: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"received", "enqueued", "processed", "failed"}, Default: "received"},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "handled_at", Type: field.TypeTime, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
	}
	// ProcessedUpdatesTable holds the schema information for the "processed_updates" table.
	ProcessedUpdatesTable = &schema.Table{
		Name:       "processed_updates",
		Columns:    ProcessedUpdatesColumns,
		PrimaryKey: []*schema.Column{ProcessedUpdatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "processedupdate_status_received_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessedUpdatesColumns[2], ProcessedUpdatesColumns[3]},
			},
			{
				Name:    "processedupdate_received_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessedUpdatesColumns[3]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "chat_id", Type: field.TypeInt64},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "thread_id", Type: field.TypeInt64, Default: 0},
		{Name: "state", Type: field.TypeJSON, Nullable: true},
		{Name: "last_message_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_chat_id_user_id_thread_id",
				Unique:  true,
				Columns: []*schema.Column{SessionsColumns[1], SessionsColumns[2], SessionsColumns[3]},
			},
			{
				Name:    "session_last_message_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[5]},
			},
		},
	}
	// UserPreferencesColumns holds the columns for the "user_preferences" table.
	UserPreferencesColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeInt64, Increment: true},
		{Name: "response_style", Type: field.TypeEnum, Enums: []string{"concise", "detailed"}, Default: "concise"},
		{Name: "risk_profile", Type: field.TypeEnum, Enums: []string{"cautious", "balanced", "advanced"}, Default: "balanced"},
		{Name: "network", Type: field.TypeString, Default: "mainnet"},
		{Name: "wallet_address", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserPreferencesTable holds the schema information for the "user_preferences" table.
	UserPreferencesTable = &schema.Table{
		Name:       "user_preferences",
		Columns:    UserPreferencesColumns,
		PrimaryKey: []*schema.Column{UserPreferencesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApprovalsTable,
		AuditEventsTable,
		ChatPreferencesTable,
		DeadLettersTable,
		JobsTable,
		MessagesTable,
		ProcessedUpdatesTable,
		SessionsTable,
		UserPreferencesTable,
	}
)

func init() {
}
