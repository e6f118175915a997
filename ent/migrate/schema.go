// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"user_login", "user_logout", "user_register", "user_profile_update", "user_email_verify", "user_account_delete", "user_update", "mission_create", "mission_status_change", "submission_create", "milestone_declare", "milestone_approve", "milestone_reject", "wallet_recharge", "wallet_payout", "payment_success", "payment_failed"}},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"info", "warning", "error", "critical"}, Default: "info"},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_logs_users_audit_logs",
				Columns:    []*schema.Column{AuditLogsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_user_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[10]},
			},
			{
				Name:    "auditlog_action",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[9]},
			},
		},
	}
	// ClipSubmissionsColumns holds the columns for the "clip_submissions" table.
	ClipSubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "palier", Type: field.TypeInt},
		{Name: "views_declared", Type: field.TypeInt},
		{Name: "tiktok_link", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected"}, Default: "pending"},
		{Name: "reviewed_by", Type: field.TypeInt, Nullable: true},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "mission_id", Type: field.TypeInt},
		{Name: "submission_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
	}
	// ClipSubmissionsTable holds the schema information for the "clip_submissions" table.
	ClipSubmissionsTable = &schema.Table{
		Name:       "clip_submissions",
		Columns:    ClipSubmissionsColumns,
		PrimaryKey: []*schema.Column{ClipSubmissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "clip_submissions_missions_clip_submissions",
				Columns:    []*schema.Column{ClipSubmissionsColumns[8]},
				RefColumns: []*schema.Column{MissionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "clip_submissions_submissions_milestones",
				Columns:    []*schema.Column{ClipSubmissionsColumns[9]},
				RefColumns: []*schema.Column{SubmissionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "clip_submissions_users_clip_submissions",
				Columns:    []*schema.Column{ClipSubmissionsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "clipsubmission_status",
				Unique:  false,
				Columns: []*schema.Column{ClipSubmissionsColumns[4]},
			},
			{
				Name:    "clipsubmission_user_id",
				Unique:  false,
				Columns: []*schema.Column{ClipSubmissionsColumns[10]},
			},
			{
				Name:    "clipsubmission_submission_id",
				Unique:  false,
				Columns: []*schema.Column{ClipSubmissionsColumns[9]},
			},
			{
				Name:    "clipsubmission_created_at",
				Unique:  false,
				Columns: []*schema.Column{ClipSubmissionsColumns[7]},
			},
		},
	}
	// MissionsColumns holds the columns for the "missions" table.
	MissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "price_per_1k_views", Type: field.TypeFloat64},
		{Name: "total_budget", Type: field.TypeFloat64},
		{Name: "spent", Type: field.TypeFloat64, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "paused", "completed"}, Default: "active"},
		{Name: "category", Type: field.TypeString, Default: "general"},
		{Name: "platforms", Type: field.TypeJSON, Nullable: true},
		{Name: "source_video_url", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "creator_id", Type: field.TypeInt},
	}
	// MissionsTable holds the schema information for the "missions" table.
	MissionsTable = &schema.Table{
		Name:       "missions",
		Columns:    MissionsColumns,
		PrimaryKey: []*schema.Column{MissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "missions_users_missions",
				Columns:    []*schema.Column{MissionsColumns[12]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "mission_status",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[6]},
			},
			{
				Name:    "mission_category",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[7]},
			},
			{
				Name:    "mission_creator_id",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[12]},
			},
			{
				Name:    "mission_created_at",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[10]},
			},
		},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tiktok_url", Type: field.TypeString},
		{Name: "views_count", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "paid"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "mission_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "submissions_missions_submissions",
				Columns:    []*schema.Column{SubmissionsColumns[6]},
				RefColumns: []*schema.Column{MissionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "submissions_users_submissions",
				Columns:    []*schema.Column{SubmissionsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "submission_user_id_mission_id",
				Unique:  true,
				Columns: []*schema.Column{SubmissionsColumns[7], SubmissionsColumns[6]},
			},
			{
				Name:    "submission_mission_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[6]},
			},
			{
				Name:    "submission_status",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[3]},
			},
			{
				Name:    "submission_created_at",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "pseudo", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "creator", "clipper"}, Default: "clipper"},
		{Name: "tiktok_username", Type: field.TypeString, Nullable: true},
		{Name: "avatar_url", Type: field.TypeString, Nullable: true},
		{Name: "payout_phone", Type: field.TypeString, Nullable: true},
		{Name: "total_earnings", Type: field.TypeFloat64, Default: 0},
		{Name: "stripe_customer_id", Type: field.TypeString, Nullable: true},
		{Name: "stripe_account_id", Type: field.TypeString, Nullable: true},
		{Name: "email_verified", Type: field.TypeBool, Default: false},
		{Name: "email_verification_token", Type: field.TypeString, Nullable: true},
		{Name: "email_verification_token_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "email_verified_at", Type: field.TypeTime, Nullable: true},
		{Name: "onboarding_completed", Type: field.TypeBool, Default: false},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
			{
				Name:    "user_stripe_customer_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[9]},
			},
			{
				Name:    "user_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[17]},
			},
		},
	}
	// WalletTransactionsColumns holds the columns for the "wallet_transactions" table.
	WalletTransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"earning", "recharge", "payout"}},
		{Name: "amount", Type: field.TypeFloat64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "completed", "failed"}, Default: "pending"},
		{Name: "reference", Type: field.TypeString, Default: ""},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// WalletTransactionsTable holds the schema information for the "wallet_transactions" table.
	WalletTransactionsTable = &schema.Table{
		Name:       "wallet_transactions",
		Columns:    WalletTransactionsColumns,
		PrimaryKey: []*schema.Column{WalletTransactionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "wallet_transactions_users_wallet_transactions",
				Columns:    []*schema.Column{WalletTransactionsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "wallettransaction_user_id",
				Unique:  false,
				Columns: []*schema.Column{WalletTransactionsColumns[7]},
			},
			{
				Name:    "wallettransaction_type",
				Unique:  false,
				Columns: []*schema.Column{WalletTransactionsColumns[1]},
			},
			{
				Name:    "wallettransaction_status",
				Unique:  false,
				Columns: []*schema.Column{WalletTransactionsColumns[3]},
			},
			{
				Name:    "wallettransaction_created_at",
				Unique:  false,
				Columns: []*schema.Column{WalletTransactionsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		ClipSubmissionsTable,
		MissionsTable,
		SubmissionsTable,
		UsersTable,
		WalletTransactionsTable,
	}
)

func init() {
	AuditLogsTable.ForeignKeys[0].RefTable = UsersTable
	ClipSubmissionsTable.ForeignKeys[0].RefTable = MissionsTable
	ClipSubmissionsTable.ForeignKeys[1].RefTable = SubmissionsTable
	ClipSubmissionsTable.ForeignKeys[2].RefTable = UsersTable
	MissionsTable.ForeignKeys[0].RefTable = UsersTable
	SubmissionsTable.ForeignKeys[0].RefTable = MissionsTable
	SubmissionsTable.ForeignKeys[1].RefTable = UsersTable
	WalletTransactionsTable.ForeignKeys[0].RefTable = UsersTable
}
