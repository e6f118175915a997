package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WalletTransaction holds the schema definition for a wallet ledger entry.
// Balances are derived from these rows, never stored as primary truth.
type WalletTransaction struct {
	ent.Schema
}

// Fields of the WalletTransaction.
func (WalletTransaction) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Comment("Wallet owner"),
		field.Enum("type").
			Values("earning", "recharge", "payout").
			Comment("Ledger entry type"),
		field.Float("amount").
			Comment("Amount in EUR, always positive; type determines direction"),
		field.Enum("status").
			Values("pending", "completed", "failed").
			Default("pending").
			Comment("Settlement status"),
		field.String("reference").
			Default("").
			Comment("Related entity: submission ID, Stripe session or transfer ID"),
		field.String("description").
			Default("").
			Comment("Human-readable ledger line"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the WalletTransaction.
func (WalletTransaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("wallet_transactions").
			Field("user_id").
			Unique().
			Required(),
	}
}

// Indexes of the WalletTransaction.
func (WalletTransaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("type"),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
