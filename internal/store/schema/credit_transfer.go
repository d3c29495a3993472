package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/coastalcarbon/cc-registry/internal/domain"
)

// CreditTransfer represents the credit_transfers table - the immutable
// audit record written inside the same transaction that moves balances
type CreditTransfer struct {
	// ID is a ULID so audit rows sort by creation time
	ID string `gorm:"column:id;type:text;primaryKey"`
	// SellerKind selects the seller table the debit was applied to
	SellerKind domain.SellerKind `gorm:"column:seller_kind;type:text;not null;index:idx_credit_transfers_seller,priority:1"`
	// SellerID references the debited seller row
	SellerID uuid.UUID `gorm:"column:seller_id;type:uuid;not null;index:idx_credit_transfers_seller,priority:2"`
	// BuyerID references the credited buyer row
	BuyerID uuid.UUID `gorm:"column:buyer_id;type:uuid;not null;index"`
	// Amount is the number of credits moved
	Amount int64 `gorm:"column:amount;not null"`
	// SellerBalanceBefore and SellerBalanceAfter snapshot the debit
	SellerBalanceBefore int64 `gorm:"column:seller_balance_before;not null"`
	SellerBalanceAfter  int64 `gorm:"column:seller_balance_after;not null"`
	// BuyerBalanceBefore and BuyerBalanceAfter snapshot the credit
	BuyerBalanceBefore int64 `gorm:"column:buyer_balance_before;not null"`
	BuyerBalanceAfter  int64 `gorm:"column:buyer_balance_after;not null"`
	// TxHash is the on-chain transfer hash when one was recorded
	TxHash *string `gorm:"column:tx_hash;type:text"`
	// CreatedAt is the transfer timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CreditTransfer model
func (CreditTransfer) TableName() string {
	return "credit_transfers"
}
