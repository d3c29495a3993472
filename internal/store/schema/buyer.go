package schema

import (
	"time"

	"github.com/google/uuid"
)

// Buyer represents the buyers table - a company purchasing carbon credits
type Buyer struct {
	// ID is the buyer identifier
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	// CompanyName is the registered company name, unique across buyers
	CompanyName string `gorm:"column:company_name;type:text;not null;uniqueIndex"`
	// WalletAddress is the buyer's on-chain wallet, unique when present
	WalletAddress *string `gorm:"column:wallet_address;type:text;uniqueIndex"`
	// TotalCC is the buyer's carbon-credit ledger balance
	TotalCC int64 `gorm:"column:total_cc;not null;default:0;check:total_cc >= 0"`
	// CreatedAt is the registration timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the last mutation timestamp
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Buyer model
func (Buyer) TableName() string {
	return "buyers"
}
