package schema

import (
	"time"

	"github.com/google/uuid"
)

// SellerAccount holds the ledger columns shared by all seller tables.
// Each seller kind keeps its own table; dispatch happens through
// domain.SellerKind, never through string-built SQL.
type SellerAccount struct {
	// ID is the seller identifier
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	// Name is the registered organization name
	Name string `gorm:"column:name;type:text;not null"`
	// WalletAddress is the on-chain wallet credits are minted to (nil until registered)
	WalletAddress *string `gorm:"column:wallet_address;type:text"`
	// TotalCC is the seller's carbon-credit ledger balance; never negative
	TotalCC int64 `gorm:"column:total_cc;not null;default:0;check:total_cc >= 0"`
	// CreatedAt is the registration timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the last mutation timestamp
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// NGO represents the ngos table
type NGO struct {
	SellerAccount `gorm:"embedded"`
}

// TableName specifies the table name for the NGO model
func (NGO) TableName() string {
	return "ngos"
}

// Panchayat represents the panchayats table
type Panchayat struct {
	SellerAccount `gorm:"embedded"`
}

// TableName specifies the table name for the Panchayat model
func (Panchayat) TableName() string {
	return "panchayats"
}

// Community represents the communities table
type Community struct {
	SellerAccount `gorm:"embedded"`
}

// TableName specifies the table name for the Community model
func (Community) TableName() string {
	return "communities"
}
