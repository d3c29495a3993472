package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/coastalcarbon/cc-registry/internal/domain"
	"github.com/coastalcarbon/cc-registry/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

// ApprovalResult carries everything the settlement workflow needs after
// an approval transaction commits
type ApprovalResult struct {
	Project       *schema.Project
	WalletAddress string
	Amount        int64
}

// TransferInput describes a credit transfer from a seller to a buyer.
// Exactly one of BuyerWalletAddress or BuyerCompanyName must be set.
type TransferInput struct {
	SellerKind         domain.SellerKind
	SellerID           uuid.UUID
	BuyerWalletAddress string
	BuyerCompanyName   string
	Amount             int64
	TxHash             *string
}

// TransferResult reports the balances moved by a committed transfer
type TransferResult struct {
	TransferID          string
	SellerID            uuid.UUID
	SellerName          string
	SellerBalanceBefore int64
	SellerBalanceAfter  int64
	BuyerID             uuid.UUID
	BuyerCompanyName    string
	BuyerBalanceBefore  int64
	BuyerBalanceAfter   int64
	Amount              int64
	CreatedAt           time.Time
}

// SellerBalance is a read-model row for balance lookups
type SellerBalance struct {
	SellerKind    domain.SellerKind
	SellerID      uuid.UUID
	Name          string
	WalletAddress *string
	TotalCC       int64
}

// Store defines the interface for database operations
type Store interface {
	// ApproveProject moves a pending project to approved, derives the
	// credit amount from its tree count and credits the seller's ledger,
	// all in one transaction. The commit happens before any chain call.
	ApproveProject(ctx context.Context, projectID uuid.UUID) (*ApprovalResult, error)
	// RejectProject moves a pending project to rejected
	RejectProject(ctx context.Context, projectID uuid.UUID) (*schema.Project, error)
	// SettleMint records the terminal outcome of a mint attempt on an
	// approved project
	SettleMint(ctx context.Context, projectID uuid.UUID, outcome domain.MintOutcome) error
	// TransferCredits atomically moves credits from a seller to a buyer
	// and writes the audit record
	TransferCredits(ctx context.Context, input TransferInput) (*TransferResult, error)
	// GetProject retrieves a project by ID, nil when absent
	GetProject(ctx context.Context, projectID uuid.UUID) (*schema.Project, error)
	// GetSellerBalance retrieves the ledger balance for a seller of the
	// given kind, nil when absent
	GetSellerBalance(ctx context.Context, kind domain.SellerKind, sellerID uuid.UUID) (*SellerBalance, error)
	// GetBuyerByWallet retrieves a buyer by wallet address, nil when absent
	GetBuyerByWallet(ctx context.Context, walletAddress string) (*schema.Buyer, error)
	// ListStuckApprovals returns projects that committed an approval
	// before the cutoff but never reached a terminal mint state
	ListStuckApprovals(ctx context.Context, approvedBefore time.Time, limit int) ([]*schema.Project, error)
}
