package workflows

import (
	"github.com/google/uuid"
	"go.temporal.io/sdk/workflow"

	"github.com/coastalcarbon/cc-registry/internal/domain"
)

// SettleMintInput carries everything the settlement workflow needs. It
// is captured at approval time so the workflow never re-reads mutable
// project state to build the mint request.
type SettleMintInput struct {
	ProjectID     uuid.UUID         `json:"project_id"`
	SellerKind    domain.SellerKind `json:"seller_kind"`
	SellerID      uuid.UUID         `json:"seller_id"`
	WalletAddress string            `json:"wallet_address"`
	Amount        int64             `json:"amount"`
}

// SettlementWorker defines the interface for settlement workflows
//
//go:generate mockgen -source=worker.go -destination=../mocks/settlement_worker.go -package=mocks -mock_names=SettlementWorker=MockSettlementWorker
type SettlementWorker interface {
	// SettleMint runs one mint attempt for an approved project and
	// reconciles the terminal outcome into the registry
	SettleMint(ctx workflow.Context, input SettleMintInput) error

	// VerifySettlement re-checks a stuck approval against the gateway
	// without submitting a new mint
	VerifySettlement(ctx workflow.Context, input SettleMintInput) error
}

// workerSettlement is the concrete implementation of SettlementWorker
type workerSettlement struct {
	executor Executor
}

// NewSettlementWorker creates a new settlement worker instance
func NewSettlementWorker(executor Executor) SettlementWorker {
	return &workerSettlement{
		executor: executor,
	}
}
