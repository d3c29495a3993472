package workflows

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/coastalcarbon/cc-registry/internal/chain"
	"github.com/coastalcarbon/cc-registry/internal/domain"
	"github.com/coastalcarbon/cc-registry/internal/logger"
)

// ExecuteMint submits one mint attempt to the chain gateway. The project
// ID rides along as the gateway-side idempotency reference, so even a
// duplicate submission cannot mint twice.
func (e *executor) ExecuteMint(ctx context.Context, input SettleMintInput) (*domain.MintOutcome, error) {
	logger.InfoCtx(ctx, "Submitting mint to chain gateway",
		zap.String("project_id", input.ProjectID.String()),
		zap.String("wallet_address", input.WalletAddress),
		zap.Int64("amount", input.Amount),
	)

	outcome, err := e.gateway.Mint(ctx, chain.MintRequest{
		Address:   input.WalletAddress,
		Amount:    input.Amount,
		Reference: input.ProjectID.String(),
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Mint attempt finished",
		zap.String("project_id", input.ProjectID.String()),
		zap.String("outcome", string(outcome.Status)),
		zap.String("tx_hash", outcome.TxHash),
	)

	return outcome, nil
}

// CheckMintStatus asks the gateway for the outcome of a mint by its
// project reference
func (e *executor) CheckMintStatus(ctx context.Context, projectID uuid.UUID) (*domain.MintOutcome, error) {
	return e.gateway.MintStatus(ctx, projectID.String())
}

// ReconcileMint records a terminal mint outcome on the project row
func (e *executor) ReconcileMint(ctx context.Context, projectID uuid.UUID, outcome *domain.MintOutcome) error {
	return e.store.SettleMint(ctx, projectID, *outcome)
}

// PublishSettlement emits a settlement event to the message broker
func (e *executor) PublishSettlement(ctx context.Context, event *domain.SettlementEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	return e.publisher.PublishSettlement(ctx, event)
}
