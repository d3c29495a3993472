package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/coastalcarbon/cc-registry/internal/domain"
	"github.com/coastalcarbon/cc-registry/internal/logger"
)

// SettleMint runs the settlement for one approved project. The approval
// transaction has already committed by the time this workflow starts;
// everything here happens after the ledger credit.
//
// The mint activity runs exactly once. A terminal outcome (confirmed or
// failed) is reconciled into the project row and announced on the
// broker. An unknown outcome leaves the project approved; the sweeper
// starts VerifySettlement later to close the loop.
func (w *workerSettlement) SettleMint(ctx workflow.Context, input SettleMintInput) error {
	logger.InfoWf(ctx, "Starting mint settlement",
		zap.String("project_id", input.ProjectID.String()),
		zap.Int64("amount", input.Amount),
	)

	// Single attempt. Retrying a mint that may have landed would risk
	// minting twice.
	mintOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	mintCtx := workflow.WithActivityOptions(ctx, mintOptions)

	var outcome *domain.MintOutcome
	err := workflow.ExecuteActivity(mintCtx, w.executor.ExecuteMint, input).Get(mintCtx, &outcome)
	if err != nil {
		// Activity-level failure (worker crash, timeout). The request
		// may or may not have reached the gateway, so the project stays
		// approved for the sweeper.
		logger.ErrorWf(ctx, fmt.Errorf("mint attempt did not complete: %w", err),
			zap.String("project_id", input.ProjectID.String()),
		)
		w.publishSettlement(ctx, input, &domain.MintOutcome{
			Status: domain.MintOutcomeUnknown,
			Reason: err.Error(),
		})
		return nil
	}

	if outcome.Status != domain.MintOutcomeConfirmed && outcome.Status != domain.MintOutcomeFailed {
		logger.WarnWf(ctx, "Mint outcome not terminal, leaving project approved",
			zap.String("project_id", input.ProjectID.String()),
			zap.String("outcome", string(outcome.Status)),
			zap.String("reason", outcome.Reason),
		)
		w.publishSettlement(ctx, input, outcome)
		return nil
	}

	if err := w.reconcile(ctx, input, outcome); err != nil {
		return err
	}

	w.publishSettlement(ctx, input, outcome)

	logger.InfoWf(ctx, "Mint settlement finished",
		zap.String("project_id", input.ProjectID.String()),
		zap.String("outcome", string(outcome.Status)),
	)

	return nil
}

// reconcile writes the terminal outcome to the project row. The write is
// idempotent on the store side, so retries here are safe.
func (w *workerSettlement) reconcile(ctx workflow.Context, input SettleMintInput, outcome *domain.MintOutcome) error {
	reconcileOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 5,
		},
	}
	reconcileCtx := workflow.WithActivityOptions(ctx, reconcileOptions)

	err := workflow.ExecuteActivity(reconcileCtx, w.executor.ReconcileMint, input.ProjectID, outcome).Get(reconcileCtx, nil)
	if err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("failed to reconcile mint: %w", err),
			zap.String("project_id", input.ProjectID.String()),
			zap.String("outcome", string(outcome.Status)),
		)
		return err
	}

	return nil
}

// publishSettlement announces the outcome on the broker. Best effort; a
// broker outage must not fail the settlement.
func (w *workerSettlement) publishSettlement(ctx workflow.Context, input SettleMintInput, outcome *domain.MintOutcome) {
	publishOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
		},
	}
	publishCtx := workflow.WithActivityOptions(ctx, publishOptions)

	event := &domain.SettlementEvent{
		ProjectID:  input.ProjectID,
		SellerKind: input.SellerKind,
		SellerID:   input.SellerID,
		Amount:     input.Amount,
		Status:     outcome.Status,
		TxHash:     outcome.TxHash,
		Reason:     outcome.Reason,
		OccurredAt: workflow.Now(ctx).UTC(),
	}

	if err := workflow.ExecuteActivity(publishCtx, w.executor.PublishSettlement, event).Get(publishCtx, nil); err != nil {
		logger.WarnWf(ctx, "Failed to publish settlement event (non-fatal)",
			zap.String("project_id", input.ProjectID.String()),
			zap.Error(err),
		)
	}
}
