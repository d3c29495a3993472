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

// VerifySettlement re-checks a stuck approval against the gateway. It
// never submits a new mint; it only asks what happened to the one that
// was already sent. A still-pending or unknown answer leaves the project
// approved so a later sweep can try again.
func (w *workerSettlement) VerifySettlement(ctx workflow.Context, input SettleMintInput) error {
	logger.InfoWf(ctx, "Verifying stuck settlement",
		zap.String("project_id", input.ProjectID.String()),
	)

	statusOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
		},
	}
	statusCtx := workflow.WithActivityOptions(ctx, statusOptions)

	var outcome *domain.MintOutcome
	err := workflow.ExecuteActivity(statusCtx, w.executor.CheckMintStatus, input.ProjectID).Get(statusCtx, &outcome)
	if err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("failed to check mint status: %w", err),
			zap.String("project_id", input.ProjectID.String()),
		)
		return err
	}

	switch outcome.Status {
	case domain.MintOutcomeConfirmed, domain.MintOutcomeFailed:
		if err := w.reconcile(ctx, input, outcome); err != nil {
			return err
		}
		w.publishSettlement(ctx, input, outcome)

		logger.InfoWf(ctx, "Stuck settlement resolved",
			zap.String("project_id", input.ProjectID.String()),
			zap.String("outcome", string(outcome.Status)),
		)
	default:
		logger.InfoWf(ctx, "Settlement still unresolved, leaving project approved",
			zap.String("project_id", input.ProjectID.String()),
			zap.String("outcome", string(outcome.Status)),
		)
	}

	return nil
}
