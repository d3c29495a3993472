package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/coastalcarbon/cc-registry/internal/adapter"
	"github.com/coastalcarbon/cc-registry/internal/logger"
	"github.com/coastalcarbon/cc-registry/internal/providers/temporal"
	"github.com/coastalcarbon/cc-registry/internal/store"
	"github.com/coastalcarbon/cc-registry/internal/store/schema"
	"github.com/coastalcarbon/cc-registry/internal/workflows"
)

// SettlementSweeperConfig holds configuration for the settlement sweeper
type SettlementSweeperConfig struct {
	BatchSize      int           // Projects to re-check per cycle
	WorkerPoolSize int           // Concurrent workflow starts
	StuckAfter     time.Duration // Only re-check approvals older than this
	Interval       time.Duration // Time to sleep between sweep cycles
}

// settlementSweeper re-checks projects that committed an approval but
// never reached a terminal mint state. A mint call whose outcome was
// ambiguous (timeout, gateway error) leaves the project approved; this
// sweeper asks the gateway what actually happened instead of re-minting.
type settlementSweeper struct {
	config                *SettlementSweeperConfig
	store                 store.Store
	clock                 adapter.Clock
	orchestrator          temporal.TemporalOrchestrator
	orchestratorTaskQueue string
	pool                  pond.Pool
	running               atomic.Bool
	stopChan              chan struct{}
	stoppedCh             chan struct{}
}

// NewSettlementSweeper creates a new settlement sweeper
func NewSettlementSweeper(
	config *SettlementSweeperConfig,
	st store.Store,
	clock adapter.Clock,
	orchestrator temporal.TemporalOrchestrator,
	orchestratorTaskQueue string,
) Sweeper {
	return &settlementSweeper{
		config:                config,
		store:                 st,
		clock:                 clock,
		orchestrator:          orchestrator,
		orchestratorTaskQueue: orchestratorTaskQueue,
		stopChan:              make(chan struct{}),
		stoppedCh:             make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *settlementSweeper) Name() string {
	return "settlement-sweeper"
}

// Start begins the sweeper's main loop
func (s *settlementSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting settlement sweeper",
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
		zap.Duration("stuck_after", s.config.StuckAfter),
		zap.Duration("interval", s.config.Interval),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Settlement sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			s.cleanup()
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Settlement sweeper stop requested")
			s.cleanup()
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
		}
	}
}

// cleanup stops the worker pool and waits for tasks to complete
func (s *settlementSweeper) cleanup() {
	if s.pool != nil {
		s.pool.StopAndWait()
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *settlementSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping settlement sweeper")

	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Settlement sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Settlement sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle runs a single sweep cycle
func (s *settlementSweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()
	cutoff := startTime.Add(-s.config.StuckAfter)

	projects, err := s.store.ListStuckApprovals(ctx, cutoff, s.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list stuck approvals: %w", err)
	}

	if len(projects) == 0 {
		if !s.sleep(ctx, s.config.Interval) {
			return ctx.Err() // Context canceled during sleep
		}
		return nil
	}

	logger.InfoCtx(ctx, "Found stuck approvals", zap.Int("count", len(projects)))

	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)

	var startedCount, failedCount atomic.Int32

	for _, project := range projects {
		s.pool.Submit(func() {
			if err := s.startVerification(ctx, project); err != nil {
				failedCount.Add(1)
				logger.ErrorCtx(ctx, err, zap.String("project_id", project.ID.String()))
				return
			}
			startedCount.Add(1)
		})
	}

	s.pool.StopAndWait()

	duration := s.clock.Since(startTime)
	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", duration),
		zap.Int("total", len(projects)),
		zap.Int32("started", startedCount.Load()),
		zap.Int32("failed", failedCount.Load()),
	)

	if !s.sleep(ctx, s.config.Interval) {
		return ctx.Err() // Context canceled during sleep
	}

	return nil
}

// startVerification starts a VerifySettlement workflow for one stuck project.
// The workflow ID is derived from the project ID so a project already being
// verified is not verified twice concurrently.
func (s *settlementSweeper) startVerification(ctx context.Context, project *schema.Project) error {
	w := workflows.NewSettlementWorker(nil)

	options := client.StartWorkflowOptions{
		ID:                       fmt.Sprintf("verify-settlement-%s", project.ID),
		TaskQueue:                s.orchestratorTaskQueue,
		WorkflowExecutionTimeout: 10 * time.Minute,
	}

	input := workflows.SettleMintInput{
		ProjectID:  project.ID,
		SellerKind: project.SellerKind,
		SellerID:   project.SellerID,
	}
	// Approved rows always carry actual_cc; the settlement event needs
	// the credited amount even though verification never re-mints.
	if project.ActualCC != nil {
		input.Amount = *project.ActualCC
	}

	if _, err := s.orchestrator.ExecuteWorkflow(ctx, options, w.VerifySettlement, input); err != nil {
		return fmt.Errorf("failed to start verification workflow: %w", err)
	}

	return nil
}

// sleep sleeps for the given duration but can be interrupted by context cancellation
// Returns true if sleep completed normally, false if interrupted by context
func (s *settlementSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true // Sleep completed
	case <-ctx.Done():
		return false // Interrupted by context cancellation
	case <-s.stopChan:
		return false // Interrupted by stop signal
	}
}
