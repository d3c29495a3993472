package sweeper_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"

	"github.com/coastalcarbon/cc-registry/internal/domain"
	"github.com/coastalcarbon/cc-registry/internal/logger"
	"github.com/coastalcarbon/cc-registry/internal/mocks"
	"github.com/coastalcarbon/cc-registry/internal/store/schema"
	"github.com/coastalcarbon/cc-registry/internal/sweeper"
	"github.com/coastalcarbon/cc-registry/internal/workflows"
)

// testSweeperMocks contains all the mocks needed for testing the sweeper
type testSweeperMocks struct {
	ctrl         *gomock.Controller
	store        *mocks.MockStore
	clock        *mocks.MockClock
	orchestrator *mocks.MockTemporalOrchestrator
	sweeper      sweeper.Sweeper
}

// setupTestSweeper creates all the mocks and sweeper for testing
func setupTestSweeper(t *testing.T) *testSweeperMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testSweeperMocks{
		ctrl:         ctrl,
		store:        mocks.NewMockStore(ctrl),
		clock:        mocks.NewMockClock(ctrl),
		orchestrator: mocks.NewMockTemporalOrchestrator(ctrl),
	}

	config := &sweeper.SettlementSweeperConfig{
		BatchSize:      10,
		WorkerPoolSize: 2,
		StuckAfter:     10 * time.Minute,
		Interval:       5 * time.Minute,
	}

	tm.sweeper = sweeper.NewSettlementSweeper(
		config,
		tm.store,
		tm.clock,
		tm.orchestrator,
		"test-task-queue",
	)

	return tm
}

// tearDownTestSweeper cleans up the test mocks
func tearDownTestSweeper(mocks *testSweeperMocks) {
	mocks.ctrl.Finish()
}

// expectClock wires the default clock behavior: real now, short sleeps
func expectClock(tm *testSweeperMocks) {
	now := time.Now()
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()
	tm.clock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		go func() {
			time.Sleep(20 * time.Millisecond)
			ch <- time.Now()
		}()
		return ch
	}).AnyTimes()
}

func stuckProject(actualCC int64) *schema.Project {
	approvedAt := time.Now().Add(-time.Hour)
	return &schema.Project{
		ID:         uuid.New(),
		SellerID:   uuid.New(),
		SellerKind: domain.SellerKindNGO,
		Status:     domain.ProjectStatusApproved,
		ActualCC:   &actualCC,
		ApprovedAt: &approvedAt,
	}
}

func TestSettlementSweeper_Name(t *testing.T) {
	tm := setupTestSweeper(t)
	defer tearDownTestSweeper(tm)

	assert.Equal(t, "settlement-sweeper", tm.sweeper.Name())
}

func TestSettlementSweeper_StartsVerificationForStuckApprovals(t *testing.T) {
	tm := setupTestSweeper(t)
	defer tearDownTestSweeper(tm)

	expectClock(tm)

	projects := []*schema.Project{stuckProject(500), stuckProject(1200)}

	tm.store.EXPECT().
		ListStuckApprovals(gomock.Any(), gomock.Any(), 10).
		Return(projects, nil).
		Times(1)
	tm.store.EXPECT().
		ListStuckApprovals(gomock.Any(), gomock.Any(), 10).
		Return(nil, nil).
		AnyTimes()

	var mu sync.Mutex
	startedInputs := make(map[string]workflows.SettleMintInput)
	done := make(chan struct{})

	tm.orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, options client.StartWorkflowOptions, _ interface{}, args ...interface{}) (client.WorkflowRun, error) {
			mu.Lock()
			defer mu.Unlock()
			startedInputs[options.ID] = args[0].(workflows.SettleMintInput)
			if len(startedInputs) == len(projects) {
				close(done)
			}
			return nil, nil
		}).
		Times(2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	startErr := make(chan error, 1)
	go func() {
		startErr <- tm.sweeper.Start(ctx)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for verification workflows to start")
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer stopCancel()
	require.NoError(t, tm.sweeper.Stop(stopCtx))
	require.NoError(t, <-startErr)

	// Workflow IDs are derived from project IDs for dedup, and the input
	// carries the credited amount so settlement events report it.
	for _, p := range projects {
		input, ok := startedInputs[fmt.Sprintf("verify-settlement-%s", p.ID)]
		require.True(t, ok)
		assert.Equal(t, p.ID, input.ProjectID)
		assert.Equal(t, p.SellerKind, input.SellerKind)
		assert.Equal(t, p.SellerID, input.SellerID)
		assert.Equal(t, *p.ActualCC, input.Amount)
	}
}

func TestSettlementSweeper_ContinuesAfterStoreError(t *testing.T) {
	tm := setupTestSweeper(t)
	defer tearDownTestSweeper(tm)

	expectClock(tm)

	listed := make(chan struct{})
	var once sync.Once

	tm.store.EXPECT().
		ListStuckApprovals(gomock.Any(), gomock.Any(), 10).
		Return(nil, errors.New("connection refused")).
		Times(1)
	tm.store.EXPECT().
		ListStuckApprovals(gomock.Any(), gomock.Any(), 10).
		DoAndReturn(func(_ context.Context, _ time.Time, _ int) ([]*schema.Project, error) {
			once.Do(func() { close(listed) })
			return nil, nil
		}).
		AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	startErr := make(chan error, 1)
	go func() {
		startErr <- tm.sweeper.Start(ctx)
	}()

	// The loop must survive the first failing cycle and sweep again.
	select {
	case <-listed:
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper did not continue after a store error")
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer stopCancel()
	require.NoError(t, tm.sweeper.Stop(stopCtx))
	require.NoError(t, <-startErr)
}

func TestSettlementSweeper_StartTwiceFails(t *testing.T) {
	tm := setupTestSweeper(t)
	defer tearDownTestSweeper(tm)

	expectClock(tm)

	looping := make(chan struct{})
	var once sync.Once

	tm.store.EXPECT().
		ListStuckApprovals(gomock.Any(), gomock.Any(), 10).
		DoAndReturn(func(_ context.Context, _ time.Time, _ int) ([]*schema.Project, error) {
			once.Do(func() { close(looping) })
			return nil, nil
		}).
		AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	startErr := make(chan error, 1)
	go func() {
		startErr <- tm.sweeper.Start(ctx)
	}()

	// Wait until the first Start is inside its loop, then the second
	// Start must refuse to run.
	select {
	case <-looping:
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper never started sweeping")
	}
	assert.Error(t, tm.sweeper.Start(ctx))

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer stopCancel()
	require.NoError(t, tm.sweeper.Stop(stopCtx))
	require.NoError(t, <-startErr)
}

func TestSettlementSweeper_StopWithoutStart(t *testing.T) {
	tm := setupTestSweeper(t)
	defer tearDownTestSweeper(tm)

	require.NoError(t, tm.sweeper.Stop(context.Background()))
}
