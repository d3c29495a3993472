package workflows_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/testsuite"

	"github.com/coastalcarbon/cc-registry/internal/domain"
	"github.com/coastalcarbon/cc-registry/internal/logger"
	"github.com/coastalcarbon/cc-registry/internal/mocks"
	"github.com/coastalcarbon/cc-registry/internal/workflows"
)

// SettleMintWorkflowTestSuite is the test suite for mint settlement workflow tests
type SettleMintWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env      *testsuite.TestWorkflowEnvironment
	ctrl     *gomock.Controller
	executor *mocks.MockExecutor
	worker   workflows.SettlementWorker
}

// SetupTest is called before each test
func (s *SettleMintWorkflowTestSuite) SetupTest() {
	// Initialize logger for tests
	_ = logger.Initialize(logger.Config{
		Debug: true,
	})

	s.env = s.NewTestWorkflowEnvironment()
	s.ctrl = gomock.NewController(s.T())
	s.executor = mocks.NewMockExecutor(s.ctrl)
	s.worker = workflows.NewSettlementWorker(s.executor)
}

// TearDownTest is called after each test
func (s *SettleMintWorkflowTestSuite) TearDownTest() {
	s.env.AssertExpectations(s.T())
	s.ctrl.Finish()
}

// TestSettleMintWorkflowTestSuite runs the test suite
func TestSettleMintWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(SettleMintWorkflowTestSuite))
}

func settlementInput() workflows.SettleMintInput {
	return workflows.SettleMintInput{
		ProjectID:     uuid.New(),
		SellerKind:    domain.SellerKindNGO,
		SellerID:      uuid.New(),
		WalletAddress: "0xseller",
		Amount:        500,
	}
}

// ====================================================================================
// SettleMint Tests
// ====================================================================================

func (s *SettleMintWorkflowTestSuite) TestSettleMint_Confirmed() {
	input := settlementInput()
	outcome := &domain.MintOutcome{Status: domain.MintOutcomeConfirmed, TxHash: "0xhash1"}

	s.env.OnActivity(s.executor.ExecuteMint, mock.Anything, input).Return(outcome, nil)
	s.env.OnActivity(s.executor.ReconcileMint, mock.Anything, input.ProjectID, outcome).Return(nil)
	s.env.OnActivity(s.executor.PublishSettlement, mock.Anything, mock.Anything).Return(nil)

	s.env.ExecuteWorkflow(s.worker.SettleMint, input)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *SettleMintWorkflowTestSuite) TestSettleMint_ExplicitFailure() {
	input := settlementInput()
	outcome := &domain.MintOutcome{Status: domain.MintOutcomeFailed, Reason: "execution reverted"}

	s.env.OnActivity(s.executor.ExecuteMint, mock.Anything, input).Return(outcome, nil)
	s.env.OnActivity(s.executor.ReconcileMint, mock.Anything, input.ProjectID, outcome).Return(nil)
	s.env.OnActivity(s.executor.PublishSettlement, mock.Anything, mock.Anything).Return(nil)

	s.env.ExecuteWorkflow(s.worker.SettleMint, input)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *SettleMintWorkflowTestSuite) TestSettleMint_UnknownOutcomeLeavesProjectApproved() {
	input := settlementInput()
	outcome := &domain.MintOutcome{Status: domain.MintOutcomeUnknown, Reason: "request timed out"}

	s.env.OnActivity(s.executor.ExecuteMint, mock.Anything, input).Return(outcome, nil)
	// No ReconcileMint call: the project must stay approved
	s.env.OnActivity(s.executor.PublishSettlement, mock.Anything, mock.Anything).Return(nil)

	s.env.ExecuteWorkflow(s.worker.SettleMint, input)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *SettleMintWorkflowTestSuite) TestSettleMint_MintActivityErrorIsNotFailure() {
	input := settlementInput()

	s.env.OnActivity(s.executor.ExecuteMint, mock.Anything, input).
		Return(nil, errors.New("worker lost connection"))
	s.env.OnActivity(s.executor.PublishSettlement, mock.Anything, mock.Anything).Return(nil)

	s.env.ExecuteWorkflow(s.worker.SettleMint, input)

	// The workflow ends cleanly; the sweeper owns the follow-up
	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *SettleMintWorkflowTestSuite) TestSettleMint_ReconcileErrorFailsWorkflow() {
	input := settlementInput()
	outcome := &domain.MintOutcome{Status: domain.MintOutcomeConfirmed, TxHash: "0xhash1"}

	s.env.OnActivity(s.executor.ExecuteMint, mock.Anything, input).Return(outcome, nil)
	s.env.OnActivity(s.executor.ReconcileMint, mock.Anything, input.ProjectID, outcome).
		Return(errors.New("database unavailable"))

	s.env.ExecuteWorkflow(s.worker.SettleMint, input)

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}

func (s *SettleMintWorkflowTestSuite) TestSettleMint_PublishErrorIsNonFatal() {
	input := settlementInput()
	outcome := &domain.MintOutcome{Status: domain.MintOutcomeConfirmed, TxHash: "0xhash1"}

	s.env.OnActivity(s.executor.ExecuteMint, mock.Anything, input).Return(outcome, nil)
	s.env.OnActivity(s.executor.ReconcileMint, mock.Anything, input.ProjectID, outcome).Return(nil)
	s.env.OnActivity(s.executor.PublishSettlement, mock.Anything, mock.Anything).
		Return(errors.New("broker down"))

	s.env.ExecuteWorkflow(s.worker.SettleMint, input)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

// ====================================================================================
// VerifySettlement Tests
// ====================================================================================

func (s *SettleMintWorkflowTestSuite) TestVerifySettlement_ConfirmedLate() {
	input := settlementInput()
	outcome := &domain.MintOutcome{Status: domain.MintOutcomeConfirmed, TxHash: "0xhash1"}

	s.env.OnActivity(s.executor.CheckMintStatus, mock.Anything, input.ProjectID).Return(outcome, nil)
	s.env.OnActivity(s.executor.ReconcileMint, mock.Anything, input.ProjectID, outcome).Return(nil)
	s.env.OnActivity(s.executor.PublishSettlement, mock.Anything, mock.Anything).Return(nil)

	s.env.ExecuteWorkflow(s.worker.VerifySettlement, input)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *SettleMintWorkflowTestSuite) TestVerifySettlement_FailedLate() {
	input := settlementInput()
	outcome := &domain.MintOutcome{Status: domain.MintOutcomeFailed, Reason: "out of gas"}

	s.env.OnActivity(s.executor.CheckMintStatus, mock.Anything, input.ProjectID).Return(outcome, nil)
	s.env.OnActivity(s.executor.ReconcileMint, mock.Anything, input.ProjectID, outcome).Return(nil)
	s.env.OnActivity(s.executor.PublishSettlement, mock.Anything, mock.Anything).Return(nil)

	s.env.ExecuteWorkflow(s.worker.VerifySettlement, input)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *SettleMintWorkflowTestSuite) TestVerifySettlement_StillPending() {
	input := settlementInput()
	outcome := &domain.MintOutcome{Status: domain.MintOutcomePending, TxHash: "0xhash1"}

	s.env.OnActivity(s.executor.CheckMintStatus, mock.Anything, input.ProjectID).Return(outcome, nil)
	// No reconcile, no publish: nothing has settled yet

	s.env.ExecuteWorkflow(s.worker.VerifySettlement, input)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *SettleMintWorkflowTestSuite) TestVerifySettlement_StatusCheckError() {
	input := settlementInput()

	s.env.OnActivity(s.executor.CheckMintStatus, mock.Anything, input.ProjectID).
		Return(nil, errors.New("gateway unreachable"))

	s.env.ExecuteWorkflow(s.worker.VerifySettlement, input)

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}
