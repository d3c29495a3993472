package rest

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/coastalcarbon/cc-registry/internal/api/rest/dto"
	"github.com/coastalcarbon/cc-registry/internal/domain"
	"github.com/coastalcarbon/cc-registry/internal/logger"
	"github.com/coastalcarbon/cc-registry/internal/providers/temporal"
	"github.com/coastalcarbon/cc-registry/internal/store"
	"github.com/coastalcarbon/cc-registry/internal/workflows"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// DecideProject approves or rejects a pending project (requires authentication)
	// POST /api/v1/projects/:id/decision
	DecideProject(c *gin.Context)

	// GetProject retrieves a single project for status polling
	// GET /api/v1/projects/:id
	GetProject(c *gin.Context)

	// TransferCredits mirrors an already-executed on-chain transfer into the ledger (requires authentication)
	// POST /api/v1/credits/transfer
	TransferCredits(c *gin.Context)

	// GetSellerBalance retrieves a seller's ledger balance
	// GET /api/v1/sellers/:kind/:id/balance
	GetSellerBalance(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store               store.Store
	orchestrator        temporal.TemporalOrchestrator
	settlementTaskQueue string
}

// NewHandler creates a new REST API handler
func NewHandler(s store.Store, orchestrator temporal.TemporalOrchestrator, settlementTaskQueue string) Handler {
	return &handler{
		store:               s,
		orchestrator:        orchestrator,
		settlementTaskQueue: settlementTaskQueue,
	}
}

// DecideProject approves or rejects a pending project
func (h *handler) DecideProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid project ID")
		return
	}

	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if req.Decision == dto.DecisionReject {
		project, err := h.store.RejectProject(c.Request.Context(), projectID)
		if err != nil {
			respondStoreError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.DecisionResponse{
			Message: "Project rejected",
			Project: dto.DecisionProject{
				ProjectID:      project.ID.String(),
				PlantationArea: project.PlantationArea,
				Status:         string(project.Status),
			},
		})
		return
	}

	result, err := h.store.ApproveProject(c.Request.Context(), projectID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	// The approval is durable at this point. The mint happens in the
	// settlement workflow; a failed start only delays settlement until
	// the sweeper re-checks the project.
	h.startSettlement(c, result)

	c.JSON(http.StatusOK, dto.DecisionResponse{
		Message: "Project approved, credit minting initiated",
		Project: dto.DecisionProject{
			ProjectID:        result.Project.ID.String(),
			Status:           string(result.Project.Status),
			ActualCC:         result.Project.ActualCC,
			MintingInitiated: true,
		},
	})
}

// startSettlement fires the SettleMint workflow for a committed approval
func (h *handler) startSettlement(c *gin.Context, result *store.ApprovalResult) {
	w := workflows.NewSettlementWorker(nil)

	options := client.StartWorkflowOptions{
		ID:                       fmt.Sprintf("settle-mint-%s", result.Project.ID),
		TaskQueue:                h.settlementTaskQueue,
		WorkflowExecutionTimeout: 30 * time.Minute,
		WorkflowIDReusePolicy:    enumspb.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE,
	}

	input := workflows.SettleMintInput{
		ProjectID:     result.Project.ID,
		SellerKind:    result.Project.SellerKind,
		SellerID:      result.Project.SellerID,
		WalletAddress: result.WalletAddress,
		Amount:        result.Amount,
	}

	if _, err := h.orchestrator.ExecuteWorkflow(c.Request.Context(), options, w.SettleMint, input); err != nil {
		logger.Error(fmt.Errorf("failed to start settlement workflow: %w", err),
			zap.String("project_id", result.Project.ID.String()),
		)
	}
}

// GetProject retrieves a single project for status polling
func (h *handler) GetProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid project ID")
		return
	}

	project, err := h.store.GetProject(c.Request.Context(), projectID)
	if err != nil {
		respondInternalError(c, err, "Failed to get project")
		return
	}

	if project == nil {
		respondNotFound(c, "Project not found")
		return
	}

	c.JSON(http.StatusOK, dto.NewProjectResponse(project))
}

// TransferCredits mirrors an already-executed on-chain transfer into the ledger
func (h *handler) TransferCredits(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	sellerID, err := uuid.Parse(req.SellerID)
	if err != nil {
		respondBadRequest(c, "Invalid seller ID")
		return
	}

	result, err := h.store.TransferCredits(c.Request.Context(), store.TransferInput{
		SellerKind:         domain.SellerKind(req.SellerKind),
		SellerID:           sellerID,
		BuyerWalletAddress: req.BuyerWalletAddress,
		BuyerCompanyName:   req.BuyerCompanyName,
		Amount:             req.Amount,
		TxHash:             req.TxHash,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransferResponse(result, req.TxHash))
}

// GetSellerBalance retrieves a seller's ledger balance
func (h *handler) GetSellerBalance(c *gin.Context) {
	kind := domain.SellerKind(c.Param("kind"))
	if !kind.Valid() {
		respondBadRequest(c, fmt.Sprintf("Invalid seller kind: %q", c.Param("kind")))
		return
	}

	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid seller ID")
		return
	}

	balance, err := h.store.GetSellerBalance(c.Request.Context(), kind, sellerID)
	if err != nil {
		respondInternalError(c, err, "Failed to get seller balance")
		return
	}

	if balance == nil {
		respondNotFound(c, "Seller not found")
		return
	}

	c.JSON(http.StatusOK, dto.NewSellerBalanceResponse(balance))
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "cc-registry-api",
	})
}
