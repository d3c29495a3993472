package dto

import (
	"time"

	"gorm.io/datatypes"

	"github.com/coastalcarbon/cc-registry/internal/store"
	"github.com/coastalcarbon/cc-registry/internal/store/schema"
)

// DecisionProject is the project summary echoed back from a decision
type DecisionProject struct {
	ProjectID        string `json:"project_id"`
	PlantationArea   string `json:"plantation_area,omitempty"`
	Status           string `json:"status"`
	ActualCC         *int64 `json:"actual_cc,omitempty"`
	MintingInitiated bool   `json:"minting_initiated,omitempty"`
}

// DecisionResponse is the response body for a project decision
type DecisionResponse struct {
	Message string          `json:"message"`
	Project DecisionProject `json:"project"`
}

// ProjectResponse is the read model returned by project status polling
type ProjectResponse struct {
	ProjectID      string         `json:"project_id"`
	SellerID       string         `json:"seller_id"`
	SellerKind     string         `json:"seller_kind"`
	PlantationArea string         `json:"plantation_area"`
	Location       datatypes.JSON `json:"location,omitempty"`
	TreeCount      int64          `json:"tree_count"`
	EstimatedCC    int64          `json:"estimated_cc"`
	ActualCC       *int64         `json:"actual_cc,omitempty"`
	Status         string         `json:"status"`
	MintTxHash     *string        `json:"mint_tx_hash,omitempty"`
	ApprovedAt     *time.Time     `json:"approved_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// NewProjectResponse maps a project row to its API representation
func NewProjectResponse(p *schema.Project) *ProjectResponse {
	return &ProjectResponse{
		ProjectID:      p.ID.String(),
		SellerID:       p.SellerID.String(),
		SellerKind:     string(p.SellerKind),
		PlantationArea: p.PlantationArea,
		Location:       p.Location,
		TreeCount:      p.TreeCount,
		EstimatedCC:    p.EstimatedCC,
		ActualCC:       p.ActualCC,
		Status:         string(p.Status),
		MintTxHash:     p.MintTxHash,
		ApprovedAt:     p.ApprovedAt,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// TransferParty reports one side of a transfer with its balance movement
type TransferParty struct {
	ID              string `json:"id"`
	Name            string `json:"name,omitempty"`
	CompanyName     string `json:"company_name,omitempty"`
	PreviousBalance int64  `json:"previous_balance"`
	NewBalance      int64  `json:"new_balance"`
}

// TransferData is the payload of a successful transfer response
type TransferData struct {
	TransferID string        `json:"transfer_id"`
	From       TransferParty `json:"from"`
	To         TransferParty `json:"to"`
	Amount     int64         `json:"amount"`
	TxHash     *string       `json:"tx_hash,omitempty"`
	Timestamp  time.Time     `json:"timestamp"`
}

// TransferResponse is the response body for a committed transfer
type TransferResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    TransferData `json:"data"`
}

// NewTransferResponse maps a transfer result to its API representation
func NewTransferResponse(result *store.TransferResult, txHash *string) *TransferResponse {
	return &TransferResponse{
		Success: true,
		Message: "Credits transferred successfully",
		Data: TransferData{
			TransferID: result.TransferID,
			From: TransferParty{
				ID:              result.SellerID.String(),
				Name:            result.SellerName,
				PreviousBalance: result.SellerBalanceBefore,
				NewBalance:      result.SellerBalanceAfter,
			},
			To: TransferParty{
				ID:              result.BuyerID.String(),
				CompanyName:     result.BuyerCompanyName,
				PreviousBalance: result.BuyerBalanceBefore,
				NewBalance:      result.BuyerBalanceAfter,
			},
			Amount:    result.Amount,
			TxHash:    txHash,
			Timestamp: result.CreatedAt,
		},
	}
}

// SellerBalanceResponse is the read model for a seller balance lookup
type SellerBalanceResponse struct {
	SellerKind    string  `json:"seller_kind"`
	SellerID      string  `json:"seller_id"`
	Name          string  `json:"name"`
	WalletAddress *string `json:"wallet_address,omitempty"`
	TotalCC       int64   `json:"total_cc"`
}

// NewSellerBalanceResponse maps a balance row to its API representation
func NewSellerBalanceResponse(b *store.SellerBalance) *SellerBalanceResponse {
	return &SellerBalanceResponse{
		SellerKind:    string(b.SellerKind),
		SellerID:      b.SellerID.String(),
		Name:          b.Name,
		WalletAddress: b.WalletAddress,
		TotalCC:       b.TotalCC,
	}
}
