package dto

import (
	"errors"
	"fmt"

	"github.com/coastalcarbon/cc-registry/internal/domain"
)

const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// DecisionRequest represents the request body for deciding a pending project
type DecisionRequest struct {
	Decision string `json:"decision"`
}

// Validate validates the request body
func (r *DecisionRequest) Validate() error {
	if r.Decision == "" {
		return errors.New("decision is required")
	}
	if r.Decision != DecisionApprove && r.Decision != DecisionReject {
		return fmt.Errorf("decision must be %q or %q", DecisionApprove, DecisionReject)
	}
	return nil
}

// TransferRequest represents the request body for mirroring an on-chain
// credit transfer into the ledger
type TransferRequest struct {
	SellerKind         string  `json:"seller_kind"`
	SellerID           string  `json:"seller_id"`
	BuyerWalletAddress string  `json:"buyer_wallet_address,omitempty"`
	BuyerCompanyName   string  `json:"buyer_company_name,omitempty"`
	Amount             int64   `json:"amount"`
	TxHash             *string `json:"tx_hash,omitempty"`
}

// Validate validates the request body
func (r *TransferRequest) Validate() error {
	if !domain.SellerKind(r.SellerKind).Valid() {
		return fmt.Errorf("invalid seller_kind: %q", r.SellerKind)
	}
	if r.SellerID == "" {
		return errors.New("seller_id is required")
	}
	if r.BuyerWalletAddress == "" && r.BuyerCompanyName == "" {
		return errors.New("one of buyer_wallet_address or buyer_company_name is required")
	}
	if r.Amount <= 0 {
		return errors.New("amount must be a positive integer")
	}
	return nil
}
