package domain

import (
	"time"

	"github.com/google/uuid"
)

// SellerKind identifies the kind of entity that submits restoration
// projects and accrues carbon credits on approval.
type SellerKind string

const (
	// SellerKindNGO represents a registered non-governmental organization
	SellerKindNGO SellerKind = "ngo"
	// SellerKindPanchayat represents a coastal panchayat
	SellerKindPanchayat SellerKind = "panchayat"
	// SellerKindCommunity represents a local community entity
	SellerKindCommunity SellerKind = "community"
)

// Valid reports whether the seller kind is one of the known variants
func (k SellerKind) Valid() bool {
	switch k {
	case SellerKindNGO, SellerKindPanchayat, SellerKindCommunity:
		return true
	}
	return false
}

// ProjectStatus represents the lifecycle state of a restoration project
type ProjectStatus string

const (
	// ProjectStatusPending means the project awaits an admin decision
	ProjectStatusPending ProjectStatus = "pending"
	// ProjectStatusApproved means the local ledger credit is committed but
	// the on-chain mint has not settled yet
	ProjectStatusApproved ProjectStatus = "approved"
	// ProjectStatusRejected is terminal; no credits were issued
	ProjectStatusRejected ProjectStatus = "rejected"
	// ProjectStatusMinted is terminal; the chain confirmed the mint
	ProjectStatusMinted ProjectStatus = "minted"
	// ProjectStatusMintFailed is terminal from the registry's perspective;
	// external remediation is required
	ProjectStatusMintFailed ProjectStatus = "mint_failed"
)

// Decided reports whether the status is past the pending stage
func (s ProjectStatus) Decided() bool {
	return s != ProjectStatusPending
}

// MintOutcomeStatus classifies the result of a mint attempt as observed
// by the settlement workflow.
type MintOutcomeStatus string

const (
	// MintOutcomeConfirmed means the gateway confirmed the mint transaction
	MintOutcomeConfirmed MintOutcomeStatus = "confirmed"
	// MintOutcomeFailed means the gateway explicitly reported failure
	MintOutcomeFailed MintOutcomeStatus = "failed"
	// MintOutcomeUnknown means the attempt timed out before an answer
	// arrived; the transaction may still land later, so the project must
	// not be marked failed
	MintOutcomeUnknown MintOutcomeStatus = "unknown"
	// MintOutcomePending means the gateway has the transaction but the
	// chain has not confirmed it yet
	MintOutcomePending MintOutcomeStatus = "pending"
)

// MintOutcome is the settlement workflow's view of one mint attempt
type MintOutcome struct {
	Status MintOutcomeStatus `json:"status"`
	TxHash string            `json:"tx_hash,omitempty"`
	Reason string            `json:"reason,omitempty"`
}

// SettlementEvent is published to the message broker once a mint attempt
// reaches a terminal outcome.
type SettlementEvent struct {
	ProjectID  uuid.UUID         `json:"project_id"`
	SellerKind SellerKind        `json:"seller_kind"`
	SellerID   uuid.UUID         `json:"seller_id"`
	Amount     int64             `json:"amount"`
	Status     MintOutcomeStatus `json:"status"`
	TxHash     string            `json:"tx_hash,omitempty"`
	Reason     string            `json:"reason,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// Subject returns the broker subject for the event.
// Format: credits.{minted|mint_failed|settlement_stalled}
func (e *SettlementEvent) Subject() string {
	switch e.Status {
	case MintOutcomeConfirmed:
		return "credits.minted"
	case MintOutcomeFailed:
		return "credits.mint_failed"
	default:
		return "credits.settlement_stalled"
	}
}

// CreditsForTrees derives the credit amount for an approved project from
// its tree count. The amount is derived, never caller-supplied, so an
// admin can only approve or reject.
func CreditsForTrees(treeCount int64) int64 {
	return treeCount
}
