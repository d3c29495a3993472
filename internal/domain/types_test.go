package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coastalcarbon/cc-registry/internal/domain"
)

func TestSellerKindValid(t *testing.T) {
	tests := []struct {
		name  string
		kind  domain.SellerKind
		valid bool
	}{
		{"ngo", domain.SellerKindNGO, true},
		{"panchayat", domain.SellerKindPanchayat, true},
		{"community", domain.SellerKindCommunity, true},
		{"empty", domain.SellerKind(""), false},
		{"unknown", domain.SellerKind("cooperative"), false},
		{"case sensitive", domain.SellerKind("NGO"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.kind.Valid())
		})
	}
}

func TestProjectStatusDecided(t *testing.T) {
	assert.False(t, domain.ProjectStatusPending.Decided())
	assert.True(t, domain.ProjectStatusApproved.Decided())
	assert.True(t, domain.ProjectStatusRejected.Decided())
	assert.True(t, domain.ProjectStatusMinted.Decided())
	assert.True(t, domain.ProjectStatusMintFailed.Decided())
}

func TestSettlementEventSubject(t *testing.T) {
	tests := []struct {
		status  domain.MintOutcomeStatus
		subject string
	}{
		{domain.MintOutcomeConfirmed, "credits.minted"},
		{domain.MintOutcomeFailed, "credits.mint_failed"},
		{domain.MintOutcomeUnknown, "credits.settlement_stalled"},
		{domain.MintOutcomePending, "credits.settlement_stalled"},
	}

	for _, tt := range tests {
		event := &domain.SettlementEvent{Status: tt.status}
		assert.Equal(t, tt.subject, event.Subject())
	}
}

func TestCreditsForTrees(t *testing.T) {
	assert.Equal(t, int64(500), domain.CreditsForTrees(500))
	assert.Equal(t, int64(1), domain.CreditsForTrees(1))
}

func TestInsufficientBalanceError(t *testing.T) {
	err := &domain.InsufficientBalanceError{Requested: 100, Available: 50}
	assert.Equal(t, "insufficient balance: requested 100, available 50", err.Error())

	var target *domain.InsufficientBalanceError
	assert.True(t, errors.As(error(err), &target))
}

func TestMintFailedError(t *testing.T) {
	err := &domain.MintFailedError{Reason: "out of gas"}
	assert.Equal(t, "mint failed: out of gas", err.Error())
}
