package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/coastalcarbon/cc-registry/internal/domain"
	"github.com/coastalcarbon/cc-registry/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func strPtr(s string) *string {
	return &s
}

// seedSeller inserts a seller row into the table selected by kind
func seedSeller(t *testing.T, tx *gorm.DB, kind domain.SellerKind, name string, wallet *string, totalCC int64) uuid.UUID {
	account := schema.SellerAccount{
		ID:            uuid.New(),
		Name:          name,
		WalletAddress: wallet,
		TotalCC:       totalCC,
	}

	var err error
	switch kind {
	case domain.SellerKindNGO:
		err = tx.Create(&schema.NGO{SellerAccount: account}).Error
	case domain.SellerKindPanchayat:
		err = tx.Create(&schema.Panchayat{SellerAccount: account}).Error
	case domain.SellerKindCommunity:
		err = tx.Create(&schema.Community{SellerAccount: account}).Error
	default:
		t.Fatalf("unknown seller kind %q", kind)
	}
	require.NoError(t, err)

	return account.ID
}

// seedBuyer inserts a buyer row
func seedBuyer(t *testing.T, tx *gorm.DB, companyName string, wallet *string, totalCC int64) uuid.UUID {
	buyer := schema.Buyer{
		ID:            uuid.New(),
		CompanyName:   companyName,
		WalletAddress: wallet,
		TotalCC:       totalCC,
	}
	require.NoError(t, tx.Create(&buyer).Error)

	return buyer.ID
}

// seedProject inserts a project row
func seedProject(t *testing.T, tx *gorm.DB, kind domain.SellerKind, sellerID uuid.UUID, treeCount int64, status domain.ProjectStatus) uuid.UUID {
	project := schema.Project{
		ID:             uuid.New(),
		SellerID:       sellerID,
		SellerKind:     kind,
		PlantationArea: "Sundarbans East Block",
		TreeCount:      treeCount,
		EstimatedCC:    treeCount,
		Status:         status,
	}
	if status == domain.ProjectStatusApproved {
		now := time.Now().UTC()
		project.ApprovedAt = &now
		actual := domain.CreditsForTrees(treeCount)
		project.ActualCC = &actual
	}
	require.NoError(t, tx.Create(&project).Error)

	return project.ID
}

// =============================================================================
// ApproveProject
// =============================================================================

func TestApproveProject(t *testing.T) {
	ctx := context.Background()

	t.Run("credits seller and flips status in one transaction", func(t *testing.T) {
		s, tx := initPGTestDB(t)
		sellerID := seedSeller(t, tx, domain.SellerKindNGO, "Mangrove Trust", strPtr("0xabc123"), 100)
		projectID := seedProject(t, tx, domain.SellerKindNGO, sellerID, 500, domain.ProjectStatusPending)

		result, err := s.ApproveProject(ctx, projectID)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, int64(500), result.Amount)
		assert.Equal(t, "0xabc123", result.WalletAddress)
		assert.Equal(t, domain.ProjectStatusApproved, result.Project.Status)
		require.NotNil(t, result.Project.ActualCC)
		assert.Equal(t, int64(500), *result.Project.ActualCC)
		require.NotNil(t, result.Project.ApprovedAt)

		var seller schema.NGO
		require.NoError(t, tx.Where("id = ?", sellerID).First(&seller).Error)
		assert.Equal(t, int64(600), seller.TotalCC)

		var project schema.Project
		require.NoError(t, tx.Where("id = ?", projectID).First(&project).Error)
		assert.Equal(t, domain.ProjectStatusApproved, project.Status)
	})

	t.Run("project not found", func(t *testing.T) {
		s, _ := initPGTestDB(t)

		_, err := s.ApproveProject(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	})

	t.Run("already decided", func(t *testing.T) {
		s, tx := initPGTestDB(t)
		sellerID := seedSeller(t, tx, domain.SellerKindPanchayat, "Kollam Gram Panchayat", strPtr("0xdef456"), 0)
		projectID := seedProject(t, tx, domain.SellerKindPanchayat, sellerID, 300, domain.ProjectStatusPending)

		_, err := s.ApproveProject(ctx, projectID)
		require.NoError(t, err)

		// Second approval must not double-credit
		_, err = s.ApproveProject(ctx, projectID)
		assert.ErrorIs(t, err, domain.ErrProjectAlreadyDecided)

		var seller schema.Panchayat
		require.NoError(t, tx.Where("id = ?", sellerID).First(&seller).Error)
		assert.Equal(t, int64(300), seller.TotalCC)
	})

	t.Run("rejected project cannot be approved", func(t *testing.T) {
		s, tx := initPGTestDB(t)
		sellerID := seedSeller(t, tx, domain.SellerKindNGO, "Delta Greens", strPtr("0xaaa"), 0)
		projectID := seedProject(t, tx, domain.SellerKindNGO, sellerID, 200, domain.ProjectStatusRejected)

		_, err := s.ApproveProject(ctx, projectID)
		assert.ErrorIs(t, err, domain.ErrProjectAlreadyDecided)
	})

	t.Run("seller without wallet address", func(t *testing.T) {
		s, tx := initPGTestDB(t)
		sellerID := seedSeller(t, tx, domain.SellerKindCommunity, "Bhitarkanika Collective", nil, 0)
		projectID := seedProject(t, tx, domain.SellerKindCommunity, sellerID, 150, domain.ProjectStatusPending)

		_, err := s.ApproveProject(ctx, projectID)
		assert.ErrorIs(t, err, domain.ErrNoWalletAddress)

		// Rolled back: project must still be pending
		var project schema.Project
		require.NoError(t, tx.Where("id = ?", projectID).First(&project).Error)
		assert.Equal(t, domain.ProjectStatusPending, project.Status)
	})

	t.Run("non-positive tree count", func(t *testing.T) {
		s, tx := initPGTestDB(t)
		sellerID := seedSeller(t, tx, domain.SellerKindNGO, "Coastal Care", strPtr("0xbbb"), 0)
		projectID := seedProject(t, tx, domain.SellerKindNGO, sellerID, 0, domain.ProjectStatusPending)

		_, err := s.ApproveProject(ctx, projectID)
		assert.ErrorIs(t, err, domain.ErrInvalidTreeCount)
	})

	t.Run("seller row missing", func(t *testing.T) {
		s, tx := initPGTestDB(t)
		projectID := seedProject(t, tx, domain.SellerKindNGO, uuid.New(), 100, domain.ProjectStatusPending)

		_, err := s.ApproveProject(ctx, projectID)
		assert.ErrorIs(t, err, domain.ErrSellerNotFound)
	})
}

// =============================================================================
// RejectProject
// =============================================================================

func TestRejectProject(t *testing.T) {
	ctx := context.Background()

	t.Run("flips status without touching ledger", func(t *testing.T) {
		s, tx := initPGTestDB(t)
		sellerID := seedSeller(t, tx, domain.SellerKindNGO, "Mangrove Trust", strPtr("0xabc"), 250)
		projectID := seedProject(t, tx, domain.SellerKindNGO, sellerID, 500, domain.ProjectStatusPending)

		project, err := s.RejectProject(ctx, projectID)
		require.NoError(t, err)
		assert.Equal(t, domain.ProjectStatusRejected, project.Status)
		assert.Nil(t, project.ActualCC)

		var seller schema.NGO
		require.NoError(t, tx.Where("id = ?", sellerID).First(&seller).Error)
		assert.Equal(t, int64(250), seller.TotalCC)
	})

	t.Run("project not found", func(t *testing.T) {
		s, _ := initPGTestDB(t)

		_, err := s.RejectProject(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	})

	t.Run("already decided", func(t *testing.T) {
		s, tx := initPGTestDB(t)
		sellerID := seedSeller(t, tx, domain.SellerKindNGO, "Mangrove Trust", strPtr("0xabc"), 0)
		projectID := seedProject(t, tx, domain.SellerKindNGO, sellerID, 100, domain.ProjectStatusApproved)

		_, err := s.RejectProject(ctx, projectID)
		assert.ErrorIs(t, err, domain.ErrProjectAlreadyDecided)
	})
}

// =============================================================================
// SettleMint
// =============================================================================

func TestSettleMint(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed outcome records hash and mints", func(t *testing.T) {
		s, tx := initPGTestDB(t)
		sellerID := seedSeller(t, tx, domain.SellerKindNGO, "Mangrove Trust", strPtr("0xabc"), 0)
		projectID := seedProject(t, tx, domain.SellerKindNGO, sellerID, 500, domain.ProjectStatusApproved)

		err := s.SettleMint(ctx, projectID, domain.MintOutcome{
			Status: domain.MintOutcomeConfirmed,
			TxHash: "0xhash1",
		})
		require.NoError(t, err)

		var project schema.Project
		require.NoError(t, tx.Where("id = ?", projectID).First(&project).Error)
		assert.Equal(t, domain.ProjectStatusMinted, project.Status)
		require.NotNil(t, project.MintTxHash)
		assert.Equal(t, "0xhash1", *project.MintTxHash)
	})

	t.Run("failed outcome marks mint_failed and keeps the credit", func(t *testing.T) {
		s, tx := initPGTestDB(t)
		sellerID := seedSeller(t, tx, domain.SellerKindNGO, "Mangrove Trust", strPtr("0xabc"), 500)
		projectID := seedProject(t, tx, domain.SellerKindNGO, sellerID, 500, domain.ProjectStatusApproved)

		err := s.SettleMint(ctx, projectID, domain.MintOutcome{
			Status: domain.MintOutcomeFailed,
			Reason: "execution reverted",
		})
		require.NoError(t, err)

		var project schema.Project
		require.NoError(t, tx.Where("id = ?", projectID).First(&project).Error)
		assert.Equal(t, domain.ProjectStatusMintFailed, project.Status)

		// The ledger credit from approval stays in place
		var seller schema.NGO
		require.NoError(t, tx.Where("id = ?", sellerID).First(&seller).Error)
		assert.Equal(t, int64(500), seller.TotalCC)
	})

	t.Run("re-settling the same outcome is a no-op", func(t *testing.T) {
		s, tx := initPGTestDB(t)
		sellerID := seedSeller(t, tx, domain.SellerKindNGO, "Mangrove Trust", strPtr("0xabc"), 0)
		projectID := seedProject(t, tx, domain.SellerKindNGO, sellerID, 500, domain.ProjectStatusApproved)

		outcome := domain.MintOutcome{Status: domain.MintOutcomeConfirmed, TxHash: "0xhash1"}
		require.NoError(t, s.SettleMint(ctx, projectID, outcome))
		assert.NoError(t, s.SettleMint(ctx, projectID, outcome))
	})

	t.Run("conflicting settlement is rejected", func(t *testing.T) {
		s, tx := initPGTestDB(t)
		sellerID := seedSeller(t, tx, domain.SellerKindNGO, "Mangrove Trust", strPtr("0xabc"), 0)
		projectID := seedProject(t, tx, domain.SellerKindNGO, sellerID, 500, domain.ProjectStatusApproved)

		require.NoError(t, s.SettleMint(ctx, projectID, domain.MintOutcome{
			Status: domain.MintOutcomeConfirmed,
			TxHash: "0xhash1",
		}))

		err := s.SettleMint(ctx, projectID, domain.MintOutcome{
			Status: domain.MintOutcomeFailed,
			Reason: "late failure",
		})
		assert.ErrorIs(t, err, domain.ErrProjectAlreadyDecided)
	})

	t.Run("unknown outcome is not terminal", func(t *testing.T) {
		s, tx := initPGTestDB(t)
		sellerID := seedSeller(t, tx, domain.SellerKindNGO, "Mangrove Trust", strPtr("0xabc"), 0)
		projectID := seedProject(t, tx, domain.SellerKindNGO, sellerID, 500, domain.ProjectStatusApproved)

		err := s.SettleMint(ctx, projectID, domain.MintOutcome{Status: domain.MintOutcomeUnknown})
		assert.ErrorIs(t, err, domain.ErrMintOutcomeUnknown)

		// Project stays approved so the sweeper can pick it up
		var project schema.Project
		require.NoError(t, tx.Where("id = ?", projectID).First(&project).Error)
		assert.Equal(t, domain.ProjectStatusApproved, project.Status)
	})

	t.Run("settling a pending project fails", func(t *testing.T) {
		s, tx := initPGTestDB(t)
		sellerID := seedSeller(t, tx, domain.SellerKindNGO, "Mangrove Trust", strPtr("0xabc"), 0)
		projectID := seedProject(t, tx, domain.SellerKindNGO, sellerID, 500, domain.ProjectStatusPending)

		err := s.SettleMint(ctx, projectID, domain.MintOutcome{
			Status: domain.MintOutcomeConfirmed,
			TxHash: "0xhash1",
		})
		assert.ErrorIs(t, err, domain.ErrProjectAlreadyDecided)
	})
}

// =============================================================================
// TransferCredits
// =============================================================================

func TestTransferCredits(t *testing.T) {
	ctx := context.Background()

	t.Run("moves balances and writes the audit row", func(t *testing.T) {
		s, tx := initPGTestDB(t)
		sellerID := seedSeller(t, tx, domain.SellerKindNGO, "Mangrove Trust", strPtr("0xseller"), 500)
		buyerID := seedBuyer(t, tx, "Acme Carbon Ltd", strPtr("0xbuyer"), 100)

		result, err := s.TransferCredits(ctx, TransferInput{
			SellerKind:         domain.SellerKindNGO,
			SellerID:           sellerID,
			BuyerWalletAddress: "0xbuyer",
			Amount:             200,
		})
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, int64(500), result.SellerBalanceBefore)
		assert.Equal(t, int64(300), result.SellerBalanceAfter)
		assert.Equal(t, int64(100), result.BuyerBalanceBefore)
		assert.Equal(t, int64(300), result.BuyerBalanceAfter)
		assert.Equal(t, "Acme Carbon Ltd", result.BuyerCompanyName)
		assert.NotEmpty(t, result.TransferID)

		var seller schema.NGO
		require.NoError(t, tx.Where("id = ?", sellerID).First(&seller).Error)
		assert.Equal(t, int64(300), seller.TotalCC)

		var buyer schema.Buyer
		require.NoError(t, tx.Where("id = ?", buyerID).First(&buyer).Error)
		assert.Equal(t, int64(300), buyer.TotalCC)

		var transfer schema.CreditTransfer
		require.NoError(t, tx.Where("id = ?", result.TransferID).First(&transfer).Error)
		assert.Equal(t, int64(200), transfer.Amount)
		assert.Equal(t, sellerID, transfer.SellerID)
		assert.Equal(t, buyerID, transfer.BuyerID)
		assert.Equal(t, int64(500), transfer.SellerBalanceBefore)
		assert.Equal(t, int64(300), transfer.SellerBalanceAfter)
	})

	t.Run("resolves buyer by company name", func(t *testing.T) {
		s, tx := initPGTestDB(t)
		sellerID := seedSeller(t, tx, domain.SellerKindCommunity, "Bhitarkanika Collective", strPtr("0xseller"), 50)
		seedBuyer(t, tx, "Verde Offsets", nil, 0)

		result, err := s.TransferCredits(ctx, TransferInput{
			SellerKind:       domain.SellerKindCommunity,
			SellerID:         sellerID,
			BuyerCompanyName: "Verde Offsets",
			Amount:           50,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(0), result.SellerBalanceAfter)
		assert.Equal(t, int64(50), result.BuyerBalanceAfter)
	})

	t.Run("insufficient balance rolls everything back", func(t *testing.T) {
		s, tx := initPGTestDB(t)
		sellerID := seedSeller(t, tx, domain.SellerKindNGO, "Mangrove Trust", strPtr("0xseller"), 100)
		buyerID := seedBuyer(t, tx, "Acme Carbon Ltd", strPtr("0xbuyer"), 0)

		_, err := s.TransferCredits(ctx, TransferInput{
			SellerKind:         domain.SellerKindNGO,
			SellerID:           sellerID,
			BuyerWalletAddress: "0xbuyer",
			Amount:             200,
		})

		var insufficientErr *domain.InsufficientBalanceError
		require.ErrorAs(t, err, &insufficientErr)
		assert.Equal(t, int64(200), insufficientErr.Requested)
		assert.Equal(t, int64(100), insufficientErr.Available)

		var buyer schema.Buyer
		require.NoError(t, tx.Where("id = ?", buyerID).First(&buyer).Error)
		assert.Equal(t, int64(0), buyer.TotalCC)

		var count int64
		require.NoError(t, tx.Model(&schema.CreditTransfer{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		s, _ := initPGTestDB(t)

		_, err := s.TransferCredits(ctx, TransferInput{
			SellerKind:         domain.SellerKindNGO,
			SellerID:           uuid.New(),
			BuyerWalletAddress: "0xbuyer",
			Amount:             0,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("invalid seller kind", func(t *testing.T) {
		s, _ := initPGTestDB(t)

		_, err := s.TransferCredits(ctx, TransferInput{
			SellerKind:         domain.SellerKind("cooperative"),
			SellerID:           uuid.New(),
			BuyerWalletAddress: "0xbuyer",
			Amount:             10,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidSellerKind)
	})

	t.Run("buyer not found", func(t *testing.T) {
		s, tx := initPGTestDB(t)
		sellerID := seedSeller(t, tx, domain.SellerKindNGO, "Mangrove Trust", strPtr("0xseller"), 100)

		_, err := s.TransferCredits(ctx, TransferInput{
			SellerKind:         domain.SellerKindNGO,
			SellerID:           sellerID,
			BuyerWalletAddress: "0xnobody",
			Amount:             10,
		})
		assert.ErrorIs(t, err, domain.ErrBuyerNotFound)
	})

	t.Run("no buyer identifier given", func(t *testing.T) {
		s, tx := initPGTestDB(t)
		sellerID := seedSeller(t, tx, domain.SellerKindNGO, "Mangrove Trust", strPtr("0xseller"), 100)

		_, err := s.TransferCredits(ctx, TransferInput{
			SellerKind: domain.SellerKindNGO,
			SellerID:   sellerID,
			Amount:     10,
		})
		assert.ErrorIs(t, err, domain.ErrBuyerNotFound)
	})

	t.Run("seller not found", func(t *testing.T) {
		s, _ := initPGTestDB(t)

		_, err := s.TransferCredits(ctx, TransferInput{
			SellerKind:         domain.SellerKindNGO,
			SellerID:           uuid.New(),
			BuyerWalletAddress: "0xbuyer",
			Amount:             10,
		})
		assert.ErrorIs(t, err, domain.ErrSellerNotFound)
	})
}

// =============================================================================
// Reads
// =============================================================================

func TestGetProject(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		s, tx := initPGTestDB(t)
		sellerID := seedSeller(t, tx, domain.SellerKindNGO, "Mangrove Trust", strPtr("0xabc"), 0)
		projectID := seedProject(t, tx, domain.SellerKindNGO, sellerID, 500, domain.ProjectStatusPending)

		project, err := s.GetProject(ctx, projectID)
		require.NoError(t, err)
		require.NotNil(t, project)
		assert.Equal(t, projectID, project.ID)
		assert.Equal(t, "Sundarbans East Block", project.PlantationArea)
	})

	t.Run("absent returns nil", func(t *testing.T) {
		s, _ := initPGTestDB(t)

		project, err := s.GetProject(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, project)
	})
}

func TestGetSellerBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		s, tx := initPGTestDB(t)
		sellerID := seedSeller(t, tx, domain.SellerKindPanchayat, "Kollam Gram Panchayat", strPtr("0xdef"), 750)

		balance, err := s.GetSellerBalance(ctx, domain.SellerKindPanchayat, sellerID)
		require.NoError(t, err)
		require.NotNil(t, balance)
		assert.Equal(t, int64(750), balance.TotalCC)
		assert.Equal(t, "Kollam Gram Panchayat", balance.Name)
		require.NotNil(t, balance.WalletAddress)
		assert.Equal(t, "0xdef", *balance.WalletAddress)
	})

	t.Run("absent returns nil", func(t *testing.T) {
		s, _ := initPGTestDB(t)

		balance, err := s.GetSellerBalance(ctx, domain.SellerKindNGO, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, balance)
	})

	t.Run("invalid kind", func(t *testing.T) {
		s, _ := initPGTestDB(t)

		_, err := s.GetSellerBalance(ctx, domain.SellerKind("dao"), uuid.New())
		assert.ErrorIs(t, err, domain.ErrInvalidSellerKind)
	})
}

func TestGetBuyerByWallet(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		s, tx := initPGTestDB(t)
		buyerID := seedBuyer(t, tx, "Acme Carbon Ltd", strPtr("0xbuyer"), 42)

		buyer, err := s.GetBuyerByWallet(ctx, "0xbuyer")
		require.NoError(t, err)
		require.NotNil(t, buyer)
		assert.Equal(t, buyerID, buyer.ID)
	})

	t.Run("absent returns nil", func(t *testing.T) {
		s, _ := initPGTestDB(t)

		buyer, err := s.GetBuyerByWallet(ctx, "0xnobody")
		require.NoError(t, err)
		assert.Nil(t, buyer)
	})
}

// =============================================================================
// Concurrency
// =============================================================================

// The concurrency tests commit against the shared test database instead
// of a transaction-scoped store, so the row locks actually contend.
// Seeded rows are removed in t.Cleanup to keep later tests isolated.

func TestTransferCredits_ConcurrentTransfersNeverOverdraw(t *testing.T) {
	ctx := context.Background()
	s := NewPGStore(testDB)

	sellerID := seedSeller(t, testDB, domain.SellerKindNGO, "Concurrent Mangrove Trust", strPtr("0xconc-seller"), 500)
	buyerID := seedBuyer(t, testDB, "Concurrent Offsets Ltd", strPtr("0xconc-buyer"), 0)
	t.Cleanup(func() {
		testDB.Where("seller_id = ?", sellerID).Delete(&schema.CreditTransfer{})
		testDB.Where("id = ?", buyerID).Delete(&schema.Buyer{})
		testDB.Where("id = ?", sellerID).Delete(&schema.NGO{})
	})

	// Ten transfers of 100 against a balance of 500: exactly five can
	// commit, the rest must fail the balance check under the row lock.
	const workers = 10
	const amount = int64(100)

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.TransferCredits(ctx, TransferInput{
				SellerKind:         domain.SellerKindNGO,
				SellerID:           sellerID,
				BuyerWalletAddress: "0xconc-buyer",
				Amount:             amount,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded int64
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		var insufficientErr *domain.InsufficientBalanceError
		require.ErrorAs(t, err, &insufficientErr)
	}
	assert.Equal(t, int64(5), succeeded)

	var seller schema.NGO
	require.NoError(t, testDB.Where("id = ?", sellerID).First(&seller).Error)
	assert.GreaterOrEqual(t, seller.TotalCC, int64(0))
	assert.Equal(t, 500-succeeded*amount, seller.TotalCC)

	var buyer schema.Buyer
	require.NoError(t, testDB.Where("id = ?", buyerID).First(&buyer).Error)
	assert.Equal(t, succeeded*amount, buyer.TotalCC)

	// One audit row per committed transfer, none for the rejected ones
	var audits int64
	require.NoError(t, testDB.Model(&schema.CreditTransfer{}).Where("seller_id = ?", sellerID).Count(&audits).Error)
	assert.Equal(t, succeeded, audits)
}

func TestApproveProject_ConcurrentDecisionsCreditOnce(t *testing.T) {
	ctx := context.Background()
	s := NewPGStore(testDB)

	sellerID := seedSeller(t, testDB, domain.SellerKindNGO, "Concurrent Delta Greens", strPtr("0xconc-approve"), 0)
	projectID := seedProject(t, testDB, domain.SellerKindNGO, sellerID, 300, domain.ProjectStatusPending)
	t.Cleanup(func() {
		testDB.Where("id = ?", projectID).Delete(&schema.Project{})
		testDB.Where("id = ?", sellerID).Delete(&schema.NGO{})
	})

	const attempts = 4

	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.ApproveProject(ctx, projectID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var approved, alreadyDecided int
	for err := range errs {
		switch {
		case err == nil:
			approved++
		case errors.Is(err, domain.ErrProjectAlreadyDecided):
			alreadyDecided++
		default:
			t.Fatalf("unexpected approval error: %v", err)
		}
	}
	assert.Equal(t, 1, approved)
	assert.Equal(t, attempts-1, alreadyDecided)

	// Exactly one approval credited the ledger
	var seller schema.NGO
	require.NoError(t, testDB.Where("id = ?", sellerID).First(&seller).Error)
	assert.Equal(t, int64(300), seller.TotalCC)

	var project schema.Project
	require.NoError(t, testDB.Where("id = ?", projectID).First(&project).Error)
	assert.Equal(t, domain.ProjectStatusApproved, project.Status)
	require.NotNil(t, project.ActualCC)
	assert.Equal(t, int64(300), *project.ActualCC)
}

func TestListStuckApprovals(t *testing.T) {
	ctx := context.Background()

	s, tx := initPGTestDB(t)
	sellerID := seedSeller(t, tx, domain.SellerKindNGO, "Mangrove Trust", strPtr("0xabc"), 0)

	old := time.Now().UTC().Add(-2 * time.Hour)
	stuckID := seedProject(t, tx, domain.SellerKindNGO, sellerID, 500, domain.ProjectStatusApproved)
	require.NoError(t, tx.Model(&schema.Project{}).
		Where("id = ?", stuckID).
		Update("approved_at", old).Error)

	// Fresh approval and other statuses must not show up
	seedProject(t, tx, domain.SellerKindNGO, sellerID, 100, domain.ProjectStatusApproved)
	seedProject(t, tx, domain.SellerKindNGO, sellerID, 100, domain.ProjectStatusPending)
	seedProject(t, tx, domain.SellerKindNGO, sellerID, 100, domain.ProjectStatusMinted)

	projects, err := s.ListStuckApprovals(ctx, time.Now().UTC().Add(-time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, stuckID, projects[0].ID)
}
