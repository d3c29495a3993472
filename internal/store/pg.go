package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/coastalcarbon/cc-registry/internal/domain"
	"github.com/coastalcarbon/cc-registry/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	// Set defaults if not provided
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// ApproveProject moves a pending project to approved, derives the credit
// amount from its tree count and credits the seller's ledger in one
// transaction. The caller starts the mint only after this commit, so the
// local ledger is never behind a chain write.
func (s *pgStore) ApproveProject(ctx context.Context, projectID uuid.UUID) (*ApprovalResult, error) {
	var result *ApprovalResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the project row so concurrent decisions serialize here
		var project schema.Project
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", projectID).
			First(&project).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrProjectNotFound
			}
			return fmt.Errorf("failed to lock project: %w", err)
		}

		if project.Status.Decided() {
			return domain.ErrProjectAlreadyDecided
		}
		if project.TreeCount <= 0 {
			return domain.ErrInvalidTreeCount
		}

		ledger, err := ledgerFor(project.SellerKind)
		if err != nil {
			return err
		}

		// 2. Lock the seller row; always seller before buyer tables so
		// transfer transactions take locks in the same order
		seller, err := ledger.lock(tx, project.SellerID)
		if err != nil {
			return err
		}
		if seller.WalletAddress == nil || *seller.WalletAddress == "" {
			return domain.ErrNoWalletAddress
		}

		amount := domain.CreditsForTrees(project.TreeCount)
		now := time.Now().UTC()

		// 3. Flip the status with a pending guard. The lock above should
		// make this a formality; zero rows means another decision won.
		res := tx.Model(&schema.Project{}).
			Where("id = ? AND status = ?", projectID, domain.ProjectStatusPending).
			Updates(map[string]interface{}{
				"status":      domain.ProjectStatusApproved,
				"actual_cc":   amount,
				"approved_at": now,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to approve project: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrProjectAlreadyDecided
		}

		// 4. Credit the seller's ledger
		if err := ledger.credit(tx, project.SellerID, amount); err != nil {
			return err
		}

		project.Status = domain.ProjectStatusApproved
		project.ActualCC = &amount
		project.ApprovedAt = &now

		result = &ApprovalResult{
			Project:       &project,
			WalletAddress: *seller.WalletAddress,
			Amount:        amount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// RejectProject moves a pending project to rejected. No ledger rows are
// touched.
func (s *pgStore) RejectProject(ctx context.Context, projectID uuid.UUID) (*schema.Project, error) {
	var project schema.Project
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", projectID).
			First(&project).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrProjectNotFound
			}
			return fmt.Errorf("failed to lock project: %w", err)
		}

		if project.Status.Decided() {
			return domain.ErrProjectAlreadyDecided
		}

		res := tx.Model(&schema.Project{}).
			Where("id = ? AND status = ?", projectID, domain.ProjectStatusPending).
			Update("status", domain.ProjectStatusRejected)
		if res.Error != nil {
			return fmt.Errorf("failed to reject project: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrProjectAlreadyDecided
		}

		project.Status = domain.ProjectStatusRejected
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &project, nil
}

// SettleMint records the terminal outcome of a mint attempt. A confirmed
// outcome moves the project to minted with its transaction hash, an
// explicit failure moves it to mint_failed. An unknown outcome is not
// terminal and is rejected; the project stays approved for the sweeper.
// Re-settling with the outcome already recorded is a no-op so activity
// retries stay safe.
func (s *pgStore) SettleMint(ctx context.Context, projectID uuid.UUID, outcome domain.MintOutcome) error {
	var target domain.ProjectStatus
	updates := map[string]interface{}{}

	switch outcome.Status {
	case domain.MintOutcomeConfirmed:
		target = domain.ProjectStatusMinted
		updates["status"] = target
		updates["mint_tx_hash"] = outcome.TxHash
	case domain.MintOutcomeFailed:
		target = domain.ProjectStatusMintFailed
		updates["status"] = target
	default:
		return fmt.Errorf("%w: outcome %q is not terminal", domain.ErrMintOutcomeUnknown, string(outcome.Status))
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&schema.Project{}).
			Where("id = ? AND status = ?", projectID, domain.ProjectStatusApproved).
			Updates(updates)
		if res.Error != nil {
			return fmt.Errorf("failed to settle mint: %w", res.Error)
		}
		if res.RowsAffected > 0 {
			return nil
		}

		var project schema.Project
		err := tx.Where("id = ?", projectID).First(&project).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrProjectNotFound
			}
			return fmt.Errorf("failed to get project: %w", err)
		}
		if project.Status == target {
			return nil
		}

		return domain.ErrProjectAlreadyDecided
	})
}

// TransferCredits atomically moves credits from a seller to a buyer. The
// seller row is locked first, the balance check happens under that lock,
// and the audit record is written in the same transaction, so a failure
// at any step rolls everything back.
func (s *pgStore) TransferCredits(ctx context.Context, input TransferInput) (*TransferResult, error) {
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	ledger, err := ledgerFor(input.SellerKind)
	if err != nil {
		return nil, err
	}

	var result *TransferResult
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the seller and check the balance under the lock
		seller, err := ledger.lock(tx, input.SellerID)
		if err != nil {
			return err
		}
		if seller.TotalCC < input.Amount {
			return &domain.InsufficientBalanceError{
				Requested: input.Amount,
				Available: seller.TotalCC,
			}
		}

		// 2. Resolve and lock the buyer, by wallet address when given,
		// otherwise by company name
		buyerQuery := tx.Clauses(clause.Locking{Strength: "UPDATE"})
		switch {
		case input.BuyerWalletAddress != "":
			buyerQuery = buyerQuery.Where("wallet_address = ?", input.BuyerWalletAddress)
		case input.BuyerCompanyName != "":
			buyerQuery = buyerQuery.Where("company_name = ?", input.BuyerCompanyName)
		default:
			return domain.ErrBuyerNotFound
		}

		var buyer schema.Buyer
		if err := buyerQuery.First(&buyer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrBuyerNotFound
			}
			return fmt.Errorf("failed to lock buyer: %w", err)
		}

		// 3. Move the balances
		if err := ledger.debit(tx, input.SellerID, input.Amount); err != nil {
			return err
		}

		if err := tx.Model(&schema.Buyer{}).
			Where("id = ?", buyer.ID).
			Update("total_cc", gorm.Expr("total_cc + ?", input.Amount)).Error; err != nil {
			return fmt.Errorf("failed to credit buyer: %w", err)
		}

		// 4. Write the audit record
		now := time.Now().UTC()
		transfer := schema.CreditTransfer{
			ID:                  ulid.Make().String(),
			SellerKind:          input.SellerKind,
			SellerID:            input.SellerID,
			BuyerID:             buyer.ID,
			Amount:              input.Amount,
			SellerBalanceBefore: seller.TotalCC,
			SellerBalanceAfter:  seller.TotalCC - input.Amount,
			BuyerBalanceBefore:  buyer.TotalCC,
			BuyerBalanceAfter:   buyer.TotalCC + input.Amount,
			TxHash:              input.TxHash,
			CreatedAt:           now,
		}
		if err := tx.Create(&transfer).Error; err != nil {
			return fmt.Errorf("failed to create credit transfer: %w", err)
		}

		result = &TransferResult{
			TransferID:          transfer.ID,
			SellerID:            seller.ID,
			SellerName:          seller.Name,
			SellerBalanceBefore: transfer.SellerBalanceBefore,
			SellerBalanceAfter:  transfer.SellerBalanceAfter,
			BuyerID:             buyer.ID,
			BuyerCompanyName:    buyer.CompanyName,
			BuyerBalanceBefore:  transfer.BuyerBalanceBefore,
			BuyerBalanceAfter:   transfer.BuyerBalanceAfter,
			Amount:              input.Amount,
			CreatedAt:           now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetProject retrieves a project by ID
func (s *pgStore) GetProject(ctx context.Context, projectID uuid.UUID) (*schema.Project, error) {
	var project schema.Project
	err := s.db.WithContext(ctx).Where("id = ?", projectID).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &project, nil
}

// GetSellerBalance retrieves the ledger balance for a seller
func (s *pgStore) GetSellerBalance(ctx context.Context, kind domain.SellerKind, sellerID uuid.UUID) (*SellerBalance, error) {
	ledger, err := ledgerFor(kind)
	if err != nil {
		return nil, err
	}

	account, err := ledger.get(s.db.WithContext(ctx), sellerID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}

	return &SellerBalance{
		SellerKind:    kind,
		SellerID:      account.ID,
		Name:          account.Name,
		WalletAddress: account.WalletAddress,
		TotalCC:       account.TotalCC,
	}, nil
}

// GetBuyerByWallet retrieves a buyer by wallet address
func (s *pgStore) GetBuyerByWallet(ctx context.Context, walletAddress string) (*schema.Buyer, error) {
	var buyer schema.Buyer
	err := s.db.WithContext(ctx).Where("wallet_address = ?", walletAddress).First(&buyer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get buyer: %w", err)
	}

	return &buyer, nil
}

// ListStuckApprovals returns approved projects whose approval committed
// before the cutoff, oldest first. These are mints that never reached a
// terminal state.
func (s *pgStore) ListStuckApprovals(ctx context.Context, approvedBefore time.Time, limit int) ([]*schema.Project, error) {
	var projects []*schema.Project
	err := s.db.WithContext(ctx).
		Where("status = ? AND approved_at < ?", domain.ProjectStatusApproved, approvedBefore).
		Order("approved_at ASC").
		Limit(limit).
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list stuck approvals: %w", err)
	}

	return projects, nil
}
