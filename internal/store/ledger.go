package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/coastalcarbon/cc-registry/internal/domain"
	"github.com/coastalcarbon/cc-registry/internal/store/schema"
)

// sellerLedger gives each seller kind its own table access path so no
// query is ever assembled from a kind string.
type sellerLedger interface {
	// lock loads the seller row under SELECT ... FOR UPDATE
	lock(tx *gorm.DB, id uuid.UUID) (*schema.SellerAccount, error)
	// get loads the seller row without locking, nil when absent
	get(tx *gorm.DB, id uuid.UUID) (*schema.SellerAccount, error)
	// credit increases the seller's balance
	credit(tx *gorm.DB, id uuid.UUID, delta int64) error
	// debit decreases the seller's balance
	debit(tx *gorm.DB, id uuid.UUID, delta int64) error
}

// ledgerFor resolves the ledger for a seller kind
func ledgerFor(kind domain.SellerKind) (sellerLedger, error) {
	switch kind {
	case domain.SellerKindNGO:
		return ngoLedger{}, nil
	case domain.SellerKindPanchayat:
		return panchayatLedger{}, nil
	case domain.SellerKindCommunity:
		return communityLedger{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSellerKind, string(kind))
	}
}

type ngoLedger struct{}

func (ngoLedger) lock(tx *gorm.DB, id uuid.UUID) (*schema.SellerAccount, error) {
	var row schema.NGO
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSellerNotFound
		}
		return nil, fmt.Errorf("failed to lock ngo: %w", err)
	}
	return &row.SellerAccount, nil
}

func (ngoLedger) get(tx *gorm.DB, id uuid.UUID) (*schema.SellerAccount, error) {
	var row schema.NGO
	err := tx.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ngo: %w", err)
	}
	return &row.SellerAccount, nil
}

func (ngoLedger) credit(tx *gorm.DB, id uuid.UUID, delta int64) error {
	err := tx.Model(&schema.NGO{}).
		Where("id = ?", id).
		Update("total_cc", gorm.Expr("total_cc + ?", delta)).Error
	if err != nil {
		return fmt.Errorf("failed to credit ngo: %w", err)
	}
	return nil
}

func (ngoLedger) debit(tx *gorm.DB, id uuid.UUID, delta int64) error {
	err := tx.Model(&schema.NGO{}).
		Where("id = ?", id).
		Update("total_cc", gorm.Expr("total_cc - ?", delta)).Error
	if err != nil {
		return fmt.Errorf("failed to debit ngo: %w", err)
	}
	return nil
}

type panchayatLedger struct{}

func (panchayatLedger) lock(tx *gorm.DB, id uuid.UUID) (*schema.SellerAccount, error) {
	var row schema.Panchayat
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSellerNotFound
		}
		return nil, fmt.Errorf("failed to lock panchayat: %w", err)
	}
	return &row.SellerAccount, nil
}

func (panchayatLedger) get(tx *gorm.DB, id uuid.UUID) (*schema.SellerAccount, error) {
	var row schema.Panchayat
	err := tx.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get panchayat: %w", err)
	}
	return &row.SellerAccount, nil
}

func (panchayatLedger) credit(tx *gorm.DB, id uuid.UUID, delta int64) error {
	err := tx.Model(&schema.Panchayat{}).
		Where("id = ?", id).
		Update("total_cc", gorm.Expr("total_cc + ?", delta)).Error
	if err != nil {
		return fmt.Errorf("failed to credit panchayat: %w", err)
	}
	return nil
}

func (panchayatLedger) debit(tx *gorm.DB, id uuid.UUID, delta int64) error {
	err := tx.Model(&schema.Panchayat{}).
		Where("id = ?", id).
		Update("total_cc", gorm.Expr("total_cc - ?", delta)).Error
	if err != nil {
		return fmt.Errorf("failed to debit panchayat: %w", err)
	}
	return nil
}

type communityLedger struct{}

func (communityLedger) lock(tx *gorm.DB, id uuid.UUID) (*schema.SellerAccount, error) {
	var row schema.Community
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSellerNotFound
		}
		return nil, fmt.Errorf("failed to lock community: %w", err)
	}
	return &row.SellerAccount, nil
}

func (communityLedger) get(tx *gorm.DB, id uuid.UUID) (*schema.SellerAccount, error) {
	var row schema.Community
	err := tx.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get community: %w", err)
	}
	return &row.SellerAccount, nil
}

func (communityLedger) credit(tx *gorm.DB, id uuid.UUID, delta int64) error {
	err := tx.Model(&schema.Community{}).
		Where("id = ?", id).
		Update("total_cc", gorm.Expr("total_cc + ?", delta)).Error
	if err != nil {
		return fmt.Errorf("failed to credit community: %w", err)
	}
	return nil
}

func (communityLedger) debit(tx *gorm.DB, id uuid.UUID, delta int64) error {
	err := tx.Model(&schema.Community{}).
		Where("id = ?", id).
		Update("total_cc", gorm.Expr("total_cc - ?", delta)).Error
	if err != nil {
		return fmt.Errorf("failed to debit community: %w", err)
	}
	return nil
}
