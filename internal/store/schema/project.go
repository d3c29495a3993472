package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/coastalcarbon/cc-registry/internal/domain"
)

// Project represents the projects table - one coastal-restoration project
// submitted by a seller and decided by an admin
type Project struct {
	// ID is the project identifier
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	// SellerID references the owning seller row in the table selected by SellerKind
	SellerID uuid.UUID `gorm:"column:seller_id;type:uuid;not null;index:idx_projects_seller,priority:2"`
	// SellerKind selects the seller table (ngo, panchayat, community)
	SellerKind domain.SellerKind `gorm:"column:seller_kind;type:text;not null;index:idx_projects_seller,priority:1"`
	// PlantationArea is the human-readable site name
	PlantationArea string `gorm:"column:plantation_area;type:text;not null"`
	// Location holds structured site coordinates and metadata
	Location datatypes.JSON `gorm:"column:location;type:jsonb"`
	// TreeCount is the number of trees planted, the basis for credit derivation
	TreeCount int64 `gorm:"column:tree_count;not null;default:0"`
	// EstimatedCC is the credit amount estimated at submission time
	EstimatedCC int64 `gorm:"column:estimated_cc;not null;default:0"`
	// ActualCC is the credited amount; set only once the project is approved
	ActualCC *int64 `gorm:"column:actual_cc"`
	// Status is the lifecycle state (pending, approved, rejected, minted, mint_failed)
	Status domain.ProjectStatus `gorm:"column:status;type:text;not null;default:'pending';index"`
	// MintTxHash is the chain transaction hash recorded on settlement
	MintTxHash *string `gorm:"column:mint_tx_hash;type:text"`
	// ApprovedAt records when the approval transaction committed
	ApprovedAt *time.Time `gorm:"column:approved_at;type:timestamptz"`
	// CreatedAt is the submission timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the last mutation timestamp
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Project model
func (Project) TableName() string {
	return "projects"
}
