package workflows

import (
	"context"

	"github.com/google/uuid"

	"github.com/coastalcarbon/cc-registry/internal/chain"
	"github.com/coastalcarbon/cc-registry/internal/domain"
	"github.com/coastalcarbon/cc-registry/internal/messaging"
	"github.com/coastalcarbon/cc-registry/internal/store"
)

// Executor defines the interface for executing settlement activities
//
//go:generate mockgen -source=activities.go -destination=../mocks/activities.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// ExecuteMint submits one mint attempt to the chain gateway. Never
	// retried; an ambiguous answer comes back as an unknown outcome.
	ExecuteMint(ctx context.Context, input SettleMintInput) (*domain.MintOutcome, error)

	// CheckMintStatus asks the gateway for the outcome of a previously
	// submitted mint, by project reference
	CheckMintStatus(ctx context.Context, projectID uuid.UUID) (*domain.MintOutcome, error)

	// ReconcileMint records a terminal mint outcome on the project
	ReconcileMint(ctx context.Context, projectID uuid.UUID, outcome *domain.MintOutcome) error

	// PublishSettlement emits the settlement event to the message broker
	PublishSettlement(ctx context.Context, event *domain.SettlementEvent) error
}

// executor is the concrete implementation of Executor
type executor struct {
	store     store.Store
	gateway   chain.Gateway
	publisher messaging.Publisher
}

// NewExecutor creates a new executor instance
func NewExecutor(store store.Store, gateway chain.Gateway, publisher messaging.Publisher) Executor {
	return &executor{
		store:     store,
		gateway:   gateway,
		publisher: publisher,
	}
}
