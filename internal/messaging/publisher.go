package messaging

import (
	"context"

	"github.com/coastalcarbon/cc-registry/internal/domain"
)

// Publisher defines the interface for publishing settlement events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishSettlement publishes a settlement event
	PublishSettlement(ctx context.Context, event *domain.SettlementEvent) error
	// Close closes the connection
	Close()
}
