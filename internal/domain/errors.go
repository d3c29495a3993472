package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrProjectNotFound is returned when a project does not exist
	ErrProjectNotFound = errors.New("project not found")

	// ErrProjectAlreadyDecided is returned when deciding a project that is
	// no longer pending
	ErrProjectAlreadyDecided = errors.New("project already decided")

	// ErrSellerNotFound is returned when a seller row does not exist
	ErrSellerNotFound = errors.New("seller not found")

	// ErrBuyerNotFound is returned when a buyer cannot be resolved by
	// wallet address or company name
	ErrBuyerNotFound = errors.New("buyer not found")

	// ErrInvalidSellerKind is returned when the seller kind is not one of
	// ngo, panchayat, community
	ErrInvalidSellerKind = errors.New("invalid seller kind")

	// ErrNoWalletAddress is returned when approving a project whose seller
	// has no wallet address registered
	ErrNoWalletAddress = errors.New("no wallet address registered")

	// ErrInvalidTreeCount is returned when approving a project with an
	// absent or non-positive tree count
	ErrInvalidTreeCount = errors.New("invalid tree count")

	// ErrInvalidAmount is returned when a transfer amount is not positive
	ErrInvalidAmount = errors.New("transfer amount must be positive")

	// ErrMintOutcomeUnknown is returned when a mint call timed out before
	// an answer arrived; the transaction may still land, so callers must
	// not treat this as a failure
	ErrMintOutcomeUnknown = errors.New("mint outcome unknown")

	// ErrGatewayUnavailable is returned when the chain gateway is
	// unreachable or answered with a transport-level error
	ErrGatewayUnavailable = errors.New("chain gateway unavailable")
)

// InsufficientBalanceError is returned when a transfer would drive the
// seller's balance negative.
type InsufficientBalanceError struct {
	Requested int64
	Available int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: requested %d, available %d", e.Requested, e.Available)
}

// MintFailedError is returned when the chain gateway explicitly reported
// a mint failure (as opposed to a timeout).
type MintFailedError struct {
	Reason string
}

func (e *MintFailedError) Error() string {
	return fmt.Sprintf("mint failed: %s", e.Reason)
}
