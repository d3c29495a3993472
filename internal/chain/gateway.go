package chain

import (
	"bytes"
	"context"
	"fmt"

	"github.com/coastalcarbon/cc-registry/internal/adapter"
	"github.com/coastalcarbon/cc-registry/internal/domain"
)

// MintRequest is the payload sent to the chain gateway. Reference is the
// project ID and doubles as the gateway-side idempotency key, so a
// re-submitted mint for the same project cannot mint twice.
type MintRequest struct {
	Address   string `json:"address"`
	Amount    int64  `json:"amount"`
	Reference string `json:"reference"`
}

// MintResponse is the gateway's answer to a mint request
type MintResponse struct {
	Success bool   `json:"success"`
	TxHash  string `json:"txHash,omitempty"`
	Error   string `json:"error,omitempty"`
}

// MintStatusResponse is the gateway's answer to a status lookup
type MintStatusResponse struct {
	Status string `json:"status"`
	TxHash string `json:"txHash,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Gateway defines the interface for chain gateway operations to enable mocking
//
//go:generate mockgen -source=gateway.go -destination=../mocks/chain_gateway.go -package=mocks -mock_names=Gateway=MockGateway
type Gateway interface {
	// Mint submits one mint attempt for the given wallet and amount. The
	// request is sent at most once; a timeout or ambiguous answer yields
	// an unknown outcome, never a retry.
	Mint(ctx context.Context, req MintRequest) (*domain.MintOutcome, error)

	// MintStatus looks up the outcome of a previously submitted mint by
	// its reference. Safe to call repeatedly.
	MintStatus(ctx context.Context, reference string) (*domain.MintOutcome, error)
}

// HTTPGateway implements Gateway against the HTTP chain gateway service
type HTTPGateway struct {
	httpClient adapter.HTTPClient
	baseURL    string
	json       adapter.JSON
}

// NewHTTPGateway creates a new chain gateway client
func NewHTTPGateway(httpClient adapter.HTTPClient, baseURL string, json adapter.JSON) Gateway {
	return &HTTPGateway{
		httpClient: httpClient,
		baseURL:    baseURL,
		json:       json,
	}
}

// Mint submits one mint attempt to the gateway.
//
// Outcome mapping:
//   - 2xx with success=true: confirmed, with the transaction hash
//   - 2xx with success=false, or any 4xx: failed, with the gateway's reason
//   - transport error, timeout, or 5xx: unknown. The transaction may
//     still land on chain, so the caller must not treat this as failed.
func (g *HTTPGateway) Mint(ctx context.Context, req MintRequest) (*domain.MintOutcome, error) {
	body, err := g.json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal mint request: %w", err)
	}

	respBody, statusCode, err := g.httpClient.PostOnce(ctx, g.baseURL+"/mint", "application/json", bytes.NewReader(body))
	if err != nil {
		return &domain.MintOutcome{
			Status: domain.MintOutcomeUnknown,
			Reason: err.Error(),
		}, nil
	}

	switch {
	case statusCode >= 200 && statusCode < 300:
		var resp MintResponse
		if err := g.json.Unmarshal(respBody, &resp); err != nil {
			return &domain.MintOutcome{
				Status: domain.MintOutcomeUnknown,
				Reason: fmt.Sprintf("unparseable gateway response: %v", err),
			}, nil
		}
		if resp.Success {
			return &domain.MintOutcome{
				Status: domain.MintOutcomeConfirmed,
				TxHash: resp.TxHash,
			}, nil
		}
		return &domain.MintOutcome{
			Status: domain.MintOutcomeFailed,
			Reason: resp.Error,
		}, nil

	case statusCode >= 400 && statusCode < 500:
		reason := gatewayErrorReason(g.json, respBody, statusCode)
		return &domain.MintOutcome{
			Status: domain.MintOutcomeFailed,
			Reason: reason,
		}, nil

	default:
		return &domain.MintOutcome{
			Status: domain.MintOutcomeUnknown,
			Reason: fmt.Sprintf("gateway returned status %d", statusCode),
		}, nil
	}
}

// MintStatus looks up a mint by reference
func (g *HTTPGateway) MintStatus(ctx context.Context, reference string) (*domain.MintOutcome, error) {
	url := fmt.Sprintf("%s/mint/%s", g.baseURL, reference)

	var resp MintStatusResponse
	if err := g.httpClient.Get(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}

	switch resp.Status {
	case "confirmed":
		return &domain.MintOutcome{Status: domain.MintOutcomeConfirmed, TxHash: resp.TxHash}, nil
	case "failed":
		return &domain.MintOutcome{Status: domain.MintOutcomeFailed, Reason: resp.Error}, nil
	case "pending":
		return &domain.MintOutcome{Status: domain.MintOutcomePending, TxHash: resp.TxHash}, nil
	default:
		return &domain.MintOutcome{Status: domain.MintOutcomeUnknown, Reason: resp.Error}, nil
	}
}

// gatewayErrorReason pulls the error message out of a 4xx body, falling
// back to the status code when the body is not the expected shape
func gatewayErrorReason(json adapter.JSON, body []byte, statusCode int) string {
	var resp MintResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error != "" {
		return resp.Error
	}
	return fmt.Sprintf("gateway rejected mint with status %d", statusCode)
}
